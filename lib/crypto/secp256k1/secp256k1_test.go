// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package secp256k1

import (
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestSignAndRecover(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	digest := ethcrypto.Keccak256Hash([]byte("borderline"))
	sig, err := kp.Sign(digest)
	require.NoError(t, err)

	addr, err := RecoverAddress(digest, sig[:])
	require.NoError(t, err)
	require.Equal(t, kp.Address(), addr)
}

func TestRecoverAddressInvalidSignature(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	digest := ethcrypto.Keccak256Hash([]byte("borderline"))
	sig, err := kp.Sign(digest)
	require.NoError(t, err)

	sig[64] = 0x7f // invalid recovery id
	_, err = RecoverAddress(digest, sig[:])
	require.Error(t, err)
}

func TestNewKeypairFromPrivateKeyString(t *testing.T) {
	kp, err := NewKeypairFromPrivateKeyString(
		"0xf0b09294a439b43338ed820e7e982041b762a6b62a87c89e66838cd76f57ea1c")
	require.NoError(t, err)

	again, err := NewKeypairFromPrivateKeyString(
		"0xf0b09294a439b43338ed820e7e982041b762a6b62a87c89e66838cd76f57ea1c")
	require.NoError(t, err)
	require.Equal(t, kp.Address(), again.Address())

	_, err = NewKeypairFromPrivateKeyString("0xdeadbeef")
	require.ErrorIs(t, err, errInvalidPrivateKeyLength)
}
