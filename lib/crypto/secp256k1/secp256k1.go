// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

// Package secp256k1 wraps go-ethereum's secp256k1 primitives with the
// recoverable-signature interface the AuRa seals use.
package secp256k1

import (
	"crypto/ecdsa"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the length of a recoverable signature: r || s || v.
const SignatureLength = 65

var errInvalidPrivateKeyLength = errors.New("invalid private key length")

// Keypair is a secp256k1 keypair.
type Keypair struct {
	private *ecdsa.PrivateKey
}

// NewKeypairFromPrivateKeyString returns a Keypair from a 0x-prefixed
// hex-encoded 32 byte private key.
func NewKeypairFromPrivateKeyString(in string) (*Keypair, error) {
	b := common.FromHex(in)
	if len(b) != 32 {
		return nil, errInvalidPrivateKeyLength
	}

	priv, err := ethcrypto.ToECDSA(b)
	if err != nil {
		return nil, err
	}
	return &Keypair{private: priv}, nil
}

// GenerateKeypair returns a new random Keypair.
func GenerateKeypair() (*Keypair, error) {
	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &Keypair{private: priv}, nil
}

// Sign produces a recoverable signature over the given 32 byte digest.
func (kp *Keypair) Sign(digest common.Hash) (sig [SignatureLength]byte, err error) {
	b, err := ethcrypto.Sign(digest[:], kp.private)
	if err != nil {
		return sig, err
	}
	copy(sig[:], b)
	return sig, nil
}

// Address returns the address derived from the keypair's public key.
func (kp *Keypair) Address() common.Address {
	return ethcrypto.PubkeyToAddress(kp.private.PublicKey)
}

// RecoverAddress recovers the address of the key that produced the given
// recoverable signature over the given 32 byte digest.
func RecoverAddress(digest common.Hash, sig []byte) (common.Address, error) {
	pub, err := ethcrypto.Ecrecover(digest[:], sig)
	if err != nil {
		return common.Address{}, err
	}

	var addr common.Address
	copy(addr[:], ethcrypto.Keccak256(pub[1:])[12:])
	return addr, nil
}
