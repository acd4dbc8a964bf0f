// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

// Package keystore provides deterministic test keyrings.
package keystore

import (
	"reflect"

	"github.com/auraledger/aura/lib/crypto/secp256k1"
	"github.com/ethereum/go-ethereum/common"
)

var secp256k1PrivateKeys = []string{
	"0xf0b09294a439b43338ed820e7e982041b762a6b62a87c89e66838cd76f57ea1c",
	"0x0edd7b5f925c8bdc88cc3117edd86178a1166430cc8d544087503ae6fc892f4f",
	"0xe419f3abb9dc08bfd1d651eecddeb09e6ab6ace72607d755dec771c1e24e054b",
	"0xf6be512a5809f220daac98b6d32a9bf082df7e847f62ee9ecee8466683976198",
	"0x307fd1c720802e08993f3f9a183435c76b42f700fa0b68fa0be944741c260e4a",
	"0xc12d928049946a45917d3b944f1009b700c6a40a7849cdae804fece6b1d3707d",
	"0x03ff3d7122b16d8b02b118e14b3144d010d86b579fc731e57ecba9730dd0a659",
	"0x8d5c9ed6eed96e8b0319eb97a945a8f7301bb7efcfb17aeedeec5d3278535b16",
	"0x70a9354e84f2f323cd40af3fe87b8ab148b65e64d606cff0698752dfc61924e0",
}

// Secp256k1Keyring is a test keyring of nine named secp256k1 keypairs.
type Secp256k1Keyring struct {
	KeyAlice   *secp256k1.Keypair
	KeyBob     *secp256k1.Keypair
	KeyCharlie *secp256k1.Keypair
	KeyDave    *secp256k1.Keypair
	KeyEve     *secp256k1.Keypair
	KeyFerdie  *secp256k1.Keypair
	KeyGeorge  *secp256k1.Keypair
	KeyHeather *secp256k1.Keypair
	KeyIan     *secp256k1.Keypair

	Keys []*secp256k1.Keypair
}

// NewSecp256k1Keyring returns an initialised secp256k1 Keyring
func NewSecp256k1Keyring() (*Secp256k1Keyring, error) {
	kr := new(Secp256k1Keyring)
	v := reflect.ValueOf(kr).Elem()
	kr.Keys = make([]*secp256k1.Keypair, v.NumField()-1)

	for i := 0; i < v.NumField()-1; i++ {
		who := v.Field(i)
		kp, err := secp256k1.NewKeypairFromPrivateKeyString(secp256k1PrivateKeys[i])
		if err != nil {
			return nil, err
		}
		who.Set(reflect.ValueOf(kp))

		kr.Keys[i] = kp
	}

	return kr, nil
}

// Addresses returns the addresses of all keyring keypairs, in keyring order.
func (kr *Secp256k1Keyring) Addresses() []common.Address {
	addrs := make([]common.Address, len(kr.Keys))
	for i, kp := range kr.Keys {
		addrs[i] = kp.Address()
	}
	return addrs
}

// Alice returns Alice's key
func (kr *Secp256k1Keyring) Alice() *secp256k1.Keypair {
	return kr.KeyAlice
}

// Bob returns Bob's key
func (kr *Secp256k1Keyring) Bob() *secp256k1.Keypair {
	return kr.KeyBob
}

// Charlie returns Charlie's key
func (kr *Secp256k1Keyring) Charlie() *secp256k1.Keypair {
	return kr.KeyCharlie
}

// Dave returns Dave's key
func (kr *Secp256k1Keyring) Dave() *secp256k1.Keypair {
	return kr.KeyDave
}

// Eve returns Eve's key
func (kr *Secp256k1Keyring) Eve() *secp256k1.Keypair {
	return kr.KeyEve
}

// Ferdie returns Ferdie's key
func (kr *Secp256k1Keyring) Ferdie() *secp256k1.Keypair {
	return kr.KeyFerdie
}

// George returns George's key
func (kr *Secp256k1Keyring) George() *secp256k1.Keypair {
	return kr.KeyGeorge
}

// Heather returns Heather's key
func (kr *Secp256k1Keyring) Heather() *secp256k1.Keypair {
	return kr.KeyHeather
}

// Ian returns Ian's key
func (kr *Secp256k1Keyring) Ian() *secp256k1.Keypair {
	return kr.KeyIan
}
