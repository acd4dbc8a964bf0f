// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// SealedEmptyStep is a validator's signed attestation that a proposal
// slot was skipped on top of a given parent block. Empty steps are
// sealed into the child block and count as finality votes for its
// parent.
type SealedEmptyStep struct {
	Signature [65]byte
	Step      uint64
}

// Message returns the hash the empty step signature is taken over: the
// keccak256 of the RLP pair (step, parent hash).
func (s *SealedEmptyStep) Message(parentHash common.Hash) common.Hash {
	enc, err := rlp.EncodeToBytes([]interface{}{s.Step, parentHash})
	if err != nil {
		panic("empty step message is not rlp encodable: " + err.Error())
	}
	return crypto.Keccak256Hash(enc)
}
