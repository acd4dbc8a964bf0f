// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

// Package aura holds the primitives of an AuRa proof-of-authority chain
// that the finality engine consumes: headers, header identities, sealed
// empty steps and validator sets.
package aura

import (
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Seal field layout of an AuRa header: the step number, the author's
// signature and, optionally, the RLP list of sealed empty steps.
const emptyStepsSealIndex = 2

// Bloom is a header log bloom.
type Bloom [256]byte

// HeaderID is the immutable identity of a block: its number and hash.
type HeaderID struct {
	Number uint64
	Hash   common.Hash
}

// Header is an AuRa chain header. It is consumed read-only by the
// finality engine; structural and seal validation happen elsewhere.
type Header struct {
	ParentHash       common.Hash
	UnclesHash       common.Hash
	Author           common.Address
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	ReceiptsRoot     common.Hash
	LogBloom         Bloom
	Difficulty       *big.Int
	Number           uint64
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	ExtraData        []byte

	// Seal holds the raw RLP seal fields appended to the header.
	Seal [][]byte
}

// EncodeRLP implements rlp.Encoder. Seal fields are appended as
// already-encoded RLP values, matching the sealed header form that AuRa
// chains hash.
func (h *Header) EncodeRLP(w io.Writer) error {
	fields := []interface{}{
		h.ParentHash,
		h.UnclesHash,
		h.Author,
		h.StateRoot,
		h.TransactionsRoot,
		h.ReceiptsRoot,
		h.LogBloom,
		h.Difficulty,
		h.Number,
		h.GasLimit,
		h.GasUsed,
		h.Timestamp,
		h.ExtraData,
	}
	for _, seal := range h.Seal {
		fields = append(fields, rlp.RawValue(seal))
	}
	return rlp.Encode(w, fields)
}

// ComputeHash returns the keccak256 hash of the RLP-encoded header.
func (h *Header) ComputeHash() common.Hash {
	enc, err := rlp.EncodeToBytes(h)
	if err != nil {
		panic("header is not rlp encodable: " + err.Error())
	}
	return crypto.Keccak256Hash(enc)
}

// ComputeID returns the header's identity.
func (h *Header) ComputeID() HeaderID {
	return HeaderID{Number: h.Number, Hash: h.ComputeHash()}
}

// EmptySteps returns the empty step records sealed into the header, if
// any. A missing or malformed empty steps seal field yields no steps.
func (h *Header) EmptySteps() []SealedEmptyStep {
	if len(h.Seal) <= emptyStepsSealIndex {
		return nil
	}

	var steps []SealedEmptyStep
	if err := rlp.DecodeBytes(h.Seal[emptyStepsSealIndex], &steps); err != nil {
		return nil
	}
	return steps
}

// SealEmptySteps writes the RLP encoding of the given empty steps into
// the header's empty steps seal field, padding earlier seal fields with
// the empty RLP string if they are not present.
func SealEmptySteps(h *Header, steps []SealedEmptyStep) {
	enc, err := rlp.EncodeToBytes(steps)
	if err != nil {
		panic("empty steps are not rlp encodable: " + err.Error())
	}

	for len(h.Seal) <= emptyStepsSealIndex {
		h.Seal = append(h.Seal, []byte{0x80})
	}
	h.Seal[emptyStepsSealIndex] = enc
}
