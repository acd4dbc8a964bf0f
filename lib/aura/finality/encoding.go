// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import (
	"github.com/ChainSafe/gossamer/pkg/scale"

	"github.com/auraledger/aura/lib/aura"
	"github.com/ethereum/go-ethereum/common"
)

// Cached tallies are written by one node and read back by every node
// validating the same header, so their encoding must be canonical: vote
// counts and signer sets are encoded as SCALE sequences in ascending
// address order, and submitters as SCALE options.

type encodedVoteCount struct {
	Address common.Address
	Votes   uint64
}

type encodedAncestor[S any] struct {
	ID        aura.HeaderID
	Submitter *S
	Signers   []common.Address
}

type encodedVotes[S any] struct {
	Votes    []encodedVoteCount
	Ancestry []encodedAncestor[S]
}

// Encode returns the canonical SCALE encoding of the tally.
func (v *FinalityVotes[S]) Encode() ([]byte, error) {
	enc := encodedVotes[S]{
		Votes:    make([]encodedVoteCount, 0, v.Votes.Len()),
		Ancestry: make([]encodedAncestor[S], 0, len(v.Ancestry)),
	}

	v.Votes.Scan(func(addr common.Address, count uint64) bool {
		enc.Votes = append(enc.Votes, encodedVoteCount{Address: addr, Votes: count})
		return true
	})
	for _, ancestor := range v.Ancestry {
		enc.Ancestry = append(enc.Ancestry, encodedAncestor[S]{
			ID:        ancestor.ID,
			Submitter: ancestor.Submitter,
			Signers:   ancestor.Signers.Items(),
		})
	}

	return scale.Marshal(enc)
}

// DecodeFinalityVotes decodes a tally previously produced by Encode.
func DecodeFinalityVotes[S any](data []byte) (*FinalityVotes[S], error) {
	var enc encodedVotes[S]
	if err := scale.Unmarshal(data, &enc); err != nil {
		return nil, err
	}

	votes := NewFinalityVotes[S]()
	for _, vc := range enc.Votes {
		votes.Votes.Set(vc.Address, vc.Votes)
	}
	for _, ancestor := range enc.Ancestry {
		votes.Ancestry = append(votes.Ancestry, FinalityAncestor[S]{
			ID:        ancestor.ID,
			Submitter: ancestor.Submitter,
			Signers:   NewSignerSet(ancestor.Signers...),
		})
	}

	return votes, nil
}
