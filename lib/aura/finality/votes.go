// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

// Package finality decides which blocks of an imported AuRa header chain
// have accumulated enough distinct validator votes, through authorship
// and sealed empty steps, to be treated as irreversible. It maintains an
// incrementally updatable vote tally so a finality check never rescans
// the full unfinalized chain.
//
// The engine is a pure computation over its inputs. It performs no I/O,
// holds no shared state and must be invoked once per header import from
// the host's serialized import pipeline.
package finality

import (
	"bytes"

	"github.com/auraledger/aura/lib/aura"
	"github.com/auraledger/aura/pkg/btree"
	"github.com/ethereum/go-ethereum/common"
)

// VoteCounts maps a validator address to the number of tracked ancestry
// blocks it is credited a vote for. Addresses with no outstanding votes
// are absent, never stored as zero.
type VoteCounts = btree.Map[common.Address, uint64]

// SignerSet is an ordered set of validator addresses.
type SignerSet = btree.Set[common.Address]

func addressLess(a, b common.Address) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// NewVoteCounts returns an empty vote count map ordered by address.
func NewVoteCounts() *VoteCounts {
	return btree.NewMap[common.Address, uint64](addressLess)
}

// NewSignerSet returns a signer set ordered by address, holding the
// given addresses.
func NewSignerSet(addrs ...common.Address) *SignerSet {
	set := btree.NewSet(addressLess)
	for _, addr := range addrs {
		set.Insert(addr)
	}
	return set
}

// FinalityAncestor is one tracked ancestry block's contribution to the
// tally: the validators credited with a vote because of it, meaning its
// author plus the empty step signers attributed to it. The submitter is
// an opaque host identity carried alongside for bookkeeping.
type FinalityAncestor[S any] struct {
	ID        aura.HeaderID
	Submitter *S
	Signers   *SignerSet
}

// FinalityVotes is the vote tally as of some header: per-validator
// outstanding vote counts plus the unfinalized ancestry the counts were
// accumulated over, oldest entry first. Ancestry is contiguous and
// strictly increasing by number.
type FinalityVotes[S any] struct {
	Votes    *VoteCounts
	Ancestry []FinalityAncestor[S]
}

// NewFinalityVotes returns an empty tally.
func NewFinalityVotes[S any]() *FinalityVotes[S] {
	return &FinalityVotes[S]{Votes: NewVoteCounts()}
}

// UnaccountedAncestor is a header read from storage while searching for
// a cached votes entry.
type UnaccountedAncestor[S any] struct {
	ID        aura.HeaderID
	Submitter *S
	Header    *aura.Header
}

// CachedFinalityVotes is the result of a cached votes lookup: the tally
// snapshot found at some ancestor, if any, plus every header between
// that snapshot (exclusive) and the lookup's starting header
// (inclusive), newest first.
type CachedFinalityVotes[S any] struct {
	UnaccountedAncestry []UnaccountedAncestor[S]
	Votes               *FinalityVotes[S]
}

// FinalizedHeader is a header that became finalized during a finality
// check, with the submitter recorded for it.
type FinalizedHeader[S any] struct {
	ID        aura.HeaderID
	Submitter *S
}

// FinalityEffects is the outcome of one finality check: the newly
// finalized headers in ascending order and the merged, unpruned tally
// the host should cache against the imported header's hash.
type FinalityEffects[S any] struct {
	FinalizedHeaders []FinalizedHeader[S]
	Votes            *FinalityVotes[S]
}
