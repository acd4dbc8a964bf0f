// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import (
	"fmt"

	"github.com/auraledger/aura/lib/aura"
	"github.com/ethereum/go-ethereum/common"
)

// FinalizeBlocks computes which blocks become finalized when the given
// header is imported.
//
// The cached tally stored for the nearest ancestor is merged with the
// ancestry read since that snapshot, then the merged ancestry is walked
// oldest to newest: a block is finalized while the distinct validators
// with outstanding votes form a strict majority, or a strict two thirds
// supermajority for blocks numbered at or after
// twoThirdsMajorityTransition. Finalized headers are returned in
// ascending order together with the merged tally, which the caller is
// expected to cache against the imported header's hash. The caller also
// advances its own best finalized pointer; this function does not.
//
// The whole ancestry window must be covered by the supplied validator
// set; ErrNotValidator is returned when any credited signer, including
// the header's author, is outside it.
func FinalizeBlocks[S any](
	storage Storage[S],
	bestFinalized aura.HeaderID,
	validatorSet *aura.ValidatorSet,
	id aura.HeaderID,
	submitter *S,
	header *aura.Header,
	twoThirdsMajorityTransition uint64,
) (*FinalityEffects[S], error) {
	validators := NewSignerSet(validatorSet.Addresses...)

	cached := storage.CachedFinalityVotes(header.ParentHash, func(hash common.Hash) bool {
		return hash == validatorSet.Anchor.Hash || hash == bestFinalized.Hash
	})

	votes, err := prepareVotes(cached, bestFinalized.Number, validators, id, submitter, header)
	if err != nil {
		return nil, err
	}

	var finalized []FinalizedHeader[S]
	current := votes.Votes.Copy()
	for _, ancestor := range votes.Ancestry {
		requiresTwoThirds := ancestor.ID.Number >= twoThirdsMajorityTransition
		if !isFinalized(validators.Len(), current, requiresTwoThirds) {
			break
		}

		removeSignersVotes(ancestor.Signers, current)
		finalized = append(finalized, FinalizedHeader[S]{ID: ancestor.ID, Submitter: ancestor.Submitter})
	}

	return &FinalityEffects[S]{FinalizedHeaders: finalized, Votes: votes}, nil
}

// isFinalized reports whether the distinct validators with outstanding
// votes are enough to finalize a block. Both thresholds use strict
// integer inequalities.
func isFinalized(validatorCount int, votes *VoteCounts, requiresTwoThirdsMajority bool) bool {
	if requiresTwoThirdsMajority {
		return votes.Len()*3 > validatorCount*2
	}
	return votes.Len()*2 > validatorCount
}

// prepareVotes merges a cached tally with the unaccounted ancestry of
// the header being imported, producing the tally as of that header. It
// is a pure fold over the supplied data: no storage reads, no
// finalization decision.
func prepareVotes[S any](
	cached *CachedFinalityVotes[S],
	bestFinalizedNumber uint64,
	validators *SignerSet,
	id aura.HeaderID,
	submitter *S,
	header *aura.Header,
) (*FinalityVotes[S], error) {
	// this function can only work within a single validator set
	if !validators.Contains(header.Author) {
		return nil, fmt.Errorf("%w: header author %s", ErrNotValidator, header.Author)
	}

	votes := cached.Votes
	if votes == nil {
		votes = NewFinalityVotes[S]()
	}

	// drop ancestry entries finalized since the snapshot was stored
	for len(votes.Ancestry) > 0 {
		oldest := votes.Ancestry[0]
		if oldest.ID.Number > bestFinalizedNumber {
			break
		}

		removeSignersVotes(oldest.Signers, votes.Votes)
		votes.Ancestry = votes.Ancestry[1:]
	}

	// replay the unaccounted ancestry, newest entry first. Empty steps
	// sealed in a block attest to skipped slots on top of its parent,
	// so each ancestor is credited with the steps sealed in its
	// immediate child; the credit is carried backward one position per
	// iteration, starting from the imported header's own steps.
	carried := emptyStepsSigners(header)
	unaccounted := make([]FinalityAncestor[S], len(cached.UnaccountedAncestry))
	for i, ancestor := range cached.UnaccountedAncestry {
		signers := carried
		carried = emptyStepsSigners(ancestor.Header)
		signers.Insert(ancestor.Header.Author)

		if err := addSignersVotes(validators, signers, votes.Votes); err != nil {
			return nil, err
		}

		unaccounted[len(unaccounted)-1-i] = FinalityAncestor[S]{
			ID:        ancestor.ID,
			Submitter: ancestor.Submitter,
			Signers:   signers,
		}
	}
	votes.Ancestry = append(votes.Ancestry, unaccounted...)

	// the imported header votes for itself. Empty steps sealed in it
	// were consumed above as carried credit for its parent.
	count, _ := votes.Votes.Get(header.Author)
	votes.Votes.Set(header.Author, count+1)
	votes.Ancestry = append(votes.Ancestry, FinalityAncestor[S]{
		ID:        id,
		Submitter: submitter,
		Signers:   NewSignerSet(header.Author),
	})

	return votes, nil
}

// addSignersVotes increments the vote count of every signer in the set,
// failing with ErrNotValidator if any signer is outside the validator
// set.
func addSignersVotes(validators, signers *SignerSet, votes *VoteCounts) error {
	var err error
	signers.Scan(func(signer common.Address) bool {
		if !validators.Contains(signer) {
			err = fmt.Errorf("%w: signer %s", ErrNotValidator, signer)
			return false
		}

		count, _ := votes.Get(signer)
		votes.Set(signer, count+1)
		return true
	})
	return err
}

// removeSignersVotes decrements the vote count of every signer in the
// set, dropping entries that reach zero. Only signers that have been
// added may be removed; a missing entry means the tally has diverged
// from the ancestry and the determinism invariant is broken, so this
// panics rather than returning an error.
func removeSignersVotes(signers *SignerSet, votes *VoteCounts) {
	signers.Scan(func(signer common.Address) bool {
		count, ok := votes.Get(signer)
		if !ok {
			panic(fmt.Sprintf("finality: removing vote of signer %s with no recorded votes", signer))
		}

		if count <= 1 {
			votes.Delete(signer)
		} else {
			votes.Set(signer, count-1)
		}
		return true
	})
}
