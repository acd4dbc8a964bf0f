// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import (
	"github.com/ethereum/go-ethereum/common"
)

// Storage gives the engine read access to the host's header chain and
// cached finality vote tallies. The engine never writes through it;
// persisting FinalityEffects.Votes and advancing the best finalized
// pointer are the host's responsibility.
type Storage[S any] interface {
	// CachedFinalityVotes walks parent links backward from the given
	// hash, collecting headers newest-first, until either stopAt
	// returns true for a hash or a cached FinalityVotes entry is found
	// for one. A found entry is returned as Votes and its header is
	// not included in the unaccounted ancestry.
	//
	// The returned value is owned by the engine and mutated during the
	// finality check: implementations must not hand out tallies they
	// need to keep intact.
	CachedFinalityVotes(hash common.Hash, stopAt func(common.Hash) bool) *CachedFinalityVotes[S]
}
