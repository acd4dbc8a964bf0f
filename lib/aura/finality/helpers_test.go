// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import (
	"testing"

	"github.com/auraledger/aura/lib/aura"
	"github.com/auraledger/aura/lib/crypto/secp256k1"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// testSubmitter mirrors the host-side account id carried through the
// tally in tests.
type testSubmitter = uint64

// genesisHash is the parent hash of the first test header. No header is
// stored for it, so ancestry walks stop there.
var genesisHash = common.HexToHash("0x4d4f7ec591b9d7c1d6c16cbfd4cf9e21cd2b5e0a917cf3ec52599d62c461d5a3")

type storedHeader struct {
	header    *aura.Header
	submitter *testSubmitter
}

// testStorage is an in-memory Storage for tests: a hash-keyed header
// chain plus a tally cache.
type testStorage struct {
	headers map[common.Hash]storedHeader
	votes   map[common.Hash]*FinalityVotes[testSubmitter]
}

func newTestStorage() *testStorage {
	return &testStorage{
		headers: make(map[common.Hash]storedHeader),
		votes:   make(map[common.Hash]*FinalityVotes[testSubmitter]),
	}
}

func (s *testStorage) insert(header *aura.Header, submitter *testSubmitter) {
	s.headers[header.ComputeHash()] = storedHeader{header: header, submitter: submitter}
}

func (s *testStorage) cacheVotes(hash common.Hash, votes *FinalityVotes[testSubmitter]) {
	s.votes[hash] = cloneVotes(votes)
}

func (s *testStorage) CachedFinalityVotes(
	hash common.Hash, stopAt func(common.Hash) bool) *CachedFinalityVotes[testSubmitter] {
	cached := &CachedFinalityVotes[testSubmitter]{}

	current := hash
	for !stopAt(current) {
		if votes, ok := s.votes[current]; ok {
			// the engine mutates what it is given, so hand out a copy
			cached.Votes = cloneVotes(votes)
			return cached
		}

		stored, ok := s.headers[current]
		if !ok {
			return cached
		}

		cached.UnaccountedAncestry = append(cached.UnaccountedAncestry, UnaccountedAncestor[testSubmitter]{
			ID:        stored.header.ComputeID(),
			Submitter: stored.submitter,
			Header:    stored.header,
		})
		current = stored.header.ParentHash
	}

	return cached
}

func cloneVotes(votes *FinalityVotes[testSubmitter]) *FinalityVotes[testSubmitter] {
	enc, err := votes.Encode()
	if err != nil {
		panic("cloning finality votes: " + err.Error())
	}
	cloned, err := DecodeFinalityVotes[testSubmitter](enc)
	if err != nil {
		panic("cloning finality votes: " + err.Error())
	}
	return cloned
}

func newTestHeader(parent common.Hash, number uint64, author common.Address) *aura.Header {
	return &aura.Header{
		ParentHash: parent,
		Number:     number,
		Author:     author,
	}
}

// buildChain returns headers numbered from 1, each the child of the
// previous, authored in order by the given addresses.
func buildChain(authors []common.Address) []*aura.Header {
	headers := make([]*aura.Header, len(authors))
	parent := genesisHash
	for i, author := range authors {
		headers[i] = newTestHeader(parent, uint64(i+1), author)
		parent = headers[i].ComputeHash()
	}
	return headers
}

// signedEmptyStep returns an empty step by the given keypair attesting
// on top of the block with the given hash.
func signedEmptyStep(t *testing.T, kp *secp256k1.Keypair, step uint64, parentHash common.Hash) aura.SealedEmptyStep {
	t.Helper()

	sealed := aura.SealedEmptyStep{Step: step}
	sig, err := kp.Sign(sealed.Message(parentHash))
	require.NoError(t, err)
	sealed.Signature = sig
	return sealed
}

// requireTally asserts the tally's vote counts are exactly the expected
// map and that they match what the ancestry implies.
func requireTally(t *testing.T, votes *FinalityVotes[testSubmitter], expected map[common.Address]uint64) {
	t.Helper()

	actual := make(map[common.Address]uint64)
	votes.Votes.Scan(func(addr common.Address, count uint64) bool {
		require.NotZero(t, count, "vote count stored as zero for %s", addr)
		actual[addr] = count
		return true
	})
	require.Equal(t, expected, actual)

	requireTallyInvariant(t, votes)
}

// requireTallyInvariant asserts that every vote count equals the number
// of ancestry entries crediting that signer.
func requireTallyInvariant(t *testing.T, votes *FinalityVotes[testSubmitter]) {
	t.Helper()

	implied := make(map[common.Address]uint64)
	for _, ancestor := range votes.Ancestry {
		ancestor.Signers.Scan(func(addr common.Address) bool {
			implied[addr]++
			return true
		})
	}

	actual := make(map[common.Address]uint64)
	votes.Votes.Scan(func(addr common.Address, count uint64) bool {
		actual[addr] = count
		return true
	})

	require.Equal(t, implied, actual)
}

func ancestryIDs(votes *FinalityVotes[testSubmitter]) []aura.HeaderID {
	ids := make([]aura.HeaderID, len(votes.Ancestry))
	for i, ancestor := range votes.Ancestry {
		ids[i] = ancestor.ID
	}
	return ids
}

func headerIDs(headers []*aura.Header) []aura.HeaderID {
	ids := make([]aura.HeaderID, len(headers))
	for i, header := range headers {
		ids[i] = header.ComputeID()
	}
	return ids
}
