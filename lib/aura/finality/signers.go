// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import (
	log "github.com/ChainSafe/log15"

	"github.com/auraledger/aura/lib/aura"
	"github.com/auraledger/aura/lib/crypto/secp256k1"
	"github.com/ethereum/go-ethereum/common"
)

var logger = log.New("pkg", "aura/finality")

// emptyStepsSigners returns the deduplicated set of validators whose
// empty step signatures are sealed in the header. A signature that does
// not recover contributes no signer; it is logged for audit but is not
// an error.
func emptyStepsSigners(header *aura.Header) *SignerSet {
	signers := NewSignerSet()
	for _, step := range header.EmptySteps() {
		signer, err := emptyStepSigner(&step, header.ParentHash)
		if err != nil {
			logger.Warn("discarding unrecoverable empty step signature",
				"number", header.Number, "step", step.Step, "err", err)
			continue
		}
		signers.Insert(signer)
	}
	return signers
}

// emptyStepSigner recovers the author of an empty step signature. The
// message is derived from the step and the hash of the block the step
// was taken on top of.
func emptyStepSigner(step *aura.SealedEmptyStep, parentHash common.Hash) (common.Address, error) {
	return secp256k1.RecoverAddress(step.Message(parentHash), step.Signature[:])
}
