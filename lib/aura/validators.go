// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"github.com/ethereum/go-ethereum/common"
)

// ValidatorSet is the ordered authority set in effect from the anchor
// header onward. It is supplied by the caller on every finality check;
// validator set rotation is managed outside the finality engine, and a
// single set must cover the whole ancestry window of a check.
type ValidatorSet struct {
	Anchor    HeaderID
	Addresses []common.Address
}
