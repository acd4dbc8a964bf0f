// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import (
	"errors"
)

// ErrNotValidator is returned when the imported header's author, or a
// signer credited during ancestry replay, is not a member of the
// supplied validator set. The whole header import must be rejected.
var ErrNotValidator = errors.New("not a validator")
