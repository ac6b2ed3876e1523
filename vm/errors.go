// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
)

var (
	ErrInputIsNil               = errors.New("input is nil")
	ErrInvalidEmptyTx           = errors.New("invalid empty transaction")
	ErrUninitializedTx          = errors.New("transaction not initialized")
	ErrInvalidActivityCacheSize = errors.New("activity cache size must be positive")
)
