// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import "errors"

var (
	ErrUnexpectedStatus = errors.New("unexpected http status")
	ErrMissingTreasury  = errors.New("treasury address is not configured")
)
