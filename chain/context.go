// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// TransactionContext is everything an operation may observe about the
// invocation executing it.
type TransactionContext struct {
	Genesis   *Genesis
	Database  database.Database
	BlockTime uint64
	TxID      ids.ID

	// Sender is the immediate caller, Origin the outermost one. They only
	// differ when a transaction is relayed through an intermediary.
	Sender common.Address
	Origin common.Address

	Outputs []*Output

	events []*Event
}

// Emit queues [e] for delivery once the invocation commits.
func (t *TransactionContext) Emit(e *Event) {
	e.TxID = t.TxID
	e.Timestamp = t.BlockTime
	if e.Actor == (common.Address{}) {
		e.Actor = t.Sender
	}
	t.events = append(t.events, e)
}

func (t *TransactionContext) Events() []*Event {
	return t.events
}

func (t *TransactionContext) authorized(owner common.Address) bool {
	return owner == t.Sender
}
