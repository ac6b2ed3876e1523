// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// Two-step ownership transfer shared by scopes, packages and domains. The
// pending record is keyed by the namespace of the record being transferred.

func initiateTransfer(t *TransactionContext, namespace byte, k ids.ID, owner common.Address, to common.Address) error {
	if to == (common.Address{}) {
		return ErrInvalidOwner
	}
	if !t.authorized(owner) {
		return ErrNotOwner
	}
	// Overwrites any transfer already in flight
	return PutPendingTransfer(t.Database, namespace, k, &PendingTransfer{
		PendingOwner: to,
		Initiated:    t.BlockTime,
	})
}

// acceptTransfer consumes the pending transfer and returns the previous
// pending owner, who becomes the new owner.
func acceptTransfer(t *TransactionContext, namespace byte, k ids.ID) (common.Address, error) {
	p, has, err := GetPendingTransfer(t.Database, namespace, k)
	if err != nil {
		return common.Address{}, err
	}
	if !has {
		return common.Address{}, ErrNoPendingTransfer
	}
	if !t.authorized(p.PendingOwner) {
		return common.Address{}, ErrNotPendingOwner
	}
	if err := DeletePendingTransfer(t.Database, namespace, k); err != nil {
		return common.Address{}, err
	}
	return p.PendingOwner, nil
}

func cancelTransfer(t *TransactionContext, namespace byte, k ids.ID, owner common.Address) error {
	if !t.authorized(owner) {
		return ErrNotOwner
	}
	has, err := t.Database.Has(PrefixPendingKey(namespace, k))
	if err != nil {
		return err
	}
	if !has {
		return ErrNoPendingTransfer
	}
	return DeletePendingTransfer(t.Database, namespace, k)
}

// reserved reports whether [name] is the name provisioned for the deployer
// at genesis.
func reserved(g *Genesis, name string) bool {
	return len(g.ReservedName) > 0 && name == g.ReservedName
}
