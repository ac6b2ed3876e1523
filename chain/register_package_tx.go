// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/registryvm/parser"
)

var _ UnsignedTransaction = &RegisterPackageTx{}

type RegisterPackageTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// Package is either "name" or "@scope/name".
	Package string `serialize:"true" json:"package"`
}

func (r *RegisterPackageTx) Execute(t *TransactionContext) error {
	scope, _, err := parser.ParsePackage(r.Package)
	if err != nil {
		return err
	}
	has, err := HasPackage(t.Database, r.Package)
	if err != nil {
		return err
	}
	if has {
		return ErrPackageExists
	}

	i := &PackageInfo{
		Owner:   t.Sender,
		Created: t.BlockTime,
		Scope:   ids.Empty,
	}
	price := uint64(0)
	if len(scope) > 0 {
		// Scoped registration is free for the owner of the scope
		s, has, err := GetScopeInfo(t.Database, scope)
		if err != nil {
			return err
		}
		if !has {
			return ErrScopeMissing
		}
		if !t.authorized(s.Owner) {
			return ErrNotScopeOwner
		}
		i.Scope = ScopeKey(scope)
	} else {
		settings, err := GetSettings(t.Database)
		if err != nil {
			return err
		}
		if err := verifyPayment(t, settings.PackagePrice); err != nil {
			return err
		}
		price = settings.PackagePrice
	}
	if err := PutPackageInfo(t.Database, r.Package, i); err != nil {
		return err
	}
	t.Emit(&Event{Type: PackageRegistered, Name: r.Package, Value: price})
	return nil
}

func (r *RegisterPackageTx) Copy() UnsignedTransaction {
	return &RegisterPackageTx{
		BaseTx:  r.BaseTx.Copy(),
		Package: r.Package,
	}
}
