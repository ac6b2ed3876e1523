// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/registryvm/parser"
)

var (
	_ UnsignedTransaction = &InitiatePackageTransferTx{}
	_ UnsignedTransaction = &AcceptPackageTransferTx{}
	_ UnsignedTransaction = &CancelPackageTransferTx{}
)

func getPackage(t *TransactionContext, pkg string) (*PackageInfo, error) {
	if err := parser.CheckPackage(pkg); err != nil {
		return nil, err
	}
	i, has, err := GetPackageInfo(t.Database, pkg)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrPackageMissing
	}
	return i, nil
}

// ownedPackage returns [pkg] if the sender currently owns it. Ownership of
// the parent scope grants nothing once the package exists.
func ownedPackage(t *TransactionContext, pkg string) (*PackageInfo, error) {
	i, err := getPackage(t, pkg)
	if err != nil {
		return nil, err
	}
	if !t.authorized(i.Owner) {
		return nil, ErrNotOwner
	}
	return i, nil
}

type InitiatePackageTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Package string         `serialize:"true" json:"package"`
	To      common.Address `serialize:"true" json:"to"`
}

func (i *InitiatePackageTransferTx) Execute(t *TransactionContext) error {
	p, err := getPackage(t, i.Package)
	if err != nil {
		return err
	}
	if err := initiateTransfer(t, packagePrefix, PackageKey(i.Package), p.Owner, i.To); err != nil {
		return err
	}
	t.Emit(&Event{Type: PackageTransferInitiated, Name: i.Package, To: addressRef(i.To)})
	return nil
}

func (i *InitiatePackageTransferTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, i.To[:])
	return &InitiatePackageTransferTx{
		BaseTx:  i.BaseTx.Copy(),
		Package: i.Package,
		To:      common.BytesToAddress(to),
	}
}

type AcceptPackageTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Package string `serialize:"true" json:"package"`
}

func (a *AcceptPackageTransferTx) Execute(t *TransactionContext) error {
	p, err := getPackage(t, a.Package)
	if err != nil {
		return err
	}
	if p.Owner, err = acceptTransfer(t, packagePrefix, PackageKey(a.Package)); err != nil {
		return err
	}
	if err := PutPackageInfo(t.Database, a.Package, p); err != nil {
		return err
	}
	t.Emit(&Event{Type: PackageTransferCompleted, Name: a.Package, To: addressRef(p.Owner)})
	return nil
}

func (a *AcceptPackageTransferTx) Copy() UnsignedTransaction {
	return &AcceptPackageTransferTx{
		BaseTx:  a.BaseTx.Copy(),
		Package: a.Package,
	}
}

type CancelPackageTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Package string `serialize:"true" json:"package"`
}

func (c *CancelPackageTransferTx) Execute(t *TransactionContext) error {
	p, err := getPackage(t, c.Package)
	if err != nil {
		return err
	}
	if err := cancelTransfer(t, packagePrefix, PackageKey(c.Package), p.Owner); err != nil {
		return err
	}
	t.Emit(&Event{Type: PackageTransferCancelled, Name: c.Package})
	return nil
}

func (c *CancelPackageTransferTx) Copy() UnsignedTransaction {
	return &CancelPackageTransferTx{
		BaseTx:  c.BaseTx.Copy(),
		Package: c.Package,
	}
}
