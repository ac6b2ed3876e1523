// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/registryvm/parser"
)

var (
	_ UnsignedTransaction = &DeprecateVersionTx{}
	_ UnsignedTransaction = &UndeprecateVersionTx{}
)

// mutableVersion returns the version if the sender owns its package and the
// mutability window is still open.
func mutableVersion(t *TransactionContext, pkg string, version string) (*VersionInfo, error) {
	if err := parser.CheckVersion(version); err != nil {
		return nil, err
	}
	if _, err := ownedPackage(t, pkg); err != nil {
		return nil, err
	}
	v, has, err := GetVersionInfo(t.Database, pkg, version)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrVersionMissing
	}
	mutable, err := Mutable(t.Genesis, v, t.BlockTime)
	if err != nil {
		return nil, err
	}
	if !mutable {
		return nil, ErrWindowClosed
	}
	return v, nil
}

// Mutable reports whether the deprecation status of [v] may still change at
// [now].
func Mutable(g *Genesis, v *VersionInfo, now uint64) (bool, error) {
	closes, err := smath.Add64(v.Published, g.MutabilityWindow)
	if err != nil {
		return false, err
	}
	return now <= closes, nil
}

type DeprecateVersionTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Package string `serialize:"true" json:"package"`
	Version string `serialize:"true" json:"version"`
	Reason  string `serialize:"true" json:"reason"`
}

func (d *DeprecateVersionTx) Execute(t *TransactionContext) error {
	if err := parser.CheckReason(d.Reason); err != nil {
		return err
	}
	v, err := mutableVersion(t, d.Package, d.Version)
	if err != nil {
		return err
	}
	if v.Deprecated {
		return ErrAlreadyDeprecated
	}
	v.Deprecated = true
	v.DeprecationReason = d.Reason
	if err := PutVersionInfo(t.Database, d.Package, d.Version, v); err != nil {
		return err
	}
	t.Emit(&Event{Type: VersionDeprecated, Name: d.Package, Version: d.Version, Detail: d.Reason})
	return nil
}

func (d *DeprecateVersionTx) Copy() UnsignedTransaction {
	return &DeprecateVersionTx{
		BaseTx:  d.BaseTx.Copy(),
		Package: d.Package,
		Version: d.Version,
		Reason:  d.Reason,
	}
}

type UndeprecateVersionTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Package string `serialize:"true" json:"package"`
	Version string `serialize:"true" json:"version"`
}

func (u *UndeprecateVersionTx) Execute(t *TransactionContext) error {
	v, err := mutableVersion(t, u.Package, u.Version)
	if err != nil {
		return err
	}
	if !v.Deprecated {
		return ErrNotDeprecated
	}
	v.Deprecated = false
	v.DeprecationReason = ""
	if err := PutVersionInfo(t.Database, u.Package, u.Version, v); err != nil {
		return err
	}
	t.Emit(&Event{Type: VersionUndeprecated, Name: u.Package, Version: u.Version})
	return nil
}

func (u *UndeprecateVersionTx) Copy() UnsignedTransaction {
	return &UndeprecateVersionTx{
		BaseTx:  u.BaseTx.Copy(),
		Package: u.Package,
		Version: u.Version,
	}
}
