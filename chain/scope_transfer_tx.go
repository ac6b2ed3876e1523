// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/registryvm/parser"
)

var (
	_ UnsignedTransaction = &InitiateScopeTransferTx{}
	_ UnsignedTransaction = &AcceptScopeTransferTx{}
	_ UnsignedTransaction = &CancelScopeTransferTx{}
)

func getScope(t *TransactionContext, scope string) (*ScopeInfo, error) {
	if err := parser.CheckScope(scope); err != nil {
		return nil, err
	}
	i, has, err := GetScopeInfo(t.Database, scope)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrScopeMissing
	}
	return i, nil
}

type InitiateScopeTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Scope string         `serialize:"true" json:"scope"`
	To    common.Address `serialize:"true" json:"to"`
}

func (i *InitiateScopeTransferTx) Execute(t *TransactionContext) error {
	s, err := getScope(t, i.Scope)
	if err != nil {
		return err
	}
	if err := initiateTransfer(t, scopePrefix, ScopeKey(i.Scope), s.Owner, i.To); err != nil {
		return err
	}
	t.Emit(&Event{Type: ScopeTransferInitiated, Name: i.Scope, To: addressRef(i.To)})
	return nil
}

func (i *InitiateScopeTransferTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, i.To[:])
	return &InitiateScopeTransferTx{
		BaseTx: i.BaseTx.Copy(),
		Scope:  i.Scope,
		To:     common.BytesToAddress(to),
	}
}

type AcceptScopeTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Scope string `serialize:"true" json:"scope"`
}

func (a *AcceptScopeTransferTx) Execute(t *TransactionContext) error {
	s, err := getScope(t, a.Scope)
	if err != nil {
		return err
	}
	if s.Owner, err = acceptTransfer(t, scopePrefix, ScopeKey(a.Scope)); err != nil {
		return err
	}
	if err := PutScopeInfo(t.Database, a.Scope, s); err != nil {
		return err
	}
	t.Emit(&Event{Type: ScopeTransferCompleted, Name: a.Scope, To: addressRef(s.Owner)})
	return nil
}

func (a *AcceptScopeTransferTx) Copy() UnsignedTransaction {
	return &AcceptScopeTransferTx{
		BaseTx: a.BaseTx.Copy(),
		Scope:  a.Scope,
	}
}

type CancelScopeTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Scope string `serialize:"true" json:"scope"`
}

func (c *CancelScopeTransferTx) Execute(t *TransactionContext) error {
	s, err := getScope(t, c.Scope)
	if err != nil {
		return err
	}
	if err := cancelTransfer(t, scopePrefix, ScopeKey(c.Scope), s.Owner); err != nil {
		return err
	}
	t.Emit(&Event{Type: ScopeTransferCancelled, Name: c.Scope})
	return nil
}

func (c *CancelScopeTransferTx) Copy() UnsignedTransaction {
	return &CancelScopeTransferTx{
		BaseTx: c.BaseTx.Copy(),
		Scope:  c.Scope,
	}
}
