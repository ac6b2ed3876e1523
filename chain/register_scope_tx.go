// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/registryvm/parser"
)

var _ UnsignedTransaction = &RegisterScopeTx{}

type RegisterScopeTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Scope string `serialize:"true" json:"scope"`
}

func (r *RegisterScopeTx) Execute(t *TransactionContext) error {
	if err := parser.CheckScope(r.Scope); err != nil {
		return err
	}
	if reserved(t.Genesis, r.Scope) {
		return ErrReservedName
	}
	has, err := HasScope(t.Database, r.Scope)
	if err != nil {
		return err
	}
	if has {
		return ErrScopeExists
	}
	s, err := GetSettings(t.Database)
	if err != nil {
		return err
	}
	if err := verifyPayment(t, s.ScopePrice); err != nil {
		return err
	}
	if err := PutScopeInfo(t.Database, r.Scope, &ScopeInfo{
		Owner:   t.Sender,
		Created: t.BlockTime,
	}); err != nil {
		return err
	}
	t.Emit(&Event{Type: ScopeRegistered, Name: r.Scope, Value: s.ScopePrice})
	return nil
}

func (r *RegisterScopeTx) Copy() UnsignedTransaction {
	return &RegisterScopeTx{
		BaseTx: r.BaseTx.Copy(),
		Scope:  r.Scope,
	}
}
