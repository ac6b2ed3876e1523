// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/registryvm/parser"
)

var _ UnsignedTransaction = &RegisterDomainTx{}

type RegisterDomainTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Domain string `serialize:"true" json:"domain"`
}

func (r *RegisterDomainTx) Execute(t *TransactionContext) error {
	if err := parser.CheckDomain(r.Domain); err != nil {
		return err
	}
	name := parser.Canonicalize(r.Domain)
	if reserved(t.Genesis, name) {
		return ErrReservedName
	}
	has, err := HasDomain(t.Database, name)
	if err != nil {
		return err
	}
	if has {
		return ErrDomainExists
	}
	s, err := GetSettings(t.Database)
	if err != nil {
		return err
	}
	price := t.Genesis.DomainTiers.DomainPrice(name, s.DomainPrice)
	if err := verifyDirectPayment(t, price); err != nil {
		return err
	}
	if err := PutDomainInfo(t.Database, name, &DomainInfo{
		Owner:   t.Sender,
		Created: t.BlockTime,
	}); err != nil {
		return err
	}
	t.Emit(&Event{Type: DomainRegistered, Name: name, Value: price})
	return nil
}

func (r *RegisterDomainTx) Copy() UnsignedTransaction {
	return &RegisterDomainTx{
		BaseTx: r.BaseTx.Copy(),
		Domain: r.Domain,
	}
}
