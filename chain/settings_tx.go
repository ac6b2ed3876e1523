// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/registryvm/parser"
)

var (
	_ UnsignedTransaction = &SetTreasuryTx{}
	_ UnsignedTransaction = &SetScopePriceTx{}
	_ UnsignedTransaction = &SetPackagePriceTx{}
	_ UnsignedTransaction = &SetDomainPriceTx{}
)

type SetTreasuryTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Address string `serialize:"true" json:"address"`
}

func (s *SetTreasuryTx) Execute(t *TransactionContext) error {
	if err := parser.CheckAddress(t.Genesis.AddressPrefix, s.Address); err != nil {
		return err
	}
	if err := updateSettings(t, func(st *Settings) { st.TreasuryAddress = s.Address }); err != nil {
		return err
	}
	t.Emit(&Event{Type: TreasuryChanged, Detail: s.Address})
	return nil
}

func (s *SetTreasuryTx) Copy() UnsignedTransaction {
	return &SetTreasuryTx{BaseTx: s.BaseTx.Copy(), Address: s.Address}
}

type SetScopePriceTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Price uint64 `serialize:"true" json:"price"`
}

func (s *SetScopePriceTx) Execute(t *TransactionContext) error {
	if err := updateSettings(t, func(st *Settings) { st.ScopePrice = s.Price }); err != nil {
		return err
	}
	t.Emit(&Event{Type: ScopePriceChanged, Value: s.Price})
	return nil
}

func (s *SetScopePriceTx) Copy() UnsignedTransaction {
	return &SetScopePriceTx{BaseTx: s.BaseTx.Copy(), Price: s.Price}
}

type SetPackagePriceTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Price uint64 `serialize:"true" json:"price"`
}

func (s *SetPackagePriceTx) Execute(t *TransactionContext) error {
	if err := updateSettings(t, func(st *Settings) { st.PackagePrice = s.Price }); err != nil {
		return err
	}
	t.Emit(&Event{Type: PackagePriceChanged, Value: s.Price})
	return nil
}

func (s *SetPackagePriceTx) Copy() UnsignedTransaction {
	return &SetPackagePriceTx{BaseTx: s.BaseTx.Copy(), Price: s.Price}
}

// SetDomainPriceTx sets the base price paid by domains no tier applies to.
type SetDomainPriceTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Price uint64 `serialize:"true" json:"price"`
}

func (s *SetDomainPriceTx) Execute(t *TransactionContext) error {
	if err := updateSettings(t, func(st *Settings) { st.DomainPrice = s.Price }); err != nil {
		return err
	}
	t.Emit(&Event{Type: DomainPriceChanged, Value: s.Price})
	return nil
}

func (s *SetDomainPriceTx) Copy() UnsignedTransaction {
	return &SetDomainPriceTx{BaseTx: s.BaseTx.Copy(), Price: s.Price}
}
