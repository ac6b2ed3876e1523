// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/registryvm/parser"
)

var (
	_ UnsignedTransaction = &SetContenthashTx{}
	_ UnsignedTransaction = &ClearContenthashTx{}
	_ UnsignedTransaction = &SetTTLTx{}
)

// ownedName returns the record [name] resolves to if the sender owns it.
// Resolver records have no mutability window.
func ownedName(t *TransactionContext, name string) (*record, error) {
	r, err := lookupName(t.Database, name)
	if err != nil {
		return nil, err
	}
	if !t.authorized(r.owner()) {
		return nil, ErrNotOwner
	}
	return r, nil
}

type SetContenthashTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Name            string `serialize:"true" json:"name"`
	ContenthashType uint8  `serialize:"true" json:"contenthashType"`
	Contenthash     string `serialize:"true" json:"contenthash"`
}

func (s *SetContenthashTx) Execute(t *TransactionContext) error {
	if err := parser.CheckContenthash(s.ContenthashType, s.Contenthash); err != nil {
		return err
	}
	r, err := ownedName(t, s.Name)
	if err != nil {
		return err
	}
	r.setContenthash(s.ContenthashType, s.Contenthash)
	if err := r.put(t.Database); err != nil {
		return err
	}
	t.Emit(&Event{Type: ContenthashSet, Name: r.name(), Value: uint64(s.ContenthashType), Detail: s.Contenthash})
	return nil
}

func (s *SetContenthashTx) Copy() UnsignedTransaction {
	return &SetContenthashTx{
		BaseTx:          s.BaseTx.Copy(),
		Name:            s.Name,
		ContenthashType: s.ContenthashType,
		Contenthash:     s.Contenthash,
	}
}

type ClearContenthashTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Name string `serialize:"true" json:"name"`
}

func (c *ClearContenthashTx) Execute(t *TransactionContext) error {
	r, err := ownedName(t, c.Name)
	if err != nil {
		return err
	}
	if _, value := r.contenthash(); len(value) == 0 {
		return ErrContenthashMissing
	}
	r.setContenthash(0, "")
	if err := r.put(t.Database); err != nil {
		return err
	}
	t.Emit(&Event{Type: ContenthashCleared, Name: r.name()})
	return nil
}

func (c *ClearContenthashTx) Copy() UnsignedTransaction {
	return &ClearContenthashTx{
		BaseTx: c.BaseTx.Copy(),
		Name:   c.Name,
	}
}

type SetTTLTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Name string `serialize:"true" json:"name"`
	TTL  uint64 `serialize:"true" json:"ttl"`
}

func (s *SetTTLTx) Execute(t *TransactionContext) error {
	r, err := ownedName(t, s.Name)
	if err != nil {
		return err
	}
	r.setTTL(s.TTL)
	if err := r.put(t.Database); err != nil {
		return err
	}
	t.Emit(&Event{Type: TTLSet, Name: r.name(), Value: s.TTL})
	return nil
}

func (s *SetTTLTx) Copy() UnsignedTransaction {
	return &SetTTLTx{
		BaseTx: s.BaseTx.Copy(),
		Name:   s.Name,
		TTL:    s.TTL,
	}
}
