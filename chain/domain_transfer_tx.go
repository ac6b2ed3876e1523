// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/registryvm/parser"
)

var (
	_ UnsignedTransaction = &InitiateDomainTransferTx{}
	_ UnsignedTransaction = &AcceptDomainTransferTx{}
	_ UnsignedTransaction = &CancelDomainTransferTx{}
	_ UnsignedTransaction = &TransferDomainTx{}
)

// getDomain returns the canonical name of [domain] and its record.
func getDomain(t *TransactionContext, domain string) (string, *DomainInfo, error) {
	if err := parser.CheckDomain(domain); err != nil {
		return "", nil, err
	}
	name := parser.Canonicalize(domain)
	i, has, err := GetDomainInfo(t.Database, name)
	if err != nil {
		return "", nil, err
	}
	if !has {
		return "", nil, ErrDomainMissing
	}
	return name, i, nil
}

// moveDomain reassigns ownership in one step and drops any transfer that
// was in flight.
func moveDomain(t *TransactionContext, name string, i *DomainInfo, to common.Address) error {
	if to == (common.Address{}) {
		return ErrInvalidOwner
	}
	if to == i.Owner {
		return ErrNonActionable
	}
	i.Owner = to
	if err := PutDomainInfo(t.Database, name, i); err != nil {
		return err
	}
	return DeletePendingTransfer(t.Database, domainPrefix, DomainKey(name))
}

type InitiateDomainTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Domain string         `serialize:"true" json:"domain"`
	To     common.Address `serialize:"true" json:"to"`
}

func (i *InitiateDomainTransferTx) Execute(t *TransactionContext) error {
	name, d, err := getDomain(t, i.Domain)
	if err != nil {
		return err
	}
	if err := initiateTransfer(t, domainPrefix, DomainKey(name), d.Owner, i.To); err != nil {
		return err
	}
	t.Emit(&Event{Type: DomainTransferInitiated, Name: name, To: addressRef(i.To)})
	return nil
}

func (i *InitiateDomainTransferTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, i.To[:])
	return &InitiateDomainTransferTx{
		BaseTx: i.BaseTx.Copy(),
		Domain: i.Domain,
		To:     common.BytesToAddress(to),
	}
}

type AcceptDomainTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Domain string `serialize:"true" json:"domain"`
}

func (a *AcceptDomainTransferTx) Execute(t *TransactionContext) error {
	name, d, err := getDomain(t, a.Domain)
	if err != nil {
		return err
	}
	if d.Owner, err = acceptTransfer(t, domainPrefix, DomainKey(name)); err != nil {
		return err
	}
	if err := PutDomainInfo(t.Database, name, d); err != nil {
		return err
	}
	t.Emit(&Event{Type: DomainTransferCompleted, Name: name, To: addressRef(d.Owner)})
	return nil
}

func (a *AcceptDomainTransferTx) Copy() UnsignedTransaction {
	return &AcceptDomainTransferTx{
		BaseTx: a.BaseTx.Copy(),
		Domain: a.Domain,
	}
}

type CancelDomainTransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Domain string `serialize:"true" json:"domain"`
}

func (c *CancelDomainTransferTx) Execute(t *TransactionContext) error {
	name, d, err := getDomain(t, c.Domain)
	if err != nil {
		return err
	}
	if err := cancelTransfer(t, domainPrefix, DomainKey(name), d.Owner); err != nil {
		return err
	}
	t.Emit(&Event{Type: DomainTransferCancelled, Name: name})
	return nil
}

func (c *CancelDomainTransferTx) Copy() UnsignedTransaction {
	return &CancelDomainTransferTx{
		BaseTx: c.BaseTx.Copy(),
		Domain: c.Domain,
	}
}

// TransferDomainTx moves a domain without the acceptance step.
type TransferDomainTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Domain string         `serialize:"true" json:"domain"`
	To     common.Address `serialize:"true" json:"to"`
}

func (m *TransferDomainTx) Execute(t *TransactionContext) error {
	name, d, err := getDomain(t, m.Domain)
	if err != nil {
		return err
	}
	if !t.authorized(d.Owner) {
		return ErrNotOwner
	}
	if err := moveDomain(t, name, d, m.To); err != nil {
		return err
	}
	t.Emit(&Event{Type: DomainTransferred, Name: name, To: addressRef(m.To)})
	return nil
}

func (m *TransferDomainTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, m.To[:])
	return &TransferDomainTx{
		BaseTx: m.BaseTx.Copy(),
		Domain: m.Domain,
		To:     common.BytesToAddress(to),
	}
}
