// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/registryvm/parser"
)

var (
	_ UnsignedTransaction = &CreateSubdomainTx{}
	_ UnsignedTransaction = &DeleteSubdomainTx{}
)

// parentDomain checks [label] under [domain] and that the sender owns the
// parent domain. It returns the canonical label and domain.
func parentDomain(t *TransactionContext, label string, domain string) (string, string, error) {
	name, d, err := getDomain(t, domain)
	if err != nil {
		return "", "", err
	}
	label = parser.Canonicalize(label)
	if err := parser.CheckSubdomain(label, name); err != nil {
		return "", "", err
	}
	if !t.authorized(d.Owner) {
		return "", "", ErrNotParentOwner
	}
	return label, name, nil
}

type CreateSubdomainTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Label  string `serialize:"true" json:"label"`
	Domain string `serialize:"true" json:"domain"`

	// Owner defaults to the sender when empty.
	Owner common.Address `serialize:"true" json:"owner"`
}

func (c *CreateSubdomainTx) Execute(t *TransactionContext) error {
	label, domain, err := parentDomain(t, c.Label, c.Domain)
	if err != nil {
		return err
	}
	_, has, err := GetSubdomainInfo(t.Database, label, domain)
	if err != nil {
		return err
	}
	if has {
		return ErrSubdomainExists
	}
	owner := c.Owner
	if owner == (common.Address{}) {
		owner = t.Sender
	}
	if err := PutSubdomainInfo(t.Database, label, domain, &SubdomainInfo{
		Owner:   owner,
		Parent:  DomainKey(domain),
		Created: t.BlockTime,
	}); err != nil {
		return err
	}
	t.Emit(&Event{Type: SubdomainCreated, Name: label + parser.DomainDelimiter + domain, To: addressRef(owner)})
	return nil
}

func (c *CreateSubdomainTx) Copy() UnsignedTransaction {
	owner := make([]byte, common.AddressLength)
	copy(owner, c.Owner[:])
	return &CreateSubdomainTx{
		BaseTx: c.BaseTx.Copy(),
		Label:  c.Label,
		Domain: c.Domain,
		Owner:  common.BytesToAddress(owner),
	}
}

// DeleteSubdomainTx removes a subdomain and everything attached to it. Only
// the owner of the parent domain may delete.
type DeleteSubdomainTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Label  string `serialize:"true" json:"label"`
	Domain string `serialize:"true" json:"domain"`
}

func (d *DeleteSubdomainTx) Execute(t *TransactionContext) error {
	label, domain, err := parentDomain(t, d.Label, d.Domain)
	if err != nil {
		return err
	}
	_, has, err := GetSubdomainInfo(t.Database, label, domain)
	if err != nil {
		return err
	}
	if !has {
		return ErrSubdomainMissing
	}
	if err := DeleteSubdomainInfo(t.Database, label, domain); err != nil {
		return err
	}
	t.Emit(&Event{Type: SubdomainDeleted, Name: label + parser.DomainDelimiter + domain})
	return nil
}

func (d *DeleteSubdomainTx) Copy() UnsignedTransaction {
	return &DeleteSubdomainTx{
		BaseTx: d.BaseTx.Copy(),
		Label:  d.Label,
		Domain: d.Domain,
	}
}
