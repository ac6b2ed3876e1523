// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &TransferDomainBySignatureTx{}

// TransferDomainBySignatureTx lets any sender relay a transfer the owner
// authorized off-chain.
type TransferDomainBySignatureTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Domain        string         `serialize:"true" json:"domain"`
	To            common.Address `serialize:"true" json:"to"`
	Deadline      uint64         `serialize:"true" json:"deadline"`
	Authorization []byte         `serialize:"true" json:"authorization"`
}

func (s *TransferDomainBySignatureTx) Execute(t *TransactionContext) error {
	name, d, err := getDomain(t, s.Domain)
	if err != nil {
		return err
	}
	if t.BlockTime > s.Deadline {
		return ErrDeadlineExpired
	}
	dh, err := TransferDomainDigest(t.Genesis.Magic, name, s.To, s.Deadline)
	if err != nil {
		return err
	}
	signer, err := DeriveSender(dh, s.Authorization)
	if err != nil {
		return err
	}
	if signer != d.Owner {
		return ErrSignerMismatch
	}
	digest, err := ids.ToID(dh)
	if err != nil {
		return err
	}
	used, err := HasAuthorization(t.Database, digest)
	if err != nil {
		return err
	}
	if used {
		return ErrAuthorizationUsed
	}
	if err := moveDomain(t, name, d, s.To); err != nil {
		return err
	}
	if err := SetAuthorization(t.Database, digest); err != nil {
		return err
	}
	t.Emit(&Event{Type: DomainTransferred, Name: name, Actor: signer, To: addressRef(s.To)})
	return nil
}

func (s *TransferDomainBySignatureTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, s.To[:])
	auth := make([]byte, len(s.Authorization))
	copy(auth, s.Authorization)
	return &TransferDomainBySignatureTx{
		BaseTx:        s.BaseTx.Copy(),
		Domain:        s.Domain,
		To:            common.BytesToAddress(to),
		Deadline:      s.Deadline,
		Authorization: auth,
	}
}
