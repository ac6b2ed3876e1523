// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Outputs             []*Output `serialize:"true" json:"outputs"`
	Signature           []byte    `serialize:"true" json:"signature"`

	digestHash []byte
	bytes      []byte
	id         ids.ID
	size       uint64
	sender     common.Address
}

// signedPayload is what the sender commits to. The magic is carried inside
// the unsigned transaction.
type signedPayload struct {
	UnsignedTransaction `serialize:"true"`
	Outputs             []*Output `serialize:"true"`
}

func NewTx(utx UnsignedTransaction, outputs []*Output, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Outputs:             outputs,
		Signature:           sig,
	}
}

// DigestHash returns the hash a sender signs to authorize [utx] together
// with its [outputs].
func DigestHash(utx UnsignedTransaction, outputs []*Output) ([]byte, error) {
	b, err := Marshal(&signedPayload{UnsignedTransaction: utx, Outputs: outputs})
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(b), nil
}

func (t *Transaction) Init(g *Genesis) error {
	if t.UnsignedTransaction == nil {
		return ErrInvalidType
	}
	if len(t.Outputs) > MaxOutputs {
		return ErrTooManyOutputs
	}
	dh, err := DigestHash(t.UnsignedTransaction, t.Outputs)
	if err != nil {
		return err
	}
	t.digestHash = dh

	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx

	// The ID commits to the signed content, not to the signature bytes.
	h := sha3.Sum256(t.digestHash)
	id, err := ids.ToID(h[:])
	if err != nil {
		return err
	}
	t.id = id
	t.size = uint64(len(t.bytes))

	sender, err := DeriveSender(t.digestHash, t.Signature)
	if err != nil {
		return err
	}
	t.sender = sender
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) DigestHash() []byte { return t.digestHash }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Sender() common.Address { return t.sender }

// Execute runs the transaction against [db]. The caller is responsible for
// discarding every write made to [db] when an error is returned.
func (t *Transaction) Execute(g *Genesis, db database.Database, blockTime uint64) ([]*Event, error) {
	if err := t.UnsignedTransaction.ExecuteBase(g); err != nil {
		return nil, err
	}
	if len(t.Outputs) > MaxOutputs {
		return nil, ErrTooManyOutputs
	}
	dup, err := HasTransaction(db, t.id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateTx
	}
	tc := &TransactionContext{
		Genesis:   g,
		Database:  db,
		BlockTime: blockTime,
		TxID:      t.id,
		Sender:    t.sender,
		Origin:    t.sender,
		Outputs:   t.Outputs,
	}
	if err := t.UnsignedTransaction.Execute(tc); err != nil {
		return nil, err
	}
	if err := SetTransaction(db, t.id); err != nil {
		return nil, err
	}
	return tc.Events(), nil
}
