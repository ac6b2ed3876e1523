// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
)

func signedTx(t *testing.T, k *testKey, utx UnsignedTransaction, outputs []*Output) *Transaction {
	t.Helper()

	dh, err := DigestHash(utx, outputs)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(dh, k.priv)
	if err != nil {
		t.Fatal(err)
	}
	return NewTx(utx, outputs, sig)
}

func TestTransactionIDs(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	found := ids.NewSet(3)
	for i := uint64(0); i < 3; i++ {
		tx := signedTx(t, e.alice, &RegisterScopeTx{
			BaseTx: &BaseTx{Magic: e.g.Magic, Nonce: i},
			Scope:  "myorg",
		}, nil)
		if err := tx.Init(e.g); err != nil {
			t.Fatal(err)
		}
		if found.Contains(tx.ID()) {
			t.Fatal("duplicate transaction ID")
		}
		found.Add(tx.ID())
		if tx.Sender() != e.alice.addr {
			t.Fatalf("expected sender %s, got %s", e.alice.addr, tx.Sender())
		}
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	tx := signedTx(t, e.alice, testPublish("left-pad", "1.0.0"), e.pay(10))
	if err := tx.Init(e.g); err != nil {
		t.Fatal(err)
	}

	parsed := new(Transaction)
	if _, err := Unmarshal(tx.Bytes(), parsed); err != nil {
		t.Fatal(err)
	}
	if err := parsed.Init(e.g); err != nil {
		t.Fatal(err)
	}
	if parsed.ID() != tx.ID() || parsed.Sender() != e.alice.addr {
		t.Fatal("transaction changed across encoding")
	}
	if _, ok := parsed.UnsignedTransaction.(*PublishVersionTx); !ok {
		t.Fatalf("unexpected type %T", parsed.UnsignedTransaction)
	}
}

func TestTransactionExecute(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	tt := []struct {
		createTx func() *Transaction
		initErr  error
		execErr  error
	}{
		{
			createTx: func() *Transaction {
				return signedTx(t, e.alice, &RegisterScopeTx{BaseTx: &BaseTx{Magic: e.g.Magic}, Scope: "myorg"}, e.pay(e.g.ScopePrice))
			},
		},
		{
			// the same transaction twice
			createTx: func() *Transaction {
				return signedTx(t, e.alice, &RegisterScopeTx{BaseTx: &BaseTx{Magic: e.g.Magic}, Scope: "myorg"}, e.pay(e.g.ScopePrice))
			},
			execErr: ErrDuplicateTx,
		},
		{
			createTx: func() *Transaction {
				return signedTx(t, e.alice, &RegisterScopeTx{BaseTx: &BaseTx{Magic: e.g.Magic + 1}, Scope: "other"}, e.pay(e.g.ScopePrice))
			},
			execErr: ErrInvalidMagic,
		},
		{
			createTx: func() *Transaction {
				tx := signedTx(t, e.alice, &RegisterScopeTx{BaseTx: &BaseTx{Magic: e.g.Magic}, Scope: "other"}, nil)
				tx.Signature = []byte("invalid")
				return tx
			},
			initErr: ErrInvalidSignature,
		},
		{
			// v without the legacy offset
			createTx: func() *Transaction {
				tx := signedTx(t, e.alice, &RegisterScopeTx{BaseTx: &BaseTx{Magic: e.g.Magic}, Scope: "other"}, nil)
				tx.Signature[vOffset] -= legacySigAdj
				return tx
			},
			initErr: ErrNonCanonicalSignature,
		},
		{
			createTx: func() *Transaction {
				outputs := make([]*Output, MaxOutputs+1)
				for i := range outputs {
					outputs[i] = &Output{Address: e.treasury, Value: 1}
				}
				return signedTx(t, e.alice, &RegisterScopeTx{BaseTx: &BaseTx{Magic: e.g.Magic}, Scope: "other"}, outputs)
			},
			initErr: ErrTooManyOutputs,
		},
	}
	for i, tv := range tt {
		tx := tv.createTx()
		err := tx.Init(e.g)
		if !errors.Is(err, tv.initErr) {
			t.Fatalf("#%d: unexpected tx.Init error %v, expected %v", i, err, tv.initErr)
		}
		if err != nil {
			continue
		}
		events, err := tx.Execute(e.g, e.db, e.now)
		if !errors.Is(err, tv.execErr) {
			t.Fatalf("#%d: unexpected tx.Execute error %v, expected %v", i, err, tv.execErr)
		}
		if err == nil && (len(events) != 1 || events[0].TxID != tx.ID()) {
			t.Fatalf("#%d: unexpected events %+v", i, events)
		}
	}
}

func TestExecuteRequiresSettings(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	tx := signedTx(t, e.alice, &RegisterScopeTx{BaseTx: &BaseTx{Magic: e.g.Magic}, Scope: "myorg"}, nil)
	if err := tx.Init(e.g); err != nil {
		t.Fatal(err)
	}
	if _, err := tx.Execute(e.g, memdb.New(), e.now); err == nil {
		t.Fatal("expected failure on an unloaded database")
	}
}

func TestOutputsAreSigned(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	tx := signedTx(t, e.alice, &RegisterScopeTx{BaseTx: &BaseTx{Magic: e.g.Magic}, Scope: "myorg"}, e.pay(1))
	tx.Outputs = e.pay(e.g.ScopePrice)
	if err := tx.Init(e.g); err != nil {
		t.Fatal(err)
	}
	if tx.Sender() == e.alice.addr {
		t.Fatal("tampered outputs recovered the original sender")
	}
}
