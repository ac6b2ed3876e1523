// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"crypto/ecdsa"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	testCID     = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	testCIDv1   = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
	testIPNS    = "k51qzi5uqu5dlvj2baxnqndepeb86cbk3ng7n3i46uzyxzyqj2xjonzllnv0v8"
	testGenesis = 1_000
)

type testKey struct {
	priv *ecdsa.PrivateKey
	addr common.Address
}

func newTestKey(t *testing.T) *testKey {
	t.Helper()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return &testKey{priv: priv, addr: crypto.PubkeyToAddress(priv.PublicKey)}
}

type testEnv struct {
	t *testing.T

	g        *Genesis
	db       database.Database
	treasury string
	now      uint64

	deployer *testKey
	alice    *testKey
	bob      *testKey

	events []*Event
	nonce  uint64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := &testEnv{
		t:        t,
		db:       memdb.New(),
		now:      testGenesis,
		deployer: newTestKey(t),
		alice:    newTestKey(t),
		bob:      newTestKey(t),
	}
	e.g = DefaultGenesis()
	e.g.Deployer = e.deployer.addr
	if err := e.g.Load(e.db); err != nil {
		t.Fatal(err)
	}
	s, err := GetSettings(e.db)
	if err != nil {
		t.Fatal(err)
	}
	e.treasury = s.TreasuryAddress
	return e
}

func (e *testEnv) pay(amount uint64) []*Output {
	if amount == 0 {
		return nil
	}
	return []*Output{{Address: e.treasury, Value: amount}}
}

// exec runs [utx] atomically the way the executor does: every write is
// discarded if it fails.
func (e *testEnv) exec(from *testKey, outputs []*Output, utx UnsignedTransaction) error {
	return e.execAs(from.addr, from.addr, outputs, utx)
}

func (e *testEnv) execAs(sender, origin common.Address, outputs []*Output, utx UnsignedTransaction) error {
	e.nonce++
	vdb := versiondb.New(e.db)
	tc := &TransactionContext{
		Genesis:   e.g,
		Database:  vdb,
		BlockTime: e.now,
		TxID:      ids.Empty.Prefix(e.nonce),
		Sender:    sender,
		Origin:    origin,
		Outputs:   outputs,
	}
	if err := utx.Execute(tc); err != nil {
		vdb.Abort()
		return err
	}
	if err := vdb.Commit(); err != nil {
		e.t.Fatal(err)
	}
	e.events = append(e.events, tc.Events()...)
	return nil
}

func (e *testEnv) lastEvent() *Event {
	if len(e.events) == 0 {
		e.t.Fatal("no events emitted")
	}
	return e.events[len(e.events)-1]
}

// snapshot returns every key/value pair in the database.
func (e *testEnv) snapshot() map[string][]byte {
	it := e.db.NewIterator()
	defer it.Release()

	kv := map[string][]byte{}
	for it.Next() {
		kv[string(it.Key())] = append([]byte{}, it.Value()...)
	}
	if err := it.Error(); err != nil {
		e.t.Fatal(err)
	}
	return kv
}

func sameSnapshot(a, b map[string][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if !bytes.Equal(v, b[k]) {
			return false
		}
	}
	return true
}

func testSignature(level uint8) []byte {
	switch level {
	case 1:
		return bytes.Repeat([]byte{0x1}, 2420)
	case 2:
		return bytes.Repeat([]byte{0x2}, 3309)
	default:
		return bytes.Repeat([]byte{0x3}, 4627)
	}
}

func testPublish(pkg string, version string) *PublishVersionTx {
	return &PublishVersionTx{
		BaseTx:             &BaseTx{},
		Package:            pkg,
		Version:            version,
		CID:                testCID,
		Checksum:           common.Hash{0x1},
		SecurityLevel:      2,
		CompatibilityRange: ">=1.0.0",
		PluginType:         1,
		PermissionsHash:    common.Hash{0x2},
		Signature:          testSignature(2),
		Dependencies:       []byte(`{"left-pad":"^1.0.0"}`),
	}
}
