// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ethereum/go-ethereum/common"
)

func TestRegistryExampleFlow(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	price := e.g.ScopePrice

	if err := e.exec(e.alice, e.pay(price), &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "myorg"}); err != nil {
		t.Fatal(err)
	}
	s, has, err := GetScopeInfo(e.db, "myorg")
	if err != nil || !has {
		t.Fatalf("scope missing: %v", err)
	}
	if s.Owner != e.alice.addr || s.Created != e.now {
		t.Fatalf("unexpected scope %+v", s)
	}

	// Free for the scope owner
	if err := e.exec(e.alice, nil, &RegisterPackageTx{BaseTx: &BaseTx{}, Package: "@myorg/cli"}); err != nil {
		t.Fatal(err)
	}
	p, has, err := GetPackageInfo(e.db, "@myorg/cli")
	if err != nil || !has {
		t.Fatalf("package missing: %v", err)
	}
	if p.Owner != e.alice.addr || p.VersionCount != 0 || p.Scope != ScopeKey("myorg") {
		t.Fatalf("unexpected package %+v", p)
	}

	pub := testPublish("@myorg/cli", "1.0.0")
	if err := e.exec(e.alice, nil, pub); err != nil {
		t.Fatal(err)
	}
	p, _, err = GetPackageInfo(e.db, "@myorg/cli")
	if err != nil {
		t.Fatal(err)
	}
	if p.VersionCount != 1 || p.LatestVersion != "1.0.0" {
		t.Fatalf("unexpected package %+v", p)
	}
	v, has, err := GetVersionInfo(e.db, "@myorg/cli", "1.0.0")
	if err != nil || !has {
		t.Fatalf("version missing: %v", err)
	}
	if v.CID != testCID || v.CompatibilityRange != ">=1.0.0" || v.Publisher != e.alice.addr {
		t.Fatalf("unexpected version %+v", v)
	}
	if v.SignatureHash != common.Hash(hashing.ComputeHash256Array(pub.Signature)) {
		t.Fatal("signature hash mismatch")
	}
	if v.DependenciesHash != common.Hash(hashing.ComputeHash256Array(pub.Dependencies)) {
		t.Fatal("dependencies hash mismatch")
	}
	if e.lastEvent().Type != VersionPublished {
		t.Fatalf("unexpected event %s", e.lastEvent().Type)
	}

	if err := e.exec(e.alice, nil, testPublish("@myorg/cli", "1.0.0")); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}

	if err := e.exec(e.alice, nil, &DeprecateVersionTx{
		BaseTx:  &BaseTx{},
		Package: "@myorg/cli",
		Version: "1.0.0",
		Reason:  "broken build",
	}); err != nil {
		t.Fatal(err)
	}
	v, _, err = GetVersionInfo(e.db, "@myorg/cli", "1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Deprecated || v.DeprecationReason != "broken build" {
		t.Fatalf("unexpected version %+v", v)
	}

	e.now += e.g.MutabilityWindow + 1
	err = e.exec(e.alice, nil, &UndeprecateVersionTx{BaseTx: &BaseTx{}, Package: "@myorg/cli", Version: "1.0.0"})
	if !errors.Is(err, ErrImmutable) {
		t.Fatalf("expected Immutable, got %v", err)
	}
}

func TestRegisterTwice(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	tt := []UnsignedTransaction{
		&RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "acme"},
		&RegisterPackageTx{BaseTx: &BaseTx{}, Package: "left-pad"},
		&RegisterDomainTx{BaseTx: &BaseTx{}, Domain: "example"},
	}
	for i, tx := range tt {
		if err := e.exec(e.alice, e.pay(100_000_000), tx); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		// regardless of caller
		for _, k := range []*testKey{e.alice, e.bob} {
			if err := e.exec(k, e.pay(100_000_000), tx); !errors.Is(err, ErrAlreadyExists) {
				t.Fatalf("#%d: expected AlreadyExists, got %v", i, err)
			}
		}
	}
}

func TestRegisterPayment(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	tt := []struct {
		tx      UnsignedTransaction
		outputs []*Output
		err     error
	}{
		{
			tx:  &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "acme"},
			err: ErrInsufficientPayment,
		},
		{
			tx:      &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "acme"},
			outputs: e.pay(e.g.ScopePrice - 1),
			err:     ErrInsufficientPayment,
		},
		{
			// paid to the wrong destination
			tx:      &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "acme"},
			outputs: []*Output{{Address: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", Value: e.g.ScopePrice}},
			err:     ErrInsufficientPayment,
		},
		{
			// split across outputs
			tx: &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "acme"},
			outputs: []*Output{
				{Address: e.treasury, Value: e.g.ScopePrice / 2},
				{Address: e.treasury, Value: e.g.ScopePrice - e.g.ScopePrice/2},
			},
		},
		{
			tx:      &RegisterPackageTx{BaseTx: &BaseTx{}, Package: "left-pad"},
			outputs: e.pay(e.g.PackagePrice - 1),
			err:     ErrInsufficientPayment,
		},
		{
			tx:      &RegisterPackageTx{BaseTx: &BaseTx{}, Package: "left-pad"},
			outputs: e.pay(e.g.PackagePrice),
		},
	}
	for i, tv := range tt {
		err := e.exec(e.alice, tv.outputs, tv.tx)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: expected %v, got %v", i, tv.err, err)
		}
	}
}

func TestRegisterInvalidFormat(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	tt := []UnsignedTransaction{
		&RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "MyOrg"},
		&RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "1org"},
		&RegisterPackageTx{BaseTx: &BaseTx{}, Package: "@/cli"},
		&RegisterPackageTx{BaseTx: &BaseTx{}, Package: "@myorg/"},
		&RegisterDomainTx{BaseTx: &BaseTx{}, Domain: "a--b"},
		&RegisterDomainTx{BaseTx: &BaseTx{}, Domain: "ab"},
	}
	for i, tx := range tt {
		if err := e.exec(e.alice, e.pay(100_000_000), tx); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("#%d: expected InvalidFormat, got %v", i, err)
		}
	}
}

func TestReservedName(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	s, has, err := GetScopeInfo(e.db, DefaultReservedName)
	if err != nil || !has || s.Owner != e.deployer.addr {
		t.Fatalf("reserved scope not provisioned: %v", err)
	}
	d, has, err := GetDomainInfo(e.db, DefaultReservedName)
	if err != nil || !has || d.Owner != e.deployer.addr {
		t.Fatalf("reserved domain not provisioned: %v", err)
	}

	for _, k := range []*testKey{e.deployer, e.alice} {
		err := e.exec(k, e.pay(100_000_000), &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: DefaultReservedName})
		if !errors.Is(err, ErrReservedName) {
			t.Fatalf("expected reserved, got %v", err)
		}
		err = e.exec(k, e.pay(100_000_000), &RegisterDomainTx{BaseTx: &BaseTx{}, Domain: "Registry"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected Unauthorized, got %v", err)
		}
	}

	// The deployer publishes under the reserved scope for free
	if err := e.exec(e.deployer, nil, &RegisterPackageTx{BaseTx: &BaseTx{}, Package: "@registry/core"}); err != nil {
		t.Fatal(err)
	}
}

func TestScopedPackage(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	if err := e.exec(e.alice, e.pay(e.g.ScopePrice), &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "myorg"}); err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		from *testKey
		pkg  string
		err  error
	}{
		{from: e.bob, pkg: "@myorg/cli", err: ErrUnauthorized},
		{from: e.bob, pkg: "@nope/cli", err: ErrNotFound},
		{from: e.alice, pkg: "@myorg/cli"},
	}
	for i, tv := range tt {
		// payment never substitutes for scope ownership
		err := e.exec(tv.from, e.pay(e.g.PackagePrice), &RegisterPackageTx{BaseTx: &BaseTx{}, Package: tv.pkg})
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: expected %v, got %v", i, tv.err, err)
		}
	}

	// A package keeps its owner when the scope changes hands
	if err := e.exec(e.alice, nil, &InitiateScopeTransferTx{BaseTx: &BaseTx{}, Scope: "myorg", To: e.bob.addr}); err != nil {
		t.Fatal(err)
	}
	if err := e.exec(e.bob, nil, &AcceptScopeTransferTx{BaseTx: &BaseTx{}, Scope: "myorg"}); err != nil {
		t.Fatal(err)
	}
	if err := e.exec(e.bob, nil, testPublish("@myorg/cli", "1.0.0")); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	if err := e.exec(e.alice, nil, testPublish("@myorg/cli", "1.0.0")); err != nil {
		t.Fatal(err)
	}
}

func TestTwoStepTransfer(t *testing.T) {
	t.Parallel()

	type transferTxs struct {
		initiate func(to common.Address) UnsignedTransaction
		accept   UnsignedTransaction
		cancel   UnsignedTransaction
		owner    func(e *testEnv) common.Address
		register UnsignedTransaction
		pending  func() (byte, ids.ID)
	}
	tt := []transferTxs{
		{
			register: &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "myorg"},
			initiate: func(to common.Address) UnsignedTransaction {
				return &InitiateScopeTransferTx{BaseTx: &BaseTx{}, Scope: "myorg", To: to}
			},
			accept: &AcceptScopeTransferTx{BaseTx: &BaseTx{}, Scope: "myorg"},
			cancel: &CancelScopeTransferTx{BaseTx: &BaseTx{}, Scope: "myorg"},
			owner: func(e *testEnv) common.Address {
				i, _, _ := GetScopeInfo(e.db, "myorg")
				return i.Owner
			},
			pending: func() (byte, ids.ID) { return scopePrefix, ScopeKey("myorg") },
		},
		{
			register: &RegisterPackageTx{BaseTx: &BaseTx{}, Package: "left-pad"},
			initiate: func(to common.Address) UnsignedTransaction {
				return &InitiatePackageTransferTx{BaseTx: &BaseTx{}, Package: "left-pad", To: to}
			},
			accept: &AcceptPackageTransferTx{BaseTx: &BaseTx{}, Package: "left-pad"},
			cancel: &CancelPackageTransferTx{BaseTx: &BaseTx{}, Package: "left-pad"},
			owner: func(e *testEnv) common.Address {
				i, _, _ := GetPackageInfo(e.db, "left-pad")
				return i.Owner
			},
			pending: func() (byte, ids.ID) { return packagePrefix, PackageKey("left-pad") },
		},
		{
			register: &RegisterDomainTx{BaseTx: &BaseTx{}, Domain: "example"},
			initiate: func(to common.Address) UnsignedTransaction {
				return &InitiateDomainTransferTx{BaseTx: &BaseTx{}, Domain: "EXAMPLE", To: to}
			},
			accept: &AcceptDomainTransferTx{BaseTx: &BaseTx{}, Domain: "example"},
			cancel: &CancelDomainTransferTx{BaseTx: &BaseTx{}, Domain: "Example"},
			owner: func(e *testEnv) common.Address {
				i, _, _ := GetDomainInfo(e.db, "example")
				return i.Owner
			},
			pending: func() (byte, ids.ID) { return domainPrefix, DomainKey("example") },
		},
	}
	for i, tv := range tt {
		e := newTestEnv(t)
		if err := e.exec(e.alice, e.pay(100_000_000), tv.register); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		hasPending := func() bool {
			ns, k := tv.pending()
			_, has, err := GetPendingTransfer(e.db, ns, k)
			if err != nil {
				t.Fatal(err)
			}
			return has
		}

		// nothing in flight
		if err := e.exec(e.bob, nil, tv.accept); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("#%d: expected InvalidState, got %v", i, err)
		}
		if err := e.exec(e.alice, nil, tv.cancel); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("#%d: expected InvalidState, got %v", i, err)
		}
		// only the owner initiates, never to the zero address
		if err := e.exec(e.bob, nil, tv.initiate(e.bob.addr)); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("#%d: expected Unauthorized, got %v", i, err)
		}
		if err := e.exec(e.alice, nil, tv.initiate(common.Address{})); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("#%d: expected InvalidFormat, got %v", i, err)
		}

		// cancel restores the idle state
		if err := e.exec(e.alice, nil, tv.initiate(e.bob.addr)); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if err := e.exec(e.bob, nil, tv.cancel); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("#%d: expected Unauthorized, got %v", i, err)
		}
		if err := e.exec(e.alice, nil, tv.cancel); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if hasPending() || tv.owner(e) != e.alice.addr {
			t.Fatalf("#%d: cancel changed state", i)
		}

		// only the pending owner accepts
		if err := e.exec(e.alice, nil, tv.initiate(e.bob.addr)); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		for _, k := range []*testKey{e.alice, e.deployer} {
			if err := e.exec(k, nil, tv.accept); !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("#%d: expected Unauthorized, got %v", i, err)
			}
		}
		if err := e.exec(e.bob, nil, tv.accept); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if hasPending() || tv.owner(e) != e.bob.addr {
			t.Fatalf("#%d: accept did not move ownership", i)
		}
	}
}

func TestInitiateOverwritesPending(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	if err := e.exec(e.alice, e.pay(e.g.ScopePrice), &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "myorg"}); err != nil {
		t.Fatal(err)
	}
	for _, to := range []common.Address{e.bob.addr, e.deployer.addr} {
		if err := e.exec(e.alice, nil, &InitiateScopeTransferTx{BaseTx: &BaseTx{}, Scope: "myorg", To: to}); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.exec(e.bob, nil, &AcceptScopeTransferTx{BaseTx: &BaseTx{}, Scope: "myorg"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	if err := e.exec(e.deployer, nil, &AcceptScopeTransferTx{BaseTx: &BaseTx{}, Scope: "myorg"}); err != nil {
		t.Fatal(err)
	}
}

func TestDeprecationWindow(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	if err := e.exec(e.alice, e.pay(e.g.PackagePrice), &RegisterPackageTx{BaseTx: &BaseTx{}, Package: "left-pad"}); err != nil {
		t.Fatal(err)
	}
	if err := e.exec(e.alice, nil, testPublish("left-pad", "1.0.0")); err != nil {
		t.Fatal(err)
	}
	deprecate := &DeprecateVersionTx{BaseTx: &BaseTx{}, Package: "left-pad", Version: "1.0.0", Reason: "cve"}
	undeprecate := &UndeprecateVersionTx{BaseTx: &BaseTx{}, Package: "left-pad", Version: "1.0.0"}

	tt := []struct {
		from *testKey
		tx   UnsignedTransaction
		err  error
	}{
		{from: e.alice, tx: undeprecate, err: ErrInvalidState},
		{from: e.bob, tx: deprecate, err: ErrUnauthorized},
		{from: e.alice, tx: &DeprecateVersionTx{BaseTx: &BaseTx{}, Package: "left-pad", Version: "2.0.0"}, err: ErrNotFound},
		{from: e.alice, tx: deprecate},
		{from: e.alice, tx: deprecate, err: ErrInvalidState},
		{from: e.alice, tx: undeprecate},
		{from: e.alice, tx: undeprecate, err: ErrInvalidState},
	}
	for i, tv := range tt {
		if err := e.exec(tv.from, nil, tv.tx); !errors.Is(err, tv.err) {
			t.Fatalf("#%d: expected %v, got %v", i, tv.err, err)
		}
	}
	v, _, err := GetVersionInfo(e.db, "left-pad", "1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if v.Deprecated || v.DeprecationReason != "" {
		t.Fatalf("round trip left %+v", v)
	}

	// inclusive upper bound
	e.now = v.Published + e.g.MutabilityWindow
	if err := e.exec(e.alice, nil, deprecate); err != nil {
		t.Fatal(err)
	}
	e.now++
	for _, tx := range []UnsignedTransaction{deprecate, undeprecate} {
		if err := e.exec(e.alice, nil, tx); !errors.Is(err, ErrImmutable) {
			t.Fatalf("expected Immutable, got %v", err)
		}
	}
}

func TestLatestVersionIsMostRecent(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	if err := e.exec(e.alice, e.pay(e.g.PackagePrice), &RegisterPackageTx{BaseTx: &BaseTx{}, Package: "left-pad"}); err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"2.0.0", "1.0.0", "1.5.0-beta.1"} {
		if err := e.exec(e.alice, nil, testPublish("left-pad", v)); err != nil {
			t.Fatal(err)
		}
	}
	p, _, err := GetPackageInfo(e.db, "left-pad")
	if err != nil {
		t.Fatal(err)
	}
	if p.VersionCount != 3 || p.LatestVersion != "1.5.0-beta.1" {
		t.Fatalf("unexpected package %+v", p)
	}
}

func TestPublishValidation(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	if err := e.exec(e.alice, e.pay(e.g.PackagePrice), &RegisterPackageTx{BaseTx: &BaseTx{}, Package: "left-pad"}); err != nil {
		t.Fatal(err)
	}
	tt := []struct {
		mutate func(p *PublishVersionTx)
		err    error
	}{
		{mutate: func(p *PublishVersionTx) { p.Version = "1.0" }, err: ErrInvalidFormat},
		{mutate: func(p *PublishVersionTx) { p.CID = "Qm123" }, err: ErrInvalidFormat},
		{mutate: func(p *PublishVersionTx) { p.Checksum = common.Hash{} }, err: ErrInvalidFormat},
		{mutate: func(p *PublishVersionTx) { p.SecurityLevel = 4 }, err: ErrInvalidFormat},
		{mutate: func(p *PublishVersionTx) { p.SecurityLevel = 1 }, err: ErrInvalidFormat},
		{mutate: func(p *PublishVersionTx) { p.CompatibilityRange = "latest" }, err: ErrInvalidFormat},
		{mutate: func(p *PublishVersionTx) { p.PluginType = 3 }, err: ErrInvalidFormat},
		{mutate: func(p *PublishVersionTx) { p.Package = "right-pad" }, err: ErrNotFound},
		{mutate: func(p *PublishVersionTx) { p.SecurityLevel, p.Signature = 3, testSignature(3) }},
	}
	for i, tv := range tt {
		p := testPublish("left-pad", "1.0.0")
		tv.mutate(p)
		if err := e.exec(e.alice, nil, p); !errors.Is(err, tv.err) {
			t.Fatalf("#%d: expected %v, got %v", i, tv.err, err)
		}
	}
}

func TestFailedExecutionLeavesNoTrace(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	before := e.snapshot()
	events := len(e.events)

	// fails on payment after the existence checks succeeded
	if err := e.exec(e.alice, e.pay(1), &RegisterScopeTx{BaseTx: &BaseTx{}, Scope: "myorg"}); err == nil {
		t.Fatal("expected failure")
	}
	if !sameSnapshot(before, e.snapshot()) {
		t.Fatal("failed execution modified the database")
	}
	if len(e.events) != events {
		t.Fatal("failed execution emitted events")
	}
}
