// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"pgregory.net/rapid"
)

func TestKeyCanonicalization(t *testing.T) {
	t.Parallel()

	if DomainKey("Example") != DomainKey("example") {
		t.Fatal("domain keys must be case-insensitive")
	}
	if SubdomainKey("WWW", "Example") != SubdomainKey("www", "example") {
		t.Fatal("subdomain keys must be case-insensitive")
	}
	// a subdomain occupies the key of its full name
	if SubdomainKey("www", "example") != DomainKey("www.example") {
		t.Fatal("subdomain key must derive from the full name")
	}
	// registry names are used verbatim
	if ScopeKey("myorg") == ScopeKey("MyOrg") {
		t.Fatal("registry keys must not be canonicalized")
	}
}

func TestVersionKeyBindsPackage(t *testing.T) {
	t.Parallel()

	tt := [][2]string{
		{"cli", "1.0.0"},
		{"@myorg/cli", "1.0.0"},
		{"cli", "1.0.1"},
		{"cl", "i:1.0.0"},
	}
	found := ids.NewSet(len(tt))
	for i, tv := range tt {
		k := VersionKey(tv[0], tv[1])
		if found.Contains(k) {
			t.Fatalf("#%d: key collision", i)
		}
		found.Add(k)
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`@?[a-z][a-z0-9-]{0,31}(/[a-z][a-z0-9-]{0,31})?`).Draw(t, "name")
		if PackageKey(name) != PackageKey(name) {
			t.Fatalf("%q: key is not deterministic", name)
		}
	})
}

func TestDeriveKeyInjective(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfDistinct(
			rapid.StringMatching(`[a-z][a-z0-9-]{0,31}`),
			func(s string) string { return s },
		).Draw(t, "names")
		seen := make(map[ids.ID]string, len(names))
		for _, n := range names {
			k := ScopeKey(n)
			if prev, ok := seen[k]; ok {
				t.Fatalf("%q and %q collide", prev, n)
			}
			seen[k] = n
		}
	})
}
