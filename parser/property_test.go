// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestValidatorsAreTotal(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "input")
		checks := []func(string) error{
			CheckScope,
			CheckPackage,
			CheckDomain,
			CheckVersion,
			CheckCompatibilityRange,
			CheckCID,
			CheckIPNS,
			CheckReason,
			func(s string) error { return CheckAddress(DefaultAddressPrefix, s) },
			func(s string) error { return CheckSubdomain(s, "example") },
		}
		for _, check := range checks {
			if err := check(s); err != nil && !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("unexpected error kind for %q: %v", s, err)
			}
		}
	})
}

func TestValidScopedPackagesParse(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		scope := rapid.StringMatching(`[a-z][a-z0-9-]{0,31}`).Draw(t, "scope")
		name := rapid.StringMatching(`[a-z][a-z0-9-]{0,63}`).Draw(t, "name")
		s, b, err := ParsePackage("@" + scope + "/" + name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != scope || b != name {
			t.Fatalf("expected (%q, %q), got (%q, %q)", scope, name, s, b)
		}
	})
}

func TestValidVersionsPass(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		v := rapid.StringMatching(`[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}(-[a-z0-9]{1,8})?`).Draw(t, "version")
		if err := CheckVersion(v); err != nil {
			t.Fatalf("%q: %v", v, err)
		}
	})
}
