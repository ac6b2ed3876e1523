// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/registryvm/parser"
)

const versionDelimiter = ":"

// DeriveKey maps a canonical name to its fixed-width storage address.
func DeriveKey(name string) ids.ID {
	return ids.ID(sha3.Sum256([]byte(name)))
}

// Registry names are already constrained to lowercase, so they are used
// verbatim.
func ScopeKey(scope string) ids.ID { return DeriveKey(scope) }

func PackageKey(pkg string) ids.ID { return DeriveKey(pkg) }

func VersionKey(pkg string, version string) ids.ID {
	return DeriveKey(pkg + versionDelimiter + version)
}

// Resolver names are case-insensitive.
func DomainKey(domain string) ids.ID {
	return DeriveKey(parser.Canonicalize(domain))
}

func SubdomainKey(label string, domain string) ids.ID {
	return DeriveKey(parser.Canonicalize(label + parser.DomainDelimiter + domain))
}
