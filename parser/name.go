// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import (
	"regexp"
	"strings"
)

const (
	MaxScopeSize     = 32
	MaxPackageSize   = 64
	MinDomainSize    = 3
	MaxDomainSize    = 63
	MaxLabelSize     = 63
	MaxFullNameSize  = 253
	ScopeIndicator   = '@'
	ScopeDelimiter   = "/"
	DomainDelimiter  = "."
	minScopedSlashAt = 2
)

var (
	scopeReg   = regexp.MustCompile("^[a-z][a-z0-9-]{0,31}$")
	packageReg = regexp.MustCompile("^[a-z][a-z0-9-]{0,63}$")
	domainReg  = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]$")
	labelReg   = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-]{0,62}$")
)

// CheckScope returns an error if the scope name format is invalid.
func CheckScope(scope string) error {
	if !scopeReg.MatchString(scope) {
		return ErrInvalidScope
	}
	return nil
}

// CheckUnscopedPackage returns an error if the unscoped package name format
// is invalid.
func CheckUnscopedPackage(name string) error {
	if !packageReg.MatchString(name) {
		return ErrInvalidPackage
	}
	return nil
}

// ParsePackage validates a package name and splits it into its scope (empty
// when unscoped) and bare name.
//
// "cli"        -> ("", "cli")
// "@myorg/cli" -> ("myorg", "cli")
func ParsePackage(name string) (scope string, bare string, err error) {
	if len(name) == 0 || name[0] != ScopeIndicator {
		if err := CheckUnscopedPackage(name); err != nil {
			return "", "", err
		}
		return "", name, nil
	}

	idx := strings.Index(name, ScopeDelimiter)
	if idx < minScopedSlashAt || idx == len(name)-1 {
		return "", "", ErrInvalidScopedPackage
	}
	scope, bare = name[1:idx], name[idx+1:]
	if err := CheckScope(scope); err != nil {
		return "", "", err
	}
	if err := CheckUnscopedPackage(bare); err != nil {
		return "", "", err
	}
	return scope, bare, nil
}

// CheckPackage returns an error if the (scoped or unscoped) package name
// format is invalid.
func CheckPackage(name string) error {
	_, _, err := ParsePackage(name)
	return err
}

// CheckDomain returns an error if the domain format is invalid. Mixed case
// is accepted; callers canonicalize before deriving keys.
func CheckDomain(domain string) error {
	if !domainReg.MatchString(domain) || strings.Contains(domain, "--") {
		return ErrInvalidDomain
	}
	return nil
}

// CheckSubdomain returns an error if the label is invalid or the full name
// "label.domain" is too long.
func CheckSubdomain(label string, domain string) error {
	if !labelReg.MatchString(label) {
		return ErrInvalidSubdomain
	}
	if len(label)+len(DomainDelimiter)+len(domain) > MaxFullNameSize {
		return ErrNameTooLong
	}
	return nil
}

// ResolveName splits "label.domain" into its parts. A name without a
// delimiter is a bare domain and returns an empty label.
func ResolveName(name string) (label string, domain string, err error) {
	name = Canonicalize(name)
	idx := strings.Index(name, DomainDelimiter)
	if idx == -1 {
		if err := CheckDomain(name); err != nil {
			return "", "", err
		}
		return "", name, nil
	}
	label, domain = name[:idx], name[idx+1:]
	if err := CheckDomain(domain); err != nil {
		return "", "", err
	}
	if err := CheckSubdomain(label, domain); err != nil {
		return "", "", err
	}
	return label, domain, nil
}
