// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines the syntax checks applied to untrusted registry input.
// Every check is a pure function that either passes or returns an error
// wrapping ErrInvalidFormat.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFormat = errors.New("invalid format")

var (
	ErrInvalidScope              = fmt.Errorf("%w: scope must be ^[a-z][a-z0-9-]{0,31}$", ErrInvalidFormat)
	ErrInvalidPackage            = fmt.Errorf("%w: package must be ^[a-z][a-z0-9-]{0,63}$ or @scope/name", ErrInvalidFormat)
	ErrInvalidScopedPackage      = fmt.Errorf("%w: scoped package must be of the form @scope/name", ErrInvalidFormat)
	ErrInvalidDomain             = fmt.Errorf("%w: invalid domain", ErrInvalidFormat)
	ErrInvalidSubdomain          = fmt.Errorf("%w: invalid subdomain label", ErrInvalidFormat)
	ErrNameTooLong               = fmt.Errorf("%w: full name exceeds %d characters", ErrInvalidFormat, MaxFullNameSize)
	ErrInvalidVersion            = fmt.Errorf("%w: invalid semantic version", ErrInvalidFormat)
	ErrInvalidCID                = fmt.Errorf("%w: invalid ipfs cid", ErrInvalidFormat)
	ErrInvalidIPNS               = fmt.Errorf("%w: invalid ipns id", ErrInvalidFormat)
	ErrInvalidCompatibilityRange = fmt.Errorf("%w: invalid compatibility range", ErrInvalidFormat)
	ErrInvalidAddress            = fmt.Errorf("%w: invalid treasury address", ErrInvalidFormat)
	ErrMissingChecksum           = fmt.Errorf("%w: checksum is missing", ErrInvalidFormat)
	ErrInvalidSecurityLevel      = fmt.Errorf("%w: security level must be in [1,3]", ErrInvalidFormat)
	ErrInvalidSignatureLength    = fmt.Errorf("%w: signature length does not match security level", ErrInvalidFormat)
	ErrInvalidPluginType         = fmt.Errorf("%w: plugin type out of range", ErrInvalidFormat)
	ErrInvalidContenthashType    = fmt.Errorf("%w: contenthash type out of range", ErrInvalidFormat)
	ErrReasonTooLong             = fmt.Errorf("%w: deprecation reason too long", ErrInvalidFormat)
)

// Canonicalize returns the form of a resolver name used for key derivation
// and validation. Domains are case-insensitive.
func Canonicalize(name string) string {
	return strings.ToLower(name)
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isLower(c) || isDigit(c) || (c >= 'A' && c <= 'Z')
}
