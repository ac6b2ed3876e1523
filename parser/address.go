// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import "strings"

const (
	MinAddressSize = 42
	MaxAddressSize = 62

	// DefaultAddressPrefix is the human-readable part plus separator of
	// mainnet segwit addresses.
	DefaultAddressPrefix = "bc1"

	bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

// CheckAddress returns an error if addr is not a segwit (v0 "q") or taproot
// (v1 "p") address under the given prefix. Only the shape is checked; the
// bech32 checksum is not.
func CheckAddress(prefix string, addr string) error {
	if len(addr) < MinAddressSize || len(addr) > MaxAddressSize {
		return ErrInvalidAddress
	}
	if !strings.HasPrefix(addr, prefix) || len(addr) <= len(prefix) {
		return ErrInvalidAddress
	}
	rest := addr[len(prefix):]
	if rest[0] != 'p' && rest[0] != 'q' {
		return ErrInvalidAddress
	}
	for i := 1; i < len(rest); i++ {
		if strings.IndexByte(bech32Charset, rest[i]) == -1 {
			return ErrInvalidAddress
		}
	}
	return nil
}
