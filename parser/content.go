// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import "strings"

const (
	MinCIDSize     = 46
	MaxCIDSize     = 128
	CIDv0Size      = 46
	MinCIDv1Size   = 50
	MinIPNSSize    = 50
	MaxIPNSSize    = 128
	cidv0Prefix    = "Qm"
	cidv1Prefix    = "baf"
	ipnsPrefix     = "k"
	MaxContentSize = 128
)

// Contenthash types accepted by the resolver.
const (
	ContenthashCIDv0 uint8 = 1
	ContenthashCIDv1 uint8 = 2
	ContenthashIPNS  uint8 = 3

	MinContenthashType = ContenthashCIDv0
	MaxContenthashType = ContenthashIPNS
)

// CheckCID returns an error if cid is not a CIDv0 ("Qm...") or CIDv1
// ("baf...") identifier of 46 to 128 characters.
func CheckCID(cid string) error {
	if len(cid) < MinCIDSize || len(cid) > MaxCIDSize {
		return ErrInvalidCID
	}
	if !strings.HasPrefix(cid, cidv0Prefix) && !strings.HasPrefix(cid, cidv1Prefix) {
		return ErrInvalidCID
	}
	return nil
}

// CheckCIDv0 returns an error if cid is not a 46 character "Qm..." identifier.
func CheckCIDv0(cid string) error {
	if len(cid) != CIDv0Size || !strings.HasPrefix(cid, cidv0Prefix) {
		return ErrInvalidCID
	}
	return nil
}

// CheckCIDv1 returns an error if cid is not a "baf..." identifier of 50 to
// 128 characters.
func CheckCIDv1(cid string) error {
	if len(cid) < MinCIDv1Size || len(cid) > MaxCIDSize || !strings.HasPrefix(cid, cidv1Prefix) {
		return ErrInvalidCID
	}
	return nil
}

// CheckIPNS returns an error if id is not a "k..." IPNS key of 50 to 128
// characters.
func CheckIPNS(id string) error {
	if len(id) < MinIPNSSize || len(id) > MaxIPNSSize || !strings.HasPrefix(id, ipnsPrefix) {
		return ErrInvalidIPNS
	}
	return nil
}

func CheckContenthashType(typ uint8) error {
	if typ < MinContenthashType || typ > MaxContenthashType {
		return ErrInvalidContenthashType
	}
	return nil
}

// CheckContenthash validates value against the rules of the given type.
func CheckContenthash(typ uint8, value string) error {
	switch typ {
	case ContenthashCIDv0:
		return CheckCIDv0(value)
	case ContenthashCIDv1:
		return CheckCIDv1(value)
	case ContenthashIPNS:
		return CheckIPNS(value)
	default:
		return ErrInvalidContenthashType
	}
}
