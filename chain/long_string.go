// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/registryvm/parser"
)

var ErrStringTooLong = fmt.Errorf("%w: string exceeds field capacity", ErrInvalidFormat)

// LongString is a bounded variable-length string slot attached to a record.
// Values are stored as a length-prefixed blob under (namespace, tag, key),
// independent of the fixed-width record stored under (namespace, key).
type LongString struct {
	namespace byte
	tag       byte
	max       int
}

const (
	latestVersionTag byte = iota
	cidTag
	compatibilityTag
	reasonTag
	contenthashTag
)

var (
	latestVersionField    = LongString{packagePrefix, latestVersionTag, parser.MaxVersionSize}
	cidField              = LongString{versionPrefix, cidTag, parser.MaxCIDSize}
	compatibilityField    = LongString{versionPrefix, compatibilityTag, parser.MaxCompatibilityRangeSize}
	reasonField           = LongString{versionPrefix, reasonTag, parser.MaxReasonSize}
	domainContentField    = LongString{domainPrefix, contenthashTag, parser.MaxContentSize}
	subdomainContentField = LongString{subdomainPrefix, contenthashTag, parser.MaxContentSize}
)

func (f LongString) key(k ids.ID) []byte {
	return PrefixStringKey(f.namespace, f.tag, k)
}

func (f LongString) Get(db database.KeyValueReader, k ids.ID) (string, bool, error) {
	v, err := db.Get(f.key(k))
	if errors.Is(err, database.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	p := wrappers.Packer{Bytes: v}
	s := p.UnpackStr()
	if p.Errored() {
		return "", false, p.Err
	}
	return s, true, nil
}

// Put stores s, or removes the slot when s is empty.
func (f LongString) Put(db database.Database, k ids.ID, s string) error {
	if len(s) == 0 {
		return f.Delete(db, k)
	}
	if len(s) > f.max {
		return ErrStringTooLong
	}
	p := wrappers.Packer{MaxSize: wrappers.ShortLen + len(s)}
	p.PackStr(s)
	if p.Errored() {
		return p.Err
	}
	return db.Put(f.key(k), p.Bytes)
}

func (f LongString) Delete(db database.Database, k ids.ID) error {
	return db.Delete(f.key(k))
}
