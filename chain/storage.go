// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

// 0x0/ (settings)
// 0x1/ (scope info)
//   -> [scope key]
// 0x2/ (package info)
//   -> [package key]
// 0x3/ (version info)
//   -> [version key]
// 0x4/ (domain info)
//   -> [domain key]
// 0x5/ (subdomain info)
//   -> [subdomain key]
// 0x6/ (pending transfers)
//   -> [namespace]
//     -> [key]
// 0x7/ (long strings)
//   -> [namespace]
//     -> [slot tag]
//       -> [key]
// 0x8/ (tx hashes)
//   -> [txID]
// 0x9/ (consumed authorizations)
//   -> [digest]

const (
	settingsPrefix = 0x0

	scopePrefix     = 0x1
	packagePrefix   = 0x2
	versionPrefix   = 0x3
	domainPrefix    = 0x4
	subdomainPrefix = 0x5

	pendingPrefix = 0x6
	stringPrefix  = 0x7
	txPrefix      = 0x8
	authPrefix    = 0x9

	delimiter byte = '/'
)

var (
	settingsKey = []byte{settingsPrefix, delimiter}
	txMarker    = []byte{0x1}
)

func PrefixInfoKey(namespace byte, k ids.ID) []byte {
	b := make([]byte, 2+len(k))
	b[0] = namespace
	b[1] = delimiter
	copy(b[2:], k[:])
	return b
}

func PrefixPendingKey(namespace byte, k ids.ID) []byte {
	b := make([]byte, 4+len(k))
	b[0] = pendingPrefix
	b[1] = delimiter
	b[2] = namespace
	b[3] = delimiter
	copy(b[4:], k[:])
	return b
}

func PrefixStringKey(namespace byte, tag byte, k ids.ID) []byte {
	b := make([]byte, 6+len(k))
	b[0] = stringPrefix
	b[1] = delimiter
	b[2] = namespace
	b[3] = delimiter
	b[4] = tag
	b[5] = delimiter
	copy(b[6:], k[:])
	return b
}

func PrefixTxKey(txID ids.ID) []byte {
	return PrefixInfoKey(txPrefix, txID)
}

func getRecord(db database.KeyValueReader, k []byte, dst interface{}) (bool, error) {
	v, err := db.Get(k)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := Unmarshal(v, dst); err != nil {
		return false, err
	}
	return true, nil
}

func putRecord(db database.Database, k []byte, src interface{}) error {
	b, err := Marshal(src)
	if err != nil {
		return err
	}
	return db.Put(k, b)
}

// [settings]
func GetSettings(db database.KeyValueReader) (*Settings, error) {
	s := new(Settings)
	has, err := getRecord(db, settingsKey, s)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, database.ErrNotFound
	}
	return s, nil
}

func PutSettings(db database.Database, s *Settings) error {
	return putRecord(db, settingsKey, s)
}

// [scope]
func GetScopeInfo(db database.KeyValueReader, scope string) (*ScopeInfo, bool, error) {
	i := new(ScopeInfo)
	has, err := getRecord(db, PrefixInfoKey(scopePrefix, ScopeKey(scope)), i)
	if !has || err != nil {
		return nil, false, err
	}
	return i, true, nil
}

func HasScope(db database.KeyValueReader, scope string) (bool, error) {
	return db.Has(PrefixInfoKey(scopePrefix, ScopeKey(scope)))
}

func PutScopeInfo(db database.Database, scope string, i *ScopeInfo) error {
	return putRecord(db, PrefixInfoKey(scopePrefix, ScopeKey(scope)), i)
}

// [package]
func GetPackageInfo(db database.KeyValueReader, pkg string) (*PackageInfo, bool, error) {
	k := PackageKey(pkg)
	i := new(PackageInfo)
	has, err := getRecord(db, PrefixInfoKey(packagePrefix, k), i)
	if !has || err != nil {
		return nil, false, err
	}
	i.LatestVersion, _, err = latestVersionField.Get(db, k)
	if err != nil {
		return nil, false, err
	}
	return i, true, nil
}

func HasPackage(db database.KeyValueReader, pkg string) (bool, error) {
	return db.Has(PrefixInfoKey(packagePrefix, PackageKey(pkg)))
}

func PutPackageInfo(db database.Database, pkg string, i *PackageInfo) error {
	k := PackageKey(pkg)
	if err := putRecord(db, PrefixInfoKey(packagePrefix, k), i); err != nil {
		return err
	}
	return latestVersionField.Put(db, k, i.LatestVersion)
}

// [version]
func GetVersionInfo(db database.KeyValueReader, pkg string, version string) (*VersionInfo, bool, error) {
	k := VersionKey(pkg, version)
	i := new(VersionInfo)
	has, err := getRecord(db, PrefixInfoKey(versionPrefix, k), i)
	if !has || err != nil {
		return nil, false, err
	}
	if i.CID, _, err = cidField.Get(db, k); err != nil {
		return nil, false, err
	}
	if i.CompatibilityRange, _, err = compatibilityField.Get(db, k); err != nil {
		return nil, false, err
	}
	if i.DeprecationReason, _, err = reasonField.Get(db, k); err != nil {
		return nil, false, err
	}
	return i, true, nil
}

func HasVersion(db database.KeyValueReader, pkg string, version string) (bool, error) {
	return db.Has(PrefixInfoKey(versionPrefix, VersionKey(pkg, version)))
}

func PutVersionInfo(db database.Database, pkg string, version string, i *VersionInfo) error {
	k := VersionKey(pkg, version)
	if err := putRecord(db, PrefixInfoKey(versionPrefix, k), i); err != nil {
		return err
	}
	if err := cidField.Put(db, k, i.CID); err != nil {
		return err
	}
	if err := compatibilityField.Put(db, k, i.CompatibilityRange); err != nil {
		return err
	}
	return reasonField.Put(db, k, i.DeprecationReason)
}

// [domain]
func GetDomainInfo(db database.KeyValueReader, domain string) (*DomainInfo, bool, error) {
	k := DomainKey(domain)
	i := new(DomainInfo)
	has, err := getRecord(db, PrefixInfoKey(domainPrefix, k), i)
	if !has || err != nil {
		return nil, false, err
	}
	if i.Contenthash, _, err = domainContentField.Get(db, k); err != nil {
		return nil, false, err
	}
	return i, true, nil
}

func HasDomain(db database.KeyValueReader, domain string) (bool, error) {
	return db.Has(PrefixInfoKey(domainPrefix, DomainKey(domain)))
}

func PutDomainInfo(db database.Database, domain string, i *DomainInfo) error {
	k := DomainKey(domain)
	if err := putRecord(db, PrefixInfoKey(domainPrefix, k), i); err != nil {
		return err
	}
	return domainContentField.Put(db, k, i.Contenthash)
}

// [subdomain]
func GetSubdomainInfo(db database.KeyValueReader, label string, domain string) (*SubdomainInfo, bool, error) {
	k := SubdomainKey(label, domain)
	i := new(SubdomainInfo)
	has, err := getRecord(db, PrefixInfoKey(subdomainPrefix, k), i)
	if !has || err != nil {
		return nil, false, err
	}
	if i.Contenthash, _, err = subdomainContentField.Get(db, k); err != nil {
		return nil, false, err
	}
	return i, true, nil
}

func PutSubdomainInfo(db database.Database, label string, domain string, i *SubdomainInfo) error {
	k := SubdomainKey(label, domain)
	if err := putRecord(db, PrefixInfoKey(subdomainPrefix, k), i); err != nil {
		return err
	}
	return subdomainContentField.Put(db, k, i.Contenthash)
}

// DeleteSubdomainInfo removes the record and every field attached to it.
func DeleteSubdomainInfo(db database.Database, label string, domain string) error {
	k := SubdomainKey(label, domain)
	if err := db.Delete(PrefixInfoKey(subdomainPrefix, k)); err != nil {
		return err
	}
	return subdomainContentField.Delete(db, k)
}

// [pending transfers]
func GetPendingTransfer(db database.KeyValueReader, namespace byte, k ids.ID) (*PendingTransfer, bool, error) {
	p := new(PendingTransfer)
	has, err := getRecord(db, PrefixPendingKey(namespace, k), p)
	if !has || err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func PutPendingTransfer(db database.Database, namespace byte, k ids.ID, p *PendingTransfer) error {
	return putRecord(db, PrefixPendingKey(namespace, k), p)
}

func DeletePendingTransfer(db database.Database, namespace byte, k ids.ID) error {
	return db.Delete(PrefixPendingKey(namespace, k))
}

func GetPendingScopeTransfer(db database.KeyValueReader, scope string) (*PendingTransfer, bool, error) {
	return GetPendingTransfer(db, scopePrefix, ScopeKey(scope))
}

func GetPendingPackageTransfer(db database.KeyValueReader, pkg string) (*PendingTransfer, bool, error) {
	return GetPendingTransfer(db, packagePrefix, PackageKey(pkg))
}

func GetPendingDomainTransfer(db database.KeyValueReader, domain string) (*PendingTransfer, bool, error) {
	return GetPendingTransfer(db, domainPrefix, DomainKey(domain))
}

// [tx hashes]
func HasTransaction(db database.KeyValueReader, txID ids.ID) (bool, error) {
	return db.Has(PrefixTxKey(txID))
}

func SetTransaction(db database.Database, txID ids.ID) error {
	return db.Put(PrefixTxKey(txID), txMarker)
}

// [authorizations]
func HasAuthorization(db database.KeyValueReader, digest ids.ID) (bool, error) {
	return db.Has(PrefixInfoKey(authPrefix, digest))
}

func SetAuthorization(db database.Database, digest ids.ID) error {
	return db.Put(PrefixInfoKey(authPrefix, digest), txMarker)
}
