// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/hashing"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/registryvm/parser"
)

var _ UnsignedTransaction = &PublishVersionTx{}

type PublishVersionTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Package            string      `serialize:"true" json:"package"`
	Version            string      `serialize:"true" json:"version"`
	CID                string      `serialize:"true" json:"cid"`
	Checksum           common.Hash `serialize:"true" json:"checksum"`
	SecurityLevel      uint8       `serialize:"true" json:"securityLevel"`
	CompatibilityRange string      `serialize:"true" json:"compatibilityRange"`
	PluginType         uint8       `serialize:"true" json:"pluginType"`
	PermissionsHash    common.Hash `serialize:"true" json:"permissionsHash"`

	// Signature and Dependencies are only retained as hashes.
	Signature    []byte `serialize:"true" json:"signature"`
	Dependencies []byte `serialize:"true" json:"dependencies"`
}

func (p *PublishVersionTx) verify() error {
	if err := parser.CheckPackage(p.Package); err != nil {
		return err
	}
	if err := parser.CheckVersion(p.Version); err != nil {
		return err
	}
	if err := parser.CheckCID(p.CID); err != nil {
		return err
	}
	if err := parser.CheckChecksum(p.Checksum); err != nil {
		return err
	}
	if err := parser.CheckSignature(p.SecurityLevel, p.Signature); err != nil {
		return err
	}
	if err := parser.CheckCompatibilityRange(p.CompatibilityRange); err != nil {
		return err
	}
	return parser.CheckPluginType(p.PluginType)
}

func (p *PublishVersionTx) Execute(t *TransactionContext) error {
	if err := p.verify(); err != nil {
		return err
	}
	pkg, err := ownedPackage(t, p.Package)
	if err != nil {
		return err
	}
	has, err := HasVersion(t.Database, p.Package, p.Version)
	if err != nil {
		return err
	}
	if has {
		return ErrVersionExists
	}

	v := &VersionInfo{
		Checksum:           p.Checksum,
		SignatureHash:      hashing.ComputeHash256Array(p.Signature),
		SecurityLevel:      p.SecurityLevel,
		PluginType:         p.PluginType,
		PermissionsHash:    p.PermissionsHash,
		Publisher:          t.Sender,
		Published:          t.BlockTime,
		CID:                p.CID,
		CompatibilityRange: p.CompatibilityRange,
	}
	if len(p.Dependencies) > 0 {
		v.DependenciesHash = hashing.ComputeHash256Array(p.Dependencies)
	}
	if err := PutVersionInfo(t.Database, p.Package, p.Version, v); err != nil {
		return err
	}

	if pkg.VersionCount, err = smath.Add64(pkg.VersionCount, 1); err != nil {
		return err
	}
	// Most recently published, not highest
	pkg.LatestVersion = p.Version
	if err := PutPackageInfo(t.Database, p.Package, pkg); err != nil {
		return err
	}
	t.Emit(&Event{Type: VersionPublished, Name: p.Package, Version: p.Version, Detail: p.CID})
	return nil
}

func (p *PublishVersionTx) Copy() UnsignedTransaction {
	sig := make([]byte, len(p.Signature))
	copy(sig, p.Signature)
	deps := make([]byte, len(p.Dependencies))
	copy(deps, p.Dependencies)
	return &PublishVersionTx{
		BaseTx:             p.BaseTx.Copy(),
		Package:            p.Package,
		Version:            p.Version,
		CID:                p.CID,
		Checksum:           p.Checksum,
		SecurityLevel:      p.SecurityLevel,
		CompatibilityRange: p.CompatibilityRange,
		PluginType:         p.PluginType,
		PermissionsHash:    p.PermissionsHash,
		Signature:          sig,
		Dependencies:       deps,
	}
}
