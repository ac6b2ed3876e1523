// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// Only fixed-width fields are serialized into records. Variable-length
// strings live in long string fields and are attached by the getters.

type ScopeInfo struct {
	Owner   common.Address `serialize:"true" json:"owner"`
	Created uint64         `serialize:"true" json:"created"`
}

type PackageInfo struct {
	Owner        common.Address `serialize:"true" json:"owner"`
	Created      uint64         `serialize:"true" json:"created"`
	Scope        ids.ID         `serialize:"true" json:"scope"` // ids.Empty when unscoped
	VersionCount uint64         `serialize:"true" json:"versionCount"`

	LatestVersion string `json:"latestVersion"`
}

type VersionInfo struct {
	Checksum         common.Hash    `serialize:"true" json:"checksum"`
	SignatureHash    common.Hash    `serialize:"true" json:"signatureHash"`
	SecurityLevel    uint8          `serialize:"true" json:"securityLevel"`
	PluginType       uint8          `serialize:"true" json:"pluginType"`
	PermissionsHash  common.Hash    `serialize:"true" json:"permissionsHash"`
	DependenciesHash common.Hash    `serialize:"true" json:"dependenciesHash"`
	Publisher        common.Address `serialize:"true" json:"publisher"`
	Published        uint64         `serialize:"true" json:"published"`
	Deprecated       bool           `serialize:"true" json:"deprecated"`

	CID                string `json:"cid"`
	CompatibilityRange string `json:"compatibilityRange"`
	DeprecationReason  string `json:"deprecationReason,omitempty"`
}

// PendingTransfer is the in-flight half of a two-step ownership transfer.
type PendingTransfer struct {
	PendingOwner common.Address `serialize:"true" json:"pendingOwner"`
	Initiated    uint64         `serialize:"true" json:"initiated"`
}

type DomainInfo struct {
	Owner           common.Address `serialize:"true" json:"owner"`
	Created         uint64         `serialize:"true" json:"created"`
	TTL             uint64         `serialize:"true" json:"ttl"`
	ContenthashType uint8          `serialize:"true" json:"contenthashType"`

	Contenthash string `json:"contenthash,omitempty"`
}

type SubdomainInfo struct {
	Owner           common.Address `serialize:"true" json:"owner"`
	Parent          ids.ID         `serialize:"true" json:"parent"`
	Created         uint64         `serialize:"true" json:"created"`
	TTL             uint64         `serialize:"true" json:"ttl"`
	ContenthashType uint8          `serialize:"true" json:"contenthashType"`

	Contenthash string `json:"contenthash,omitempty"`
}

// Settings is the deployer-controlled configuration.
type Settings struct {
	TreasuryAddress string `serialize:"true" json:"treasuryAddress"`
	ScopePrice      uint64 `serialize:"true" json:"scopePrice"`
	PackagePrice    uint64 `serialize:"true" json:"packagePrice"`
	DomainPrice     uint64 `serialize:"true" json:"domainPrice"`
}
