// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

const (
	ScopeRegistered        = "ScopeRegistered"
	ScopeTransferInitiated = "ScopeTransferInitiated"
	ScopeTransferCompleted = "ScopeTransferCompleted"
	ScopeTransferCancelled = "ScopeTransferCancelled"

	PackageRegistered        = "PackageRegistered"
	PackageTransferInitiated = "PackageTransferInitiated"
	PackageTransferCompleted = "PackageTransferCompleted"
	PackageTransferCancelled = "PackageTransferCancelled"

	VersionPublished    = "VersionPublished"
	VersionDeprecated   = "VersionDeprecated"
	VersionUndeprecated = "VersionUndeprecated"

	DomainRegistered        = "DomainRegistered"
	DomainTransferInitiated = "DomainTransferInitiated"
	DomainTransferCompleted = "DomainTransferCompleted"
	DomainTransferCancelled = "DomainTransferCancelled"
	DomainTransferred       = "DomainTransferred"

	SubdomainCreated   = "SubdomainCreated"
	SubdomainDeleted   = "SubdomainDeleted"
	ContenthashSet     = "ContenthashSet"
	ContenthashCleared = "ContenthashCleared"
	TTLSet             = "TTLSet"

	TreasuryChanged     = "TreasuryChanged"
	ScopePriceChanged   = "ScopePriceChanged"
	PackagePriceChanged = "PackagePriceChanged"
	DomainPriceChanged  = "DomainPriceChanged"
)

// Event is a notification of a committed state transition. Events are never
// read back by transaction execution.
type Event struct {
	Type      string         `json:"type"`
	TxID      ids.ID         `json:"txId"`
	Timestamp uint64         `json:"timestamp"`
	Actor     common.Address `json:"actor"`

	Name    string          `json:"name,omitempty"`
	Version string          `json:"version,omitempty"`
	To      *common.Address `json:"to,omitempty"`
	Value   uint64          `json:"value,omitempty"`
	Detail  string          `json:"detail,omitempty"`
}

func addressRef(a common.Address) *common.Address {
	return &a
}
