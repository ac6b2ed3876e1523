// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	RegisterScope       = "registerScope"
	InitiateScopeXfer   = "initiateScopeTransfer"
	AcceptScopeXfer     = "acceptScopeTransfer"
	CancelScopeXfer     = "cancelScopeTransfer"
	RegisterPackage     = "registerPackage"
	InitiatePackageXfer = "initiatePackageTransfer"
	AcceptPackageXfer   = "acceptPackageTransfer"
	CancelPackageXfer   = "cancelPackageTransfer"
	PublishVersion      = "publishVersion"
	DeprecateVersion    = "deprecateVersion"
	UndeprecateVersion  = "undeprecateVersion"

	RegisterDomain      = "registerDomain"
	InitiateDomainXfer  = "initiateDomainTransfer"
	AcceptDomainXfer    = "acceptDomainTransfer"
	CancelDomainXfer    = "cancelDomainTransfer"
	TransferDomain      = "transferDomain"
	TransferDomainBySig = "transferDomainBySignature"
	CreateSubdomain     = "createSubdomain"
	DeleteSubdomain     = "deleteSubdomain"
	SetContenthash      = "setContenthash"
	ClearContenthash    = "clearContenthash"
	SetTTL              = "setTTL"
	SetTreasuryAddress  = "setTreasuryAddress"
	SetScopePrice       = "setScopePrice"
	SetPackagePrice     = "setPackagePrice"
	SetDomainPrice      = "setDomainPrice"
)

// Input is the loosely typed form of every transaction, used by tooling
// that assembles transactions from flags or JSON.
type Input struct {
	Typ string `json:"type"`

	Scope   string `json:"scope,omitempty"`
	Package string `json:"package,omitempty"`
	Version string `json:"version,omitempty"`
	Domain  string `json:"domain,omitempty"`
	Label   string `json:"label,omitempty"`
	Name    string `json:"name,omitempty"`

	To    common.Address `json:"to"`
	Owner common.Address `json:"owner"`

	CID                string        `json:"cid,omitempty"`
	Checksum           common.Hash   `json:"checksum"`
	SecurityLevel      uint8         `json:"securityLevel,omitempty"`
	CompatibilityRange string        `json:"compatibilityRange,omitempty"`
	PluginType         uint8         `json:"pluginType,omitempty"`
	PermissionsHash    common.Hash   `json:"permissionsHash"`
	Signature          hexutil.Bytes `json:"signature,omitempty"`
	Dependencies       hexutil.Bytes `json:"dependencies,omitempty"`
	Reason             string        `json:"reason,omitempty"`

	Deadline      uint64        `json:"deadline,omitempty"`
	Authorization hexutil.Bytes `json:"authorization,omitempty"`

	ContenthashType uint8  `json:"contenthashType,omitempty"`
	Contenthash     string `json:"contenthash,omitempty"`
	TTL             uint64 `json:"ttl,omitempty"`

	Address string `json:"address,omitempty"`
	Price   uint64 `json:"price,omitempty"`
}

//nolint:gocyclo
func (i *Input) Decode() (UnsignedTransaction, error) {
	b := &BaseTx{}
	switch i.Typ {
	case RegisterScope:
		return &RegisterScopeTx{BaseTx: b, Scope: i.Scope}, nil
	case InitiateScopeXfer:
		return &InitiateScopeTransferTx{BaseTx: b, Scope: i.Scope, To: i.To}, nil
	case AcceptScopeXfer:
		return &AcceptScopeTransferTx{BaseTx: b, Scope: i.Scope}, nil
	case CancelScopeXfer:
		return &CancelScopeTransferTx{BaseTx: b, Scope: i.Scope}, nil
	case RegisterPackage:
		return &RegisterPackageTx{BaseTx: b, Package: i.Package}, nil
	case InitiatePackageXfer:
		return &InitiatePackageTransferTx{BaseTx: b, Package: i.Package, To: i.To}, nil
	case AcceptPackageXfer:
		return &AcceptPackageTransferTx{BaseTx: b, Package: i.Package}, nil
	case CancelPackageXfer:
		return &CancelPackageTransferTx{BaseTx: b, Package: i.Package}, nil
	case PublishVersion:
		return &PublishVersionTx{
			BaseTx:             b,
			Package:            i.Package,
			Version:            i.Version,
			CID:                i.CID,
			Checksum:           i.Checksum,
			SecurityLevel:      i.SecurityLevel,
			CompatibilityRange: i.CompatibilityRange,
			PluginType:         i.PluginType,
			PermissionsHash:    i.PermissionsHash,
			Signature:          i.Signature,
			Dependencies:       i.Dependencies,
		}, nil
	case DeprecateVersion:
		return &DeprecateVersionTx{BaseTx: b, Package: i.Package, Version: i.Version, Reason: i.Reason}, nil
	case UndeprecateVersion:
		return &UndeprecateVersionTx{BaseTx: b, Package: i.Package, Version: i.Version}, nil

	case RegisterDomain:
		return &RegisterDomainTx{BaseTx: b, Domain: i.Domain}, nil
	case InitiateDomainXfer:
		return &InitiateDomainTransferTx{BaseTx: b, Domain: i.Domain, To: i.To}, nil
	case AcceptDomainXfer:
		return &AcceptDomainTransferTx{BaseTx: b, Domain: i.Domain}, nil
	case CancelDomainXfer:
		return &CancelDomainTransferTx{BaseTx: b, Domain: i.Domain}, nil
	case TransferDomain:
		return &TransferDomainTx{BaseTx: b, Domain: i.Domain, To: i.To}, nil
	case TransferDomainBySig:
		return &TransferDomainBySignatureTx{
			BaseTx:        b,
			Domain:        i.Domain,
			To:            i.To,
			Deadline:      i.Deadline,
			Authorization: i.Authorization,
		}, nil
	case CreateSubdomain:
		return &CreateSubdomainTx{BaseTx: b, Label: i.Label, Domain: i.Domain, Owner: i.Owner}, nil
	case DeleteSubdomain:
		return &DeleteSubdomainTx{BaseTx: b, Label: i.Label, Domain: i.Domain}, nil
	case SetContenthash:
		return &SetContenthashTx{
			BaseTx:          b,
			Name:            i.Name,
			ContenthashType: i.ContenthashType,
			Contenthash:     i.Contenthash,
		}, nil
	case ClearContenthash:
		return &ClearContenthashTx{BaseTx: b, Name: i.Name}, nil
	case SetTTL:
		return &SetTTLTx{BaseTx: b, Name: i.Name, TTL: i.TTL}, nil

	case SetTreasuryAddress:
		return &SetTreasuryTx{BaseTx: b, Address: i.Address}, nil
	case SetScopePrice:
		return &SetScopePriceTx{BaseTx: b, Price: i.Price}, nil
	case SetPackagePrice:
		return &SetPackagePriceTx{BaseTx: b, Price: i.Price}, nil
	case SetDomainPrice:
		return &SetDomainPriceTx{BaseTx: b, Price: i.Price}, nil
	default:
		return nil, ErrInvalidType
	}
}
