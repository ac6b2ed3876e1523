// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/codec"
	"github.com/ava-labs/avalanchego/codec/linearcodec"
	"github.com/ava-labs/avalanchego/utils/wrappers"
)

const (
	// codecVersion is the current default codec version
	codecVersion = 0
)

var codecManager codec.Manager

func init() {
	c := linearcodec.NewDefault()
	codecManager = codec.NewDefaultManager()
	errs := wrappers.Errs{}
	errs.Add(
		// Registry
		c.RegisterType(&RegisterScopeTx{}),
		c.RegisterType(&InitiateScopeTransferTx{}),
		c.RegisterType(&AcceptScopeTransferTx{}),
		c.RegisterType(&CancelScopeTransferTx{}),
		c.RegisterType(&RegisterPackageTx{}),
		c.RegisterType(&InitiatePackageTransferTx{}),
		c.RegisterType(&AcceptPackageTransferTx{}),
		c.RegisterType(&CancelPackageTransferTx{}),
		c.RegisterType(&PublishVersionTx{}),
		c.RegisterType(&DeprecateVersionTx{}),
		c.RegisterType(&UndeprecateVersionTx{}),

		// Resolver
		c.RegisterType(&RegisterDomainTx{}),
		c.RegisterType(&InitiateDomainTransferTx{}),
		c.RegisterType(&AcceptDomainTransferTx{}),
		c.RegisterType(&CancelDomainTransferTx{}),
		c.RegisterType(&TransferDomainTx{}),
		c.RegisterType(&TransferDomainBySignatureTx{}),
		c.RegisterType(&CreateSubdomainTx{}),
		c.RegisterType(&DeleteSubdomainTx{}),
		c.RegisterType(&SetContenthashTx{}),
		c.RegisterType(&ClearContenthashTx{}),
		c.RegisterType(&SetTTLTx{}),

		// Settings
		c.RegisterType(&SetTreasuryTx{}),
		c.RegisterType(&SetScopePriceTx{}),
		c.RegisterType(&SetPackagePriceTx{}),
		c.RegisterType(&SetDomainPriceTx{}),

		c.RegisterType(&Transaction{}),
		codecManager.RegisterCodec(codecVersion, c),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

func Marshal(source interface{}) ([]byte, error) {
	return codecManager.Marshal(codecVersion, source)
}

func Unmarshal(source []byte, destination interface{}) (uint16, error) {
	return codecManager.Unmarshal(source, destination)
}
