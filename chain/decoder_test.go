// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestInputDecode(t *testing.T) {
	t.Parallel()

	types := []string{
		RegisterScope, InitiateScopeXfer, AcceptScopeXfer, CancelScopeXfer,
		RegisterPackage, InitiatePackageXfer, AcceptPackageXfer, CancelPackageXfer,
		PublishVersion, DeprecateVersion, UndeprecateVersion,
		RegisterDomain, InitiateDomainXfer, AcceptDomainXfer, CancelDomainXfer,
		TransferDomain, TransferDomainBySig, CreateSubdomain, DeleteSubdomain,
		SetContenthash, ClearContenthash, SetTTL,
		SetTreasuryAddress, SetScopePrice, SetPackagePrice, SetDomainPrice,
	}
	for i, typ := range types {
		utx, err := (&Input{Typ: typ}).Decode()
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		// every decoded transaction is registered with the codec
		if _, err := Marshal(&signedPayload{UnsignedTransaction: utx}); err != nil {
			t.Fatalf("#%d: %s is not encodable: %v", i, typ, err)
		}
	}
	if _, err := (&Input{Typ: "mint"}).Decode(); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected invalid type, got %v", err)
	}
}

func TestInputFromJSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"type": "initiateDomainTransfer",
		"domain": "example",
		"to": "0x8db97c7cece249c2b98bdc0226cc4c2a57bf52fc"
	}`
	var in Input
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatal(err)
	}
	utx, err := in.Decode()
	if err != nil {
		t.Fatal(err)
	}
	tx, ok := utx.(*InitiateDomainTransferTx)
	if !ok {
		t.Fatalf("unexpected type %T", utx)
	}
	if tx.Domain != "example" || tx.To != common.HexToAddress("0x8db97c7cece249c2b98bdc0226cc4c2a57bf52fc") {
		t.Fatalf("unexpected tx %+v", tx)
	}
}
