// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"crypto/ecdsa"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/registryvm/parser"
	"github.com/ava-labs/registryvm/tdata"
)

const (
	TransferDomainType = "TransferDomain"

	tdDomain   = "domain"
	tdNewOwner = "newOwner"
	tdDeadline = "deadline"
)

var transferDomainFields = []tdata.Type{
	{Name: tdDomain, Type: "string"},
	{Name: tdNewOwner, Type: "address"},
	{Name: tdDeadline, Type: "uint64"},
}

// TransferDomainTypedData is the message an owner signs to let anyone move
// [domain] to [to] until [deadline].
func TransferDomainTypedData(magic uint64, domain string, to common.Address, deadline uint64) *tdata.TypedData {
	return tdata.CreateTypedData(magic, TransferDomainType, transferDomainFields, tdata.TypedDataMessage{
		tdDomain:   parser.Canonicalize(domain),
		tdNewOwner: to.Hex(),
		tdDeadline: strconv.FormatUint(deadline, 10),
	})
}

func TransferDomainDigest(magic uint64, domain string, to common.Address, deadline uint64) ([]byte, error) {
	return tdata.DigestHash(TransferDomainTypedData(magic, domain, to, deadline))
}

func SignTransferDomain(
	magic uint64,
	domain string,
	to common.Address,
	deadline uint64,
	priv *ecdsa.PrivateKey,
) ([]byte, error) {
	dh, err := TransferDomainDigest(magic, domain, to, deadline)
	if err != nil {
		return nil, err
	}
	return Sign(dh, priv)
}
