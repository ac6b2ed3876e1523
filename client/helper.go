// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"crypto/ecdsa"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"

	"github.com/ava-labs/registryvm/chain"
)

// Signs and issues the transaction.
func SignIssueRawTx(
	ctx context.Context,
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, events []*chain.Event, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis(ctx)
	if err != nil {
		return ids.Empty, nil, err
	}

	var outputs []*chain.Output
	if ret.value > 0 {
		s, err := cli.Settings(ctx)
		if err != nil {
			return ids.Empty, nil, err
		}
		if len(s.TreasuryAddress) == 0 {
			return ids.Empty, nil, ErrMissingTreasury
		}
		outputs = append(outputs, &chain.Output{Address: s.TreasuryAddress, Value: ret.value})
	}

	nonce := ret.nonce
	if nonce == 0 {
		nonce = uint64(time.Now().UnixNano())
	}
	utx.SetMagic(g.Magic)
	utx.SetNonce(nonce)

	dh, err := chain.DigestHash(utx, outputs)
	if err != nil {
		return ids.Empty, nil, err
	}
	sig, err := chain.Sign(dh, priv)
	if err != nil {
		return ids.Empty, nil, err
	}

	tx := chain.NewTx(utx, outputs, sig)
	if err := tx.Init(g); err != nil {
		return ids.Empty, nil, err
	}

	color.Yellow("issuing tx %s (sender=%s, size=%d, payment=%d)", tx.ID(), tx.Sender(), tx.Size(), ret.value)
	txID, events, err = cli.IssueRawTx(ctx, tx.Bytes())
	if err != nil {
		return ids.Empty, nil, err
	}
	color.Green("transaction %s accepted", txID)

	if len(ret.name) > 0 {
		r, err := cli.Resolve(ctx, ret.name)
		if err != nil {
			color.Red("cannot resolve %s %v", ret.name, err)
			return ids.Empty, nil, err
		}
		PPResolution(r)
	}
	return txID, events, nil
}
