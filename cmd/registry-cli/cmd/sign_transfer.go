// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/client"
)

var validFor time.Duration

var signTransferCmd = &cobra.Command{
	Use:   "sign-transfer [options] <domain> <to>",
	Short: "Signs a domain transfer for someone else to submit",
	Long: `
Signs an authorization moving <domain> to <to>. The output can be
submitted by any account with "registry-cli domain relay".

$ registry-cli sign-transfer example 0x... --valid-for 1h

`,
	RunE: signTransferFunc,
}

func init() {
	signTransferCmd.Flags().DurationVar(&validFor, "valid-for", time.Hour, "how long the authorization remains valid")
}

func signTransferFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	to, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	g, err := client.New(uri, requestTimeout).Genesis(context.Background())
	if err != nil {
		return err
	}

	deadline := uint64(time.Now().Add(validFor).Unix())
	sig, err := chain.SignTransferDomain(g.Magic, args[0], to, deadline, priv)
	if err != nil {
		return err
	}
	color.Green("signed transfer of %s to %s (deadline %d)", args[0], to, deadline)
	color.Cyan("$ registry-cli domain relay %s %s %d %s", args[0], to, deadline, hexutil.Encode(sig))
	return nil
}
