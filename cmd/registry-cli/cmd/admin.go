// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/client"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Deployer-only settings",
}

func init() {
	adminCmd.AddCommand(
		&cobra.Command{
			Use:   "treasury [options] <address>",
			Short: "Sets the treasury address that receives payments",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := expectArgs(args, 1); err != nil {
					return err
				}
				in := &chain.Input{Typ: chain.SetTreasuryAddress, Address: args[0]}
				return issue(context.Background(), client.New(uri, requestTimeout), in)
			},
		},
		priceCommand("scope-price", "Sets the scope registration price", chain.SetScopePrice),
		priceCommand("package-price", "Sets the unscoped package registration price", chain.SetPackagePrice),
		priceCommand("domain-price", "Sets the base domain registration price", chain.SetDomainPrice),
	)
}

func priceCommand(use string, short string, typ string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [options] <price>",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := expectArgs(args, 1); err != nil {
				return err
			}
			price, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			in := &chain.Input{Typ: typ, Price: price}
			return issue(context.Background(), client.New(uri, requestTimeout), in)
		},
	}
}
