// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/client"
	"github.com/ava-labs/registryvm/parser"
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Registers and transfers packages",
}

var packageRegisterCmd = &cobra.Command{
	Use:   "register [options] <package>",
	Short: "Registers a package",
	Long: `
Registers a package owned by the local key. Unscoped packages pay the
current package price; scoped packages require ownership of the scope.

$ registry-cli package register left-pad
$ registry-cli package register @acme/widget

`,
	RunE: packageRegisterFunc,
}

var packageInfoCmd = &cobra.Command{
	Use:   "info [options] <package>",
	Short: "Reads package info",
	RunE:  packageInfoFunc,
}

func init() {
	packageCmd.AddCommand(packageRegisterCmd, packageInfoCmd)
	packageCmd.AddCommand(transferCommands(
		"package",
		chain.InitiatePackageXfer,
		chain.AcceptPackageXfer,
		chain.CancelPackageXfer,
		func(in *chain.Input, name string) { in.Package = name },
	)...)
}

func packageRegisterFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	scope, _, err := parser.ParsePackage(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()
	cli := client.New(uri, requestTimeout)
	opts := []client.OpOption{}
	if len(scope) == 0 {
		s, err := cli.Settings(ctx)
		if err != nil {
			return err
		}
		opts = append(opts, client.WithPayment(s.PackagePrice))
	}
	return issue(ctx, cli, &chain.Input{Typ: chain.RegisterPackage, Package: args[0]}, opts...)
}

func packageInfoFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	r, err := client.New(uri, requestTimeout).Package(context.Background(), args[0])
	if err != nil {
		return err
	}
	client.PPPackage(args[0], r)
	return nil
}
