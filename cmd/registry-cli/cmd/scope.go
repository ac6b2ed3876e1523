// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/client"
)

var scopeCmd = &cobra.Command{
	Use:   "scope",
	Short: "Registers and transfers scopes",
}

var scopeRegisterCmd = &cobra.Command{
	Use:   "register [options] <scope>",
	Short: "Registers a scope, paying the current scope price",
	Long: `
Registers a scope owned by the local key. Scoped packages of the
form @scope/name may then be registered free of charge.

$ registry-cli scope register acme

`,
	RunE: scopeRegisterFunc,
}

var scopeInfoCmd = &cobra.Command{
	Use:   "info [options] <scope>",
	Short: "Reads scope info",
	RunE:  scopeInfoFunc,
}

func init() {
	scopeCmd.AddCommand(scopeRegisterCmd, scopeInfoCmd)
	scopeCmd.AddCommand(transferCommands(
		"scope",
		chain.InitiateScopeXfer,
		chain.AcceptScopeXfer,
		chain.CancelScopeXfer,
		func(in *chain.Input, name string) { in.Scope = name },
	)...)
}

func scopeRegisterFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	ctx := context.Background()
	cli := client.New(uri, requestTimeout)
	s, err := cli.Settings(ctx)
	if err != nil {
		return err
	}
	return issue(ctx, cli, &chain.Input{Typ: chain.RegisterScope, Scope: args[0]}, client.WithPayment(s.ScopePrice))
}

func scopeInfoFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	r, err := client.New(uri, requestTimeout).Scope(context.Background(), args[0])
	if err != nil {
		return err
	}
	client.PPScope(args[0], r)
	return nil
}
