// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/client"
)

// issue builds the transaction described by [in], signs it with the local
// key and prints the events it emitted.
func issue(ctx context.Context, cli client.Client, in *chain.Input, opts ...client.OpOption) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	utx, err := in.Decode()
	if err != nil {
		return err
	}
	_, events, err := client.SignIssueRawTx(ctx, cli, utx, priv, opts...)
	if err != nil {
		return err
	}
	client.PPEvents(events)
	return nil
}

func expectArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected exactly %d arguments, got %d", n, len(args))
	}
	return nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", s)
	}
	return common.HexToAddress(s), nil
}

// transferCommands returns the initiate, accept and cancel commands shared
// by scopes, packages and domains.
func transferCommands(kind string, initiate string, accept string, cancel string, set func(in *chain.Input, name string)) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   fmt.Sprintf("transfer [options] <%s> <to>", kind),
			Short: fmt.Sprintf("Offers a %s to a new owner", kind),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := expectArgs(args, 2); err != nil {
					return err
				}
				to, err := parseAddress(args[1])
				if err != nil {
					return err
				}
				in := &chain.Input{Typ: initiate, To: to}
				set(in, args[0])
				return issue(context.Background(), client.New(uri, requestTimeout), in)
			},
		},
		{
			Use:   fmt.Sprintf("accept [options] <%s>", kind),
			Short: fmt.Sprintf("Accepts a pending %s transfer", kind),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := expectArgs(args, 1); err != nil {
					return err
				}
				in := &chain.Input{Typ: accept}
				set(in, args[0])
				return issue(context.Background(), client.New(uri, requestTimeout), in)
			},
		},
		{
			Use:   fmt.Sprintf("cancel [options] <%s>", kind),
			Short: fmt.Sprintf("Cancels a pending %s transfer", kind),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := expectArgs(args, 1); err != nil {
					return err
				}
				in := &chain.Input{Typ: cancel}
				set(in, args[0])
				return issue(context.Background(), client.New(uri, requestTimeout), in)
			},
		},
	}
}
