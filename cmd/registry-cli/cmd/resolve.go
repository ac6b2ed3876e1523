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

var contenthashCmd = &cobra.Command{
	Use:   "contenthash",
	Short: "Sets and clears the contenthash of a name",
}

var contenthashSetCmd = &cobra.Command{
	Use:   "set [options] <name> <type> <value>",
	Short: "Points a domain or subdomain at IPFS content",
	Long: `
Sets the contenthash of a domain ("example") or subdomain
("docs.example"). Types: 1 = CIDv0, 2 = CIDv1, 3 = IPNS.

$ registry-cli contenthash set docs.example 1 QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG

`,
	RunE: contenthashSetFunc,
}

var contenthashClearCmd = &cobra.Command{
	Use:   "clear [options] <name>",
	Short: "Removes the contenthash of a name",
	RunE:  contenthashClearFunc,
}

var ttlCmd = &cobra.Command{
	Use:   "ttl [options] <name> <seconds>",
	Short: "Sets the resolver ttl of a name",
	RunE:  ttlFunc,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [options] <name>",
	Short: "Resolves a domain or subdomain to its contenthash",
	RunE:  resolveFunc,
}

func init() {
	contenthashCmd.AddCommand(contenthashSetCmd, contenthashClearCmd)
}

func contenthashSetFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 3); err != nil {
		return err
	}
	typ, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return err
	}
	in := &chain.Input{
		Typ:             chain.SetContenthash,
		Name:            args[0],
		ContenthashType: uint8(typ),
		Contenthash:     args[2],
	}
	return issue(context.Background(), client.New(uri, requestTimeout), in, client.WithResolve(args[0]))
}

func contenthashClearFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	in := &chain.Input{Typ: chain.ClearContenthash, Name: args[0]}
	return issue(context.Background(), client.New(uri, requestTimeout), in, client.WithResolve(args[0]))
}

func ttlFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	ttl, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return err
	}
	in := &chain.Input{Typ: chain.SetTTL, Name: args[0], TTL: ttl}
	return issue(context.Background(), client.New(uri, requestTimeout), in, client.WithResolve(args[0]))
}

func resolveFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	r, err := client.New(uri, requestTimeout).Resolve(context.Background(), args[0])
	if err != nil {
		return err
	}
	client.PPResolution(r)
	return nil
}
