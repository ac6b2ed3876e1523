// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/client"
)

var subdomainOwner string

var subdomainCmd = &cobra.Command{
	Use:   "subdomain",
	Short: "Creates and deletes subdomains",
}

var subdomainCreateCmd = &cobra.Command{
	Use:   "create [options] <label> <domain>",
	Short: "Creates label.domain under a domain you own",
	RunE:  subdomainCreateFunc,
}

var subdomainDeleteCmd = &cobra.Command{
	Use:   "delete [options] <label> <domain>",
	Short: "Deletes label.domain and its contenthash",
	RunE:  subdomainDeleteFunc,
}

func init() {
	subdomainCreateCmd.Flags().StringVar(&subdomainOwner, "owner", "", "subdomain owner (defaults to the local key)")
	subdomainCmd.AddCommand(subdomainCreateCmd, subdomainDeleteCmd)
}

func subdomainCreateFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	in := &chain.Input{Typ: chain.CreateSubdomain, Label: args[0], Domain: args[1]}
	if len(subdomainOwner) > 0 {
		owner, err := parseAddress(subdomainOwner)
		if err != nil {
			return err
		}
		in.Owner = owner
	}
	return issue(context.Background(), client.New(uri, requestTimeout), in, client.WithResolve(args[0]+"."+args[1]))
}

func subdomainDeleteFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	in := &chain.Input{Typ: chain.DeleteSubdomain, Label: args[0], Domain: args[1]}
	return issue(context.Background(), client.New(uri, requestTimeout), in)
}
