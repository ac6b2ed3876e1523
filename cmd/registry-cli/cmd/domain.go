// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/client"
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Registers and transfers domains",
}

var domainRegisterCmd = &cobra.Command{
	Use:   "register [options] <domain>",
	Short: "Registers a domain, paying its tiered price",
	RunE:  domainRegisterFunc,
}

var domainMoveCmd = &cobra.Command{
	Use:   "move [options] <domain> <to>",
	Short: "Transfers a domain in a single step",
	RunE:  domainMoveFunc,
}

var domainRelayCmd = &cobra.Command{
	Use:   "relay [options] <domain> <to> <deadline> <authorization>",
	Short: "Submits a transfer authorized by the owner's signature",
	Long: `
Submits a transfer produced by "registry-cli sign-transfer". Any key may
relay the authorization; the domain moves only if the signature was made
by its current owner and the deadline has not passed.

$ registry-cli domain relay example 0x... 1700000000 0x...

`,
	RunE: domainRelayFunc,
}

var domainPriceCmd = &cobra.Command{
	Use:   "price [options] <domain>",
	Short: "Prints the registration price of a domain",
	RunE:  domainPriceFunc,
}

var domainInfoCmd = &cobra.Command{
	Use:   "info [options] <domain>",
	Short: "Reads domain info",
	RunE:  domainInfoFunc,
}

func init() {
	domainCmd.AddCommand(
		domainRegisterCmd,
		domainMoveCmd,
		domainRelayCmd,
		domainPriceCmd,
		domainInfoCmd,
	)
	domainCmd.AddCommand(transferCommands(
		"domain",
		chain.InitiateDomainXfer,
		chain.AcceptDomainXfer,
		chain.CancelDomainXfer,
		func(in *chain.Input, name string) { in.Domain = name },
	)...)
}

func domainRegisterFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	ctx := context.Background()
	cli := client.New(uri, requestTimeout)
	price, err := cli.DomainPrice(ctx, args[0])
	if err != nil {
		return err
	}
	return issue(ctx, cli, &chain.Input{Typ: chain.RegisterDomain, Domain: args[0]}, client.WithPayment(price))
}

func domainMoveFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	to, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	in := &chain.Input{Typ: chain.TransferDomain, Domain: args[0], To: to}
	return issue(context.Background(), client.New(uri, requestTimeout), in)
}

func domainRelayFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 4); err != nil {
		return err
	}
	to, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	deadline, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return err
	}
	auth, err := hexutil.Decode(args[3])
	if err != nil {
		return err
	}
	in := &chain.Input{
		Typ:           chain.TransferDomainBySig,
		Domain:        args[0],
		To:            to,
		Deadline:      deadline,
		Authorization: auth,
	}
	return issue(context.Background(), client.New(uri, requestTimeout), in)
}

func domainPriceFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	price, err := client.New(uri, requestTimeout).DomainPrice(context.Background(), args[0])
	if err != nil {
		return err
	}
	color.Green("%s costs %d", args[0], price)
	return nil
}

func domainInfoFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}
	r, err := client.New(uri, requestTimeout).Domain(context.Background(), args[0])
	if err != nil {
		return err
	}
	client.PPDomain(args[0], r)
	return nil
}
