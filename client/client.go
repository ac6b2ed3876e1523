// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "registryvm" client SDK.
package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/vm"
)

// Client defines registryvm client operations.
type Client interface {
	// Pings the VM.
	Ping(ctx context.Context) (bool, error)

	// Returns the VM genesis.
	Genesis(ctx context.Context) (*chain.Genesis, error)
	// Returns the current treasury and prices.
	Settings(ctx context.Context) (*chain.Settings, error)

	// Issues the transaction and returns the transaction ID and the events
	// it emitted.
	IssueRawTx(ctx context.Context, d []byte) (ids.ID, []*chain.Event, error)
	// Returns "true" if the transaction was committed.
	HasTx(ctx context.Context, txID ids.ID) (bool, error)

	Scope(ctx context.Context, scope string) (*vm.ScopeReply, error)
	Package(ctx context.Context, pkg string) (*vm.PackageReply, error)
	Version(ctx context.Context, pkg string, version string) (*vm.VersionReply, error)
	Domain(ctx context.Context, domain string) (*vm.DomainReply, error)
	Subdomain(ctx context.Context, label string, domain string) (*vm.SubdomainReply, error)

	// Resolve returns the contenthash and ttl of a domain or subdomain.
	Resolve(ctx context.Context, name string) (*chain.Resolution, error)
	// DomainPrice returns the registration price of a domain.
	DomainPrice(ctx context.Context, domain string) (uint64, error)

	// RecentActivity returns the most recent events, newest first.
	RecentActivity(ctx context.Context) ([]*chain.Event, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	return &client{req: newRequester(uri, vm.PublicEndpoint, vm.Name, reqTimeout)}
}

type client struct {
	req *requester
}

func (cli *client) Ping(ctx context.Context) (bool, error) {
	resp := new(vm.PingReply)
	err := cli.req.SendRequest(ctx,
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis(ctx context.Context) (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.req.SendRequest(ctx,
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Settings(ctx context.Context) (*chain.Settings, error) {
	resp := new(vm.SettingsReply)
	err := cli.req.SendRequest(ctx,
		"settings",
		nil,
		resp,
	)
	return resp.Settings, err
}

func (cli *client) IssueRawTx(ctx context.Context, d []byte) (ids.ID, []*chain.Event, error) {
	resp := new(vm.IssueRawTxReply)
	if err := cli.req.SendRequest(ctx,
		"issueRawTx",
		&vm.IssueRawTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, nil, err
	}
	return resp.TxID, resp.Events, nil
}

func (cli *client) HasTx(ctx context.Context, txID ids.ID) (bool, error) {
	resp := new(vm.HasTxReply)
	if err := cli.req.SendRequest(ctx,
		"hasTx",
		&vm.HasTxArgs{TxID: txID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Accepted, nil
}

func (cli *client) Scope(ctx context.Context, scope string) (*vm.ScopeReply, error) {
	resp := new(vm.ScopeReply)
	if err := cli.req.SendRequest(ctx,
		"scope",
		&vm.ScopeArgs{Scope: scope},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Package(ctx context.Context, pkg string) (*vm.PackageReply, error) {
	resp := new(vm.PackageReply)
	if err := cli.req.SendRequest(ctx,
		"package",
		&vm.PackageArgs{Package: pkg},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Version(ctx context.Context, pkg string, version string) (*vm.VersionReply, error) {
	resp := new(vm.VersionReply)
	if err := cli.req.SendRequest(ctx,
		"version",
		&vm.VersionArgs{Package: pkg, Version: version},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Domain(ctx context.Context, domain string) (*vm.DomainReply, error) {
	resp := new(vm.DomainReply)
	if err := cli.req.SendRequest(ctx,
		"domain",
		&vm.DomainArgs{Domain: domain},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Subdomain(ctx context.Context, label string, domain string) (*vm.SubdomainReply, error) {
	resp := new(vm.SubdomainReply)
	if err := cli.req.SendRequest(ctx,
		"subdomain",
		&vm.SubdomainArgs{Label: label, Domain: domain},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Resolve(ctx context.Context, name string) (*chain.Resolution, error) {
	resp := new(vm.ResolveReply)
	if err := cli.req.SendRequest(ctx,
		"resolve",
		&vm.ResolveArgs{Name: name},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Resolution, nil
}

func (cli *client) DomainPrice(ctx context.Context, domain string) (uint64, error) {
	resp := new(vm.DomainPriceReply)
	if err := cli.req.SendRequest(ctx,
		"domainPrice",
		&vm.DomainPriceArgs{Domain: domain},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Price, nil
}

func (cli *client) RecentActivity(ctx context.Context) ([]*chain.Event, error) {
	resp := new(vm.RecentActivityReply)
	if err := cli.req.SendRequest(ctx,
		"recentActivity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}

type Op struct {
	value uint64
	nonce uint64
	name  string
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// Non-zero to attach a payment of [value] to the treasury.
func WithPayment(value uint64) OpOption {
	return func(op *Op) { op.value = value }
}

// Overrides the nonce, which otherwise defaults to the current time.
func WithNonce(nonce uint64) OpOption {
	return func(op *Op) { op.nonce = nonce }
}

// Non-empty to print out the resolution of a name after issuance.
func WithResolve(name string) OpOption {
	return func(op *Op) { op.name = name }
}
