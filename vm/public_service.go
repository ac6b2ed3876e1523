// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/parser"
)

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type SettingsReply struct {
	Settings *chain.Settings `serialize:"true" json:"settings"`
}

func (svc *PublicService) Settings(_ *http.Request, _ *struct{}, reply *SettingsReply) error {
	svc.vm.execLock.RLock()
	defer svc.vm.execLock.RUnlock()

	s, err := chain.GetSettings(svc.vm.db)
	if err != nil {
		return err
	}
	reply.Settings = s
	return nil
}

type IssueRawTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueRawTxReply struct {
	TxID   ids.ID         `serialize:"true" json:"txId"`
	Events []*chain.Event `serialize:"true" json:"events"`
}

func (svc *PublicService) IssueRawTx(_ *http.Request, args *IssueRawTxArgs, reply *IssueRawTxReply) error {
	txID, events, err := svc.vm.IssueRawTx(args.Tx)
	reply.TxID = txID
	if err != nil {
		return err
	}
	reply.Events = events
	return nil
}

type HasTxArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type HasTxReply struct {
	Accepted bool `serialize:"true" json:"accepted"`
}

func (svc *PublicService) HasTx(_ *http.Request, args *HasTxArgs, reply *HasTxReply) error {
	has, err := svc.vm.HasTx(args.TxID)
	if err != nil {
		return err
	}
	reply.Accepted = has
	return nil
}

type ScopeArgs struct {
	Scope string `serialize:"true" json:"scope"`
}

type ScopeReply struct {
	Exists  bool                   `serialize:"true" json:"exists"`
	Info    *chain.ScopeInfo       `serialize:"true" json:"info"`
	Pending *chain.PendingTransfer `serialize:"true" json:"pending"`
}

func (svc *PublicService) Scope(_ *http.Request, args *ScopeArgs, reply *ScopeReply) error {
	svc.vm.execLock.RLock()
	defer svc.vm.execLock.RUnlock()

	if err := parser.CheckScope(args.Scope); err != nil {
		return err
	}
	i, has, err := chain.GetScopeInfo(svc.vm.db, args.Scope)
	if !has || err != nil {
		return err
	}
	p, _, err := chain.GetPendingScopeTransfer(svc.vm.db, args.Scope)
	if err != nil {
		return err
	}
	reply.Exists = true
	reply.Info = i
	reply.Pending = p
	return nil
}

type PackageArgs struct {
	Package string `serialize:"true" json:"package"`
}

type PackageReply struct {
	Exists  bool                   `serialize:"true" json:"exists"`
	Info    *chain.PackageInfo     `serialize:"true" json:"info"`
	Pending *chain.PendingTransfer `serialize:"true" json:"pending"`
}

func (svc *PublicService) Package(_ *http.Request, args *PackageArgs, reply *PackageReply) error {
	svc.vm.execLock.RLock()
	defer svc.vm.execLock.RUnlock()

	if err := parser.CheckPackage(args.Package); err != nil {
		return err
	}
	i, has, err := chain.GetPackageInfo(svc.vm.db, args.Package)
	if !has || err != nil {
		return err
	}
	p, _, err := chain.GetPendingPackageTransfer(svc.vm.db, args.Package)
	if err != nil {
		return err
	}
	reply.Exists = true
	reply.Info = i
	reply.Pending = p
	return nil
}

type VersionArgs struct {
	Package string `serialize:"true" json:"package"`
	Version string `serialize:"true" json:"version"`
}

type VersionReply struct {
	Exists bool               `serialize:"true" json:"exists"`
	Info   *chain.VersionInfo `serialize:"true" json:"info"`
	// Mutable reports whether the version may still be deprecated or
	// undeprecated at the current time.
	Mutable bool `serialize:"true" json:"mutable"`
}

func (svc *PublicService) Version(_ *http.Request, args *VersionArgs, reply *VersionReply) error {
	svc.vm.execLock.RLock()
	defer svc.vm.execLock.RUnlock()

	if err := parser.CheckPackage(args.Package); err != nil {
		return err
	}
	if err := parser.CheckVersion(args.Version); err != nil {
		return err
	}
	i, has, err := chain.GetVersionInfo(svc.vm.db, args.Package, args.Version)
	if !has || err != nil {
		return err
	}
	mutable, err := chain.Mutable(svc.vm.genesis, i, svc.vm.blockTime())
	if err != nil {
		return err
	}
	reply.Exists = true
	reply.Info = i
	reply.Mutable = mutable
	return nil
}

type DomainArgs struct {
	Domain string `serialize:"true" json:"domain"`
}

type DomainReply struct {
	Exists  bool                   `serialize:"true" json:"exists"`
	Info    *chain.DomainInfo      `serialize:"true" json:"info"`
	Pending *chain.PendingTransfer `serialize:"true" json:"pending"`
}

func (svc *PublicService) Domain(_ *http.Request, args *DomainArgs, reply *DomainReply) error {
	svc.vm.execLock.RLock()
	defer svc.vm.execLock.RUnlock()

	if err := parser.CheckDomain(args.Domain); err != nil {
		return err
	}
	i, has, err := chain.GetDomainInfo(svc.vm.db, args.Domain)
	if !has || err != nil {
		return err
	}
	p, _, err := chain.GetPendingDomainTransfer(svc.vm.db, args.Domain)
	if err != nil {
		return err
	}
	reply.Exists = true
	reply.Info = i
	reply.Pending = p
	return nil
}

type SubdomainArgs struct {
	Label  string `serialize:"true" json:"label"`
	Domain string `serialize:"true" json:"domain"`
}

type SubdomainReply struct {
	Exists bool                 `serialize:"true" json:"exists"`
	Info   *chain.SubdomainInfo `serialize:"true" json:"info"`
}

func (svc *PublicService) Subdomain(_ *http.Request, args *SubdomainArgs, reply *SubdomainReply) error {
	svc.vm.execLock.RLock()
	defer svc.vm.execLock.RUnlock()

	if err := parser.CheckSubdomain(args.Label, args.Domain); err != nil {
		return err
	}
	i, has, err := chain.GetSubdomainInfo(svc.vm.db, args.Label, args.Domain)
	if !has || err != nil {
		return err
	}
	reply.Exists = true
	reply.Info = i
	return nil
}

type ResolveArgs struct {
	Name string `serialize:"true" json:"name"`
}

type ResolveReply struct {
	Resolution *chain.Resolution `serialize:"true" json:"resolution"`
}

func (svc *PublicService) Resolve(_ *http.Request, args *ResolveArgs, reply *ResolveReply) error {
	svc.vm.execLock.RLock()
	defer svc.vm.execLock.RUnlock()

	r, err := chain.Resolve(svc.vm.db, args.Name)
	if err != nil {
		return err
	}
	reply.Resolution = r
	return nil
}

type DomainPriceArgs struct {
	Domain string `serialize:"true" json:"domain"`
}

type DomainPriceReply struct {
	Price uint64 `serialize:"true" json:"price"`
}

func (svc *PublicService) DomainPrice(_ *http.Request, args *DomainPriceArgs, reply *DomainPriceReply) error {
	svc.vm.execLock.RLock()
	defer svc.vm.execLock.RUnlock()

	if err := parser.CheckDomain(args.Domain); err != nil {
		return err
	}
	s, err := chain.GetSettings(svc.vm.db)
	if err != nil {
		return err
	}
	reply.Price = svc.vm.genesis.DomainTiers.DomainPrice(args.Domain, s.DomainPrice)
	return nil
}

type RecentActivityReply struct {
	Activity []*chain.Event `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, _ *struct{}, reply *RecentActivityReply) error {
	reply.Activity = svc.vm.RecentActivity()
	return nil
}
