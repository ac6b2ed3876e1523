// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"time"

	"github.com/fatih/color"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/vm"
)

func PPEvents(events []*chain.Event) {
	if len(events) == 0 {
		color.Yellow("no recent activity")
		return
	}
	for _, e := range events {
		ts := time.Unix(int64(e.Timestamp), 0)
		color.Blue("%s %s actor=%s tx=%s (%v ago)", e.Type, e.Name, e.Actor, e.TxID, time.Since(ts).Round(time.Second))
		if len(e.Version) > 0 {
			color.Cyan("  version=%s", e.Version)
		}
		if e.To != nil {
			color.Cyan("  to=%s", e.To)
		}
		if e.Value > 0 {
			color.Cyan("  value=%d", e.Value)
		}
		if len(e.Detail) > 0 {
			color.Cyan("  detail=%s", e.Detail)
		}
	}
}

func PPPending(p *chain.PendingTransfer) {
	if p == nil {
		return
	}
	color.Magenta("  pending transfer to %s (initiated %v)", p.PendingOwner, time.Unix(int64(p.Initiated), 0))
}

func PPScope(scope string, r *vm.ScopeReply) {
	if !r.Exists {
		color.Yellow("scope %s is not registered", scope)
		return
	}
	color.Blue("scope %s owner=%s created=%v", scope, r.Info.Owner, time.Unix(int64(r.Info.Created), 0))
	PPPending(r.Pending)
}

func PPPackage(pkg string, r *vm.PackageReply) {
	if !r.Exists {
		color.Yellow("package %s is not registered", pkg)
		return
	}
	color.Blue(
		"package %s owner=%s versions=%d latest=%q",
		pkg, r.Info.Owner, r.Info.VersionCount, r.Info.LatestVersion,
	)
	PPPending(r.Pending)
}

func PPVersion(pkg string, version string, r *vm.VersionReply) {
	if !r.Exists {
		color.Yellow("version %s of %s is not published", version, pkg)
		return
	}
	i := r.Info
	color.Blue("version %s@%s cid=%s publisher=%s", pkg, version, i.CID, i.Publisher)
	color.Cyan(
		"  checksum=%s security=%d plugin=%d compatibility=%q",
		i.Checksum, i.SecurityLevel, i.PluginType, i.CompatibilityRange,
	)
	if i.Deprecated {
		color.Red("  deprecated: %s", i.DeprecationReason)
	}
	if r.Mutable {
		color.Green("  deprecation status can still change")
	}
}

func PPDomain(domain string, r *vm.DomainReply) {
	if !r.Exists {
		color.Yellow("domain %s is available", domain)
		return
	}
	color.Blue("domain %s owner=%s ttl=%d", domain, r.Info.Owner, r.Info.TTL)
	if len(r.Info.Contenthash) > 0 {
		color.Cyan("  contenthash(%d)=%s", r.Info.ContenthashType, r.Info.Contenthash)
	}
	PPPending(r.Pending)
}

func PPResolution(r *chain.Resolution) {
	color.Blue("%s owner=%s ttl=%d", r.Name, r.Owner, r.TTL)
	if len(r.Contenthash) == 0 {
		color.Yellow("  no contenthash")
		return
	}
	color.Green("  contenthash(%d)=%s", r.ContenthashType, r.Contenthash)
}
