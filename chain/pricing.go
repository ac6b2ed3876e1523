// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/registryvm/parser"
)

type PremiumTier struct {
	Names []string `serialize:"true" json:"names"`
	Price uint64   `serialize:"true" json:"price"`
}

func (p *PremiumTier) contains(name string) bool {
	for _, n := range p.Names {
		if n == name {
			return true
		}
	}
	return false
}

// DomainTiers are the length and premium-list prices that take precedence
// over the base domain price.
type DomainTiers struct {
	// Tier0 is the ultra-premium list. It wins over every other rule.
	Tier0 PremiumTier `serialize:"true" json:"tier0"`

	OneChar   uint64 `serialize:"true" json:"oneChar"`
	TwoChar   uint64 `serialize:"true" json:"twoChar"`
	ThreeChar uint64 `serialize:"true" json:"threeChar"`
	FourChar  uint64 `serialize:"true" json:"fourChar"`
	FiveChar  uint64 `serialize:"true" json:"fiveChar"`

	// Premium lists, ordered from most to least expensive.
	Premium []*PremiumTier `serialize:"true" json:"premium"`
}

func DefaultDomainTiers() DomainTiers {
	return DomainTiers{
		Tier0: PremiumTier{
			Names: []string{"bitcoin", "satoshi", "nakamoto"},
			Price: 100_000_000,
		},
		OneChar:   50_000_000,
		TwoChar:   25_000_000,
		ThreeChar: 1_000_000,
		FourChar:  250_000,
		FiveChar:  50_000,
		Premium: []*PremiumTier{
			{Names: []string{"btc", "wallet", "exchange", "bank"}, Price: 10_000_000},
			{Names: []string{"pay", "swap", "dao", "defi", "mint"}, Price: 5_000_000},
			{Names: []string{"app", "dev", "shop", "games"}, Price: 2_000_000},
		},
	}
}

func (d *DomainTiers) premium(name string) (uint64, bool) {
	for _, t := range d.Premium {
		if t.contains(name) {
			return t.Price, true
		}
	}
	return 0, false
}

// DomainPrice resolves the registration price of [domain]. The first
// matching rule wins:
//   tier-0 list, length 1, length 2, premium lists in order, length 3,
//   length 4, length 5, then [base].
// Premium membership is checked before the 3 and 4 character tiers but
// never overrides the 1 and 2 character tiers.
func (d *DomainTiers) DomainPrice(domain string, base uint64) uint64 {
	name := parser.Canonicalize(domain)
	if d.Tier0.contains(name) {
		return d.Tier0.Price
	}
	switch len(name) {
	case 1:
		return d.OneChar
	case 2:
		return d.TwoChar
	}
	if p, ok := d.premium(name); ok {
		return p
	}
	switch len(name) {
	case 3:
		return d.ThreeChar
	case 4:
		return d.FourChar
	case 5:
		return d.FiveChar
	}
	return base
}
