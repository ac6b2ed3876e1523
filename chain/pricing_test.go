// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"
)

func TestDomainPrice(t *testing.T) {
	t.Parallel()

	d := DefaultDomainTiers()
	d.Tier0.Names = append(d.Tier0.Names, "x")
	d.Premium[0].Names = append(d.Premium[0].Names, "y", "zz")
	base := uint64(10_000)

	tt := []struct {
		domain string
		price  uint64
	}{
		{domain: "bitcoin", price: d.Tier0.Price},
		{domain: "BitCoin", price: d.Tier0.Price},
		// tier-0 wins over the length tiers
		{domain: "x", price: d.Tier0.Price},
		// length 1 and 2 win over premium lists
		{domain: "y", price: d.OneChar},
		{domain: "a", price: d.OneChar},
		{domain: "zz", price: d.TwoChar},
		{domain: "ab", price: d.TwoChar},
		// premium lists win over length 3, 4 and 5
		{domain: "btc", price: d.Premium[0].Price},
		{domain: "pay", price: d.Premium[1].Price},
		{domain: "abc", price: d.ThreeChar},
		{domain: "shop", price: d.Premium[2].Price},
		{domain: "abcd", price: d.FourChar},
		{domain: "games", price: d.Premium[2].Price},
		{domain: "abcde", price: d.FiveChar},
		{domain: "wallet", price: d.Premium[0].Price},
		{domain: "abcdef", price: base},
		{domain: "a-much-longer-name", price: base},
	}
	for i, tv := range tt {
		if p := d.DomainPrice(tv.domain, base); p != tv.price {
			t.Fatalf("#%d: %q expected %d, got %d", i, tv.domain, tv.price, p)
		}
	}
}

func TestDomainPriceFirstPremiumWins(t *testing.T) {
	t.Parallel()

	d := DomainTiers{
		Premium: []*PremiumTier{
			{Names: []string{"dup"}, Price: 7},
			{Names: []string{"dup"}, Price: 3},
		},
		ThreeChar: 1,
	}
	if p := d.DomainPrice("dup", 0); p != 7 {
		t.Fatalf("expected the first listed tier, got %d", p)
	}
}
