// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/database"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/registryvm/parser"
)

const (
	// 72 hours
	DefaultMutabilityWindow = 60 * 60 * 72
	DefaultReservedName     = "registry"

	segwitV0       = 0
	bech32Sep      = "1"
	bitsPerByte    = 8
	bitsPerBech32  = 5
	defaultMagicID = 1
)

var ErrInvalidGenesis = fmt.Errorf("%w: invalid genesis", ErrInvalidFormat)

type Genesis struct {
	Magic uint64 `serialize:"true" json:"magic"`

	// Deployer is the privileged identity: it owns the reserved name and is
	// the only sender allowed to change settings.
	Deployer common.Address `serialize:"true" json:"deployer"`

	// TreasuryAddress receives registration payments. When empty it defaults
	// to the deployer's own receive address.
	TreasuryAddress string `serialize:"true" json:"treasuryAddress"`
	AddressPrefix   string `serialize:"true" json:"addressPrefix"`

	ReservedName string `serialize:"true" json:"reservedName"`

	// MutabilityWindow is the number of seconds after publication during
	// which a version's deprecation status may change.
	MutabilityWindow uint64 `serialize:"true" json:"mutabilityWindow"`

	ScopePrice   uint64      `serialize:"true" json:"scopePrice"`
	PackagePrice uint64      `serialize:"true" json:"packagePrice"`
	DomainPrice  uint64      `serialize:"true" json:"domainPrice"`
	DomainTiers  DomainTiers `serialize:"true" json:"domainTiers"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic:            defaultMagicID,
		AddressPrefix:    parser.DefaultAddressPrefix,
		ReservedName:     DefaultReservedName,
		MutabilityWindow: DefaultMutabilityWindow,

		ScopePrice:   10_000,
		PackagePrice: 5_000,
		DomainPrice:  10_000,
		DomainTiers:  DefaultDomainTiers(),
	}
}

func (g *Genesis) Verify() error {
	switch {
	case g.Magic == 0:
		return fmt.Errorf("%w: magic must be non-zero", ErrInvalidGenesis)
	case g.Deployer == (common.Address{}):
		return fmt.Errorf("%w: deployer must be set", ErrInvalidGenesis)
	case !strings.HasSuffix(g.AddressPrefix, bech32Sep):
		return fmt.Errorf("%w: address prefix %q must end with %q", ErrInvalidGenesis, g.AddressPrefix, bech32Sep)
	case g.MutabilityWindow == 0:
		return fmt.Errorf("%w: mutability window must be non-zero", ErrInvalidGenesis)
	}
	if len(g.TreasuryAddress) > 0 {
		if err := parser.CheckAddress(g.AddressPrefix, g.TreasuryAddress); err != nil {
			return err
		}
	}
	if len(g.ReservedName) > 0 {
		if err := parser.CheckScope(g.ReservedName); err != nil {
			return err
		}
		if err := parser.CheckDomain(g.ReservedName); err != nil {
			return err
		}
	}
	return nil
}

// ReceiveAddress returns the segwit v0 address of [addr] under [prefix].
func ReceiveAddress(prefix string, addr common.Address) (string, error) {
	conv, err := bech32.ConvertBits(addr.Bytes(), bitsPerByte, bitsPerBech32, true)
	if err != nil {
		return "", err
	}
	hrp := strings.TrimSuffix(prefix, bech32Sep)
	return bech32.Encode(hrp, append([]byte{segwitV0}, conv...))
}

// Load writes the initial settings and provisions the reserved name for the
// deployer. It must only be called on an empty database.
func (g *Genesis) Load(db database.Database) error {
	if err := g.Verify(); err != nil {
		return err
	}

	treasury := g.TreasuryAddress
	if len(treasury) == 0 {
		addr, err := ReceiveAddress(g.AddressPrefix, g.Deployer)
		if err != nil {
			return err
		}
		treasury = addr
	}
	if err := PutSettings(db, &Settings{
		TreasuryAddress: treasury,
		ScopePrice:      g.ScopePrice,
		PackagePrice:    g.PackagePrice,
		DomainPrice:     g.DomainPrice,
	}); err != nil {
		return err
	}

	if len(g.ReservedName) > 0 {
		if err := PutScopeInfo(db, g.ReservedName, &ScopeInfo{Owner: g.Deployer}); err != nil {
			return err
		}
		if err := PutDomainInfo(db, g.ReservedName, &DomainInfo{Owner: g.Deployer}); err != nil {
			return err
		}
	}
	log.Debug("loaded genesis", "deployer", g.Deployer, "treasury", treasury, "reserved", g.ReservedName)
	return nil
}
