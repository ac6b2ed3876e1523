// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
)

var (
	genesisFile string

	deployer         string
	treasury         string
	mutabilityWindow int64
	scopePrice       int64
	packagePrice     int64
	domainPrice      int64

	magic uint64
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
	genesisCmd.PersistentFlags().StringVar(
		&deployer,
		"deployer",
		"",
		"deployer address (defaults to the address of the private key file)",
	)
	genesisCmd.PersistentFlags().StringVar(
		&treasury,
		"treasury",
		"",
		"treasury address (defaults to the deployer's receive address)",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&mutabilityWindow,
		"mutability-window",
		-1,
		"seconds during which a published version may be deprecated",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&scopePrice,
		"scope-price",
		-1,
		"scope registration price",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&packagePrice,
		"package-price",
		-1,
		"unscoped package registration price",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&domainPrice,
		"domain-price",
		-1,
		"base domain registration price",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [magic] [options]",
	Short: "Creates a new genesis in the default location",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}

		m, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		magic = m
		if magic == 0 {
			return chain.ErrInvalidMagic
		}
		return nil
	},
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	genesis := chain.DefaultGenesis()
	genesis.Magic = magic
	genesis.TreasuryAddress = treasury
	if mutabilityWindow >= 0 {
		genesis.MutabilityWindow = uint64(mutabilityWindow)
	}
	if scopePrice >= 0 {
		genesis.ScopePrice = uint64(scopePrice)
	}
	if packagePrice >= 0 {
		genesis.PackagePrice = uint64(packagePrice)
	}
	if domainPrice >= 0 {
		genesis.DomainPrice = uint64(domainPrice)
	}

	switch {
	case len(deployer) > 0:
		if !common.IsHexAddress(deployer) {
			return errors.New("deployer is not a hex address")
		}
		genesis.Deployer = common.HexToAddress(deployer)
	default:
		priv, err := crypto.LoadECDSA(privateKeyFile)
		if err != nil {
			return err
		}
		genesis.Deployer = crypto.PubkeyToAddress(priv.PublicKey)
	}
	if err := genesis.Verify(); err != nil {
		return err
	}

	b, err := json.Marshal(genesis)
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("created genesis and saved to %s", genesisFile)
	return nil
}
