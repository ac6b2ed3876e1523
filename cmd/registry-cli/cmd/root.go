// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "registry-cli" implements registryvm client operation interface.
package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600

	envPrefix         = "REGISTRY_CLI"
	privateKeyFileKey = "private-key-file"
	endpointKey       = "endpoint"
)

var (
	privateKeyFile string
	uri            string
	workDir        string

	rootCmd = &cobra.Command{
		Use:        "registry-cli",
		Short:      "RegistryVM CLI",
		SuggestFor: []string{"registry-cli", "registrycli", "registryctl"},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			privateKeyFile = viper.GetString(privateKeyFileKey)
			uri = viper.GetString(endpointKey)
		},
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		genesisCmd,
		scopeCmd,
		packageCmd,
		publishCmd,
		deprecateCmd,
		undeprecateCmd,
		versionInfoCmd,
		domainCmd,
		subdomainCmd,
		contenthashCmd,
		ttlCmd,
		resolveCmd,
		adminCmd,
		activityCmd,
		signTransferCmd,
	)

	rootCmd.PersistentFlags().String(
		privateKeyFileKey,
		".registry-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().String(
		endpointKey,
		"http://127.0.0.1:9650",
		"RPC endpoint for VM",
	)
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func Execute() error {
	return rootCmd.Execute()
}
