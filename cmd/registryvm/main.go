// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "registryvm" serves the registry executor over JSON-RPC.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/cmd/registryvm/version"
	"github.com/ava-labs/registryvm/vm"
)

const (
	envPrefix       = "REGISTRYVM"
	metricsEndpoint = "/metrics"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

const (
	configKey            = "config"
	genesisKey           = "genesis"
	deployerKey          = "deployer"
	httpAddressKey       = "http-address"
	metricsEnabledKey    = "metrics-enabled"
	logLevelKey          = "log-level"
	dbDirKey             = "db-dir"
	activityCacheSizeKey = "activity-cache-size"
)

func init() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlInfo, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
}

var rootCmd = &cobra.Command{
	Use:        "registryvm",
	Short:      "RegistryVM node",
	SuggestFor: []string{"registryvm"},
	RunE:       runFunc,
}

var runCmd = &cobra.Command{
	Use:   "run [options]",
	Short: "Serves the registry until interrupted",
	RunE:  runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true
}

func init() {
	rootCmd.AddCommand(
		runCmd,
		version.NewCommand(),
	)

	fs := rootCmd.PersistentFlags()
	addFlags(fs)
	if err := viper.BindPFlags(fs); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addFlags(fs *pflag.FlagSet) {
	defaults := vm.Config{}
	defaults.SetDefaults()

	fs.String(configKey, "", "config file path")
	fs.String(genesisKey, "", "genesis file path")
	fs.String(deployerKey, "", "deployer address, overrides the genesis deployer")
	fs.String(httpAddressKey, defaults.HTTPAddress, "address to serve JSON-RPC on")
	fs.Bool(metricsEnabledKey, defaults.MetricsEnabled, "serve prometheus metrics on "+metricsEndpoint)
	fs.String(logLevelKey, defaults.LogLevel, "log level (debug, info, warn, error, crit)")
	fs.String(dbDirKey, defaults.DatabaseDir, "leveldb directory, state is kept in memory when empty")
	fs.Int(activityCacheSizeKey, defaults.ActivityCacheSize, "number of recent events to retain")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "registryvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func loadConfig() (vm.Config, error) {
	if f := viper.GetString(configKey); len(f) > 0 {
		viper.SetConfigFile(f)
		if err := viper.ReadInConfig(); err != nil {
			return vm.Config{}, err
		}
	}
	return vm.Config{
		HTTPAddress:       viper.GetString(httpAddressKey),
		MetricsEnabled:    viper.GetBool(metricsEnabledKey),
		LogLevel:          viper.GetString(logLevelKey),
		DatabaseDir:       viper.GetString(dbDirKey),
		ActivityCacheSize: viper.GetInt(activityCacheSizeKey),
	}, nil
}

func loadGenesis() (*chain.Genesis, error) {
	g := chain.DefaultGenesis()
	if f := viper.GetString(genesisKey); len(f) > 0 {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("%w: failed to parse genesis %s", err, f)
		}
	}
	if d := viper.GetString(deployerKey); len(d) > 0 {
		if !common.IsHexAddress(d) {
			return nil, fmt.Errorf("%w: deployer %q", chain.ErrInvalidGenesis, d)
		}
		g.Deployer = common.HexToAddress(d)
	}
	return g, g.Verify()
}

func runFunc(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	lvl, err := log.LvlFromString(c.LogLevel)
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))

	g, err := loadGenesis()
	if err != nil {
		return err
	}

	db, err := vm.OpenDatabase(c.DatabaseDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "err", err)
		}
	}()

	registry := prometheus.NewRegistry()
	v, err := vm.New(g, c, db, vm.WithRegisterer(registry))
	if err != nil {
		return err
	}
	handlers, err := v.Handlers()
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	for path, h := range handlers {
		mux.Handle(path, h)
	}
	if c.MetricsEnabled {
		mux.Handle(metricsEndpoint, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	srv := &http.Server{
		Addr:              c.HTTPAddress,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("serving", "address", c.HTTPAddress, "endpoint", vm.PublicEndpoint, "metrics", c.MetricsEnabled)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ectx.Done()
		log.Info("shutting down")
		sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer scancel()
		return srv.Shutdown(sctx)
	})
	return eg.Wait()
}
