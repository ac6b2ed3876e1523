// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/chain"
	"github.com/ava-labs/registryvm/client"
	"github.com/ava-labs/registryvm/parser"
)

var (
	cid                string
	checksum           string
	securityLevel      uint8
	signatureFile      string
	compatibilityRange string
	pluginType         uint8
	permissionsHash    string
	dependencies       string

	reason string
)

var publishCmd = &cobra.Command{
	Use:   "publish [options] <package> <version>",
	Short: "Publishes a new version of a package",
	Long: `
Publishes an immutable version record. The artifact itself lives on IPFS;
only its CID, checksum and signature are recorded.

$ registry-cli publish @acme/widget 1.0.0 \
  --cid QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG \
  --checksum 0x01... \
  --security-level 2 \
  --signature-file widget.sig \
  --compatibility ">=1.0.0" \
  --plugin-type 1

`,
	RunE: publishFunc,
}

var deprecateCmd = &cobra.Command{
	Use:   "deprecate [options] <package> <version>",
	Short: "Deprecates a version within its mutability window",
	RunE:  deprecateFunc,
}

var undeprecateCmd = &cobra.Command{
	Use:   "undeprecate [options] <package> <version>",
	Short: "Reverses a deprecation within the mutability window",
	RunE:  undeprecateFunc,
}

var versionInfoCmd = &cobra.Command{
	Use:   "version-info [options] <package> <version>",
	Short: "Reads a published version",
	RunE:  versionInfoFunc,
}

func init() {
	fs := publishCmd.Flags()
	fs.StringVar(&cid, "cid", "", "IPFS CID of the artifact")
	fs.StringVar(&checksum, "checksum", "", "hex SHA-256 checksum of the artifact")
	fs.Uint8Var(&securityLevel, "security-level", parser.SecurityLevel2, "post-quantum signature security level (1-3)")
	fs.StringVar(&signatureFile, "signature-file", "", "path to the raw artifact signature")
	fs.StringVar(&compatibilityRange, "compatibility", "", "compatible host version range")
	fs.Uint8Var(&pluginType, "plugin-type", parser.PluginStandalone, "plugin type")
	fs.StringVar(&permissionsHash, "permissions-hash", "", "hex hash of the requested permissions")
	fs.StringVar(&dependencies, "dependencies", "", "dependency manifest")

	deprecateCmd.Flags().StringVar(&reason, "reason", "", "deprecation reason")
}

func publishFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	sig, err := os.ReadFile(signatureFile)
	if err != nil {
		return err
	}
	in := &chain.Input{
		Typ:                chain.PublishVersion,
		Package:            args[0],
		Version:            args[1],
		CID:                cid,
		Checksum:           common.HexToHash(checksum),
		SecurityLevel:      securityLevel,
		CompatibilityRange: compatibilityRange,
		PluginType:         pluginType,
		PermissionsHash:    common.HexToHash(permissionsHash),
		Signature:          sig,
		Dependencies:       []byte(dependencies),
	}
	return issue(context.Background(), client.New(uri, requestTimeout), in)
}

func deprecateFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	in := &chain.Input{Typ: chain.DeprecateVersion, Package: args[0], Version: args[1], Reason: reason}
	return issue(context.Background(), client.New(uri, requestTimeout), in)
}

func undeprecateFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	in := &chain.Input{Typ: chain.UndeprecateVersion, Package: args[0], Version: args[1]}
	return issue(context.Background(), client.New(uri, requestTimeout), in)
}

func versionInfoFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 2); err != nil {
		return err
	}
	r, err := client.New(uri, requestTimeout).Version(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	client.PPVersion(args[0], args[1], r)
	return nil
}
