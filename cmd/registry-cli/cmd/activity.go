// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/registryvm/client"
)

var activityCmd = &cobra.Command{
	Use:   "activity [options]",
	Short: "View recent activity on the registry",
	RunE:  activityFunc,
}

func activityFunc(cmd *cobra.Command, args []string) error {
	if err := expectArgs(args, 0); err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	activity, err := cli.RecentActivity(context.Background())
	if err != nil {
		return err
	}
	client.PPEvents(activity)
	return nil
}
