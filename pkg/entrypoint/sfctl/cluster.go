package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-servicefabric-go/pkg/util/clusterdata"
)

func (c *cli) clusterCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster level operations",
	}

	snapshotDeadline := 30 * time.Second

	snapshot := &cobra.Command{
		Use:   "snapshot",
		Short: "Summarize the cluster's version, health, nodes, applications and Chaos status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), snapshotDeadline)
			defer cancel()

			s := &clusterdata.Snapshot{Endpoint: c.env.Endpoint()}
			clusterdata.NewBestEffortEnricher(c.log.WithField("component", "snapshot"), c.registry, c.client).Enrich(ctx, s)

			return c.print(s)
		},
	}
	snapshot.Flags().DurationVar(&snapshotDeadline, "deadline", snapshotDeadline, "time allowed for collecting the snapshot")

	cc.AddCommand(
		&cobra.Command{
			Use:   "health",
			Short: "Show the cluster's health",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				health, err := c.client.GetClusterHealth(cmd.Context(), nil, c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(health)
			},
		},
		&cobra.Command{
			Use:   "manifest",
			Short: "Show the cluster manifest",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				manifest, err := c.client.GetClusterManifest(cmd.Context(), c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(manifest)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the cluster's code version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := c.client.GetClusterVersion(cmd.Context(), c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(v)
			},
		},
		&cobra.Command{
			Use:   "upgrade-status",
			Short: "Show the progress of the current cluster upgrade",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				progress, err := c.client.GetClusterUpgradeProgress(cmd.Context(), c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(progress)
			},
		},
		snapshot,
	)

	return cc
}
