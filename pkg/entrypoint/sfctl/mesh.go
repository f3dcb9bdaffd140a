package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"
)

func (c *cli) meshCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "mesh",
		Short: "Service Fabric Mesh resource operations",
	}

	cc.AddCommand(
		&cobra.Command{
			Use:   "app-list",
			Short: "List Mesh applications",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				applications, err := c.client.MeshApplicationList(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(applications)
			},
		},
		&cobra.Command{
			Use:   "app-show NAME",
			Short: "Show a Mesh application",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				application, err := c.client.MeshApplicationGet(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(application)
			},
		},
		&cobra.Command{
			Use:   "secret-list",
			Short: "List Mesh secrets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				secrets, err := c.client.MeshSecretList(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(secrets)
			},
		},
		&cobra.Command{
			Use:   "volume-list",
			Short: "List Mesh volumes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				volumes, err := c.client.MeshVolumeList(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(volumes)
			},
		},
	)

	return cc
}
