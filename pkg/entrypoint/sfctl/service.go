package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"
)

func (c *cli) serviceCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "service",
		Short: "Service operations",
	}

	cc.AddCommand(
		&cobra.Command{
			Use:   "list APPLICATION_ID",
			Short: "List the services of an application",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				services, err := c.client.ListAllServices(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(services)
			},
		},
		&cobra.Command{
			Use:   "show APPLICATION_ID SERVICE_ID",
			Short: "Show a service",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				service, err := c.client.GetServiceInfo(cmd.Context(), args[0], args[1], c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(service)
			},
		},
		&cobra.Command{
			Use:   "description SERVICE_ID",
			Short: "Show the description a service was created with",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				description, err := c.client.GetServiceDescription(cmd.Context(), args[0], c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(description)
			},
		},
		&cobra.Command{
			Use:   "health SERVICE_ID",
			Short: "Show a service's health",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				health, err := c.client.GetServiceHealth(cmd.Context(), args[0], nil, c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(health)
			},
		},
	)

	return cc
}

func (c *cli) partitionCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "partition",
		Short: "Partition operations",
	}

	cc.AddCommand(
		&cobra.Command{
			Use:   "list SERVICE_ID",
			Short: "List the partitions of a service",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				partitions, err := c.client.ListAllPartitions(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(partitions)
			},
		},
		&cobra.Command{
			Use:   "health PARTITION_ID",
			Short: "Show a partition's health",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				health, err := c.client.GetPartitionHealth(cmd.Context(), args[0], nil, c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(health)
			},
		},
	)

	return cc
}

func (c *cli) replicaCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "replica",
		Short: "Replica operations",
	}

	cc.AddCommand(
		&cobra.Command{
			Use:   "list PARTITION_ID",
			Short: "List the replicas of a partition",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				replicas, err := c.client.ListAllReplicas(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(replicas)
			},
		},
		&cobra.Command{
			Use:   "health PARTITION_ID REPLICA_ID",
			Short: "Show a replica's health",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				health, err := c.client.GetReplicaHealth(cmd.Context(), args[0], args[1], nil, c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(health)
			},
		},
	)

	return cc
}
