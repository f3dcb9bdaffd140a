package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func (c *cli) nodeCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "node",
		Short: "Node operations",
	}

	var statusFilter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the nodes in the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := c.client.ListAllNodes(cmd.Context(), statusFilter)
			if err != nil {
				return err
			}
			return c.print(nodes)
		},
	}
	list.Flags().StringVar(&statusFilter, "status", "", "node status filter, e.g. up, down or all")

	var intent string
	disable := &cobra.Command{
		Use:   "disable NODE...",
		Short: "Deactivate nodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deactivationIntent := v82.NodeDeactivationIntent(intent)
			if !deactivationIntent.IsKnown() {
				return fmt.Errorf("invalid --intent %q", intent)
			}

			return c.forEach(args, func(node string) error {
				return c.client.DisableNode(cmd.Context(), node, v82.DeactivationIntentDescription{
					DeactivationIntent: &deactivationIntent,
				}, c.env.Timeout())
			})
		},
	}
	disable.Flags().StringVar(&intent, "intent", string(v82.NodeDeactivationIntentPause), "deactivation intent: Pause, Restart, RemoveData or RemoveNode")

	var instanceID string
	var createFabricDump bool
	restart := &cobra.Command{
		Use:   "restart NODE",
		Short: "Restart a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := v82.RestartNodeDescription{
				NodeInstanceID: instanceID,
			}
			if createFabricDump {
				dump := v82.CreateFabricDumpTrue
				description.CreateFabricDump = &dump
			}

			c.logRequest("RestartNode", description)
			return c.client.RestartNode(cmd.Context(), args[0], description, c.env.Timeout())
		},
	}
	restart.Flags().StringVar(&instanceID, "instance-id", "0", "node instance to restart; 0 matches any instance")
	restart.Flags().BoolVar(&createFabricDump, "create-fabric-dump", false, "create a dump of the fabric node process")

	cc.AddCommand(
		list,
		&cobra.Command{
			Use:   "show NODE",
			Short: "Show a node",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				node, err := c.client.GetNodeInfo(cmd.Context(), args[0], c.env.Timeout())
				if err != nil {
					return err
				}
				if node.Name == nil {
					return fmt.Errorf("node %q not found", args[0])
				}
				return c.print(node)
			},
		},
		&cobra.Command{
			Use:   "health NODE",
			Short: "Show a node's health",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				health, err := c.client.GetNodeHealth(cmd.Context(), args[0], nil, c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(health)
			},
		},
		disable,
		&cobra.Command{
			Use:   "enable NODE...",
			Short: "Activate deactivated nodes",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.forEach(args, func(node string) error {
					return c.client.EnableNode(cmd.Context(), node, c.env.Timeout())
				})
			},
		},
		restart,
	)

	return cc
}
