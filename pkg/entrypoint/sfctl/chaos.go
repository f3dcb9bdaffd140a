package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func (c *cli) chaosCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "chaos",
		Short: "Chaos operations",
	}

	var (
		timeToRun                 string
		maxStabilizationTimeout   int64
		maxConcurrentFaults       int64
		enableMoveReplicaFaults   bool
		waitTimeBetweenFaults     int64
		waitTimeBetweenIterations int64
	)
	start := &cobra.Command{
		Use:   "start",
		Short: "Start Chaos in the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters := v82.ChaosParameters{
				TimeToRunInSeconds:                      &timeToRun,
				MaxClusterStabilizationTimeoutInSeconds: &maxStabilizationTimeout,
				MaxConcurrentFaults:                     &maxConcurrentFaults,
				EnableMoveReplicaFaults:                 &enableMoveReplicaFaults,
				WaitTimeBetweenFaultsInSeconds:          &waitTimeBetweenFaults,
				WaitTimeBetweenIterationsInSeconds:      &waitTimeBetweenIterations,
			}

			c.logRequest("StartChaos", parameters)
			return c.client.StartChaos(cmd.Context(), parameters, c.env.Timeout())
		},
	}
	start.Flags().StringVar(&timeToRun, "time-to-run", "4294967295", "seconds to run Chaos for")
	start.Flags().Int64Var(&maxStabilizationTimeout, "max-cluster-stabilization", 60, "seconds to wait for the cluster to become healthy between iterations")
	start.Flags().Int64Var(&maxConcurrentFaults, "max-concurrent-faults", 1, "faults induced per iteration")
	start.Flags().BoolVar(&enableMoveReplicaFaults, "enable-move-replica-faults", true, "induce move primary and move secondary faults")
	start.Flags().Int64Var(&waitTimeBetweenFaults, "wait-time-between-faults", 20, "seconds between faults in an iteration")
	start.Flags().Int64Var(&waitTimeBetweenIterations, "wait-time-between-iterations", 30, "seconds between iterations")

	var startTime, endTime string
	events := &cobra.Command{
		Use:   "events",
		Short: "List Chaos events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := c.client.ListAllChaosEvents(cmd.Context(), startTime, endTime)
			if err != nil {
				return err
			}
			return c.print(history)
		},
	}
	events.Flags().StringVar(&startTime, "start-time-utc", "", "start of the time range as Windows file time ticks")
	events.Flags().StringVar(&endTime, "end-time-utc", "", "end of the time range as Windows file time ticks")

	cc.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the status of Chaos",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				chaos, err := c.client.GetChaos(cmd.Context(), c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(chaos)
			},
		},
		start,
		&cobra.Command{
			Use:   "stop",
			Short: "Stop Chaos and its schedule",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.client.StopChaos(cmd.Context(), c.env.Timeout())
			},
		},
		events,
		&cobra.Command{
			Use:   "schedule",
			Short: "Show the Chaos schedule",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				schedule, err := c.client.GetChaosSchedule(cmd.Context(), c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(schedule)
			},
		},
	)

	return cc
}
