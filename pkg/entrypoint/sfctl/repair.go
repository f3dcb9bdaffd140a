package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func (c *cli) repairCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "repair",
		Short: "Repair task operations",
	}

	var taskIDFilter, executorFilter string
	var stateFilter int32
	list := &cobra.Command{
		Use:   "list",
		Short: "List repair tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var states *int32
			if cmd.Flags().Changed("state") {
				states = &stateFilter
			}

			tasks, err := c.client.GetRepairTaskList(cmd.Context(), taskIDFilter, states, executorFilter)
			if err != nil {
				return err
			}
			return c.print(tasks)
		},
	}
	list.Flags().StringVar(&taskIDFilter, "task-id", "", "task id prefix")
	list.Flags().Int32Var(&stateFilter, "state", 0, "bitwise OR of repair task states")
	list.Flags().StringVar(&executorFilter, "executor", "", "executor name")

	var version string
	var requestAbort bool
	cancel := &cobra.Command{
		Use:   "cancel TASK_ID",
		Short: "Request cancellation of a repair task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := v82.RepairTaskCancelDescription{
				TaskID:       args[0],
				RequestAbort: &requestAbort,
			}
			if version != "" {
				description.Version = &version
			}

			info, err := c.client.CancelRepairTask(cmd.Context(), description)
			if err != nil {
				return err
			}
			return c.print(info)
		},
	}
	cancel.Flags().StringVar(&version, "version", "", "current task version; unset skips the version check")
	cancel.Flags().BoolVar(&requestAbort, "request-abort", false, "cancel even if the task is executing")

	approve := &cobra.Command{
		Use:   "approve TASK_ID",
		Short: "Force approve a repair task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := v82.RepairTaskApproveDescription{
				TaskID: args[0],
			}
			if version != "" {
				description.Version = &version
			}

			info, err := c.client.ForceApproveRepairTask(cmd.Context(), description)
			if err != nil {
				return err
			}
			return c.print(info)
		},
	}
	approve.Flags().StringVar(&version, "version", "", "current task version; unset skips the version check")

	cc.AddCommand(list, cancel, approve)

	return cc
}
