package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/util/uuid"
)

type faultOperation struct {
	OperationID string `json:"OperationId"`
}

func (c *cli) faultCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "fault",
		Short: "Fault injection operations",
	}

	var mode string
	dataLoss := &cobra.Command{
		Use:   "data-loss SERVICE_ID PARTITION_ID",
		Short: "Induce data loss on a partition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataLossMode := v82.DataLossMode(mode)
			if !dataLossMode.IsKnown() || dataLossMode == v82.DataLossModeInvalid {
				return fmt.Errorf("invalid --mode %q", mode)
			}

			operationID := c.uuids.Generate()
			c.log.Infof("starting data loss operation %s", operationID)

			err := c.client.StartDataLoss(cmd.Context(), args[0], args[1], operationID, dataLossMode, c.env.Timeout())
			if err != nil {
				return err
			}
			return c.print(faultOperation{OperationID: operationID.String()})
		},
	}
	dataLoss.Flags().StringVar(&mode, "mode", string(v82.DataLossModePartialDataLoss), "PartialDataLoss or FullDataLoss")

	cc.AddCommand(
		dataLoss,
		&cobra.Command{
			Use:   "progress SERVICE_ID PARTITION_ID OPERATION_ID",
			Short: "Show the progress of a data loss operation",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				operationID, err := uuid.FromString(args[2])
				if err != nil {
					return errors.Wrap(err, "invalid operation id")
				}

				progress, err := c.client.GetDataLossProgress(cmd.Context(), args[0], args[1], operationID, c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(progress)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List fault operations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				// 0xFFFF selects every operation type and state.
				operations, err := c.client.GetFaultOperationList(cmd.Context(), 0xFFFF, 0xFFFF, c.env.Timeout())
				if err != nil {
					return err
				}
				return c.print(operations)
			},
		},
	)

	return cc
}
