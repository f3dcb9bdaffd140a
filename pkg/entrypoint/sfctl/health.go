package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

type healthReport struct {
	info              v82.HealthInformation
	healthState       string
	timeToLive        time.Duration
	description       string
	removeWhenExpired bool
	immediate         bool
	serviceKind       string
}

func (c *cli) healthCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "health",
		Short: "Health reporting",
	}

	r := &healthReport{}
	report := &cobra.Command{
		Use:   "report {cluster | node NODE | application APPLICATION_ID | service SERVICE_ID | partition PARTITION_ID | replica PARTITION_ID REPLICA_ID}",
		Short: "Send a health report on a cluster entity",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := r.healthInformation()
			if err != nil {
				return err
			}

			c.logRequest("ReportHealth", info)
			return c.report(cmd.Context(), r, info, args)
		},
	}
	report.Flags().StringVar(&r.info.SourceID, "source-id", "", "source of the report")
	report.Flags().StringVar(&r.info.Property, "property", "", "property the report is about")
	report.Flags().StringVar(&r.healthState, "health-state", "", "Ok, Warning or Error")
	report.Flags().DurationVar(&r.timeToLive, "ttl", 0, "time the report stays valid; unset is infinite")
	report.Flags().StringVar(&r.description, "description", "", "report description")
	report.Flags().BoolVar(&r.removeWhenExpired, "remove-when-expired", false, "remove the report from the health store when it expires")
	report.Flags().BoolVar(&r.immediate, "immediate", false, "send the report to the health store immediately")
	report.Flags().StringVar(&r.serviceKind, "service-kind", string(v82.ReplicaHealthReportServiceKindStateful), "replica's service kind: Stateful or Stateless")
	for _, flag := range []string{"source-id", "property", "health-state"} {
		_ = report.MarkFlagRequired(flag)
	}

	cc.AddCommand(report)

	return cc
}

func (r *healthReport) healthInformation() (v82.HealthInformation, error) {
	info := r.info

	info.HealthState = v82.HealthState(r.healthState)
	if !info.HealthState.IsKnown() || info.HealthState == v82.HealthStateInvalid {
		return info, fmt.Errorf("invalid --health-state %q", r.healthState)
	}

	if r.timeToLive > 0 {
		ttl := strconv.FormatInt(r.timeToLive.Milliseconds(), 10)
		info.TimeToLiveInMilliSeconds = &ttl
	}
	if r.description != "" {
		info.Description = &r.description
	}
	if r.removeWhenExpired {
		info.RemoveWhenExpired = &r.removeWhenExpired
	}

	return info, nil
}

func (c *cli) report(ctx context.Context, r *healthReport, info v82.HealthInformation, args []string) error {
	var immediate *bool
	if r.immediate {
		immediate = &r.immediate
	}

	want := map[string]int{
		"cluster":     1,
		"node":        2,
		"application": 2,
		"service":     2,
		"partition":   2,
		"replica":     3,
	}
	n, found := want[args[0]]
	if !found {
		return fmt.Errorf("unknown entity %q", args[0])
	}
	if len(args) != n {
		return fmt.Errorf("%s: expected %d arguments, got %d", args[0], n-1, len(args)-1)
	}

	timeout := c.env.Timeout()

	switch args[0] {
	case "cluster":
		return c.client.ReportClusterHealth(ctx, info, immediate, timeout)
	case "node":
		return c.client.ReportNodeHealth(ctx, args[1], info, immediate, timeout)
	case "application":
		return c.client.ReportApplicationHealth(ctx, args[1], info, immediate, timeout)
	case "service":
		return c.client.ReportServiceHealth(ctx, args[1], info, immediate, timeout)
	case "partition":
		return c.client.ReportPartitionHealth(ctx, args[1], info, immediate, timeout)
	}

	serviceKind := v82.ReplicaHealthReportServiceKind(r.serviceKind)
	if !serviceKind.IsKnown() {
		return fmt.Errorf("invalid --service-kind %q", r.serviceKind)
	}

	return c.client.ReportReplicaHealth(ctx, args[1], args[2], serviceKind, info, immediate, timeout)
}
