package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

const chaosAPIVersion = "6.2"

// GetChaos gets the status of Chaos.
func (client BaseClient) GetChaos(ctx context.Context, timeout *int64) (result v82.Chaos, err error) {
	_, err = client.do(ctx, &operation{
		name:       "GetChaos",
		method:     http.MethodGet,
		path:       "/Tools/Chaos",
		apiVersion: chaosAPIVersion,
		timeout:    timeout,
	}, &result)
	return
}

// StartChaos starts Chaos in the cluster if it is not already running.
func (client BaseClient) StartChaos(ctx context.Context, chaosParameters v82.ChaosParameters, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:       "StartChaos",
		method:     http.MethodPost,
		path:       "/Tools/Chaos/$/Start",
		apiVersion: "6.0",
		timeout:    timeout,
		body:       chaosParameters,
	}, nil)
	return err
}

// StopChaos stops Chaos if it is running and puts any Chaos schedule in a
// stopped state.
func (client BaseClient) StopChaos(ctx context.Context, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:       "StopChaos",
		method:     http.MethodPost,
		path:       "/Tools/Chaos/$/Stop",
		apiVersion: "6.0",
		timeout:    timeout,
	}, nil)
	return err
}

// GetChaosEvents gets one segment of Chaos events. startTimeUtc and
// endTimeUtc are Windows file time ticks.
func (client BaseClient) GetChaosEvents(ctx context.Context, continuationToken string, startTimeUtc string, endTimeUtc string, maxResults *int64, timeout *int64) (result v82.ChaosEventsSegment, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetChaosEvents",
		method: http.MethodGet,
		path:   "/Tools/Chaos/Events",
		queryParameters: map[string]interface{}{
			"ContinuationToken": continuationToken,
			"StartTimeUtc":      startTimeUtc,
			"EndTimeUtc":        endTimeUtc,
		},
		apiVersion: chaosAPIVersion,
		timeout:    timeout,
		maxResults: maxResults,
	}, &result)
	return
}

// GetChaosSchedule gets the version of the Chaos schedule in use and the
// schedule itself.
func (client BaseClient) GetChaosSchedule(ctx context.Context, timeout *int64) (result v82.ChaosScheduleDescription, err error) {
	_, err = client.do(ctx, &operation{
		name:       "GetChaosSchedule",
		method:     http.MethodGet,
		path:       "/Tools/Chaos/Schedule",
		apiVersion: chaosAPIVersion,
		timeout:    timeout,
	}, &result)
	return
}

// PostChaosSchedule sets the schedule used by Chaos. The version in
// chaosSchedule must match the version of the schedule on the server.
func (client BaseClient) PostChaosSchedule(ctx context.Context, chaosSchedule v82.ChaosScheduleDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:       "PostChaosSchedule",
		method:     http.MethodPost,
		path:       "/Tools/Chaos/Schedule",
		apiVersion: chaosAPIVersion,
		timeout:    timeout,
		body:       chaosSchedule,
	}, nil)
	return err
}
