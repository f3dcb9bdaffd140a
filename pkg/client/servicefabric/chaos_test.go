package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/go-autorest/autorest/to"

	"github.com/Azure/azure-servicefabric-go/pkg/api/util/pointerutils"
	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/util/cmp"
)

func TestChaosOperations(t *testing.T) {
	ctx := context.Background()

	testOperations(t, []operationTest{
		{
			name: "get chaos",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Tools/Chaos?api-version=6.2&timeout=60",
				status:     http.StatusOK,
				body:       `{"Status":"Running","ScheduleStatus":"Active"}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetChaos(ctx, nil)
			},
			want: v82.Chaos{
				Status:         pointerutils.ToPtr(v82.ChaosStatusRunning),
				ScheduleStatus: pointerutils.ToPtr(v82.ChaosScheduleStatusActive),
			},
		},
		{
			name: "start chaos",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Tools/Chaos/$/Start?api-version=6.0&timeout=60",
				wantBody:   `{"TimeToRunInSeconds":"600","MaxConcurrentFaults":2}`,
				status:     http.StatusOK,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.StartChaos(ctx, v82.ChaosParameters{
					TimeToRunInSeconds:  to.StringPtr("600"),
					MaxConcurrentFaults: to.Int64Ptr(2),
				}, nil)
			},
		},
		{
			name: "start chaos while running",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Tools/Chaos/$/Start?api-version=6.0&timeout=60",
				wantBody:   `{}`,
				status:     http.StatusBadRequest,
				body:       `{"Error":{"Code":"FABRIC_E_CHAOS_ALREADY_RUNNING","Message":"Chaos is already running"}}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.StartChaos(ctx, v82.ChaosParameters{}, nil)
			},
			wantErr: "servicefabric.BaseClient#StartChaos: Failure responding to request: StatusCode=400 -- Original Error: 400: FABRIC_E_CHAOS_ALREADY_RUNNING: Chaos is already running",
		},
		{
			name: "stop chaos",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Tools/Chaos/$/Stop?api-version=6.0&timeout=60",
				status:     http.StatusOK,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.StopChaos(ctx, nil)
			},
		},
		{
			name: "get chaos schedule",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Tools/Chaos/Schedule?api-version=6.2&timeout=60",
				status:     http.StatusOK,
				body:       `{"Version":2}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetChaosSchedule(ctx, nil)
			},
			want: v82.ChaosScheduleDescription{Version: to.Int32Ptr(2)},
		},
		{
			name: "post chaos schedule",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Tools/Chaos/Schedule?api-version=6.2&timeout=60",
				wantBody:   `{"Version":2}`,
				status:     http.StatusOK,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.PostChaosSchedule(ctx, v82.ChaosScheduleDescription{Version: to.Int32Ptr(2)}, nil)
			},
		},
	})
}

func TestListAllChaosEvents(t *testing.T) {
	// only the first request carries the time range, later pages are
	// addressed by continuation token alone
	client, fs := newTestClient(t,
		exchange{
			wantMethod: http.MethodGet,
			wantURL:    "https://localhost:19080/Tools/Chaos/Events?EndTimeUtc=200&StartTimeUtc=100&api-version=6.2&timeout=60",
			status:     http.StatusOK,
			body:       `{"ContinuationToken":"next","History":[{"ChaosEvent":{"Kind":"Started","TimeStampUtc":"2026-01-02T03:04:05Z"}}]}`,
		},
		exchange{
			wantMethod: http.MethodGet,
			wantURL:    "https://localhost:19080/Tools/Chaos/Events?ContinuationToken=next&api-version=6.2&timeout=60",
			status:     http.StatusOK,
			body:       `{"ContinuationToken":"","History":[{"ChaosEvent":{"Kind":"Stopped","TimeStampUtc":"2026-01-02T03:05:05Z","Reason":"done"}}]}`,
		},
	)

	events, err := client.ListAllChaosEvents(context.Background(), "100", "200")
	if err != nil {
		t.Fatal(err)
	}

	var kinds []v82.ChaosEventKind
	for _, e := range events {
		kinds = append(kinds, e.ChaosEvent.GetChaosEvent().Kind)
	}
	if diff := cmp.Diff([]v82.ChaosEventKind{v82.ChaosEventKindStarted, v82.ChaosEventKindStopped}, kinds); diff != "" {
		t.Error(diff)
	}

	stopped, ok := events[1].ChaosEvent.(*v82.StoppedChaosEvent)
	if !ok || stopped.Reason == nil || *stopped.Reason != "done" {
		t.Errorf("unexpected event %#v", events[1].ChaosEvent)
	}

	if len(fs.exchanges) != 0 {
		t.Error(len(fs.exchanges))
	}
}
