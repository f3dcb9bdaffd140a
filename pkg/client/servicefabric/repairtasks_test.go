package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/go-autorest/autorest/to"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func TestRepairTaskOperations(t *testing.T) {
	ctx := context.Background()

	cancel := v82.NewRepairTaskCancelDescription("Azure/PlatformUpdate/1")
	cancel.Version = to.StringPtr("3")
	cancel.RequestAbort = to.BoolPtr(true)

	testOperations(t, []operationTest{
		{
			name: "cancel repair task",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/$/CancelRepairTask?api-version=6.0&timeout=60",
				wantBody:   `{"TaskId":"Azure/PlatformUpdate/1","Version":"3","RequestAbort":true}`,
				status:     http.StatusOK,
				body:       `{"Version":"4"}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.CancelRepairTask(ctx, *cancel)
			},
			want: v82.RepairTaskUpdateInfo{Version: "4"},
		},
		{
			name: "force approve repair task",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/$/ForceApproveRepairTask?api-version=6.0&timeout=60",
				wantBody:   `{"TaskId":"Azure/PlatformUpdate/1"}`,
				status:     http.StatusOK,
				body:       `{"Version":"5"}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.ForceApproveRepairTask(ctx, *v82.NewRepairTaskApproveDescription("Azure/PlatformUpdate/1"))
			},
			want: v82.RepairTaskUpdateInfo{Version: "5"},
		},
		{
			name: "delete repair task",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/$/DeleteRepairTask?api-version=6.0&timeout=60",
				wantBody:   `{"TaskId":"Azure/PlatformUpdate/1"}`,
				status:     http.StatusOK,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.DeleteRepairTask(ctx, *v82.NewRepairTaskDeleteDescription("Azure/PlatformUpdate/1"))
			},
		},
		{
			name: "delete repair task with stale version",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/$/DeleteRepairTask?api-version=6.0&timeout=60",
				wantBody:   `{"TaskId":"Azure/PlatformUpdate/1"}`,
				status:     http.StatusConflict,
				body:       `{"Error":{"Code":"FABRIC_E_SEQUENCE_NUMBER_CHECK_FAILED"}}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.DeleteRepairTask(ctx, *v82.NewRepairTaskDeleteDescription("Azure/PlatformUpdate/1"))
			},
			wantErr: "servicefabric.BaseClient#DeleteRepairTask: Failure responding to request: StatusCode=409",
		},
		{
			name: "list repair tasks with filters",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/$/GetRepairTaskList?ExecutorFilter=exec&StateFilter=2&TaskIdFilter=Azure&api-version=6.0&timeout=60",
				status:     http.StatusOK,
				body:       `[{"TaskId":"Azure/PlatformUpdate/1","State":"Claimed","Action":"System.Reboot"},{"TaskId":"Azure/PlatformUpdate/2","State":"Claimed","Action":"System.Reboot"}]`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				tasks, err := c.GetRepairTaskList(ctx, "Azure", to.Int32Ptr(2), "exec")
				var ids []string
				for _, task := range tasks {
					ids = append(ids, task.TaskID)
				}
				return ids, err
			},
			want: []string{"Azure/PlatformUpdate/1", "Azure/PlatformUpdate/2"},
		},
		{
			name: "list repair tasks without filters",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/$/GetRepairTaskList?api-version=6.0&timeout=60",
				status:     http.StatusOK,
				body:       `[]`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				tasks, err := c.GetRepairTaskList(ctx, "", nil, "")
				return len(tasks), err
			},
			want: 0,
		},
	})
}
