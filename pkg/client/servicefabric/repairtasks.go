package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func (client BaseClient) repairTaskAction(ctx context.Context, name string, body interface{}, result interface{}) error {
	_, err := client.do(ctx, &operation{
		name:       name,
		method:     http.MethodPost,
		path:       "/$/" + name,
		apiVersion: "6.0",
		body:       body,
	}, result)
	return err
}

// CreateRepairTask creates a new repair task.
func (client BaseClient) CreateRepairTask(ctx context.Context, repairTask v82.RepairTask) (result v82.RepairTaskUpdateInfo, err error) {
	err = client.repairTaskAction(ctx, "CreateRepairTask", repairTask, &result)
	return
}

// CancelRepairTask requests the cancellation of the given repair task.
func (client BaseClient) CancelRepairTask(ctx context.Context, repairTaskCancelDescription v82.RepairTaskCancelDescription) (result v82.RepairTaskUpdateInfo, err error) {
	err = client.repairTaskAction(ctx, "CancelRepairTask", repairTaskCancelDescription, &result)
	return
}

// DeleteRepairTask deletes a completed repair task.
func (client BaseClient) DeleteRepairTask(ctx context.Context, repairTaskDeleteDescription v82.RepairTaskDeleteDescription) error {
	return client.repairTaskAction(ctx, "DeleteRepairTask", repairTaskDeleteDescription, nil)
}

// ForceApproveRepairTask forces the approval of the given repair task.
func (client BaseClient) ForceApproveRepairTask(ctx context.Context, repairTaskApproveDescription v82.RepairTaskApproveDescription) (result v82.RepairTaskUpdateInfo, err error) {
	err = client.repairTaskAction(ctx, "ForceApproveRepairTask", repairTaskApproveDescription, &result)
	return
}

// UpdateRepairTaskHealthPolicy updates the health policy of the given
// repair task.
func (client BaseClient) UpdateRepairTaskHealthPolicy(ctx context.Context, repairTaskUpdateHealthPolicyDescription v82.RepairTaskUpdateHealthPolicyDescription) (result v82.RepairTaskUpdateInfo, err error) {
	err = client.repairTaskAction(ctx, "UpdateRepairTaskHealthPolicy", repairTaskUpdateHealthPolicyDescription, &result)
	return
}

// UpdateRepairExecutionState updates the execution state of a repair task.
func (client BaseClient) UpdateRepairExecutionState(ctx context.Context, repairTask v82.RepairTask) (result v82.RepairTaskUpdateInfo, err error) {
	err = client.repairTaskAction(ctx, "UpdateRepairExecutionState", repairTask, &result)
	return
}

// GetRepairTaskList gets the repair tasks matching the filters.
// stateFilter is a bitwise combination of repair task states; executorFilter
// is the name of the repair executor.
func (client BaseClient) GetRepairTaskList(ctx context.Context, taskIDFilter string, stateFilter *int32, executorFilter string) (result []v82.RepairTask, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetRepairTaskList",
		method: http.MethodGet,
		path:   "/$/GetRepairTaskList",
		queryParameters: map[string]interface{}{
			"TaskIdFilter":   taskIDFilter,
			"StateFilter":    stateFilter,
			"ExecutorFilter": executorFilter,
		},
		apiVersion: "6.0",
	}, &result)
	return
}
