package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func faultPartitionParameters(serviceID, partitionID string) map[string]interface{} {
	return map[string]interface{}{
		"serviceId":   serviceID,
		"partitionId": partitionID,
	}
}

// StartDataLoss induces data loss for the specified partition. Progress is
// tracked with GetDataLossProgress using the same operationID.
func (client BaseClient) StartDataLoss(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, dataLossMode v82.DataLossMode, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "StartDataLoss",
		method:         http.MethodPost,
		path:           "/Faults/Services/{serviceId}/$/GetPartitions/{partitionId}/$/StartDataLoss",
		pathParameters: faultPartitionParameters(serviceID, partitionID),
		queryParameters: map[string]interface{}{
			"OperationId":  operationID,
			"DataLossMode": dataLossMode,
		},
		apiVersion:  "6.0",
		timeout:     timeout,
		statusCodes: []int{http.StatusAccepted},
	}, nil)
	return err
}

// GetDataLossProgress gets the progress of a partition data loss operation
// started using StartDataLoss.
func (client BaseClient) GetDataLossProgress(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, timeout *int64) (result v82.PartitionDataLossProgress, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetDataLossProgress",
		method:         http.MethodGet,
		path:           "/Faults/Services/{serviceId}/$/GetPartitions/{partitionId}/$/GetDataLossProgress",
		pathParameters: faultPartitionParameters(serviceID, partitionID),
		queryParameters: map[string]interface{}{
			"OperationId": operationID,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// StartQuorumLoss induces quorum loss for the specified partition for
// quorumLossDuration seconds.
func (client BaseClient) StartQuorumLoss(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, quorumLossMode v82.QuorumLossMode, quorumLossDuration int32, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "StartQuorumLoss",
		method:         http.MethodPost,
		path:           "/Faults/Services/{serviceId}/$/GetPartitions/{partitionId}/$/StartQuorumLoss",
		pathParameters: faultPartitionParameters(serviceID, partitionID),
		queryParameters: map[string]interface{}{
			"OperationId":        operationID,
			"QuorumLossMode":     quorumLossMode,
			"QuorumLossDuration": quorumLossDuration,
		},
		apiVersion:  "6.0",
		timeout:     timeout,
		statusCodes: []int{http.StatusAccepted},
	}, nil)
	return err
}

// GetQuorumLossProgress gets the progress of a quorum loss operation on a
// partition started using StartQuorumLoss.
func (client BaseClient) GetQuorumLossProgress(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, timeout *int64) (result v82.PartitionQuorumLossProgress, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetQuorumLossProgress",
		method:         http.MethodGet,
		path:           "/Faults/Services/{serviceId}/$/GetPartitions/{partitionId}/$/GetQuorumLossProgress",
		pathParameters: faultPartitionParameters(serviceID, partitionID),
		queryParameters: map[string]interface{}{
			"OperationId": operationID,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// StartPartitionRestart restarts some or all replicas or instances of the
// specified partition.
func (client BaseClient) StartPartitionRestart(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, restartPartitionMode v82.RestartPartitionMode, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "StartPartitionRestart",
		method:         http.MethodPost,
		path:           "/Faults/Services/{serviceId}/$/GetPartitions/{partitionId}/$/StartRestart",
		pathParameters: faultPartitionParameters(serviceID, partitionID),
		queryParameters: map[string]interface{}{
			"OperationId":          operationID,
			"RestartPartitionMode": restartPartitionMode,
		},
		apiVersion:  "6.0",
		timeout:     timeout,
		statusCodes: []int{http.StatusAccepted},
	}, nil)
	return err
}

// GetPartitionRestartProgress gets the progress of a partition restart
// started using StartPartitionRestart.
func (client BaseClient) GetPartitionRestartProgress(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, timeout *int64) (result v82.PartitionRestartProgress, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetPartitionRestartProgress",
		method:         http.MethodGet,
		path:           "/Faults/Services/{serviceId}/$/GetPartitions/{partitionId}/$/GetRestartProgress",
		pathParameters: faultPartitionParameters(serviceID, partitionID),
		queryParameters: map[string]interface{}{
			"OperationId": operationID,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// StartNodeTransition starts or stops a cluster node. stopDurationInSeconds
// is ignored when starting a node.
func (client BaseClient) StartNodeTransition(ctx context.Context, nodeName string, operationID uuid.UUID, nodeTransitionType v82.NodeTransitionType, nodeInstanceID string, stopDurationInSeconds int32, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "StartNodeTransition",
		method:         http.MethodPost,
		path:           "/Faults/Nodes/{nodeName}/$/StartTransition/",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		queryParameters: map[string]interface{}{
			"OperationId":           operationID,
			"NodeTransitionType":    nodeTransitionType,
			"NodeInstanceId":        nodeInstanceID,
			"StopDurationInSeconds": stopDurationInSeconds,
		},
		apiVersion:  "6.0",
		timeout:     timeout,
		statusCodes: []int{http.StatusAccepted},
	}, nil)
	return err
}

// GetNodeTransitionProgress gets the progress of an operation started with
// StartNodeTransition.
func (client BaseClient) GetNodeTransitionProgress(ctx context.Context, nodeName string, operationID uuid.UUID, timeout *int64) (result v82.NodeTransitionProgress, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetNodeTransitionProgress",
		method:         http.MethodGet,
		path:           "/Faults/Nodes/{nodeName}/$/GetTransitionProgress",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		queryParameters: map[string]interface{}{
			"OperationId": operationID,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// GetFaultOperationList gets the user-induced fault operations matching
// the filters. typeFilter and stateFilter are bitwise combinations of
// operation types and states; 65535 selects all.
func (client BaseClient) GetFaultOperationList(ctx context.Context, typeFilter int32, stateFilter int32, timeout *int64) (result []v82.OperationStatus, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetFaultOperationList",
		method: http.MethodGet,
		path:   "/Faults/",
		queryParameters: map[string]interface{}{
			"TypeFilter":  typeFilter,
			"StateFilter": stateFilter,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// CancelOperation cancels a user-induced fault operation. With force the
// operation is aborted without rolling back the state it changed.
func (client BaseClient) CancelOperation(ctx context.Context, operationID uuid.UUID, force bool, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:   "CancelOperation",
		method: http.MethodPost,
		path:   "/Faults/$/Cancel",
		queryParameters: map[string]interface{}{
			"OperationId": operationID,
			"Force":       force,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, nil)
	return err
}
