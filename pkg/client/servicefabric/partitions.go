package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// GetPartitionInfo gets the information about a Service Fabric partition. A
// partition that does not exist yields nil and no error.
func (client BaseClient) GetPartitionInfo(ctx context.Context, partitionID string, timeout *int64) (result v82.BasicServicePartitionInfo, err error) {
	var raw json.RawMessage
	_, err = client.do(ctx, &operation{
		name:           "GetPartitionInfo",
		method:         http.MethodGet,
		path:           "/Partitions/{partitionId}",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		apiVersion:     "6.0",
		timeout:        timeout,
		statusCodes:    []int{http.StatusOK, http.StatusNoContent},
	}, &raw)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	return v82.UnmarshalServicePartitionInfo(raw)
}

// GetServiceNameInfo gets the name of the Service Fabric service for a
// partition.
func (client BaseClient) GetServiceNameInfo(ctx context.Context, partitionID string, timeout *int64) (result v82.ServiceNameInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetServiceNameInfo",
		method:         http.MethodGet,
		path:           "/Partitions/{partitionId}/$/GetServiceName",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, &result)
	return
}

// GetPartitionHealth gets the health of the specified Service Fabric
// partition.
func (client BaseClient) GetPartitionHealth(ctx context.Context, partitionID string, eventsHealthStateFilter *int32, timeout *int64) (result v82.PartitionHealth, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetPartitionHealth",
		method:         http.MethodGet,
		path:           "/Partitions/{partitionId}/$/GetHealth",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		queryParameters: map[string]interface{}{
			"EventsHealthStateFilter": eventsHealthStateFilter,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// ReportPartitionHealth sends a health report on the Service Fabric
// partition.
func (client BaseClient) ReportPartitionHealth(ctx context.Context, partitionID string, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error {
	return client.reportHealth(ctx, "ReportPartitionHealth", "/Partitions/{partitionId}/$/ReportHealth", map[string]interface{}{"partitionId": partitionID}, nil, healthInformation, immediate, timeout)
}

// GetPartitionLoadInformation gets the load information of the specified
// Service Fabric partition.
func (client BaseClient) GetPartitionLoadInformation(ctx context.Context, partitionID string, timeout *int64) (result v82.PartitionLoadInformation, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetPartitionLoadInformation",
		method:         http.MethodGet,
		path:           "/Partitions/{partitionId}/$/GetLoadInformation",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, &result)
	return
}

// RecoverPartition indicates to the Service Fabric cluster that it should
// attempt to recover a specific partition that is currently stuck in
// quorum loss.
func (client BaseClient) RecoverPartition(ctx context.Context, partitionID string, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "RecoverPartition",
		method:         http.MethodPost,
		path:           "/Partitions/{partitionId}/$/Recover",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, nil)
	return err
}

// RecoverAllPartitions indicates to the Service Fabric cluster that it
// should attempt to recover any services, including system services, which
// are currently stuck in quorum loss.
func (client BaseClient) RecoverAllPartitions(ctx context.Context, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:       "RecoverAllPartitions",
		method:     http.MethodPost,
		path:       "/$/RecoverAllPartitions",
		apiVersion: "6.0",
		timeout:    timeout,
	}, nil)
	return err
}

// GetReplicaInfoList gets one page of the replicas of a Service Fabric
// service partition.
func (client BaseClient) GetReplicaInfoList(ctx context.Context, partitionID string, continuationToken string, timeout *int64) (result v82.PagedReplicaInfoList, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetReplicaInfoList",
		method:         http.MethodGet,
		path:           "/Partitions/{partitionId}/$/GetReplicas",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		queryParameters: map[string]interface{}{
			"ContinuationToken": continuationToken,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// GetReplicaInfo gets the information about a replica of a Service Fabric
// partition. A replica that does not exist yields nil and no error.
func (client BaseClient) GetReplicaInfo(ctx context.Context, partitionID string, replicaID string, timeout *int64) (result v82.BasicReplicaInfo, err error) {
	var raw json.RawMessage
	_, err = client.do(ctx, &operation{
		name:   "GetReplicaInfo",
		method: http.MethodGet,
		path:   "/Partitions/{partitionId}/$/GetReplicas/{replicaId}",
		pathParameters: map[string]interface{}{
			"partitionId": partitionID,
			"replicaId":   replicaID,
		},
		apiVersion:  "6.0",
		timeout:     timeout,
		statusCodes: []int{http.StatusOK, http.StatusNoContent},
	}, &raw)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	return v82.UnmarshalReplicaInfo(raw)
}

// GetReplicaHealth gets the health of a Service Fabric stateful service
// replica or stateless service instance.
func (client BaseClient) GetReplicaHealth(ctx context.Context, partitionID string, replicaID string, eventsHealthStateFilter *int32, timeout *int64) (result v82.BasicReplicaHealth, err error) {
	var raw json.RawMessage
	_, err = client.do(ctx, &operation{
		name:   "GetReplicaHealth",
		method: http.MethodGet,
		path:   "/Partitions/{partitionId}/$/GetReplicas/{replicaId}/$/GetHealth",
		pathParameters: map[string]interface{}{
			"partitionId": partitionID,
			"replicaId":   replicaID,
		},
		queryParameters: map[string]interface{}{
			"EventsHealthStateFilter": eventsHealthStateFilter,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &raw)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	return v82.UnmarshalReplicaHealth(raw)
}

// ReportReplicaHealth sends a health report on the Service Fabric replica.
func (client BaseClient) ReportReplicaHealth(ctx context.Context, partitionID string, replicaID string, serviceKind v82.ReplicaHealthReportServiceKind, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error {
	return client.reportHealth(ctx, "ReportReplicaHealth", "/Partitions/{partitionId}/$/GetReplicas/{replicaId}/$/ReportHealth",
		map[string]interface{}{
			"partitionId": partitionID,
			"replicaId":   replicaID,
		},
		map[string]interface{}{
			"ServiceKind": serviceKind,
		},
		healthInformation, immediate, timeout)
}

// RestartReplica restarts a service replica of a persisted service running
// on a node.
func (client BaseClient) RestartReplica(ctx context.Context, nodeName string, partitionID string, replicaID string, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:   "RestartReplica",
		method: http.MethodPost,
		path:   "/Nodes/{nodeName}/$/GetPartitions/{partitionId}/$/GetReplicas/{replicaId}/$/Restart",
		pathParameters: map[string]interface{}{
			"nodeName":    nodeName,
			"partitionId": partitionID,
			"replicaId":   replicaID,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, nil)
	return err
}

// RemoveReplica removes a service replica running on a node.
func (client BaseClient) RemoveReplica(ctx context.Context, nodeName string, partitionID string, replicaID string, forceRemove *bool, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:   "RemoveReplica",
		method: http.MethodPost,
		path:   "/Nodes/{nodeName}/$/GetPartitions/{partitionId}/$/GetReplicas/{replicaId}/$/Delete",
		pathParameters: map[string]interface{}{
			"nodeName":    nodeName,
			"partitionId": partitionID,
			"replicaId":   replicaID,
		},
		queryParameters: map[string]interface{}{
			"ForceRemove": forceRemove,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, nil)
	return err
}
