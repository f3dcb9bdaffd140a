package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// GetServiceDescription gets the description of an existing Service Fabric
// service.
func (client BaseClient) GetServiceDescription(ctx context.Context, serviceID string, timeout *int64) (result v82.BasicServiceDescription, err error) {
	var raw json.RawMessage
	_, err = client.do(ctx, &operation{
		name:           "GetServiceDescription",
		method:         http.MethodGet,
		path:           "/Services/{serviceId}/$/GetDescription",
		pathParameters: map[string]interface{}{"serviceId": serviceID},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, &raw)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	return v82.UnmarshalServiceDescription(raw)
}

// DeleteService deletes an existing Service Fabric service.
func (client BaseClient) DeleteService(ctx context.Context, serviceID string, forceRemove *bool, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "DeleteService",
		method:         http.MethodPost,
		path:           "/Services/{serviceId}/$/Delete",
		pathParameters: map[string]interface{}{"serviceId": serviceID},
		queryParameters: map[string]interface{}{
			"ForceRemove": forceRemove,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, nil)
	return err
}

// GetApplicationNameInfo gets the name of the application for the
// specified service.
func (client BaseClient) GetApplicationNameInfo(ctx context.Context, serviceID string, timeout *int64) (result v82.ApplicationNameInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetApplicationNameInfo",
		method:         http.MethodGet,
		path:           "/Services/{serviceId}/$/GetApplicationName",
		pathParameters: map[string]interface{}{"serviceId": serviceID},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, &result)
	return
}

// GetServiceHealth gets the health of the specified Service Fabric service.
func (client BaseClient) GetServiceHealth(ctx context.Context, serviceID string, eventsHealthStateFilter *int32, timeout *int64) (result v82.ServiceHealth, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetServiceHealth",
		method:         http.MethodGet,
		path:           "/Services/{serviceId}/$/GetHealth",
		pathParameters: map[string]interface{}{"serviceId": serviceID},
		queryParameters: map[string]interface{}{
			"EventsHealthStateFilter": eventsHealthStateFilter,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// ReportServiceHealth sends a health report on the Service Fabric service.
func (client BaseClient) ReportServiceHealth(ctx context.Context, serviceID string, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error {
	return client.reportHealth(ctx, "ReportServiceHealth", "/Services/{serviceId}/$/ReportHealth", map[string]interface{}{"serviceId": serviceID}, nil, healthInformation, immediate, timeout)
}

// GetPartitionInfoList gets one page of the partitions of a Service Fabric
// service.
func (client BaseClient) GetPartitionInfoList(ctx context.Context, serviceID string, continuationToken string, timeout *int64) (result v82.PagedServicePartitionInfoList, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetPartitionInfoList",
		method:         http.MethodGet,
		path:           "/Services/{serviceId}/$/GetPartitions",
		pathParameters: map[string]interface{}{"serviceId": serviceID},
		queryParameters: map[string]interface{}{
			"ContinuationToken": continuationToken,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}
