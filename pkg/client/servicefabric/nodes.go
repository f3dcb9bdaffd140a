package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// GetNodeInfoList gets one page of the nodes in the cluster.
// nodeStatusFilter is one of default, all, up, down, enabling, disabling,
// disabled, unknown or removed.
func (client BaseClient) GetNodeInfoList(ctx context.Context, continuationToken string, nodeStatusFilter string, maxResults *int64, timeout *int64) (result v82.PagedNodeInfoList, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetNodeInfoList",
		method: http.MethodGet,
		path:   "/Nodes",
		queryParameters: map[string]interface{}{
			"ContinuationToken": continuationToken,
			"NodeStatusFilter":  nodeStatusFilter,
		},
		apiVersion: "6.3",
		timeout:    timeout,
		maxResults: maxResults,
	}, &result)
	return
}

// GetNodeInfo gets the information about a specific node. A node that does
// not exist yields a zero NodeInfo and no error.
func (client BaseClient) GetNodeInfo(ctx context.Context, nodeName string, timeout *int64) (result v82.NodeInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetNodeInfo",
		method:         http.MethodGet,
		path:           "/Nodes/{nodeName}",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		apiVersion:     "6.0",
		timeout:        timeout,
		statusCodes:    []int{http.StatusOK, http.StatusNoContent},
	}, &result)
	return
}

// GetNodeHealth gets the health of a Service Fabric node.
func (client BaseClient) GetNodeHealth(ctx context.Context, nodeName string, eventsHealthStateFilter *int32, timeout *int64) (result v82.NodeHealth, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetNodeHealth",
		method:         http.MethodGet,
		path:           "/Nodes/{nodeName}/$/GetHealth",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		queryParameters: map[string]interface{}{
			"EventsHealthStateFilter": eventsHealthStateFilter,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// ReportNodeHealth sends a health report on the Service Fabric node.
func (client BaseClient) ReportNodeHealth(ctx context.Context, nodeName string, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error {
	return client.reportHealth(ctx, "ReportNodeHealth", "/Nodes/{nodeName}/$/ReportHealth", map[string]interface{}{"nodeName": nodeName}, nil, healthInformation, immediate, timeout)
}

// GetNodeLoadInfo gets the load information of a Service Fabric node.
func (client BaseClient) GetNodeLoadInfo(ctx context.Context, nodeName string, timeout *int64) (result v82.NodeLoadInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetNodeLoadInfo",
		method:         http.MethodGet,
		path:           "/Nodes/{nodeName}/$/GetLoadInformation",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, &result)
	return
}

// DisableNode deactivates a Service Fabric cluster node with the specified
// deactivation intent.
func (client BaseClient) DisableNode(ctx context.Context, nodeName string, deactivationIntentDescription v82.DeactivationIntentDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "DisableNode",
		method:         http.MethodPost,
		path:           "/Nodes/{nodeName}/$/Deactivate",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		apiVersion:     "6.0",
		timeout:        timeout,
		body:           deactivationIntentDescription,
	}, nil)
	return err
}

// EnableNode activates a Service Fabric cluster node that is currently
// deactivated.
func (client BaseClient) EnableNode(ctx context.Context, nodeName string, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "EnableNode",
		method:         http.MethodPost,
		path:           "/Nodes/{nodeName}/$/Activate",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, nil)
	return err
}

// RestartNode restarts a Service Fabric cluster node.
func (client BaseClient) RestartNode(ctx context.Context, nodeName string, restartNodeDescription v82.RestartNodeDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "RestartNode",
		method:         http.MethodPost,
		path:           "/Nodes/{nodeName}/$/Restart",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		apiVersion:     "6.0",
		timeout:        timeout,
		body:           restartNodeDescription,
	}, nil)
	return err
}

// RemoveNodeState notifies Service Fabric that the persisted state on a
// node has been permanently removed or lost.
func (client BaseClient) RemoveNodeState(ctx context.Context, nodeName string, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "RemoveNodeState",
		method:         http.MethodPost,
		path:           "/Nodes/{nodeName}/$/RemoveNodeState",
		pathParameters: map[string]interface{}{"nodeName": nodeName},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, nil)
	return err
}

// GetDeployedApplicationInfo gets the information about an application
// deployed on a Service Fabric node.
func (client BaseClient) GetDeployedApplicationInfo(ctx context.Context, nodeName string, applicationID string, timeout *int64) (result v82.DeployedApplicationInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetDeployedApplicationInfo",
		method: http.MethodGet,
		path:   "/Nodes/{nodeName}/$/GetApplications/{applicationId}",
		pathParameters: map[string]interface{}{
			"nodeName":      nodeName,
			"applicationId": applicationID,
		},
		apiVersion:  "6.1",
		timeout:     timeout,
		statusCodes: []int{http.StatusOK, http.StatusNoContent},
	}, &result)
	return
}
