package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func codePackageParameters(nodeName, applicationID string) map[string]interface{} {
	return map[string]interface{}{
		"nodeName":      nodeName,
		"applicationId": applicationID,
	}
}

// GetContainerLogsDeployedOnNode gets the container logs for a container
// deployed on a Service Fabric node. tail is the number of lines to show
// from the end of the logs; previous returns the logs of the exited
// container of the code package instance.
func (client BaseClient) GetContainerLogsDeployedOnNode(ctx context.Context, nodeName string, applicationID string, serviceManifestName string, codePackageName string, tail string, previous *bool, timeout *int64) (result v82.ContainerLogs, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetContainerLogsDeployedOnNode",
		method:         http.MethodGet,
		path:           "/Nodes/{nodeName}/$/GetApplications/{applicationId}/$/GetCodePackages/$/ContainerLogs",
		pathParameters: codePackageParameters(nodeName, applicationID),
		queryParameters: map[string]interface{}{
			"ServiceManifestName": serviceManifestName,
			"CodePackageName":     codePackageName,
			"Tail":                tail,
			"Previous":            previous,
		},
		apiVersion: "6.2",
		timeout:    timeout,
	}, &result)
	return
}

// InvokeContainerAPI invokes the container API on a container deployed on
// a Service Fabric node for the given code package.
func (client BaseClient) InvokeContainerAPI(ctx context.Context, nodeName string, applicationID string, serviceManifestName string, codePackageName string, codePackageInstanceID string, containerAPIRequestBody v82.ContainerAPIRequestBody, timeout *int64) (result v82.ContainerAPIResponse, err error) {
	_, err = client.do(ctx, &operation{
		name:           "InvokeContainerAPI",
		method:         http.MethodPost,
		path:           "/Nodes/{nodeName}/$/GetApplications/{applicationId}/$/GetCodePackages/$/ContainerApi",
		pathParameters: codePackageParameters(nodeName, applicationID),
		queryParameters: map[string]interface{}{
			"ServiceManifestName":   serviceManifestName,
			"CodePackageName":       codePackageName,
			"CodePackageInstanceId": codePackageInstanceID,
		},
		apiVersion: "6.2",
		timeout:    timeout,
		body:       containerAPIRequestBody,
	}, &result)
	return
}
