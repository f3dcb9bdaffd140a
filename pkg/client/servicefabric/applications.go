package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// GetApplicationTypeInfoList gets one page of the application types
// provisioned in the cluster.
func (client BaseClient) GetApplicationTypeInfoList(ctx context.Context, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedApplicationTypeInfoList, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetApplicationTypeInfoList",
		method: http.MethodGet,
		path:   "/ApplicationTypes",
		queryParameters: map[string]interface{}{
			"ContinuationToken": continuationToken,
		},
		apiVersion: "6.0",
		timeout:    timeout,
		maxResults: maxResults,
	}, &result)
	return
}

// GetApplicationTypeInfoListByName gets one page of the versions of the
// application type called applicationTypeName.
func (client BaseClient) GetApplicationTypeInfoListByName(ctx context.Context, applicationTypeName string, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedApplicationTypeInfoList, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetApplicationTypeInfoListByName",
		method:         http.MethodGet,
		path:           "/ApplicationTypes/{applicationTypeName}",
		pathParameters: map[string]interface{}{"applicationTypeName": applicationTypeName},
		queryParameters: map[string]interface{}{
			"ContinuationToken": continuationToken,
		},
		apiVersion: "6.0",
		timeout:    timeout,
		maxResults: maxResults,
	}, &result)
	return
}

// ProvisionApplicationType provisions an application type from the image
// store or an external store.
func (client BaseClient) ProvisionApplicationType(ctx context.Context, provisionApplicationTypeDescription v82.BasicProvisionApplicationTypeDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:        "ProvisionApplicationType",
		method:      http.MethodPost,
		path:        "/ApplicationTypes/$/Provision",
		apiVersion:  "6.2",
		timeout:     timeout,
		body:        provisionApplicationTypeDescription,
		statusCodes: []int{http.StatusOK, http.StatusAccepted},
	}, nil)
	return err
}

// UnprovisionApplicationType removes an application type version from the
// cluster.
func (client BaseClient) UnprovisionApplicationType(ctx context.Context, applicationTypeName string, unprovisionApplicationTypeDescriptionInfo v82.UnprovisionApplicationTypeDescriptionInfo, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "UnprovisionApplicationType",
		method:         http.MethodPost,
		path:           "/ApplicationTypes/{applicationTypeName}/$/Unprovision",
		pathParameters: map[string]interface{}{"applicationTypeName": applicationTypeName},
		apiVersion:     "6.0",
		timeout:        timeout,
		body:           unprovisionApplicationTypeDescriptionInfo,
		statusCodes:    []int{http.StatusOK, http.StatusAccepted},
	}, nil)
	return err
}

// CreateApplication creates a Service Fabric application.
func (client BaseClient) CreateApplication(ctx context.Context, applicationDescription v82.ApplicationDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:        "CreateApplication",
		method:      http.MethodPost,
		path:        "/Applications/$/Create",
		apiVersion:  "6.0",
		timeout:     timeout,
		body:        applicationDescription,
		statusCodes: []int{http.StatusCreated},
	}, nil)
	return err
}

// DeleteApplication deletes an existing Service Fabric application.
// applicationID is the application name without the "fabric:" scheme,
// with "/" replaced by "~".
func (client BaseClient) DeleteApplication(ctx context.Context, applicationID string, forceRemove *bool, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "DeleteApplication",
		method:         http.MethodPost,
		path:           "/Applications/{applicationId}/$/Delete",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		queryParameters: map[string]interface{}{
			"ForceRemove": forceRemove,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, nil)
	return err
}

// GetApplicationInfoList gets one page of the applications in the cluster,
// optionally restricted to applicationTypeName.
func (client BaseClient) GetApplicationInfoList(ctx context.Context, applicationTypeName string, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedApplicationInfoList, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetApplicationInfoList",
		method: http.MethodGet,
		path:   "/Applications",
		queryParameters: map[string]interface{}{
			"ApplicationTypeName": applicationTypeName,
			"ContinuationToken":   continuationToken,
		},
		apiVersion: "6.1",
		timeout:    timeout,
		maxResults: maxResults,
	}, &result)
	return
}

// GetApplicationInfo gets information about a Service Fabric application.
func (client BaseClient) GetApplicationInfo(ctx context.Context, applicationID string, timeout *int64) (result v82.ApplicationInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetApplicationInfo",
		method:         http.MethodGet,
		path:           "/Applications/{applicationId}",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		apiVersion:     "6.0",
		timeout:        timeout,
		statusCodes:    []int{http.StatusOK, http.StatusNoContent},
	}, &result)
	return
}

// GetApplicationHealth gets the health of the Service Fabric application.
func (client BaseClient) GetApplicationHealth(ctx context.Context, applicationID string, eventsHealthStateFilter *int32, timeout *int64) (result v82.ApplicationHealth, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetApplicationHealth",
		method:         http.MethodGet,
		path:           "/Applications/{applicationId}/$/GetHealth",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		queryParameters: map[string]interface{}{
			"EventsHealthStateFilter": eventsHealthStateFilter,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// ReportApplicationHealth sends a health report on the Service Fabric
// application.
func (client BaseClient) ReportApplicationHealth(ctx context.Context, applicationID string, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error {
	return client.reportHealth(ctx, "ReportApplicationHealth", "/Applications/{applicationId}/$/ReportHealth", map[string]interface{}{"applicationId": applicationID}, nil, healthInformation, immediate, timeout)
}

// GetApplicationLoadInfo gets load information about a Service Fabric
// application.
func (client BaseClient) GetApplicationLoadInfo(ctx context.Context, applicationID string, timeout *int64) (result v82.ApplicationLoadInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetApplicationLoadInfo",
		method:         http.MethodGet,
		path:           "/Applications/{applicationId}/$/GetLoadInformation",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		apiVersion:     "6.0",
		timeout:        timeout,
		statusCodes:    []int{http.StatusOK, http.StatusNoContent},
	}, &result)
	return
}

// StartApplicationUpgrade validates the supplied application upgrade
// parameters and starts upgrading the application.
func (client BaseClient) StartApplicationUpgrade(ctx context.Context, applicationID string, applicationUpgradeDescription v82.ApplicationUpgradeDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "StartApplicationUpgrade",
		method:         http.MethodPost,
		path:           "/Applications/{applicationId}/$/Upgrade",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		apiVersion:     "6.0",
		timeout:        timeout,
		body:           applicationUpgradeDescription,
	}, nil)
	return err
}

// GetApplicationUpgrade gets details for the latest upgrade performed on
// this application.
func (client BaseClient) GetApplicationUpgrade(ctx context.Context, applicationID string, timeout *int64) (result v82.ApplicationUpgradeProgressInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetApplicationUpgrade",
		method:         http.MethodGet,
		path:           "/Applications/{applicationId}/$/GetUpgradeProgress",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, &result)
	return
}

// UpdateApplicationUpgrade updates the parameters of an ongoing application
// upgrade.
func (client BaseClient) UpdateApplicationUpgrade(ctx context.Context, applicationID string, applicationUpgradeUpdateDescription v82.ApplicationUpgradeUpdateDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "UpdateApplicationUpgrade",
		method:         http.MethodPost,
		path:           "/Applications/{applicationId}/$/UpdateUpgrade",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		apiVersion:     "6.0",
		timeout:        timeout,
		body:           applicationUpgradeUpdateDescription,
	}, nil)
	return err
}

// ResumeApplicationUpgrade resumes an unmonitored manual application
// upgrade in the given upgrade domain.
func (client BaseClient) ResumeApplicationUpgrade(ctx context.Context, applicationID string, resumeApplicationUpgradeDescription v82.ResumeApplicationUpgradeDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "ResumeApplicationUpgrade",
		method:         http.MethodPost,
		path:           "/Applications/{applicationId}/$/MoveToNextUpgradeDomain",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		apiVersion:     "6.0",
		timeout:        timeout,
		body:           resumeApplicationUpgradeDescription,
	}, nil)
	return err
}

// RollbackApplicationUpgrade starts rolling back the current application
// upgrade to the previous version.
func (client BaseClient) RollbackApplicationUpgrade(ctx context.Context, applicationID string, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "RollbackApplicationUpgrade",
		method:         http.MethodPost,
		path:           "/Applications/{applicationId}/$/RollbackUpgrade",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		apiVersion:     "6.0",
		timeout:        timeout,
	}, nil)
	return err
}

// GetServiceInfoList gets one page of the services of the application,
// optionally restricted to serviceTypeName.
func (client BaseClient) GetServiceInfoList(ctx context.Context, applicationID string, serviceTypeName string, continuationToken string, timeout *int64) (result v82.PagedServiceInfoList, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetServiceInfoList",
		method:         http.MethodGet,
		path:           "/Applications/{applicationId}/$/GetServices",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		queryParameters: map[string]interface{}{
			"ServiceTypeName":   serviceTypeName,
			"ContinuationToken": continuationToken,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// GetServiceInfo gets information about the specified service of the
// application. A service that does not exist yields nil and no error.
func (client BaseClient) GetServiceInfo(ctx context.Context, applicationID string, serviceID string, timeout *int64) (result v82.BasicServiceInfo, err error) {
	var raw json.RawMessage
	_, err = client.do(ctx, &operation{
		name:   "GetServiceInfo",
		method: http.MethodGet,
		path:   "/Applications/{applicationId}/$/GetServices/{serviceId}",
		pathParameters: map[string]interface{}{
			"applicationId": applicationID,
			"serviceId":     serviceID,
		},
		apiVersion:  "6.0",
		timeout:     timeout,
		statusCodes: []int{http.StatusOK, http.StatusNoContent},
	}, &raw)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	return v82.UnmarshalServiceInfo(raw)
}

// CreateService creates the specified Service Fabric service.
func (client BaseClient) CreateService(ctx context.Context, applicationID string, serviceDescription v82.BasicServiceDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "CreateService",
		method:         http.MethodPost,
		path:           "/Applications/{applicationId}/$/GetServices/$/Create",
		pathParameters: map[string]interface{}{"applicationId": applicationID},
		apiVersion:     "6.0",
		timeout:        timeout,
		body:           serviceDescription,
		statusCodes:    []int{http.StatusAccepted},
	}, nil)
	return err
}
