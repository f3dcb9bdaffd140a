package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// GetClusterManifest gets the Service Fabric cluster manifest.
func (client BaseClient) GetClusterManifest(ctx context.Context, timeout *int64) (result v82.ClusterManifest, err error) {
	_, err = client.do(ctx, &operation{
		name:       "GetClusterManifest",
		method:     http.MethodGet,
		path:       "/$/GetClusterManifest",
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// GetClusterHealth gets the health of a Service Fabric cluster.
// eventsHealthStateFilter is a bitwise combination of HealthStateFilter
// values restricting the returned health events.
func (client BaseClient) GetClusterHealth(ctx context.Context, eventsHealthStateFilter *int32, timeout *int64) (result v82.ClusterHealth, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetClusterHealth",
		method: http.MethodGet,
		path:   "/$/GetClusterHealth",
		queryParameters: map[string]interface{}{
			"EventsHealthStateFilter": eventsHealthStateFilter,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// GetClusterHealthUsingPolicy gets the health of a Service Fabric cluster
// evaluated with the given policies instead of the cluster manifest's.
func (client BaseClient) GetClusterHealthUsingPolicy(ctx context.Context, policies v82.ClusterHealthPolicies, timeout *int64) (result v82.ClusterHealth, err error) {
	_, err = client.do(ctx, &operation{
		name:       "GetClusterHealthUsingPolicy",
		method:     http.MethodPost,
		path:       "/$/GetClusterHealth",
		apiVersion: "6.0",
		timeout:    timeout,
		body:       policies,
	}, &result)
	return
}

// ReportClusterHealth sends a health report on the Service Fabric cluster.
func (client BaseClient) ReportClusterHealth(ctx context.Context, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error {
	return client.reportHealth(ctx, "ReportClusterHealth", "/$/ReportClusterHealth", nil, nil, healthInformation, immediate, timeout)
}

// GetClusterVersion gets the current cluster version.
func (client BaseClient) GetClusterVersion(ctx context.Context, timeout *int64) (result v82.ClusterVersion, err error) {
	_, err = client.do(ctx, &operation{
		name:       "GetClusterVersion",
		method:     http.MethodGet,
		path:       "/$/GetClusterVersion",
		apiVersion: "6.4",
		timeout:    timeout,
	}, &result)
	return
}

// GetClusterConfiguration gets the Service Fabric standalone cluster
// configuration.
func (client BaseClient) GetClusterConfiguration(ctx context.Context, configurationAPIVersion string, timeout *int64) (result v82.ClusterConfiguration, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetClusterConfiguration",
		method: http.MethodGet,
		path:   "/$/GetClusterConfiguration",
		queryParameters: map[string]interface{}{
			"ConfigurationApiVersion": configurationAPIVersion,
		},
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// GetClusterUpgradeProgress gets the progress of the current cluster
// upgrade.
func (client BaseClient) GetClusterUpgradeProgress(ctx context.Context, timeout *int64) (result v82.ClusterUpgradeProgressObject, err error) {
	_, err = client.do(ctx, &operation{
		name:       "GetClusterUpgradeProgress",
		method:     http.MethodGet,
		path:       "/$/GetUpgradeProgress",
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// StartClusterUpgrade validates the supplied upgrade parameters and starts
// upgrading the code or configuration version of the cluster.
func (client BaseClient) StartClusterUpgrade(ctx context.Context, startClusterUpgradeDescription v82.StartClusterUpgradeDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:        "StartClusterUpgrade",
		method:      http.MethodPost,
		path:        "/$/Upgrade",
		apiVersion:  "6.0",
		timeout:     timeout,
		body:        startClusterUpgradeDescription,
		statusCodes: []int{http.StatusOK, http.StatusAccepted},
	}, nil)
	return err
}

// ResumeClusterUpgrade makes the cluster upgrade move on to the next upgrade
// domain.
func (client BaseClient) ResumeClusterUpgrade(ctx context.Context, resumeClusterUpgradeDescription v82.ResumeClusterUpgradeDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:       "ResumeClusterUpgrade",
		method:     http.MethodPost,
		path:       "/$/MoveToNextUpgradeDomain",
		apiVersion: "6.0",
		timeout:    timeout,
		body:       resumeClusterUpgradeDescription,
	}, nil)
	return err
}

// RollbackClusterUpgrade rolls back the upgrade of a Service Fabric cluster.
func (client BaseClient) RollbackClusterUpgrade(ctx context.Context, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:        "RollbackClusterUpgrade",
		method:      http.MethodPost,
		path:        "/$/RollbackUpgrade",
		apiVersion:  "6.0",
		timeout:     timeout,
		statusCodes: []int{http.StatusAccepted},
	}, nil)
	return err
}

// ProvisionCluster validates and provisions the code or configuration
// packages of a Service Fabric cluster.
func (client BaseClient) ProvisionCluster(ctx context.Context, provisionFabricDescription v82.ProvisionFabricDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:       "ProvisionCluster",
		method:     http.MethodPost,
		path:       "/$/Provision",
		apiVersion: "6.0",
		timeout:    timeout,
		body:       provisionFabricDescription,
	}, nil)
	return err
}

// UnprovisionCluster unprovisions the code or configuration packages of a
// Service Fabric cluster.
func (client BaseClient) UnprovisionCluster(ctx context.Context, unprovisionFabricDescription v82.UnprovisionFabricDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:       "UnprovisionCluster",
		method:     http.MethodPost,
		path:       "/$/Unprovision",
		apiVersion: "6.0",
		timeout:    timeout,
		body:       unprovisionFabricDescription,
	}, nil)
	return err
}

// GetClusterLoad gets the load of a Service Fabric cluster.
func (client BaseClient) GetClusterLoad(ctx context.Context, timeout *int64) (result v82.ClusterLoadInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:       "GetClusterLoad",
		method:     http.MethodGet,
		path:       "/$/GetLoadInformation",
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// reportHealth posts healthInformation to the ReportHealth endpoint at path.
func (client BaseClient) reportHealth(ctx context.Context, name, path string, pathParameters, queryParameters map[string]interface{}, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error {
	q := map[string]interface{}{
		"Immediate": immediate,
	}
	for k, v := range queryParameters {
		q[k] = v
	}

	_, err := client.do(ctx, &operation{
		name:            name,
		method:          http.MethodPost,
		path:            path,
		pathParameters:  pathParameters,
		queryParameters: q,
		apiVersion:      "6.0",
		timeout:         timeout,
		body:            healthInformation,
	}, nil)
	return err
}
