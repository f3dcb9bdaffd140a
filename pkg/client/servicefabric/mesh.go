package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

const meshAPIVersion = "6.4-preview"

func meshCreateOrUpdate[T any](ctx context.Context, client BaseClient, name, path string, pathParameters map[string]interface{}, description T) (result T, err error) {
	_, err = client.do(ctx, &operation{
		name:           name,
		method:         http.MethodPut,
		path:           path,
		pathParameters: pathParameters,
		apiVersion:     meshAPIVersion,
		body:           description,
		statusCodes:    []int{http.StatusOK, http.StatusCreated, http.StatusAccepted},
	}, &result)
	return
}

func meshGet[T any](ctx context.Context, client BaseClient, name, path string, pathParameters map[string]interface{}) (result T, err error) {
	_, err = client.do(ctx, &operation{
		name:           name,
		method:         http.MethodGet,
		path:           path,
		pathParameters: pathParameters,
		apiVersion:     meshAPIVersion,
	}, &result)
	return
}

func meshDelete(ctx context.Context, client BaseClient, name, path string, pathParameters map[string]interface{}) error {
	_, err := client.do(ctx, &operation{
		name:           name,
		method:         http.MethodDelete,
		path:           path,
		pathParameters: pathParameters,
		apiVersion:     meshAPIVersion,
		statusCodes:    []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent},
	}, nil)
	return err
}

// MeshApplicationCreateOrUpdate creates or updates the application
// resource called applicationResourceName.
func (client BaseClient) MeshApplicationCreateOrUpdate(ctx context.Context, applicationResourceName string, applicationResourceDescription v82.ApplicationResourceDescription) (v82.ApplicationResourceDescription, error) {
	return meshCreateOrUpdate(ctx, client, "MeshApplicationCreateOrUpdate", "/Resources/Applications/{applicationResourceName}",
		map[string]interface{}{"applicationResourceName": applicationResourceName}, applicationResourceDescription)
}

// MeshApplicationGet gets the application resource called
// applicationResourceName.
func (client BaseClient) MeshApplicationGet(ctx context.Context, applicationResourceName string) (v82.ApplicationResourceDescription, error) {
	return meshGet[v82.ApplicationResourceDescription](ctx, client, "MeshApplicationGet", "/Resources/Applications/{applicationResourceName}",
		map[string]interface{}{"applicationResourceName": applicationResourceName})
}

// MeshApplicationDelete deletes the application resource called
// applicationResourceName.
func (client BaseClient) MeshApplicationDelete(ctx context.Context, applicationResourceName string) error {
	return meshDelete(ctx, client, "MeshApplicationDelete", "/Resources/Applications/{applicationResourceName}",
		map[string]interface{}{"applicationResourceName": applicationResourceName})
}

// MeshApplicationList lists the application resources.
func (client BaseClient) MeshApplicationList(ctx context.Context) (v82.PagedApplicationResourceDescriptionList, error) {
	return meshGet[v82.PagedApplicationResourceDescriptionList](ctx, client, "MeshApplicationList", "/Resources/Applications", nil)
}

// MeshServiceGet gets the service resource called serviceResourceName of
// the given application resource.
func (client BaseClient) MeshServiceGet(ctx context.Context, applicationResourceName string, serviceResourceName string) (v82.ServiceResourceDescription, error) {
	return meshGet[v82.ServiceResourceDescription](ctx, client, "MeshServiceGet", "/Resources/Applications/{applicationResourceName}/Services/{serviceResourceName}",
		map[string]interface{}{
			"applicationResourceName": applicationResourceName,
			"serviceResourceName":     serviceResourceName,
		})
}

// MeshServiceList lists the service resources of the given application
// resource.
func (client BaseClient) MeshServiceList(ctx context.Context, applicationResourceName string) (v82.PagedServiceResourceDescriptionList, error) {
	return meshGet[v82.PagedServiceResourceDescriptionList](ctx, client, "MeshServiceList", "/Resources/Applications/{applicationResourceName}/Services",
		map[string]interface{}{"applicationResourceName": applicationResourceName})
}

// MeshCodePackageGetContainerLogs gets the logs from the container of a
// code package of a service replica. tail is the number of lines to return
// from the end of the logs.
func (client BaseClient) MeshCodePackageGetContainerLogs(ctx context.Context, applicationResourceName string, serviceResourceName string, replicaName string, codePackageName string, tail *int32) (result v82.ContainerLogs, err error) {
	_, err = client.do(ctx, &operation{
		name:   "MeshCodePackageGetContainerLogs",
		method: http.MethodGet,
		path:   "/Resources/Applications/{applicationResourceName}/Services/{serviceResourceName}/Replicas/{replicaName}/CodePackages/{codePackageName}/Logs",
		pathParameters: map[string]interface{}{
			"applicationResourceName": applicationResourceName,
			"serviceResourceName":     serviceResourceName,
			"replicaName":             replicaName,
			"codePackageName":         codePackageName,
		},
		queryParameters: map[string]interface{}{
			"Tail": tail,
		},
		apiVersion: meshAPIVersion,
	}, &result)
	return
}

// MeshSecretCreateOrUpdate creates or updates the secret resource called
// secretResourceName.
func (client BaseClient) MeshSecretCreateOrUpdate(ctx context.Context, secretResourceName string, secretResourceDescription v82.SecretResourceDescription) (v82.SecretResourceDescription, error) {
	return meshCreateOrUpdate(ctx, client, "MeshSecretCreateOrUpdate", "/Resources/Secrets/{secretResourceName}",
		map[string]interface{}{"secretResourceName": secretResourceName}, secretResourceDescription)
}

// MeshSecretGet gets the secret resource called secretResourceName.
func (client BaseClient) MeshSecretGet(ctx context.Context, secretResourceName string) (v82.SecretResourceDescription, error) {
	return meshGet[v82.SecretResourceDescription](ctx, client, "MeshSecretGet", "/Resources/Secrets/{secretResourceName}",
		map[string]interface{}{"secretResourceName": secretResourceName})
}

// MeshSecretDelete deletes the secret resource called secretResourceName
// and all of its values.
func (client BaseClient) MeshSecretDelete(ctx context.Context, secretResourceName string) error {
	return meshDelete(ctx, client, "MeshSecretDelete", "/Resources/Secrets/{secretResourceName}",
		map[string]interface{}{"secretResourceName": secretResourceName})
}

// MeshSecretList lists the secret resources. Secret values are not
// returned.
func (client BaseClient) MeshSecretList(ctx context.Context) (v82.PagedSecretResourceDescriptionList, error) {
	return meshGet[v82.PagedSecretResourceDescriptionList](ctx, client, "MeshSecretList", "/Resources/Secrets", nil)
}

func secretValueParameters(secretResourceName, secretValueResourceName string) map[string]interface{} {
	return map[string]interface{}{
		"secretResourceName":      secretResourceName,
		"secretValueResourceName": secretValueResourceName,
	}
}

// MeshSecretValueAddValue adds the named value to the secret resource.
func (client BaseClient) MeshSecretValueAddValue(ctx context.Context, secretResourceName string, secretValueResourceName string, secretValueResourceDescription v82.SecretValueResourceDescription) (v82.SecretValueResourceDescription, error) {
	return meshCreateOrUpdate(ctx, client, "MeshSecretValueAddValue", "/Resources/Secrets/{secretResourceName}/values/{secretValueResourceName}",
		secretValueParameters(secretResourceName, secretValueResourceName), secretValueResourceDescription)
}

// MeshSecretValueGet gets the named value of the secret resource without
// the secret itself.
func (client BaseClient) MeshSecretValueGet(ctx context.Context, secretResourceName string, secretValueResourceName string) (v82.SecretValueResourceDescription, error) {
	return meshGet[v82.SecretValueResourceDescription](ctx, client, "MeshSecretValueGet", "/Resources/Secrets/{secretResourceName}/values/{secretValueResourceName}",
		secretValueParameters(secretResourceName, secretValueResourceName))
}

// MeshSecretValueShow returns the secret held by the named value of the
// secret resource.
func (client BaseClient) MeshSecretValueShow(ctx context.Context, secretResourceName string, secretValueResourceName string) (result v82.SecretValue, err error) {
	_, err = client.do(ctx, &operation{
		name:           "MeshSecretValueShow",
		method:         http.MethodPost,
		path:           "/Resources/Secrets/{secretResourceName}/values/{secretValueResourceName}/list_value",
		pathParameters: secretValueParameters(secretResourceName, secretValueResourceName),
		apiVersion:     meshAPIVersion,
	}, &result)
	return
}

// MeshSecretValueDelete deletes the named value of the secret resource.
func (client BaseClient) MeshSecretValueDelete(ctx context.Context, secretResourceName string, secretValueResourceName string) error {
	return meshDelete(ctx, client, "MeshSecretValueDelete", "/Resources/Secrets/{secretResourceName}/values/{secretValueResourceName}",
		secretValueParameters(secretResourceName, secretValueResourceName))
}

// MeshSecretValueList lists the values of the secret resource.
func (client BaseClient) MeshSecretValueList(ctx context.Context, secretResourceName string) (v82.PagedSecretValueResourceDescriptionList, error) {
	return meshGet[v82.PagedSecretValueResourceDescriptionList](ctx, client, "MeshSecretValueList", "/Resources/Secrets/{secretResourceName}/values",
		map[string]interface{}{"secretResourceName": secretResourceName})
}

// MeshVolumeCreateOrUpdate creates or updates the volume resource called
// volumeResourceName.
func (client BaseClient) MeshVolumeCreateOrUpdate(ctx context.Context, volumeResourceName string, volumeResourceDescription v82.VolumeResourceDescription) (v82.VolumeResourceDescription, error) {
	return meshCreateOrUpdate(ctx, client, "MeshVolumeCreateOrUpdate", "/Resources/Volumes/{volumeResourceName}",
		map[string]interface{}{"volumeResourceName": volumeResourceName}, volumeResourceDescription)
}

// MeshVolumeGet gets the volume resource called volumeResourceName.
func (client BaseClient) MeshVolumeGet(ctx context.Context, volumeResourceName string) (v82.VolumeResourceDescription, error) {
	return meshGet[v82.VolumeResourceDescription](ctx, client, "MeshVolumeGet", "/Resources/Volumes/{volumeResourceName}",
		map[string]interface{}{"volumeResourceName": volumeResourceName})
}

// MeshVolumeDelete deletes the volume resource called volumeResourceName.
func (client BaseClient) MeshVolumeDelete(ctx context.Context, volumeResourceName string) error {
	return meshDelete(ctx, client, "MeshVolumeDelete", "/Resources/Volumes/{volumeResourceName}",
		map[string]interface{}{"volumeResourceName": volumeResourceName})
}

// MeshVolumeList lists the volume resources.
func (client BaseClient) MeshVolumeList(ctx context.Context) (v82.PagedVolumeResourceDescriptionList, error) {
	return meshGet[v82.PagedVolumeResourceDescriptionList](ctx, client, "MeshVolumeList", "/Resources/Volumes", nil)
}

// MeshNetworkCreateOrUpdate creates or updates the network resource called
// networkResourceName.
func (client BaseClient) MeshNetworkCreateOrUpdate(ctx context.Context, networkResourceName string, networkResourceDescription v82.NetworkResourceDescription) (v82.NetworkResourceDescription, error) {
	return meshCreateOrUpdate(ctx, client, "MeshNetworkCreateOrUpdate", "/Resources/Networks/{networkResourceName}",
		map[string]interface{}{"networkResourceName": networkResourceName}, networkResourceDescription)
}

// MeshNetworkGet gets the network resource called networkResourceName.
func (client BaseClient) MeshNetworkGet(ctx context.Context, networkResourceName string) (v82.NetworkResourceDescription, error) {
	return meshGet[v82.NetworkResourceDescription](ctx, client, "MeshNetworkGet", "/Resources/Networks/{networkResourceName}",
		map[string]interface{}{"networkResourceName": networkResourceName})
}

// MeshNetworkDelete deletes the network resource called
// networkResourceName.
func (client BaseClient) MeshNetworkDelete(ctx context.Context, networkResourceName string) error {
	return meshDelete(ctx, client, "MeshNetworkDelete", "/Resources/Networks/{networkResourceName}",
		map[string]interface{}{"networkResourceName": networkResourceName})
}

// MeshNetworkList lists the network resources.
func (client BaseClient) MeshNetworkList(ctx context.Context) (v82.PagedNetworkResourceDescriptionList, error) {
	return meshGet[v82.PagedNetworkResourceDescriptionList](ctx, client, "MeshNetworkList", "/Resources/Networks", nil)
}

// MeshGatewayCreateOrUpdate creates or updates the gateway resource called
// gatewayResourceName.
func (client BaseClient) MeshGatewayCreateOrUpdate(ctx context.Context, gatewayResourceName string, gatewayResourceDescription v82.GatewayResourceDescription) (v82.GatewayResourceDescription, error) {
	return meshCreateOrUpdate(ctx, client, "MeshGatewayCreateOrUpdate", "/Resources/Gateways/{gatewayResourceName}",
		map[string]interface{}{"gatewayResourceName": gatewayResourceName}, gatewayResourceDescription)
}

// MeshGatewayGet gets the gateway resource called gatewayResourceName.
func (client BaseClient) MeshGatewayGet(ctx context.Context, gatewayResourceName string) (v82.GatewayResourceDescription, error) {
	return meshGet[v82.GatewayResourceDescription](ctx, client, "MeshGatewayGet", "/Resources/Gateways/{gatewayResourceName}",
		map[string]interface{}{"gatewayResourceName": gatewayResourceName})
}

// MeshGatewayDelete deletes the gateway resource called
// gatewayResourceName.
func (client BaseClient) MeshGatewayDelete(ctx context.Context, gatewayResourceName string) error {
	return meshDelete(ctx, client, "MeshGatewayDelete", "/Resources/Gateways/{gatewayResourceName}",
		map[string]interface{}{"gatewayResourceName": gatewayResourceName})
}

// MeshGatewayList lists the gateway resources.
func (client BaseClient) MeshGatewayList(ctx context.Context) (v82.PagedGatewayResourceDescriptionList, error) {
	return meshGet[v82.PagedGatewayResourceDescriptionList](ctx, client, "MeshGatewayList", "/Resources/Gateways", nil)
}
