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

func TestMeshOperations(t *testing.T) {
	ctx := context.Background()

	volume := v82.NewVolumeResourceDescription("sharedVolume", "account", "share")

	testOperations(t, []operationTest{
		{
			name: "create volume",
			exchanges: []exchange{{
				wantMethod: http.MethodPut,
				wantURL:    "https://localhost:19080/Resources/Volumes/sharedVolume?api-version=6.4-preview&timeout=60",
				wantBody:   `{"name":"sharedVolume","properties":{"provider":"SFAzureFile","azureFileParameters":{"accountName":"account","shareName":"share"}}}`,
				status:     http.StatusCreated,
				body:       `{"name":"sharedVolume","properties":{"provider":"SFAzureFile","azureFileParameters":{"accountName":"account","shareName":"share"}}}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.MeshVolumeCreateOrUpdate(ctx, "sharedVolume", *volume)
			},
			want: *volume,
		},
		{
			name: "update volume in progress",
			exchanges: []exchange{{
				wantMethod: http.MethodPut,
				wantURL:    "https://localhost:19080/Resources/Volumes/sharedVolume?api-version=6.4-preview&timeout=60",
				wantBody:   `{"name":"sharedVolume","properties":{"provider":"SFAzureFile","azureFileParameters":{"accountName":"account","shareName":"share"}}}`,
				status:     http.StatusAccepted,
				body:       `{"name":"sharedVolume","properties":{"provider":"SFAzureFile","azureFileParameters":{"accountName":"account","shareName":"share"}}}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.MeshVolumeCreateOrUpdate(ctx, "sharedVolume", *volume)
			},
			want: *volume,
		},
		{
			name: "delete volume",
			exchanges: []exchange{{
				wantMethod: http.MethodDelete,
				wantURL:    "https://localhost:19080/Resources/Volumes/sharedVolume?api-version=6.4-preview&timeout=60",
				status:     http.StatusNoContent,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.MeshVolumeDelete(ctx, "sharedVolume")
			},
		},
		{
			name: "delete application resource",
			exchanges: []exchange{{
				wantMethod: http.MethodDelete,
				wantURL:    "https://localhost:19080/Resources/Applications/app?api-version=6.4-preview&timeout=60",
				status:     http.StatusAccepted,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.MeshApplicationDelete(ctx, "app")
			},
		},
		{
			name: "add secret value",
			exchanges: []exchange{{
				wantMethod: http.MethodPut,
				wantURL:    "https://localhost:19080/Resources/Secrets/db/values/v1?api-version=6.4-preview&timeout=60",
				wantBody:   `{"name":"v1","properties":{"value":"hunter2"}}`,
				status:     http.StatusOK,
				body:       `{"name":"v1","properties":{}}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.MeshSecretValueAddValue(ctx, "db", "v1", *v82.NewSecretValueResourceDescription("v1", "hunter2"))
			},
			want: v82.SecretValueResourceDescription{Name: "v1"},
		},
		{
			name: "delete missing secret value",
			exchanges: []exchange{{
				wantMethod: http.MethodDelete,
				wantURL:    "https://localhost:19080/Resources/Secrets/db/values/v9?api-version=6.4-preview&timeout=60",
				status:     http.StatusNotFound,
				body:       `{"Error":{"Code":"FABRIC_E_SECRET_VALUE_NOT_FOUND","Message":"not found"}}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.MeshSecretValueDelete(ctx, "db", "v9")
			},
			wantErr: "servicefabric.BaseClient#MeshSecretValueDelete: Failure responding to request: StatusCode=404",
		},
		{
			name: "code package logs",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Resources/Applications/app/Services/web/Replicas/0/CodePackages/frontend/Logs?Tail=10&api-version=6.4-preview&timeout=60",
				status:     http.StatusOK,
				body:       `{"Content":"listening on :80\n"}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.MeshCodePackageGetContainerLogs(ctx, "app", "web", "0", "frontend", to.Int32Ptr(10))
			},
			want: v82.ContainerLogs{Content: to.StringPtr("listening on :80\n")},
		},
		{
			name: "list gateways",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Resources/Gateways?api-version=6.4-preview&timeout=60",
				status:     http.StatusOK,
				body:       `{"ContinuationToken":""}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.MeshGatewayList(ctx)
			},
			want: v82.PagedGatewayResourceDescriptionList{ContinuationToken: to.StringPtr("")},
		},
	})
}
