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

func TestContainerOperations(t *testing.T) {
	ctx := context.Background()

	testOperations(t, []operationTest{
		{
			name: "container logs of the previous instance",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Nodes/_Node_0/$/GetApplications/app/$/GetCodePackages/$/ContainerLogs?CodePackageName=frontend&Previous=true&ServiceManifestName=WebPkg&Tail=100&api-version=6.2&timeout=60",
				status:     http.StatusOK,
				body:       `{"Content":"exited with 137\n"}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetContainerLogsDeployedOnNode(ctx, "_Node_0", "app", "WebPkg", "frontend", "100", to.BoolPtr(true), nil)
			},
			want: v82.ContainerLogs{Content: to.StringPtr("exited with 137\n")},
		},
		{
			name: "invoke container api",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Nodes/_Node_0/$/GetApplications/app/$/GetCodePackages/$/ContainerApi?CodePackageInstanceId=132&CodePackageName=frontend&ServiceManifestName=WebPkg&api-version=6.2&timeout=60",
				wantBody:   `{"UriPath":"/containers/{id}/json"}`,
				status:     http.StatusOK,
				body:       `{"ContainerApiResult":{"Status":200,"Content-Type":"application/json","Body":"{}"}}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.InvokeContainerAPI(ctx, "_Node_0", "app", "WebPkg", "frontend", "132", *v82.NewContainerAPIRequestBody("/containers/{id}/json"), nil)
			},
			want: v82.ContainerAPIResponse{
				ContainerAPIResult: v82.ContainerAPIResult{
					Status:      200,
					ContentType: to.StringPtr("application/json"),
					Body:        to.StringPtr("{}"),
				},
			},
		},
	})
}
