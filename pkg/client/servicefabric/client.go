// Package servicefabric implements a client for the Service Fabric HTTP
// gateway REST API.
package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/util/version"
)

const (
	// DefaultBaseURI is the default URI used for the cluster HTTP gateway.
	DefaultBaseURI = "http://localhost:19080"

	fqdn        = "github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
	packageType = "servicefabric.BaseClient"
)

// BaseClient is the base client for Servicefabric.
type BaseClient struct {
	autorest.Client
	BaseURI string
}

var _ BaseClientAPI = BaseClient{}

// New creates an instance of the BaseClient client.
func New() BaseClient {
	return NewWithBaseURI(DefaultBaseURI)
}

// NewWithBaseURI creates an instance of the BaseClient client using a
// custom endpoint, for example a cluster's https://<host>:19080 gateway.
func NewWithBaseURI(baseURI string) BaseClient {
	return BaseClient{
		Client:  autorest.NewClientWithUserAgent(UserAgent()),
		BaseURI: baseURI,
	}
}

// UserAgent returns the UserAgent string to use when sending http.Requests.
func UserAgent() string {
	return "azure-servicefabric-go/" + version.GitCommit + " servicefabric/" + v82.APIVersion
}
