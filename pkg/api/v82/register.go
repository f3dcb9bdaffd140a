package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// APIVersion contains the version of this API
const APIVersion = "8.2"

func init() {
	api.Register(&api.Version{
		Name:                      APIVersion,
		ClusterMinimumCodeVersion: "8.2.1363.9590",
	})
}
