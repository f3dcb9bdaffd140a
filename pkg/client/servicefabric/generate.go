package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../../util/mocks/$GOPACKAGE
//go:generate mockgen -destination=../../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azure-servicefabric-go/pkg/client/$GOPACKAGE BaseClientAPI
//go:generate goimports -local=github.com/Azure/azure-servicefabric-go -e -w ../../util/mocks/$GOPACKAGE/$GOPACKAGE.go
