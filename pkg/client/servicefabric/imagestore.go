package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// GetImageStoreRootContent gets the content at the root of the image
// store.
func (client BaseClient) GetImageStoreRootContent(ctx context.Context, timeout *int64) (result v82.ImageStoreContent, err error) {
	_, err = client.do(ctx, &operation{
		name:       "GetImageStoreRootContent",
		method:     http.MethodGet,
		path:       "/ImageStore",
		apiVersion: "6.0",
		timeout:    timeout,
	}, &result)
	return
}

// GetImageStoreContent gets the image store content at contentPath,
// relative to the root of the image store.
func (client BaseClient) GetImageStoreContent(ctx context.Context, contentPath string, timeout *int64) (result v82.ImageStoreContent, err error) {
	_, err = client.do(ctx, &operation{
		name:              "GetImageStoreContent",
		method:            http.MethodGet,
		path:              "/ImageStore/{contentPath}",
		rawPathParameters: map[string]interface{}{"contentPath": contentPath},
		apiVersion:        "6.2",
		timeout:           timeout,
	}, &result)
	return
}

// DeleteImageStoreContent deletes the image store content at contentPath.
func (client BaseClient) DeleteImageStoreContent(ctx context.Context, contentPath string, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:              "DeleteImageStoreContent",
		method:            http.MethodDelete,
		path:              "/ImageStore/{contentPath}",
		rawPathParameters: map[string]interface{}{"contentPath": contentPath},
		apiVersion:        "6.0",
		timeout:           timeout,
	}, nil)
	return err
}

// CopyImageStoreContent copies image store content internally.
func (client BaseClient) CopyImageStoreContent(ctx context.Context, imageStoreCopyDescription v82.ImageStoreCopyDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:       "CopyImageStoreContent",
		method:     http.MethodPost,
		path:       "/ImageStore/$/Copy",
		apiVersion: "6.0",
		timeout:    timeout,
		body:       imageStoreCopyDescription,
	}, nil)
	return err
}
