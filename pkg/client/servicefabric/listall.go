package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// pageFunc fetches the page at continuationToken and returns its items with
// the token of the next page.
type pageFunc[T any] func(continuationToken string) ([]T, *string, error)

// listAll follows continuation tokens until the gateway returns an empty
// one.
func listAll[T any](ctx context.Context, page pageFunc[T]) ([]T, error) {
	var all []T
	var continuationToken string

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, next, err := page(continuationToken)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if next == nil || *next == "" {
			return all, nil
		}
		continuationToken = *next
	}
}

// ListAllNodes returns every node in the cluster, optionally filtered by
// nodeStatusFilter.
func (client BaseClient) ListAllNodes(ctx context.Context, nodeStatusFilter string) ([]v82.NodeInfo, error) {
	return listAll(ctx, func(continuationToken string) ([]v82.NodeInfo, *string, error) {
		page, err := client.GetNodeInfoList(ctx, continuationToken, nodeStatusFilter, nil, nil)
		return page.Items, page.ContinuationToken, err
	})
}

// ListAllApplicationTypes returns every provisioned application type.
func (client BaseClient) ListAllApplicationTypes(ctx context.Context) ([]v82.ApplicationTypeInfo, error) {
	return listAll(ctx, func(continuationToken string) ([]v82.ApplicationTypeInfo, *string, error) {
		page, err := client.GetApplicationTypeInfoList(ctx, continuationToken, nil, nil)
		return page.Items, page.ContinuationToken, err
	})
}

// ListAllApplications returns every application, optionally restricted to
// applicationTypeName.
func (client BaseClient) ListAllApplications(ctx context.Context, applicationTypeName string) ([]v82.ApplicationInfo, error) {
	return listAll(ctx, func(continuationToken string) ([]v82.ApplicationInfo, *string, error) {
		page, err := client.GetApplicationInfoList(ctx, applicationTypeName, continuationToken, nil, nil)
		return page.Items, page.ContinuationToken, err
	})
}

// ListAllServices returns every service of the application.
func (client BaseClient) ListAllServices(ctx context.Context, applicationID string) ([]v82.BasicServiceInfo, error) {
	return listAll(ctx, func(continuationToken string) ([]v82.BasicServiceInfo, *string, error) {
		page, err := client.GetServiceInfoList(ctx, applicationID, "", continuationToken, nil)
		return page.Items, page.ContinuationToken, err
	})
}

// ListAllPartitions returns every partition of the service.
func (client BaseClient) ListAllPartitions(ctx context.Context, serviceID string) ([]v82.BasicServicePartitionInfo, error) {
	return listAll(ctx, func(continuationToken string) ([]v82.BasicServicePartitionInfo, *string, error) {
		page, err := client.GetPartitionInfoList(ctx, serviceID, continuationToken, nil)
		return page.Items, page.ContinuationToken, err
	})
}

// ListAllReplicas returns every replica or instance of the partition.
func (client BaseClient) ListAllReplicas(ctx context.Context, partitionID string) ([]v82.BasicReplicaInfo, error) {
	return listAll(ctx, func(continuationToken string) ([]v82.BasicReplicaInfo, *string, error) {
		page, err := client.GetReplicaInfoList(ctx, partitionID, continuationToken, nil)
		return page.Items, page.ContinuationToken, err
	})
}

// ListAllBackupPolicies returns every backup policy.
func (client BaseClient) ListAllBackupPolicies(ctx context.Context) ([]v82.BackupPolicyDescription, error) {
	return listAll(ctx, func(continuationToken string) ([]v82.BackupPolicyDescription, *string, error) {
		page, err := client.GetBackupPolicyList(ctx, continuationToken, nil, nil)
		return page.Items, page.ContinuationToken, err
	})
}

// ListAllChaosEvents returns the Chaos events between startTimeUtc and
// endTimeUtc, given as Windows file time ticks.
func (client BaseClient) ListAllChaosEvents(ctx context.Context, startTimeUtc string, endTimeUtc string) ([]v82.ChaosEventWrapper, error) {
	first := true
	return listAll(ctx, func(continuationToken string) ([]v82.ChaosEventWrapper, *string, error) {
		// the time range may only be sent with the first request
		start, end := startTimeUtc, endTimeUtc
		if !first {
			start, end = "", ""
		}
		first = false

		page, err := client.GetChaosEvents(ctx, continuationToken, start, end, nil, nil)
		return page.History, page.ContinuationToken, err
	})
}

// ListServicesForApplications lists the services of each application,
// running at most concurrency listings at a time. The result is keyed by
// application ID.
func (client BaseClient) ListServicesForApplications(ctx context.Context, applicationIDs []string, concurrency int) (map[string][]v82.BasicServiceInfo, error) {
	var mu sync.Mutex
	services := make(map[string][]v82.BasicServiceInfo, len(applicationIDs))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for _, applicationID := range applicationIDs {
		applicationID := applicationID
		g.Go(func() error {
			s, err := client.ListAllServices(ctx, applicationID)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			services[applicationID] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return services, nil
}
