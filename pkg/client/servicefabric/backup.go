package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/Azure/go-autorest/autorest/validation"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

const backupRestoreAPIVersion = "6.4"

// BackupEntity identifies the application, service or partition a backup
// operation applies to. ID is the entity id, e.g. "app~svc" for the service
// fabric:/app/svc or the partition GUID.
type BackupEntity struct {
	Kind v82.BackupEntityKind
	ID   string
}

func (e BackupEntity) path(name, action string) (string, error) {
	switch e.Kind {
	case v82.BackupEntityKindApplication:
		return "/Applications/{entityId}/$/" + action, nil
	case v82.BackupEntityKindService:
		return "/Services/{entityId}/$/" + action, nil
	case v82.BackupEntityKindPartition:
		return "/Partitions/{entityId}/$/" + action, nil
	}

	return "", validation.NewError(packageType, name, "unsupported backup entity kind %q", e.Kind)
}

func (client BaseClient) backupEntityAction(ctx context.Context, name, action string, entity BackupEntity, body interface{}, timeout *int64) error {
	path, err := entity.path(name, action)
	if err != nil {
		return err
	}

	_, err = client.do(ctx, &operation{
		name:           name,
		method:         http.MethodPost,
		path:           path,
		pathParameters: map[string]interface{}{"entityId": entity.ID},
		apiVersion:     backupRestoreAPIVersion,
		timeout:        timeout,
		body:           body,
		statusCodes:    []int{http.StatusAccepted},
	}, nil)
	return err
}

// CreateBackupPolicy creates a backup policy which can be associated later
// with a Service Fabric application, service or a partition for periodic
// backup.
func (client BaseClient) CreateBackupPolicy(ctx context.Context, backupPolicyDescription v82.BackupPolicyDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:        "CreateBackupPolicy",
		method:      http.MethodPost,
		path:        "/BackupRestore/BackupPolicies/$/Create",
		apiVersion:  backupRestoreAPIVersion,
		timeout:     timeout,
		body:        backupPolicyDescription,
		statusCodes: []int{http.StatusCreated},
	}, nil)
	return err
}

// DeleteBackupPolicy deletes an existing backup policy. The policy must not
// be associated with any entity.
func (client BaseClient) DeleteBackupPolicy(ctx context.Context, backupPolicyName string, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "DeleteBackupPolicy",
		method:         http.MethodPost,
		path:           "/BackupRestore/BackupPolicies/{backupPolicyName}/$/Delete",
		pathParameters: map[string]interface{}{"backupPolicyName": backupPolicyName},
		apiVersion:     backupRestoreAPIVersion,
		timeout:        timeout,
	}, nil)
	return err
}

// UpdateBackupPolicy updates the backup policy called backupPolicyName.
func (client BaseClient) UpdateBackupPolicy(ctx context.Context, backupPolicyName string, backupPolicyDescription v82.BackupPolicyDescription, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "UpdateBackupPolicy",
		method:         http.MethodPost,
		path:           "/BackupRestore/BackupPolicies/{backupPolicyName}/$/Update",
		pathParameters: map[string]interface{}{"backupPolicyName": backupPolicyName},
		apiVersion:     backupRestoreAPIVersion,
		timeout:        timeout,
		body:           backupPolicyDescription,
	}, nil)
	return err
}

// GetBackupPolicyList gets one page of the backup policies configured in
// the cluster.
func (client BaseClient) GetBackupPolicyList(ctx context.Context, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedBackupPolicyDescriptionList, err error) {
	_, err = client.do(ctx, &operation{
		name:   "GetBackupPolicyList",
		method: http.MethodGet,
		path:   "/BackupRestore/BackupPolicies",
		queryParameters: map[string]interface{}{
			"ContinuationToken": continuationToken,
		},
		apiVersion: backupRestoreAPIVersion,
		timeout:    timeout,
		maxResults: maxResults,
	}, &result)
	return
}

// GetBackupPolicyByName gets a particular backup policy by name.
func (client BaseClient) GetBackupPolicyByName(ctx context.Context, backupPolicyName string, timeout *int64) (result v82.BackupPolicyDescription, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetBackupPolicyByName",
		method:         http.MethodGet,
		path:           "/BackupRestore/BackupPolicies/{backupPolicyName}",
		pathParameters: map[string]interface{}{"backupPolicyName": backupPolicyName},
		apiVersion:     backupRestoreAPIVersion,
		timeout:        timeout,
	}, &result)
	return
}

// EnableBackup enables periodic backup of the stateful partitions under the
// entity using the named backup policy.
func (client BaseClient) EnableBackup(ctx context.Context, entity BackupEntity, enableBackupDescription v82.EnableBackupDescription, timeout *int64) error {
	return client.backupEntityAction(ctx, "EnableBackup", "EnableBackup", entity, enableBackupDescription, timeout)
}

// DisableBackup disables periodic backup of the entity. A nil
// disableBackupDescription keeps the existing backups.
func (client BaseClient) DisableBackup(ctx context.Context, entity BackupEntity, disableBackupDescription *v82.DisableBackupDescription, timeout *int64) error {
	return client.backupEntityAction(ctx, "DisableBackup", "DisableBackup", entity, disableBackupDescription, timeout)
}

// SuspendBackup suspends periodic backup of the entity.
func (client BaseClient) SuspendBackup(ctx context.Context, entity BackupEntity, timeout *int64) error {
	return client.backupEntityAction(ctx, "SuspendBackup", "SuspendBackup", entity, nil, timeout)
}

// ResumeBackup resumes periodic backup of a suspended entity.
func (client BaseClient) ResumeBackup(ctx context.Context, entity BackupEntity, timeout *int64) error {
	return client.backupEntityAction(ctx, "ResumeBackup", "ResumeBackup", entity, nil, timeout)
}

// GetBackupConfigurationInfo gets one page of the backup configuration of
// an application or service and the entities under it.
func (client BaseClient) GetBackupConfigurationInfo(ctx context.Context, entity BackupEntity, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedBackupConfigurationInfoList, err error) {
	if entity.Kind == v82.BackupEntityKindPartition {
		return result, validation.NewError(packageType, "GetBackupConfigurationInfo", "use GetPartitionBackupConfigurationInfo for partitions")
	}

	path, err := entity.path("GetBackupConfigurationInfo", "GetBackupConfigurationInfo")
	if err != nil {
		return result, err
	}

	_, err = client.do(ctx, &operation{
		name:           "GetBackupConfigurationInfo",
		method:         http.MethodGet,
		path:           path,
		pathParameters: map[string]interface{}{"entityId": entity.ID},
		queryParameters: map[string]interface{}{
			"ContinuationToken": continuationToken,
		},
		apiVersion: backupRestoreAPIVersion,
		timeout:    timeout,
		maxResults: maxResults,
	}, &result)
	return
}

// GetPartitionBackupConfigurationInfo gets the partition backup
// configuration information.
func (client BaseClient) GetPartitionBackupConfigurationInfo(ctx context.Context, partitionID string, timeout *int64) (result v82.BasicBackupConfigurationInfo, err error) {
	var raw json.RawMessage
	_, err = client.do(ctx, &operation{
		name:           "GetPartitionBackupConfigurationInfo",
		method:         http.MethodGet,
		path:           "/Partitions/{partitionId}/$/GetBackupConfigurationInfo",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		apiVersion:     backupRestoreAPIVersion,
		timeout:        timeout,
	}, &raw)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	return v82.UnmarshalBackupConfigurationInfo(raw)
}

// GetBackupList gets one page of the backups available for the entity.
// latest restricts the result to the latest backup of every partition.
func (client BaseClient) GetBackupList(ctx context.Context, entity BackupEntity, latest *bool, startDateTimeFilter *date.Time, endDateTimeFilter *date.Time, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedBackupInfoList, err error) {
	path, err := entity.path("GetBackupList", "GetBackups")
	if err != nil {
		return result, err
	}

	_, err = client.do(ctx, &operation{
		name:           "GetBackupList",
		method:         http.MethodGet,
		path:           path,
		pathParameters: map[string]interface{}{"entityId": entity.ID},
		queryParameters: map[string]interface{}{
			"Latest":              latest,
			"StartDateTimeFilter": startDateTimeFilter,
			"EndDateTimeFilter":   endDateTimeFilter,
			"ContinuationToken":   continuationToken,
		},
		apiVersion: backupRestoreAPIVersion,
		timeout:    timeout,
		maxResults: maxResults,
	}, &result)
	return
}

// BackupPartition triggers a backup of the partition's state. A nil
// backupPartitionDescription uses the storage of the partition's backup
// policy.
func (client BaseClient) BackupPartition(ctx context.Context, partitionID string, backupPartitionDescription *v82.BackupPartitionDescription, backupTimeout *int32, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "BackupPartition",
		method:         http.MethodPost,
		path:           "/Partitions/{partitionId}/$/Backup",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		queryParameters: map[string]interface{}{
			"BackupTimeout": backupTimeout,
		},
		apiVersion:  backupRestoreAPIVersion,
		timeout:     timeout,
		body:        backupPartitionDescription,
		statusCodes: []int{http.StatusAccepted},
	}, nil)
	return err
}

// GetPartitionBackupProgress returns information about the state of the
// latest backup of the partition.
func (client BaseClient) GetPartitionBackupProgress(ctx context.Context, partitionID string, timeout *int64) (result v82.BackupProgressInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetPartitionBackupProgress",
		method:         http.MethodGet,
		path:           "/Partitions/{partitionId}/$/GetBackupProgress",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		apiVersion:     backupRestoreAPIVersion,
		timeout:        timeout,
	}, &result)
	return
}

// RestorePartition triggers a restore of the partition's state from the
// given backup.
func (client BaseClient) RestorePartition(ctx context.Context, partitionID string, restorePartitionDescription v82.RestorePartitionDescription, restoreTimeout *int32, timeout *int64) error {
	_, err := client.do(ctx, &operation{
		name:           "RestorePartition",
		method:         http.MethodPost,
		path:           "/Partitions/{partitionId}/$/Restore",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		queryParameters: map[string]interface{}{
			"RestoreTimeout": restoreTimeout,
		},
		apiVersion:  backupRestoreAPIVersion,
		timeout:     timeout,
		body:        restorePartitionDescription,
		statusCodes: []int{http.StatusAccepted},
	}, nil)
	return err
}

// GetPartitionRestoreProgress gets details of the latest restore operation
// triggered for the partition.
func (client BaseClient) GetPartitionRestoreProgress(ctx context.Context, partitionID string, timeout *int64) (result v82.RestoreProgressInfo, err error) {
	_, err = client.do(ctx, &operation{
		name:           "GetPartitionRestoreProgress",
		method:         http.MethodGet,
		path:           "/Partitions/{partitionId}/$/GetRestoreProgress",
		pathParameters: map[string]interface{}{"partitionId": partitionID},
		apiVersion:     backupRestoreAPIVersion,
		timeout:        timeout,
	}, &result)
	return
}
