package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/go-autorest/autorest/to"

	"github.com/Azure/azure-servicefabric-go/pkg/api/util/pointerutils"
	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func TestBackupOperations(t *testing.T) {
	ctx := context.Background()

	policy := v82.NewBackupPolicyDescription("daily", false, 3,
		v82.NewFrequencyBasedBackupScheduleDescription("PT24H"),
		v82.NewAzureBlobBackupStorageDescription("AccountKey=key", "backups"))

	testOperations(t, []operationTest{
		{
			name: "create backup policy",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/BackupRestore/BackupPolicies/$/Create?api-version=6.4&timeout=60",
				wantBody:   `{"Name":"daily","AutoRestoreOnDataLoss":false,"MaxIncrementalBackups":3,"Schedule":{"ScheduleKind":"FrequencyBased","Interval":"PT24H"},"Storage":{"StorageKind":"AzureBlobStore","ConnectionString":"AccountKey=key","ContainerName":"backups"}}`,
				status:     http.StatusCreated,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.CreateBackupPolicy(ctx, *policy, nil)
			},
		},
		{
			name: "delete backup policy",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/BackupRestore/BackupPolicies/daily/$/Delete?api-version=6.4&timeout=60",
				status:     http.StatusOK,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.DeleteBackupPolicy(ctx, "daily", nil)
			},
		},
		{
			name: "enable application backup",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Applications/app/$/EnableBackup?api-version=6.4&timeout=60",
				wantBody:   `{"BackupPolicyName":"daily"}`,
				status:     http.StatusAccepted,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.EnableBackup(ctx, BackupEntity{Kind: v82.BackupEntityKindApplication, ID: "app"}, *v82.NewEnableBackupDescription("daily"), nil)
			},
		},
		{
			name: "suspend service backup",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Services/app~svc/$/SuspendBackup?api-version=6.4&timeout=60",
				status:     http.StatusAccepted,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.SuspendBackup(ctx, BackupEntity{Kind: v82.BackupEntityKindService, ID: "app~svc"}, nil)
			},
		},
		{
			name: "resume partition backup",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Partitions/p1/$/ResumeBackup?api-version=6.4&timeout=30",
				status:     http.StatusAccepted,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.ResumeBackup(ctx, BackupEntity{Kind: v82.BackupEntityKindPartition, ID: "p1"}, to.Int64Ptr(30))
			},
		},
		{
			name: "backup action is accepted, not ok",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Partitions/p1/$/SuspendBackup?api-version=6.4&timeout=60",
				status:     http.StatusOK,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.SuspendBackup(ctx, BackupEntity{Kind: v82.BackupEntityKindPartition, ID: "p1"}, nil)
			},
			wantErr: "servicefabric.BaseClient#SuspendBackup: Failure responding to request: StatusCode=200",
		},
		{
			name: "unsupported backup entity kind",
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.EnableBackup(ctx, BackupEntity{Kind: v82.BackupEntityKindInvalid, ID: "x"}, *v82.NewEnableBackupDescription("daily"), nil)
			},
			wantErr: `servicefabric.BaseClient#EnableBackup: Invalid input: unsupported backup entity kind "Invalid"`,
		},
		{
			name: "backup configuration of a partition",
			call: func(c BaseClient) (interface{}, error) {
				return c.GetBackupConfigurationInfo(ctx, BackupEntity{Kind: v82.BackupEntityKindPartition, ID: "p1"}, "", nil, nil)
			},
			wantErr: "servicefabric.BaseClient#GetBackupConfigurationInfo: Invalid input: use GetPartitionBackupConfigurationInfo",
		},
		{
			name: "latest backups of a partition",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Partitions/p1/$/GetBackups?Latest=true&MaxResults=1&api-version=6.4&timeout=60",
				status:     http.StatusOK,
				body:       `{"ContinuationToken":"","Items":[{"BackupId":"b1","BackupLocation":"app/svc/p1/b1.zip"}]}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				page, err := c.GetBackupList(ctx, BackupEntity{Kind: v82.BackupEntityKindPartition, ID: "p1"}, to.BoolPtr(true), nil, nil, "", to.Int64Ptr(1), nil)
				var locations []string
				for _, b := range page.Items {
					locations = append(locations, *b.BackupLocation)
				}
				return locations, err
			},
			want: []string{"app/svc/p1/b1.zip"},
		},
		{
			name: "backup partition with timeout",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Partitions/p1/$/Backup?BackupTimeout=10&api-version=6.4&timeout=60",
				status:     http.StatusAccepted,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.BackupPartition(ctx, "p1", nil, to.Int32Ptr(10), nil)
			},
		},
		{
			name: "backup progress",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Partitions/p1/$/GetBackupProgress?api-version=6.4&timeout=60",
				status:     http.StatusOK,
				body:       `{"BackupState":"Success","BackupId":"b1"}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetPartitionBackupProgress(ctx, "p1", nil)
			},
			want: v82.BackupProgressInfo{
				BackupState: pointerutils.ToPtr(v82.BackupStateSuccess),
				BackupID:    to.StringPtr("b1"),
			},
		},
		{
			name: "restore partition",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Partitions/p1/$/Restore?RestoreTimeout=15&api-version=6.4&timeout=60",
				wantBody:   `{"BackupId":"b1","BackupLocation":"app/svc/p1/b1.zip"}`,
				status:     http.StatusAccepted,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.RestorePartition(ctx, "p1", *v82.NewRestorePartitionDescription("b1", "app/svc/p1/b1.zip"), to.Int32Ptr(15), nil)
			},
		},
	})
}
