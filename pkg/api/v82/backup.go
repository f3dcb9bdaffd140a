package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// BasicBackupScheduleDescription is implemented by every backup schedule.
type BasicBackupScheduleDescription interface {
	GetBackupScheduleDescription() *BackupScheduleDescription
}

// BackupScheduleDescription describes the backup schedule parameters.
type BackupScheduleDescription struct {
	ScheduleKind BackupScheduleKind `json:"ScheduleKind"`
}

// GetBackupScheduleDescription returns b.
func (b *BackupScheduleDescription) GetBackupScheduleDescription() *BackupScheduleDescription {
	return b
}

// FrequencyBasedBackupScheduleDescription describes the frequency based
// backup schedule.
type FrequencyBasedBackupScheduleDescription struct {
	BackupScheduleDescription
	Interval string `json:"Interval"`
}

// NewFrequencyBasedBackupScheduleDescription returns a schedule taking a
// backup every interval, an ISO 8601 duration such as "PT5M".
func NewFrequencyBasedBackupScheduleDescription(interval string) *FrequencyBasedBackupScheduleDescription {
	return &FrequencyBasedBackupScheduleDescription{
		BackupScheduleDescription: BackupScheduleDescription{ScheduleKind: BackupScheduleKindFrequencyBased},
		Interval:                  interval,
	}
}

// MarshalJSON sets the ScheduleKind discriminator.
func (f FrequencyBasedBackupScheduleDescription) MarshalJSON() ([]byte, error) {
	type alias FrequencyBasedBackupScheduleDescription
	f.ScheduleKind = BackupScheduleKindFrequencyBased
	return json.Marshal(alias(f))
}

// TimeBasedBackupScheduleDescription describes the time based backup
// schedule.
type TimeBasedBackupScheduleDescription struct {
	BackupScheduleDescription
	ScheduleFrequencyType BackupScheduleFrequencyType `json:"ScheduleFrequencyType"`
	RunDays               []DayOfWeek                 `json:"RunDays,omitempty"`
	RunTimes              []date.Time                 `json:"RunTimes"`
}

// NewTimeBasedBackupScheduleDescription returns a schedule with its
// required fields set.
func NewTimeBasedBackupScheduleDescription(frequency BackupScheduleFrequencyType, runTimes ...date.Time) *TimeBasedBackupScheduleDescription {
	return &TimeBasedBackupScheduleDescription{
		BackupScheduleDescription: BackupScheduleDescription{ScheduleKind: BackupScheduleKindTimeBased},
		ScheduleFrequencyType:     frequency,
		RunTimes:                  runTimes,
	}
}

// MarshalJSON sets the ScheduleKind discriminator.
func (t TimeBasedBackupScheduleDescription) MarshalJSON() ([]byte, error) {
	type alias TimeBasedBackupScheduleDescription
	t.ScheduleKind = BackupScheduleKindTimeBased
	return json.Marshal(alias(t))
}

var backupScheduleFactories = map[string]func() BasicBackupScheduleDescription{
	string(BackupScheduleKindFrequencyBased): func() BasicBackupScheduleDescription {
		return &FrequencyBasedBackupScheduleDescription{}
	},
	string(BackupScheduleKindTimeBased): func() BasicBackupScheduleDescription {
		return &TimeBasedBackupScheduleDescription{}
	},
}

// UnmarshalBackupScheduleDescription decodes a schedule by its ScheduleKind.
func UnmarshalBackupScheduleDescription(b []byte) (BasicBackupScheduleDescription, error) {
	return api.UnmarshalPolymorphic(b, "ScheduleKind", backupScheduleFactories, func() BasicBackupScheduleDescription {
		return &BackupScheduleDescription{}
	})
}

// BasicBackupStorageDescription is implemented by every backup store.
type BasicBackupStorageDescription interface {
	GetBackupStorageDescription() *BackupStorageDescription
}

// BackupStorageDescription describes the parameters for the backup store.
type BackupStorageDescription struct {
	StorageKind  BackupStorageKind `json:"StorageKind"`
	FriendlyName *string           `json:"FriendlyName,omitempty"`
}

// GetBackupStorageDescription returns b.
func (b *BackupStorageDescription) GetBackupStorageDescription() *BackupStorageDescription {
	return b
}

// AzureBlobBackupStorageDescription describes the parameters for Azure
// blob store used for storing and enumerating backups.
type AzureBlobBackupStorageDescription struct {
	BackupStorageDescription
	ConnectionString api.SecureString `json:"ConnectionString"`
	ContainerName    string           `json:"ContainerName"`
}

// NewAzureBlobBackupStorageDescription returns a store with its required
// fields set.
func NewAzureBlobBackupStorageDescription(connectionString api.SecureString, containerName string) *AzureBlobBackupStorageDescription {
	return &AzureBlobBackupStorageDescription{
		BackupStorageDescription: BackupStorageDescription{StorageKind: BackupStorageKindAzureBlobStore},
		ConnectionString:         connectionString,
		ContainerName:            containerName,
	}
}

// MarshalJSON sets the StorageKind discriminator.
func (a AzureBlobBackupStorageDescription) MarshalJSON() ([]byte, error) {
	type alias AzureBlobBackupStorageDescription
	a.StorageKind = BackupStorageKindAzureBlobStore
	return json.Marshal(alias(a))
}

// FileShareBackupStorageDescription describes the parameters for file
// share storage used for storing or enumerating backups.
type FileShareBackupStorageDescription struct {
	BackupStorageDescription
	Path              string            `json:"Path"`
	PrimaryUserName   *string           `json:"PrimaryUserName,omitempty"`
	PrimaryPassword   *api.SecureString `json:"PrimaryPassword,omitempty"`
	SecondaryUserName *string           `json:"SecondaryUserName,omitempty"`
	SecondaryPassword *api.SecureString `json:"SecondaryPassword,omitempty"`
}

// NewFileShareBackupStorageDescription returns a store with its required
// fields set.
func NewFileShareBackupStorageDescription(path string) *FileShareBackupStorageDescription {
	return &FileShareBackupStorageDescription{
		BackupStorageDescription: BackupStorageDescription{StorageKind: BackupStorageKindFileShare},
		Path:                     path,
	}
}

// MarshalJSON sets the StorageKind discriminator.
func (f FileShareBackupStorageDescription) MarshalJSON() ([]byte, error) {
	type alias FileShareBackupStorageDescription
	f.StorageKind = BackupStorageKindFileShare
	return json.Marshal(alias(f))
}

// DsmsAzureBlobBackupStorageDescription describes the parameters for Dsms
// Azure blob store used for storing and enumerating backups.
type DsmsAzureBlobBackupStorageDescription struct {
	BackupStorageDescription
	StorageCredentialsSourceLocation string `json:"StorageCredentialsSourceLocation"`
	ContainerName                    string `json:"ContainerName"`
}

// MarshalJSON sets the StorageKind discriminator.
func (d DsmsAzureBlobBackupStorageDescription) MarshalJSON() ([]byte, error) {
	type alias DsmsAzureBlobBackupStorageDescription
	d.StorageKind = BackupStorageKindDsmsAzureBlobStore
	return json.Marshal(alias(d))
}

// ManagedIdentityAzureBlobBackupStorageDescription describes the
// parameters for an Azure blob store reached with a managed identity.
type ManagedIdentityAzureBlobBackupStorageDescription struct {
	BackupStorageDescription
	ManagedIdentityType ManagedIdentityType `json:"ManagedIdentityType"`
	BlobServiceURI      string              `json:"BlobServiceUri"`
	ContainerName       string              `json:"ContainerName"`
}

// MarshalJSON sets the StorageKind discriminator.
func (m ManagedIdentityAzureBlobBackupStorageDescription) MarshalJSON() ([]byte, error) {
	type alias ManagedIdentityAzureBlobBackupStorageDescription
	m.StorageKind = BackupStorageKindManagedIdentityAzureBlobStore
	return json.Marshal(alias(m))
}

var backupStorageFactories = map[string]func() BasicBackupStorageDescription{
	string(BackupStorageKindAzureBlobStore): func() BasicBackupStorageDescription {
		return &AzureBlobBackupStorageDescription{}
	},
	string(BackupStorageKindFileShare): func() BasicBackupStorageDescription {
		return &FileShareBackupStorageDescription{}
	},
	string(BackupStorageKindDsmsAzureBlobStore): func() BasicBackupStorageDescription {
		return &DsmsAzureBlobBackupStorageDescription{}
	},
	string(BackupStorageKindManagedIdentityAzureBlobStore): func() BasicBackupStorageDescription {
		return &ManagedIdentityAzureBlobBackupStorageDescription{}
	},
}

// UnmarshalBackupStorageDescription decodes a backup store by its
// StorageKind.
func UnmarshalBackupStorageDescription(b []byte) (BasicBackupStorageDescription, error) {
	return api.UnmarshalPolymorphic(b, "StorageKind", backupStorageFactories, func() BasicBackupStorageDescription {
		return &BackupStorageDescription{}
	})
}

// BasicRetentionPolicyDescription is implemented by every retention policy.
type BasicRetentionPolicyDescription interface {
	GetRetentionPolicyDescription() *RetentionPolicyDescription
}

// RetentionPolicyDescription describes the retention policy configured.
type RetentionPolicyDescription struct {
	RetentionPolicyType RetentionPolicyType `json:"RetentionPolicyType"`
}

// GetRetentionPolicyDescription returns r.
func (r *RetentionPolicyDescription) GetRetentionPolicyDescription() *RetentionPolicyDescription {
	return r
}

// BasicRetentionPolicyDescriptionBasic describes basic retention policy.
// RetentionDuration is an ISO 8601 duration.
type BasicRetentionPolicyDescriptionBasic struct {
	RetentionPolicyDescription
	RetentionDuration      string `json:"RetentionDuration"`
	MinimumNumberOfBackups *int32 `json:"MinimumNumberOfBackups,omitempty"`
}

// NewBasicRetentionPolicyDescriptionBasic returns a policy with its
// required fields set.
func NewBasicRetentionPolicyDescriptionBasic(retentionDuration string) *BasicRetentionPolicyDescriptionBasic {
	return &BasicRetentionPolicyDescriptionBasic{
		RetentionPolicyDescription: RetentionPolicyDescription{RetentionPolicyType: RetentionPolicyTypeBasic},
		RetentionDuration:          retentionDuration,
	}
}

// MarshalJSON sets the RetentionPolicyType discriminator.
func (b BasicRetentionPolicyDescriptionBasic) MarshalJSON() ([]byte, error) {
	type alias BasicRetentionPolicyDescriptionBasic
	b.RetentionPolicyType = RetentionPolicyTypeBasic
	return json.Marshal(alias(b))
}

var retentionPolicyFactories = map[string]func() BasicRetentionPolicyDescription{
	string(RetentionPolicyTypeBasic): func() BasicRetentionPolicyDescription {
		return &BasicRetentionPolicyDescriptionBasic{}
	},
}

// UnmarshalRetentionPolicyDescription decodes a retention policy by its
// RetentionPolicyType.
func UnmarshalRetentionPolicyDescription(b []byte) (BasicRetentionPolicyDescription, error) {
	return api.UnmarshalPolymorphic(b, "RetentionPolicyType", retentionPolicyFactories, func() BasicRetentionPolicyDescription {
		return &RetentionPolicyDescription{}
	})
}

// BackupPolicyDescription describes a backup policy for configuring
// periodic backup.
type BackupPolicyDescription struct {
	Name                  string                          `json:"Name"`
	AutoRestoreOnDataLoss bool                            `json:"AutoRestoreOnDataLoss"`
	MaxIncrementalBackups int32                           `json:"MaxIncrementalBackups"`
	Schedule              BasicBackupScheduleDescription  `json:"Schedule"`
	Storage               BasicBackupStorageDescription   `json:"Storage"`
	RetentionPolicy       BasicRetentionPolicyDescription `json:"RetentionPolicy,omitempty"`
}

// NewBackupPolicyDescription returns a policy with its required fields set.
func NewBackupPolicyDescription(name string, autoRestoreOnDataLoss bool, maxIncrementalBackups int32, schedule BasicBackupScheduleDescription, storage BasicBackupStorageDescription) *BackupPolicyDescription {
	return &BackupPolicyDescription{
		Name:                  name,
		AutoRestoreOnDataLoss: autoRestoreOnDataLoss,
		MaxIncrementalBackups: maxIncrementalBackups,
		Schedule:              schedule,
		Storage:               storage,
	}
}

// UnmarshalJSON decodes b including its schedule, storage and retention
// policy.
func (b *BackupPolicyDescription) UnmarshalJSON(data []byte) (err error) {
	type alias BackupPolicyDescription
	var v struct {
		alias
		Schedule        json.RawMessage `json:"Schedule"`
		Storage         json.RawMessage `json:"Storage"`
		RetentionPolicy json.RawMessage `json:"RetentionPolicy"`
	}
	if err = json.Unmarshal(data, &v); err != nil {
		return err
	}

	*b = BackupPolicyDescription(v.alias)
	if len(v.Schedule) > 0 {
		if b.Schedule, err = UnmarshalBackupScheduleDescription(v.Schedule); err != nil {
			return err
		}
	}
	if len(v.Storage) > 0 {
		if b.Storage, err = UnmarshalBackupStorageDescription(v.Storage); err != nil {
			return err
		}
	}
	if len(v.RetentionPolicy) > 0 {
		b.RetentionPolicy, err = UnmarshalRetentionPolicyDescription(v.RetentionPolicy)
	}
	return err
}

// PagedBackupPolicyDescriptionList is the list of backup policies
// configured in the cluster.
type PagedBackupPolicyDescriptionList struct {
	ContinuationToken *string                   `json:"ContinuationToken,omitempty"`
	Items             []BackupPolicyDescription `json:"Items,omitempty"`
}

// BackupInfo represents a backup point which can be used to trigger a
// restore.
type BackupInfo struct {
	BackupID                *string                   `json:"BackupId,omitempty"`
	BackupChainID           *string                   `json:"BackupChainId,omitempty"`
	ApplicationName         *string                   `json:"ApplicationName,omitempty"`
	ServiceName             *string                   `json:"ServiceName,omitempty"`
	PartitionInformation    BasicPartitionInformation `json:"PartitionInformation,omitempty"`
	BackupLocation          *string                   `json:"BackupLocation,omitempty"`
	BackupType              *BackupType               `json:"BackupType,omitempty"`
	EpochOfLastBackupRecord *Epoch                    `json:"EpochOfLastBackupRecord,omitempty"`
	LsnOfLastBackupRecord   *string                   `json:"LsnOfLastBackupRecord,omitempty"`
	CreationTimeUtc         *date.Time                `json:"CreationTimeUtc,omitempty"`
	ServiceManifestVersion  *string                   `json:"ServiceManifestVersion,omitempty"`
	FailureError            *FabricErrorError         `json:"FailureError,omitempty"`
}

// UnmarshalJSON decodes b including its partition information.
func (b *BackupInfo) UnmarshalJSON(data []byte) (err error) {
	type alias BackupInfo
	var v struct {
		alias
		PartitionInformation json.RawMessage `json:"PartitionInformation"`
	}
	if err = json.Unmarshal(data, &v); err != nil {
		return err
	}

	*b = BackupInfo(v.alias)
	if len(v.PartitionInformation) > 0 {
		b.PartitionInformation, err = UnmarshalPartitionInformation(v.PartitionInformation)
	}
	return err
}

// PagedBackupInfoList is the list of backups. The list is paged when all
// of the results cannot fit in a single message.
type PagedBackupInfoList struct {
	ContinuationToken *string      `json:"ContinuationToken,omitempty"`
	Items             []BackupInfo `json:"Items,omitempty"`
}

// BackupProgressInfo describes the progress of a partition's backup.
type BackupProgressInfo struct {
	BackupState             *BackupState      `json:"BackupState,omitempty"`
	TimeStampUtc            *date.Time        `json:"TimeStampUtc,omitempty"`
	BackupID                *string           `json:"BackupId,omitempty"`
	BackupLocation          *string           `json:"BackupLocation,omitempty"`
	EpochOfLastBackupRecord *Epoch            `json:"EpochOfLastBackupRecord,omitempty"`
	LsnOfLastBackupRecord   *string           `json:"LsnOfLastBackupRecord,omitempty"`
	FailureError            *FabricErrorError `json:"FailureError,omitempty"`
}

// BackupPartitionDescription describes the parameters for triggering
// partition's backup. Without BackupStorage the store of the partition's
// backup policy is used.
type BackupPartitionDescription struct {
	BackupStorage BasicBackupStorageDescription `json:"BackupStorage,omitempty"`
}

// UnmarshalJSON decodes b including its backup store.
func (b *BackupPartitionDescription) UnmarshalJSON(data []byte) (err error) {
	var v struct {
		BackupStorage json.RawMessage `json:"BackupStorage"`
	}
	if err = json.Unmarshal(data, &v); err != nil {
		return err
	}

	b.BackupStorage = nil
	if len(v.BackupStorage) > 0 {
		b.BackupStorage, err = UnmarshalBackupStorageDescription(v.BackupStorage)
	}
	return err
}

// RestorePartitionDescription specifies the parameters needed to trigger a
// restore of a specific partition.
type RestorePartitionDescription struct {
	BackupID       string                        `json:"BackupId"`
	BackupLocation string                        `json:"BackupLocation"`
	BackupStorage  BasicBackupStorageDescription `json:"BackupStorage,omitempty"`
}

// NewRestorePartitionDescription returns a description with its required
// fields set.
func NewRestorePartitionDescription(backupID, backupLocation string) *RestorePartitionDescription {
	return &RestorePartitionDescription{
		BackupID:       backupID,
		BackupLocation: backupLocation,
	}
}

// UnmarshalJSON decodes r including its backup store.
func (r *RestorePartitionDescription) UnmarshalJSON(data []byte) (err error) {
	type alias RestorePartitionDescription
	var v struct {
		alias
		BackupStorage json.RawMessage `json:"BackupStorage"`
	}
	if err = json.Unmarshal(data, &v); err != nil {
		return err
	}

	*r = RestorePartitionDescription(v.alias)
	if len(v.BackupStorage) > 0 {
		r.BackupStorage, err = UnmarshalBackupStorageDescription(v.BackupStorage)
	}
	return err
}

// RestoreProgressInfo describes the progress of a restore operation on a
// partition.
type RestoreProgressInfo struct {
	RestoreState  *RestoreState     `json:"RestoreState,omitempty"`
	TimeStampUtc  *date.Time        `json:"TimeStampUtc,omitempty"`
	RestoredEpoch *Epoch            `json:"RestoredEpoch,omitempty"`
	RestoredLsn   *string           `json:"RestoredLsn,omitempty"`
	FailureError  *FabricErrorError `json:"FailureError,omitempty"`
}

// EnableBackupDescription specifies the parameters needed to enable
// periodic backup.
type EnableBackupDescription struct {
	BackupPolicyName string `json:"BackupPolicyName"`
}

// NewEnableBackupDescription returns a description with its required
// fields set.
func NewEnableBackupDescription(backupPolicyName string) *EnableBackupDescription {
	return &EnableBackupDescription{
		BackupPolicyName: backupPolicyName,
	}
}

// DisableBackupDescription specifies the parameters needed to disable
// periodic backup.
type DisableBackupDescription struct {
	CleanBackup bool `json:"CleanBackup"`
}

// BackupSuspensionInfo describes the backup suspension details.
type BackupSuspensionInfo struct {
	IsSuspended             *bool                  `json:"IsSuspended,omitempty"`
	SuspensionInheritedFrom *BackupSuspensionScope `json:"SuspensionInheritedFrom,omitempty"`
}

// BasicBackupConfigurationInfo is implemented by the backup configuration
// of every entity kind.
type BasicBackupConfigurationInfo interface {
	GetBackupConfigurationInfo() *BackupConfigurationInfo
}

// BackupConfigurationInfo describes the backup configuration information.
type BackupConfigurationInfo struct {
	Kind                BackupEntityKind      `json:"Kind"`
	PolicyName          *string               `json:"PolicyName,omitempty"`
	PolicyInheritedFrom *BackupPolicyScope    `json:"PolicyInheritedFrom,omitempty"`
	SuspensionInfo      *BackupSuspensionInfo `json:"SuspensionInfo,omitempty"`
}

// GetBackupConfigurationInfo returns b.
func (b *BackupConfigurationInfo) GetBackupConfigurationInfo() *BackupConfigurationInfo {
	return b
}

// ApplicationBackupConfigurationInfo is the backup configuration
// information for a specific Service Fabric application.
type ApplicationBackupConfigurationInfo struct {
	BackupConfigurationInfo
	ApplicationName *string `json:"ApplicationName,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (a ApplicationBackupConfigurationInfo) MarshalJSON() ([]byte, error) {
	type alias ApplicationBackupConfigurationInfo
	a.Kind = BackupEntityKindApplication
	return json.Marshal(alias(a))
}

// ServiceBackupConfigurationInfo is the backup configuration information
// for a specific Service Fabric service.
type ServiceBackupConfigurationInfo struct {
	BackupConfigurationInfo
	ServiceName *string `json:"ServiceName,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (s ServiceBackupConfigurationInfo) MarshalJSON() ([]byte, error) {
	type alias ServiceBackupConfigurationInfo
	s.Kind = BackupEntityKindService
	return json.Marshal(alias(s))
}

// PartitionBackupConfigurationInfo is the backup configuration information,
// for a specific partition.
type PartitionBackupConfigurationInfo struct {
	BackupConfigurationInfo
	ServiceName *string `json:"ServiceName,omitempty"`
	PartitionID *string `json:"PartitionId,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (p PartitionBackupConfigurationInfo) MarshalJSON() ([]byte, error) {
	type alias PartitionBackupConfigurationInfo
	p.Kind = BackupEntityKindPartition
	return json.Marshal(alias(p))
}

var backupConfigurationInfoFactories = map[string]func() BasicBackupConfigurationInfo{
	string(BackupEntityKindApplication): func() BasicBackupConfigurationInfo {
		return &ApplicationBackupConfigurationInfo{}
	},
	string(BackupEntityKindService): func() BasicBackupConfigurationInfo {
		return &ServiceBackupConfigurationInfo{}
	},
	string(BackupEntityKindPartition): func() BasicBackupConfigurationInfo {
		return &PartitionBackupConfigurationInfo{}
	},
}

func newBackupConfigurationInfo() BasicBackupConfigurationInfo {
	return &BackupConfigurationInfo{}
}

// UnmarshalBackupConfigurationInfo decodes backup configuration by its
// Kind.
func UnmarshalBackupConfigurationInfo(b []byte) (BasicBackupConfigurationInfo, error) {
	return api.UnmarshalPolymorphic(b, "Kind", backupConfigurationInfoFactories, newBackupConfigurationInfo)
}

// PagedBackupConfigurationInfoList is the list of backup configuration
// information.
type PagedBackupConfigurationInfoList struct {
	ContinuationToken *string                        `json:"ContinuationToken,omitempty"`
	Items             []BasicBackupConfigurationInfo `json:"Items,omitempty"`
}

// UnmarshalJSON decodes each item by its Kind.
func (p *PagedBackupConfigurationInfoList) UnmarshalJSON(b []byte) (err error) {
	var v struct {
		ContinuationToken *string         `json:"ContinuationToken"`
		Items             json.RawMessage `json:"Items"`
	}
	if err = json.Unmarshal(b, &v); err != nil {
		return err
	}

	p.ContinuationToken = v.ContinuationToken
	p.Items = nil
	if len(v.Items) > 0 {
		p.Items, err = api.UnmarshalPolymorphicList(v.Items, "Kind", backupConfigurationInfoFactories, newBackupConfigurationInfo)
	}
	return err
}
