package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/gofrs/uuid"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// BaseClientAPI is the interface implemented by BaseClient
type BaseClientAPI interface {
	BackupPartition(ctx context.Context, partitionID string, backupPartitionDescription *v82.BackupPartitionDescription, backupTimeout *int32, timeout *int64) error
	CancelOperation(ctx context.Context, operationID uuid.UUID, force bool, timeout *int64) error
	CancelRepairTask(ctx context.Context, repairTaskCancelDescription v82.RepairTaskCancelDescription) (result v82.RepairTaskUpdateInfo, err error)
	CopyImageStoreContent(ctx context.Context, imageStoreCopyDescription v82.ImageStoreCopyDescription, timeout *int64) error
	CreateApplication(ctx context.Context, applicationDescription v82.ApplicationDescription, timeout *int64) error
	CreateBackupPolicy(ctx context.Context, backupPolicyDescription v82.BackupPolicyDescription, timeout *int64) error
	CreateRepairTask(ctx context.Context, repairTask v82.RepairTask) (result v82.RepairTaskUpdateInfo, err error)
	CreateService(ctx context.Context, applicationID string, serviceDescription v82.BasicServiceDescription, timeout *int64) error
	DeleteApplication(ctx context.Context, applicationID string, forceRemove *bool, timeout *int64) error
	DeleteBackupPolicy(ctx context.Context, backupPolicyName string, timeout *int64) error
	DeleteImageStoreContent(ctx context.Context, contentPath string, timeout *int64) error
	DeleteRepairTask(ctx context.Context, repairTaskDeleteDescription v82.RepairTaskDeleteDescription) error
	DeleteService(ctx context.Context, serviceID string, forceRemove *bool, timeout *int64) error
	DisableBackup(ctx context.Context, entity BackupEntity, disableBackupDescription *v82.DisableBackupDescription, timeout *int64) error
	DisableNode(ctx context.Context, nodeName string, deactivationIntentDescription v82.DeactivationIntentDescription, timeout *int64) error
	EnableBackup(ctx context.Context, entity BackupEntity, enableBackupDescription v82.EnableBackupDescription, timeout *int64) error
	EnableNode(ctx context.Context, nodeName string, timeout *int64) error
	ForceApproveRepairTask(ctx context.Context, repairTaskApproveDescription v82.RepairTaskApproveDescription) (result v82.RepairTaskUpdateInfo, err error)
	GetApplicationHealth(ctx context.Context, applicationID string, eventsHealthStateFilter *int32, timeout *int64) (result v82.ApplicationHealth, err error)
	GetApplicationInfo(ctx context.Context, applicationID string, timeout *int64) (result v82.ApplicationInfo, err error)
	GetApplicationInfoList(ctx context.Context, applicationTypeName string, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedApplicationInfoList, err error)
	GetApplicationLoadInfo(ctx context.Context, applicationID string, timeout *int64) (result v82.ApplicationLoadInfo, err error)
	GetApplicationNameInfo(ctx context.Context, serviceID string, timeout *int64) (result v82.ApplicationNameInfo, err error)
	GetApplicationTypeInfoList(ctx context.Context, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedApplicationTypeInfoList, err error)
	GetApplicationTypeInfoListByName(ctx context.Context, applicationTypeName string, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedApplicationTypeInfoList, err error)
	GetApplicationUpgrade(ctx context.Context, applicationID string, timeout *int64) (result v82.ApplicationUpgradeProgressInfo, err error)
	GetBackupConfigurationInfo(ctx context.Context, entity BackupEntity, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedBackupConfigurationInfoList, err error)
	GetBackupList(ctx context.Context, entity BackupEntity, latest *bool, startDateTimeFilter *date.Time, endDateTimeFilter *date.Time, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedBackupInfoList, err error)
	GetBackupPolicyByName(ctx context.Context, backupPolicyName string, timeout *int64) (result v82.BackupPolicyDescription, err error)
	GetBackupPolicyList(ctx context.Context, continuationToken string, maxResults *int64, timeout *int64) (result v82.PagedBackupPolicyDescriptionList, err error)
	GetChaos(ctx context.Context, timeout *int64) (result v82.Chaos, err error)
	GetChaosEvents(ctx context.Context, continuationToken string, startTimeUtc string, endTimeUtc string, maxResults *int64, timeout *int64) (result v82.ChaosEventsSegment, err error)
	GetChaosSchedule(ctx context.Context, timeout *int64) (result v82.ChaosScheduleDescription, err error)
	GetClusterConfiguration(ctx context.Context, configurationAPIVersion string, timeout *int64) (result v82.ClusterConfiguration, err error)
	GetClusterHealth(ctx context.Context, eventsHealthStateFilter *int32, timeout *int64) (result v82.ClusterHealth, err error)
	GetClusterHealthUsingPolicy(ctx context.Context, policies v82.ClusterHealthPolicies, timeout *int64) (result v82.ClusterHealth, err error)
	GetClusterLoad(ctx context.Context, timeout *int64) (result v82.ClusterLoadInfo, err error)
	GetClusterManifest(ctx context.Context, timeout *int64) (result v82.ClusterManifest, err error)
	GetClusterUpgradeProgress(ctx context.Context, timeout *int64) (result v82.ClusterUpgradeProgressObject, err error)
	GetClusterVersion(ctx context.Context, timeout *int64) (result v82.ClusterVersion, err error)
	GetContainerLogsDeployedOnNode(ctx context.Context, nodeName string, applicationID string, serviceManifestName string, codePackageName string, tail string, previous *bool, timeout *int64) (result v82.ContainerLogs, err error)
	GetDataLossProgress(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, timeout *int64) (result v82.PartitionDataLossProgress, err error)
	GetDeployedApplicationInfo(ctx context.Context, nodeName string, applicationID string, timeout *int64) (result v82.DeployedApplicationInfo, err error)
	GetFaultOperationList(ctx context.Context, typeFilter int32, stateFilter int32, timeout *int64) (result []v82.OperationStatus, err error)
	GetImageStoreContent(ctx context.Context, contentPath string, timeout *int64) (result v82.ImageStoreContent, err error)
	GetImageStoreRootContent(ctx context.Context, timeout *int64) (result v82.ImageStoreContent, err error)
	GetNodeHealth(ctx context.Context, nodeName string, eventsHealthStateFilter *int32, timeout *int64) (result v82.NodeHealth, err error)
	GetNodeInfo(ctx context.Context, nodeName string, timeout *int64) (result v82.NodeInfo, err error)
	GetNodeInfoList(ctx context.Context, continuationToken string, nodeStatusFilter string, maxResults *int64, timeout *int64) (result v82.PagedNodeInfoList, err error)
	GetNodeLoadInfo(ctx context.Context, nodeName string, timeout *int64) (result v82.NodeLoadInfo, err error)
	GetNodeTransitionProgress(ctx context.Context, nodeName string, operationID uuid.UUID, timeout *int64) (result v82.NodeTransitionProgress, err error)
	GetPartitionBackupConfigurationInfo(ctx context.Context, partitionID string, timeout *int64) (result v82.BasicBackupConfigurationInfo, err error)
	GetPartitionBackupProgress(ctx context.Context, partitionID string, timeout *int64) (result v82.BackupProgressInfo, err error)
	GetPartitionHealth(ctx context.Context, partitionID string, eventsHealthStateFilter *int32, timeout *int64) (result v82.PartitionHealth, err error)
	GetPartitionInfo(ctx context.Context, partitionID string, timeout *int64) (result v82.BasicServicePartitionInfo, err error)
	GetPartitionInfoList(ctx context.Context, serviceID string, continuationToken string, timeout *int64) (result v82.PagedServicePartitionInfoList, err error)
	GetPartitionLoadInformation(ctx context.Context, partitionID string, timeout *int64) (result v82.PartitionLoadInformation, err error)
	GetPartitionRestartProgress(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, timeout *int64) (result v82.PartitionRestartProgress, err error)
	GetPartitionRestoreProgress(ctx context.Context, partitionID string, timeout *int64) (result v82.RestoreProgressInfo, err error)
	GetQuorumLossProgress(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, timeout *int64) (result v82.PartitionQuorumLossProgress, err error)
	GetRepairTaskList(ctx context.Context, taskIDFilter string, stateFilter *int32, executorFilter string) (result []v82.RepairTask, err error)
	GetReplicaHealth(ctx context.Context, partitionID string, replicaID string, eventsHealthStateFilter *int32, timeout *int64) (result v82.BasicReplicaHealth, err error)
	GetReplicaInfo(ctx context.Context, partitionID string, replicaID string, timeout *int64) (result v82.BasicReplicaInfo, err error)
	GetReplicaInfoList(ctx context.Context, partitionID string, continuationToken string, timeout *int64) (result v82.PagedReplicaInfoList, err error)
	GetServiceDescription(ctx context.Context, serviceID string, timeout *int64) (result v82.BasicServiceDescription, err error)
	GetServiceHealth(ctx context.Context, serviceID string, eventsHealthStateFilter *int32, timeout *int64) (result v82.ServiceHealth, err error)
	GetServiceInfo(ctx context.Context, applicationID string, serviceID string, timeout *int64) (result v82.BasicServiceInfo, err error)
	GetServiceInfoList(ctx context.Context, applicationID string, serviceTypeName string, continuationToken string, timeout *int64) (result v82.PagedServiceInfoList, err error)
	GetServiceNameInfo(ctx context.Context, partitionID string, timeout *int64) (result v82.ServiceNameInfo, err error)
	InvokeContainerAPI(ctx context.Context, nodeName string, applicationID string, serviceManifestName string, codePackageName string, codePackageInstanceID string, containerAPIRequestBody v82.ContainerAPIRequestBody, timeout *int64) (result v82.ContainerAPIResponse, err error)
	MeshApplicationCreateOrUpdate(ctx context.Context, applicationResourceName string, applicationResourceDescription v82.ApplicationResourceDescription) (v82.ApplicationResourceDescription, error)
	MeshApplicationDelete(ctx context.Context, applicationResourceName string) error
	MeshApplicationGet(ctx context.Context, applicationResourceName string) (v82.ApplicationResourceDescription, error)
	MeshApplicationList(ctx context.Context) (v82.PagedApplicationResourceDescriptionList, error)
	MeshCodePackageGetContainerLogs(ctx context.Context, applicationResourceName string, serviceResourceName string, replicaName string, codePackageName string, tail *int32) (result v82.ContainerLogs, err error)
	MeshGatewayCreateOrUpdate(ctx context.Context, gatewayResourceName string, gatewayResourceDescription v82.GatewayResourceDescription) (v82.GatewayResourceDescription, error)
	MeshGatewayDelete(ctx context.Context, gatewayResourceName string) error
	MeshGatewayGet(ctx context.Context, gatewayResourceName string) (v82.GatewayResourceDescription, error)
	MeshGatewayList(ctx context.Context) (v82.PagedGatewayResourceDescriptionList, error)
	MeshNetworkCreateOrUpdate(ctx context.Context, networkResourceName string, networkResourceDescription v82.NetworkResourceDescription) (v82.NetworkResourceDescription, error)
	MeshNetworkDelete(ctx context.Context, networkResourceName string) error
	MeshNetworkGet(ctx context.Context, networkResourceName string) (v82.NetworkResourceDescription, error)
	MeshNetworkList(ctx context.Context) (v82.PagedNetworkResourceDescriptionList, error)
	MeshSecretCreateOrUpdate(ctx context.Context, secretResourceName string, secretResourceDescription v82.SecretResourceDescription) (v82.SecretResourceDescription, error)
	MeshSecretDelete(ctx context.Context, secretResourceName string) error
	MeshSecretGet(ctx context.Context, secretResourceName string) (v82.SecretResourceDescription, error)
	MeshSecretList(ctx context.Context) (v82.PagedSecretResourceDescriptionList, error)
	MeshSecretValueAddValue(ctx context.Context, secretResourceName string, secretValueResourceName string, secretValueResourceDescription v82.SecretValueResourceDescription) (v82.SecretValueResourceDescription, error)
	MeshSecretValueDelete(ctx context.Context, secretResourceName string, secretValueResourceName string) error
	MeshSecretValueGet(ctx context.Context, secretResourceName string, secretValueResourceName string) (v82.SecretValueResourceDescription, error)
	MeshSecretValueList(ctx context.Context, secretResourceName string) (v82.PagedSecretValueResourceDescriptionList, error)
	MeshSecretValueShow(ctx context.Context, secretResourceName string, secretValueResourceName string) (result v82.SecretValue, err error)
	MeshServiceGet(ctx context.Context, applicationResourceName string, serviceResourceName string) (v82.ServiceResourceDescription, error)
	MeshServiceList(ctx context.Context, applicationResourceName string) (v82.PagedServiceResourceDescriptionList, error)
	MeshVolumeCreateOrUpdate(ctx context.Context, volumeResourceName string, volumeResourceDescription v82.VolumeResourceDescription) (v82.VolumeResourceDescription, error)
	MeshVolumeDelete(ctx context.Context, volumeResourceName string) error
	MeshVolumeGet(ctx context.Context, volumeResourceName string) (v82.VolumeResourceDescription, error)
	MeshVolumeList(ctx context.Context) (v82.PagedVolumeResourceDescriptionList, error)
	PostChaosSchedule(ctx context.Context, chaosSchedule v82.ChaosScheduleDescription, timeout *int64) error
	ProvisionApplicationType(ctx context.Context, provisionApplicationTypeDescription v82.BasicProvisionApplicationTypeDescription, timeout *int64) error
	ProvisionCluster(ctx context.Context, provisionFabricDescription v82.ProvisionFabricDescription, timeout *int64) error
	RecoverAllPartitions(ctx context.Context, timeout *int64) error
	RecoverPartition(ctx context.Context, partitionID string, timeout *int64) error
	RemoveNodeState(ctx context.Context, nodeName string, timeout *int64) error
	RemoveReplica(ctx context.Context, nodeName string, partitionID string, replicaID string, forceRemove *bool, timeout *int64) error
	ReportApplicationHealth(ctx context.Context, applicationID string, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error
	ReportClusterHealth(ctx context.Context, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error
	ReportNodeHealth(ctx context.Context, nodeName string, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error
	ReportPartitionHealth(ctx context.Context, partitionID string, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error
	ReportReplicaHealth(ctx context.Context, partitionID string, replicaID string, serviceKind v82.ReplicaHealthReportServiceKind, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error
	ReportServiceHealth(ctx context.Context, serviceID string, healthInformation v82.HealthInformation, immediate *bool, timeout *int64) error
	RestartNode(ctx context.Context, nodeName string, restartNodeDescription v82.RestartNodeDescription, timeout *int64) error
	RestartReplica(ctx context.Context, nodeName string, partitionID string, replicaID string, timeout *int64) error
	RestorePartition(ctx context.Context, partitionID string, restorePartitionDescription v82.RestorePartitionDescription, restoreTimeout *int32, timeout *int64) error
	ResumeApplicationUpgrade(ctx context.Context, applicationID string, resumeApplicationUpgradeDescription v82.ResumeApplicationUpgradeDescription, timeout *int64) error
	ResumeBackup(ctx context.Context, entity BackupEntity, timeout *int64) error
	ResumeClusterUpgrade(ctx context.Context, resumeClusterUpgradeDescription v82.ResumeClusterUpgradeDescription, timeout *int64) error
	RollbackApplicationUpgrade(ctx context.Context, applicationID string, timeout *int64) error
	RollbackClusterUpgrade(ctx context.Context, timeout *int64) error
	StartApplicationUpgrade(ctx context.Context, applicationID string, applicationUpgradeDescription v82.ApplicationUpgradeDescription, timeout *int64) error
	StartChaos(ctx context.Context, chaosParameters v82.ChaosParameters, timeout *int64) error
	StartClusterUpgrade(ctx context.Context, startClusterUpgradeDescription v82.StartClusterUpgradeDescription, timeout *int64) error
	StartDataLoss(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, dataLossMode v82.DataLossMode, timeout *int64) error
	StartNodeTransition(ctx context.Context, nodeName string, operationID uuid.UUID, nodeTransitionType v82.NodeTransitionType, nodeInstanceID string, stopDurationInSeconds int32, timeout *int64) error
	StartPartitionRestart(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, restartPartitionMode v82.RestartPartitionMode, timeout *int64) error
	StartQuorumLoss(ctx context.Context, serviceID string, partitionID string, operationID uuid.UUID, quorumLossMode v82.QuorumLossMode, quorumLossDuration int32, timeout *int64) error
	StopChaos(ctx context.Context, timeout *int64) error
	SuspendBackup(ctx context.Context, entity BackupEntity, timeout *int64) error
	UnprovisionApplicationType(ctx context.Context, applicationTypeName string, unprovisionApplicationTypeDescriptionInfo v82.UnprovisionApplicationTypeDescriptionInfo, timeout *int64) error
	UnprovisionCluster(ctx context.Context, unprovisionFabricDescription v82.UnprovisionFabricDescription, timeout *int64) error
	UpdateApplicationUpgrade(ctx context.Context, applicationID string, applicationUpgradeUpdateDescription v82.ApplicationUpgradeUpdateDescription, timeout *int64) error
	UpdateBackupPolicy(ctx context.Context, backupPolicyName string, backupPolicyDescription v82.BackupPolicyDescription, timeout *int64) error
	UpdateRepairExecutionState(ctx context.Context, repairTask v82.RepairTask) (result v82.RepairTaskUpdateInfo, err error)
	UpdateRepairTaskHealthPolicy(ctx context.Context, repairTaskUpdateHealthPolicyDescription v82.RepairTaskUpdateHealthPolicyDescription) (result v82.RepairTaskUpdateInfo, err error)
	BaseClientAddons
}

// BaseClientAddons contains addons for BaseClient
type BaseClientAddons interface {
	ListAllApplicationTypes(ctx context.Context) ([]v82.ApplicationTypeInfo, error)
	ListAllApplications(ctx context.Context, applicationTypeName string) ([]v82.ApplicationInfo, error)
	ListAllBackupPolicies(ctx context.Context) ([]v82.BackupPolicyDescription, error)
	ListAllChaosEvents(ctx context.Context, startTimeUtc string, endTimeUtc string) ([]v82.ChaosEventWrapper, error)
	ListAllNodes(ctx context.Context, nodeStatusFilter string) ([]v82.NodeInfo, error)
	ListAllPartitions(ctx context.Context, serviceID string) ([]v82.BasicServicePartitionInfo, error)
	ListAllReplicas(ctx context.Context, partitionID string) ([]v82.BasicReplicaInfo, error)
	ListAllServices(ctx context.Context, applicationID string) ([]v82.BasicServiceInfo, error)
	ListServicesForApplications(ctx context.Context, applicationIDs []string, concurrency int) (map[string][]v82.BasicServiceInfo, error)
}
