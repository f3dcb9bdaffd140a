package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// HealthState enumerates the health state of a Service Fabric entity.
type HealthState string

const (
	HealthStateInvalid HealthState = "Invalid"
	HealthStateOk      HealthState = "Ok"
	HealthStateWarning HealthState = "Warning"
	HealthStateError   HealthState = "Error"
	HealthStateUnknown HealthState = "Unknown"
)

// PossibleHealthStateValues returns the values of HealthState known to this client.
func PossibleHealthStateValues() []HealthState {
	return []HealthState{
		HealthStateInvalid,
		HealthStateOk,
		HealthStateWarning,
		HealthStateError,
		HealthStateUnknown,
	}
}

// IsKnown reports whether h is one of PossibleHealthStateValues.
func (h HealthState) IsKnown() bool {
	return api.IsKnown(h, PossibleHealthStateValues())
}

// HealthEvaluationKind enumerates the kind of a health evaluation.
type HealthEvaluationKind string

const (
	HealthEvaluationKindInvalid                           HealthEvaluationKind = "Invalid"
	HealthEvaluationKindEvent                             HealthEvaluationKind = "Event"
	HealthEvaluationKindReplicas                          HealthEvaluationKind = "Replicas"
	HealthEvaluationKindPartitions                        HealthEvaluationKind = "Partitions"
	HealthEvaluationKindDeployedServicePackages           HealthEvaluationKind = "DeployedServicePackages"
	HealthEvaluationKindDeployedApplications              HealthEvaluationKind = "DeployedApplications"
	HealthEvaluationKindServices                          HealthEvaluationKind = "Services"
	HealthEvaluationKindNodes                             HealthEvaluationKind = "Nodes"
	HealthEvaluationKindApplications                      HealthEvaluationKind = "Applications"
	HealthEvaluationKindSystemApplication                 HealthEvaluationKind = "SystemApplication"
	HealthEvaluationKindUpgradeDomainDeployedApplications HealthEvaluationKind = "UpgradeDomainDeployedApplications"
	HealthEvaluationKindUpgradeDomainNodes                HealthEvaluationKind = "UpgradeDomainNodes"
	HealthEvaluationKindReplica                           HealthEvaluationKind = "Replica"
	HealthEvaluationKindPartition                         HealthEvaluationKind = "Partition"
	HealthEvaluationKindDeployedServicePackage            HealthEvaluationKind = "DeployedServicePackage"
	HealthEvaluationKindDeployedApplication               HealthEvaluationKind = "DeployedApplication"
	HealthEvaluationKindService                           HealthEvaluationKind = "Service"
	HealthEvaluationKindNode                              HealthEvaluationKind = "Node"
	HealthEvaluationKindApplication                       HealthEvaluationKind = "Application"
	HealthEvaluationKindDeltaNodesCheck                   HealthEvaluationKind = "DeltaNodesCheck"
	HealthEvaluationKindUpgradeDomainDeltaNodesCheck      HealthEvaluationKind = "UpgradeDomainDeltaNodesCheck"
	HealthEvaluationKindApplicationTypeApplications       HealthEvaluationKind = "ApplicationTypeApplications"
	HealthEvaluationKindNodeTypeNodes                     HealthEvaluationKind = "NodeTypeNodes"
)

// PossibleHealthEvaluationKindValues returns the values of HealthEvaluationKind known to this client.
func PossibleHealthEvaluationKindValues() []HealthEvaluationKind {
	return []HealthEvaluationKind{
		HealthEvaluationKindInvalid,
		HealthEvaluationKindEvent,
		HealthEvaluationKindReplicas,
		HealthEvaluationKindPartitions,
		HealthEvaluationKindDeployedServicePackages,
		HealthEvaluationKindDeployedApplications,
		HealthEvaluationKindServices,
		HealthEvaluationKindNodes,
		HealthEvaluationKindApplications,
		HealthEvaluationKindSystemApplication,
		HealthEvaluationKindUpgradeDomainDeployedApplications,
		HealthEvaluationKindUpgradeDomainNodes,
		HealthEvaluationKindReplica,
		HealthEvaluationKindPartition,
		HealthEvaluationKindDeployedServicePackage,
		HealthEvaluationKindDeployedApplication,
		HealthEvaluationKindService,
		HealthEvaluationKindNode,
		HealthEvaluationKindApplication,
		HealthEvaluationKindDeltaNodesCheck,
		HealthEvaluationKindUpgradeDomainDeltaNodesCheck,
		HealthEvaluationKindApplicationTypeApplications,
		HealthEvaluationKindNodeTypeNodes,
	}
}

// IsKnown reports whether h is one of PossibleHealthEvaluationKindValues.
func (h HealthEvaluationKind) IsKnown() bool {
	return api.IsKnown(h, PossibleHealthEvaluationKindValues())
}

// EntityKind enumerates the entity kind of health statistics.
type EntityKind string

const (
	EntityKindInvalid                EntityKind = "Invalid"
	EntityKindNode                   EntityKind = "Node"
	EntityKindPartition              EntityKind = "Partition"
	EntityKindService                EntityKind = "Service"
	EntityKindApplication            EntityKind = "Application"
	EntityKindReplica                EntityKind = "Replica"
	EntityKindDeployedApplication    EntityKind = "DeployedApplication"
	EntityKindDeployedServicePackage EntityKind = "DeployedServicePackage"
	EntityKindCluster                EntityKind = "Cluster"
)

// PossibleEntityKindValues returns the values of EntityKind known to this client.
func PossibleEntityKindValues() []EntityKind {
	return []EntityKind{
		EntityKindInvalid,
		EntityKindNode,
		EntityKindPartition,
		EntityKindService,
		EntityKindApplication,
		EntityKindReplica,
		EntityKindDeployedApplication,
		EntityKindDeployedServicePackage,
		EntityKindCluster,
	}
}

// IsKnown reports whether e is one of PossibleEntityKindValues.
func (e EntityKind) IsKnown() bool {
	return api.IsKnown(e, PossibleEntityKindValues())
}

// NodeStatus enumerates the status of a node.
type NodeStatus string

const (
	NodeStatusInvalid   NodeStatus = "Invalid"
	NodeStatusUp        NodeStatus = "Up"
	NodeStatusDown      NodeStatus = "Down"
	NodeStatusEnabling  NodeStatus = "Enabling"
	NodeStatusDisabling NodeStatus = "Disabling"
	NodeStatusDisabled  NodeStatus = "Disabled"
	NodeStatusUnknown   NodeStatus = "Unknown"
	NodeStatusRemoved   NodeStatus = "Removed"
)

// PossibleNodeStatusValues returns the values of NodeStatus known to this client.
func PossibleNodeStatusValues() []NodeStatus {
	return []NodeStatus{
		NodeStatusInvalid,
		NodeStatusUp,
		NodeStatusDown,
		NodeStatusEnabling,
		NodeStatusDisabling,
		NodeStatusDisabled,
		NodeStatusUnknown,
		NodeStatusRemoved,
	}
}

// IsKnown reports whether n is one of PossibleNodeStatusValues.
func (n NodeStatus) IsKnown() bool {
	return api.IsKnown(n, PossibleNodeStatusValues())
}

// NodeDeactivationIntent enumerates the intent or reason for deactivating a node.
type NodeDeactivationIntent string

const (
	NodeDeactivationIntentInvalid    NodeDeactivationIntent = "Invalid"
	NodeDeactivationIntentPause      NodeDeactivationIntent = "Pause"
	NodeDeactivationIntentRestart    NodeDeactivationIntent = "Restart"
	NodeDeactivationIntentRemoveData NodeDeactivationIntent = "RemoveData"
	NodeDeactivationIntentRemoveNode NodeDeactivationIntent = "RemoveNode"
)

// PossibleNodeDeactivationIntentValues returns the values of NodeDeactivationIntent known to this client.
func PossibleNodeDeactivationIntentValues() []NodeDeactivationIntent {
	return []NodeDeactivationIntent{
		NodeDeactivationIntentInvalid,
		NodeDeactivationIntentPause,
		NodeDeactivationIntentRestart,
		NodeDeactivationIntentRemoveData,
		NodeDeactivationIntentRemoveNode,
	}
}

// IsKnown reports whether n is one of PossibleNodeDeactivationIntentValues.
func (n NodeDeactivationIntent) IsKnown() bool {
	return api.IsKnown(n, PossibleNodeDeactivationIntentValues())
}

// NodeDeactivationStatus enumerates the status of a node deactivation operation.
type NodeDeactivationStatus string

const (
	NodeDeactivationStatusNone                  NodeDeactivationStatus = "None"
	NodeDeactivationStatusSafetyCheckInProgress NodeDeactivationStatus = "SafetyCheckInProgress"
	NodeDeactivationStatusSafetyCheckComplete   NodeDeactivationStatus = "SafetyCheckComplete"
	NodeDeactivationStatusCompleted             NodeDeactivationStatus = "Completed"
)

// PossibleNodeDeactivationStatusValues returns the values of NodeDeactivationStatus known to this client.
func PossibleNodeDeactivationStatusValues() []NodeDeactivationStatus {
	return []NodeDeactivationStatus{
		NodeDeactivationStatusNone,
		NodeDeactivationStatusSafetyCheckInProgress,
		NodeDeactivationStatusSafetyCheckComplete,
		NodeDeactivationStatusCompleted,
	}
}

// IsKnown reports whether n is one of PossibleNodeDeactivationStatusValues.
func (n NodeDeactivationStatus) IsKnown() bool {
	return api.IsKnown(n, PossibleNodeDeactivationStatusValues())
}

// NodeDeactivationTaskType enumerates the type of the task that performed a node deactivation.
type NodeDeactivationTaskType string

const (
	NodeDeactivationTaskTypeInvalid        NodeDeactivationTaskType = "Invalid"
	NodeDeactivationTaskTypeInfrastructure NodeDeactivationTaskType = "Infrastructure"
	NodeDeactivationTaskTypeRepair         NodeDeactivationTaskType = "Repair"
	NodeDeactivationTaskTypeClient         NodeDeactivationTaskType = "Client"
)

// PossibleNodeDeactivationTaskTypeValues returns the values of NodeDeactivationTaskType known to this client.
func PossibleNodeDeactivationTaskTypeValues() []NodeDeactivationTaskType {
	return []NodeDeactivationTaskType{
		NodeDeactivationTaskTypeInvalid,
		NodeDeactivationTaskTypeInfrastructure,
		NodeDeactivationTaskTypeRepair,
		NodeDeactivationTaskTypeClient,
	}
}

// IsKnown reports whether n is one of PossibleNodeDeactivationTaskTypeValues.
func (n NodeDeactivationTaskType) IsKnown() bool {
	return api.IsKnown(n, PossibleNodeDeactivationTaskTypeValues())
}

// CreateFabricDump enumerates whether a fabric dump is created when restarting a node.
type CreateFabricDump string

const (
	CreateFabricDumpFalse CreateFabricDump = "False"
	CreateFabricDumpTrue  CreateFabricDump = "True"
)

// PossibleCreateFabricDumpValues returns the values of CreateFabricDump known to this client.
func PossibleCreateFabricDumpValues() []CreateFabricDump {
	return []CreateFabricDump{
		CreateFabricDumpFalse,
		CreateFabricDumpTrue,
	}
}

// IsKnown reports whether c is one of PossibleCreateFabricDumpValues.
func (c CreateFabricDump) IsKnown() bool {
	return api.IsKnown(c, PossibleCreateFabricDumpValues())
}

// ApplicationStatus enumerates the status of an application.
type ApplicationStatus string

const (
	ApplicationStatusInvalid   ApplicationStatus = "Invalid"
	ApplicationStatusReady     ApplicationStatus = "Ready"
	ApplicationStatusUpgrading ApplicationStatus = "Upgrading"
	ApplicationStatusCreating  ApplicationStatus = "Creating"
	ApplicationStatusDeleting  ApplicationStatus = "Deleting"
	ApplicationStatusFailed    ApplicationStatus = "Failed"
)

// PossibleApplicationStatusValues returns the values of ApplicationStatus known to this client.
func PossibleApplicationStatusValues() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationStatusInvalid,
		ApplicationStatusReady,
		ApplicationStatusUpgrading,
		ApplicationStatusCreating,
		ApplicationStatusDeleting,
		ApplicationStatusFailed,
	}
}

// IsKnown reports whether a is one of PossibleApplicationStatusValues.
func (a ApplicationStatus) IsKnown() bool {
	return api.IsKnown(a, PossibleApplicationStatusValues())
}

// ApplicationDefinitionKind enumerates the mechanism used to define an application.
type ApplicationDefinitionKind string

const (
	ApplicationDefinitionKindInvalid                             ApplicationDefinitionKind = "Invalid"
	ApplicationDefinitionKindServiceFabricApplicationDescription ApplicationDefinitionKind = "ServiceFabricApplicationDescription"
	ApplicationDefinitionKindCompose                             ApplicationDefinitionKind = "Compose"
)

// PossibleApplicationDefinitionKindValues returns the values of ApplicationDefinitionKind known to this client.
func PossibleApplicationDefinitionKindValues() []ApplicationDefinitionKind {
	return []ApplicationDefinitionKind{
		ApplicationDefinitionKindInvalid,
		ApplicationDefinitionKindServiceFabricApplicationDescription,
		ApplicationDefinitionKindCompose,
	}
}

// IsKnown reports whether a is one of PossibleApplicationDefinitionKindValues.
func (a ApplicationDefinitionKind) IsKnown() bool {
	return api.IsKnown(a, PossibleApplicationDefinitionKindValues())
}

// ApplicationTypeStatus enumerates the status of an application type.
type ApplicationTypeStatus string

const (
	ApplicationTypeStatusInvalid        ApplicationTypeStatus = "Invalid"
	ApplicationTypeStatusProvisioning   ApplicationTypeStatus = "Provisioning"
	ApplicationTypeStatusAvailable      ApplicationTypeStatus = "Available"
	ApplicationTypeStatusUnprovisioning ApplicationTypeStatus = "Unprovisioning"
	ApplicationTypeStatusFailed         ApplicationTypeStatus = "Failed"
)

// PossibleApplicationTypeStatusValues returns the values of ApplicationTypeStatus known to this client.
func PossibleApplicationTypeStatusValues() []ApplicationTypeStatus {
	return []ApplicationTypeStatus{
		ApplicationTypeStatusInvalid,
		ApplicationTypeStatusProvisioning,
		ApplicationTypeStatusAvailable,
		ApplicationTypeStatusUnprovisioning,
		ApplicationTypeStatusFailed,
	}
}

// IsKnown reports whether a is one of PossibleApplicationTypeStatusValues.
func (a ApplicationTypeStatus) IsKnown() bool {
	return api.IsKnown(a, PossibleApplicationTypeStatusValues())
}

// ApplicationTypeDefinitionKind enumerates the mechanism used to define an application type.
type ApplicationTypeDefinitionKind string

const (
	ApplicationTypeDefinitionKindInvalid                         ApplicationTypeDefinitionKind = "Invalid"
	ApplicationTypeDefinitionKindServiceFabricApplicationPackage ApplicationTypeDefinitionKind = "ServiceFabricApplicationPackage"
	ApplicationTypeDefinitionKindCompose                         ApplicationTypeDefinitionKind = "Compose"
)

// PossibleApplicationTypeDefinitionKindValues returns the values of ApplicationTypeDefinitionKind known to this client.
func PossibleApplicationTypeDefinitionKindValues() []ApplicationTypeDefinitionKind {
	return []ApplicationTypeDefinitionKind{
		ApplicationTypeDefinitionKindInvalid,
		ApplicationTypeDefinitionKindServiceFabricApplicationPackage,
		ApplicationTypeDefinitionKindCompose,
	}
}

// IsKnown reports whether a is one of PossibleApplicationTypeDefinitionKindValues.
func (a ApplicationTypeDefinitionKind) IsKnown() bool {
	return api.IsKnown(a, PossibleApplicationTypeDefinitionKindValues())
}

// ApplicationPackageCleanupPolicy enumerates the cleanup policy for an application package after provisioning.
type ApplicationPackageCleanupPolicy string

const (
	ApplicationPackageCleanupPolicyInvalid   ApplicationPackageCleanupPolicy = "Invalid"
	ApplicationPackageCleanupPolicyDefault   ApplicationPackageCleanupPolicy = "Default"
	ApplicationPackageCleanupPolicyAutomatic ApplicationPackageCleanupPolicy = "Automatic"
	ApplicationPackageCleanupPolicyManual    ApplicationPackageCleanupPolicy = "Manual"
)

// PossibleApplicationPackageCleanupPolicyValues returns the values of ApplicationPackageCleanupPolicy known to this client.
func PossibleApplicationPackageCleanupPolicyValues() []ApplicationPackageCleanupPolicy {
	return []ApplicationPackageCleanupPolicy{
		ApplicationPackageCleanupPolicyInvalid,
		ApplicationPackageCleanupPolicyDefault,
		ApplicationPackageCleanupPolicyAutomatic,
		ApplicationPackageCleanupPolicyManual,
	}
}

// IsKnown reports whether a is one of PossibleApplicationPackageCleanupPolicyValues.
func (a ApplicationPackageCleanupPolicy) IsKnown() bool {
	return api.IsKnown(a, PossibleApplicationPackageCleanupPolicyValues())
}

// ProvisionApplicationTypeKind enumerates the kind of application type registration or provision.
type ProvisionApplicationTypeKind string

const (
	ProvisionApplicationTypeKindInvalid        ProvisionApplicationTypeKind = "Invalid"
	ProvisionApplicationTypeKindImageStorePath ProvisionApplicationTypeKind = "ImageStorePath"
	ProvisionApplicationTypeKindExternalStore  ProvisionApplicationTypeKind = "ExternalStore"
)

// PossibleProvisionApplicationTypeKindValues returns the values of ProvisionApplicationTypeKind known to this client.
func PossibleProvisionApplicationTypeKindValues() []ProvisionApplicationTypeKind {
	return []ProvisionApplicationTypeKind{
		ProvisionApplicationTypeKindInvalid,
		ProvisionApplicationTypeKindImageStorePath,
		ProvisionApplicationTypeKindExternalStore,
	}
}

// IsKnown reports whether p is one of PossibleProvisionApplicationTypeKindValues.
func (p ProvisionApplicationTypeKind) IsKnown() bool {
	return api.IsKnown(p, PossibleProvisionApplicationTypeKindValues())
}

// UpgradeKind enumerates the kind of upgrade.
type UpgradeKind string

const (
	UpgradeKindInvalid UpgradeKind = "Invalid"
	UpgradeKindRolling UpgradeKind = "Rolling"
)

// PossibleUpgradeKindValues returns the values of UpgradeKind known to this client.
func PossibleUpgradeKindValues() []UpgradeKind {
	return []UpgradeKind{
		UpgradeKindInvalid,
		UpgradeKindRolling,
	}
}

// IsKnown reports whether u is one of PossibleUpgradeKindValues.
func (u UpgradeKind) IsKnown() bool {
	return api.IsKnown(u, PossibleUpgradeKindValues())
}

// UpgradeMode enumerates the mode used to monitor health during a rolling upgrade.
type UpgradeMode string

const (
	UpgradeModeInvalid             UpgradeMode = "Invalid"
	UpgradeModeUnmonitoredAuto     UpgradeMode = "UnmonitoredAuto"
	UpgradeModeUnmonitoredManual   UpgradeMode = "UnmonitoredManual"
	UpgradeModeMonitored           UpgradeMode = "Monitored"
	UpgradeModeUnmonitoredDeferred UpgradeMode = "UnmonitoredDeferred"
)

// PossibleUpgradeModeValues returns the values of UpgradeMode known to this client.
func PossibleUpgradeModeValues() []UpgradeMode {
	return []UpgradeMode{
		UpgradeModeInvalid,
		UpgradeModeUnmonitoredAuto,
		UpgradeModeUnmonitoredManual,
		UpgradeModeMonitored,
		UpgradeModeUnmonitoredDeferred,
	}
}

// IsKnown reports whether u is one of PossibleUpgradeModeValues.
func (u UpgradeMode) IsKnown() bool {
	return api.IsKnown(u, PossibleUpgradeModeValues())
}

// UpgradeSortOrder enumerates the order in which an upgrade proceeds through the cluster.
type UpgradeSortOrder string

const (
	UpgradeSortOrderInvalid                UpgradeSortOrder = "Invalid"
	UpgradeSortOrderDefault                UpgradeSortOrder = "Default"
	UpgradeSortOrderNumeric                UpgradeSortOrder = "Numeric"
	UpgradeSortOrderLexicographical        UpgradeSortOrder = "Lexicographical"
	UpgradeSortOrderReverseNumeric         UpgradeSortOrder = "ReverseNumeric"
	UpgradeSortOrderReverseLexicographical UpgradeSortOrder = "ReverseLexicographical"
)

// PossibleUpgradeSortOrderValues returns the values of UpgradeSortOrder known to this client.
func PossibleUpgradeSortOrderValues() []UpgradeSortOrder {
	return []UpgradeSortOrder{
		UpgradeSortOrderInvalid,
		UpgradeSortOrderDefault,
		UpgradeSortOrderNumeric,
		UpgradeSortOrderLexicographical,
		UpgradeSortOrderReverseNumeric,
		UpgradeSortOrderReverseLexicographical,
	}
}

// IsKnown reports whether u is one of PossibleUpgradeSortOrderValues.
func (u UpgradeSortOrder) IsKnown() bool {
	return api.IsKnown(u, PossibleUpgradeSortOrderValues())
}

// FailureAction enumerates the compensating action when a monitored upgrade encounters a policy violation.
type FailureAction string

const (
	FailureActionInvalid  FailureAction = "Invalid"
	FailureActionRollback FailureAction = "Rollback"
	FailureActionManual   FailureAction = "Manual"
)

// PossibleFailureActionValues returns the values of FailureAction known to this client.
func PossibleFailureActionValues() []FailureAction {
	return []FailureAction{
		FailureActionInvalid,
		FailureActionRollback,
		FailureActionManual,
	}
}

// IsKnown reports whether f is one of PossibleFailureActionValues.
func (f FailureAction) IsKnown() bool {
	return api.IsKnown(f, PossibleFailureActionValues())
}

// UpgradeState enumerates the state of an upgrade.
type UpgradeState string

const (
	UpgradeStateInvalid                  UpgradeState = "Invalid"
	UpgradeStateRollingBackInProgress    UpgradeState = "RollingBackInProgress"
	UpgradeStateRollingBackCompleted     UpgradeState = "RollingBackCompleted"
	UpgradeStateRollingForwardPending    UpgradeState = "RollingForwardPending"
	UpgradeStateRollingForwardInProgress UpgradeState = "RollingForwardInProgress"
	UpgradeStateRollingForwardCompleted  UpgradeState = "RollingForwardCompleted"
	UpgradeStateFailed                   UpgradeState = "Failed"
)

// PossibleUpgradeStateValues returns the values of UpgradeState known to this client.
func PossibleUpgradeStateValues() []UpgradeState {
	return []UpgradeState{
		UpgradeStateInvalid,
		UpgradeStateRollingBackInProgress,
		UpgradeStateRollingBackCompleted,
		UpgradeStateRollingForwardPending,
		UpgradeStateRollingForwardInProgress,
		UpgradeStateRollingForwardCompleted,
		UpgradeStateFailed,
	}
}

// IsKnown reports whether u is one of PossibleUpgradeStateValues.
func (u UpgradeState) IsKnown() bool {
	return api.IsKnown(u, PossibleUpgradeStateValues())
}

// UpgradeDomainState enumerates the state of an upgrade domain.
type UpgradeDomainState string

const (
	UpgradeDomainStateInvalid    UpgradeDomainState = "Invalid"
	UpgradeDomainStatePending    UpgradeDomainState = "Pending"
	UpgradeDomainStateInProgress UpgradeDomainState = "InProgress"
	UpgradeDomainStateCompleted  UpgradeDomainState = "Completed"
)

// PossibleUpgradeDomainStateValues returns the values of UpgradeDomainState known to this client.
func PossibleUpgradeDomainStateValues() []UpgradeDomainState {
	return []UpgradeDomainState{
		UpgradeDomainStateInvalid,
		UpgradeDomainStatePending,
		UpgradeDomainStateInProgress,
		UpgradeDomainStateCompleted,
	}
}

// IsKnown reports whether u is one of PossibleUpgradeDomainStateValues.
func (u UpgradeDomainState) IsKnown() bool {
	return api.IsKnown(u, PossibleUpgradeDomainStateValues())
}

// FailureReason enumerates the cause of an upgrade failure.
type FailureReason string

const (
	FailureReasonNone                  FailureReason = "None"
	FailureReasonInterrupted           FailureReason = "Interrupted"
	FailureReasonHealthCheck           FailureReason = "HealthCheck"
	FailureReasonUpgradeDomainTimeout  FailureReason = "UpgradeDomainTimeout"
	FailureReasonOverallUpgradeTimeout FailureReason = "OverallUpgradeTimeout"
)

// PossibleFailureReasonValues returns the values of FailureReason known to this client.
func PossibleFailureReasonValues() []FailureReason {
	return []FailureReason{
		FailureReasonNone,
		FailureReasonInterrupted,
		FailureReasonHealthCheck,
		FailureReasonUpgradeDomainTimeout,
		FailureReasonOverallUpgradeTimeout,
	}
}

// IsKnown reports whether f is one of PossibleFailureReasonValues.
func (f FailureReason) IsKnown() bool {
	return api.IsKnown(f, PossibleFailureReasonValues())
}

// ServiceKind enumerates the kind of service (stateless or stateful).
type ServiceKind string

const (
	ServiceKindInvalid   ServiceKind = "Invalid"
	ServiceKindStateless ServiceKind = "Stateless"
	ServiceKindStateful  ServiceKind = "Stateful"
)

// PossibleServiceKindValues returns the values of ServiceKind known to this client.
func PossibleServiceKindValues() []ServiceKind {
	return []ServiceKind{
		ServiceKindInvalid,
		ServiceKindStateless,
		ServiceKindStateful,
	}
}

// IsKnown reports whether s is one of PossibleServiceKindValues.
func (s ServiceKind) IsKnown() bool {
	return api.IsKnown(s, PossibleServiceKindValues())
}

// ServiceStatus enumerates the status of a service.
type ServiceStatus string

const (
	ServiceStatusUnknown   ServiceStatus = "Unknown"
	ServiceStatusActive    ServiceStatus = "Active"
	ServiceStatusUpgrading ServiceStatus = "Upgrading"
	ServiceStatusDeleting  ServiceStatus = "Deleting"
	ServiceStatusCreating  ServiceStatus = "Creating"
	ServiceStatusFailed    ServiceStatus = "Failed"
)

// PossibleServiceStatusValues returns the values of ServiceStatus known to this client.
func PossibleServiceStatusValues() []ServiceStatus {
	return []ServiceStatus{
		ServiceStatusUnknown,
		ServiceStatusActive,
		ServiceStatusUpgrading,
		ServiceStatusDeleting,
		ServiceStatusCreating,
		ServiceStatusFailed,
	}
}

// IsKnown reports whether s is one of PossibleServiceStatusValues.
func (s ServiceStatus) IsKnown() bool {
	return api.IsKnown(s, PossibleServiceStatusValues())
}

// PartitionScheme enumerates how a service is partitioned.
type PartitionScheme string

const (
	PartitionSchemeInvalid           PartitionScheme = "Invalid"
	PartitionSchemeSingleton         PartitionScheme = "Singleton"
	PartitionSchemeUniformInt64Range PartitionScheme = "UniformInt64Range"
	PartitionSchemeNamed             PartitionScheme = "Named"
)

// PossiblePartitionSchemeValues returns the values of PartitionScheme known to this client.
func PossiblePartitionSchemeValues() []PartitionScheme {
	return []PartitionScheme{
		PartitionSchemeInvalid,
		PartitionSchemeSingleton,
		PartitionSchemeUniformInt64Range,
		PartitionSchemeNamed,
	}
}

// IsKnown reports whether p is one of PossiblePartitionSchemeValues.
func (p PartitionScheme) IsKnown() bool {
	return api.IsKnown(p, PossiblePartitionSchemeValues())
}

// ServicePartitionKind enumerates the kind of partitioning scheme of a partition.
type ServicePartitionKind string

const (
	ServicePartitionKindInvalid    ServicePartitionKind = "Invalid"
	ServicePartitionKindSingleton  ServicePartitionKind = "Singleton"
	ServicePartitionKindInt64Range ServicePartitionKind = "Int64Range"
	ServicePartitionKindNamed      ServicePartitionKind = "Named"
)

// PossibleServicePartitionKindValues returns the values of ServicePartitionKind known to this client.
func PossibleServicePartitionKindValues() []ServicePartitionKind {
	return []ServicePartitionKind{
		ServicePartitionKindInvalid,
		ServicePartitionKindSingleton,
		ServicePartitionKindInt64Range,
		ServicePartitionKindNamed,
	}
}

// IsKnown reports whether s is one of PossibleServicePartitionKindValues.
func (s ServicePartitionKind) IsKnown() bool {
	return api.IsKnown(s, PossibleServicePartitionKindValues())
}

// ServicePartitionStatus enumerates the status of a service partition.
type ServicePartitionStatus string

const (
	ServicePartitionStatusInvalid       ServicePartitionStatus = "Invalid"
	ServicePartitionStatusReady         ServicePartitionStatus = "Ready"
	ServicePartitionStatusNotReady      ServicePartitionStatus = "NotReady"
	ServicePartitionStatusInQuorumLoss  ServicePartitionStatus = "InQuorumLoss"
	ServicePartitionStatusReconfiguring ServicePartitionStatus = "Reconfiguring"
	ServicePartitionStatusDeleting      ServicePartitionStatus = "Deleting"
)

// PossibleServicePartitionStatusValues returns the values of ServicePartitionStatus known to this client.
func PossibleServicePartitionStatusValues() []ServicePartitionStatus {
	return []ServicePartitionStatus{
		ServicePartitionStatusInvalid,
		ServicePartitionStatusReady,
		ServicePartitionStatusNotReady,
		ServicePartitionStatusInQuorumLoss,
		ServicePartitionStatusReconfiguring,
		ServicePartitionStatusDeleting,
	}
}

// IsKnown reports whether s is one of PossibleServicePartitionStatusValues.
func (s ServicePartitionStatus) IsKnown() bool {
	return api.IsKnown(s, PossibleServicePartitionStatusValues())
}

// ServiceCorrelationScheme enumerates the service correlation scheme.
type ServiceCorrelationScheme string

const (
	ServiceCorrelationSchemeInvalid            ServiceCorrelationScheme = "Invalid"
	ServiceCorrelationSchemeAffinity           ServiceCorrelationScheme = "Affinity"
	ServiceCorrelationSchemeAlignedAffinity    ServiceCorrelationScheme = "AlignedAffinity"
	ServiceCorrelationSchemeNonAlignedAffinity ServiceCorrelationScheme = "NonAlignedAffinity"
)

// PossibleServiceCorrelationSchemeValues returns the values of ServiceCorrelationScheme known to this client.
func PossibleServiceCorrelationSchemeValues() []ServiceCorrelationScheme {
	return []ServiceCorrelationScheme{
		ServiceCorrelationSchemeInvalid,
		ServiceCorrelationSchemeAffinity,
		ServiceCorrelationSchemeAlignedAffinity,
		ServiceCorrelationSchemeNonAlignedAffinity,
	}
}

// IsKnown reports whether s is one of PossibleServiceCorrelationSchemeValues.
func (s ServiceCorrelationScheme) IsKnown() bool {
	return api.IsKnown(s, PossibleServiceCorrelationSchemeValues())
}

// ServiceLoadMetricWeight enumerates the relative weight of a service load metric.
type ServiceLoadMetricWeight string

const (
	ServiceLoadMetricWeightZero   ServiceLoadMetricWeight = "Zero"
	ServiceLoadMetricWeightLow    ServiceLoadMetricWeight = "Low"
	ServiceLoadMetricWeightMedium ServiceLoadMetricWeight = "Medium"
	ServiceLoadMetricWeightHigh   ServiceLoadMetricWeight = "High"
)

// PossibleServiceLoadMetricWeightValues returns the values of ServiceLoadMetricWeight known to this client.
func PossibleServiceLoadMetricWeightValues() []ServiceLoadMetricWeight {
	return []ServiceLoadMetricWeight{
		ServiceLoadMetricWeightZero,
		ServiceLoadMetricWeightLow,
		ServiceLoadMetricWeightMedium,
		ServiceLoadMetricWeightHigh,
	}
}

// IsKnown reports whether s is one of PossibleServiceLoadMetricWeightValues.
func (s ServiceLoadMetricWeight) IsKnown() bool {
	return api.IsKnown(s, PossibleServiceLoadMetricWeightValues())
}

// ServicePlacementPolicyType enumerates the type of a placement policy for a service fabric service.
type ServicePlacementPolicyType string

const (
	ServicePlacementPolicyTypeInvalid                               ServicePlacementPolicyType = "Invalid"
	ServicePlacementPolicyTypeInvalidDomain                         ServicePlacementPolicyType = "InvalidDomain"
	ServicePlacementPolicyTypeRequireDomain                         ServicePlacementPolicyType = "RequireDomain"
	ServicePlacementPolicyTypePreferPrimaryDomain                   ServicePlacementPolicyType = "PreferPrimaryDomain"
	ServicePlacementPolicyTypeRequireDomainDistribution             ServicePlacementPolicyType = "RequireDomainDistribution"
	ServicePlacementPolicyTypeNonPartiallyPlaceService              ServicePlacementPolicyType = "NonPartiallyPlaceService"
	ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode ServicePlacementPolicyType = "AllowMultipleStatelessInstancesOnNode"
)

// PossibleServicePlacementPolicyTypeValues returns the values of ServicePlacementPolicyType known to this client.
func PossibleServicePlacementPolicyTypeValues() []ServicePlacementPolicyType {
	return []ServicePlacementPolicyType{
		ServicePlacementPolicyTypeInvalid,
		ServicePlacementPolicyTypeInvalidDomain,
		ServicePlacementPolicyTypeRequireDomain,
		ServicePlacementPolicyTypePreferPrimaryDomain,
		ServicePlacementPolicyTypeRequireDomainDistribution,
		ServicePlacementPolicyTypeNonPartiallyPlaceService,
		ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode,
	}
}

// IsKnown reports whether s is one of PossibleServicePlacementPolicyTypeValues.
func (s ServicePlacementPolicyType) IsKnown() bool {
	return api.IsKnown(s, PossibleServicePlacementPolicyTypeValues())
}

// MoveCost enumerates the move cost for a service.
type MoveCost string

const (
	MoveCostZero     MoveCost = "Zero"
	MoveCostLow      MoveCost = "Low"
	MoveCostMedium   MoveCost = "Medium"
	MoveCostHigh     MoveCost = "High"
	MoveCostVeryHigh MoveCost = "VeryHigh"
)

// PossibleMoveCostValues returns the values of MoveCost known to this client.
func PossibleMoveCostValues() []MoveCost {
	return []MoveCost{
		MoveCostZero,
		MoveCostLow,
		MoveCostMedium,
		MoveCostHigh,
		MoveCostVeryHigh,
	}
}

// IsKnown reports whether m is one of PossibleMoveCostValues.
func (m MoveCost) IsKnown() bool {
	return api.IsKnown(m, PossibleMoveCostValues())
}

// ServicePackageActivationMode enumerates the activation mode of a service package.
type ServicePackageActivationMode string

const (
	ServicePackageActivationModeSharedProcess    ServicePackageActivationMode = "SharedProcess"
	ServicePackageActivationModeExclusiveProcess ServicePackageActivationMode = "ExclusiveProcess"
)

// PossibleServicePackageActivationModeValues returns the values of ServicePackageActivationMode known to this client.
func PossibleServicePackageActivationModeValues() []ServicePackageActivationMode {
	return []ServicePackageActivationMode{
		ServicePackageActivationModeSharedProcess,
		ServicePackageActivationModeExclusiveProcess,
	}
}

// IsKnown reports whether s is one of PossibleServicePackageActivationModeValues.
func (s ServicePackageActivationMode) IsKnown() bool {
	return api.IsKnown(s, PossibleServicePackageActivationModeValues())
}

// ReplicaStatus enumerates the status of a replica.
type ReplicaStatus string

const (
	ReplicaStatusInvalid ReplicaStatus = "Invalid"
	ReplicaStatusInBuild ReplicaStatus = "InBuild"
	ReplicaStatusStandby ReplicaStatus = "Standby"
	ReplicaStatusReady   ReplicaStatus = "Ready"
	ReplicaStatusDown    ReplicaStatus = "Down"
	ReplicaStatusDropped ReplicaStatus = "Dropped"
)

// PossibleReplicaStatusValues returns the values of ReplicaStatus known to this client.
func PossibleReplicaStatusValues() []ReplicaStatus {
	return []ReplicaStatus{
		ReplicaStatusInvalid,
		ReplicaStatusInBuild,
		ReplicaStatusStandby,
		ReplicaStatusReady,
		ReplicaStatusDown,
		ReplicaStatusDropped,
	}
}

// IsKnown reports whether r is one of PossibleReplicaStatusValues.
func (r ReplicaStatus) IsKnown() bool {
	return api.IsKnown(r, PossibleReplicaStatusValues())
}

// ReplicaRole enumerates the role of a replica of a stateful service.
type ReplicaRole string

const (
	ReplicaRoleUnknown          ReplicaRole = "Unknown"
	ReplicaRoleNone             ReplicaRole = "None"
	ReplicaRolePrimary          ReplicaRole = "Primary"
	ReplicaRoleIdleSecondary    ReplicaRole = "IdleSecondary"
	ReplicaRoleActiveSecondary  ReplicaRole = "ActiveSecondary"
	ReplicaRoleIdleAuxiliary    ReplicaRole = "IdleAuxiliary"
	ReplicaRoleActiveAuxiliary  ReplicaRole = "ActiveAuxiliary"
	ReplicaRolePrimaryAuxiliary ReplicaRole = "PrimaryAuxiliary"
)

// PossibleReplicaRoleValues returns the values of ReplicaRole known to this client.
func PossibleReplicaRoleValues() []ReplicaRole {
	return []ReplicaRole{
		ReplicaRoleUnknown,
		ReplicaRoleNone,
		ReplicaRolePrimary,
		ReplicaRoleIdleSecondary,
		ReplicaRoleActiveSecondary,
		ReplicaRoleIdleAuxiliary,
		ReplicaRoleActiveAuxiliary,
		ReplicaRolePrimaryAuxiliary,
	}
}

// IsKnown reports whether r is one of PossibleReplicaRoleValues.
func (r ReplicaRole) IsKnown() bool {
	return api.IsKnown(r, PossibleReplicaRoleValues())
}

// ReplicaHealthReportServiceKind enumerates the kind of service a reported replica belongs to.
type ReplicaHealthReportServiceKind string

const (
	ReplicaHealthReportServiceKindStateless ReplicaHealthReportServiceKind = "Stateless"
	ReplicaHealthReportServiceKindStateful  ReplicaHealthReportServiceKind = "Stateful"
)

// PossibleReplicaHealthReportServiceKindValues returns the values of ReplicaHealthReportServiceKind known to this client.
func PossibleReplicaHealthReportServiceKindValues() []ReplicaHealthReportServiceKind {
	return []ReplicaHealthReportServiceKind{
		ReplicaHealthReportServiceKindStateless,
		ReplicaHealthReportServiceKindStateful,
	}
}

// IsKnown reports whether r is one of PossibleReplicaHealthReportServiceKindValues.
func (r ReplicaHealthReportServiceKind) IsKnown() bool {
	return api.IsKnown(r, PossibleReplicaHealthReportServiceKindValues())
}

// BackupEntityKind enumerates the kind of entity a backup configuration applies to.
type BackupEntityKind string

const (
	BackupEntityKindInvalid     BackupEntityKind = "Invalid"
	BackupEntityKindPartition   BackupEntityKind = "Partition"
	BackupEntityKindService     BackupEntityKind = "Service"
	BackupEntityKindApplication BackupEntityKind = "Application"
)

// PossibleBackupEntityKindValues returns the values of BackupEntityKind known to this client.
func PossibleBackupEntityKindValues() []BackupEntityKind {
	return []BackupEntityKind{
		BackupEntityKindInvalid,
		BackupEntityKindPartition,
		BackupEntityKindService,
		BackupEntityKindApplication,
	}
}

// IsKnown reports whether b is one of PossibleBackupEntityKindValues.
func (b BackupEntityKind) IsKnown() bool {
	return api.IsKnown(b, PossibleBackupEntityKindValues())
}

// BackupScheduleKind enumerates the kind of backup schedule.
type BackupScheduleKind string

const (
	BackupScheduleKindInvalid        BackupScheduleKind = "Invalid"
	BackupScheduleKindTimeBased      BackupScheduleKind = "TimeBased"
	BackupScheduleKindFrequencyBased BackupScheduleKind = "FrequencyBased"
)

// PossibleBackupScheduleKindValues returns the values of BackupScheduleKind known to this client.
func PossibleBackupScheduleKindValues() []BackupScheduleKind {
	return []BackupScheduleKind{
		BackupScheduleKindInvalid,
		BackupScheduleKindTimeBased,
		BackupScheduleKindFrequencyBased,
	}
}

// IsKnown reports whether b is one of PossibleBackupScheduleKindValues.
func (b BackupScheduleKind) IsKnown() bool {
	return api.IsKnown(b, PossibleBackupScheduleKindValues())
}

// BackupScheduleFrequencyType enumerates the frequency of a time based backup schedule.
type BackupScheduleFrequencyType string

const (
	BackupScheduleFrequencyTypeInvalid BackupScheduleFrequencyType = "Invalid"
	BackupScheduleFrequencyTypeDaily   BackupScheduleFrequencyType = "Daily"
	BackupScheduleFrequencyTypeWeekly  BackupScheduleFrequencyType = "Weekly"
)

// PossibleBackupScheduleFrequencyTypeValues returns the values of BackupScheduleFrequencyType known to this client.
func PossibleBackupScheduleFrequencyTypeValues() []BackupScheduleFrequencyType {
	return []BackupScheduleFrequencyType{
		BackupScheduleFrequencyTypeInvalid,
		BackupScheduleFrequencyTypeDaily,
		BackupScheduleFrequencyTypeWeekly,
	}
}

// IsKnown reports whether b is one of PossibleBackupScheduleFrequencyTypeValues.
func (b BackupScheduleFrequencyType) IsKnown() bool {
	return api.IsKnown(b, PossibleBackupScheduleFrequencyTypeValues())
}

// DayOfWeek enumerates a day of the week.
type DayOfWeek string

const (
	DayOfWeekSunday    DayOfWeek = "Sunday"
	DayOfWeekMonday    DayOfWeek = "Monday"
	DayOfWeekTuesday   DayOfWeek = "Tuesday"
	DayOfWeekWednesday DayOfWeek = "Wednesday"
	DayOfWeekThursday  DayOfWeek = "Thursday"
	DayOfWeekFriday    DayOfWeek = "Friday"
	DayOfWeekSaturday  DayOfWeek = "Saturday"
)

// PossibleDayOfWeekValues returns the values of DayOfWeek known to this client.
func PossibleDayOfWeekValues() []DayOfWeek {
	return []DayOfWeek{
		DayOfWeekSunday,
		DayOfWeekMonday,
		DayOfWeekTuesday,
		DayOfWeekWednesday,
		DayOfWeekThursday,
		DayOfWeekFriday,
		DayOfWeekSaturday,
	}
}

// IsKnown reports whether d is one of PossibleDayOfWeekValues.
func (d DayOfWeek) IsKnown() bool {
	return api.IsKnown(d, PossibleDayOfWeekValues())
}

// BackupStorageKind enumerates the kind of backup storage.
type BackupStorageKind string

const (
	BackupStorageKindInvalid                       BackupStorageKind = "Invalid"
	BackupStorageKindFileShare                     BackupStorageKind = "FileShare"
	BackupStorageKindAzureBlobStore                BackupStorageKind = "AzureBlobStore"
	BackupStorageKindDsmsAzureBlobStore            BackupStorageKind = "DsmsAzureBlobStore"
	BackupStorageKindManagedIdentityAzureBlobStore BackupStorageKind = "ManagedIdentityAzureBlobStore"
)

// PossibleBackupStorageKindValues returns the values of BackupStorageKind known to this client.
func PossibleBackupStorageKindValues() []BackupStorageKind {
	return []BackupStorageKind{
		BackupStorageKindInvalid,
		BackupStorageKindFileShare,
		BackupStorageKindAzureBlobStore,
		BackupStorageKindDsmsAzureBlobStore,
		BackupStorageKindManagedIdentityAzureBlobStore,
	}
}

// IsKnown reports whether b is one of PossibleBackupStorageKindValues.
func (b BackupStorageKind) IsKnown() bool {
	return api.IsKnown(b, PossibleBackupStorageKindValues())
}

// ManagedIdentityType enumerates the type of managed identity used to access backup storage.
type ManagedIdentityType string

const (
	ManagedIdentityTypeInvalid ManagedIdentityType = "Invalid"
	ManagedIdentityTypeVMSS    ManagedIdentityType = "VMSS"
	ManagedIdentityTypeCluster ManagedIdentityType = "Cluster"
)

// PossibleManagedIdentityTypeValues returns the values of ManagedIdentityType known to this client.
func PossibleManagedIdentityTypeValues() []ManagedIdentityType {
	return []ManagedIdentityType{
		ManagedIdentityTypeInvalid,
		ManagedIdentityTypeVMSS,
		ManagedIdentityTypeCluster,
	}
}

// IsKnown reports whether m is one of PossibleManagedIdentityTypeValues.
func (m ManagedIdentityType) IsKnown() bool {
	return api.IsKnown(m, PossibleManagedIdentityTypeValues())
}

// RetentionPolicyType enumerates the type of retention policy.
type RetentionPolicyType string

const (
	RetentionPolicyTypeBasic   RetentionPolicyType = "Basic"
	RetentionPolicyTypeInvalid RetentionPolicyType = "Invalid"
)

// PossibleRetentionPolicyTypeValues returns the values of RetentionPolicyType known to this client.
func PossibleRetentionPolicyTypeValues() []RetentionPolicyType {
	return []RetentionPolicyType{
		RetentionPolicyTypeBasic,
		RetentionPolicyTypeInvalid,
	}
}

// IsKnown reports whether r is one of PossibleRetentionPolicyTypeValues.
func (r RetentionPolicyType) IsKnown() bool {
	return api.IsKnown(r, PossibleRetentionPolicyTypeValues())
}

// BackupType enumerates the type of a backup.
type BackupType string

const (
	BackupTypeInvalid     BackupType = "Invalid"
	BackupTypeFull        BackupType = "Full"
	BackupTypeIncremental BackupType = "Incremental"
)

// PossibleBackupTypeValues returns the values of BackupType known to this client.
func PossibleBackupTypeValues() []BackupType {
	return []BackupType{
		BackupTypeInvalid,
		BackupTypeFull,
		BackupTypeIncremental,
	}
}

// IsKnown reports whether b is one of PossibleBackupTypeValues.
func (b BackupType) IsKnown() bool {
	return api.IsKnown(b, PossibleBackupTypeValues())
}

// BackupState enumerates the state of a backup operation.
type BackupState string

const (
	BackupStateInvalid          BackupState = "Invalid"
	BackupStateAccepted         BackupState = "Accepted"
	BackupStateBackupInProgress BackupState = "BackupInProgress"
	BackupStateSuccess          BackupState = "Success"
	BackupStateFailure          BackupState = "Failure"
	BackupStateTimeout          BackupState = "Timeout"
)

// PossibleBackupStateValues returns the values of BackupState known to this client.
func PossibleBackupStateValues() []BackupState {
	return []BackupState{
		BackupStateInvalid,
		BackupStateAccepted,
		BackupStateBackupInProgress,
		BackupStateSuccess,
		BackupStateFailure,
		BackupStateTimeout,
	}
}

// IsKnown reports whether b is one of PossibleBackupStateValues.
func (b BackupState) IsKnown() bool {
	return api.IsKnown(b, PossibleBackupStateValues())
}

// RestoreState enumerates the state of a restore operation.
type RestoreState string

const (
	RestoreStateInvalid           RestoreState = "Invalid"
	RestoreStateAccepted          RestoreState = "Accepted"
	RestoreStateRestoreInProgress RestoreState = "RestoreInProgress"
	RestoreStateSuccess           RestoreState = "Success"
	RestoreStateFailure           RestoreState = "Failure"
	RestoreStateTimeout           RestoreState = "Timeout"
)

// PossibleRestoreStateValues returns the values of RestoreState known to this client.
func PossibleRestoreStateValues() []RestoreState {
	return []RestoreState{
		RestoreStateInvalid,
		RestoreStateAccepted,
		RestoreStateRestoreInProgress,
		RestoreStateSuccess,
		RestoreStateFailure,
		RestoreStateTimeout,
	}
}

// IsKnown reports whether r is one of PossibleRestoreStateValues.
func (r RestoreState) IsKnown() bool {
	return api.IsKnown(r, PossibleRestoreStateValues())
}

// BackupPolicyScope enumerates the scope at which a backup policy is applied.
type BackupPolicyScope string

const (
	BackupPolicyScopeInvalid     BackupPolicyScope = "Invalid"
	BackupPolicyScopePartition   BackupPolicyScope = "Partition"
	BackupPolicyScopeService     BackupPolicyScope = "Service"
	BackupPolicyScopeApplication BackupPolicyScope = "Application"
)

// PossibleBackupPolicyScopeValues returns the values of BackupPolicyScope known to this client.
func PossibleBackupPolicyScopeValues() []BackupPolicyScope {
	return []BackupPolicyScope{
		BackupPolicyScopeInvalid,
		BackupPolicyScopePartition,
		BackupPolicyScopeService,
		BackupPolicyScopeApplication,
	}
}

// IsKnown reports whether b is one of PossibleBackupPolicyScopeValues.
func (b BackupPolicyScope) IsKnown() bool {
	return api.IsKnown(b, PossibleBackupPolicyScopeValues())
}

// BackupSuspensionScope enumerates the scope at which backup suspension was applied.
type BackupSuspensionScope string

const (
	BackupSuspensionScopeInvalid     BackupSuspensionScope = "Invalid"
	BackupSuspensionScopePartition   BackupSuspensionScope = "Partition"
	BackupSuspensionScopeService     BackupSuspensionScope = "Service"
	BackupSuspensionScopeApplication BackupSuspensionScope = "Application"
)

// PossibleBackupSuspensionScopeValues returns the values of BackupSuspensionScope known to this client.
func PossibleBackupSuspensionScopeValues() []BackupSuspensionScope {
	return []BackupSuspensionScope{
		BackupSuspensionScopeInvalid,
		BackupSuspensionScopePartition,
		BackupSuspensionScopeService,
		BackupSuspensionScopeApplication,
	}
}

// IsKnown reports whether b is one of PossibleBackupSuspensionScopeValues.
func (b BackupSuspensionScope) IsKnown() bool {
	return api.IsKnown(b, PossibleBackupSuspensionScopeValues())
}

// ChaosStatus enumerates the status of Chaos.
type ChaosStatus string

const (
	ChaosStatusInvalid ChaosStatus = "Invalid"
	ChaosStatusRunning ChaosStatus = "Running"
	ChaosStatusStopped ChaosStatus = "Stopped"
)

// PossibleChaosStatusValues returns the values of ChaosStatus known to this client.
func PossibleChaosStatusValues() []ChaosStatus {
	return []ChaosStatus{
		ChaosStatusInvalid,
		ChaosStatusRunning,
		ChaosStatusStopped,
	}
}

// IsKnown reports whether c is one of PossibleChaosStatusValues.
func (c ChaosStatus) IsKnown() bool {
	return api.IsKnown(c, PossibleChaosStatusValues())
}

// ChaosScheduleStatus enumerates the status of the Chaos schedule.
type ChaosScheduleStatus string

const (
	ChaosScheduleStatusInvalid ChaosScheduleStatus = "Invalid"
	ChaosScheduleStatusStopped ChaosScheduleStatus = "Stopped"
	ChaosScheduleStatusActive  ChaosScheduleStatus = "Active"
	ChaosScheduleStatusExpired ChaosScheduleStatus = "Expired"
	ChaosScheduleStatusPending ChaosScheduleStatus = "Pending"
)

// PossibleChaosScheduleStatusValues returns the values of ChaosScheduleStatus known to this client.
func PossibleChaosScheduleStatusValues() []ChaosScheduleStatus {
	return []ChaosScheduleStatus{
		ChaosScheduleStatusInvalid,
		ChaosScheduleStatusStopped,
		ChaosScheduleStatusActive,
		ChaosScheduleStatusExpired,
		ChaosScheduleStatusPending,
	}
}

// IsKnown reports whether c is one of PossibleChaosScheduleStatusValues.
func (c ChaosScheduleStatus) IsKnown() bool {
	return api.IsKnown(c, PossibleChaosScheduleStatusValues())
}

// ChaosEventKind enumerates the kind of a Chaos event.
type ChaosEventKind string

const (
	ChaosEventKindInvalid          ChaosEventKind = "Invalid"
	ChaosEventKindStarted          ChaosEventKind = "Started"
	ChaosEventKindExecutingFaults  ChaosEventKind = "ExecutingFaults"
	ChaosEventKindWaiting          ChaosEventKind = "Waiting"
	ChaosEventKindValidationFailed ChaosEventKind = "ValidationFailed"
	ChaosEventKindTestError        ChaosEventKind = "TestError"
	ChaosEventKindStopped          ChaosEventKind = "Stopped"
)

// PossibleChaosEventKindValues returns the values of ChaosEventKind known to this client.
func PossibleChaosEventKindValues() []ChaosEventKind {
	return []ChaosEventKind{
		ChaosEventKindInvalid,
		ChaosEventKindStarted,
		ChaosEventKindExecutingFaults,
		ChaosEventKindWaiting,
		ChaosEventKindValidationFailed,
		ChaosEventKindTestError,
		ChaosEventKindStopped,
	}
}

// IsKnown reports whether c is one of PossibleChaosEventKindValues.
func (c ChaosEventKind) IsKnown() bool {
	return api.IsKnown(c, PossibleChaosEventKindValues())
}

// RepairTaskState enumerates the workflow state of a repair task.
type RepairTaskState string

const (
	RepairTaskStateInvalid   RepairTaskState = "Invalid"
	RepairTaskStateCreated   RepairTaskState = "Created"
	RepairTaskStateClaimed   RepairTaskState = "Claimed"
	RepairTaskStatePreparing RepairTaskState = "Preparing"
	RepairTaskStateApproved  RepairTaskState = "Approved"
	RepairTaskStateExecuting RepairTaskState = "Executing"
	RepairTaskStateRestoring RepairTaskState = "Restoring"
	RepairTaskStateCompleted RepairTaskState = "Completed"
)

// PossibleRepairTaskStateValues returns the values of RepairTaskState known to this client.
func PossibleRepairTaskStateValues() []RepairTaskState {
	return []RepairTaskState{
		RepairTaskStateInvalid,
		RepairTaskStateCreated,
		RepairTaskStateClaimed,
		RepairTaskStatePreparing,
		RepairTaskStateApproved,
		RepairTaskStateExecuting,
		RepairTaskStateRestoring,
		RepairTaskStateCompleted,
	}
}

// IsKnown reports whether r is one of PossibleRepairTaskStateValues.
func (r RepairTaskState) IsKnown() bool {
	return api.IsKnown(r, PossibleRepairTaskStateValues())
}

// RepairTargetKind enumerates the kind of a repair target.
type RepairTargetKind string

const (
	RepairTargetKindInvalid RepairTargetKind = "Invalid"
	RepairTargetKindNode    RepairTargetKind = "Node"
)

// PossibleRepairTargetKindValues returns the values of RepairTargetKind known to this client.
func PossibleRepairTargetKindValues() []RepairTargetKind {
	return []RepairTargetKind{
		RepairTargetKindInvalid,
		RepairTargetKindNode,
	}
}

// IsKnown reports whether r is one of PossibleRepairTargetKindValues.
func (r RepairTargetKind) IsKnown() bool {
	return api.IsKnown(r, PossibleRepairTargetKindValues())
}

// RepairImpactKind enumerates the kind of a repair impact.
type RepairImpactKind string

const (
	RepairImpactKindInvalid RepairImpactKind = "Invalid"
	RepairImpactKindNode    RepairImpactKind = "Node"
)

// PossibleRepairImpactKindValues returns the values of RepairImpactKind known to this client.
func PossibleRepairImpactKindValues() []RepairImpactKind {
	return []RepairImpactKind{
		RepairImpactKindInvalid,
		RepairImpactKindNode,
	}
}

// IsKnown reports whether r is one of PossibleRepairImpactKindValues.
func (r RepairImpactKind) IsKnown() bool {
	return api.IsKnown(r, PossibleRepairImpactKindValues())
}

// ImpactLevel enumerates the level of impact a repair has on a node.
type ImpactLevel string

const (
	ImpactLevelInvalid    ImpactLevel = "Invalid"
	ImpactLevelNone       ImpactLevel = "None"
	ImpactLevelRestart    ImpactLevel = "Restart"
	ImpactLevelRemoveData ImpactLevel = "RemoveData"
	ImpactLevelRemoveNode ImpactLevel = "RemoveNode"
)

// PossibleImpactLevelValues returns the values of ImpactLevel known to this client.
func PossibleImpactLevelValues() []ImpactLevel {
	return []ImpactLevel{
		ImpactLevelInvalid,
		ImpactLevelNone,
		ImpactLevelRestart,
		ImpactLevelRemoveData,
		ImpactLevelRemoveNode,
	}
}

// IsKnown reports whether i is one of PossibleImpactLevelValues.
func (i ImpactLevel) IsKnown() bool {
	return api.IsKnown(i, PossibleImpactLevelValues())
}

// ResultStatus enumerates the result of a repair task.
type ResultStatus string

const (
	ResultStatusInvalid     ResultStatus = "Invalid"
	ResultStatusSucceeded   ResultStatus = "Succeeded"
	ResultStatusCancelled   ResultStatus = "Cancelled"
	ResultStatusInterrupted ResultStatus = "Interrupted"
	ResultStatusFailed      ResultStatus = "Failed"
	ResultStatusPending     ResultStatus = "Pending"
)

// PossibleResultStatusValues returns the values of ResultStatus known to this client.
func PossibleResultStatusValues() []ResultStatus {
	return []ResultStatus{
		ResultStatusInvalid,
		ResultStatusSucceeded,
		ResultStatusCancelled,
		ResultStatusInterrupted,
		ResultStatusFailed,
		ResultStatusPending,
	}
}

// IsKnown reports whether r is one of PossibleResultStatusValues.
func (r ResultStatus) IsKnown() bool {
	return api.IsKnown(r, PossibleResultStatusValues())
}

// RepairTaskHealthCheckState enumerates the state of a repair task health check workflow.
type RepairTaskHealthCheckState string

const (
	RepairTaskHealthCheckStateNotStarted RepairTaskHealthCheckState = "NotStarted"
	RepairTaskHealthCheckStateInProgress RepairTaskHealthCheckState = "InProgress"
	RepairTaskHealthCheckStateSucceeded  RepairTaskHealthCheckState = "Succeeded"
	RepairTaskHealthCheckStateSkipped    RepairTaskHealthCheckState = "Skipped"
	RepairTaskHealthCheckStateTimedOut   RepairTaskHealthCheckState = "TimedOut"
)

// PossibleRepairTaskHealthCheckStateValues returns the values of RepairTaskHealthCheckState known to this client.
func PossibleRepairTaskHealthCheckStateValues() []RepairTaskHealthCheckState {
	return []RepairTaskHealthCheckState{
		RepairTaskHealthCheckStateNotStarted,
		RepairTaskHealthCheckStateInProgress,
		RepairTaskHealthCheckStateSucceeded,
		RepairTaskHealthCheckStateSkipped,
		RepairTaskHealthCheckStateTimedOut,
	}
}

// IsKnown reports whether r is one of PossibleRepairTaskHealthCheckStateValues.
func (r RepairTaskHealthCheckState) IsKnown() bool {
	return api.IsKnown(r, PossibleRepairTaskHealthCheckStateValues())
}

// OperationState enumerates the state of a fault operation.
type OperationState string

const (
	OperationStateInvalid        OperationState = "Invalid"
	OperationStateRunning        OperationState = "Running"
	OperationStateRollingBack    OperationState = "RollingBack"
	OperationStateCompleted      OperationState = "Completed"
	OperationStateFaulted        OperationState = "Faulted"
	OperationStateCancelled      OperationState = "Cancelled"
	OperationStateForceCancelled OperationState = "ForceCancelled"
)

// PossibleOperationStateValues returns the values of OperationState known to this client.
func PossibleOperationStateValues() []OperationState {
	return []OperationState{
		OperationStateInvalid,
		OperationStateRunning,
		OperationStateRollingBack,
		OperationStateCompleted,
		OperationStateFaulted,
		OperationStateCancelled,
		OperationStateForceCancelled,
	}
}

// IsKnown reports whether o is one of PossibleOperationStateValues.
func (o OperationState) IsKnown() bool {
	return api.IsKnown(o, PossibleOperationStateValues())
}

// OperationType enumerates the type of a fault operation.
type OperationType string

const (
	OperationTypeInvalid             OperationType = "Invalid"
	OperationTypePartitionDataLoss   OperationType = "PartitionDataLoss"
	OperationTypePartitionQuorumLoss OperationType = "PartitionQuorumLoss"
	OperationTypePartitionRestart    OperationType = "PartitionRestart"
	OperationTypeNodeTransition      OperationType = "NodeTransition"
)

// PossibleOperationTypeValues returns the values of OperationType known to this client.
func PossibleOperationTypeValues() []OperationType {
	return []OperationType{
		OperationTypeInvalid,
		OperationTypePartitionDataLoss,
		OperationTypePartitionQuorumLoss,
		OperationTypePartitionRestart,
		OperationTypeNodeTransition,
	}
}

// IsKnown reports whether o is one of PossibleOperationTypeValues.
func (o OperationType) IsKnown() bool {
	return api.IsKnown(o, PossibleOperationTypeValues())
}

// DataLossMode enumerates the kind of data loss to induce.
type DataLossMode string

const (
	DataLossModeInvalid         DataLossMode = "Invalid"
	DataLossModePartialDataLoss DataLossMode = "PartialDataLoss"
	DataLossModeFullDataLoss    DataLossMode = "FullDataLoss"
)

// PossibleDataLossModeValues returns the values of DataLossMode known to this client.
func PossibleDataLossModeValues() []DataLossMode {
	return []DataLossMode{
		DataLossModeInvalid,
		DataLossModePartialDataLoss,
		DataLossModeFullDataLoss,
	}
}

// IsKnown reports whether d is one of PossibleDataLossModeValues.
func (d DataLossMode) IsKnown() bool {
	return api.IsKnown(d, PossibleDataLossModeValues())
}

// QuorumLossMode enumerates which replicas to put into quorum loss.
type QuorumLossMode string

const (
	QuorumLossModeInvalid        QuorumLossMode = "Invalid"
	QuorumLossModeQuorumReplicas QuorumLossMode = "QuorumReplicas"
	QuorumLossModeAllReplicas    QuorumLossMode = "AllReplicas"
)

// PossibleQuorumLossModeValues returns the values of QuorumLossMode known to this client.
func PossibleQuorumLossModeValues() []QuorumLossMode {
	return []QuorumLossMode{
		QuorumLossModeInvalid,
		QuorumLossModeQuorumReplicas,
		QuorumLossModeAllReplicas,
	}
}

// IsKnown reports whether q is one of PossibleQuorumLossModeValues.
func (q QuorumLossMode) IsKnown() bool {
	return api.IsKnown(q, PossibleQuorumLossModeValues())
}

// RestartPartitionMode enumerates which replicas of a partition to restart.
type RestartPartitionMode string

const (
	RestartPartitionModeInvalid                RestartPartitionMode = "Invalid"
	RestartPartitionModeAllReplicasOrInstances RestartPartitionMode = "AllReplicasOrInstances"
	RestartPartitionModeOnlyActiveSecondaries  RestartPartitionMode = "OnlyActiveSecondaries"
)

// PossibleRestartPartitionModeValues returns the values of RestartPartitionMode known to this client.
func PossibleRestartPartitionModeValues() []RestartPartitionMode {
	return []RestartPartitionMode{
		RestartPartitionModeInvalid,
		RestartPartitionModeAllReplicasOrInstances,
		RestartPartitionModeOnlyActiveSecondaries,
	}
}

// IsKnown reports whether r is one of PossibleRestartPartitionModeValues.
func (r RestartPartitionMode) IsKnown() bool {
	return api.IsKnown(r, PossibleRestartPartitionModeValues())
}

// NodeTransitionType enumerates the type of a node transition.
type NodeTransitionType string

const (
	NodeTransitionTypeInvalid NodeTransitionType = "Invalid"
	NodeTransitionTypeStart   NodeTransitionType = "Start"
	NodeTransitionTypeStop    NodeTransitionType = "Stop"
)

// PossibleNodeTransitionTypeValues returns the values of NodeTransitionType known to this client.
func PossibleNodeTransitionTypeValues() []NodeTransitionType {
	return []NodeTransitionType{
		NodeTransitionTypeInvalid,
		NodeTransitionTypeStart,
		NodeTransitionTypeStop,
	}
}

// IsKnown reports whether n is one of PossibleNodeTransitionTypeValues.
func (n NodeTransitionType) IsKnown() bool {
	return api.IsKnown(n, PossibleNodeTransitionTypeValues())
}

// ResourceStatus enumerates the status of a mesh resource.
type ResourceStatus string

const (
	ResourceStatusUnknown   ResourceStatus = "Unknown"
	ResourceStatusReady     ResourceStatus = "Ready"
	ResourceStatusUpgrading ResourceStatus = "Upgrading"
	ResourceStatusCreating  ResourceStatus = "Creating"
	ResourceStatusDeleting  ResourceStatus = "Deleting"
	ResourceStatusFailed    ResourceStatus = "Failed"
)

// PossibleResourceStatusValues returns the values of ResourceStatus known to this client.
func PossibleResourceStatusValues() []ResourceStatus {
	return []ResourceStatus{
		ResourceStatusUnknown,
		ResourceStatusReady,
		ResourceStatusUpgrading,
		ResourceStatusCreating,
		ResourceStatusDeleting,
		ResourceStatusFailed,
	}
}

// IsKnown reports whether r is one of PossibleResourceStatusValues.
func (r ResourceStatus) IsKnown() bool {
	return api.IsKnown(r, PossibleResourceStatusValues())
}

// OperatingSystemType enumerates the operating system required by a mesh service code package.
type OperatingSystemType string

const (
	OperatingSystemTypeLinux   OperatingSystemType = "Linux"
	OperatingSystemTypeWindows OperatingSystemType = "Windows"
)

// PossibleOperatingSystemTypeValues returns the values of OperatingSystemType known to this client.
func PossibleOperatingSystemTypeValues() []OperatingSystemType {
	return []OperatingSystemType{
		OperatingSystemTypeLinux,
		OperatingSystemTypeWindows,
	}
}

// IsKnown reports whether o is one of PossibleOperatingSystemTypeValues.
func (o OperatingSystemType) IsKnown() bool {
	return api.IsKnown(o, PossibleOperatingSystemTypeValues())
}

// ImageRegistryPasswordType enumerates how the password of an image registry credential is provided.
type ImageRegistryPasswordType string

const (
	ImageRegistryPasswordTypeClearText            ImageRegistryPasswordType = "ClearText"
	ImageRegistryPasswordTypeKeyVaultReference    ImageRegistryPasswordType = "KeyVaultReference"
	ImageRegistryPasswordTypeSecretValueReference ImageRegistryPasswordType = "SecretValueReference"
)

// PossibleImageRegistryPasswordTypeValues returns the values of ImageRegistryPasswordType known to this client.
func PossibleImageRegistryPasswordTypeValues() []ImageRegistryPasswordType {
	return []ImageRegistryPasswordType{
		ImageRegistryPasswordTypeClearText,
		ImageRegistryPasswordTypeKeyVaultReference,
		ImageRegistryPasswordTypeSecretValueReference,
	}
}

// IsKnown reports whether i is one of PossibleImageRegistryPasswordTypeValues.
func (i ImageRegistryPasswordType) IsKnown() bool {
	return api.IsKnown(i, PossibleImageRegistryPasswordTypeValues())
}

// EnvironmentVariableType enumerates how the value of an environment variable is provided.
type EnvironmentVariableType string

const (
	EnvironmentVariableTypeClearText            EnvironmentVariableType = "ClearText"
	EnvironmentVariableTypeKeyVaultReference    EnvironmentVariableType = "KeyVaultReference"
	EnvironmentVariableTypeSecretValueReference EnvironmentVariableType = "SecretValueReference"
)

// PossibleEnvironmentVariableTypeValues returns the values of EnvironmentVariableType known to this client.
func PossibleEnvironmentVariableTypeValues() []EnvironmentVariableType {
	return []EnvironmentVariableType{
		EnvironmentVariableTypeClearText,
		EnvironmentVariableTypeKeyVaultReference,
		EnvironmentVariableTypeSecretValueReference,
	}
}

// IsKnown reports whether e is one of PossibleEnvironmentVariableTypeValues.
func (e EnvironmentVariableType) IsKnown() bool {
	return api.IsKnown(e, PossibleEnvironmentVariableTypeValues())
}

// SecretKind enumerates the kind of a mesh secret.
type SecretKind string

const (
	SecretKindInlinedValue               SecretKind = "inlinedValue"
	SecretKindKeyVaultVersionedReference SecretKind = "KeyVaultVersionedReference"
)

// PossibleSecretKindValues returns the values of SecretKind known to this client.
func PossibleSecretKindValues() []SecretKind {
	return []SecretKind{
		SecretKindInlinedValue,
		SecretKindKeyVaultVersionedReference,
	}
}

// IsKnown reports whether s is one of PossibleSecretKindValues.
func (s SecretKind) IsKnown() bool {
	return api.IsKnown(s, PossibleSecretKindValues())
}

// VolumeProvider enumerates the provider of a mesh volume.
type VolumeProvider string

const (
	VolumeProviderSFAzureFile VolumeProvider = "SFAzureFile"
)

// PossibleVolumeProviderValues returns the values of VolumeProvider known to this client.
func PossibleVolumeProviderValues() []VolumeProvider {
	return []VolumeProvider{
		VolumeProviderSFAzureFile,
	}
}

// IsKnown reports whether v is one of PossibleVolumeProviderValues.
func (v VolumeProvider) IsKnown() bool {
	return api.IsKnown(v, PossibleVolumeProviderValues())
}

// NetworkKind enumerates the kind of a mesh network.
type NetworkKind string

const (
	NetworkKindLocal NetworkKind = "Local"
)

// PossibleNetworkKindValues returns the values of NetworkKind known to this client.
func PossibleNetworkKindValues() []NetworkKind {
	return []NetworkKind{
		NetworkKindLocal,
	}
}

// IsKnown reports whether n is one of PossibleNetworkKindValues.
func (n NetworkKind) IsKnown() bool {
	return api.IsKnown(n, PossibleNetworkKindValues())
}

// HeaderMatchType enumerates how a header is matched by a gateway HTTP route.
type HeaderMatchType string

const (
	HeaderMatchTypeExact HeaderMatchType = "exact"
)

// PossibleHeaderMatchTypeValues returns the values of HeaderMatchType known to this client.
func PossibleHeaderMatchTypeValues() []HeaderMatchType {
	return []HeaderMatchType{
		HeaderMatchTypeExact,
	}
}

// IsKnown reports whether h is one of PossibleHeaderMatchTypeValues.
func (h HeaderMatchType) IsKnown() bool {
	return api.IsKnown(h, PossibleHeaderMatchTypeValues())
}

// PathMatchType enumerates how a path is matched by a gateway HTTP route.
type PathMatchType string

const (
	PathMatchTypePrefix PathMatchType = "prefix"
)

// PossiblePathMatchTypeValues returns the values of PathMatchType known to this client.
func PossiblePathMatchTypeValues() []PathMatchType {
	return []PathMatchType{
		PathMatchTypePrefix,
	}
}

// IsKnown reports whether p is one of PossiblePathMatchTypeValues.
func (p PathMatchType) IsKnown() bool {
	return api.IsKnown(p, PossiblePathMatchTypeValues())
}

// FabricErrorCodes enumerates the error codes returned by the Service Fabric gateway.
type FabricErrorCodes string

const (
	FabricErrorCodesFabricEInvalidPartitionKey                  FabricErrorCodes = "FABRIC_E_INVALID_PARTITION_KEY"
	FabricErrorCodesFabricEImagebuilderValidationError          FabricErrorCodes = "FABRIC_E_IMAGEBUILDER_VALIDATION_ERROR"
	FabricErrorCodesFabricEInvalidAddress                       FabricErrorCodes = "FABRIC_E_INVALID_ADDRESS"
	FabricErrorCodesFabricEApplicationNotUpgrading              FabricErrorCodes = "FABRIC_E_APPLICATION_NOT_UPGRADING"
	FabricErrorCodesFabricEApplicationUpgradeValidationError    FabricErrorCodes = "FABRIC_E_APPLICATION_UPGRADE_VALIDATION_ERROR"
	FabricErrorCodesFabricEFabricNotUpgrading                   FabricErrorCodes = "FABRIC_E_FABRIC_NOT_UPGRADING"
	FabricErrorCodesFabricEFabricUpgradeValidationError         FabricErrorCodes = "FABRIC_E_FABRIC_UPGRADE_VALIDATION_ERROR"
	FabricErrorCodesFabricEInvalidConfiguration                 FabricErrorCodes = "FABRIC_E_INVALID_CONFIGURATION"
	FabricErrorCodesFabricEInvalidNameUri                       FabricErrorCodes = "FABRIC_E_INVALID_NAME_URI"
	FabricErrorCodesFabricEPathTooLong                          FabricErrorCodes = "FABRIC_E_PATH_TOO_LONG"
	FabricErrorCodesFabricEKeyTooLarge                          FabricErrorCodes = "FABRIC_E_KEY_TOO_LARGE"
	FabricErrorCodesFabricEServiceAffinityChainNotSupported     FabricErrorCodes = "FABRIC_E_SERVICE_AFFINITY_CHAIN_NOT_SUPPORTED"
	FabricErrorCodesFabricEInvalidAtomicGroup                   FabricErrorCodes = "FABRIC_E_INVALID_ATOMIC_GROUP"
	FabricErrorCodesFabricEValueEmpty                           FabricErrorCodes = "FABRIC_E_VALUE_EMPTY"
	FabricErrorCodesFabricEBackupIsEnabled                      FabricErrorCodes = "FABRIC_E_BACKUP_IS_ENABLED"
	FabricErrorCodesFabricERestoreSourceTargetPartitionMismatch FabricErrorCodes = "FABRIC_E_RESTORE_SOURCE_TARGET_PARTITION_MISMATCH"
	FabricErrorCodesFabricEInvalidForStatelessServices          FabricErrorCodes = "FABRIC_E_INVALID_FOR_STATELESS_SERVICES"
	FabricErrorCodesFabricEInvalidServiceScalingPolicy          FabricErrorCodes = "FABRIC_E_INVALID_SERVICE_SCALING_POLICY"
	FabricErrorCodesEInvalidarg                                 FabricErrorCodes = "E_INVALIDARG"
	FabricErrorCodesFabricENodeNotFound                         FabricErrorCodes = "FABRIC_E_NODE_NOT_FOUND"
	FabricErrorCodesFabricEApplicationTypeNotFound              FabricErrorCodes = "FABRIC_E_APPLICATION_TYPE_NOT_FOUND"
	FabricErrorCodesFabricEApplicationNotFound                  FabricErrorCodes = "FABRIC_E_APPLICATION_NOT_FOUND"
	FabricErrorCodesFabricEServiceTypeNotFound                  FabricErrorCodes = "FABRIC_E_SERVICE_TYPE_NOT_FOUND"
	FabricErrorCodesFabricEServiceDoesNotExist                  FabricErrorCodes = "FABRIC_E_SERVICE_DOES_NOT_EXIST"
	FabricErrorCodesFabricEServiceTypeTemplateNotFound          FabricErrorCodes = "FABRIC_E_SERVICE_TYPE_TEMPLATE_NOT_FOUND"
	FabricErrorCodesFabricEConfigurationSectionNotFound         FabricErrorCodes = "FABRIC_E_CONFIGURATION_SECTION_NOT_FOUND"
	FabricErrorCodesFabricEPartitionNotFound                    FabricErrorCodes = "FABRIC_E_PARTITION_NOT_FOUND"
	FabricErrorCodesFabricEReplicaDoesNotExist                  FabricErrorCodes = "FABRIC_E_REPLICA_DOES_NOT_EXIST"
	FabricErrorCodesFabricEServiceGroupDoesNotExist             FabricErrorCodes = "FABRIC_E_SERVICE_GROUP_DOES_NOT_EXIST"
	FabricErrorCodesFabricEConfigurationParameterNotFound       FabricErrorCodes = "FABRIC_E_CONFIGURATION_PARAMETER_NOT_FOUND"
	FabricErrorCodesFabricEDirectoryNotFound                    FabricErrorCodes = "FABRIC_E_DIRECTORY_NOT_FOUND"
	FabricErrorCodesFabricEFabricVersionNotFound                FabricErrorCodes = "FABRIC_E_FABRIC_VERSION_NOT_FOUND"
	FabricErrorCodesFabricEFileNotFound                         FabricErrorCodes = "FABRIC_E_FILE_NOT_FOUND"
	FabricErrorCodesFabricENameDoesNotExist                     FabricErrorCodes = "FABRIC_E_NAME_DOES_NOT_EXIST"
	FabricErrorCodesFabricEPropertyDoesNotExist                 FabricErrorCodes = "FABRIC_E_PROPERTY_DOES_NOT_EXIST"
	FabricErrorCodesFabricEEnumerationCompleted                 FabricErrorCodes = "FABRIC_E_ENUMERATION_COMPLETED"
	FabricErrorCodesFabricEServiceManifestNotFound              FabricErrorCodes = "FABRIC_E_SERVICE_MANIFEST_NOT_FOUND"
	FabricErrorCodesFabricEKeyNotFound                          FabricErrorCodes = "FABRIC_E_KEY_NOT_FOUND"
	FabricErrorCodesFabricEHealthEntityNotFound                 FabricErrorCodes = "FABRIC_E_HEALTH_ENTITY_NOT_FOUND"
	FabricErrorCodesFabricEBackupNotEnabled                     FabricErrorCodes = "FABRIC_E_BACKUP_NOT_ENABLED"
	FabricErrorCodesFabricEBackupPolicyNotExisting              FabricErrorCodes = "FABRIC_E_BACKUP_POLICY_NOT_EXISTING"
	FabricErrorCodesFabricEFaultAnalysisServiceNotExisting      FabricErrorCodes = "FABRIC_E_FAULT_ANALYSIS_SERVICE_NOT_EXISTING"
	FabricErrorCodesFabricEImagebuilderReservedDirectoryError   FabricErrorCodes = "FABRIC_E_IMAGEBUILDER_RESERVED_DIRECTORY_ERROR"
	FabricErrorCodesFabricEApplicationTypeAlreadyExists         FabricErrorCodes = "FABRIC_E_APPLICATION_TYPE_ALREADY_EXISTS"
	FabricErrorCodesFabricEApplicationAlreadyExists             FabricErrorCodes = "FABRIC_E_APPLICATION_ALREADY_EXISTS"
	FabricErrorCodesFabricEApplicationAlreadyInTargetVersion    FabricErrorCodes = "FABRIC_E_APPLICATION_ALREADY_IN_TARGET_VERSION"
	FabricErrorCodesFabricEApplicationTypeProvisionInProgress   FabricErrorCodes = "FABRIC_E_APPLICATION_TYPE_PROVISION_IN_PROGRESS"
	FabricErrorCodesFabricEApplicationUpgradeInProgress         FabricErrorCodes = "FABRIC_E_APPLICATION_UPGRADE_IN_PROGRESS"
	FabricErrorCodesFabricEServiceAlreadyExists                 FabricErrorCodes = "FABRIC_E_SERVICE_ALREADY_EXISTS"
	FabricErrorCodesFabricEServiceGroupAlreadyExists            FabricErrorCodes = "FABRIC_E_SERVICE_GROUP_ALREADY_EXISTS"
	FabricErrorCodesFabricEApplicationTypeInUse                 FabricErrorCodes = "FABRIC_E_APPLICATION_TYPE_IN_USE"
	FabricErrorCodesFabricEFabricAlreadyInTargetVersion         FabricErrorCodes = "FABRIC_E_FABRIC_ALREADY_IN_TARGET_VERSION"
	FabricErrorCodesFabricEFabricVersionAlreadyExists           FabricErrorCodes = "FABRIC_E_FABRIC_VERSION_ALREADY_EXISTS"
	FabricErrorCodesFabricEFabricVersionInUse                   FabricErrorCodes = "FABRIC_E_FABRIC_VERSION_IN_USE"
	FabricErrorCodesFabricEFabricUpgradeInProgress              FabricErrorCodes = "FABRIC_E_FABRIC_UPGRADE_IN_PROGRESS"
	FabricErrorCodesFabricENameAlreadyExists                    FabricErrorCodes = "FABRIC_E_NAME_ALREADY_EXISTS"
	FabricErrorCodesFabricENameNotEmpty                         FabricErrorCodes = "FABRIC_E_NAME_NOT_EMPTY"
	FabricErrorCodesFabricEPropertyCheckFailed                  FabricErrorCodes = "FABRIC_E_PROPERTY_CHECK_FAILED"
	FabricErrorCodesFabricEServiceMetadataMismatch              FabricErrorCodes = "FABRIC_E_SERVICE_METADATA_MISMATCH"
	FabricErrorCodesFabricEServiceTypeMismatch                  FabricErrorCodes = "FABRIC_E_SERVICE_TYPE_MISMATCH"
	FabricErrorCodesFabricEHealthStaleReport                    FabricErrorCodes = "FABRIC_E_HEALTH_STALE_REPORT"
	FabricErrorCodesFabricESequenceNumberCheckFailed            FabricErrorCodes = "FABRIC_E_SEQUENCE_NUMBER_CHECK_FAILED"
	FabricErrorCodesFabricENodeHasNotStoppedYet                 FabricErrorCodes = "FABRIC_E_NODE_HAS_NOT_STOPPED_YET"
	FabricErrorCodesFabricEInstanceIdMismatch                   FabricErrorCodes = "FABRIC_E_INSTANCE_ID_MISMATCH"
	FabricErrorCodesFabricEBackupInProgress                     FabricErrorCodes = "FABRIC_E_BACKUP_IN_PROGRESS"
	FabricErrorCodesFabricERestoreInProgress                    FabricErrorCodes = "FABRIC_E_RESTORE_IN_PROGRESS"
	FabricErrorCodesFabricEBackupPolicyAlreadyExisting          FabricErrorCodes = "FABRIC_E_BACKUP_POLICY_ALREADY_EXISTING"
	FabricErrorCodesFabricEInvalidServiceType                   FabricErrorCodes = "FABRIC_E_INVALID_SERVICE_TYPE"
	FabricErrorCodesEAccessdenied                               FabricErrorCodes = "E_ACCESSDENIED"
	FabricErrorCodesFabricEInvalidOperation                     FabricErrorCodes = "FABRIC_E_INVALID_OPERATION"
	FabricErrorCodesFabricEServerAuthenticationFailed           FabricErrorCodes = "FABRIC_E_SERVER_AUTHENTICATION_FAILED"
	FabricErrorCodesFabricEConstraintKeyUndefined               FabricErrorCodes = "FABRIC_E_CONSTRAINT_KEY_UNDEFINED"
	FabricErrorCodesFabricENodeIsUp                             FabricErrorCodes = "FABRIC_E_NODE_IS_UP"
	FabricErrorCodesFabricENotPrimary                           FabricErrorCodes = "FABRIC_E_NOT_PRIMARY"
	FabricErrorCodesFabricENoWriteQuorum                        FabricErrorCodes = "FABRIC_E_NO_WRITE_QUORUM"
	FabricErrorCodesFabricEReconfigurationPending               FabricErrorCodes = "FABRIC_E_RECONFIGURATION_PENDING"
	FabricErrorCodesFabricEReplicationQueueFull                 FabricErrorCodes = "FABRIC_E_REPLICATION_QUEUE_FULL"
	FabricErrorCodesFabricEServiceOffline                       FabricErrorCodes = "FABRIC_E_SERVICE_OFFLINE"
	FabricErrorCodesFabricETimeout                              FabricErrorCodes = "FABRIC_E_TIMEOUT"
	FabricErrorCodesEFail                                       FabricErrorCodes = "E_FAIL"
	FabricErrorCodesFabricECommunicationError                   FabricErrorCodes = "FABRIC_E_COMMUNICATION_ERROR"
	FabricErrorCodesFabricEOperationNotComplete                 FabricErrorCodes = "FABRIC_E_OPERATION_NOT_COMPLETE"
	FabricErrorCodesFabricEVolumeAlreadyExists                  FabricErrorCodes = "FABRIC_E_VOLUME_ALREADY_EXISTS"
	FabricErrorCodesFabricEVolumeNotFound                       FabricErrorCodes = "FABRIC_E_VOLUME_NOT_FOUND"
	FabricErrorCodesSerializationError                          FabricErrorCodes = "SerializationError"
	FabricErrorCodesFabricEImagebuilderUnexpectedError          FabricErrorCodes = "FABRIC_E_IMAGEBUILDER_UNEXPECTED_ERROR"
	FabricErrorCodesFabricECertificateNotFound                  FabricErrorCodes = "FABRIC_E_CERTIFICATE_NOT_FOUND"
)

// PossibleFabricErrorCodesValues returns the values of FabricErrorCodes known to this client.
func PossibleFabricErrorCodesValues() []FabricErrorCodes {
	return []FabricErrorCodes{
		FabricErrorCodesFabricEInvalidPartitionKey,
		FabricErrorCodesFabricEImagebuilderValidationError,
		FabricErrorCodesFabricEInvalidAddress,
		FabricErrorCodesFabricEApplicationNotUpgrading,
		FabricErrorCodesFabricEApplicationUpgradeValidationError,
		FabricErrorCodesFabricEFabricNotUpgrading,
		FabricErrorCodesFabricEFabricUpgradeValidationError,
		FabricErrorCodesFabricEInvalidConfiguration,
		FabricErrorCodesFabricEInvalidNameUri,
		FabricErrorCodesFabricEPathTooLong,
		FabricErrorCodesFabricEKeyTooLarge,
		FabricErrorCodesFabricEServiceAffinityChainNotSupported,
		FabricErrorCodesFabricEInvalidAtomicGroup,
		FabricErrorCodesFabricEValueEmpty,
		FabricErrorCodesFabricEBackupIsEnabled,
		FabricErrorCodesFabricERestoreSourceTargetPartitionMismatch,
		FabricErrorCodesFabricEInvalidForStatelessServices,
		FabricErrorCodesFabricEInvalidServiceScalingPolicy,
		FabricErrorCodesEInvalidarg,
		FabricErrorCodesFabricENodeNotFound,
		FabricErrorCodesFabricEApplicationTypeNotFound,
		FabricErrorCodesFabricEApplicationNotFound,
		FabricErrorCodesFabricEServiceTypeNotFound,
		FabricErrorCodesFabricEServiceDoesNotExist,
		FabricErrorCodesFabricEServiceTypeTemplateNotFound,
		FabricErrorCodesFabricEConfigurationSectionNotFound,
		FabricErrorCodesFabricEPartitionNotFound,
		FabricErrorCodesFabricEReplicaDoesNotExist,
		FabricErrorCodesFabricEServiceGroupDoesNotExist,
		FabricErrorCodesFabricEConfigurationParameterNotFound,
		FabricErrorCodesFabricEDirectoryNotFound,
		FabricErrorCodesFabricEFabricVersionNotFound,
		FabricErrorCodesFabricEFileNotFound,
		FabricErrorCodesFabricENameDoesNotExist,
		FabricErrorCodesFabricEPropertyDoesNotExist,
		FabricErrorCodesFabricEEnumerationCompleted,
		FabricErrorCodesFabricEServiceManifestNotFound,
		FabricErrorCodesFabricEKeyNotFound,
		FabricErrorCodesFabricEHealthEntityNotFound,
		FabricErrorCodesFabricEBackupNotEnabled,
		FabricErrorCodesFabricEBackupPolicyNotExisting,
		FabricErrorCodesFabricEFaultAnalysisServiceNotExisting,
		FabricErrorCodesFabricEImagebuilderReservedDirectoryError,
		FabricErrorCodesFabricEApplicationTypeAlreadyExists,
		FabricErrorCodesFabricEApplicationAlreadyExists,
		FabricErrorCodesFabricEApplicationAlreadyInTargetVersion,
		FabricErrorCodesFabricEApplicationTypeProvisionInProgress,
		FabricErrorCodesFabricEApplicationUpgradeInProgress,
		FabricErrorCodesFabricEServiceAlreadyExists,
		FabricErrorCodesFabricEServiceGroupAlreadyExists,
		FabricErrorCodesFabricEApplicationTypeInUse,
		FabricErrorCodesFabricEFabricAlreadyInTargetVersion,
		FabricErrorCodesFabricEFabricVersionAlreadyExists,
		FabricErrorCodesFabricEFabricVersionInUse,
		FabricErrorCodesFabricEFabricUpgradeInProgress,
		FabricErrorCodesFabricENameAlreadyExists,
		FabricErrorCodesFabricENameNotEmpty,
		FabricErrorCodesFabricEPropertyCheckFailed,
		FabricErrorCodesFabricEServiceMetadataMismatch,
		FabricErrorCodesFabricEServiceTypeMismatch,
		FabricErrorCodesFabricEHealthStaleReport,
		FabricErrorCodesFabricESequenceNumberCheckFailed,
		FabricErrorCodesFabricENodeHasNotStoppedYet,
		FabricErrorCodesFabricEInstanceIdMismatch,
		FabricErrorCodesFabricEBackupInProgress,
		FabricErrorCodesFabricERestoreInProgress,
		FabricErrorCodesFabricEBackupPolicyAlreadyExisting,
		FabricErrorCodesFabricEInvalidServiceType,
		FabricErrorCodesEAccessdenied,
		FabricErrorCodesFabricEInvalidOperation,
		FabricErrorCodesFabricEServerAuthenticationFailed,
		FabricErrorCodesFabricEConstraintKeyUndefined,
		FabricErrorCodesFabricENodeIsUp,
		FabricErrorCodesFabricENotPrimary,
		FabricErrorCodesFabricENoWriteQuorum,
		FabricErrorCodesFabricEReconfigurationPending,
		FabricErrorCodesFabricEReplicationQueueFull,
		FabricErrorCodesFabricEServiceOffline,
		FabricErrorCodesFabricETimeout,
		FabricErrorCodesEFail,
		FabricErrorCodesFabricECommunicationError,
		FabricErrorCodesFabricEOperationNotComplete,
		FabricErrorCodesFabricEVolumeAlreadyExists,
		FabricErrorCodesFabricEVolumeNotFound,
		FabricErrorCodesSerializationError,
		FabricErrorCodesFabricEImagebuilderUnexpectedError,
		FabricErrorCodesFabricECertificateNotFound,
	}
}

// IsKnown reports whether f is one of PossibleFabricErrorCodesValues.
func (f FabricErrorCodes) IsKnown() bool {
	return api.IsKnown(f, PossibleFabricErrorCodesValues())
}
