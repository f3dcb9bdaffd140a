package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"
)

// ClusterManifest contains the cluster manifest XML.
type ClusterManifest struct {
	Manifest *string `json:"Manifest,omitempty"`
}

// ClusterVersion is the cluster's current fabric code version.
type ClusterVersion struct {
	Version *string `json:"Version,omitempty"`
}

// ClusterConfiguration contains the standalone cluster configuration JSON.
type ClusterConfiguration struct {
	ClusterConfiguration *string `json:"ClusterConfiguration,omitempty"`
}

// ClusterHealthChunkQueryDescription holds the query settings of a cluster
// health request that carries health policies in its body.
type ClusterHealthChunkQueryDescription struct {
	ClusterHealthPolicy        *ClusterHealthPolicy             `json:"ClusterHealthPolicy,omitempty"`
	ApplicationHealthPolicyMap []ApplicationHealthPolicyMapItem `json:"ApplicationHealthPolicyMap,omitempty"`
}

// FabricCodeVersionInfo is information about a provisioned fabric code
// version.
type FabricCodeVersionInfo struct {
	CodeVersion *string `json:"CodeVersion,omitempty"`
}

// FabricConfigVersionInfo is information about a provisioned fabric config
// version.
type FabricConfigVersionInfo struct {
	ConfigVersion *string `json:"ConfigVersion,omitempty"`
}

// ProvisionFabricDescription describes the parameters for provisioning a
// cluster.
type ProvisionFabricDescription struct {
	CodeFilePath            *string `json:"CodeFilePath,omitempty"`
	ClusterManifestFilePath *string `json:"ClusterManifestFilePath,omitempty"`
}

// UnprovisionFabricDescription describes the parameters for unprovisioning
// a cluster.
type UnprovisionFabricDescription struct {
	CodeVersion   *string `json:"CodeVersion,omitempty"`
	ConfigVersion *string `json:"ConfigVersion,omitempty"`
}

// UpgradeDomainInfo is information about an upgrade domain.
type UpgradeDomainInfo struct {
	Name  *string             `json:"Name,omitempty"`
	State *UpgradeDomainState `json:"State,omitempty"`
}

// NodeUpgradeProgressInfo is information about the upgrading node and its
// status.
type NodeUpgradeProgressInfo struct {
	NodeName            *string              `json:"NodeName,omitempty"`
	UpgradePhase        *string              `json:"UpgradePhase,omitempty"`
	PendingSafetyChecks []SafetyCheckWrapper `json:"PendingSafetyChecks,omitempty"`
}

// SafetyCheckWrapper wraps a safety check performed by Service Fabric
// before continuing with an operation.
type SafetyCheckWrapper struct {
	SafetyCheck *SafetyCheck `json:"SafetyCheck,omitempty"`
}

// SafetyCheck represents a safety check performed by Service Fabric before
// continuing with the operations. The partition-scoped kinds carry a
// PartitionId.
type SafetyCheck struct {
	Kind        string  `json:"Kind"`
	PartitionID *string `json:"PartitionId,omitempty"`
}

// CurrentUpgradeDomainProgressInfo is information about the current
// in-progress upgrade domain.
type CurrentUpgradeDomainProgressInfo struct {
	DomainName              *string                   `json:"DomainName,omitempty"`
	NodeUpgradeProgressList []NodeUpgradeProgressInfo `json:"NodeUpgradeProgressList,omitempty"`
}

// FailedUpgradeDomainProgressObject is the detailed upgrade progress for
// nodes in the current upgrade domain at the point of failure.
type FailedUpgradeDomainProgressObject struct {
	DomainName              *string                   `json:"DomainName,omitempty"`
	NodeUpgradeProgressList []NodeUpgradeProgressInfo `json:"NodeUpgradeProgressList,omitempty"`
}

// ClusterUpgradeDescriptionObject represents a ServiceFabric cluster
// upgrade.
type ClusterUpgradeDescriptionObject struct {
	ConfigVersion                          *string                           `json:"ConfigVersion,omitempty"`
	CodeVersion                            *string                           `json:"CodeVersion,omitempty"`
	UpgradeKind                            *UpgradeKind                      `json:"UpgradeKind,omitempty"`
	RollingUpgradeMode                     *UpgradeMode                      `json:"RollingUpgradeMode,omitempty"`
	UpgradeReplicaSetCheckTimeoutInSeconds *int64                            `json:"UpgradeReplicaSetCheckTimeoutInSeconds,omitempty"`
	ForceRestart                           *bool                             `json:"ForceRestart,omitempty"`
	SortOrder                              *UpgradeSortOrder                 `json:"SortOrder,omitempty"`
	EnableDeltaHealthEvaluation            *bool                             `json:"EnableDeltaHealthEvaluation,omitempty"`
	MonitoringPolicy                       *MonitoringPolicyDescription      `json:"MonitoringPolicy,omitempty"`
	ClusterHealthPolicy                    *ClusterHealthPolicy              `json:"ClusterHealthPolicy,omitempty"`
	ClusterUpgradeHealthPolicy             *ClusterUpgradeHealthPolicyObject `json:"ClusterUpgradeHealthPolicy,omitempty"`
	ApplicationHealthPolicyMap             *ApplicationHealthPolicies        `json:"ApplicationHealthPolicyMap,omitempty"`
}

// StartClusterUpgradeDescription describes the parameters for starting a
// cluster upgrade.
type StartClusterUpgradeDescription struct {
	ClusterUpgradeDescriptionObject
	InstanceCloseDelayDurationInSeconds *int64 `json:"InstanceCloseDelayDurationInSeconds,omitempty"`
}

// ResumeClusterUpgradeDescription describes the parameters for resuming a
// cluster upgrade.
type ResumeClusterUpgradeDescription struct {
	UpgradeDomain string `json:"UpgradeDomain"`
}

// NewResumeClusterUpgradeDescription returns a description with its
// required fields set.
func NewResumeClusterUpgradeDescription(upgradeDomain string) *ResumeClusterUpgradeDescription {
	return &ResumeClusterUpgradeDescription{
		UpgradeDomain: upgradeDomain,
	}
}

// ClusterUpgradeProgressObject is information about a cluster upgrade.
type ClusterUpgradeProgressObject struct {
	CodeVersion                         *string                            `json:"CodeVersion,omitempty"`
	ConfigVersion                       *string                            `json:"ConfigVersion,omitempty"`
	UpgradeDomains                      []UpgradeDomainInfo                `json:"UpgradeDomains,omitempty"`
	UpgradeUnits                        []UpgradeDomainInfo                `json:"UpgradeUnits,omitempty"`
	UpgradeState                        *UpgradeState                      `json:"UpgradeState,omitempty"`
	NextUpgradeDomain                   *string                            `json:"NextUpgradeDomain,omitempty"`
	RollingUpgradeMode                  *UpgradeMode                       `json:"RollingUpgradeMode,omitempty"`
	UpgradeDescription                  *ClusterUpgradeDescriptionObject   `json:"UpgradeDescription,omitempty"`
	UpgradeDurationInMilliseconds       *string                            `json:"UpgradeDurationInMilliseconds,omitempty"`
	UpgradeDomainDurationInMilliseconds *string                            `json:"UpgradeDomainDurationInMilliseconds,omitempty"`
	UnhealthyEvaluations                []HealthEvaluationWrapper          `json:"UnhealthyEvaluations,omitempty"`
	CurrentUpgradeDomainProgress        *CurrentUpgradeDomainProgressInfo  `json:"CurrentUpgradeDomainProgress,omitempty"`
	StartTimestampUtc                   *string                            `json:"StartTimestampUtc,omitempty"`
	FailureTimestampUtc                 *string                            `json:"FailureTimestampUtc,omitempty"`
	FailureReason                       *FailureReason                     `json:"FailureReason,omitempty"`
	UpgradeDomainProgressAtFailure      *FailedUpgradeDomainProgressObject `json:"UpgradeDomainProgressAtFailure,omitempty"`
	IsNodeByNode                        *bool                              `json:"IsNodeByNode,omitempty"`
}

// ClusterLoadInfo is information about load in a Service Fabric cluster.
type ClusterLoadInfo struct {
	LastBalancingStartTimeUtc *date.Time              `json:"LastBalancingStartTimeUtc,omitempty"`
	LastBalancingEndTimeUtc   *date.Time              `json:"LastBalancingEndTimeUtc,omitempty"`
	LoadMetricInformation     []LoadMetricInformation `json:"LoadMetricInformation,omitempty"`
}

// LoadMetricInformation represents data structure that contains load
// information for a certain metric in a cluster.
type LoadMetricInformation struct {
	Name                     *string `json:"Name,omitempty"`
	IsBalancedBefore         *bool   `json:"IsBalancedBefore,omitempty"`
	IsBalancedAfter          *bool   `json:"IsBalancedAfter,omitempty"`
	DeviationBefore          *string `json:"DeviationBefore,omitempty"`
	DeviationAfter           *string `json:"DeviationAfter,omitempty"`
	BalancingThreshold       *string `json:"BalancingThreshold,omitempty"`
	Action                   *string `json:"Action,omitempty"`
	ActivityThreshold        *string `json:"ActivityThreshold,omitempty"`
	ClusterCapacity          *string `json:"ClusterCapacity,omitempty"`
	ClusterLoad              *string `json:"ClusterLoad,omitempty"`
	CurrentClusterLoad       *string `json:"CurrentClusterLoad,omitempty"`
	ClusterRemainingCapacity *string `json:"ClusterRemainingCapacity,omitempty"`
	NodeBufferPercentage     *string `json:"NodeBufferPercentage,omitempty"`
	MinNodeLoadValue         *string `json:"MinNodeLoadValue,omitempty"`
	MaxNodeLoadValue         *string `json:"MaxNodeLoadValue,omitempty"`
}

// FabricError is the REST API operations for Service Fabric return HTTP
// status codes and this body on failure.
type FabricError struct {
	Error FabricErrorError `json:"Error"`
}

// NewFabricError returns an error body with its required fields set.
func NewFabricError(code FabricErrorCodes) *FabricError {
	return &FabricError{
		Error: FabricErrorError{
			Code: code,
		},
	}
}

// FabricErrorError is the error object containing error code and error
// message.
type FabricErrorError struct {
	Code    FabricErrorCodes `json:"Code"`
	Message *string          `json:"Message,omitempty"`
}
