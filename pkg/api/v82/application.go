package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// ApplicationParameter describes an application parameter override to be
// applied when creating or upgrading an application.
type ApplicationParameter struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// NewApplicationParameter returns a parameter with its required fields set.
func NewApplicationParameter(key, value string) *ApplicationParameter {
	return &ApplicationParameter{
		Key:   key,
		Value: value,
	}
}

// ApplicationMetricDescription describes capacity information for a custom
// resource balancing metric.
type ApplicationMetricDescription struct {
	Name                     *string `json:"Name,omitempty"`
	MaximumCapacity          *int64  `json:"MaximumCapacity,omitempty"`
	ReservationCapacity      *int64  `json:"ReservationCapacity,omitempty"`
	TotalApplicationCapacity *int64  `json:"TotalApplicationCapacity,omitempty"`
}

// ApplicationCapacityDescription describes capacity information for
// services of this application.
type ApplicationCapacityDescription struct {
	MinimumNodes       *int64                         `json:"MinimumNodes,omitempty"`
	MaximumNodes       *int64                         `json:"MaximumNodes,omitempty"`
	ApplicationMetrics []ApplicationMetricDescription `json:"ApplicationMetrics,omitempty"`
}

// ManagedApplicationIdentity describes a managed application identity.
type ManagedApplicationIdentity struct {
	Name        string  `json:"Name"`
	PrincipalID *string `json:"PrincipalId,omitempty"`
}

// ManagedApplicationIdentityDescription is the managed application identity
// description.
type ManagedApplicationIdentityDescription struct {
	TokenServiceEndpoint *string                      `json:"TokenServiceEndpoint,omitempty"`
	ManagedIdentities    []ManagedApplicationIdentity `json:"ManagedIdentities,omitempty"`
}

// ApplicationDescription describes a Service Fabric application.
type ApplicationDescription struct {
	Name                       string                                 `json:"Name"`
	TypeName                   string                                 `json:"TypeName"`
	TypeVersion                string                                 `json:"TypeVersion"`
	ParameterList              []ApplicationParameter                 `json:"ParameterList,omitempty"`
	ApplicationCapacity        *ApplicationCapacityDescription        `json:"ApplicationCapacity,omitempty"`
	ManagedApplicationIdentity *ManagedApplicationIdentityDescription `json:"ManagedApplicationIdentity,omitempty"`
}

// NewApplicationDescription returns a description with its required fields
// set.
func NewApplicationDescription(name, typeName, typeVersion string) *ApplicationDescription {
	return &ApplicationDescription{
		Name:        name,
		TypeName:    typeName,
		TypeVersion: typeVersion,
	}
}

// ApplicationInfo is information about a Service Fabric application.
type ApplicationInfo struct {
	ID                         *string                                `json:"Id,omitempty"`
	Name                       *string                                `json:"Name,omitempty"`
	TypeName                   *string                                `json:"TypeName,omitempty"`
	TypeVersion                *string                                `json:"TypeVersion,omitempty"`
	Status                     *ApplicationStatus                     `json:"Status,omitempty"`
	Parameters                 []ApplicationParameter                 `json:"Parameters,omitempty"`
	HealthState                *HealthState                           `json:"HealthState,omitempty"`
	ApplicationDefinitionKind  *ApplicationDefinitionKind             `json:"ApplicationDefinitionKind,omitempty"`
	ManagedApplicationIdentity *ManagedApplicationIdentityDescription `json:"ManagedApplicationIdentity,omitempty"`
}

// PagedApplicationInfoList is the list of applications in the cluster. The
// list is paged when all of the results cannot fit in a single message.
type PagedApplicationInfoList struct {
	ContinuationToken *string           `json:"ContinuationToken,omitempty"`
	Items             []ApplicationInfo `json:"Items,omitempty"`
}

// ApplicationTypeInfo is information about an application type.
type ApplicationTypeInfo struct {
	Name                          *string                        `json:"Name,omitempty"`
	Version                       *string                        `json:"Version,omitempty"`
	DefaultParameterList          []ApplicationParameter         `json:"DefaultParameterList,omitempty"`
	Status                        *ApplicationTypeStatus         `json:"Status,omitempty"`
	StatusDetails                 *string                        `json:"StatusDetails,omitempty"`
	ApplicationTypeDefinitionKind *ApplicationTypeDefinitionKind `json:"ApplicationTypeDefinitionKind,omitempty"`
	ApplicationTypeMetadata       *ApplicationTypeMetadata       `json:"ApplicationTypeMetadata,omitempty"`
}

// ApplicationTypeMetadata is metadata associated with a specific
// application type.
type ApplicationTypeMetadata struct {
	ApplicationTypeBuildPath         *string `json:"ApplicationTypeBuildPath,omitempty"`
	ApplicationPackageReferenceCount *int32  `json:"ApplicationPackageReferenceCount,omitempty"`
}

// PagedApplicationTypeInfoList is the list of application types that are
// provisioned or being provisioned in the cluster.
type PagedApplicationTypeInfoList struct {
	ContinuationToken *string               `json:"ContinuationToken,omitempty"`
	Items             []ApplicationTypeInfo `json:"Items,omitempty"`
}

// BasicProvisionApplicationTypeDescription is implemented by every kind of
// application type provisioning request.
type BasicProvisionApplicationTypeDescription interface {
	GetProvisionApplicationTypeDescriptionBase() *ProvisionApplicationTypeDescriptionBase
}

// ProvisionApplicationTypeDescriptionBase represents the type of
// registration or provision requested, and if the operation needs to be
// asynchronous or not.
type ProvisionApplicationTypeDescriptionBase struct {
	Kind  ProvisionApplicationTypeKind `json:"Kind"`
	Async bool                         `json:"Async"`
}

// GetProvisionApplicationTypeDescriptionBase returns p.
func (p *ProvisionApplicationTypeDescriptionBase) GetProvisionApplicationTypeDescriptionBase() *ProvisionApplicationTypeDescriptionBase {
	return p
}

// ProvisionApplicationTypeDescription provisions an application type from a
// package previously copied to the image store.
type ProvisionApplicationTypeDescription struct {
	ProvisionApplicationTypeDescriptionBase
	ApplicationTypeBuildPath        string                           `json:"ApplicationTypeBuildPath"`
	ApplicationPackageCleanupPolicy *ApplicationPackageCleanupPolicy `json:"ApplicationPackageCleanupPolicy,omitempty"`
}

// NewProvisionApplicationTypeDescription returns a description with its
// required fields set.
func NewProvisionApplicationTypeDescription(async bool, applicationTypeBuildPath string) *ProvisionApplicationTypeDescription {
	return &ProvisionApplicationTypeDescription{
		ProvisionApplicationTypeDescriptionBase: ProvisionApplicationTypeDescriptionBase{
			Kind:  ProvisionApplicationTypeKindImageStorePath,
			Async: async,
		},
		ApplicationTypeBuildPath: applicationTypeBuildPath,
	}
}

// MarshalJSON sets the Kind discriminator.
func (p ProvisionApplicationTypeDescription) MarshalJSON() ([]byte, error) {
	type alias ProvisionApplicationTypeDescription
	p.Kind = ProvisionApplicationTypeKindImageStorePath
	return json.Marshal(alias(p))
}

// ExternalStoreProvisionApplicationTypeDescription provisions an
// application type from an sfpkg downloaded from an external store.
type ExternalStoreProvisionApplicationTypeDescription struct {
	ProvisionApplicationTypeDescriptionBase
	ApplicationPackageDownloadURI string `json:"ApplicationPackageDownloadUri"`
	ApplicationTypeName           string `json:"ApplicationTypeName"`
	ApplicationTypeVersion        string `json:"ApplicationTypeVersion"`
}

// NewExternalStoreProvisionApplicationTypeDescription returns a description
// with its required fields set.
func NewExternalStoreProvisionApplicationTypeDescription(async bool, downloadURI, typeName, typeVersion string) *ExternalStoreProvisionApplicationTypeDescription {
	return &ExternalStoreProvisionApplicationTypeDescription{
		ProvisionApplicationTypeDescriptionBase: ProvisionApplicationTypeDescriptionBase{
			Kind:  ProvisionApplicationTypeKindExternalStore,
			Async: async,
		},
		ApplicationPackageDownloadURI: downloadURI,
		ApplicationTypeName:           typeName,
		ApplicationTypeVersion:        typeVersion,
	}
}

// MarshalJSON sets the Kind discriminator.
func (e ExternalStoreProvisionApplicationTypeDescription) MarshalJSON() ([]byte, error) {
	type alias ExternalStoreProvisionApplicationTypeDescription
	e.Kind = ProvisionApplicationTypeKindExternalStore
	return json.Marshal(alias(e))
}

var provisionApplicationTypeFactories = map[string]func() BasicProvisionApplicationTypeDescription{
	string(ProvisionApplicationTypeKindImageStorePath): func() BasicProvisionApplicationTypeDescription {
		return &ProvisionApplicationTypeDescription{}
	},
	string(ProvisionApplicationTypeKindExternalStore): func() BasicProvisionApplicationTypeDescription {
		return &ExternalStoreProvisionApplicationTypeDescription{}
	},
}

// UnmarshalProvisionApplicationTypeDescription decodes a provisioning
// request by its Kind.
func UnmarshalProvisionApplicationTypeDescription(b []byte) (BasicProvisionApplicationTypeDescription, error) {
	return api.UnmarshalPolymorphic(b, "Kind", provisionApplicationTypeFactories, func() BasicProvisionApplicationTypeDescription {
		return &ProvisionApplicationTypeDescriptionBase{}
	})
}

// UnprovisionApplicationTypeDescriptionInfo describes the operation to
// unregister or unprovision an application type and its version.
type UnprovisionApplicationTypeDescriptionInfo struct {
	ApplicationTypeVersion string `json:"ApplicationTypeVersion"`
	Async                  *bool  `json:"Async,omitempty"`
}

// NewUnprovisionApplicationTypeDescriptionInfo returns a description with
// its required fields set.
func NewUnprovisionApplicationTypeDescriptionInfo(applicationTypeVersion string) *UnprovisionApplicationTypeDescriptionInfo {
	return &UnprovisionApplicationTypeDescriptionInfo{
		ApplicationTypeVersion: applicationTypeVersion,
	}
}

// MonitoringPolicyDescription describes the parameters for monitoring an
// upgrade in Monitored mode. Durations are ISO 8601 strings or a number of
// milliseconds.
type MonitoringPolicyDescription struct {
	FailureAction                           *FailureAction `json:"FailureAction,omitempty"`
	HealthCheckWaitDurationInMilliseconds   *string        `json:"HealthCheckWaitDurationInMilliseconds,omitempty"`
	HealthCheckStableDurationInMilliseconds *string        `json:"HealthCheckStableDurationInMilliseconds,omitempty"`
	HealthCheckRetryTimeoutInMilliseconds   *string        `json:"HealthCheckRetryTimeoutInMilliseconds,omitempty"`
	UpgradeTimeoutInMilliseconds            *string        `json:"UpgradeTimeoutInMilliseconds,omitempty"`
	UpgradeDomainTimeoutInMilliseconds      *string        `json:"UpgradeDomainTimeoutInMilliseconds,omitempty"`
}

// ApplicationUpgradeDescription describes the parameters for an application
// upgrade.
type ApplicationUpgradeDescription struct {
	Name                                   string                                 `json:"Name"`
	TargetApplicationTypeVersion           string                                 `json:"TargetApplicationTypeVersion"`
	Parameters                             []ApplicationParameter                 `json:"Parameters,omitempty"`
	UpgradeKind                            UpgradeKind                            `json:"UpgradeKind"`
	RollingUpgradeMode                     *UpgradeMode                           `json:"RollingUpgradeMode,omitempty"`
	UpgradeReplicaSetCheckTimeoutInSeconds *int64                                 `json:"UpgradeReplicaSetCheckTimeoutInSeconds,omitempty"`
	ForceRestart                           *bool                                  `json:"ForceRestart,omitempty"`
	SortOrder                              *UpgradeSortOrder                      `json:"SortOrder,omitempty"`
	MonitoringPolicy                       *MonitoringPolicyDescription           `json:"MonitoringPolicy,omitempty"`
	ApplicationHealthPolicy                *ApplicationHealthPolicy               `json:"ApplicationHealthPolicy,omitempty"`
	InstanceCloseDelayDurationInSeconds    *int64                                 `json:"InstanceCloseDelayDurationInSeconds,omitempty"`
	ManagedApplicationIdentity             *ManagedApplicationIdentityDescription `json:"ManagedApplicationIdentity,omitempty"`
}

// NewApplicationUpgradeDescription returns a rolling upgrade description
// with its required fields set.
func NewApplicationUpgradeDescription(name, targetApplicationTypeVersion string) *ApplicationUpgradeDescription {
	return &ApplicationUpgradeDescription{
		Name:                         name,
		TargetApplicationTypeVersion: targetApplicationTypeVersion,
		UpgradeKind:                  UpgradeKindRolling,
	}
}

// ApplicationUpgradeUpdateDescription describes the parameters for updating
// an ongoing application upgrade.
type ApplicationUpgradeUpdateDescription struct {
	Name                    string                           `json:"Name"`
	UpgradeKind             UpgradeKind                      `json:"UpgradeKind"`
	ApplicationHealthPolicy *ApplicationHealthPolicy         `json:"ApplicationHealthPolicy,omitempty"`
	UpdateDescription       *RollingUpgradeUpdateDescription `json:"UpdateDescription,omitempty"`
}

// RollingUpgradeUpdateDescription describes the parameters for updating a
// rolling upgrade of application or cluster.
type RollingUpgradeUpdateDescription struct {
	RollingUpgradeMode                      UpgradeMode    `json:"RollingUpgradeMode"`
	ForceRestart                            *bool          `json:"ForceRestart,omitempty"`
	ReplicaSetCheckTimeoutInMilliseconds    *int64         `json:"ReplicaSetCheckTimeoutInMilliseconds,omitempty"`
	FailureAction                           *FailureAction `json:"FailureAction,omitempty"`
	HealthCheckWaitDurationInMilliseconds   *string        `json:"HealthCheckWaitDurationInMilliseconds,omitempty"`
	HealthCheckStableDurationInMilliseconds *string        `json:"HealthCheckStableDurationInMilliseconds,omitempty"`
	HealthCheckRetryTimeoutInMilliseconds   *string        `json:"HealthCheckRetryTimeoutInMilliseconds,omitempty"`
	UpgradeTimeoutInMilliseconds            *string        `json:"UpgradeTimeoutInMilliseconds,omitempty"`
	UpgradeDomainTimeoutInMilliseconds      *string        `json:"UpgradeDomainTimeoutInMilliseconds,omitempty"`
	InstanceCloseDelayDurationInSeconds     *int64         `json:"InstanceCloseDelayDurationInSeconds,omitempty"`
}

// ResumeApplicationUpgradeDescription describes the parameters for resuming
// an unmonitored manual application upgrade.
type ResumeApplicationUpgradeDescription struct {
	UpgradeDomainName string `json:"UpgradeDomainName"`
}

// NewResumeApplicationUpgradeDescription returns a description with its
// required fields set.
func NewResumeApplicationUpgradeDescription(upgradeDomainName string) *ResumeApplicationUpgradeDescription {
	return &ResumeApplicationUpgradeDescription{
		UpgradeDomainName: upgradeDomainName,
	}
}

// ApplicationUpgradeProgressInfo describes the parameters for an
// application upgrade and its progress.
type ApplicationUpgradeProgressInfo struct {
	Name                                *string                            `json:"Name,omitempty"`
	TypeName                            *string                            `json:"TypeName,omitempty"`
	TargetApplicationTypeVersion        *string                            `json:"TargetApplicationTypeVersion,omitempty"`
	UpgradeDomains                      []UpgradeDomainInfo                `json:"UpgradeDomains,omitempty"`
	UpgradeUnits                        []UpgradeDomainInfo                `json:"UpgradeUnits,omitempty"`
	UpgradeState                        *UpgradeState                      `json:"UpgradeState,omitempty"`
	NextUpgradeDomain                   *string                            `json:"NextUpgradeDomain,omitempty"`
	RollingUpgradeMode                  *UpgradeMode                       `json:"RollingUpgradeMode,omitempty"`
	UpgradeDescription                  *ApplicationUpgradeDescription     `json:"UpgradeDescription,omitempty"`
	UpgradeDurationInMilliseconds       *string                            `json:"UpgradeDurationInMilliseconds,omitempty"`
	UpgradeDomainDurationInMilliseconds *string                            `json:"UpgradeDomainDurationInMilliseconds,omitempty"`
	UnhealthyEvaluations                []HealthEvaluationWrapper          `json:"UnhealthyEvaluations,omitempty"`
	CurrentUpgradeDomainProgress        *CurrentUpgradeDomainProgressInfo  `json:"CurrentUpgradeDomainProgress,omitempty"`
	StartTimestampUtc                   *string                            `json:"StartTimestampUtc,omitempty"`
	FailureTimestampUtc                 *string                            `json:"FailureTimestampUtc,omitempty"`
	FailureReason                       *FailureReason                     `json:"FailureReason,omitempty"`
	UpgradeDomainProgressAtFailure      *FailedUpgradeDomainProgressObject `json:"UpgradeDomainProgressAtFailure,omitempty"`
	UpgradeStatusDetails                *string                            `json:"UpgradeStatusDetails,omitempty"`
	IsNodeByNode                        *bool                              `json:"IsNodeByNode,omitempty"`
}

// ApplicationLoadMetricInformation describes load information for a custom
// resource balancing metric.
type ApplicationLoadMetricInformation struct {
	Name                *string `json:"Name,omitempty"`
	ReservationCapacity *int64  `json:"ReservationCapacity,omitempty"`
	ApplicationCapacity *int64  `json:"ApplicationCapacity,omitempty"`
	ApplicationLoad     *int64  `json:"ApplicationLoad,omitempty"`
}

// ApplicationLoadInfo is load information about a Service Fabric
// application.
type ApplicationLoadInfo struct {
	ID                               *string                            `json:"Id,omitempty"`
	MinimumNodes                     *int64                             `json:"MinimumNodes,omitempty"`
	MaximumNodes                     *int64                             `json:"MaximumNodes,omitempty"`
	NodeCount                        *int64                             `json:"NodeCount,omitempty"`
	ApplicationLoadMetricInformation []ApplicationLoadMetricInformation `json:"ApplicationLoadMetricInformation,omitempty"`
}

// DeployedApplicationInfo is information about an application deployed on
// a Service Fabric node.
type DeployedApplicationInfo struct {
	ID            *string      `json:"Id,omitempty"`
	Name          *string      `json:"Name,omitempty"`
	TypeName      *string      `json:"TypeName,omitempty"`
	TypeVersion   *string      `json:"TypeVersion,omitempty"`
	Status        *string      `json:"Status,omitempty"`
	WorkDirectory *string      `json:"WorkDirectory,omitempty"`
	LogDirectory  *string      `json:"LogDirectory,omitempty"`
	TempDirectory *string      `json:"TempDirectory,omitempty"`
	HealthState   *HealthState `json:"HealthState,omitempty"`
}
