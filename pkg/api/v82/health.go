package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// HealthInformation represents common health reporting information. It is
// included in all health reports sent to the health store and in all health
// events returned by health queries.
type HealthInformation struct {
	SourceID                 string      `json:"SourceId"`
	Property                 string      `json:"Property"`
	HealthState              HealthState `json:"HealthState"`
	TimeToLiveInMilliSeconds *string     `json:"TimeToLiveInMilliSeconds,omitempty"`
	Description              *string     `json:"Description,omitempty"`
	SequenceNumber           *string     `json:"SequenceNumber,omitempty"`
	RemoveWhenExpired        *bool       `json:"RemoveWhenExpired,omitempty"`
	HealthReportID           *string     `json:"HealthReportId,omitempty"`
}

// NewHealthInformation returns a health report with its required fields set.
func NewHealthInformation(sourceID, property string, healthState HealthState) *HealthInformation {
	return &HealthInformation{
		SourceID:    sourceID,
		Property:    property,
		HealthState: healthState,
	}
}

// HealthEvent represents health information reported on a health entity,
// such as cluster, application or node, with additional metadata added by
// the Health Manager.
type HealthEvent struct {
	HealthInformation
	IsExpired                *bool      `json:"IsExpired,omitempty"`
	SourceUtcTimestamp       *date.Time `json:"SourceUtcTimestamp,omitempty"`
	LastModifiedUtcTimestamp *date.Time `json:"LastModifiedUtcTimestamp,omitempty"`
	LastOkTransitionAt       *date.Time `json:"LastOkTransitionAt,omitempty"`
	LastWarningTransitionAt  *date.Time `json:"LastWarningTransitionAt,omitempty"`
	LastErrorTransitionAt    *date.Time `json:"LastErrorTransitionAt,omitempty"`
}

// NewHealthEvent returns a health event with its required fields set.
func NewHealthEvent(sourceID, property string, healthState HealthState) *HealthEvent {
	return &HealthEvent{
		HealthInformation: *NewHealthInformation(sourceID, property, healthState),
	}
}

// HealthStateCount represents information about how many health entities
// are in Ok, Warning and Error health state.
type HealthStateCount struct {
	OkCount      *int64 `json:"OkCount,omitempty"`
	WarningCount *int64 `json:"WarningCount,omitempty"`
	ErrorCount   *int64 `json:"ErrorCount,omitempty"`
}

// EntityKindHealthStateCount represents the health state count for entities
// of the specified entity kind.
type EntityKindHealthStateCount struct {
	EntityKind       *EntityKind       `json:"EntityKind,omitempty"`
	HealthStateCount *HealthStateCount `json:"HealthStateCount,omitempty"`
}

// HealthStatistics keeps track of how many children of an entity are in
// each health state.
type HealthStatistics struct {
	HealthStateCountList []EntityKindHealthStateCount `json:"HealthStateCountList,omitempty"`
}

// EntityHealth holds the health of a Service Fabric entity. It is embedded
// by every entity health type.
type EntityHealth struct {
	AggregatedHealthState *HealthState              `json:"AggregatedHealthState,omitempty"`
	HealthEvents          []HealthEvent             `json:"HealthEvents,omitempty"`
	UnhealthyEvaluations  []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
	HealthStatistics      *HealthStatistics         `json:"HealthStatistics,omitempty"`
}

// EntityHealthState is the base of the aggregated health state of an entity.
type EntityHealthState struct {
	AggregatedHealthState *HealthState `json:"AggregatedHealthState,omitempty"`
}

// HealthEvaluationWrapper wraps a health evaluation.
type HealthEvaluationWrapper struct {
	HealthEvaluation BasicHealthEvaluation `json:"HealthEvaluation,omitempty"`
}

// UnmarshalJSON decodes the wrapped evaluation by its Kind.
func (w *HealthEvaluationWrapper) UnmarshalJSON(b []byte) error {
	var raw struct {
		HealthEvaluation json.RawMessage `json:"HealthEvaluation"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	w.HealthEvaluation = nil
	if len(raw.HealthEvaluation) == 0 {
		return nil
	}

	var err error
	w.HealthEvaluation, err = UnmarshalHealthEvaluation(raw.HealthEvaluation)
	return err
}

// BasicHealthEvaluation is implemented by every health evaluation kind.
type BasicHealthEvaluation interface {
	GetHealthEvaluation() *HealthEvaluation
}

// HealthEvaluation represents a health evaluation which describes the data
// and the algorithm used by the health manager to evaluate the health of an
// entity. It is also the decoded form of an unknown evaluation kind.
type HealthEvaluation struct {
	Kind                  HealthEvaluationKind `json:"Kind"`
	AggregatedHealthState *HealthState         `json:"AggregatedHealthState,omitempty"`
	Description           *string              `json:"Description,omitempty"`
}

// GetHealthEvaluation returns h.
func (h *HealthEvaluation) GetHealthEvaluation() *HealthEvaluation { return h }

var healthEvaluationFactories = map[string]func() BasicHealthEvaluation{
	string(HealthEvaluationKindEvent):             func() BasicHealthEvaluation { return &EventHealthEvaluation{} },
	string(HealthEvaluationKindNode):              func() BasicHealthEvaluation { return &NodeHealthEvaluation{} },
	string(HealthEvaluationKindNodes):             func() BasicHealthEvaluation { return &NodesHealthEvaluation{} },
	string(HealthEvaluationKindApplication):       func() BasicHealthEvaluation { return &ApplicationHealthEvaluation{} },
	string(HealthEvaluationKindApplications):      func() BasicHealthEvaluation { return &ApplicationsHealthEvaluation{} },
	string(HealthEvaluationKindService):           func() BasicHealthEvaluation { return &ServiceHealthEvaluation{} },
	string(HealthEvaluationKindServices):          func() BasicHealthEvaluation { return &ServicesHealthEvaluation{} },
	string(HealthEvaluationKindPartition):         func() BasicHealthEvaluation { return &PartitionHealthEvaluation{} },
	string(HealthEvaluationKindPartitions):        func() BasicHealthEvaluation { return &PartitionsHealthEvaluation{} },
	string(HealthEvaluationKindReplica):           func() BasicHealthEvaluation { return &ReplicaHealthEvaluation{} },
	string(HealthEvaluationKindReplicas):          func() BasicHealthEvaluation { return &ReplicasHealthEvaluation{} },
	string(HealthEvaluationKindSystemApplication): func() BasicHealthEvaluation { return &SystemApplicationHealthEvaluation{} },
	string(HealthEvaluationKindDeltaNodesCheck):   func() BasicHealthEvaluation { return &DeltaNodesCheckHealthEvaluation{} },
}

// UnmarshalHealthEvaluation decodes a health evaluation of any kind.
func UnmarshalHealthEvaluation(b []byte) (BasicHealthEvaluation, error) {
	return api.UnmarshalPolymorphic(b, "Kind", healthEvaluationFactories, func() BasicHealthEvaluation { return &HealthEvaluation{} })
}

// EventHealthEvaluation represents health evaluation of a HealthEvent that
// was reported on the entity.
type EventHealthEvaluation struct {
	HealthEvaluation
	ConsiderWarningAsError *bool        `json:"ConsiderWarningAsError,omitempty"`
	UnhealthyEvent         *HealthEvent `json:"UnhealthyEvent,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (e EventHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias EventHealthEvaluation
	e.Kind = HealthEvaluationKindEvent
	return json.Marshal(alias(e))
}

// NodeHealthEvaluation represents health evaluation for a node.
type NodeHealthEvaluation struct {
	HealthEvaluation
	NodeName             *string                   `json:"NodeName,omitempty"`
	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (n NodeHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias NodeHealthEvaluation
	n.Kind = HealthEvaluationKindNode
	return json.Marshal(alias(n))
}

// NodesHealthEvaluation represents health evaluation for nodes.
type NodesHealthEvaluation struct {
	HealthEvaluation
	MaxPercentUnhealthyNodes *int32                    `json:"MaxPercentUnhealthyNodes,omitempty"`
	TotalCount               *int64                    `json:"TotalCount,omitempty"`
	UnhealthyEvaluations     []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (n NodesHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias NodesHealthEvaluation
	n.Kind = HealthEvaluationKindNodes
	return json.Marshal(alias(n))
}

// ApplicationHealthEvaluation represents health evaluation for an
// application.
type ApplicationHealthEvaluation struct {
	HealthEvaluation
	ApplicationName      *string                   `json:"ApplicationName,omitempty"`
	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (a ApplicationHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ApplicationHealthEvaluation
	a.Kind = HealthEvaluationKindApplication
	return json.Marshal(alias(a))
}

// ApplicationsHealthEvaluation represents health evaluation for
// applications.
type ApplicationsHealthEvaluation struct {
	HealthEvaluation
	MaxPercentUnhealthyApplications *int32                    `json:"MaxPercentUnhealthyApplications,omitempty"`
	TotalCount                      *int64                    `json:"TotalCount,omitempty"`
	UnhealthyEvaluations            []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (a ApplicationsHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ApplicationsHealthEvaluation
	a.Kind = HealthEvaluationKindApplications
	return json.Marshal(alias(a))
}

// ServiceHealthEvaluation represents health evaluation for a service.
type ServiceHealthEvaluation struct {
	HealthEvaluation
	ServiceName          *string                   `json:"ServiceName,omitempty"`
	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (s ServiceHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ServiceHealthEvaluation
	s.Kind = HealthEvaluationKindService
	return json.Marshal(alias(s))
}

// ServicesHealthEvaluation represents health evaluation for services of a
// certain service type belonging to an application.
type ServicesHealthEvaluation struct {
	HealthEvaluation
	ServiceTypeName             *string                   `json:"ServiceTypeName,omitempty"`
	MaxPercentUnhealthyServices *int32                    `json:"MaxPercentUnhealthyServices,omitempty"`
	TotalCount                  *int64                    `json:"TotalCount,omitempty"`
	UnhealthyEvaluations        []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (s ServicesHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ServicesHealthEvaluation
	s.Kind = HealthEvaluationKindServices
	return json.Marshal(alias(s))
}

// PartitionHealthEvaluation represents health evaluation for a partition.
type PartitionHealthEvaluation struct {
	HealthEvaluation
	PartitionID          *string                   `json:"PartitionId,omitempty"`
	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (p PartitionHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias PartitionHealthEvaluation
	p.Kind = HealthEvaluationKindPartition
	return json.Marshal(alias(p))
}

// PartitionsHealthEvaluation represents health evaluation for the
// partitions of a service.
type PartitionsHealthEvaluation struct {
	HealthEvaluation
	MaxPercentUnhealthyPartitionsPerService *int32                    `json:"MaxPercentUnhealthyPartitionsPerService,omitempty"`
	TotalCount                              *int64                    `json:"TotalCount,omitempty"`
	UnhealthyEvaluations                    []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (p PartitionsHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias PartitionsHealthEvaluation
	p.Kind = HealthEvaluationKindPartitions
	return json.Marshal(alias(p))
}

// ReplicaHealthEvaluation represents health evaluation for a replica.
type ReplicaHealthEvaluation struct {
	HealthEvaluation
	PartitionID          *string                   `json:"PartitionId,omitempty"`
	ReplicaOrInstanceID  *string                   `json:"ReplicaOrInstanceId,omitempty"`
	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (r ReplicaHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ReplicaHealthEvaluation
	r.Kind = HealthEvaluationKindReplica
	return json.Marshal(alias(r))
}

// ReplicasHealthEvaluation represents health evaluation for the replicas of
// a partition.
type ReplicasHealthEvaluation struct {
	HealthEvaluation
	MaxPercentUnhealthyReplicasPerPartition *int32                    `json:"MaxPercentUnhealthyReplicasPerPartition,omitempty"`
	TotalCount                              *int64                    `json:"TotalCount,omitempty"`
	UnhealthyEvaluations                    []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (r ReplicasHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ReplicasHealthEvaluation
	r.Kind = HealthEvaluationKindReplicas
	return json.Marshal(alias(r))
}

// SystemApplicationHealthEvaluation represents health evaluation for the
// fabric:/System application.
type SystemApplicationHealthEvaluation struct {
	HealthEvaluation
	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (s SystemApplicationHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias SystemApplicationHealthEvaluation
	s.Kind = HealthEvaluationKindSystemApplication
	return json.Marshal(alias(s))
}

// DeltaNodesCheckHealthEvaluation represents health evaluation for delta
// nodes during a cluster upgrade.
type DeltaNodesCheckHealthEvaluation struct {
	HealthEvaluation
	BaselineErrorCount            *int64                    `json:"BaselineErrorCount,omitempty"`
	BaselineTotalCount            *int64                    `json:"BaselineTotalCount,omitempty"`
	MaxPercentDeltaUnhealthyNodes *int32                    `json:"MaxPercentDeltaUnhealthyNodes,omitempty"`
	TotalCount                    *int64                    `json:"TotalCount,omitempty"`
	UnhealthyEvaluations          []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (d DeltaNodesCheckHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias DeltaNodesCheckHealthEvaluation
	d.Kind = HealthEvaluationKindDeltaNodesCheck
	return json.Marshal(alias(d))
}

// ServiceTypeHealthPolicy represents the health policy used to evaluate the
// health of services belonging to a service type.
type ServiceTypeHealthPolicy struct {
	MaxPercentUnhealthyPartitionsPerService *int32 `json:"MaxPercentUnhealthyPartitionsPerService,omitempty"`
	MaxPercentUnhealthyReplicasPerPartition *int32 `json:"MaxPercentUnhealthyReplicasPerPartition,omitempty"`
	MaxPercentUnhealthyServices             *int32 `json:"MaxPercentUnhealthyServices,omitempty"`
}

// ServiceTypeHealthPolicyMapItem defines an item in ServiceTypeHealthPolicyMap.
type ServiceTypeHealthPolicyMapItem struct {
	Key   string                  `json:"Key"`
	Value ServiceTypeHealthPolicy `json:"Value"`
}

// ApplicationHealthPolicy defines a health policy used to evaluate the
// health of an application or one of its children entities.
type ApplicationHealthPolicy struct {
	ConsiderWarningAsError                  *bool                            `json:"ConsiderWarningAsError,omitempty"`
	MaxPercentUnhealthyDeployedApplications *int32                           `json:"MaxPercentUnhealthyDeployedApplications,omitempty"`
	DefaultServiceTypeHealthPolicy          *ServiceTypeHealthPolicy         `json:"DefaultServiceTypeHealthPolicy,omitempty"`
	ServiceTypeHealthPolicyMap              []ServiceTypeHealthPolicyMapItem `json:"ServiceTypeHealthPolicyMap,omitempty"`
}

// ApplicationHealthPolicyMapItem defines an item in ApplicationHealthPolicyMap.
type ApplicationHealthPolicyMapItem struct {
	Key   string                  `json:"Key"`
	Value ApplicationHealthPolicy `json:"Value"`
}

// ApplicationHealthPolicies defines the application health policy map used
// to evaluate the health of an application or one of its children entities.
type ApplicationHealthPolicies struct {
	ApplicationHealthPolicyMap []ApplicationHealthPolicyMapItem `json:"ApplicationHealthPolicyMap,omitempty"`
}

// ApplicationTypeHealthPolicyMapItem defines an item in
// ApplicationTypeHealthPolicyMap.
type ApplicationTypeHealthPolicyMapItem struct {
	Key   string `json:"Key"`
	Value int32  `json:"Value"`
}

// NodeTypeHealthPolicyMapItem defines an item in NodeTypeHealthPolicyMap.
type NodeTypeHealthPolicyMapItem struct {
	Key   string `json:"Key"`
	Value int32  `json:"Value"`
}

// ClusterHealthPolicy defines a health policy used to evaluate the health
// of the cluster or of a cluster node.
type ClusterHealthPolicy struct {
	ConsiderWarningAsError          *bool                                `json:"ConsiderWarningAsError,omitempty"`
	MaxPercentUnhealthyNodes        *int32                               `json:"MaxPercentUnhealthyNodes,omitempty"`
	MaxPercentUnhealthyApplications *int32                               `json:"MaxPercentUnhealthyApplications,omitempty"`
	ApplicationTypeHealthPolicyMap  []ApplicationTypeHealthPolicyMapItem `json:"ApplicationTypeHealthPolicyMap,omitempty"`
	NodeTypeHealthPolicyMap         []NodeTypeHealthPolicyMapItem        `json:"NodeTypeHealthPolicyMap,omitempty"`
}

// ClusterHealthPolicies holds the health policies used to evaluate the
// health of the cluster.
type ClusterHealthPolicies struct {
	ApplicationHealthPolicyMap []ApplicationHealthPolicyMapItem `json:"ApplicationHealthPolicyMap,omitempty"`
	ClusterHealthPolicy        *ClusterHealthPolicy             `json:"ClusterHealthPolicy,omitempty"`
}

// ClusterUpgradeHealthPolicyObject defines a health policy used to evaluate
// the health of the cluster during a cluster upgrade.
type ClusterUpgradeHealthPolicyObject struct {
	MaxPercentDeltaUnhealthyNodes              *int32 `json:"MaxPercentDeltaUnhealthyNodes,omitempty"`
	MaxPercentUpgradeDomainDeltaUnhealthyNodes *int32 `json:"MaxPercentUpgradeDomainDeltaUnhealthyNodes,omitempty"`
}

// ApplicationHealthState represents the health state of an application.
type ApplicationHealthState struct {
	EntityHealthState
	Name *string `json:"Name,omitempty"`
}

// ServiceHealthState represents the health state of a service.
type ServiceHealthState struct {
	EntityHealthState
	ServiceName *string `json:"ServiceName,omitempty"`
}

// PartitionHealthState represents the health state of a partition.
type PartitionHealthState struct {
	EntityHealthState
	PartitionID *string `json:"PartitionId,omitempty"`
}

// ReplicaHealthState represents a base class for stateful service replica
// or stateless service instance health state.
type ReplicaHealthState struct {
	EntityHealthState
	ServiceKind ServiceKind `json:"ServiceKind"`
	PartitionID *string     `json:"PartitionId,omitempty"`
	ReplicaID   *string     `json:"ReplicaId,omitempty"`
	InstanceID  *string     `json:"InstanceId,omitempty"`
}

// ClusterHealth represents the health of the cluster.
type ClusterHealth struct {
	EntityHealth
	NodeHealthStates        []NodeHealthState        `json:"NodeHealthStates,omitempty"`
	ApplicationHealthStates []ApplicationHealthState `json:"ApplicationHealthStates,omitempty"`
}

// NodeHealth contains information about the health of a node.
type NodeHealth struct {
	EntityHealth
	Name *string `json:"Name,omitempty"`
}

// ApplicationHealth represents the health of an application.
type ApplicationHealth struct {
	EntityHealth
	Name                *string              `json:"Name,omitempty"`
	ServiceHealthStates []ServiceHealthState `json:"ServiceHealthStates,omitempty"`
}

// ServiceHealth represents the health of a service.
type ServiceHealth struct {
	EntityHealth
	Name                  *string                `json:"Name,omitempty"`
	PartitionHealthStates []PartitionHealthState `json:"PartitionHealthStates,omitempty"`
}

// PartitionHealth represents the health of a partition.
type PartitionHealth struct {
	EntityHealth
	PartitionID         *string              `json:"PartitionId,omitempty"`
	ReplicaHealthStates []ReplicaHealthState `json:"ReplicaHealthStates,omitempty"`
}

// BasicReplicaHealth is implemented by stateful replica and stateless
// instance health.
type BasicReplicaHealth interface {
	GetReplicaHealth() *ReplicaHealth
}

// ReplicaHealth represents the health of a stateful service replica or a
// stateless service instance.
type ReplicaHealth struct {
	EntityHealth
	ServiceKind ServiceKind `json:"ServiceKind"`
	PartitionID *string     `json:"PartitionId,omitempty"`
}

// GetReplicaHealth returns r.
func (r *ReplicaHealth) GetReplicaHealth() *ReplicaHealth { return r }

// StatefulServiceReplicaHealth represents the health of the stateful
// service replica.
type StatefulServiceReplicaHealth struct {
	ReplicaHealth
	ReplicaID *string `json:"ReplicaId,omitempty"`
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatefulServiceReplicaHealth) MarshalJSON() ([]byte, error) {
	type alias StatefulServiceReplicaHealth
	s.ServiceKind = ServiceKindStateful
	return json.Marshal(alias(s))
}

// StatelessServiceInstanceHealth represents the health of the stateless
// service instance.
type StatelessServiceInstanceHealth struct {
	ReplicaHealth
	InstanceID *string `json:"InstanceId,omitempty"`
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatelessServiceInstanceHealth) MarshalJSON() ([]byte, error) {
	type alias StatelessServiceInstanceHealth
	s.ServiceKind = ServiceKindStateless
	return json.Marshal(alias(s))
}

var replicaHealthFactories = map[string]func() BasicReplicaHealth{
	string(ServiceKindStateful):  func() BasicReplicaHealth { return &StatefulServiceReplicaHealth{} },
	string(ServiceKindStateless): func() BasicReplicaHealth { return &StatelessServiceInstanceHealth{} },
}

// UnmarshalReplicaHealth decodes replica health by its ServiceKind.
func UnmarshalReplicaHealth(b []byte) (BasicReplicaHealth, error) {
	return api.UnmarshalPolymorphic(b, "ServiceKind", replicaHealthFactories, func() BasicReplicaHealth { return &ReplicaHealth{} })
}
