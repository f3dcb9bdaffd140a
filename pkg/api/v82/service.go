package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// BasicPartitionSchemeDescription is implemented by every partition scheme.
type BasicPartitionSchemeDescription interface {
	GetPartitionSchemeDescription() *PartitionSchemeDescription
}

// PartitionSchemeDescription describes how the service is partitioned.
type PartitionSchemeDescription struct {
	PartitionScheme PartitionScheme `json:"PartitionScheme"`
}

// GetPartitionSchemeDescription returns p.
func (p *PartitionSchemeDescription) GetPartitionSchemeDescription() *PartitionSchemeDescription {
	return p
}

// SingletonPartitionSchemeDescription describes the partition scheme of a
// singleton-partitioned, or non-partitioned service.
type SingletonPartitionSchemeDescription struct {
	PartitionSchemeDescription
}

// NewSingletonPartitionSchemeDescription returns a singleton scheme.
func NewSingletonPartitionSchemeDescription() *SingletonPartitionSchemeDescription {
	return &SingletonPartitionSchemeDescription{
		PartitionSchemeDescription: PartitionSchemeDescription{PartitionScheme: PartitionSchemeSingleton},
	}
}

// MarshalJSON sets the PartitionScheme discriminator.
func (s SingletonPartitionSchemeDescription) MarshalJSON() ([]byte, error) {
	type alias SingletonPartitionSchemeDescription
	s.PartitionScheme = PartitionSchemeSingleton
	return json.Marshal(alias(s))
}

// UniformInt64RangePartitionSchemeDescription describes a partitioning
// scheme where an integer range is allocated evenly across a number of
// partitions.
type UniformInt64RangePartitionSchemeDescription struct {
	PartitionSchemeDescription
	Count   int32  `json:"Count"`
	LowKey  string `json:"LowKey"`
	HighKey string `json:"HighKey"`
}

// NewUniformInt64RangePartitionSchemeDescription returns a scheme with its
// required fields set.
func NewUniformInt64RangePartitionSchemeDescription(count int32, lowKey, highKey string) *UniformInt64RangePartitionSchemeDescription {
	return &UniformInt64RangePartitionSchemeDescription{
		PartitionSchemeDescription: PartitionSchemeDescription{PartitionScheme: PartitionSchemeUniformInt64Range},
		Count:                      count,
		LowKey:                     lowKey,
		HighKey:                    highKey,
	}
}

// MarshalJSON sets the PartitionScheme discriminator.
func (u UniformInt64RangePartitionSchemeDescription) MarshalJSON() ([]byte, error) {
	type alias UniformInt64RangePartitionSchemeDescription
	u.PartitionScheme = PartitionSchemeUniformInt64Range
	return json.Marshal(alias(u))
}

// NamedPartitionSchemeDescription describes the named partition scheme of
// the service.
type NamedPartitionSchemeDescription struct {
	PartitionSchemeDescription
	Count int32    `json:"Count"`
	Names []string `json:"Names"`
}

// NewNamedPartitionSchemeDescription returns a scheme with one partition
// per name.
func NewNamedPartitionSchemeDescription(names ...string) *NamedPartitionSchemeDescription {
	return &NamedPartitionSchemeDescription{
		PartitionSchemeDescription: PartitionSchemeDescription{PartitionScheme: PartitionSchemeNamed},
		Count:                      int32(len(names)),
		Names:                      names,
	}
}

// MarshalJSON sets the PartitionScheme discriminator.
func (n NamedPartitionSchemeDescription) MarshalJSON() ([]byte, error) {
	type alias NamedPartitionSchemeDescription
	n.PartitionScheme = PartitionSchemeNamed
	return json.Marshal(alias(n))
}

var partitionSchemeFactories = map[string]func() BasicPartitionSchemeDescription{
	string(PartitionSchemeSingleton): func() BasicPartitionSchemeDescription {
		return &SingletonPartitionSchemeDescription{}
	},
	string(PartitionSchemeUniformInt64Range): func() BasicPartitionSchemeDescription {
		return &UniformInt64RangePartitionSchemeDescription{}
	},
	string(PartitionSchemeNamed): func() BasicPartitionSchemeDescription {
		return &NamedPartitionSchemeDescription{}
	},
}

// UnmarshalPartitionSchemeDescription decodes a partition scheme by its
// PartitionScheme.
func UnmarshalPartitionSchemeDescription(b []byte) (BasicPartitionSchemeDescription, error) {
	return api.UnmarshalPolymorphic(b, "PartitionScheme", partitionSchemeFactories, func() BasicPartitionSchemeDescription {
		return &PartitionSchemeDescription{}
	})
}

// BasicServicePlacementPolicyDescription is implemented by every placement
// policy.
type BasicServicePlacementPolicyDescription interface {
	GetServicePlacementPolicyDescription() *ServicePlacementPolicyDescription
}

// ServicePlacementPolicyDescription describes the policy to be used for
// placement of a Service Fabric service. Every policy but
// NonPartiallyPlaceService names a fault or upgrade domain.
type ServicePlacementPolicyDescription struct {
	Type ServicePlacementPolicyType `json:"Type"`
}

// GetServicePlacementPolicyDescription returns s.
func (s *ServicePlacementPolicyDescription) GetServicePlacementPolicyDescription() *ServicePlacementPolicyDescription {
	return s
}

// ServicePlacementInvalidDomainPolicyDescription describes the policy to be
// used for placement of a Service Fabric service where a particular fault
// or upgrade domain should not be used.
type ServicePlacementInvalidDomainPolicyDescription struct {
	ServicePlacementPolicyDescription
	DomainName *string `json:"DomainName,omitempty"`
}

// MarshalJSON sets the Type discriminator.
func (s ServicePlacementInvalidDomainPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementInvalidDomainPolicyDescription
	s.Type = ServicePlacementPolicyTypeInvalidDomain
	return json.Marshal(alias(s))
}

// ServicePlacementRequiredDomainPolicyDescription describes the policy to
// be used for placement of a Service Fabric service where the instances or
// replicas of that service must be placed in a particular domain.
type ServicePlacementRequiredDomainPolicyDescription struct {
	ServicePlacementPolicyDescription
	DomainName *string `json:"DomainName,omitempty"`
}

// MarshalJSON sets the Type discriminator.
func (s ServicePlacementRequiredDomainPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementRequiredDomainPolicyDescription
	s.Type = ServicePlacementPolicyTypeRequireDomain
	return json.Marshal(alias(s))
}

// ServicePlacementPreferPrimaryDomainPolicyDescription describes the policy
// to be used for placement of a Service Fabric service where the service's
// primary replicas should optimally be placed in a particular domain.
type ServicePlacementPreferPrimaryDomainPolicyDescription struct {
	ServicePlacementPolicyDescription
	DomainName *string `json:"DomainName,omitempty"`
}

// MarshalJSON sets the Type discriminator.
func (s ServicePlacementPreferPrimaryDomainPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementPreferPrimaryDomainPolicyDescription
	s.Type = ServicePlacementPolicyTypePreferPrimaryDomain
	return json.Marshal(alias(s))
}

// ServicePlacementRequireDomainDistributionPolicyDescription describes the
// policy to be used for placement of a Service Fabric service where two
// replicas from the same partition should never be placed in the same
// fault or upgrade domain.
type ServicePlacementRequireDomainDistributionPolicyDescription struct {
	ServicePlacementPolicyDescription
	DomainName *string `json:"DomainName,omitempty"`
}

// MarshalJSON sets the Type discriminator.
func (s ServicePlacementRequireDomainDistributionPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementRequireDomainDistributionPolicyDescription
	s.Type = ServicePlacementPolicyTypeRequireDomainDistribution
	return json.Marshal(alias(s))
}

// ServicePlacementNonPartiallyPlaceServicePolicyDescription describes the
// policy to be used for placement of a Service Fabric service where all
// replicas must be able to be placed in order for any replicas to be
// created.
type ServicePlacementNonPartiallyPlaceServicePolicyDescription struct {
	ServicePlacementPolicyDescription
}

// MarshalJSON sets the Type discriminator.
func (s ServicePlacementNonPartiallyPlaceServicePolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementNonPartiallyPlaceServicePolicyDescription
	s.Type = ServicePlacementPolicyTypeNonPartiallyPlaceService
	return json.Marshal(alias(s))
}

// ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription
// describes the policy to be used for placement of a Service Fabric service
// allowing the placement of multiple stateless instances of a partition of
// the service on a node.
type ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription struct {
	ServicePlacementPolicyDescription
	DomainName *string `json:"DomainName,omitempty"`
}

// MarshalJSON sets the Type discriminator.
func (s ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription
	s.Type = ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode
	return json.Marshal(alias(s))
}

var servicePlacementPolicyFactories = map[string]func() BasicServicePlacementPolicyDescription{
	string(ServicePlacementPolicyTypeInvalidDomain): func() BasicServicePlacementPolicyDescription {
		return &ServicePlacementInvalidDomainPolicyDescription{}
	},
	string(ServicePlacementPolicyTypeRequireDomain): func() BasicServicePlacementPolicyDescription {
		return &ServicePlacementRequiredDomainPolicyDescription{}
	},
	string(ServicePlacementPolicyTypePreferPrimaryDomain): func() BasicServicePlacementPolicyDescription {
		return &ServicePlacementPreferPrimaryDomainPolicyDescription{}
	},
	string(ServicePlacementPolicyTypeRequireDomainDistribution): func() BasicServicePlacementPolicyDescription {
		return &ServicePlacementRequireDomainDistributionPolicyDescription{}
	},
	string(ServicePlacementPolicyTypeNonPartiallyPlaceService): func() BasicServicePlacementPolicyDescription {
		return &ServicePlacementNonPartiallyPlaceServicePolicyDescription{}
	},
	string(ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode): func() BasicServicePlacementPolicyDescription {
		return &ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription{}
	},
}

func newServicePlacementPolicyDescription() BasicServicePlacementPolicyDescription {
	return &ServicePlacementPolicyDescription{}
}

// UnmarshalServicePlacementPolicyDescriptionList decodes a list of placement
// policies by their Type.
func UnmarshalServicePlacementPolicyDescriptionList(b []byte) ([]BasicServicePlacementPolicyDescription, error) {
	return api.UnmarshalPolymorphicList(b, "Type", servicePlacementPolicyFactories, newServicePlacementPolicyDescription)
}

// ServiceLoadMetricDescription specifies a metric to load balance a service
// during runtime.
type ServiceLoadMetricDescription struct {
	Name                 string                   `json:"Name"`
	Weight               *ServiceLoadMetricWeight `json:"Weight,omitempty"`
	PrimaryDefaultLoad   *int32                   `json:"PrimaryDefaultLoad,omitempty"`
	SecondaryDefaultLoad *int32                   `json:"SecondaryDefaultLoad,omitempty"`
	AuxiliaryDefaultLoad *int32                   `json:"AuxiliaryDefaultLoad,omitempty"`
	DefaultLoad          *int32                   `json:"DefaultLoad,omitempty"`
}

// NewServiceLoadMetricDescription returns a metric with its required
// fields set.
func NewServiceLoadMetricDescription(name string) *ServiceLoadMetricDescription {
	return &ServiceLoadMetricDescription{
		Name: name,
	}
}

// ServiceCorrelationDescription creates a particular correlation between
// services.
type ServiceCorrelationDescription struct {
	Scheme      ServiceCorrelationScheme `json:"Scheme"`
	ServiceName string                   `json:"ServiceName"`
}

// NewServiceCorrelationDescription returns a correlation with its required
// fields set.
func NewServiceCorrelationDescription(scheme ServiceCorrelationScheme, serviceName string) *ServiceCorrelationDescription {
	return &ServiceCorrelationDescription{
		Scheme:      scheme,
		ServiceName: serviceName,
	}
}

// NodeTagsDescription describes the tags required for placement or running
// of the service.
type NodeTagsDescription struct {
	Count int32    `json:"Count"`
	Tags  []string `json:"Tags"`
}

// BasicServiceDescription is implemented by stateful and stateless service
// descriptions.
type BasicServiceDescription interface {
	GetServiceDescription() *ServiceDescription
}

// ServiceDescription describes a Service Fabric service.
type ServiceDescription struct {
	ServiceKind                  ServiceKind                              `json:"ServiceKind"`
	ApplicationName              *string                                  `json:"ApplicationName,omitempty"`
	ServiceName                  string                                   `json:"ServiceName"`
	ServiceTypeName              string                                   `json:"ServiceTypeName"`
	InitializationData           []int32                                  `json:"InitializationData,omitempty"`
	PartitionDescription         BasicPartitionSchemeDescription          `json:"PartitionDescription"`
	PlacementConstraints         *string                                  `json:"PlacementConstraints,omitempty"`
	CorrelationScheme            []ServiceCorrelationDescription          `json:"CorrelationScheme,omitempty"`
	ServiceLoadMetrics           []ServiceLoadMetricDescription           `json:"ServiceLoadMetrics,omitempty"`
	ServicePlacementPolicies     []BasicServicePlacementPolicyDescription `json:"ServicePlacementPolicies,omitempty"`
	DefaultMoveCost              *MoveCost                                `json:"DefaultMoveCost,omitempty"`
	IsDefaultMoveCostSpecified   *bool                                    `json:"IsDefaultMoveCostSpecified,omitempty"`
	ServicePackageActivationMode *ServicePackageActivationMode            `json:"ServicePackageActivationMode,omitempty"`
	ServiceDNSName               *string                                  `json:"ServiceDnsName,omitempty"`
	TagsRequiredToPlace          *NodeTagsDescription                     `json:"TagsRequiredToPlace,omitempty"`
	TagsRequiredToRun            *NodeTagsDescription                     `json:"TagsRequiredToRun,omitempty"`
}

// GetServiceDescription returns s.
func (s *ServiceDescription) GetServiceDescription() *ServiceDescription { return s }

// serviceDescriptionUnions captures the polymorphic members of a
// ServiceDescription while the rest of the object is decoded.
type serviceDescriptionUnions struct {
	PartitionDescription     json.RawMessage `json:"PartitionDescription"`
	ServicePlacementPolicies json.RawMessage `json:"ServicePlacementPolicies"`
}

func (u *serviceDescriptionUnions) decode(s *ServiceDescription) (err error) {
	if len(u.PartitionDescription) > 0 {
		s.PartitionDescription, err = UnmarshalPartitionSchemeDescription(u.PartitionDescription)
		if err != nil {
			return err
		}
	}

	if len(u.ServicePlacementPolicies) > 0 {
		s.ServicePlacementPolicies, err = UnmarshalServicePlacementPolicyDescriptionList(u.ServicePlacementPolicies)
	}

	return err
}

// StatefulServiceDescription describes a stateful service.
type StatefulServiceDescription struct {
	ServiceDescription
	TargetReplicaSetSize              int32  `json:"TargetReplicaSetSize"`
	MinReplicaSetSize                 int32  `json:"MinReplicaSetSize"`
	HasPersistedState                 bool   `json:"HasPersistedState"`
	Flags                             *int32 `json:"Flags,omitempty"`
	ReplicaRestartWaitDurationSeconds *int64 `json:"ReplicaRestartWaitDurationSeconds,omitempty"`
	QuorumLossWaitDurationSeconds     *int64 `json:"QuorumLossWaitDurationSeconds,omitempty"`
	StandByReplicaKeepDurationSeconds *int64 `json:"StandByReplicaKeepDurationSeconds,omitempty"`
	ServicePlacementTimeLimitSeconds  *int64 `json:"ServicePlacementTimeLimitSeconds,omitempty"`
	DropSourceReplicaOnMove           *bool  `json:"DropSourceReplicaOnMove,omitempty"`
	AuxiliaryReplicaCount             *int32 `json:"AuxiliaryReplicaCount,omitempty"`
}

// NewStatefulServiceDescription returns a description with its required
// fields set.
func NewStatefulServiceDescription(serviceName, serviceTypeName string, partitionDescription BasicPartitionSchemeDescription, targetReplicaSetSize, minReplicaSetSize int32, hasPersistedState bool) *StatefulServiceDescription {
	return &StatefulServiceDescription{
		ServiceDescription: ServiceDescription{
			ServiceKind:          ServiceKindStateful,
			ServiceName:          serviceName,
			ServiceTypeName:      serviceTypeName,
			PartitionDescription: partitionDescription,
		},
		TargetReplicaSetSize: targetReplicaSetSize,
		MinReplicaSetSize:    minReplicaSetSize,
		HasPersistedState:    hasPersistedState,
	}
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatefulServiceDescription) MarshalJSON() ([]byte, error) {
	type alias StatefulServiceDescription
	s.ServiceKind = ServiceKindStateful
	return json.Marshal(alias(s))
}

// UnmarshalJSON decodes s including its polymorphic members.
func (s *StatefulServiceDescription) UnmarshalJSON(b []byte) error {
	type alias StatefulServiceDescription
	var v struct {
		alias
		serviceDescriptionUnions
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*s = StatefulServiceDescription(v.alias)
	return v.serviceDescriptionUnions.decode(&s.ServiceDescription)
}

// StatelessServiceDescription describes a stateless service.
type StatelessServiceDescription struct {
	ServiceDescription
	InstanceCount                      int32  `json:"InstanceCount"`
	MinInstanceCount                   *int32 `json:"MinInstanceCount,omitempty"`
	MinInstancePercentage              *int32 `json:"MinInstancePercentage,omitempty"`
	Flags                              *int32 `json:"Flags,omitempty"`
	InstanceCloseDelayDurationSeconds  *int64 `json:"InstanceCloseDelayDurationSeconds,omitempty"`
	InstanceRestartWaitDurationSeconds *int64 `json:"InstanceRestartWaitDurationSeconds,omitempty"`
}

// NewStatelessServiceDescription returns a description with its required
// fields set. An instance count of -1 places an instance on every node.
func NewStatelessServiceDescription(serviceName, serviceTypeName string, partitionDescription BasicPartitionSchemeDescription, instanceCount int32) *StatelessServiceDescription {
	return &StatelessServiceDescription{
		ServiceDescription: ServiceDescription{
			ServiceKind:          ServiceKindStateless,
			ServiceName:          serviceName,
			ServiceTypeName:      serviceTypeName,
			PartitionDescription: partitionDescription,
		},
		InstanceCount: instanceCount,
	}
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatelessServiceDescription) MarshalJSON() ([]byte, error) {
	type alias StatelessServiceDescription
	s.ServiceKind = ServiceKindStateless
	return json.Marshal(alias(s))
}

// UnmarshalJSON decodes s including its polymorphic members.
func (s *StatelessServiceDescription) UnmarshalJSON(b []byte) error {
	type alias StatelessServiceDescription
	var v struct {
		alias
		serviceDescriptionUnions
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*s = StatelessServiceDescription(v.alias)
	return v.serviceDescriptionUnions.decode(&s.ServiceDescription)
}

// unknownServiceDescription decodes a service description of a kind this
// package does not know.
type unknownServiceDescription struct {
	ServiceDescription
}

func (u *unknownServiceDescription) UnmarshalJSON(b []byte) error {
	type alias unknownServiceDescription
	var v struct {
		alias
		serviceDescriptionUnions
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	u.ServiceDescription = v.alias.ServiceDescription
	return v.serviceDescriptionUnions.decode(&u.ServiceDescription)
}

var serviceDescriptionFactories = map[string]func() BasicServiceDescription{
	string(ServiceKindStateful):  func() BasicServiceDescription { return &StatefulServiceDescription{} },
	string(ServiceKindStateless): func() BasicServiceDescription { return &StatelessServiceDescription{} },
}

// UnmarshalServiceDescription decodes a service description by its
// ServiceKind. Unknown kinds decode into *ServiceDescription.
func UnmarshalServiceDescription(b []byte) (BasicServiceDescription, error) {
	v, err := api.UnmarshalPolymorphic(b, "ServiceKind", serviceDescriptionFactories, func() BasicServiceDescription {
		return &unknownServiceDescription{}
	})
	if u, ok := v.(*unknownServiceDescription); ok {
		return &u.ServiceDescription, err
	}
	return v, err
}

// BasicServiceInfo is implemented by stateful and stateless service info.
type BasicServiceInfo interface {
	GetServiceInfo() *ServiceInfo
}

// ServiceInfo is information about a Service Fabric service.
type ServiceInfo struct {
	ServiceKind     ServiceKind    `json:"ServiceKind"`
	ID              *string        `json:"Id,omitempty"`
	Name            *string        `json:"Name,omitempty"`
	TypeName        *string        `json:"TypeName,omitempty"`
	ManifestVersion *string        `json:"ManifestVersion,omitempty"`
	HealthState     *HealthState   `json:"HealthState,omitempty"`
	ServiceStatus   *ServiceStatus `json:"ServiceStatus,omitempty"`
	IsServiceGroup  *bool          `json:"IsServiceGroup,omitempty"`
}

// GetServiceInfo returns s.
func (s *ServiceInfo) GetServiceInfo() *ServiceInfo { return s }

// StatefulServiceInfo is information about a stateful Service Fabric
// service.
type StatefulServiceInfo struct {
	ServiceInfo
	HasPersistedState *bool `json:"HasPersistedState,omitempty"`
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatefulServiceInfo) MarshalJSON() ([]byte, error) {
	type alias StatefulServiceInfo
	s.ServiceKind = ServiceKindStateful
	return json.Marshal(alias(s))
}

// StatelessServiceInfo is information about a stateless Service Fabric
// service.
type StatelessServiceInfo struct {
	ServiceInfo
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatelessServiceInfo) MarshalJSON() ([]byte, error) {
	type alias StatelessServiceInfo
	s.ServiceKind = ServiceKindStateless
	return json.Marshal(alias(s))
}

var serviceInfoFactories = map[string]func() BasicServiceInfo{
	string(ServiceKindStateful):  func() BasicServiceInfo { return &StatefulServiceInfo{} },
	string(ServiceKindStateless): func() BasicServiceInfo { return &StatelessServiceInfo{} },
}

func newServiceInfo() BasicServiceInfo { return &ServiceInfo{} }

// UnmarshalServiceInfo decodes service info by its ServiceKind.
func UnmarshalServiceInfo(b []byte) (BasicServiceInfo, error) {
	return api.UnmarshalPolymorphic(b, "ServiceKind", serviceInfoFactories, newServiceInfo)
}

// PagedServiceInfoList is the list of services in the cluster for an
// application.
type PagedServiceInfoList struct {
	ContinuationToken *string            `json:"ContinuationToken,omitempty"`
	Items             []BasicServiceInfo `json:"Items,omitempty"`
}

// UnmarshalJSON decodes each item by its ServiceKind.
func (p *PagedServiceInfoList) UnmarshalJSON(b []byte) (err error) {
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
		p.Items, err = api.UnmarshalPolymorphicList(v.Items, "ServiceKind", serviceInfoFactories, newServiceInfo)
	}
	return err
}

// ServiceNameInfo is information about the service name.
type ServiceNameInfo struct {
	ID   *string `json:"Id,omitempty"`
	Name *string `json:"Name,omitempty"`
}

// ApplicationNameInfo is information about the application name.
type ApplicationNameInfo struct {
	ID   *string `json:"Id,omitempty"`
	Name *string `json:"Name,omitempty"`
}
