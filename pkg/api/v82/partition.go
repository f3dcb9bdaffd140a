package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// BasicPartitionInformation is implemented by every partition kind.
type BasicPartitionInformation interface {
	GetPartitionInformation() *PartitionInformation
}

// PartitionInformation is information about the partition identity,
// partitioning scheme and keys supported by it.
type PartitionInformation struct {
	ServicePartitionKind ServicePartitionKind `json:"ServicePartitionKind"`
	ID                   *string              `json:"Id,omitempty"`
}

// GetPartitionInformation returns p.
func (p *PartitionInformation) GetPartitionInformation() *PartitionInformation { return p }

// Int64RangePartitionInformation describes the partition information for
// the integer range that is based on partition schemes.
type Int64RangePartitionInformation struct {
	PartitionInformation
	LowKey  *string `json:"LowKey,omitempty"`
	HighKey *string `json:"HighKey,omitempty"`
}

// MarshalJSON sets the ServicePartitionKind discriminator.
func (i Int64RangePartitionInformation) MarshalJSON() ([]byte, error) {
	type alias Int64RangePartitionInformation
	i.ServicePartitionKind = ServicePartitionKindInt64Range
	return json.Marshal(alias(i))
}

// NamedPartitionInformation describes the partition information for the
// name as a string that is based on partition schemes.
type NamedPartitionInformation struct {
	PartitionInformation
	Name *string `json:"Name,omitempty"`
}

// MarshalJSON sets the ServicePartitionKind discriminator.
func (n NamedPartitionInformation) MarshalJSON() ([]byte, error) {
	type alias NamedPartitionInformation
	n.ServicePartitionKind = ServicePartitionKindNamed
	return json.Marshal(alias(n))
}

// SingletonPartitionInformation describes the partition information for a
// singleton partition.
type SingletonPartitionInformation struct {
	PartitionInformation
}

// MarshalJSON sets the ServicePartitionKind discriminator.
func (s SingletonPartitionInformation) MarshalJSON() ([]byte, error) {
	type alias SingletonPartitionInformation
	s.ServicePartitionKind = ServicePartitionKindSingleton
	return json.Marshal(alias(s))
}

var partitionInformationFactories = map[string]func() BasicPartitionInformation{
	string(ServicePartitionKindInt64Range): func() BasicPartitionInformation { return &Int64RangePartitionInformation{} },
	string(ServicePartitionKindNamed):      func() BasicPartitionInformation { return &NamedPartitionInformation{} },
	string(ServicePartitionKindSingleton):  func() BasicPartitionInformation { return &SingletonPartitionInformation{} },
}

// UnmarshalPartitionInformation decodes partition information by its
// ServicePartitionKind.
func UnmarshalPartitionInformation(b []byte) (BasicPartitionInformation, error) {
	return api.UnmarshalPolymorphic(b, "ServicePartitionKind", partitionInformationFactories, func() BasicPartitionInformation {
		return &PartitionInformation{}
	})
}

// Epoch is an epoch is a configuration number for the partition as a whole.
// When the configuration of the replica set changes, for example when the
// primary replica changes, the operations that are replicated from the new
// primary replica are said to be a new epoch from the ones which were sent
// by the old primary replica.
type Epoch struct {
	ConfigurationVersion *string `json:"ConfigurationVersion,omitempty"`
	DataLossVersion      *string `json:"DataLossVersion,omitempty"`
}

// BasicServicePartitionInfo is implemented by stateful and stateless
// partition info.
type BasicServicePartitionInfo interface {
	GetServicePartitionInfo() *ServicePartitionInfo
}

// ServicePartitionInfo is information about a partition of a Service
// Fabric service.
type ServicePartitionInfo struct {
	ServiceKind          ServiceKind               `json:"ServiceKind"`
	HealthState          *HealthState              `json:"HealthState,omitempty"`
	PartitionStatus      *ServicePartitionStatus   `json:"PartitionStatus,omitempty"`
	PartitionInformation BasicPartitionInformation `json:"PartitionInformation,omitempty"`
}

// GetServicePartitionInfo returns s.
func (s *ServicePartitionInfo) GetServicePartitionInfo() *ServicePartitionInfo { return s }

// servicePartitionInfoUnions captures the polymorphic members of a
// ServicePartitionInfo while the rest of the object is decoded.
type servicePartitionInfoUnions struct {
	PartitionInformation json.RawMessage `json:"PartitionInformation"`
}

func (u *servicePartitionInfoUnions) decode(s *ServicePartitionInfo) (err error) {
	if len(u.PartitionInformation) > 0 {
		s.PartitionInformation, err = UnmarshalPartitionInformation(u.PartitionInformation)
	}
	return err
}

// StatefulServicePartitionInfo is information about a partition of a
// stateful Service Fabric service.
type StatefulServicePartitionInfo struct {
	ServicePartitionInfo
	TargetReplicaSetSize   *int64  `json:"TargetReplicaSetSize,omitempty"`
	MinReplicaSetSize      *int64  `json:"MinReplicaSetSize,omitempty"`
	AuxiliaryReplicaCount  *int64  `json:"AuxiliaryReplicaCount,omitempty"`
	LastQuorumLossDuration *string `json:"LastQuorumLossDuration,omitempty"`
	PrimaryEpoch           *Epoch  `json:"PrimaryEpoch,omitempty"`
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatefulServicePartitionInfo) MarshalJSON() ([]byte, error) {
	type alias StatefulServicePartitionInfo
	s.ServiceKind = ServiceKindStateful
	return json.Marshal(alias(s))
}

// UnmarshalJSON decodes s including its partition information.
func (s *StatefulServicePartitionInfo) UnmarshalJSON(b []byte) error {
	type alias StatefulServicePartitionInfo
	var v struct {
		alias
		servicePartitionInfoUnions
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*s = StatefulServicePartitionInfo(v.alias)
	return v.servicePartitionInfoUnions.decode(&s.ServicePartitionInfo)
}

// StatelessServicePartitionInfo is information about a partition of a
// stateless Service Fabric service.
type StatelessServicePartitionInfo struct {
	ServicePartitionInfo
	InstanceCount         *int64 `json:"InstanceCount,omitempty"`
	MinInstanceCount      *int32 `json:"MinInstanceCount,omitempty"`
	MinInstancePercentage *int32 `json:"MinInstancePercentage,omitempty"`
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatelessServicePartitionInfo) MarshalJSON() ([]byte, error) {
	type alias StatelessServicePartitionInfo
	s.ServiceKind = ServiceKindStateless
	return json.Marshal(alias(s))
}

// UnmarshalJSON decodes s including its partition information.
func (s *StatelessServicePartitionInfo) UnmarshalJSON(b []byte) error {
	type alias StatelessServicePartitionInfo
	var v struct {
		alias
		servicePartitionInfoUnions
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*s = StatelessServicePartitionInfo(v.alias)
	return v.servicePartitionInfoUnions.decode(&s.ServicePartitionInfo)
}

// unknownServicePartitionInfo decodes partition info of a service kind this
// package does not know.
type unknownServicePartitionInfo struct {
	ServicePartitionInfo
}

func (u *unknownServicePartitionInfo) UnmarshalJSON(b []byte) error {
	type alias unknownServicePartitionInfo
	var v struct {
		alias
		servicePartitionInfoUnions
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	u.ServicePartitionInfo = v.alias.ServicePartitionInfo
	return v.servicePartitionInfoUnions.decode(&u.ServicePartitionInfo)
}

var servicePartitionInfoFactories = map[string]func() BasicServicePartitionInfo{
	string(ServiceKindStateful):  func() BasicServicePartitionInfo { return &StatefulServicePartitionInfo{} },
	string(ServiceKindStateless): func() BasicServicePartitionInfo { return &StatelessServicePartitionInfo{} },
}

func newUnknownServicePartitionInfo() BasicServicePartitionInfo {
	return &unknownServicePartitionInfo{}
}

func unwrapServicePartitionInfo(v BasicServicePartitionInfo) BasicServicePartitionInfo {
	if u, ok := v.(*unknownServicePartitionInfo); ok {
		return &u.ServicePartitionInfo
	}
	return v
}

// UnmarshalServicePartitionInfo decodes partition info by its ServiceKind.
// Unknown kinds decode into *ServicePartitionInfo.
func UnmarshalServicePartitionInfo(b []byte) (BasicServicePartitionInfo, error) {
	v, err := api.UnmarshalPolymorphic(b, "ServiceKind", servicePartitionInfoFactories, newUnknownServicePartitionInfo)
	return unwrapServicePartitionInfo(v), err
}

// PagedServicePartitionInfoList is the list of partitions in the cluster
// for a service.
type PagedServicePartitionInfoList struct {
	ContinuationToken *string                     `json:"ContinuationToken,omitempty"`
	Items             []BasicServicePartitionInfo `json:"Items,omitempty"`
}

// UnmarshalJSON decodes each item by its ServiceKind.
func (p *PagedServicePartitionInfoList) UnmarshalJSON(b []byte) error {
	var v struct {
		ContinuationToken *string         `json:"ContinuationToken"`
		Items             json.RawMessage `json:"Items"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	p.ContinuationToken = v.ContinuationToken
	p.Items = nil
	if len(v.Items) == 0 {
		return nil
	}

	items, err := api.UnmarshalPolymorphicList(v.Items, "ServiceKind", servicePartitionInfoFactories, newUnknownServicePartitionInfo)
	if err != nil {
		return err
	}
	for _, item := range items {
		p.Items = append(p.Items, unwrapServicePartitionInfo(item))
	}
	return nil
}

// PartitionLoadInformation represents load information for a partition,
// which contains the primary and secondary reported load metrics.
type PartitionLoadInformation struct {
	PartitionID                *string            `json:"PartitionId,omitempty"`
	PrimaryLoadMetricReports   []LoadMetricReport `json:"PrimaryLoadMetricReports,omitempty"`
	SecondaryLoadMetricReports []LoadMetricReport `json:"SecondaryLoadMetricReports,omitempty"`
}

// LoadMetricReport represents the load metric report which contains the
// time metric was reported, its name and value.
type LoadMetricReport struct {
	LastReportedUtc *date.Time `json:"LastReportedUtc,omitempty"`
	Name            *string    `json:"Name,omitempty"`
	Value           *string    `json:"Value,omitempty"`
	CurrentValue    *string    `json:"CurrentValue,omitempty"`
}
