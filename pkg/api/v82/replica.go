package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// BasicReplicaInfo is implemented by stateful replica and stateless
// instance info.
type BasicReplicaInfo interface {
	GetReplicaInfo() *ReplicaInfo
}

// ReplicaInfo is information about the identity, status, health, node
// name, uptime and other details about the replica.
type ReplicaInfo struct {
	ServiceKind                  ServiceKind    `json:"ServiceKind"`
	ReplicaStatus                *ReplicaStatus `json:"ReplicaStatus,omitempty"`
	HealthState                  *HealthState   `json:"HealthState,omitempty"`
	NodeName                     *string        `json:"NodeName,omitempty"`
	Address                      *string        `json:"Address,omitempty"`
	LastInBuildDurationInSeconds *string        `json:"LastInBuildDurationInSeconds,omitempty"`
}

// GetReplicaInfo returns r.
func (r *ReplicaInfo) GetReplicaInfo() *ReplicaInfo { return r }

// StatefulServiceReplicaInfo represents a stateful service replica.
type StatefulServiceReplicaInfo struct {
	ReplicaInfo
	ReplicaRole *ReplicaRole `json:"ReplicaRole,omitempty"`
	ReplicaID   *string      `json:"ReplicaId,omitempty"`
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatefulServiceReplicaInfo) MarshalJSON() ([]byte, error) {
	type alias StatefulServiceReplicaInfo
	s.ServiceKind = ServiceKindStateful
	return json.Marshal(alias(s))
}

// StatelessServiceInstanceInfo represents a stateless service instance.
type StatelessServiceInstanceInfo struct {
	ReplicaInfo
	InstanceID *string `json:"InstanceId,omitempty"`
}

// MarshalJSON sets the ServiceKind discriminator.
func (s StatelessServiceInstanceInfo) MarshalJSON() ([]byte, error) {
	type alias StatelessServiceInstanceInfo
	s.ServiceKind = ServiceKindStateless
	return json.Marshal(alias(s))
}

var replicaInfoFactories = map[string]func() BasicReplicaInfo{
	string(ServiceKindStateful):  func() BasicReplicaInfo { return &StatefulServiceReplicaInfo{} },
	string(ServiceKindStateless): func() BasicReplicaInfo { return &StatelessServiceInstanceInfo{} },
}

func newReplicaInfo() BasicReplicaInfo { return &ReplicaInfo{} }

// UnmarshalReplicaInfo decodes replica info by its ServiceKind.
func UnmarshalReplicaInfo(b []byte) (BasicReplicaInfo, error) {
	return api.UnmarshalPolymorphic(b, "ServiceKind", replicaInfoFactories, newReplicaInfo)
}

// PagedReplicaInfoList is the list of replicas in the cluster for a given
// partition.
type PagedReplicaInfoList struct {
	ContinuationToken *string            `json:"ContinuationToken,omitempty"`
	Items             []BasicReplicaInfo `json:"Items,omitempty"`
}

// UnmarshalJSON decodes each item by its ServiceKind.
func (p *PagedReplicaInfoList) UnmarshalJSON(b []byte) (err error) {
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
		p.Items, err = api.UnmarshalPolymorphicList(v.Items, "ServiceKind", replicaInfoFactories, newReplicaInfo)
	}
	return err
}
