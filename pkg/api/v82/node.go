package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"
)

// NodeID is an internal ID used by Service Fabric to uniquely identify a
// node. The node ID is deterministically generated from the node name.
type NodeID struct {
	ID *string `json:"Id,omitempty"`
}

// NodeDeactivationTask is the task representing the deactivation operation
// on the node.
type NodeDeactivationTask struct {
	NodeDeactivationTaskID *NodeDeactivationTaskID `json:"NodeDeactivationTaskId,omitempty"`
	NodeDeactivationIntent *NodeDeactivationIntent `json:"NodeDeactivationIntent,omitempty"`
}

// NodeDeactivationTaskID identifies the task related to a deactivation
// operation on a node.
type NodeDeactivationTaskID struct {
	ID                       *string                   `json:"Id,omitempty"`
	NodeDeactivationTaskType *NodeDeactivationTaskType `json:"NodeDeactivationTaskType,omitempty"`
}

// NodeDeactivationInfo is information about the node deactivation. It lists
// the deactivation tasks that are in progress and the intents.
type NodeDeactivationInfo struct {
	NodeDeactivationIntent *NodeDeactivationIntent `json:"NodeDeactivationIntent,omitempty"`
	NodeDeactivationStatus *NodeDeactivationStatus `json:"NodeDeactivationStatus,omitempty"`
	NodeDeactivationTask   []NodeDeactivationTask  `json:"NodeDeactivationTask,omitempty"`
	PendingSafetyChecks    []SafetyCheckWrapper    `json:"PendingSafetyChecks,omitempty"`
}

// NodeInfo is information about a node in a Service Fabric cluster.
type NodeInfo struct {
	Name                          *string               `json:"Name,omitempty"`
	IPAddressOrFQDN               *string               `json:"IpAddressOrFQDN,omitempty"`
	Type                          *string               `json:"Type,omitempty"`
	CodeVersion                   *string               `json:"CodeVersion,omitempty"`
	ConfigVersion                 *string               `json:"ConfigVersion,omitempty"`
	NodeStatus                    *NodeStatus           `json:"NodeStatus,omitempty"`
	NodeUpTimeInSeconds           *string               `json:"NodeUpTimeInSeconds,omitempty"`
	HealthState                   *HealthState          `json:"HealthState,omitempty"`
	IsSeedNode                    *bool                 `json:"IsSeedNode,omitempty"`
	UpgradeDomain                 *string               `json:"UpgradeDomain,omitempty"`
	FaultDomain                   *string               `json:"FaultDomain,omitempty"`
	ID                            *NodeID               `json:"Id,omitempty"`
	InstanceID                    *string               `json:"InstanceId,omitempty"`
	NodeDeactivationInfo          *NodeDeactivationInfo `json:"NodeDeactivationInfo,omitempty"`
	IsStopped                     *bool                 `json:"IsStopped,omitempty"`
	NodeDownTimeInSeconds         *string               `json:"NodeDownTimeInSeconds,omitempty"`
	NodeUpAt                      *date.Time            `json:"NodeUpAt,omitempty"`
	NodeDownAt                    *date.Time            `json:"NodeDownAt,omitempty"`
	NodeTags                      []string              `json:"NodeTags,omitempty"`
	IsNodeByNodeUpgradeInProgress *bool                 `json:"IsNodeByNodeUpgradeInProgress,omitempty"`
	InfrastructurePlacementID     *string               `json:"InfrastructurePlacementID,omitempty"`
}

// PagedNodeInfoList is the list of nodes in the cluster. The list is paged
// when all of the results cannot fit in a single message.
type PagedNodeInfoList struct {
	ContinuationToken *string    `json:"ContinuationToken,omitempty"`
	Items             []NodeInfo `json:"Items,omitempty"`
}

// NodeHealthState represents the health state of a node.
type NodeHealthState struct {
	EntityHealthState
	Name *string `json:"Name,omitempty"`
	ID   *NodeID `json:"Id,omitempty"`
}

// DeactivationIntentDescription describes the intent or reason for
// deactivating the node.
type DeactivationIntentDescription struct {
	DeactivationIntent *NodeDeactivationIntent `json:"DeactivationIntent,omitempty"`
}

// RestartNodeDescription describes the parameters to restart a Service
// Fabric node.
type RestartNodeDescription struct {
	NodeInstanceID   string            `json:"NodeInstanceId"`
	CreateFabricDump *CreateFabricDump `json:"CreateFabricDump,omitempty"`
}

// NewRestartNodeDescription returns a description with its required fields
// set. Use "0" as the instance id to restart whichever instance is running.
func NewRestartNodeDescription(nodeInstanceID string) *RestartNodeDescription {
	return &RestartNodeDescription{
		NodeInstanceID: nodeInstanceID,
	}
}

// NodeLoadMetricInformation represents data structure that contains load
// information for a certain metric on a node.
type NodeLoadMetricInformation struct {
	Name                          *string `json:"Name,omitempty"`
	NodeCapacity                  *string `json:"NodeCapacity,omitempty"`
	NodeLoad                      *string `json:"NodeLoad,omitempty"`
	NodeRemainingCapacity         *string `json:"NodeRemainingCapacity,omitempty"`
	IsCapacityViolation           *bool   `json:"IsCapacityViolation,omitempty"`
	NodeBufferedCapacity          *string `json:"NodeBufferedCapacity,omitempty"`
	NodeRemainingBufferedCapacity *string `json:"NodeRemainingBufferedCapacity,omitempty"`
	CurrentNodeLoad               *string `json:"CurrentNodeLoad,omitempty"`
	NodeCapacityRemaining         *string `json:"NodeCapacityRemaining,omitempty"`
}

// NodeLoadInfo is information about load on a Service Fabric node.
type NodeLoadInfo struct {
	NodeName                  *string                     `json:"NodeName,omitempty"`
	NodeLoadMetricInformation []NodeLoadMetricInformation `json:"NodeLoadMetricInformation,omitempty"`
}
