package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// SelectedPartition describes the partition selected by a fault-inducing
// command.
type SelectedPartition struct {
	ServiceName *string `json:"ServiceName,omitempty"`
	PartitionID *string `json:"PartitionId,omitempty"`
}

// InvokeDataLossResult represents information about an operation in a
// terminal state (Completed or Faulted).
type InvokeDataLossResult struct {
	ErrorCode         *int32             `json:"ErrorCode,omitempty"`
	SelectedPartition *SelectedPartition `json:"SelectedPartition,omitempty"`
}

// PartitionDataLossProgress is information about a partition data loss
// user-induced operation.
type PartitionDataLossProgress struct {
	State                *OperationState       `json:"State,omitempty"`
	InvokeDataLossResult *InvokeDataLossResult `json:"InvokeDataLossResult,omitempty"`
}

// InvokeQuorumLossResult represents information about an operation in a
// terminal state (Completed or Faulted).
type InvokeQuorumLossResult struct {
	ErrorCode         *int32             `json:"ErrorCode,omitempty"`
	SelectedPartition *SelectedPartition `json:"SelectedPartition,omitempty"`
}

// PartitionQuorumLossProgress is information about a partition quorum loss
// user-induced operation.
type PartitionQuorumLossProgress struct {
	State                  *OperationState         `json:"State,omitempty"`
	InvokeQuorumLossResult *InvokeQuorumLossResult `json:"InvokeQuorumLossResult,omitempty"`
}

// RestartPartitionResult represents information about an operation in a
// terminal state (Completed or Faulted).
type RestartPartitionResult struct {
	ErrorCode         *int32             `json:"ErrorCode,omitempty"`
	SelectedPartition *SelectedPartition `json:"SelectedPartition,omitempty"`
}

// PartitionRestartProgress is information about a partition restart
// user-induced operation.
type PartitionRestartProgress struct {
	State                  *OperationState         `json:"State,omitempty"`
	RestartPartitionResult *RestartPartitionResult `json:"RestartPartitionResult,omitempty"`
}

// NodeResult contains information about a node that was targeted by a
// user-induced operation.
type NodeResult struct {
	NodeName       *string `json:"NodeName,omitempty"`
	NodeInstanceID *string `json:"NodeInstanceId,omitempty"`
}

// NodeTransitionResult represents information about an operation in a
// terminal state (Completed or Faulted).
type NodeTransitionResult struct {
	ErrorCode  *int32      `json:"ErrorCode,omitempty"`
	NodeResult *NodeResult `json:"NodeResult,omitempty"`
}

// NodeTransitionProgress is information about a NodeTransition operation.
type NodeTransitionProgress struct {
	State                *OperationState       `json:"State,omitempty"`
	NodeTransitionResult *NodeTransitionResult `json:"NodeTransitionResult,omitempty"`
}

// OperationStatus contains the OperationId, OperationState and
// OperationType for user-induced operations.
type OperationStatus struct {
	OperationID *string         `json:"OperationId,omitempty"`
	State       *OperationState `json:"State,omitempty"`
	Type        *OperationType  `json:"Type,omitempty"`
}

// IsTerminal reports whether the operation has finished, successfully or
// not.
func (s OperationState) IsTerminal() bool {
	switch s {
	case OperationStateCompleted, OperationStateFaulted, OperationStateCancelled, OperationStateForceCancelled:
		return true
	}
	return false
}
