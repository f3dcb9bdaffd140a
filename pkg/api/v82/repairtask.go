package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// BasicRepairTargetDescription is implemented by every repair target kind.
type BasicRepairTargetDescription interface {
	GetRepairTargetDescriptionBase() *RepairTargetDescriptionBase
}

// RepairTargetDescriptionBase describes the entities targeted by a repair
// action.
type RepairTargetDescriptionBase struct {
	Kind RepairTargetKind `json:"Kind"`
}

// GetRepairTargetDescriptionBase returns r.
func (r *RepairTargetDescriptionBase) GetRepairTargetDescriptionBase() *RepairTargetDescriptionBase {
	return r
}

// NodeRepairTargetDescription describes the list of nodes targeted by a
// repair action.
type NodeRepairTargetDescription struct {
	RepairTargetDescriptionBase
	NodeNames []string `json:"NodeNames,omitempty"`
}

// NewNodeRepairTargetDescription returns a target naming nodeNames.
func NewNodeRepairTargetDescription(nodeNames ...string) *NodeRepairTargetDescription {
	return &NodeRepairTargetDescription{
		RepairTargetDescriptionBase: RepairTargetDescriptionBase{Kind: RepairTargetKindNode},
		NodeNames:                   nodeNames,
	}
}

// MarshalJSON sets the Kind discriminator.
func (n NodeRepairTargetDescription) MarshalJSON() ([]byte, error) {
	type alias NodeRepairTargetDescription
	n.Kind = RepairTargetKindNode
	return json.Marshal(alias(n))
}

var repairTargetFactories = map[string]func() BasicRepairTargetDescription{
	string(RepairTargetKindNode): func() BasicRepairTargetDescription { return &NodeRepairTargetDescription{} },
}

// UnmarshalRepairTargetDescription decodes a repair target by its Kind.
func UnmarshalRepairTargetDescription(b []byte) (BasicRepairTargetDescription, error) {
	return api.UnmarshalPolymorphic(b, "Kind", repairTargetFactories, func() BasicRepairTargetDescription {
		return &RepairTargetDescriptionBase{}
	})
}

// BasicRepairImpactDescription is implemented by every repair impact kind.
type BasicRepairImpactDescription interface {
	GetRepairImpactDescriptionBase() *RepairImpactDescriptionBase
}

// RepairImpactDescriptionBase describes the expected impact of executing a
// repair task.
type RepairImpactDescriptionBase struct {
	Kind RepairImpactKind `json:"Kind"`
}

// GetRepairImpactDescriptionBase returns r.
func (r *RepairImpactDescriptionBase) GetRepairImpactDescriptionBase() *RepairImpactDescriptionBase {
	return r
}

// NodeImpact describes the expected impact of a repair to a particular
// node.
type NodeImpact struct {
	NodeName    string       `json:"NodeName"`
	ImpactLevel *ImpactLevel `json:"ImpactLevel,omitempty"`
}

// NewNodeImpact returns an impact with its required fields set.
func NewNodeImpact(nodeName string) *NodeImpact {
	return &NodeImpact{
		NodeName: nodeName,
	}
}

// NodeRepairImpactDescription describes the expected impact of a repair on
// a set of nodes.
type NodeRepairImpactDescription struct {
	RepairImpactDescriptionBase
	NodeImpactList []NodeImpact `json:"NodeImpactList,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (n NodeRepairImpactDescription) MarshalJSON() ([]byte, error) {
	type alias NodeRepairImpactDescription
	n.Kind = RepairImpactKindNode
	return json.Marshal(alias(n))
}

var repairImpactFactories = map[string]func() BasicRepairImpactDescription{
	string(RepairImpactKindNode): func() BasicRepairImpactDescription { return &NodeRepairImpactDescription{} },
}

// UnmarshalRepairImpactDescription decodes a repair impact by its Kind.
func UnmarshalRepairImpactDescription(b []byte) (BasicRepairImpactDescription, error) {
	return api.UnmarshalPolymorphic(b, "Kind", repairImpactFactories, func() BasicRepairImpactDescription {
		return &RepairImpactDescriptionBase{}
	})
}

// RepairTaskHistory is a record of the times when the repair task entered
// each state.
type RepairTaskHistory struct {
	CreatedUtcTimestamp                   *date.Time `json:"CreatedUtcTimestamp,omitempty"`
	ClaimedUtcTimestamp                   *date.Time `json:"ClaimedUtcTimestamp,omitempty"`
	PreparingUtcTimestamp                 *date.Time `json:"PreparingUtcTimestamp,omitempty"`
	ApprovedUtcTimestamp                  *date.Time `json:"ApprovedUtcTimestamp,omitempty"`
	ExecutingUtcTimestamp                 *date.Time `json:"ExecutingUtcTimestamp,omitempty"`
	RestoringUtcTimestamp                 *date.Time `json:"RestoringUtcTimestamp,omitempty"`
	CompletedUtcTimestamp                 *date.Time `json:"CompletedUtcTimestamp,omitempty"`
	PreparingHealthCheckStartUtcTimestamp *date.Time `json:"PreparingHealthCheckStartUtcTimestamp,omitempty"`
	PreparingHealthCheckEndUtcTimestamp   *date.Time `json:"PreparingHealthCheckEndUtcTimestamp,omitempty"`
	RestoringHealthCheckStartUtcTimestamp *date.Time `json:"RestoringHealthCheckStartUtcTimestamp,omitempty"`
	RestoringHealthCheckEndUtcTimestamp   *date.Time `json:"RestoringHealthCheckEndUtcTimestamp,omitempty"`
}

// RepairTask represents a repair task, which includes information about
// what kind of repair was requested, what its progress is, and what its
// final result was.
type RepairTask struct {
	TaskID                      string                       `json:"TaskId"`
	Version                     *string                      `json:"Version,omitempty"`
	Description                 *string                      `json:"Description,omitempty"`
	State                       RepairTaskState              `json:"State"`
	Flags                       *int32                       `json:"Flags,omitempty"`
	Action                      string                       `json:"Action"`
	Target                      BasicRepairTargetDescription `json:"Target,omitempty"`
	Executor                    *string                      `json:"Executor,omitempty"`
	ExecutorData                *string                      `json:"ExecutorData,omitempty"`
	Impact                      BasicRepairImpactDescription `json:"Impact,omitempty"`
	ResultStatus                *ResultStatus                `json:"ResultStatus,omitempty"`
	ResultCode                  *int32                       `json:"ResultCode,omitempty"`
	ResultDetails               *string                      `json:"ResultDetails,omitempty"`
	History                     *RepairTaskHistory           `json:"History,omitempty"`
	PreparingHealthCheckState   *RepairTaskHealthCheckState  `json:"PreparingHealthCheckState,omitempty"`
	RestoringHealthCheckState   *RepairTaskHealthCheckState  `json:"RestoringHealthCheckState,omitempty"`
	PerformPreparingHealthCheck *bool                        `json:"PerformPreparingHealthCheck,omitempty"`
	PerformRestoringHealthCheck *bool                        `json:"PerformRestoringHealthCheck,omitempty"`
}

// NewRepairTask returns a task with its required fields set. New tasks are
// created in the Created state.
func NewRepairTask(taskID, action string) *RepairTask {
	return &RepairTask{
		TaskID: taskID,
		State:  RepairTaskStateCreated,
		Action: action,
	}
}

// UnmarshalJSON decodes r including its target and impact.
func (r *RepairTask) UnmarshalJSON(b []byte) (err error) {
	type alias RepairTask
	var v struct {
		alias
		Target json.RawMessage `json:"Target"`
		Impact json.RawMessage `json:"Impact"`
	}
	if err = json.Unmarshal(b, &v); err != nil {
		return err
	}

	*r = RepairTask(v.alias)
	if len(v.Target) > 0 {
		if r.Target, err = UnmarshalRepairTargetDescription(v.Target); err != nil {
			return err
		}
	}
	if len(v.Impact) > 0 {
		r.Impact, err = UnmarshalRepairImpactDescription(v.Impact)
	}
	return err
}

// RepairTaskCancelDescription describes a request to cancel a repair task.
type RepairTaskCancelDescription struct {
	TaskID       string  `json:"TaskId"`
	Version      *string `json:"Version,omitempty"`
	RequestAbort *bool   `json:"RequestAbort,omitempty"`
}

// NewRepairTaskCancelDescription returns a description with its required
// fields set.
func NewRepairTaskCancelDescription(taskID string) *RepairTaskCancelDescription {
	return &RepairTaskCancelDescription{
		TaskID: taskID,
	}
}

// RepairTaskDeleteDescription describes a request to delete a completed
// repair task.
type RepairTaskDeleteDescription struct {
	TaskID  string  `json:"TaskId"`
	Version *string `json:"Version,omitempty"`
}

// NewRepairTaskDeleteDescription returns a description with its required
// fields set.
func NewRepairTaskDeleteDescription(taskID string) *RepairTaskDeleteDescription {
	return &RepairTaskDeleteDescription{
		TaskID: taskID,
	}
}

// RepairTaskApproveDescription describes a request for forced approval of a
// repair task.
type RepairTaskApproveDescription struct {
	TaskID  string  `json:"TaskId"`
	Version *string `json:"Version,omitempty"`
}

// NewRepairTaskApproveDescription returns a description with its required
// fields set.
func NewRepairTaskApproveDescription(taskID string) *RepairTaskApproveDescription {
	return &RepairTaskApproveDescription{
		TaskID: taskID,
	}
}

// RepairTaskUpdateHealthPolicyDescription describes a request to update the
// health policy of a repair task.
type RepairTaskUpdateHealthPolicyDescription struct {
	TaskID                      string  `json:"TaskId"`
	Version                     *string `json:"Version,omitempty"`
	PerformPreparingHealthCheck *bool   `json:"PerformPreparingHealthCheck,omitempty"`
	PerformRestoringHealthCheck *bool   `json:"PerformRestoringHealthCheck,omitempty"`
}

// NewRepairTaskUpdateHealthPolicyDescription returns a description with its
// required fields set.
func NewRepairTaskUpdateHealthPolicyDescription(taskID string) *RepairTaskUpdateHealthPolicyDescription {
	return &RepairTaskUpdateHealthPolicyDescription{
		TaskID: taskID,
	}
}

// RepairTaskUpdateInfo describes the result of an operation that created
// or updated a repair task.
type RepairTaskUpdateInfo struct {
	Version string `json:"Version"`
}
