package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// ChaosContext describes a map, which is a collection of (string, string)
// type key-value pairs. The map can be used to record information about
// the Chaos run.
type ChaosContext struct {
	Map map[string]string `json:"Map,omitempty"`
}

// ChaosTargetFilter defines all filters for targeted Chaos faults, for
// example, faulting only certain node types or faulting only certain
// applications.
type ChaosTargetFilter struct {
	NodeTypeInclusionList    []string `json:"NodeTypeInclusionList,omitempty"`
	ApplicationInclusionList []string `json:"ApplicationInclusionList,omitempty"`
}

// ChaosParameters defines all the parameters to configure a Chaos run.
type ChaosParameters struct {
	TimeToRunInSeconds                      *string              `json:"TimeToRunInSeconds,omitempty"`
	MaxClusterStabilizationTimeoutInSeconds *int64               `json:"MaxClusterStabilizationTimeoutInSeconds,omitempty"`
	MaxConcurrentFaults                     *int64               `json:"MaxConcurrentFaults,omitempty"`
	EnableMoveReplicaFaults                 *bool                `json:"EnableMoveReplicaFaults,omitempty"`
	WaitTimeBetweenFaultsInSeconds          *int64               `json:"WaitTimeBetweenFaultsInSeconds,omitempty"`
	WaitTimeBetweenIterationsInSeconds      *int64               `json:"WaitTimeBetweenIterationsInSeconds,omitempty"`
	ClusterHealthPolicy                     *ClusterHealthPolicy `json:"ClusterHealthPolicy,omitempty"`
	Context                                 *ChaosContext        `json:"Context,omitempty"`
	ChaosTargetFilter                       *ChaosTargetFilter   `json:"ChaosTargetFilter,omitempty"`
}

// Chaos contains a description of Chaos.
type Chaos struct {
	ChaosParameters *ChaosParameters     `json:"ChaosParameters,omitempty"`
	Status          *ChaosStatus         `json:"Status,omitempty"`
	ScheduleStatus  *ChaosScheduleStatus `json:"ScheduleStatus,omitempty"`
}

// BasicChaosEvent is implemented by every Chaos event kind.
type BasicChaosEvent interface {
	GetChaosEvent() *ChaosEvent
}

// ChaosEvent represents an event generated during a Chaos run.
type ChaosEvent struct {
	Kind         ChaosEventKind `json:"Kind"`
	TimeStampUtc date.Time      `json:"TimeStampUtc"`
}

// GetChaosEvent returns c.
func (c *ChaosEvent) GetChaosEvent() *ChaosEvent { return c }

// StartedChaosEvent describes a Chaos event that gets generated when Chaos
// is started.
type StartedChaosEvent struct {
	ChaosEvent
	ChaosParameters *ChaosParameters `json:"ChaosParameters,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (s StartedChaosEvent) MarshalJSON() ([]byte, error) {
	type alias StartedChaosEvent
	s.Kind = ChaosEventKindStarted
	return json.Marshal(alias(s))
}

// ExecutingFaultsChaosEvent describes a Chaos event that gets generated
// when Chaos has decided on the faults for an iteration.
type ExecutingFaultsChaosEvent struct {
	ChaosEvent
	Faults []string `json:"Faults,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (e ExecutingFaultsChaosEvent) MarshalJSON() ([]byte, error) {
	type alias ExecutingFaultsChaosEvent
	e.Kind = ChaosEventKindExecutingFaults
	return json.Marshal(alias(e))
}

// WaitingChaosEvent describes a Chaos event that gets generated when Chaos
// is waiting for the cluster to become ready for faulting.
type WaitingChaosEvent struct {
	ChaosEvent
	Reason *string `json:"Reason,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (w WaitingChaosEvent) MarshalJSON() ([]byte, error) {
	type alias WaitingChaosEvent
	w.Kind = ChaosEventKindWaiting
	return json.Marshal(alias(w))
}

// ValidationFailedChaosEvent is a Chaos event corresponding to a failure
// during validation.
type ValidationFailedChaosEvent struct {
	ChaosEvent
	Reason *string `json:"Reason,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (v ValidationFailedChaosEvent) MarshalJSON() ([]byte, error) {
	type alias ValidationFailedChaosEvent
	v.Kind = ChaosEventKindValidationFailed
	return json.Marshal(alias(v))
}

// TestErrorChaosEvent describes a Chaos event that gets generated when an
// unexpected event occurs in the Chaos engine.
type TestErrorChaosEvent struct {
	ChaosEvent
	Reason *string `json:"Reason,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (t TestErrorChaosEvent) MarshalJSON() ([]byte, error) {
	type alias TestErrorChaosEvent
	t.Kind = ChaosEventKindTestError
	return json.Marshal(alias(t))
}

// StoppedChaosEvent describes a Chaos event that gets generated when Chaos
// stops because either the user issued a stop or the time to run was up.
type StoppedChaosEvent struct {
	ChaosEvent
	Reason *string `json:"Reason,omitempty"`
}

// MarshalJSON sets the Kind discriminator.
func (s StoppedChaosEvent) MarshalJSON() ([]byte, error) {
	type alias StoppedChaosEvent
	s.Kind = ChaosEventKindStopped
	return json.Marshal(alias(s))
}

var chaosEventFactories = map[string]func() BasicChaosEvent{
	string(ChaosEventKindStarted):          func() BasicChaosEvent { return &StartedChaosEvent{} },
	string(ChaosEventKindExecutingFaults):  func() BasicChaosEvent { return &ExecutingFaultsChaosEvent{} },
	string(ChaosEventKindWaiting):          func() BasicChaosEvent { return &WaitingChaosEvent{} },
	string(ChaosEventKindValidationFailed): func() BasicChaosEvent { return &ValidationFailedChaosEvent{} },
	string(ChaosEventKindTestError):        func() BasicChaosEvent { return &TestErrorChaosEvent{} },
	string(ChaosEventKindStopped):          func() BasicChaosEvent { return &StoppedChaosEvent{} },
}

// UnmarshalChaosEvent decodes a Chaos event by its Kind.
func UnmarshalChaosEvent(b []byte) (BasicChaosEvent, error) {
	return api.UnmarshalPolymorphic(b, "Kind", chaosEventFactories, func() BasicChaosEvent { return &ChaosEvent{} })
}

// ChaosEventWrapper wraps a Chaos event.
type ChaosEventWrapper struct {
	ChaosEvent BasicChaosEvent `json:"ChaosEvent,omitempty"`
}

// UnmarshalJSON decodes the wrapped event by its Kind.
func (w *ChaosEventWrapper) UnmarshalJSON(b []byte) (err error) {
	var v struct {
		ChaosEvent json.RawMessage `json:"ChaosEvent"`
	}
	if err = json.Unmarshal(b, &v); err != nil {
		return err
	}

	w.ChaosEvent = nil
	if len(v.ChaosEvent) > 0 {
		w.ChaosEvent, err = UnmarshalChaosEvent(v.ChaosEvent)
	}
	return err
}

// ChaosEventsSegment contains the list of Chaos events and the continuation
// token to get the next segment.
type ChaosEventsSegment struct {
	ContinuationToken *string             `json:"ContinuationToken,omitempty"`
	History           []ChaosEventWrapper `json:"History,omitempty"`
}

// TimeOfDay defines an hour and minute of the day specified in 24 hour
// time.
type TimeOfDay struct {
	Hour   *int32 `json:"Hour,omitempty"`
	Minute *int32 `json:"Minute,omitempty"`
}

// TimeRange defines a time range in a 24 hour day specified by a start and
// end time.
type TimeRange struct {
	StartTime *TimeOfDay `json:"StartTime,omitempty"`
	EndTime   *TimeOfDay `json:"EndTime,omitempty"`
}

// ChaosScheduleJobActiveDaysOfWeek defines the days of the week that a
// Chaos Schedule Job will run for.
type ChaosScheduleJobActiveDaysOfWeek struct {
	Sunday    *bool `json:"Sunday,omitempty"`
	Monday    *bool `json:"Monday,omitempty"`
	Tuesday   *bool `json:"Tuesday,omitempty"`
	Wednesday *bool `json:"Wednesday,omitempty"`
	Thursday  *bool `json:"Thursday,omitempty"`
	Friday    *bool `json:"Friday,omitempty"`
	Saturday  *bool `json:"Saturday,omitempty"`
}

// ChaosScheduleJob defines a repetition rule and parameters of Chaos to be
// used with the Chaos Schedule. ChaosParameters names an entry of the
// schedule's ChaosParametersDictionary.
type ChaosScheduleJob struct {
	ChaosParameters *string                           `json:"ChaosParameters,omitempty"`
	Days            *ChaosScheduleJobActiveDaysOfWeek `json:"Days,omitempty"`
	Times           []TimeRange                       `json:"Times,omitempty"`
}

// ChaosParametersDictionaryItem defines an item in
// ChaosParametersDictionary of the Chaos Schedule.
type ChaosParametersDictionaryItem struct {
	Key   string          `json:"Key"`
	Value ChaosParameters `json:"Value"`
}

// NewChaosParametersDictionaryItem returns an item with its required fields
// set.
func NewChaosParametersDictionaryItem(key string, value ChaosParameters) *ChaosParametersDictionaryItem {
	return &ChaosParametersDictionaryItem{
		Key:   key,
		Value: value,
	}
}

// ChaosSchedule defines the schedule used by Chaos.
type ChaosSchedule struct {
	StartDate                 *date.Time                      `json:"StartDate,omitempty"`
	ExpiryDate                *date.Time                      `json:"ExpiryDate,omitempty"`
	ChaosParametersDictionary []ChaosParametersDictionaryItem `json:"ChaosParametersDictionary,omitempty"`
	Jobs                      []ChaosScheduleJob              `json:"Jobs,omitempty"`
}

// ChaosScheduleDescription defines the Chaos Schedule used by Chaos and the
// version of the Chaos Schedule. The version value wraps back to 0 after
// surpassing 2,147,483,647.
type ChaosScheduleDescription struct {
	Version  *int32         `json:"Version,omitempty"`
	Schedule *ChaosSchedule `json:"Schedule,omitempty"`
}
