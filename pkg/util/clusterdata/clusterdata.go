package clusterdata

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
	"github.com/Azure/azure-servicefabric-go/pkg/metrics"
	"github.com/Azure/azure-servicefabric-go/pkg/util/recover"
	"github.com/Azure/azure-servicefabric-go/pkg/util/version"
)

// Snapshot is a point in time summary of a cluster. Sections whose data
// could not be fetched are left empty and the failure is recorded in
// Errors.
type Snapshot struct {
	Endpoint    string     `json:"endpoint,omitempty"`
	CollectedAt *date.Time `json:"collectedAt,omitempty"`

	CodeVersion             *version.Version `json:"codeVersion,omitempty"`
	BelowMinimumCodeVersion bool             `json:"belowMinimumCodeVersion,omitempty"`

	UpgradeState      *v82.UpgradeState `json:"upgradeState,omitempty"`
	TargetCodeVersion *string           `json:"targetCodeVersion,omitempty"`

	HealthState          *v82.HealthState `json:"healthState,omitempty"`
	UnhealthyEvaluations int              `json:"unhealthyEvaluations,omitempty"`

	Nodes            []v82.NodeInfo `json:"nodes,omitempty"`
	NodeCodeVersions map[string]int `json:"nodeCodeVersions,omitempty"`

	Applications []v82.ApplicationInfo             `json:"applications,omitempty"`
	Services     map[string][]v82.BasicServiceInfo `json:"services,omitempty"`

	ChaosStatus *v82.ChaosStatus `json:"chaosStatus,omitempty"`

	Errors []string `json:"errors,omitempty"`
}

// Enricher populates a snapshot from a cluster's gateway
type Enricher interface {
	Enrich(ctx context.Context, s *Snapshot)
}

type enricherTaskConstructor func(*logrus.Entry, servicefabric.BaseClientAPI, *Snapshot) enricherTask
type enricherTask interface {
	SetDefaults()
	FetchData(context.Context, chan<- func(), chan<- error)
}

// NewBestEffortEnricher returns an enricher that attempts to populate
// fields, but ignores errors in case of failures
func NewBestEffortEnricher(log *logrus.Entry, m metrics.Emitter, client servicefabric.BaseClientAPI) Enricher {
	return &bestEffortEnricher{
		log:    log,
		m:      m,
		client: client,
		now:    time.Now,

		taskConstructors: []enricherTaskConstructor{
			newClusterVersionEnricherTask,
			newUpgradeEnricherTask,
			newHealthEnricherTask,
			newNodesEnricherTask,
			newApplicationsEnricherTask,
			newChaosEnricherTask,
		},
	}
}

type bestEffortEnricher struct {
	log    *logrus.Entry
	m      metrics.Emitter
	client servicefabric.BaseClientAPI
	now    func() time.Time

	taskConstructors []enricherTaskConstructor
}

func (e *bestEffortEnricher) Enrich(ctx context.Context, s *Snapshot) {
	e.m.EmitGauge("snapshot.tasks.count", int64(len(e.taskConstructors)), nil)

	s.CollectedAt = &date.Time{Time: e.now().UTC()}
	s.Errors = nil

	tasks := make([]enricherTask, 0, len(e.taskConstructors))
	for i := range e.taskConstructors {
		task := e.taskConstructors[i](e.log, e.client, s)
		tasks = append(tasks, task)
		task.SetDefaults()
	}

	// The channels are buffered for every task so that FetchData goroutines
	// return once done even if nobody reads after a timeout.
	callbacks := make(chan func(), len(tasks))
	errors := make(chan error, len(tasks))
	for i := range tasks {
		go func(i int) {
			defer recover.PanicFunc(e.log, func(interface{}) {
				errors <- fmt.Errorf("%T: panic", tasks[i])
			})

			t := time.Now()
			defer func() {
				e.m.EmitGauge("snapshot.tasks.duration", time.Since(t).Milliseconds(), map[string]string{
					"task": fmt.Sprintf("%T", tasks[i]),
				})
			}()

			tasks[i].FetchData(ctx, callbacks, errors)
		}(i)
	}

out:
	for i := 0; i < len(tasks); i++ {
		select {
		case f := <-callbacks:
			f()
		case err := <-errors:
			// tasks log their own errors
			e.m.EmitGauge("snapshot.tasks.errors", 1, nil)
			s.Errors = append(s.Errors, err.Error())
		case <-ctx.Done():
			e.m.EmitGauge("snapshot.timeouts", 1, nil)
			e.log.Warn("timeout expired")
			s.Errors = append(s.Errors, ctx.Err().Error())
			break out
		}
	}
}
