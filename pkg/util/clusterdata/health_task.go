package clusterdata

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
)

func newHealthEnricherTask(log *logrus.Entry, client servicefabric.BaseClientAPI, s *Snapshot) enricherTask {
	return &healthEnricherTask{
		log:    log,
		client: client,
		s:      s,
	}
}

type healthEnricherTask struct {
	log    *logrus.Entry
	client servicefabric.BaseClientAPI
	s      *Snapshot
}

func (ef *healthEnricherTask) FetchData(ctx context.Context, callbacks chan<- func(), errs chan<- error) {
	health, err := ef.client.GetClusterHealth(ctx, nil, nil)
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("cluster health: %w", err)
		return
	}

	callbacks <- func() {
		ef.s.HealthState = health.AggregatedHealthState
		ef.s.UnhealthyEvaluations = len(health.UnhealthyEvaluations)
	}
}

func (ef *healthEnricherTask) SetDefaults() {
	ef.s.HealthState = nil
	ef.s.UnhealthyEvaluations = 0
}
