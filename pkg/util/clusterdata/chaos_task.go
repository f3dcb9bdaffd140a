package clusterdata

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
)

func newChaosEnricherTask(log *logrus.Entry, client servicefabric.BaseClientAPI, s *Snapshot) enricherTask {
	return &chaosEnricherTask{
		log:    log,
		client: client,
		s:      s,
	}
}

type chaosEnricherTask struct {
	log    *logrus.Entry
	client servicefabric.BaseClientAPI
	s      *Snapshot
}

func (ef *chaosEnricherTask) FetchData(ctx context.Context, callbacks chan<- func(), errs chan<- error) {
	chaos, err := ef.client.GetChaos(ctx, nil)
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("chaos: %w", err)
		return
	}

	callbacks <- func() {
		ef.s.ChaosStatus = chaos.Status
	}
}

func (ef *chaosEnricherTask) SetDefaults() {
	ef.s.ChaosStatus = nil
}
