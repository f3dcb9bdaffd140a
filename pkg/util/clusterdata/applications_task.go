package clusterdata

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
)

// servicesConcurrency bounds the per-application service listings in
// flight.
const servicesConcurrency = 8

func newApplicationsEnricherTask(log *logrus.Entry, client servicefabric.BaseClientAPI, s *Snapshot) enricherTask {
	return &applicationsEnricherTask{
		log:    log,
		client: client,
		s:      s,
	}
}

type applicationsEnricherTask struct {
	log    *logrus.Entry
	client servicefabric.BaseClientAPI
	s      *Snapshot
}

func (ef *applicationsEnricherTask) FetchData(ctx context.Context, callbacks chan<- func(), errs chan<- error) {
	applications, err := ef.client.ListAllApplications(ctx, "")
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("applications: %w", err)
		return
	}

	ids := make([]string, 0, len(applications))
	for _, application := range applications {
		if application.ID != nil {
			ids = append(ids, *application.ID)
		}
	}

	services, err := ef.client.ListServicesForApplications(ctx, ids, servicesConcurrency)
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("services: %w", err)
		return
	}

	callbacks <- func() {
		ef.s.Applications = applications
		ef.s.Services = services
	}
}

func (ef *applicationsEnricherTask) SetDefaults() {
	ef.s.Applications = nil
	ef.s.Services = nil
}
