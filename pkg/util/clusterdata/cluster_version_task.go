package clusterdata

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
	"github.com/Azure/azure-servicefabric-go/pkg/util/version"
)

func newClusterVersionEnricherTask(log *logrus.Entry, client servicefabric.BaseClientAPI, s *Snapshot) enricherTask {
	return &clusterVersionEnricherTask{
		log:    log,
		client: client,
		s:      s,
	}
}

type clusterVersionEnricherTask struct {
	log    *logrus.Entry
	client servicefabric.BaseClientAPI
	s      *Snapshot
}

func (ef *clusterVersionEnricherTask) FetchData(ctx context.Context, callbacks chan<- func(), errs chan<- error) {
	cv, err := ef.client.GetClusterVersion(ctx, nil)
	if err == nil && cv.Version == nil {
		err = fmt.Errorf("cluster version not reported")
	}
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("cluster version: %w", err)
		return
	}

	v, err := version.ParseVersion(*cv.Version)
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("cluster version: %w", err)
		return
	}

	below, err := belowMinimumCodeVersion(v)
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("cluster version: %w", err)
		return
	}
	if below {
		ef.log.Warnf("cluster code version %s is older than api version %s supports", v, api.DefaultVersion)
	}

	callbacks <- func() {
		ef.s.CodeVersion = v
		ef.s.BelowMinimumCodeVersion = below
	}
}

func (ef *clusterVersionEnricherTask) SetDefaults() {
	ef.s.CodeVersion = nil
	ef.s.BelowMinimumCodeVersion = false
}

func belowMinimumCodeVersion(v *version.Version) (bool, error) {
	apiVersion, err := api.Lookup(api.DefaultVersion)
	if err != nil {
		return false, err
	}

	minimum, err := version.ParseVersion(apiVersion.ClusterMinimumCodeVersion)
	if err != nil {
		return false, err
	}

	return v.Lt(minimum), nil
}

func newUpgradeEnricherTask(log *logrus.Entry, client servicefabric.BaseClientAPI, s *Snapshot) enricherTask {
	return &upgradeEnricherTask{
		log:    log,
		client: client,
		s:      s,
	}
}

type upgradeEnricherTask struct {
	log    *logrus.Entry
	client servicefabric.BaseClientAPI
	s      *Snapshot
}

func (ef *upgradeEnricherTask) FetchData(ctx context.Context, callbacks chan<- func(), errs chan<- error) {
	progress, err := ef.client.GetClusterUpgradeProgress(ctx, nil)
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("upgrade progress: %w", err)
		return
	}

	callbacks <- func() {
		ef.s.UpgradeState = progress.UpgradeState
		ef.s.TargetCodeVersion = progress.CodeVersion
	}
}

func (ef *upgradeEnricherTask) SetDefaults() {
	ef.s.UpgradeState = nil
	ef.s.TargetCodeVersion = nil
}
