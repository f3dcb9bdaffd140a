package clusterdata

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/go-test/deep"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-servicefabric-go/pkg/api/util/pointerutils"
	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
	mock_metrics "github.com/Azure/azure-servicefabric-go/pkg/util/mocks/metrics"
	mock_servicefabric "github.com/Azure/azure-servicefabric-go/pkg/util/mocks/servicefabric"
	"github.com/Azure/azure-servicefabric-go/pkg/util/version"
)

func TestEnrich(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	stateful := &v82.StatefulServiceInfo{
		ServiceInfo: v82.ServiceInfo{
			ID: to.StringPtr("app~svc"),
		},
	}

	for _, tt := range []struct {
		name    string
		mocks   func(*mock_servicefabric.MockBaseClientAPI)
		wantErr int
		want    *Snapshot
	}{
		{
			name: "all tasks succeed",
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().GetClusterVersion(gomock.Any(), nil).Return(v82.ClusterVersion{Version: to.StringPtr("8.2.1571.9590")}, nil)
				client.EXPECT().GetClusterUpgradeProgress(gomock.Any(), nil).Return(v82.ClusterUpgradeProgressObject{
					CodeVersion:  to.StringPtr("8.2.1686.9590"),
					UpgradeState: pointerutils.ToPtr(v82.UpgradeStateRollingForwardInProgress),
				}, nil)
				client.EXPECT().GetClusterHealth(gomock.Any(), nil, nil).Return(v82.ClusterHealth{
					EntityHealth: v82.EntityHealth{
						AggregatedHealthState: pointerutils.ToPtr(v82.HealthStateWarning),
						UnhealthyEvaluations:  []v82.HealthEvaluationWrapper{{}, {}},
					},
				}, nil)
				client.EXPECT().ListAllNodes(gomock.Any(), "").Return([]v82.NodeInfo{
					{Name: to.StringPtr("_Node_0"), CodeVersion: to.StringPtr("8.2.1571.9590")},
					{Name: to.StringPtr("_Node_1"), CodeVersion: to.StringPtr("8.2.1686.9590")},
					{Name: to.StringPtr("_Node_2")},
				}, nil)
				client.EXPECT().ListAllApplications(gomock.Any(), "").Return([]v82.ApplicationInfo{
					{ID: to.StringPtr("app")},
					{Name: to.StringPtr("fabric:/noid")},
				}, nil)
				client.EXPECT().ListServicesForApplications(gomock.Any(), []string{"app"}, servicesConcurrency).Return(map[string][]v82.BasicServiceInfo{
					"app": {stateful},
				}, nil)
				client.EXPECT().GetChaos(gomock.Any(), nil).Return(v82.Chaos{Status: pointerutils.ToPtr(v82.ChaosStatusStopped)}, nil)
			},
			want: &Snapshot{
				Endpoint:             "https://localhost:19080",
				CollectedAt:          &date.Time{Time: now},
				CodeVersion:          version.NewVersion(8, 2, 1571, 9590),
				UpgradeState:         pointerutils.ToPtr(v82.UpgradeStateRollingForwardInProgress),
				TargetCodeVersion:    to.StringPtr("8.2.1686.9590"),
				HealthState:          pointerutils.ToPtr(v82.HealthStateWarning),
				UnhealthyEvaluations: 2,
				Nodes: []v82.NodeInfo{
					{Name: to.StringPtr("_Node_0"), CodeVersion: to.StringPtr("8.2.1571.9590")},
					{Name: to.StringPtr("_Node_1"), CodeVersion: to.StringPtr("8.2.1686.9590")},
					{Name: to.StringPtr("_Node_2")},
				},
				NodeCodeVersions: map[string]int{
					"8.2.1571.9590": 1,
					"8.2.1686.9590": 1,
				},
				Applications: []v82.ApplicationInfo{
					{ID: to.StringPtr("app")},
					{Name: to.StringPtr("fabric:/noid")},
				},
				Services: map[string][]v82.BasicServiceInfo{
					"app": {stateful},
				},
				ChaosStatus: pointerutils.ToPtr(v82.ChaosStatusStopped),
			},
		},
		{
			name: "cluster older than the api version",
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().GetClusterVersion(gomock.Any(), nil).Return(v82.ClusterVersion{Version: to.StringPtr("7.2.477.9590")}, nil)
				client.EXPECT().GetClusterUpgradeProgress(gomock.Any(), nil).Return(v82.ClusterUpgradeProgressObject{}, nil)
				client.EXPECT().GetClusterHealth(gomock.Any(), nil, nil).Return(v82.ClusterHealth{}, nil)
				client.EXPECT().ListAllNodes(gomock.Any(), "").Return(nil, nil)
				client.EXPECT().ListAllApplications(gomock.Any(), "").Return(nil, nil)
				client.EXPECT().ListServicesForApplications(gomock.Any(), []string{}, servicesConcurrency).Return(map[string][]v82.BasicServiceInfo{}, nil)
				client.EXPECT().GetChaos(gomock.Any(), nil).Return(v82.Chaos{}, nil)
			},
			want: &Snapshot{
				Endpoint:                "https://localhost:19080",
				CollectedAt:             &date.Time{Time: now},
				CodeVersion:             version.NewVersion(7, 2, 477, 9590),
				BelowMinimumCodeVersion: true,
				NodeCodeVersions:        map[string]int{},
				Services:                map[string][]v82.BasicServiceInfo{},
			},
		},
		{
			name: "failed tasks leave their sections empty",
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().GetClusterVersion(gomock.Any(), nil).Return(v82.ClusterVersion{Version: to.StringPtr("not-a-version")}, nil)
				client.EXPECT().GetClusterUpgradeProgress(gomock.Any(), nil).Return(v82.ClusterUpgradeProgressObject{}, errors.New("gateway unavailable"))
				client.EXPECT().GetClusterHealth(gomock.Any(), nil, nil).Return(v82.ClusterHealth{
					EntityHealth: v82.EntityHealth{
						AggregatedHealthState: pointerutils.ToPtr(v82.HealthStateOk),
					},
				}, nil)
				client.EXPECT().ListAllNodes(gomock.Any(), "").Return(nil, errors.New("gateway unavailable"))
				client.EXPECT().ListAllApplications(gomock.Any(), "").Return([]v82.ApplicationInfo{{ID: to.StringPtr("app")}}, nil)
				client.EXPECT().ListServicesForApplications(gomock.Any(), []string{"app"}, servicesConcurrency).Return(nil, errors.New("gateway unavailable"))
				client.EXPECT().GetChaos(gomock.Any(), nil).Return(v82.Chaos{Status: pointerutils.ToPtr(v82.ChaosStatusRunning)}, nil)
			},
			wantErr: 4,
			want: &Snapshot{
				Endpoint:    "https://localhost:19080",
				CollectedAt: &date.Time{Time: now},
				HealthState: pointerutils.ToPtr(v82.HealthStateOk),
				ChaosStatus: pointerutils.ToPtr(v82.ChaosStatusRunning),
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)

			client := mock_servicefabric.NewMockBaseClientAPI(controller)
			tt.mocks(client)

			m := mock_metrics.NewMockEmitter(controller)
			m.EXPECT().EmitGauge("snapshot.tasks.count", int64(6), nil)
			m.EXPECT().EmitGauge("snapshot.tasks.duration", gomock.Any(), gomock.Any()).AnyTimes()
			if tt.wantErr > 0 {
				m.EXPECT().EmitGauge("snapshot.tasks.errors", int64(1), nil).Times(tt.wantErr)
			}

			e := NewBestEffortEnricher(logrus.NewEntry(logrus.StandardLogger()), m, client).(*bestEffortEnricher)
			e.now = func() time.Time { return now }

			s := &Snapshot{
				Endpoint: "https://localhost:19080",
				// stale data from a previous run must not survive
				Nodes: []v82.NodeInfo{{Name: to.StringPtr("stale")}},
			}
			e.Enrich(ctx, s)

			if len(s.Errors) != tt.wantErr {
				t.Errorf("got %d errors, want %d: %v", len(s.Errors), tt.wantErr, s.Errors)
			}
			s.Errors = nil

			for _, diff := range deep.Equal(s, tt.want) {
				t.Error(diff)
			}
		})
	}
}

type blockingTask struct{}

func (blockingTask) SetDefaults() {}

func (blockingTask) FetchData(ctx context.Context, callbacks chan<- func(), errs chan<- error) {
	<-ctx.Done()
}

func TestEnrichTimeout(t *testing.T) {
	controller := gomock.NewController(t)

	m := mock_metrics.NewMockEmitter(controller)
	m.EXPECT().EmitGauge("snapshot.tasks.count", int64(1), nil)
	m.EXPECT().EmitGauge("snapshot.tasks.duration", gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().EmitGauge("snapshot.timeouts", int64(1), nil)

	e := &bestEffortEnricher{
		log: logrus.NewEntry(logrus.StandardLogger()),
		m:   m,
		now: time.Now,
		taskConstructors: []enricherTaskConstructor{
			func(*logrus.Entry, servicefabric.BaseClientAPI, *Snapshot) enricherTask {
				return blockingTask{}
			},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	s := &Snapshot{}
	e.Enrich(ctx, s)

	if len(s.Errors) != 1 || s.Errors[0] != context.DeadlineExceeded.Error() {
		t.Errorf("unexpected errors %v", s.Errors)
	}
}

type panickingTask struct{}

func (panickingTask) SetDefaults() {}

func (panickingTask) FetchData(ctx context.Context, callbacks chan<- func(), errs chan<- error) {
	panic("boom")
}

func TestEnrichPanickingTask(t *testing.T) {
	controller := gomock.NewController(t)

	m := mock_metrics.NewMockEmitter(controller)
	m.EXPECT().EmitGauge("snapshot.tasks.count", int64(1), nil)
	m.EXPECT().EmitGauge("snapshot.tasks.duration", gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().EmitGauge("snapshot.tasks.errors", int64(1), nil)

	e := &bestEffortEnricher{
		log: logrus.NewEntry(logrus.StandardLogger()),
		m:   m,
		now: time.Now,
		taskConstructors: []enricherTaskConstructor{
			func(*logrus.Entry, servicefabric.BaseClientAPI, *Snapshot) enricherTask {
				return panickingTask{}
			},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s := &Snapshot{}
	e.Enrich(ctx, s)

	if ctx.Err() != nil {
		t.Fatal("enrich waited for the deadline")
	}
	if deep.Equal(s.Errors, []string{"clusterdata.panickingTask: panic"}) != nil {
		t.Errorf("unexpected errors %v", s.Errors)
	}
}
