package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Azure/go-autorest/autorest/to"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-servicefabric-go/pkg/api/util/pointerutils"
	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
	"github.com/Azure/azure-servicefabric-go/pkg/env"
	"github.com/Azure/azure-servicefabric-go/pkg/metrics"
	mock_servicefabric "github.com/Azure/azure-servicefabric-go/pkg/util/mocks/servicefabric"
	"github.com/Azure/azure-servicefabric-go/pkg/util/uuid"
	"github.com/Azure/azure-servicefabric-go/pkg/util/uuid/fake"
	testlog "github.com/Azure/azure-servicefabric-go/test/util/log"
)

const operationID = "11111111-2222-3333-4444-555555555555"

func TestCommands(t *testing.T) {
	gatewayErr := errors.New("gateway unavailable")

	for _, tt := range []struct {
		name         string
		args         []string
		mocks        func(*mock_servicefabric.MockBaseClientAPI)
		wantOut      string
		wantContains []string
		wantErr      string
	}{
		{
			name: "list nodes",
			args: []string{"node", "list", "--status", "up"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().ListAllNodes(gomock.Any(), "up").Return([]v82.NodeInfo{
					{Name: to.StringPtr("_Node_0")},
				}, nil)
			},
			wantOut: `[{"Name":"_Node_0"}]` + "\n",
		},
		{
			name: "cluster version with a server side timeout",
			args: []string{"cluster", "version", "--timeout", "30"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().GetClusterVersion(gomock.Any(), to.Int64Ptr(30)).Return(v82.ClusterVersion{
					Version: to.StringPtr("8.2.1571.9590"),
				}, nil)
			},
			wantOut: `{"Version":"8.2.1571.9590"}` + "\n",
		},
		{
			name: "pretty output",
			args: []string{"cluster", "version", "-o", "pretty"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().GetClusterVersion(gomock.Any(), nil).Return(v82.ClusterVersion{
					Version: to.StringPtr("8.2.1571.9590"),
				}, nil)
			},
			wantOut: "{\n  \"Version\": \"8.2.1571.9590\"\n}\n",
		},
		{
			name: "yaml output",
			args: []string{"node", "list", "-o", "yaml"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().ListAllNodes(gomock.Any(), "").Return([]v82.NodeInfo{
					{Name: to.StringPtr("_Node_0"), NodeStatus: pointerutils.ToPtr(v82.NodeStatusUp)},
				}, nil)
			},
			wantOut: "- Name: _Node_0\n  NodeStatus: Up\n",
		},
		{
			name: "disable nodes continues past failures",
			args: []string{"node", "disable", "_Node_0", "_Node_1", "--intent", "Restart"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				description := v82.DeactivationIntentDescription{
					DeactivationIntent: pointerutils.ToPtr(v82.NodeDeactivationIntentRestart),
				}
				client.EXPECT().DisableNode(gomock.Any(), "_Node_0", description, nil).Return(gatewayErr)
				client.EXPECT().DisableNode(gomock.Any(), "_Node_1", description, nil).Return(nil)
			},
			wantErr: "1 error occurred:\n\t* _Node_0: gateway unavailable\n\n",
		},
		{
			name:    "disable nodes with an unknown intent",
			args:    []string{"node", "disable", "_Node_0", "--intent", "Sleep"},
			wantErr: `invalid --intent "Sleep"`,
		},
		{
			name: "create application",
			args: []string{"application", "create", "--name", "fabric:/app", "--type", "AppType", "--version", "1.0.0", "--parameter", "b=2,a=1"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().CreateApplication(gomock.Any(), v82.ApplicationDescription{
					Name:        "fabric:/app",
					TypeName:    "AppType",
					TypeVersion: "1.0.0",
					ParameterList: []v82.ApplicationParameter{
						{Key: "a", Value: "1"},
						{Key: "b", Value: "2"},
					},
				}, nil).Return(nil)
			},
		},
		{
			name: "report node health",
			args: []string{"health", "report", "node", "_Node_0", "--source-id", "watchdog", "--property", "disk", "--health-state", "Warning", "--ttl", "1m", "--immediate"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().ReportNodeHealth(gomock.Any(), "_Node_0", v82.HealthInformation{
					SourceID:                 "watchdog",
					Property:                 "disk",
					HealthState:              v82.HealthStateWarning,
					TimeToLiveInMilliSeconds: to.StringPtr("60000"),
				}, to.BoolPtr(true), nil).Return(nil)
			},
		},
		{
			name: "report replica health",
			args: []string{"health", "report", "replica", "p1", "r1", "--source-id", "watchdog", "--property", "lag", "--health-state", "Error", "--service-kind", "Stateless"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().ReportReplicaHealth(gomock.Any(), "p1", "r1", v82.ReplicaHealthReportServiceKindStateless, v82.HealthInformation{
					SourceID:    "watchdog",
					Property:    "lag",
					HealthState: v82.HealthStateError,
				}, nil, nil).Return(nil)
			},
		},
		{
			name:    "report replica health without a replica id",
			args:    []string{"health", "report", "replica", "p1", "--source-id", "watchdog", "--property", "lag", "--health-state", "Error"},
			wantErr: "replica: expected 2 arguments, got 1",
		},
		{
			name:    "report health with an invalid state",
			args:    []string{"health", "report", "cluster", "--source-id", "watchdog", "--property", "lag", "--health-state", "Fine"},
			wantErr: `invalid --health-state "Fine"`,
		},
		{
			name: "start data loss",
			args: []string{"fault", "data-loss", "app~svc", "p1", "--mode", "FullDataLoss"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().StartDataLoss(gomock.Any(), "app~svc", "p1", uuid.MustFromString(operationID), v82.DataLossModeFullDataLoss, nil).Return(nil)
			},
			wantOut: `{"OperationId":"` + operationID + `"}` + "\n",
		},
		{
			name:    "data loss progress with a malformed operation id",
			args:    []string{"fault", "progress", "app~svc", "p1", "nope"},
			wantErr: "invalid operation id: ",
		},
		{
			name: "cancel repair task",
			args: []string{"repair", "cancel", "task-1", "--version", "3"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().CancelRepairTask(gomock.Any(), v82.RepairTaskCancelDescription{
					TaskID:       "task-1",
					Version:      to.StringPtr("3"),
					RequestAbort: to.BoolPtr(false),
				}).Return(v82.RepairTaskUpdateInfo{Version: "4"}, nil)
			},
			wantOut: `{"Version":"4"}` + "\n",
		},
		{
			name: "snapshot of an unreachable cluster",
			args: []string{"cluster", "snapshot", "--metrics"},
			mocks: func(client *mock_servicefabric.MockBaseClientAPI) {
				client.EXPECT().GetClusterVersion(gomock.Any(), nil).Return(v82.ClusterVersion{}, gatewayErr)
				client.EXPECT().GetClusterUpgradeProgress(gomock.Any(), nil).Return(v82.ClusterUpgradeProgressObject{}, gatewayErr)
				client.EXPECT().GetClusterHealth(gomock.Any(), nil, nil).Return(v82.ClusterHealth{}, gatewayErr)
				client.EXPECT().ListAllNodes(gomock.Any(), "").Return(nil, gatewayErr)
				client.EXPECT().ListAllApplications(gomock.Any(), "").Return(nil, gatewayErr)
				client.EXPECT().GetChaos(gomock.Any(), nil).Return(v82.Chaos{}, gatewayErr)
			},
			wantContains: []string{
				`"endpoint":"http://localhost:19080"`,
				`"chaos: gateway unavailable"`,
				"sfctl_snapshot_tasks_count 6",
				"sfctl_snapshot_tasks_errors 1",
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)

			client := mock_servicefabric.NewMockBaseClientAPI(controller)
			if tt.mocks != nil {
				tt.mocks(client)
			}

			out, err := run(client, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.HasPrefix(err.Error(), tt.wantErr) {
					t.Fatalf("got error %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if tt.wantContains == nil && out.String() != tt.wantOut {
				t.Errorf("got output %q, want %q", out.String(), tt.wantOut)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output %q does not contain %q", out.String(), want)
				}
			}
		})
	}
}

func run(client servicefabric.BaseClientAPI, args ...string) (*bytes.Buffer, error) {
	_, log := testlog.NewCapturingLogger()
	out := &bytes.Buffer{}

	cmd, err := newCommand(&cli{
		cfg:   env.NewViper(),
		log:   log,
		out:   out,
		uuids: fake.NewGenerator([]string{operationID}),

		newClient: func(env.Interface, metrics.Emitter) (servicefabric.BaseClientAPI, error) {
			return client, nil
		},
	})
	if err != nil {
		return nil, err
	}
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return out, cmd.ExecuteContext(context.Background())
}

func TestBackupPolicyCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	err := os.WriteFile(path, []byte(`Name: daily
AutoRestoreOnDataLoss: false
MaxIncrementalBackups: 3
Schedule:
  ScheduleKind: FrequencyBased
  Interval: PT24H
Storage:
  StorageKind: AzureBlobStore
  ConnectionString: hunter2
  ContainerName: backups
`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	controller := gomock.NewController(t)
	client := mock_servicefabric.NewMockBaseClientAPI(controller)
	client.EXPECT().CreateBackupPolicy(gomock.Any(), *v82.NewBackupPolicyDescription("daily", false, 3,
		v82.NewFrequencyBasedBackupScheduleDescription("PT24H"),
		v82.NewAzureBlobBackupStorageDescription("hunter2", "backups"),
	), nil).Return(nil)

	_, err = run(client, "backup", "policy-create", "-f", path)
	if err != nil {
		t.Fatal(err)
	}
}

func TestApplicationParameters(t *testing.T) {
	if got := applicationParameters(nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
