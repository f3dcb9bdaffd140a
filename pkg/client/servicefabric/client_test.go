package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
	"github.com/Azure/azure-servicefabric-go/pkg/api/util/pointerutils"
	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/util/cmp"
	mock_metrics "github.com/Azure/azure-servicefabric-go/pkg/util/mocks/metrics"
	utilerror "github.com/Azure/azure-servicefabric-go/test/util/error"
	utiljson "github.com/Azure/azure-servicefabric-go/test/util/json"
	testlog "github.com/Azure/azure-servicefabric-go/test/util/log"
)

type exchange struct {
	wantMethod string
	wantURL    string
	wantBody   string
	status     int
	body       string
}

type fakeSender struct {
	t         *testing.T
	exchanges []exchange
}

func (fs *fakeSender) Do(req *http.Request) (*http.Response, error) {
	if len(fs.exchanges) == 0 {
		fs.t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	ex := fs.exchanges[0]
	fs.exchanges = fs.exchanges[1:]

	if req.Method != ex.wantMethod {
		fs.t.Error(req.Method)
	}

	if req.URL.String() != ex.wantURL {
		fs.t.Error(req.URL.String())
	}

	if ex.wantBody != "" {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			fs.t.Fatal(err)
		}
		utiljson.AssertJsonMatches(fs.t, []byte(ex.wantBody), b)
	}

	return &http.Response{
		StatusCode: ex.status,
		Header: http.Header{
			"Content-Type": []string{"application/json; charset=utf-8"},
		},
		Body:    io.NopCloser(strings.NewReader(ex.body)),
		Request: req,
	}, nil
}

func newTestClient(t *testing.T, exchanges ...exchange) (BaseClient, *fakeSender) {
	fs := &fakeSender{t: t, exchanges: exchanges}

	client := NewWithBaseURI("https://localhost:19080")
	client.Sender = fs
	client.RetryAttempts = 0
	client.RetryDuration = 0

	return client, fs
}

func TestOperations(t *testing.T) {
	ctx := context.Background()
	operationID := uuid.Must(uuid.FromString("6c2c1d5a-3c1c-4d86-9c6a-6d2d3e8a1f00"))

	testOperations(t, []operationTest{
		{
			name: "get node",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Nodes/_Node_0?api-version=6.0&timeout=60",
				status:     http.StatusOK,
				body:       `{"Name":"_Node_0","NodeStatus":"Up","HealthState":"Ok"}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetNodeInfo(ctx, "_Node_0", nil)
			},
			want: v82.NodeInfo{
				Name:        to.StringPtr("_Node_0"),
				NodeStatus:  pointerutils.ToPtr(v82.NodeStatusUp),
				HealthState: pointerutils.ToPtr(v82.HealthStateOk),
			},
		},
		{
			name: "get node that does not exist",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Nodes/_Node_9?api-version=6.0&timeout=30",
				status:     http.StatusNoContent,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetNodeInfo(ctx, "_Node_9", to.Int64Ptr(30))
			},
			want: v82.NodeInfo{},
		},
		{
			name: "list nodes with filter and paging",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Nodes?ContinuationToken=token&MaxResults=10&NodeStatusFilter=up&api-version=6.3&timeout=60",
				status:     http.StatusOK,
				body:       `{"ContinuationToken":"","Items":[{"Name":"_Node_1"}]}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetNodeInfoList(ctx, "token", "up", to.Int64Ptr(10), nil)
			},
			want: v82.PagedNodeInfoList{
				ContinuationToken: to.StringPtr(""),
				Items:             []v82.NodeInfo{{Name: to.StringPtr("_Node_1")}},
			},
		},
		{
			name: "create application",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Applications/$/Create?api-version=6.0&timeout=60",
				wantBody:   `{"Name":"fabric:/app","TypeName":"AppType","TypeVersion":"1.0.0"}`,
				status:     http.StatusCreated,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.CreateApplication(ctx, *v82.NewApplicationDescription("fabric:/app", "AppType", "1.0.0"), nil)
			},
		},
		{
			name: "get stateful service",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Applications/app~sub/$/GetServices/app~sub~svc?api-version=6.0&timeout=60",
				status:     http.StatusOK,
				body:       `{"ServiceKind":"Stateful","Id":"app~sub~svc","HasPersistedState":true}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetServiceInfo(ctx, "app~sub", "app~sub~svc", nil)
			},
			want: &v82.StatefulServiceInfo{
				ServiceInfo: v82.ServiceInfo{
					ServiceKind: v82.ServiceKindStateful,
					ID:          to.StringPtr("app~sub~svc"),
				},
				HasPersistedState: to.BoolPtr(true),
			},
		},
		{
			name: "get partition that does not exist",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Partitions/p1?api-version=6.0&timeout=60",
				status:     http.StatusNoContent,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetPartitionInfo(ctx, "p1", nil)
			},
			want: v82.BasicServicePartitionInfo(nil),
		},
		{
			name: "image store content path is not escaped",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/ImageStore/Store/AppType?api-version=6.2&timeout=60",
				status:     http.StatusOK,
				body:       `{"StoreFolders":[{"StoreRelativePath":"Store/AppType/pkg"}]}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				content, err := c.GetImageStoreContent(ctx, "Store/AppType", nil)
				return len(content.StoreFolders), err
			},
			want: 1,
		},
		{
			name: "cancel fault operation",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Faults/$/Cancel?Force=true&OperationId=6c2c1d5a-3c1c-4d86-9c6a-6d2d3e8a1f00&api-version=6.0&timeout=60",
				status:     http.StatusOK,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.CancelOperation(ctx, operationID, true, nil)
			},
		},
		{
			name: "mesh secret value show",
			exchanges: []exchange{{
				wantMethod: http.MethodPost,
				wantURL:    "https://localhost:19080/Resources/Secrets/db/values/v1/list_value?api-version=6.4-preview&timeout=60",
				status:     http.StatusOK,
				body:       `{"value":"hunter2"}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.MeshSecretValueShow(ctx, "db", "v1")
			},
			want: v82.SecretValue{Value: pointerutils.ToPtr(api.SecureString("hunter2"))},
		},
		{
			name: "fabric error",
			exchanges: []exchange{{
				wantMethod: http.MethodGet,
				wantURL:    "https://localhost:19080/Nodes/_Node_9?api-version=6.0&timeout=60",
				status:     http.StatusNotFound,
				body:       `{"Error":{"Code":"FABRIC_E_NODE_NOT_FOUND","Message":"node not found"}}`,
			}},
			call: func(c BaseClient) (interface{}, error) {
				return c.GetNodeInfo(ctx, "_Node_9", nil)
			},
			wantErr: "servicefabric.BaseClient#GetNodeInfo: Failure responding to request: StatusCode=404 -- Original Error: 404: FABRIC_E_NODE_NOT_FOUND: node not found",
		},
		{
			name: "timeout out of range",
			call: func(c BaseClient) (interface{}, error) {
				return nil, c.EnableNode(ctx, "_Node_0", to.Int64Ptr(0))
			},
			wantErr: "servicefabric.BaseClient#EnableNode: Invalid input: autorest/validation: validation failed: parameter=timeout constraint=InclusiveMinimum",
		},
		{
			name: "negative max results",
			call: func(c BaseClient) (interface{}, error) {
				return c.GetNodeInfoList(ctx, "", "", to.Int64Ptr(-1), nil)
			},
			wantErr: "servicefabric.BaseClient#GetNodeInfoList: Invalid input: autorest/validation: validation failed: parameter=maxResults constraint=InclusiveMinimum",
		},
	})
}

// operationTest runs call against a client whose sender replays exchanges
// in order.
type operationTest struct {
	name      string
	exchanges []exchange
	call      func(BaseClient) (interface{}, error)
	want      interface{}
	wantErr   string
}

func testOperations(t *testing.T, tests []operationTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, fs := newTestClient(t, tt.exchanges...)

			got, err := tt.call(client)
			if tt.wantErr != "" {
				if err == nil || !strings.HasPrefix(err.Error(), tt.wantErr) {
					t.Fatal(err)
				}
			} else if err != nil {
				t.Fatal(err)
			}

			if len(fs.exchanges) != 0 {
				t.Errorf("%d requests not sent", len(fs.exchanges))
			}

			if tt.wantErr == "" {
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Error(diff)
				}
			}
		})
	}
}

func TestServiceErrorIsUnwrapped(t *testing.T) {
	client, _ := newTestClient(t, exchange{
		wantMethod: http.MethodPost,
		wantURL:    "https://localhost:19080/Applications/$/Create?api-version=6.0&timeout=60",
		status:     http.StatusConflict,
		body:       `{"Error":{"Code":"FABRIC_E_APPLICATION_ALREADY_EXISTS"}}`,
	})

	err := client.CreateApplication(context.Background(), *v82.NewApplicationDescription("fabric:/app", "AppType", "1.0.0"), nil)
	utilerror.AssertServiceError(t, err, http.StatusConflict, v82.FabricErrorCodesFabricEApplicationAlreadyExists)
}

func TestListAll(t *testing.T) {
	client, fs := newTestClient(t,
		exchange{
			wantMethod: http.MethodGet,
			wantURL:    "https://localhost:19080/Nodes?api-version=6.3&timeout=60",
			status:     http.StatusOK,
			body:       `{"ContinuationToken":"next","Items":[{"Name":"_Node_0"},{"Name":"_Node_1"}]}`,
		},
		exchange{
			wantMethod: http.MethodGet,
			wantURL:    "https://localhost:19080/Nodes?ContinuationToken=next&api-version=6.3&timeout=60",
			status:     http.StatusOK,
			body:       `{"ContinuationToken":"","Items":[{"Name":"_Node_2"}]}`,
		},
	)

	nodes, err := client.ListAllNodes(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, n := range nodes {
		names = append(names, *n.Name)
	}
	if diff := cmp.Diff([]string{"_Node_0", "_Node_1", "_Node_2"}, names); diff != "" {
		t.Error(diff)
	}

	if len(fs.exchanges) != 0 {
		t.Error(len(fs.exchanges))
	}
}

func TestListAllStopsOnError(t *testing.T) {
	calls := 0
	_, err := listAll(context.Background(), func(continuationToken string) ([]int, *string, error) {
		calls++
		if continuationToken == "" {
			return []int{1}, to.StringPtr("2"), nil
		}
		return nil, nil, io.ErrUnexpectedEOF
	})
	if err != io.ErrUnexpectedEOF {
		t.Error(err)
	}
	if calls != 2 {
		t.Error(calls)
	}
}

func TestInstrument(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	m := mock_metrics.NewMockEmitter(controller)
	m.EXPECT().EmitFloat("client.duration", gomock.Any(), map[string]string{
		"operation": "GetClusterManifest",
		"code":      "200",
	})

	h, log := testlog.NewCapturingLogger()

	client, _ := newTestClient(t, exchange{
		wantMethod: http.MethodGet,
		wantURL:    "https://localhost:19080/$/GetClusterManifest?api-version=6.0&timeout=60",
		status:     http.StatusOK,
		body:       `{"Manifest":"<ClusterManifest/>"}`,
	})
	client.Instrument(log, m)

	manifest, err := client.GetClusterManifest(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if *manifest.Manifest != "<ClusterManifest/>" {
		t.Error(*manifest.Manifest)
	}

	for _, e := range testlog.AssertLoggingOutput(h, []testlog.ExpectedLogEntry{
		{
			Level:   logrus.DebugLevel,
			Message: "HttpRequestStart",
			Fields: map[string]string{
				"operation":    "GetClusterManifest",
				"request_path": "/$/GetClusterManifest",
			},
		},
		{
			Level:   logrus.InfoLevel,
			Message: "HttpRequestEnd",
			Fields: map[string]string{
				"operation":            "GetClusterManifest",
				"response_status_code": "200",
			},
		},
	}) {
		t.Error(e)
	}
}

func TestSetParameters(t *testing.T) {
	var nilInt *int32
	got := setParameters(map[string]interface{}{
		"Nil":     nil,
		"NilPtr":  nilInt,
		"Empty":   "",
		"String":  "x",
		"Ptr":     to.Int32Ptr(3),
		"Bool":    false,
		"Integer": int32(0),
	})

	if diff := cmp.Diff(map[string]interface{}{
		"String":  "x",
		"Ptr":     int32(3),
		"Bool":    false,
		"Integer": int32(0),
	}, got); diff != "" {
		t.Error(diff)
	}
}
