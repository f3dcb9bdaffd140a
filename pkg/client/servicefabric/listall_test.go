package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Azure/azure-servicefabric-go/pkg/util/cmp"
)

// concurrentSender answers GetServices requests for any application and
// records how many were in flight at once.
type concurrentSender struct {
	mu          sync.Mutex
	inFlight    int
	maxInFlight int
	requested   []string

	failing string
}

func (cs *concurrentSender) Do(req *http.Request) (*http.Response, error) {
	applicationID := strings.TrimSuffix(strings.TrimPrefix(req.URL.Path, "/Applications/"), "/$/GetServices")

	cs.mu.Lock()
	cs.inFlight++
	if cs.inFlight > cs.maxInFlight {
		cs.maxInFlight = cs.inFlight
	}
	cs.requested = append(cs.requested, applicationID)
	cs.mu.Unlock()

	time.Sleep(10 * time.Millisecond)

	cs.mu.Lock()
	cs.inFlight--
	cs.mu.Unlock()

	status := http.StatusOK
	body := fmt.Sprintf(`{"Items":[{"ServiceKind":"Stateless","Id":"%s~svc"}]}`, applicationID)
	if applicationID == cs.failing {
		status = http.StatusInternalServerError
		body = `{"Error":{"Code":"FABRIC_E_COMMUNICATION_ERROR","Message":"gateway unavailable"}}`
	}

	return &http.Response{
		StatusCode: status,
		Header: http.Header{
			"Content-Type": []string{"application/json; charset=utf-8"},
		},
		Body:    io.NopCloser(strings.NewReader(body)),
		Request: req,
	}, nil
}

func newConcurrentTestClient(cs *concurrentSender) BaseClient {
	client := NewWithBaseURI("https://localhost:19080")
	client.Sender = cs
	client.RetryAttempts = 0
	client.RetryDuration = 0

	return client
}

func TestListServicesForApplications(t *testing.T) {
	applicationIDs := []string{"app0", "app1", "app2", "app3", "app4", "app5"}

	cs := &concurrentSender{}
	services, err := newConcurrentTestClient(cs).ListServicesForApplications(context.Background(), applicationIDs, 2)
	if err != nil {
		t.Fatal(err)
	}

	if cs.maxInFlight > 2 {
		t.Errorf("%d listings in flight, want at most 2", cs.maxInFlight)
	}

	sort.Strings(cs.requested)
	if diff := cmp.Diff(applicationIDs, cs.requested); diff != "" {
		t.Error(diff)
	}

	got := map[string]string{}
	for applicationID, s := range services {
		if len(s) != 1 {
			t.Fatalf("%s: %d services", applicationID, len(s))
		}
		got[applicationID] = *s[0].GetServiceInfo().ID
	}
	if diff := cmp.Diff(map[string]string{
		"app0": "app0~svc",
		"app1": "app1~svc",
		"app2": "app2~svc",
		"app3": "app3~svc",
		"app4": "app4~svc",
		"app5": "app5~svc",
	}, got); diff != "" {
		t.Error(diff)
	}
}

func TestListServicesForApplicationsError(t *testing.T) {
	cs := &concurrentSender{failing: "app1"}
	services, err := newConcurrentTestClient(cs).ListServicesForApplications(context.Background(), []string{"app0", "app1", "app2"}, 1)
	if err == nil || !strings.Contains(err.Error(), "FABRIC_E_COMMUNICATION_ERROR: gateway unavailable") {
		t.Fatal(err)
	}
	if services != nil {
		t.Error(services)
	}
}

func TestListServicesForApplicationsEmpty(t *testing.T) {
	cs := &concurrentSender{}
	services, err := newConcurrentTestClient(cs).ListServicesForApplications(context.Background(), nil, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(services) != 0 || len(cs.requested) != 0 {
		t.Error(services, cs.requested)
	}
}
