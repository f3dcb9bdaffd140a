package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r, err := New(logrus.NewEntry(logrus.StandardLogger()), "sf", false)
	require.NoError(t, err)

	r.EmitGauge("snapshot.errors", 2, map[string]string{"task": "nodes"})
	r.EmitGauge("snapshot.errors", 3, map[string]string{"task": "nodes"})
	r.EmitFloat("client.duration", 0.02, map[string]string{"method": "GET", "code": "200"})
	r.EmitFloat("client.duration", 0.2, map[string]string{"code": "200", "method": "GET"})

	// mismatched dimensions are dropped
	r.EmitGauge("snapshot.errors", 1, map[string]string{"other": "x"})

	var b bytes.Buffer
	require.NoError(t, r.WriteText(&b))
	out := b.String()

	assert.Contains(t, out, `sf_snapshot_errors{task="nodes"} 3`)
	assert.Contains(t, out, `sf_client_duration_count{code="200",method="GET"} 2`)
	assert.NotContains(t, out, `other="x"`)
}

func TestMetricName(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{in: "client.requests", want: "client_requests"},
		{in: "snapshot-task/errors", want: "snapshot_task_errors"},
		{in: "plain", want: "plain"},
	} {
		t.Run(tt.in, func(t *testing.T) {
			if got := metricName(tt.in); got != tt.want {
				t.Error(got)
			}
			if strings.ContainsAny(metricName(tt.in), ".-/") {
				t.Error(tt.in)
			}
		})
	}
}
