package json

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"

	"github.com/Azure/azure-servicefabric-go/pkg/util/cmp"
)

// AssertJsonMatches compares want and got by unmarshaling both into generic
// values, so that field ordering and whitespace are ignored.
func AssertJsonMatches(t *testing.T, want, got []byte) {
	t.Helper()

	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		t.Fatalf("want: %v", err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("got: %v: %s", err, string(got))
	}

	if diff := cmp.Diff(wantValue, gotValue); diff != "" {
		t.Error(diff)
	}
}

// AssertMarshalsTo marshals v and compares it with want.
func AssertMarshalsTo(t *testing.T, v any, want string) {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}

	AssertJsonMatches(t, []byte(want), b)
}
