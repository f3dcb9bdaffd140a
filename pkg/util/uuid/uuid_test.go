package uuid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

func TestGenerate(t *testing.T) {
	u := DefaultGenerator.Generate()
	if u.Version() != 4 {
		t.Error(u.Version())
	}
	if !IsValid(u.String()) {
		t.Error(u)
	}
	if u == DefaultGenerator.Generate() {
		t.Error("generated the same uuid twice")
	}
}

func TestIsValid(t *testing.T) {
	for _, tt := range []struct {
		u    string
		want bool
	}{
		{u: "6c2c1d5a-3c1c-4d86-9c6a-6d2d3e8a1f00", want: true},
		{u: "6c2c1d5a3c1c4d869c6a6d2d3e8a1f00", want: true},
		{u: "not-a-uuid"},
		{u: ""},
	} {
		t.Run(tt.u, func(t *testing.T) {
			if got := IsValid(tt.u); got != tt.want {
				t.Error(got)
			}
		})
	}
}
