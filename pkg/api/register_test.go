package api_test

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
	utilerror "github.com/Azure/azure-servicefabric-go/test/util/error"
)

func TestLookup(t *testing.T) {
	saved := api.APIs
	defer func() { api.APIs = saved }()

	api.APIs = map[string]*api.Version{}
	api.Register(&api.Version{Name: "8.2"})
	api.Register(&api.Version{Name: "7.2"})

	for _, tt := range []struct {
		name    string
		version string
		wantErr string
	}{
		{
			name:    "registered",
			version: "8.2",
		},
		{
			name:    "not registered",
			version: "6.0",
			wantErr: `unsupported api version "6.0", supported: [7.2 8.2]`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v, err := api.Lookup(tt.version)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if tt.wantErr == "" && v.Name != tt.version {
				t.Errorf("got %q, want %q", v.Name, tt.version)
			}
		})
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	saved := api.APIs
	defer func() { api.APIs = saved }()

	api.APIs = map[string]*api.Version{}
	api.Register(&api.Version{Name: "8.2"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	api.Register(&api.Version{Name: "8.2"})
}
