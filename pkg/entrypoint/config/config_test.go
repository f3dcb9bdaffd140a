package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-servicefabric-go/pkg/env"
)

func TestCommonConfigFromCmd(t *testing.T) {
	for _, tt := range []struct {
		name       string
		args       []string
		setenv     map[string]string
		want       Common
		wantErr    string
		wantValues map[string]string
	}{
		{
			name: "defaults",
			want: Common{LogLevel: "info", Output: OutputJSON},
			wantValues: map[string]string{
				env.EnvEndpoint:      "http://localhost:19080",
				env.EnvRetryAttempts: "3",
			},
		},
		{
			name: "flags override the environment",
			args: []string{"--endpoint", "https://cluster:19080", "--log-level", "debug", "-o", "pretty", "--metrics", "--timeout", "30"},
			setenv: map[string]string{
				env.EnvEndpoint: "https://other:19080",
				env.EnvTimeout:  "10",
			},
			want: Common{LogLevel: "debug", Output: OutputPretty, Metrics: true},
			wantValues: map[string]string{
				env.EnvEndpoint: "https://cluster:19080",
				env.EnvTimeout:  "30",
			},
		},
		{
			name: "environment applies when flags are unset",
			setenv: map[string]string{
				env.EnvAuthMode: "aad",
				env.EnvLogLevel: "warning",
			},
			want: Common{LogLevel: "warning", Output: OutputJSON},
			wantValues: map[string]string{
				env.EnvAuthMode: "aad",
			},
		},
		{
			name:    "invalid output",
			args:    []string{"-o", "xml"},
			wantErr: `invalid --output "xml": expected json, pretty or yaml`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.setenv {
				t.Setenv(k, v)
			}

			cfg := env.NewViper()

			var got Common
			var gotErr error
			cmd := &cobra.Command{
				Use: "test",
				RunE: func(cmd *cobra.Command, args []string) error {
					got, gotErr = CommonConfigFromCmd(cmd, cfg)
					return nil
				},
			}
			require.NoError(t, BindFlags(cmd, cfg))

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())

			if tt.wantErr != "" {
				assert.EqualError(t, gotErr, tt.wantErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)

			for k, v := range tt.wantValues {
				assert.Equal(t, v, cfg.GetString(k), k)
			}
		})
	}
}
