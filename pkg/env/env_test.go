package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-servicefabric-go/pkg/metrics/noop"
	utilpem "github.com/Azure/azure-servicefabric-go/pkg/util/pem"
	utiltls "github.com/Azure/azure-servicefabric-go/pkg/util/tls"
	utilerror "github.com/Azure/azure-servicefabric-go/test/util/error"
)

func TestNewEnv(t *testing.T) {
	log := logrus.NewEntry(logrus.StandardLogger())

	for _, tt := range []struct {
		name    string
		set     map[string]interface{}
		wantErr string
	}{
		{
			name: "defaults",
		},
		{
			name: "bad endpoint",
			set: map[string]interface{}{
				EnvEndpoint: "localhost:19080",
			},
			wantErr: `invalid SF_ENDPOINT "localhost:19080": expected http(s)://host:port`,
		},
		{
			name: "bad auth mode",
			set: map[string]interface{}{
				EnvAuthMode: "kerberos",
			},
			wantErr: `invalid SF_AUTH_MODE "kerberos": expected none, certificate or aad`,
		},
		{
			name: "certificate without certificate",
			set: map[string]interface{}{
				EnvEndpoint: "https://cluster.westus.cloudapp.azure.com:19080",
				EnvAuthMode: "Certificate",
			},
			wantErr: "SF_AUTH_MODE \"certificate\": 1 error occurred:\n\t* environment variable \"SF_CLIENT_CERTIFICATE\" unset\n\n",
		},
		{
			name: "aad",
			set: map[string]interface{}{
				EnvEndpoint:     "https://cluster.westus.cloudapp.azure.com:19080",
				EnvAuthMode:     "aad",
				EnvTenantID:     "tenant",
				EnvClientID:     "client",
				EnvClientSecret: "secret",
				EnvAADScope:     "api://cluster/.default",
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewViper()
			for k, v := range tt.set {
				cfg.Set(k, v)
			}

			_, err := NewEnv(log, cfg)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}

func TestValidateVars(t *testing.T) {
	t.Setenv(EnvTenantID, "tenant")

	cfg := NewViper()
	cfg.Set(EnvClientID, "client")

	assert.NoError(t, ValidateVars(cfg, EnvTenantID, EnvClientID))

	err := ValidateVars(cfg, EnvTenantID, EnvClientSecret, EnvAADScope)
	assert.EqualError(t, err, "2 errors occurred:\n\t* environment variable \"AZURE_CLIENT_SECRET\" unset\n\t* environment variable \"SF_AAD_SCOPE\" unset\n\n")
}

func TestTimeout(t *testing.T) {
	cfg := NewViper()
	e := &env{cfg: cfg}
	assert.Nil(t, e.Timeout())

	cfg.Set(EnvTimeout, "120")
	require.NotNil(t, e.Timeout())
	assert.Equal(t, int64(120), *e.Timeout())
}

func TestNewClient(t *testing.T) {
	log := logrus.NewEntry(logrus.StandardLogger())

	t.Run("certificate", func(t *testing.T) {
		key, certs, err := utiltls.GenerateKeyAndCertificate("sfctl", nil, nil, false, true)
		require.NoError(t, err)
		keyPEM, err := utilpem.Encode(key)
		require.NoError(t, err)
		certPEM, err := utilpem.Encode(certs...)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "client.pem")
		require.NoError(t, os.WriteFile(path, append(keyPEM, certPEM...), 0o600))

		cfg := NewViper()
		cfg.Set(EnvEndpoint, "https://cluster:19080/")
		cfg.Set(EnvAuthMode, "certificate")
		cfg.Set(EnvClientCertificate, path)
		cfg.Set(EnvRetryAttempts, 1)

		e, err := NewEnv(log, cfg)
		require.NoError(t, err)

		client, err := e.NewClient(&noop.Noop{})
		require.NoError(t, err)

		assert.Equal(t, "https://cluster:19080", client.BaseURI)
		assert.Equal(t, 1, client.RetryAttempts)
	})

	t.Run("certificate file missing", func(t *testing.T) {
		cfg := NewViper()
		cfg.Set(EnvAuthMode, "certificate")
		cfg.Set(EnvClientCertificate, filepath.Join(t.TempDir(), "missing.pem"))

		e, err := NewEnv(log, cfg)
		require.NoError(t, err)

		_, err = e.NewClient(&noop.Noop{})
		assert.ErrorContains(t, err, "reading client certificate")
	})

	t.Run("aad", func(t *testing.T) {
		cfg := NewViper()
		cfg.Set(EnvEndpoint, "https://cluster:19080")
		cfg.Set(EnvAuthMode, "aad")
		cfg.Set(EnvTenantID, "tenant")
		cfg.Set(EnvClientID, "client")
		cfg.Set(EnvClientSecret, "secret")
		cfg.Set(EnvAADScope, "api://cluster/.default")

		e, err := NewEnv(log, cfg)
		require.NoError(t, err)

		client, err := e.NewClient(&noop.Noop{})
		require.NoError(t, err)

		assert.NotNil(t, client.Authorizer)
	})

	t.Run("none", func(t *testing.T) {
		e, err := NewEnv(log, NewViper())
		require.NoError(t, err)

		client, err := e.NewClient(&noop.Noop{})
		require.NoError(t, err)

		assert.Nil(t, client.Authorizer)
		assert.NotNil(t, client.Sender)
		_, ok := client.Sender.(*http.Client)
		assert.False(t, ok, "sender should be decorated")
	})
}
