package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/tls"
	"net/http"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/jongio/azidext/go/azidext"
	"github.com/pkg/errors"

	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
	"github.com/Azure/azure-servicefabric-go/pkg/metrics"
	utiltls "github.com/Azure/azure-servicefabric-go/pkg/util/tls"
)

// NewClient returns a client for the configured gateway, authenticated for
// the configured mode and instrumented with m.
func (e *env) NewClient(m metrics.Emitter) (servicefabric.BaseClient, error) {
	client := servicefabric.NewWithBaseURI(e.Endpoint())
	client.RetryAttempts = e.cfg.GetInt(EnvRetryAttempts)

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: e.cfg.GetBool(EnvInsecureSkipVerify),
	}

	switch e.AuthMode() {
	case AuthModeCertificate:
		var err error
		tlsConfig, err = e.certificateTLSConfig()
		if err != nil {
			return servicefabric.BaseClient{}, err
		}

	case AuthModeAAD:
		credential, err := azidentity.NewClientSecretCredential(
			e.cfg.GetString(EnvTenantID),
			e.cfg.GetString(EnvClientID),
			e.cfg.GetString(EnvClientSecret),
			nil)
		if err != nil {
			return servicefabric.BaseClient{}, err
		}

		client.Authorizer = azidext.NewTokenCredentialAdapter(credential, []string{e.cfg.GetString(EnvAADScope)})
	}

	if tlsConfig.InsecureSkipVerify {
		e.log.Warn("not verifying the gateway's certificate")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig
	client.Sender = &http.Client{Transport: transport}

	client.Instrument(e.log, m)

	return client, nil
}

func (e *env) certificateTLSConfig() (*tls.Config, error) {
	clientPEM, err := os.ReadFile(e.cfg.GetString(EnvClientCertificate))
	if err != nil {
		return nil, errors.Wrap(err, "reading client certificate")
	}

	var keyPEM []byte
	if path := e.cfg.GetString(EnvClientKey); path != "" {
		keyPEM, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading client key")
		}
	}

	var caPEM []byte
	if path := e.cfg.GetString(EnvCACertificate); path != "" {
		caPEM, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading CA certificate")
		}
	}

	config, err := utiltls.NewClientConfig(clientPEM, keyPEM, caPEM, e.cfg.GetBool(EnvInsecureSkipVerify))
	if err != nil {
		return nil, errors.Wrap(err, "loading client certificate")
	}

	return config, nil
}
