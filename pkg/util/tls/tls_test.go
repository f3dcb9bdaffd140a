package tls

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utilpem "github.com/Azure/azure-servicefabric-go/pkg/util/pem"
)

func TestNewClientConfig(t *testing.T) {
	caKey, caCerts, err := GenerateKeyAndCertificate("cluster-ca", nil, nil, true, false)
	require.NoError(t, err)

	clientKey, clientCerts, err := GenerateKeyAndCertificate("sfctl", caKey, caCerts[0], false, true)
	require.NoError(t, err)

	keyPEM, err := utilpem.Encode(clientKey)
	require.NoError(t, err)
	certPEM, err := utilpem.Encode(clientCerts[0])
	require.NoError(t, err)
	caPEM, err := utilpem.Encode(caCerts[0])
	require.NoError(t, err)

	t.Run("separate key and CA", func(t *testing.T) {
		config, err := NewClientConfig(certPEM, keyPEM, caPEM, false)
		require.NoError(t, err)

		require.Len(t, config.Certificates, 1)
		assert.Equal(t, clientCerts[0].Raw, config.Certificates[0].Certificate[0])
		assert.Equal(t, "sfctl", config.Certificates[0].Leaf.Subject.CommonName)
		assert.NotNil(t, config.RootCAs)
		assert.False(t, config.InsecureSkipVerify)
	})

	t.Run("combined file, system roots", func(t *testing.T) {
		config, err := NewClientConfig(append(append([]byte{}, keyPEM...), certPEM...), nil, nil, true)
		require.NoError(t, err)

		assert.Nil(t, config.RootCAs)
		assert.True(t, config.InsecureSkipVerify)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewClientConfig(certPEM, nil, nil, false)
		assert.EqualError(t, err, "client certificate has no private key")
	})

	t.Run("missing certificate", func(t *testing.T) {
		_, err := NewClientConfig(keyPEM, nil, nil, false)
		assert.EqualError(t, err, "client certificate has no certificate")
	})
}

func TestGenerateKeyAndCertificate(t *testing.T) {
	_, _, err := GenerateKeyAndCertificate("bad", nil, nil, true, true)
	assert.EqualError(t, err, "cannot generate CA client certificate")

	_, certs, err := GenerateKeyAndCertificate("gateway", nil, nil, false, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"gateway"}, certs[0].DNSNames)
}
