package tls

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/rand"
	"crypto/rsa"
	cryptotls "crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"
	"time"

	utilpem "github.com/Azure/azure-servicefabric-go/pkg/util/pem"
)

// GenerateKeyAndCertificate returns a key and certificate signed by
// parentKey, or self-signed if parentKey is nil. It is used to stand up
// test gateways.
func GenerateKeyAndCertificate(commonName string, parentKey *rsa.PrivateKey, parentCert *x509.Certificate, isCA bool, isClient bool) (*rsa.PrivateKey, []*x509.Certificate, error) {
	return generateKeyAndCertificate(commonName, parentKey, parentCert, isCA, isClient)
}

// NewClientConfig returns the TLS configuration used to reach a secured
// cluster gateway. clientPEM holds the client certificate chain and, unless
// keyPEM is set, its private key. caPEM, if set, replaces the system roots
// when verifying the gateway's certificate.
func NewClientConfig(clientPEM, keyPEM, caPEM []byte, insecureSkipVerify bool) (*cryptotls.Config, error) {
	key, certs, err := utilpem.Parse(append(append([]byte{}, clientPEM...), keyPEM...))
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, fmt.Errorf("client certificate has no private key")
	}
	if len(certs) == 0 {
		return nil, fmt.Errorf("client certificate has no certificate")
	}

	config := &cryptotls.Config{
		MinVersion:         cryptotls.VersionTLS12,
		InsecureSkipVerify: insecureSkipVerify,
		Certificates: []cryptotls.Certificate{
			{
				PrivateKey: key,
				Leaf:       certs[0],
			},
		},
	}
	for _, cert := range certs {
		config.Certificates[0].Certificate = append(config.Certificates[0].Certificate, cert.Raw)
	}

	if len(caPEM) > 0 {
		cas, err := utilpem.ParseCertificates(caPEM)
		if err != nil {
			return nil, err
		}

		config.RootCAs = x509.NewCertPool()
		for _, ca := range cas {
			config.RootCAs.AddCert(ca)
		}
	}

	return config, nil
}

func generateKeyAndCertificate(commonName string, parentKey *rsa.PrivateKey, parentCert *x509.Certificate, isCA bool, isClient bool) (*rsa.PrivateKey, []*x509.Certificate, error) {
	if isCA && isClient {
		return nil, nil, fmt.Errorf("cannot generate CA client certificate")
	}

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, err
	}

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	notAfter := now.AddDate(1, 0, 0)

	if parentCert != nil && parentCert.NotAfter.Before(notAfter) {
		notAfter = parentCert.NotAfter
	}

	template := &x509.Certificate{
		SerialNumber:          serialNumber,
		NotBefore:             now,
		NotAfter:              notAfter,
		Subject:               pkix.Name{CommonName: commonName},
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		IsCA:                  isCA,
		DNSNames:              []string{commonName},
	}

	if isCA {
		template.KeyUsage |= x509.KeyUsageCertSign
	} else {
		if isClient {
			template.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth}
		} else {
			template.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}
		}
	}

	if parentCert == nil && parentKey == nil {
		parentCert = template
		parentKey = key
	}

	b, err := x509.CreateCertificate(rand.Reader, template, parentCert, &key.PublicKey, parentKey)
	if err != nil {
		return nil, nil, err
	}

	cert, err := x509.ParseCertificate(b)
	if err != nil {
		return nil, nil, err
	}

	return key, []*x509.Certificate{cert}, nil
}
