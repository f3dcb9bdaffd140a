package pem

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

type Encodable interface {
	*x509.Certificate | *rsa.PrivateKey | *ecdsa.PrivateKey
}

// Parse returns the private key and certificates held in b, in the order
// the certificates appear. Cluster client certificates are commonly
// exported as a single PEM file holding both.
func Parse(b []byte) (key crypto.Signer, certs []*x509.Certificate, err error) {
	for {
		var block *pem.Block
		block, b = pem.Decode(b)
		if block == nil {
			break
		}

		switch block.Type {
		case "RSA PRIVATE KEY":
			key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
			if err != nil {
				return nil, nil, err
			}

		case "EC PRIVATE KEY":
			key, err = x509.ParseECPrivateKey(block.Bytes)
			if err != nil {
				return nil, nil, err
			}

		case "PRIVATE KEY":
			k, err := x509.ParsePKCS8PrivateKey(block.Bytes)
			if err != nil {
				return nil, nil, err
			}
			var ok bool
			key, ok = k.(crypto.Signer)
			if !ok {
				return nil, nil, fmt.Errorf("unimplemented private key type %T in PKCS#8 wrapping", k)
			}

		case "CERTIFICATE":
			c, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, nil, err
			}
			certs = append(certs, c)

		default:
			return nil, nil, fmt.Errorf("unimplemented block type %s", block.Type)
		}
	}

	return key, certs, nil
}

// ParseCertificates returns the certificates in b, which must hold at
// least one.
func ParseCertificates(b []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	for {
		var block *pem.Block
		block, b = pem.Decode(b)
		if block == nil {
			break
		}

		if block.Type != "CERTIFICATE" {
			continue
		}

		c, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}

	if len(certs) == 0 {
		return nil, errors.New("unable to find certificate")
	}

	return certs, nil
}

func Encode[V Encodable](inputs ...V) (r []byte, err error) {
	for _, i := range inputs {
		var block *pem.Block

		switch t := any(i).(type) {
		case *x509.Certificate:
			block = &pem.Block{Type: "CERTIFICATE", Bytes: t.Raw}
		case *rsa.PrivateKey:
			block = &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(t)}
		case *ecdsa.PrivateKey:
			b, err := x509.MarshalECPrivateKey(t)
			if err != nil {
				return nil, err
			}
			block = &pem.Block{Type: "EC PRIVATE KEY", Bytes: b}
		}

		r = append(r, pem.EncodeToMemory(block)...)
	}
	return
}
