package pem_test

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	utilpem "github.com/Azure/azure-servicefabric-go/pkg/util/pem"
	utiltls "github.com/Azure/azure-servicefabric-go/pkg/util/tls"
)

var _ = Describe("PEM", func() {
	caKey, caCerts, err := utiltls.GenerateKeyAndCertificate("cluster-ca", nil, nil, true, false)
	Expect(err).ToNot(HaveOccurred())

	clientKey, clientCerts, err := utiltls.GenerateKeyAndCertificate("sfctl", caKey, caCerts[0], false, true)
	Expect(err).ToNot(HaveOccurred())

	Describe("parsing a combined client certificate", func() {
		It("returns the key and the chain in order", func() {
			keyOut, err := utilpem.Encode(clientKey)
			Expect(err).ToNot(HaveOccurred())
			certsOut, err := utilpem.Encode(clientCerts[0], caCerts[0])
			Expect(err).ToNot(HaveOccurred())

			key, certs, err := utilpem.Parse(append(keyOut, certsOut...))
			Expect(err).ToNot(HaveOccurred())
			Expect(key.Public()).To(Equal(clientKey.Public()))
			Expect(certs).To(HaveLen(2))
			Expect(certs[0].Subject.CommonName).To(Equal("sfctl"))
			Expect(certs[1].Subject.CommonName).To(Equal("cluster-ca"))
		})
	})

	Describe("parsing an EC key", func() {
		It("succeeds", func() {
			ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
			Expect(err).ToNot(HaveOccurred())

			keyOut, err := utilpem.Encode(ecKey)
			Expect(err).ToNot(HaveOccurred())
			Expect(keyOut).To(ContainSubstring("BEGIN EC PRIVATE KEY"))

			key, certs, err := utilpem.Parse(keyOut)
			Expect(err).ToNot(HaveOccurred())
			Expect(key.Public()).To(Equal(ecKey.Public()))
			Expect(certs).To(BeEmpty())
		})
	})

	Describe("parsing an unknown block", func() {
		It("fails", func() {
			_, _, err := utilpem.Parse([]byte("-----BEGIN PUBLIC KEY-----\nAAAA\n-----END PUBLIC KEY-----\n"))
			Expect(err).To(MatchError("unimplemented block type PUBLIC KEY"))
		})
	})

	Describe("parsing a CA bundle", func() {
		It("skips keys", func() {
			keyOut, err := utilpem.Encode(caKey)
			Expect(err).ToNot(HaveOccurred())
			certsOut, err := utilpem.Encode(caCerts[0], caCerts[0])
			Expect(err).ToNot(HaveOccurred())
			Expect(bytes.Count(certsOut, []byte("BEGIN CERTIFICATE"))).To(Equal(2))

			certs, err := utilpem.ParseCertificates(append(keyOut, certsOut...))
			Expect(err).ToNot(HaveOccurred())
			Expect(certs).To(HaveLen(2))
		})

		It("fails without certificates", func() {
			_, err := utilpem.ParseCertificates(nil)
			Expect(err).To(MatchError("unable to find certificate"))
		})
	})
})

func TestPEM(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PEM Suite")
}
