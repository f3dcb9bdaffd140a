package cmp

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"crypto/x509"

	"github.com/Azure/go-autorest/autorest/date"
	gocmp "github.com/google/go-cmp/cmp"
)

// Diff is a wrapper for github.com/google/go-cmp/cmp.Diff with extra options
func Diff(x, y interface{}, opts ...gocmp.Option) string {
	newOpts := append(
		opts,
		gocmp.Comparer(x509CertComparer),
		gocmp.Comparer(dateTimeComparer),
	)

	return gocmp.Diff(x, y, newOpts...)
}

func x509CertComparer(x, y *x509.Certificate) bool {
	if x == nil || y == nil {
		return x == y
	}

	return bytes.Equal(x.Raw, y.Raw)
}

// dateTimeComparer compares instants, so that values decoded from
// different UTC offsets are equal.
func dateTimeComparer(x, y date.Time) bool {
	return x.Equal(y.Time)
}
