package cmp

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/x509"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

func TestX509CertComparer(t *testing.T) {
	tests := []struct {
		name   string
		x, y   *x509.Certificate
		expect bool
	}{
		{
			name:   "both nil",
			x:      nil,
			y:      nil,
			expect: true,
		},
		{
			name:   "one nil: x",
			x:      nil,
			y:      &x509.Certificate{},
			expect: false,
		},
		{
			name:   "one nil: y",
			x:      &x509.Certificate{},
			y:      nil,
			expect: false,
		},
		{
			name:   "all non-nil and equal",
			x:      &x509.Certificate{Raw: []byte{1}},
			y:      &x509.Certificate{Raw: []byte{1}},
			expect: true,
		},
		{
			name:   "all non-nil and not equal",
			x:      &x509.Certificate{Raw: []byte{1}},
			y:      &x509.Certificate{Raw: []byte{2}},
			expect: false,
		},
	}

	for _, test := range tests {
		got := x509CertComparer(test.x, test.y)
		if got != test.expect {
			t.Errorf("%s: expected %#v got %#v", test.name, test.expect, got)
		}
	}
}

func TestDiffDateTime(t *testing.T) {
	utc := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	plusTwo := utc.In(time.FixedZone("UTC+2", 2*60*60))

	type holder struct {
		At *date.Time
	}

	for _, tt := range []struct {
		name     string
		x, y     holder
		wantDiff bool
	}{
		{
			name: "same instant, different offset",
			x:    holder{At: &date.Time{Time: utc}},
			y:    holder{At: &date.Time{Time: plusTwo}},
		},
		{
			name:     "different instant",
			x:        holder{At: &date.Time{Time: utc}},
			y:        holder{At: &date.Time{Time: utc.Add(time.Second)}},
			wantDiff: true,
		},
		{
			name:     "one nil",
			x:        holder{At: &date.Time{Time: utc}},
			y:        holder{},
			wantDiff: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			diff := Diff(tt.x, tt.y)
			if (diff != "") != tt.wantDiff {
				t.Errorf("unexpected diff %q", diff)
			}
		})
	}
}
