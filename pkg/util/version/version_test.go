package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"
)

func TestParseVersion(t *testing.T) {
	for _, tt := range []struct {
		vsn     string
		want    *Version
		wantErr string
	}{
		{vsn: "8.2.1571.9590", want: NewVersion(8, 2, 1571, 9590)},
		{vsn: " 7.2.457.9590 ", want: NewVersion(7, 2, 457, 9590)},
		{vsn: "8.2", want: NewVersion(8, 2)},
		{vsn: "8", want: NewVersion(8)},
		{vsn: "8.2.1571.9590-preview", wantErr: `could not parse version "8.2.1571.9590-preview"`},
		{vsn: "8.2.1.2.3", wantErr: `could not parse version "8.2.1.2.3"`},
		{vsn: "99999999999.0", wantErr: `could not parse version "99999999999.0"`},
		{vsn: "", wantErr: `could not parse version ""`},
	} {
		t.Run(tt.vsn, func(t *testing.T) {
			got, err := ParseVersion(tt.vsn)
			if err != nil && err.Error() != tt.wantErr ||
				err == nil && tt.wantErr != "" {
				t.Fatal(err)
			}
			if tt.want != nil && !got.Eq(tt.want) {
				t.Error(got)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	for _, tt := range []struct {
		a, b   *Version
		wantLt bool
		wantGt bool
	}{
		{a: NewVersion(8, 2, 1571, 9590), b: NewVersion(8, 2, 1571, 9590)},
		{a: NewVersion(8, 1, 335, 9590), b: NewVersion(8, 2, 1571, 9590), wantLt: true},
		{a: NewVersion(8, 2, 1571, 9591), b: NewVersion(8, 2, 1571, 9590), wantGt: true},
		{a: NewVersion(10), b: NewVersion(9, 9, 9, 9), wantGt: true},
	} {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			if got := tt.a.Lt(tt.b); got != tt.wantLt {
				t.Error(got)
			}
			if got := tt.a.Gt(tt.b); got != tt.wantGt {
				t.Error(got)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(NewVersion(8, 2, 1571, 9590))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"8.2.1571.9590"` {
		t.Error(string(b))
	}

	var v Version
	if err := json.Unmarshal([]byte(`"7.2.457"`), &v); err != nil {
		t.Fatal(err)
	}
	if v.String() != "7.2.457.0" || v.MinorVersion() != "7.2" {
		t.Error(v.String())
	}
}
