package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type shape interface {
	shapeKind() string
}

type baseShape struct {
	Kind string `json:"Kind"`
}

func (s *baseShape) shapeKind() string { return s.Kind }

type circle struct {
	baseShape
	Radius int `json:"Radius"`
}

var shapeFactories = map[string]func() shape{
	"Circle": func() shape { return &circle{} },
}

func newBaseShape() shape { return &baseShape{} }

func TestUnmarshalPolymorphic(t *testing.T) {
	for _, tt := range []struct {
		name    string
		body    string
		want    shape
		wantErr string
	}{
		{
			name: "known kind",
			body: `{"Kind":"Circle","Radius":3}`,
			want: &circle{baseShape: baseShape{Kind: "Circle"}, Radius: 3},
		},
		{
			name: "unknown kind falls back to base",
			body: `{"Kind":"Hexagon","Sides":6}`,
			want: &baseShape{Kind: "Hexagon"},
		},
		{
			name: "missing kind falls back to base",
			body: `{}`,
			want: &baseShape{},
		},
		{
			name: "null",
			body: `null`,
		},
		{
			name:    "discriminator of wrong type",
			body:    `{"Kind":1}`,
			wantErr: `discriminator "Kind": json: cannot unmarshal number into Go value of type string`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalPolymorphic([]byte(tt.body), "Kind", shapeFactories, newBaseShape)
			if err != nil && err.Error() != tt.wantErr ||
				err == nil && tt.wantErr != "" {
				t.Fatalf("got error %v, want %q", err, tt.wantErr)
			}

			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(circle{})); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestUnmarshalPolymorphicList(t *testing.T) {
	got, err := UnmarshalPolymorphicList([]byte(`[{"Kind":"Circle","Radius":1},{"Kind":"Square"}]`), "Kind", shapeFactories, newBaseShape)
	if err != nil {
		t.Fatal(err)
	}

	want := []shape{
		&circle{baseShape: baseShape{Kind: "Circle"}, Radius: 1},
		&baseShape{Kind: "Square"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(circle{})); diff != "" {
		t.Error(diff)
	}
}
