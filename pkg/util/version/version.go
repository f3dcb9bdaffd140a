package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type VersionParseError struct {
	version string
}

func (e VersionParseError) Error() string {
	return fmt.Sprintf("could not parse version %q", e.version)
}

// Service Fabric code versions have four components, for example
// 8.2.1571.9590. Trailing components may be omitted and are then zero.
var rxVersion = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?$`)

// Version is a Service Fabric runtime code version.
type Version struct {
	V [4]uint32
}

func NewVersion(vs ...uint32) *Version {
	v := &Version{}

	copy(v.V[:], vs)

	return v
}

func ParseVersion(vsn string) (*Version, error) {
	m := rxVersion.FindStringSubmatch(strings.TrimSpace(vsn))
	if m == nil {
		return nil, VersionParseError{version: vsn}
	}

	v := &Version{}
	for i := 0; i < 4; i++ {
		if m[i+1] == "" {
			continue
		}

		d, err := strconv.ParseUint(m[i+1], 10, 32)
		if err != nil {
			return nil, VersionParseError{version: vsn}
		}

		v.V[i] = uint32(d)
	}

	return v, nil
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.V[0], v.V[1], v.V[2], v.V[3])
}

func (v *Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Version) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	w, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = *w
	return nil
}

func (v *Version) Lt(w *Version) bool {
	for i := 0; i < 4; i++ {
		switch {
		case v.V[i] < w.V[i]:
			return true
		case v.V[i] > w.V[i]:
			return false
		}
	}

	return false
}

func (v *Version) Gt(w *Version) bool {
	return w.Lt(v)
}

func (v *Version) Eq(w *Version) bool {
	return v.V == w.V
}

// MinorVersion returns the major.minor release, for example 8.2.
func (v *Version) MinorVersion() string {
	return fmt.Sprintf("%d.%d", v.V[0], v.V[1])
}
