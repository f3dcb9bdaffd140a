package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"sort"
)

// Version describes a Service Fabric REST API version implemented by a
// model package.
type Version struct {
	// Name is the package's version, e.g. "8.2".
	Name string

	// ClusterMinimumCodeVersion is the lowest Service Fabric runtime release
	// that serves every operation of this version.
	ClusterMinimumCodeVersion string
}

// DefaultVersion is the version used when none is configured.
const DefaultVersion = "8.2"

// APIs is the map of registered API versions
var APIs = map[string]*Version{}

// Register adds v to APIs. It panics on duplicate registration, which can
// only happen through a programming error.
func Register(v *Version) {
	if _, found := APIs[v.Name]; found {
		panic(fmt.Sprintf("api version %q registered twice", v.Name))
	}
	APIs[v.Name] = v
}

// Lookup returns the registered version called name.
func Lookup(name string) (*Version, error) {
	if v, found := APIs[name]; found {
		return v, nil
	}
	return nil, fmt.Errorf("unsupported api version %q, supported: %v", name, Names())
}

// Names returns the registered version names in sorted order.
func Names() []string {
	names := make([]string, 0, len(APIs))
	for name := range APIs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
