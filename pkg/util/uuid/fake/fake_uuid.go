package fake

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	gofrsuuid "github.com/gofrs/uuid"

	"github.com/Azure/azure-servicefabric-go/pkg/util/uuid"
)

type fakeGenerator struct {
	uuids      []string
	currentPos int
}

// NewGenerator returns a Generator yielding the predefined UUIDs in order,
// then the nil UUID.
func NewGenerator(predefined []string) uuid.Generator {
	return &fakeGenerator{
		uuids: predefined,
	}
}

func (f *fakeGenerator) Generate() gofrsuuid.UUID {
	if f.currentPos >= len(f.uuids) {
		return gofrsuuid.Nil
	}
	defer func() { f.currentPos++ }()

	return uuid.MustFromString(f.uuids[f.currentPos])
}
