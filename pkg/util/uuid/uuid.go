package uuid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	gofrsuuid "github.com/gofrs/uuid"
)

// Generator generates fault operation IDs.
type Generator interface {
	Generate() gofrsuuid.UUID
}

type defaultGenerator struct{}

func (defaultGenerator) Generate() gofrsuuid.UUID {
	return gofrsuuid.Must(gofrsuuid.NewV4())
}

var DefaultGenerator Generator = defaultGenerator{}

func FromString(u string) (gofrsuuid.UUID, error) {
	return gofrsuuid.FromString(u)
}

func MustFromString(u string) gofrsuuid.UUID {
	return gofrsuuid.Must(gofrsuuid.FromString(u))
}

func IsValid(u string) bool {
	_, err := gofrsuuid.FromString(u)
	return err == nil
}
