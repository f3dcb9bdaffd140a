package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
)

// UnmarshalPolymorphic decodes a discriminated union. The value of the
// discriminator property selects a factory from factories; the factory must
// return a pointer that body is then unmarshalled into. When the
// discriminator is missing or not in factories, body is unmarshalled into
// the value returned by fallback, which is expected to be the union's base
// type so that the raw discriminator is kept.
//
// A JSON null yields the zero value of T.
func UnmarshalPolymorphic[T any](body []byte, discriminator string, factories map[string]func() T, fallback func() T) (T, error) {
	var zero T

	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return zero, err
	}
	if m == nil {
		return zero, nil
	}

	var kind string
	if raw, ok := m[discriminator]; ok {
		if err := json.Unmarshal(raw, &kind); err != nil {
			return zero, fmt.Errorf("discriminator %q: %w", discriminator, err)
		}
	}

	newFn, ok := factories[kind]
	if !ok {
		newFn = fallback
	}

	v := newFn()
	if err := json.Unmarshal(body, v); err != nil {
		return zero, err
	}

	return v, nil
}

// UnmarshalPolymorphicList decodes a JSON array of discriminated union
// values using UnmarshalPolymorphic for each element.
func UnmarshalPolymorphicList[T any](body []byte, discriminator string, factories map[string]func() T, fallback func() T) ([]T, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, err
	}
	if raws == nil {
		return nil, nil
	}

	l := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := UnmarshalPolymorphic(raw, discriminator, factories, fallback)
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}

	return l, nil
}
