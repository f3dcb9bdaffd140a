// stringifying representations of API models for debugging and
// logging

package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"reflect"
	"strings"

	"github.com/ugorji/go/codec"
)

// SecureString represents a secret string (connection string, password,
// account key). It is serialised on the wire as a plain string but never
// appears in the output of Stringify.
type SecureString string

func newSecretHidingJsonHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.Canonical = true

	// SetInterfaceExt dereferences pointer types, so optional *SecureString
	// fields are covered too
	_ = h.SetInterfaceExt(reflect.TypeOf(SecureString("")), 1, secureHidingExt{})
	return h
}

// Stringify returns a JSON representation of i with all SecureString values
// replaced by [REDACTED]. It is intended for log lines and test failures, not
// for the wire.
func Stringify(i interface{}) string {
	w := &strings.Builder{}
	enc := codec.NewEncoder(w, newSecretHidingJsonHandle())
	err := enc.Encode(i)
	if err != nil {
		return err.Error()
	}
	return w.String()
}

var _ codec.InterfaceExt = (*secureHidingExt)(nil)

type secureHidingExt struct {
}

func (s secureHidingExt) ConvertExt(v interface{}) interface{} {
	return "[REDACTED]"
}

func (s secureHidingExt) UpdateExt(dest interface{}, v interface{}) {
	panic("cannot be used to decode!")
}
