// stringifying representations of API models for debugging and
// logging

package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
	"testing"
)

type secretHolder struct {
	Name     string        `json:"Name"`
	Password SecureString  `json:"Password"`
	Key      *SecureString `json:"Key,omitempty"`
}

func TestStringify(t *testing.T) {
	key := SecureString("KEYSECRET")
	stringed := Stringify(&secretHolder{
		Name:     "fileshare",
		Password: "PASSWORDSECRET",
		Key:      &key,
	})

	if !strings.Contains(stringed, "fileshare") {
		t.Fatalf("holder did not format: %s", stringed)
	}

	// no secrets should survive
	for _, secret := range []string{"PASSWORDSECRET", "KEYSECRET"} {
		if strings.Contains(stringed, secret) {
			t.Fatalf("holder did not hide secrets: %s", stringed)
		}
	}
	if !strings.Contains(stringed, "[REDACTED]") {
		t.Fatalf("holder did not hide secrets: %s", stringed)
	}
}
