package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
	"github.com/Azure/azure-servicefabric-go/pkg/util/sferrors"
)

// AssertErrorMessage asserts that err.Error() is equal to wantMsg, or that
// err is nil if wantMsg is empty.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()

	switch {
	case err == nil && wantMsg != "":
		t.Errorf("did not get an error, but wanted error '%v'", wantMsg)
	case err != nil && err.Error() != wantMsg:
		t.Errorf("got error '%v', but wanted error '%v'", err, wantMsg)
	}
}

// AssertServiceError asserts that err wraps a *sferrors.ServiceError with
// the given status and error code.
func AssertServiceError(t *testing.T, err error, wantStatusCode int, wantCode v82.FabricErrorCodes) {
	t.Helper()

	serr, ok := sferrors.AsServiceError(err)
	if !ok {
		t.Fatalf("got error '%v', but wanted a service error", err)
	}

	if serr.StatusCode != wantStatusCode {
		t.Errorf("got status code %d, but wanted %d", serr.StatusCode, wantStatusCode)
	}
	if serr.Code != wantCode {
		t.Errorf("got error code %q, but wanted %q", serr.Code, wantCode)
	}
}
