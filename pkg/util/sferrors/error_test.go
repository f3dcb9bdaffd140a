package sferrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

func detailed(se *ServiceError) error {
	return autorest.DetailedError{
		Original:    se,
		PackageType: "servicefabric.BaseClient",
		Method:      "GetApplicationInfo",
		StatusCode:  se.StatusCode,
		Message:     "Failure responding to request",
	}
}

func TestNewServiceError(t *testing.T) {
	for _, tt := range []struct {
		name       string
		statusCode int
		body       string
		want       ServiceError
		wantString string
	}{
		{
			name:       "fabric error",
			statusCode: http.StatusNotFound,
			body:       `{"Error":{"Code":"FABRIC_E_APPLICATION_NOT_FOUND","Message":"Application not found"}}`,
			want: ServiceError{
				StatusCode: http.StatusNotFound,
				Code:       v82.FabricErrorCodesFabricEApplicationNotFound,
				Message:    "Application not found",
			},
			wantString: "404: FABRIC_E_APPLICATION_NOT_FOUND: Application not found",
		},
		{
			name:       "fabric error without message",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"Error":{"Code":"FABRIC_E_NOT_PRIMARY"}}`,
			want: ServiceError{
				StatusCode: http.StatusServiceUnavailable,
				Code:       v82.FabricErrorCodesFabricENotPrimary,
			},
			wantString: "503: FABRIC_E_NOT_PRIMARY",
		},
		{
			name:       "plain text body",
			statusCode: http.StatusBadGateway,
			body:       "upstream connect error\n",
			want: ServiceError{
				StatusCode: http.StatusBadGateway,
				Message:    "upstream connect error",
			},
			wantString: "502: : upstream connect error",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			se := NewServiceError(tt.statusCode, []byte(tt.body))
			if *se != tt.want {
				t.Errorf("got %#v", se)
			}
			if se.Error() != tt.wantString {
				t.Error(se.Error())
			}
		})
	}
}

func TestClassification(t *testing.T) {
	notFound := &ServiceError{StatusCode: http.StatusNotFound, Code: v82.FabricErrorCodesFabricEServiceDoesNotExist}
	exists := &ServiceError{StatusCode: http.StatusConflict, Code: v82.FabricErrorCodesFabricEApplicationAlreadyExists}
	notPrimary := &ServiceError{StatusCode: http.StatusServiceUnavailable, Code: v82.FabricErrorCodesFabricENotPrimary}
	timeout := &ServiceError{StatusCode: http.StatusGatewayTimeout, Code: v82.FabricErrorCodesFabricETimeout}
	denied := &ServiceError{StatusCode: http.StatusForbidden, Code: v82.FabricErrorCodesEAccessdenied}

	for _, tt := range []struct {
		name         string
		err          error
		notFound     bool
		exists       bool
		timeout      bool
		retryable    bool
		unauthorized bool
	}{
		{
			name: "unrelated error",
			err:  errors.New("something happened"),
		},
		{
			name:     "not found",
			err:      detailed(notFound),
			notFound: true,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("getting service: %w", notFound),
			notFound: true,
		},
		{
			name:     "not found by status only",
			err:      autorest.DetailedError{StatusCode: http.StatusNotFound},
			notFound: true,
		},
		{
			name:     "azcore not found",
			err:      &azcore.ResponseError{StatusCode: http.StatusNotFound},
			notFound: true,
		},
		{
			name:   "already exists",
			err:    detailed(exists),
			exists: true,
		},
		{
			name:      "not primary",
			err:       detailed(notPrimary),
			retryable: true,
		},
		{
			name:      "fabric timeout",
			err:       detailed(timeout),
			timeout:   true,
			retryable: true,
		},
		{
			name:    "context deadline",
			err:     fmt.Errorf("listing nodes: %w", context.DeadlineExceeded),
			timeout: true,
		},
		{
			name:      "throttled",
			err:       autorest.DetailedError{StatusCode: http.StatusTooManyRequests},
			retryable: true,
		},
		{
			name:         "access denied",
			err:          detailed(denied),
			unauthorized: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.notFound {
				t.Errorf("IsNotFoundError: %v", got)
			}
			if got := IsAlreadyExistsError(tt.err); got != tt.exists {
				t.Errorf("IsAlreadyExistsError: %v", got)
			}
			if got := IsTimeoutError(tt.err); got != tt.timeout {
				t.Errorf("IsTimeoutError: %v", got)
			}
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable: %v", got)
			}
			if got := IsAuthenticationError(tt.err); got != tt.unauthorized {
				t.Errorf("IsAuthenticationError: %v", got)
			}
		})
	}
}

func TestHasErrorCode(t *testing.T) {
	err := detailed(&ServiceError{StatusCode: http.StatusConflict, Code: v82.FabricErrorCodesFabricEApplicationUpgradeInProgress})

	if !HasErrorCode(err, v82.FabricErrorCodesFabricEApplicationNotUpgrading, v82.FabricErrorCodesFabricEApplicationUpgradeInProgress) {
		t.Error("expected code to match")
	}
	if HasErrorCode(err, v82.FabricErrorCodesFabricEApplicationNotUpgrading) {
		t.Error("unexpected match")
	}
	if HasErrorCode(nil, v82.FabricErrorCodesFabricEApplicationNotUpgrading) {
		t.Error("unexpected match on nil")
	}
}
