package sferrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-servicefabric-go/pkg/api/v82"
)

// ServiceError is the error returned by the Service Fabric HTTP gateway in a
// FabricError response body.
type ServiceError struct {
	StatusCode int                  `json:"-"`
	Code       v82.FabricErrorCodes `json:"Code"`
	Message    string               `json:"Message,omitempty"`
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// NewServiceError decodes a FabricError response body. Bodies that are not
// a FabricError are kept as the message.
func NewServiceError(statusCode int, body []byte) *ServiceError {
	var fe v82.FabricError
	if err := json.Unmarshal(body, &fe); err == nil && fe.Error.Code != "" {
		se := &ServiceError{
			StatusCode: statusCode,
			Code:       fe.Error.Code,
		}
		if fe.Error.Message != nil {
			se.Message = *fe.Error.Message
		}
		return se
	}

	return &ServiceError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}

// AsServiceError returns the ServiceError carried by err, looking inside
// autorest.DetailedError.
func AsServiceError(err error) (*ServiceError, bool) {
	if detailedErr, ok := err.(autorest.DetailedError); ok {
		err = detailedErr.Original
	}

	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}

	return nil, false
}

// HasErrorCode returns true if err is, or contains, a ServiceError with one
// of codes.
func HasErrorCode(err error, codes ...v82.FabricErrorCodes) bool {
	se, ok := AsServiceError(err)
	if !ok {
		return false
	}

	for _, code := range codes {
		if se.Code == code {
			return true
		}
	}

	return false
}

func statusCode(err error) int {
	if se, ok := AsServiceError(err); ok && se.StatusCode != 0 {
		return se.StatusCode
	}

	var detailedErr autorest.DetailedError
	if errors.As(err, &detailedErr) {
		if code, ok := detailedErr.StatusCode.(int); ok {
			return code
		}
	}

	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode
	}

	return 0
}

// IsNotFoundError returns true if the entity an operation addressed does
// not exist.
func IsNotFoundError(err error) bool {
	if HasErrorCode(err,
		v82.FabricErrorCodesFabricENodeNotFound,
		v82.FabricErrorCodesFabricEApplicationTypeNotFound,
		v82.FabricErrorCodesFabricEApplicationNotFound,
		v82.FabricErrorCodesFabricEServiceTypeNotFound,
		v82.FabricErrorCodesFabricEServiceDoesNotExist,
		v82.FabricErrorCodesFabricEPartitionNotFound,
		v82.FabricErrorCodesFabricEReplicaDoesNotExist,
		v82.FabricErrorCodesFabricENameDoesNotExist,
		v82.FabricErrorCodesFabricEHealthEntityNotFound,
		v82.FabricErrorCodesFabricEBackupPolicyNotExisting,
		v82.FabricErrorCodesFabricEVolumeNotFound,
		v82.FabricErrorCodesFabricEFileNotFound,
		v82.FabricErrorCodesFabricEDirectoryNotFound,
	) {
		return true
	}

	return statusCode(err) == http.StatusNotFound
}

// IsAlreadyExistsError returns true if a create operation collided with an
// existing entity.
func IsAlreadyExistsError(err error) bool {
	if HasErrorCode(err,
		v82.FabricErrorCodesFabricEApplicationTypeAlreadyExists,
		v82.FabricErrorCodesFabricEApplicationAlreadyExists,
		v82.FabricErrorCodesFabricEServiceAlreadyExists,
		v82.FabricErrorCodesFabricEServiceGroupAlreadyExists,
		v82.FabricErrorCodesFabricENameAlreadyExists,
		v82.FabricErrorCodesFabricEBackupPolicyAlreadyExisting,
		v82.FabricErrorCodesFabricEVolumeAlreadyExists,
		v82.FabricErrorCodesFabricEFabricVersionAlreadyExists,
	) {
		return true
	}

	return statusCode(err) == http.StatusConflict
}

// IsTimeoutError returns true if the gateway or the caller gave up waiting.
func IsTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if HasErrorCode(err, v82.FabricErrorCodesFabricETimeout) {
		return true
	}

	return statusCode(err) == http.StatusGatewayTimeout
}

// IsRetryable returns true for transient cluster conditions: a primary
// moving, lost quorum, a reconfiguration or an overloaded gateway.
func IsRetryable(err error) bool {
	if HasErrorCode(err,
		v82.FabricErrorCodesFabricENotPrimary,
		v82.FabricErrorCodesFabricENoWriteQuorum,
		v82.FabricErrorCodesFabricEReconfigurationPending,
		v82.FabricErrorCodesFabricEReplicationQueueFull,
		v82.FabricErrorCodesFabricEServiceOffline,
		v82.FabricErrorCodesFabricETimeout,
		v82.FabricErrorCodesFabricECommunicationError,
		v82.FabricErrorCodesFabricEOperationNotComplete,
	) {
		return true
	}

	switch statusCode(err) {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}

	return false
}

// IsAuthenticationError returns true if the cluster rejected the caller or
// a token could not be obtained for it.
func IsAuthenticationError(err error) bool {
	var authErr *azidentity.AuthenticationFailedError
	if errors.As(err, &authErr) {
		return true
	}

	if HasErrorCode(err,
		v82.FabricErrorCodesEAccessdenied,
		v82.FabricErrorCodesFabricEServerAuthenticationFailed,
	) {
		return true
	}

	switch statusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}

	return false
}
