package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"reflect"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/validation"
	"github.com/Azure/go-autorest/tracing"

	"github.com/Azure/azure-servicefabric-go/pkg/util/sferrors"
)

// operation describes a single call to the gateway.
type operation struct {
	name              string
	method            string
	path              string
	pathParameters    map[string]interface{}
	// rawPathParameters are substituted without escaping.
	rawPathParameters map[string]interface{}
	queryParameters   map[string]interface{}
	apiVersion        string
	timeout           *int64
	maxResults        *int64
	body              interface{}
	statusCodes       []int
}

// validate checks the parameters every operation shares. The gateway
// accepts server side timeouts of 1 to 4294967295 seconds.
func (op *operation) validate() error {
	err := validation.Validate([]validation.Validation{
		{
			TargetValue: op.timeout,
			Constraints: []validation.Constraint{
				{
					Target: "timeout", Name: validation.Null, Rule: false,
					Chain: []validation.Constraint{
						{Target: "timeout", Name: validation.InclusiveMaximum, Rule: int64(4294967295), Chain: nil},
						{Target: "timeout", Name: validation.InclusiveMinimum, Rule: int64(1), Chain: nil},
					},
				},
			},
		},
		{
			TargetValue: op.maxResults,
			Constraints: []validation.Constraint{
				{
					Target: "maxResults", Name: validation.Null, Rule: false,
					Chain: []validation.Constraint{
						{Target: "maxResults", Name: validation.InclusiveMinimum, Rule: int64(0), Chain: nil},
					},
				},
			},
		},
	})
	if err != nil {
		return validation.NewError(packageType, op.name, "%s", err.Error())
	}

	return nil
}

func (client BaseClient) prepare(ctx context.Context, op *operation) (*http.Request, error) {
	pathParameters := map[string]interface{}{}
	for k, v := range op.pathParameters {
		pathParameters[k] = autorest.Encode("path", v)
	}
	for k, v := range op.rawPathParameters {
		pathParameters[k] = v
	}

	queryParameters := map[string]interface{}{
		"api-version": op.apiVersion,
	}
	if op.timeout != nil {
		queryParameters["timeout"] = autorest.Encode("query", *op.timeout)
	} else {
		queryParameters["timeout"] = autorest.Encode("query", int64(60))
	}
	if op.maxResults != nil {
		queryParameters["MaxResults"] = autorest.Encode("query", *op.maxResults)
	}
	for k, v := range setParameters(op.queryParameters) {
		queryParameters[k] = autorest.Encode("query", v)
	}

	decorators := []autorest.PrepareDecorator{
		autorest.WithMethod(op.method),
		autorest.WithBaseURL(client.BaseURI),
		autorest.WithPathParameters(op.path, pathParameters),
		autorest.WithQueryParameters(queryParameters),
	}
	if !isNil(op.body) {
		decorators = append(decorators,
			autorest.AsContentType("application/json; charset=utf-8"),
			autorest.WithJSON(op.body))
	}

	preparer := autorest.CreatePreparer(decorators...)
	return preparer.Prepare((&http.Request{}).WithContext(ctx))
}

func (client BaseClient) send(req *http.Request) (*http.Response, error) {
	return client.Send(req, autorest.DoRetryForStatusCodes(client.RetryAttempts, client.RetryDuration, autorest.StatusCodesForRetry...))
}

// respond decodes a successful response into result, which may be nil.
// Any other status code becomes a *sferrors.ServiceError.
func (client BaseClient) respond(resp *http.Response, statusCodes []int, result interface{}) error {
	decorators := []autorest.RespondDecorator{
		client.ByInspecting(),
		withFabricErrorUnlessStatusCode(statusCodes...),
	}
	if result != nil {
		decorators = append(decorators, autorest.ByUnmarshallingJSON(result))
	}
	decorators = append(decorators, autorest.ByClosing())

	return autorest.Respond(resp, decorators...)
}

// do runs op, decoding the response body into result when it is not nil.
func (client BaseClient) do(ctx context.Context, op *operation, result interface{}) (resp *http.Response, err error) {
	if tracing.IsEnabled() {
		ctx = tracing.StartSpan(ctx, fqdn+"/BaseClient."+op.name)
		defer func() {
			sc := -1
			if resp != nil {
				sc = resp.StatusCode
			}
			tracing.EndSpan(ctx, sc, err)
		}()
	}

	if err = op.validate(); err != nil {
		return nil, err
	}

	ctx = withOperationName(ctx, op.name)

	if len(op.statusCodes) == 0 {
		op.statusCodes = []int{http.StatusOK}
	}

	req, err := client.prepare(ctx, op)
	if err != nil {
		return nil, autorest.NewErrorWithError(err, packageType, op.name, nil, "Failure preparing request")
	}

	resp, err = client.send(req)
	if err != nil {
		return resp, autorest.NewErrorWithError(err, packageType, op.name, resp, "Failure sending request")
	}

	err = client.respond(resp, op.statusCodes, result)
	if err != nil {
		return resp, autorest.NewErrorWithError(err, packageType, op.name, resp, "Failure responding to request")
	}

	return resp, nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// setParameters drops nil pointers and empty strings from params and
// dereferences the remaining pointers.
func setParameters(params map[string]interface{}) map[string]interface{} {
	set := map[string]interface{}{}
	for k, v := range params {
		if v == nil {
			continue
		}

		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Ptr:
			if isNil(v) {
				continue
			}
			set[k] = rv.Elem().Interface()
		case reflect.String:
			if rv.Len() == 0 {
				continue
			}
			set[k] = v
		default:
			set[k] = v
		}
	}

	return set
}

// withFabricErrorUnlessStatusCode returns a RespondDecorator that decodes
// the FabricError body of a response whose status code is not in codes.
func withFabricErrorUnlessStatusCode(codes ...int) autorest.RespondDecorator {
	return func(r autorest.Responder) autorest.Responder {
		return autorest.ResponderFunc(func(resp *http.Response) error {
			err := r.Respond(resp)
			if err != nil || autorest.ResponseHasStatusCode(resp, codes...) {
				return err
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			resp.Body = io.NopCloser(bytes.NewReader(body))

			return sferrors.NewServiceError(resp.StatusCode, body)
		})
	}
}
