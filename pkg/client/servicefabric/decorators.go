package servicefabric

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-servicefabric-go/pkg/metrics"
)

const (
	responseCode         = "response_status_code"
	contentLength        = "content_length"
	durationMilliseconds = "duration_milliseconds"
	operationName        = "operation"
)

type contextKey int

const contextKeyOperation contextKey = iota

func withOperationName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextKeyOperation, name)
}

func operationNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(contextKeyOperation).(string)
	return name
}

// Instrument decorates the client's sender so that every HTTP request,
// including retries, is logged to log and its duration emitted to m as
// client.duration.
func (client *BaseClient) Instrument(log *logrus.Entry, m metrics.Emitter) {
	client.Sender = DecorateSender(client.Sender, log, m)
}

// DecorateSender decorates a sender in order to log and measure low level
// HTTP request information.
func DecorateSender(sender autorest.Sender, log *logrus.Entry, m metrics.Emitter) autorest.Sender {
	if sender == nil {
		sender = &http.Client{}
	}

	return autorest.DecorateSender(sender, loggingDecorator(log, m), autorest.DoCloseIfError())
}

func loggingDecorator(log *logrus.Entry, m metrics.Emitter) autorest.SendDecorator {
	return func(s autorest.Sender) autorest.Sender {
		return autorest.SenderFunc(func(req *http.Request) (*http.Response, error) {
			op := operationNameFromContext(req.Context())
			l := log.WithFields(logrus.Fields{
				operationName:    op,
				"request_method": req.Method,
				"request_path":   req.URL.Path,
			})

			requestTime := time.Now()
			l.Debug("HttpRequestStart")

			resp, err := s.Do(req)

			code := 0
			fields := logrus.Fields{
				durationMilliseconds: time.Since(requestTime).Milliseconds(),
			}
			if resp != nil {
				code = resp.StatusCode
				fields[contentLength] = resp.ContentLength
			}
			fields[responseCode] = code

			l = l.WithFields(fields)
			if err != nil {
				l.Warnf("HttpRequestEnd: %v", err)
			} else {
				l.Info("HttpRequestEnd")
			}

			m.EmitFloat("client.duration", time.Since(requestTime).Seconds(), map[string]string{
				operationName: op,
				"code":        strconv.Itoa(code),
			})

			return resp, err
		})
	}
}
