package recover

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/sirupsen/logrus"

	testlog "github.com/Azure/azure-servicefabric-go/test/util/log"
)

func TestPanic(t *testing.T) {
	h, log := testlog.NewCapturingLogger()

	func() {
		defer Panic(log)
		panic("random error")
	}()

	for _, err := range testlog.AssertLoggingOutput(h, []testlog.ExpectedLogEntry{
		{
			Message: "random error",
			Level:   logrus.ErrorLevel,
		},
		{
			MessageRegex: `runtime/debug\.Stack`,
			Level:        logrus.InfoLevel,
		},
	}) {
		t.Error(err)
	}
}

func TestPanicFunc(t *testing.T) {
	h, log := testlog.NewCapturingLogger()

	var got interface{}
	func() {
		defer PanicFunc(log, func(e interface{}) { got = e })
		panic("random error")
	}()

	if got != "random error" {
		t.Error(got)
	}

	for _, err := range testlog.AssertLoggingOutput(h, []testlog.ExpectedLogEntry{
		{
			Message: "random error",
			Level:   logrus.ErrorLevel,
		},
		{
			MessageRegex: `runtime/debug\.Stack`,
			Level:        logrus.InfoLevel,
		},
	}) {
		t.Error(err)
	}
}

func TestPanicFuncWithoutPanic(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	called := false
	func() {
		defer PanicFunc(log, func(interface{}) { called = true })
	}()

	if called {
		t.Error("unexpected call")
	}
}
