package recover

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Panic recovers a panic and logs it with its stack. Use it as the first
// deferred call of every goroutine.
func Panic(log *logrus.Entry) {
	if e := recover(); e != nil {
		log.Error(e)
		log.Info(string(debug.Stack()))
	}
}

// PanicFunc is Panic, additionally calling f with the recovered value. Use it
// where a goroutine must still report back to its caller after a panic.
func PanicFunc(log *logrus.Entry, f func(interface{})) {
	if e := recover(); e != nil {
		log.Error(e)
		log.Info(string(debug.Stack()))
		f(e)
	}
}
