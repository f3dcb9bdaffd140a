package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRelativeFilePathPrettier(t *testing.T) {
	pc := make([]uintptr, 1)
	runtime.Callers(1, pc)
	currentFrames := runtime.CallersFrames(pc)
	currentFunc, _ := currentFrames.Next()
	currentFunc.Line = 11 // so it's not too fragile
	tests := []struct {
		name  string
		f     *runtime.Frame
		want1 string
		want2 string
	}{
		{
			name:  "current function",
			f:     &currentFunc,
			want1: "log.TestRelativeFilePathPrettier()",
			want2: " pkg/util/log/log_test.go:11",
		},
		{
			name:  "empty",
			f:     &runtime.Frame{},
			want1: "()",
			want2: " :0",
		},
		{
			name: "client",
			f: &runtime.Frame{
				Function: "github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric.BaseClient.do",
				File:     repopath + "pkg/client/servicefabric/operation.go",
				Line:     142,
			},
			want1: "servicefabric.BaseClient.do()",
			want2: " pkg/client/servicefabric/operation.go:142",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got1, got2 := RelativeFilePathPrettier(tt.f)
			if got1 != tt.want1 {
				t.Errorf("RelativeFilePathPrettier() got1 = %v, want %v", got1, tt.want1)
			}
			if got2 != tt.want2 {
				t.Errorf("RelativeFilePathPrettier() got2 = %v, want %v", got2, tt.want2)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	for _, tt := range []struct {
		level   string
		want    logrus.Level
		wantErr string
	}{
		{level: "", want: logrus.InfoLevel},
		{level: "debug", want: logrus.DebugLevel},
		{level: "WARNING", want: logrus.WarnLevel},
		{level: "loud", wantErr: `not a valid logrus Level: "loud"`},
	} {
		t.Run(tt.level, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatal(err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if logrus.GetLevel() != tt.want {
				t.Error(logrus.GetLevel())
			}
		})
	}
}
