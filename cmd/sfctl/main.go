package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Azure/azure-servicefabric-go/pkg/entrypoint/sfctl"
	utillog "github.com/Azure/azure-servicefabric-go/pkg/util/log"
	"github.com/Azure/azure-servicefabric-go/pkg/util/version"
)

func main() {
	log := utillog.GetLogger()

	log.Debugf("starting, git commit %s", version.GitCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, err := sfctl.NewCommand()
	if err != nil {
		log.Fatal(err)
	}

	err = cmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
