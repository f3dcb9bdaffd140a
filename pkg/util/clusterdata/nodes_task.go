package clusterdata

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
)

func newNodesEnricherTask(log *logrus.Entry, client servicefabric.BaseClientAPI, s *Snapshot) enricherTask {
	return &nodesEnricherTask{
		log:    log,
		client: client,
		s:      s,
	}
}

type nodesEnricherTask struct {
	log    *logrus.Entry
	client servicefabric.BaseClientAPI
	s      *Snapshot
}

func (ef *nodesEnricherTask) FetchData(ctx context.Context, callbacks chan<- func(), errs chan<- error) {
	nodes, err := ef.client.ListAllNodes(ctx, "")
	if err != nil {
		ef.log.Error(err)
		errs <- fmt.Errorf("nodes: %w", err)
		return
	}

	codeVersions := map[string]int{}
	for _, node := range nodes {
		if node.CodeVersion != nil {
			codeVersions[*node.CodeVersion]++
		}
	}

	if len(codeVersions) > 1 {
		ef.log.Infof("nodes run %d code versions", len(codeVersions))
	}

	callbacks <- func() {
		ef.s.Nodes = nodes
		ef.s.NodeCodeVersions = codeVersions
	}
}

func (ef *nodesEnricherTask) SetDefaults() {
	ef.s.Nodes = nil
	ef.s.NodeCodeVersions = nil
}
