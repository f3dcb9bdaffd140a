package sfctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
	"github.com/Azure/azure-servicefabric-go/pkg/entrypoint/config"
	"github.com/Azure/azure-servicefabric-go/pkg/env"
	"github.com/Azure/azure-servicefabric-go/pkg/metrics"
	"github.com/Azure/azure-servicefabric-go/pkg/metrics/prometheus"
	utillog "github.com/Azure/azure-servicefabric-go/pkg/util/log"
	"github.com/Azure/azure-servicefabric-go/pkg/util/uuid"
	"github.com/Azure/azure-servicefabric-go/pkg/util/version"
)

type clientFactory func(env.Interface, metrics.Emitter) (servicefabric.BaseClientAPI, error)

func newClient(e env.Interface, m metrics.Emitter) (servicefabric.BaseClientAPI, error) {
	return e.NewClient(m)
}

type cli struct {
	cfg    *viper.Viper
	common config.Common
	log    *logrus.Entry
	out    io.Writer

	env      env.Interface
	client   servicefabric.BaseClientAPI
	registry *prometheus.Registry
	uuids    uuid.Generator

	newClient clientFactory
}

// NewCommand returns the root cobra command for "sfctl".
func NewCommand() (*cobra.Command, error) {
	return newCommand(&cli{
		cfg:   env.NewViper(),
		log:   utillog.GetLogger(),
		out:   os.Stdout,
		uuids: uuid.DefaultGenerator,

		newClient: newClient,
	})
}

func newCommand(c *cli) (*cobra.Command, error) {
	cc := &cobra.Command{
		Use:               "sfctl",
		Short:             "Manage a Service Fabric cluster through its HTTP gateway",
		Version:           version.GitCommit,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !c.common.Metrics {
				return nil
			}
			return c.registry.WriteText(c.out)
		},
	}

	err := config.BindFlags(cc, c.cfg)
	if err != nil {
		return nil, err
	}

	cc.SetOut(c.out)
	cc.AddCommand(
		c.clusterCommand(),
		c.nodeCommand(),
		c.applicationCommand(),
		c.serviceCommand(),
		c.partitionCommand(),
		c.replicaCommand(),
		c.chaosCommand(),
		c.backupCommand(),
		c.repairCommand(),
		c.meshCommand(),
		c.healthCommand(),
		c.faultCommand(),
	)

	return cc, nil
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	var err error
	c.common, err = config.CommonConfigFromCmd(cmd, c.cfg)
	if err != nil {
		return err
	}

	err = utillog.SetLevel(c.common.LogLevel)
	if err != nil {
		return err
	}

	c.env, err = env.NewEnv(c.log.WithField("component", "env"), c.cfg)
	if err != nil {
		return err
	}

	c.registry, err = prometheus.New(c.log.WithField("component", "metrics"), "sfctl", false)
	if err != nil {
		return err
	}

	c.client, err = c.newClient(c.env, c.registry)
	if err != nil {
		return errors.Wrap(err, "creating client")
	}

	c.log.Debugf("using %s with %s authentication", c.env.Endpoint(), c.env.AuthMode())

	return nil
}

// print writes v to the command output in the configured format.
func (c *cli) print(v interface{}) error {
	if c.common.Output == config.OutputYAML {
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = c.out.Write(b)
		return err
	}

	enc := json.NewEncoder(c.out)
	if c.common.Output == config.OutputPretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(v)
}

// logRequest logs a request body with its secrets redacted
func (c *cli) logRequest(operation string, body interface{}) {
	c.log.WithField("operation", operation).Debug(api.Stringify(body))
}

// forEach runs f for every target, continuing past failures. The returned
// error names each failed target.
func (c *cli) forEach(targets []string, f func(string) error) error {
	var result error
	for _, target := range targets {
		err := f(target)
		if err != nil {
			result = multierror.Append(result, errors.Wrap(err, target))
			continue
		}
		c.log.Infof("%s: done", target)
	}

	return result
}
