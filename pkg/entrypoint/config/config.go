package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Azure/azure-servicefabric-go/pkg/env"
)

// Output formats
const (
	OutputJSON   = "json"
	OutputPretty = "pretty"
	OutputYAML   = "yaml"
)

const (
	flagOutput  = "output"
	flagMetrics = "metrics"
)

// Common is the configuration shared by every command
type Common struct {
	LogLevel string
	Output   string
	Metrics  bool
}

// flags maps persistent flag names to the configuration keys they override.
var flags = []struct {
	name  string
	key   string
	usage string
}{
	{"endpoint", env.EnvEndpoint, "cluster HTTP gateway endpoint"},
	{"auth-mode", env.EnvAuthMode, "authentication mode: none, certificate or aad"},
	{"client-certificate", env.EnvClientCertificate, "PEM client certificate file"},
	{"client-key", env.EnvClientKey, "PEM client key file, if not in the certificate file"},
	{"ca-certificate", env.EnvCACertificate, "PEM file of CAs to trust for the gateway certificate"},
	{"aad-scope", env.EnvAADScope, "token scope for aad authentication"},
	{"log-level", env.EnvLogLevel, "log level"},
}

// BindFlags registers the persistent flags on cmd and binds them into cfg so
// that a flag, when set, takes precedence over the environment.
func BindFlags(cmd *cobra.Command, cfg *viper.Viper) error {
	pf := cmd.PersistentFlags()

	for _, f := range flags {
		pf.String(f.name, "", f.usage)
	}
	pf.Bool("insecure-skip-verify", false, "do not verify the gateway certificate")
	pf.Int64("timeout", 0, "server side timeout in seconds")
	pf.Int("retry-attempts", 3, "attempts for retryable status codes")
	pf.StringP(flagOutput, "o", OutputJSON, "output format: json, pretty or yaml")
	pf.Bool(flagMetrics, false, "print client metrics on exit")

	bindings := map[string]*pflag.Flag{
		env.EnvInsecureSkipVerify: pf.Lookup("insecure-skip-verify"),
		env.EnvTimeout:            pf.Lookup("timeout"),
		env.EnvRetryAttempts:      pf.Lookup("retry-attempts"),
	}
	for _, f := range flags {
		bindings[f.key] = pf.Lookup(f.name)
	}

	for key, flag := range bindings {
		err := cfg.BindPFlag(key, flag)
		if err != nil {
			return err
		}
	}

	return nil
}

// CommonConfigFromCmd reads the common configuration after flag parsing
func CommonConfigFromCmd(cmd *cobra.Command, cfg *viper.Viper) (Common, error) {
	var c Common

	output, err := cmd.Flags().GetString(flagOutput)
	if err != nil {
		return c, err
	}
	switch output {
	case OutputJSON, OutputPretty, OutputYAML:
	default:
		return c, fmt.Errorf("invalid --%s %q: expected %s, %s or %s", flagOutput, output, OutputJSON, OutputPretty, OutputYAML)
	}

	c.Metrics, err = cmd.Flags().GetBool(flagMetrics)
	if err != nil {
		return c, err
	}

	c.Output = output
	c.LogLevel = cfg.GetString(env.EnvLogLevel)

	return c, nil
}
