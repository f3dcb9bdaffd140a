package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/azure-servicefabric-go/pkg/client/servicefabric"
	"github.com/Azure/azure-servicefabric-go/pkg/metrics"
)

const (
	EnvEndpoint           = "SF_ENDPOINT"
	EnvAuthMode           = "SF_AUTH_MODE"
	EnvClientCertificate  = "SF_CLIENT_CERTIFICATE"
	EnvClientKey          = "SF_CLIENT_KEY"
	EnvCACertificate      = "SF_CA_CERTIFICATE"
	EnvInsecureSkipVerify = "SF_INSECURE_SKIP_VERIFY"
	EnvTenantID           = "AZURE_TENANT_ID"
	EnvClientID           = "AZURE_CLIENT_ID"
	EnvClientSecret       = "AZURE_CLIENT_SECRET"
	EnvAADScope           = "SF_AAD_SCOPE"
	EnvTimeout            = "SF_TIMEOUT"
	EnvRetryAttempts      = "SF_RETRY_ATTEMPTS"
	EnvLogLevel           = "LOG_LEVEL"
)

// AuthMode is how requests to the cluster gateway are authenticated.
type AuthMode string

const (
	AuthModeNone        AuthMode = "none"
	AuthModeCertificate AuthMode = "certificate"
	AuthModeAAD         AuthMode = "aad"
)

// Interface is the configuration of a process talking to one cluster.
type Interface interface {
	Endpoint() string
	AuthMode() AuthMode
	Timeout() *int64

	GetEnv(string) string
	ValidateVars(...string) error

	NewClient(metrics.Emitter) (servicefabric.BaseClient, error)
	Logger() *logrus.Entry
}

type env struct {
	cfg *viper.Viper
	log *logrus.Entry
}

var _ Interface = (*env)(nil)

// NewViper returns a viper instance holding the defaults and reading the
// environment.
func NewViper() *viper.Viper {
	cfg := viper.New()
	cfg.SetDefault(EnvEndpoint, servicefabric.DefaultBaseURI)
	cfg.SetDefault(EnvAuthMode, string(AuthModeNone))
	cfg.SetDefault(EnvRetryAttempts, 3)
	cfg.SetDefault(EnvLogLevel, logrus.InfoLevel.String())
	cfg.AutomaticEnv()

	return cfg
}

// NewEnv validates cfg for its authentication mode.
func NewEnv(log *logrus.Entry, cfg *viper.Viper) (Interface, error) {
	e := &env{
		cfg: cfg,
		log: log,
	}

	u, err := url.Parse(e.Endpoint())
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", EnvEndpoint, e.Endpoint(), err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid %s %q: expected http(s)://host:port", EnvEndpoint, e.Endpoint())
	}

	switch e.AuthMode() {
	case AuthModeNone:
	case AuthModeCertificate:
		err = e.ValidateVars(EnvClientCertificate)
	case AuthModeAAD:
		err = e.ValidateVars(EnvTenantID, EnvClientID, EnvClientSecret, EnvAADScope)
	default:
		return nil, fmt.Errorf("invalid %s %q: expected %s, %s or %s", EnvAuthMode, e.AuthMode(), AuthModeNone, AuthModeCertificate, AuthModeAAD)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", EnvAuthMode, e.AuthMode(), err)
	}

	if e.AuthMode() != AuthModeNone && u.Scheme != "https" {
		log.Warnf("%s authentication over %s", e.AuthMode(), u.Scheme)
	}

	return e, nil
}

func (e *env) Endpoint() string {
	return strings.TrimSuffix(e.cfg.GetString(EnvEndpoint), "/")
}

func (e *env) AuthMode() AuthMode {
	return AuthMode(strings.ToLower(e.cfg.GetString(EnvAuthMode)))
}

// Timeout returns the server side timeout in seconds, or nil to use the
// gateway's default.
func (e *env) Timeout() *int64 {
	timeout := e.cfg.GetInt64(EnvTimeout)
	if timeout <= 0 {
		return nil
	}

	return &timeout
}

func (e *env) GetEnv(name string) string {
	return e.cfg.GetString(name)
}

func (e *env) ValidateVars(vars ...string) error {
	return ValidateVars(e.cfg, vars...)
}

func (e *env) Logger() *logrus.Entry {
	return e.log
}

// ValidateVars returns an error naming every var in vars which has no value
// in cfg.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	var err error
	for _, v := range vars {
		if cfg.GetString(v) == "" {
			err = multierror.Append(err, fmt.Errorf("environment variable %q unset", v))
		}
	}

	return err
}
