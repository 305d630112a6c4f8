package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
)

type ServiceComponent string

const (
	COMPONENT_DEPLOY  ServiceComponent = "DEPLOY"
	COMPONENT_CHECK   ServiceComponent = "CHECK"
	COMPONENT_DESTROY ServiceComponent = "DESTROY"
	COMPONENT_TOOLING ServiceComponent = "TOOLING"
)

// Core collects the basic configuration every lab entrypoint needs: the
// target cloud, the subscription, and access to the process environment.
type Core interface {
	Environment() *azureclient.Environment
	SubscriptionID() string

	GetEnv(string) string
	ValidateVars(...string) error

	Component() string
	Logger() *logrus.Entry
}

type core struct {
	cfg *viper.Viper

	environment    *azureclient.Environment
	subscriptionID string

	component    ServiceComponent
	componentLog *logrus.Entry
}

func (c *core) Environment() *azureclient.Environment {
	return c.environment
}

func (c *core) SubscriptionID() string {
	return c.subscriptionID
}

func (c *core) GetEnv(name string) string {
	return c.cfg.GetString(name)
}

func (c *core) ValidateVars(vars ...string) error {
	return ValidateVars(c.cfg, vars...)
}

func (c *core) Component() string {
	return string(c.component)
}

func (c *core) Logger() *logrus.Entry {
	return c.componentLog
}

// NewCore resolves the target cloud from AZURE_ENVIRONMENT (public cloud when
// unset) and captures AZURE_SUBSCRIPTION_ID.  The subscription may be empty
// at this point: entrypoints which talk to ARM validate it themselves via
// ValidateVars, while purely local ones (template generation) never need it.
func NewCore(log *logrus.Entry, component ServiceComponent, cfg *viper.Viper) (Core, error) {
	name := cfg.GetString(CloudNameEnvVar)
	if name == "" {
		name = "AzurePublicCloud"
	}

	environment, err := azureclient.EnvironmentFromName(name)
	if err != nil {
		return nil, err
	}

	return &core{
		cfg: cfg,

		environment:    &environment,
		subscriptionID: cfg.GetString(SubscriptionIDEnvVar),

		component:    component,
		componentLog: log.WithField("component", strings.ReplaceAll(strings.ToLower(string(component)), "_", "-")),
	}, nil
}
