package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	deployer "github.com/Azure/ai-gateway-lab/pkg/deploy"
	"github.com/Azure/ai-gateway-lab/pkg/env"
)

func deploy(ctx context.Context, log *logrus.Entry) error {
	for _, key := range []string{
		"AZURE_SUBSCRIPTION_ID",
	} {
		if _, found := os.LookupEnv(key); !found {
			return fmt.Errorf("environment variable %q unset", key)
		}
	}

	_env, err := newEnv(log, env.COMPONENT_DEPLOY)
	if err != nil {
		return err
	}

	config, err := deployer.GetConfig(*configFile)
	if err != nil {
		return err
	}

	config.SubscriptionID = _env.SubscriptionID()
	config.ResourceGroupName = flag.Arg(1)
	config.Location = flag.Arg(2)
	if flag.NArg() > 3 {
		config.TesterPrincipalID = flag.Arg(3)
	}
	if *secondaryLocation != "" {
		config.SecondaryLocation = *secondaryLocation
	}

	d, err := deployer.New(ctx, log, _env, config, *envFile)
	if err != nil {
		return err
	}

	err = d.PreDeploy(ctx)
	if err != nil {
		return err
	}

	return d.Deploy(ctx)
}

func destroy(ctx context.Context, log *logrus.Entry) error {
	for _, key := range []string{
		"AZURE_SUBSCRIPTION_ID",
	} {
		if _, found := os.LookupEnv(key); !found {
			return fmt.Errorf("environment variable %q unset", key)
		}
	}

	_env, err := newEnv(log, env.COMPONENT_DESTROY)
	if err != nil {
		return err
	}

	config, err := deployer.GetConfig(*configFile)
	if err != nil {
		return err
	}

	config.SubscriptionID = _env.SubscriptionID()
	config.ResourceGroupName = flag.Arg(1)
	// deletion addresses the group by name; the location only feeds the
	// config completion the constructor insists on
	config.Location = "eastus"

	d, err := deployer.New(ctx, log, _env, config, *envFile)
	if err != nil {
		return err
	}

	return d.Destroy(ctx)
}

func newEnv(log *logrus.Entry, component env.ServiceComponent) (env.Core, error) {
	cfg := viper.New()
	cfg.AutomaticEnv()

	return env.NewCore(log, component, cfg)
}
