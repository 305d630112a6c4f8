package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Azure/ai-gateway-lab/pkg/check"
	"github.com/Azure/ai-gateway-lab/pkg/env"
)

func runCheck(ctx context.Context, log *logrus.Entry) error {
	// process env wins over the env file: godotenv.Load never overrides
	// variables which are already set
	err := godotenv.Load(*envFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	_env, err := newEnv(log, env.COMPONENT_CHECK)
	if err != nil {
		return err
	}

	c, err := check.New(log, _env)
	if err != nil {
		return err
	}

	switch strings.ToLower(flag.Arg(1)) {
	case "all":
		return c.All(ctx, *requests, *principalID)
	case "loadbalance":
		return c.LoadBalance(ctx, *requests)
	case "responses":
		return c.Responses(ctx)
	case "access":
		return c.Access(ctx)
	case "roles":
		return c.Roles(ctx, *principalID, *effective)
	default:
		return fmt.Errorf("unknown check %q", flag.Arg(1))
	}
}
