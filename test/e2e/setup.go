package e2e

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/ai-gateway-lab/pkg/check"
	"github.com/Azure/ai-gateway-lab/pkg/env"
	utillog "github.com/Azure/ai-gateway-lab/pkg/util/log"
)

var (
	log     *logrus.Entry
	_env    env.Core
	checker check.Checker

	// object ID of the tester principal the lab was deployed with; the
	// roles spec is skipped when unset
	testerPrincipalID string
)

var _ = BeforeSuite(func() {
	log = utillog.GetLogger()

	envFile := os.Getenv("AILAB_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	err := godotenv.Load(envFile)
	if err != nil && !os.IsNotExist(err) {
		Expect(err).NotTo(HaveOccurred())
	}

	cfg := viper.New()
	cfg.AutomaticEnv()

	_env, err = env.NewCore(log, env.COMPONENT_CHECK, cfg)
	Expect(err).NotTo(HaveOccurred())

	Expect(_env.ValidateVars(
		env.APIMGatewayURLEnvVar,
		env.APIMSubscriptionKeyEnvVar,
		env.OpenAIEndpoint1EnvVar,
		env.OpenAIEndpoint2EnvVar,
	)).To(Succeed())

	checker, err = check.New(log, _env)
	Expect(err).NotTo(HaveOccurred())

	testerPrincipalID = os.Getenv("AILAB_TESTER_PRINCIPAL_ID")
})
