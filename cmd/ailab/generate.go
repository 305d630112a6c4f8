package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/sirupsen/logrus"

	"github.com/Azure/ai-gateway-lab/pkg/deploy/generator"
)

func generate(log *logrus.Entry) error {
	log.Printf("writing templates to %s", *outputDir)
	return generator.New().Artifacts(*outputDir)
}
