package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"sort"

	"github.com/Azure/ai-gateway-lab/pkg/env"
)

// DefaultLoadBalanceRequests is how many gateway calls the load balancing
// check sends when the caller does not override it.
const DefaultLoadBalanceRequests = 10

const promptNumber = "Say the number %d."

// LoadBalance sends a series of requests through the gateway and verifies
// that the backend pool spreads them over more than one region.
func (c *checker) LoadBalance(ctx context.Context, requests int) error {
	if err := c.env.ValidateVars(env.APIMGatewayURLEnvVar, env.APIMSubscriptionKeyEnvVar); err != nil {
		return err
	}

	if requests <= 0 {
		requests = DefaultLoadBalanceRequests
	}

	c.log.Infof("sending %d requests through %s", requests, c.settings.gatewayURL)

	regions := map[string]int{}

	for i := 1; i <= requests; i++ {
		result, err := c.callResponses(ctx, c.settings.gatewayURL, fmt.Sprintf(promptNumber, i), nil, c.gatewayAuth)
		if err != nil {
			return fmt.Errorf("request %d: %w", i, err)
		}

		c.log.Infof("request %2d: region=%s model=%s tokens=%d latency=%dms", i, result.Region, result.Model, result.TotalTokens, result.Latency.Milliseconds())
		regions[result.Region]++
	}

	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)

	c.log.Info("request distribution:")
	for _, name := range names {
		c.log.Infof("  %-20s %d (%.0f%%)", name, regions[name], float64(regions[name])*100/float64(requests))
	}

	if len(regions) < 2 {
		return fmt.Errorf("all %d requests went to the same region; check the gateway backend pool configuration", requests)
	}

	c.log.Info("load balancing confirmed: requests distributed across multiple regions")
	return nil
}
