package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/Azure/ai-gateway-lab/pkg/deploy/generator"
	"github.com/Azure/ai-gateway-lab/pkg/env"
	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
)

const promptExplain = "Explain what Azure API Management is in two sentences."

// searchRanker is the file_search ranker version the grounding probe pins.
const searchRanker = "default_2024_08_21"

// Responses exercises the responses API over every access path the lab
// provides: directly against each regional backend, through the gateway,
// and through the workspace project.  Failures are aggregated so one broken
// path does not hide the state of the others.
func (c *checker) Responses(ctx context.Context) error {
	if err := c.env.ValidateVars(env.OpenAIEndpoint1EnvVar, env.OpenAIEndpoint2EnvVar); err != nil {
		return err
	}

	var result *multierror.Error

	directAuth := c.bearerAuth(c.env.Environment().CognitiveServicesScope)

	for _, backend := range []struct {
		label    string
		endpoint string
	}{
		{"primary", c.settings.openAIEndpoint1},
		{"secondary", c.settings.openAIEndpoint2},
	} {
		err := c.probeResponses(ctx, "direct ("+backend.label+")", backend.endpoint, nil, directAuth)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("direct (%s): %w", backend.label, err))
		}
	}

	if c.settings.gatewayURL == "" {
		c.log.Info("skipping the gateway probe (gateway URL not set)")
	} else {
		err := c.probeResponses(ctx, "gateway", c.settings.gatewayURL, nil, c.gatewayAuth)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("gateway: %w", err))
		}
	}

	if c.settings.searchEndpoint == "" || c.settings.searchIndex == "" {
		c.log.Info("skipping the search grounding probe (search endpoint or index not set)")
	} else {
		tools := []responsesTool{
			{
				Type: "file_search",
				FileSearch: &fileSearchTool{
					RankingOptions: rankingOptions{
						Ranker: searchRanker,
					},
				},
			},
		}

		err := c.probeResponses(ctx, "search grounding", c.settings.openAIEndpoint1, tools, directAuth)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("search grounding: %w", err))
		}
	}

	if c.settings.project == nil {
		c.log.Info("skipping the project probe (project connection string not set)")
	} else if err := c.probeProject(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("project: %w", err))
	}

	return result.ErrorOrNil()
}

func (c *checker) probeResponses(ctx context.Context, label, baseURL string, tools []responsesTool, auth authFunc) error {
	prompt := promptExplain
	if tools != nil {
		prompt = "What are the key topics in the indexed documents?"
	}

	c.log.Infof("%s: %s", label, baseURL)

	result, err := c.callResponses(ctx, baseURL, prompt, tools, auth)
	if err != nil {
		return err
	}

	c.log.Infof("%s: model=%s region=%s tokens=%d latency=%dms", label, result.Model, result.Region, result.TotalTokens, result.Latency.Milliseconds())
	c.log.Infof("%s: %s", label, snippet([]byte(result.OutputText)))
	return nil
}

// probeProject reads the project workspace through the management plane and
// confirms the hub shares all three connections, which is what lets the
// project resolve a backend OpenAI resource for the requested deployment.
func (c *checker) probeProject(ctx context.Context) error {
	workspace, err := c.workspaces.Get(ctx, c.settings.project.ResourceGroup, c.settings.project.Name, nil)
	if err != nil {
		return err
	}

	if workspace.Properties == nil || workspace.Properties.HubResourceID == nil {
		return fmt.Errorf("workspace %s is not a project (no hub reference)", c.settings.project.Name)
	}

	hub, err := arm.ParseArmResourceId(*workspace.Properties.HubResourceID)
	if err != nil {
		return err
	}

	c.log.Infof("project %s is attached to hub %s", c.settings.project.Name, hub.ResourceName)

	found := map[string]bool{}

	pager := c.connections.NewListPager(hub.ResourceGroup, hub.ResourceName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return err
		}

		for _, connection := range page.Value {
			if connection.Name != nil {
				found[*connection.Name] = true
			}
		}
	}

	var result *multierror.Error
	for _, name := range []string{generator.ConnectionPrimary, generator.ConnectionSecondary, generator.ConnectionSearch} {
		if !found[name] {
			result = multierror.Append(result, fmt.Errorf("hub %s has no connection %q", hub.ResourceName, name))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	c.log.Infof("hub %s shares all %d connections", hub.ResourceName, 3)
	return nil
}
