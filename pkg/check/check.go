// Package check implements the post-deployment verification suite for a
// deployed lab.
package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/checkaccess-v2-go-sdk/client"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/ai-gateway-lab/pkg/env"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/armauthorization"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/armmachinelearning"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/azblob"
)

// Applied when the env file does not state a deployment or API version.
const (
	defaultDeployment = "gpt-4o"
	defaultAPIVersion = "2025-03-01-preview"
)

// Checker verifies a deployed lab end to end: that the gateway spreads
// traffic, that every endpoint answers, and that a tester principal holds
// exactly the roles the deployer grants.
type Checker interface {
	LoadBalance(ctx context.Context, requests int) error
	Responses(ctx context.Context) error
	Access(ctx context.Context) error
	Roles(ctx context.Context, principalID string, effective bool) error
	All(ctx context.Context, requests int, principalID string) error
}

type checker struct {
	log *logrus.Entry
	env env.Core

	http            *http.Client
	tokenCredential azcore.TokenCredential

	blobs           azblob.BlobsClient
	workspaces      armmachinelearning.WorkspacesClient
	connections     armmachinelearning.WorkspaceConnectionsClient
	roleAssignments armauthorization.RoleAssignmentsClient
	pdp             client.RemotePDPClient

	settings settings
}

var _ Checker = &checker{}

// settings carries the env file values the deployer emitted.  Optional
// values left empty cause the probes that need them to be skipped rather
// than fail.
type settings struct {
	gatewayURL      string
	subscriptionKey string

	openAIEndpoint1 string
	openAIEndpoint2 string
	deployment      string
	apiVersion      string

	blobEndpoint   string
	searchEndpoint string
	searchIndex    string

	project *project
}

// project is the parsed form of AI_FOUNDRY_PROJECT_CONNECTION_STRING.
type project struct {
	Region         string
	SubscriptionID string
	ResourceGroup  string
	Name           string
}

func parseProjectConnectionString(connectionString string) (*project, error) {
	parts := strings.Split(connectionString, ";")
	if len(parts) != 4 {
		return nil, fmt.Errorf("project connection string must have 4 fields, got %d", len(parts))
	}

	region, _, found := strings.Cut(parts[0], ".")
	if !found || region == "" || parts[1] == "" || parts[2] == "" || parts[3] == "" {
		return nil, fmt.Errorf("project connection string %q is malformed", connectionString)
	}

	return &project{
		Region:         region,
		SubscriptionID: parts[1],
		ResourceGroup:  parts[2],
		Name:           parts[3],
	}, nil
}

func newSettings(_env env.Core) (settings, error) {
	s := settings{
		gatewayURL:      _env.GetEnv(env.APIMGatewayURLEnvVar),
		subscriptionKey: _env.GetEnv(env.APIMSubscriptionKeyEnvVar),
		openAIEndpoint1: _env.GetEnv(env.OpenAIEndpoint1EnvVar),
		openAIEndpoint2: _env.GetEnv(env.OpenAIEndpoint2EnvVar),
		deployment:      _env.GetEnv(env.OpenAIModelDeploymentEnvVar),
		apiVersion:      _env.GetEnv(env.OpenAIAPIVersionEnvVar),
		blobEndpoint:    _env.GetEnv(env.StorageBlobEndpointEnvVar),
		searchEndpoint:  _env.GetEnv(env.SearchEndpointEnvVar),
		searchIndex:     _env.GetEnv(env.SearchIndexNameEnvVar),
	}

	if s.deployment == "" {
		s.deployment = defaultDeployment
	}
	if s.apiVersion == "" {
		s.apiVersion = defaultAPIVersion
	}

	if connectionString := _env.GetEnv(env.ProjectConnectionStringEnvVar); connectionString != "" {
		project, err := parseProjectConnectionString(connectionString)
		if err != nil {
			return settings{}, err
		}
		s.project = project
	}

	return s, nil
}

// New builds a Checker from the process environment.  Azure clients are only
// constructed for the resources the environment actually references, so a
// partially configured lab can still run the checks which apply to it.
func New(log *logrus.Entry, _env env.Core) (Checker, error) {
	s, err := newSettings(_env)
	if err != nil {
		return nil, err
	}

	tokenCredential, err := azidentity.NewDefaultAzureCredential(_env.Environment().DefaultAzureCredentialOptions())
	if err != nil {
		return nil, errors.Wrap(err, "default azure credential")
	}

	options := _env.Environment().ArmClientOptions()

	c := &checker{
		log: log,
		env: _env,

		http:            &http.Client{Timeout: 2 * time.Minute},
		tokenCredential: tokenCredential,

		settings: s,
	}

	if s.blobEndpoint != "" {
		c.blobs, err = azblob.NewBlobsClientUsingEntra(s.blobEndpoint, tokenCredential, options)
		if err != nil {
			return nil, errors.Wrap(err, "blobs client")
		}
	}

	if s.project != nil {
		c.workspaces, err = armmachinelearning.NewWorkspacesClient(s.project.SubscriptionID, tokenCredential, options)
		if err != nil {
			return nil, errors.Wrap(err, "workspaces client")
		}

		c.connections, err = armmachinelearning.NewWorkspaceConnectionsClient(s.project.SubscriptionID, tokenCredential, options)
		if err != nil {
			return nil, errors.Wrap(err, "workspace connections client")
		}

		c.roleAssignments, err = armauthorization.NewRoleAssignmentsClient(s.project.SubscriptionID, tokenCredential, options)
		if err != nil {
			return nil, errors.Wrap(err, "role assignments client")
		}

		pdpEnvironment := _env.Environment().AzureRbacPDPEnvironment
		c.pdp, err = client.NewRemotePDPClient(
			fmt.Sprintf(pdpEnvironment.Endpoint, s.project.Region),
			pdpEnvironment.OAuthScope,
			tokenCredential,
			&options.ClientOptions,
		)
		if err != nil {
			return nil, errors.Wrap(err, "checkaccess client")
		}
	}

	return c, nil
}

// All runs every check, concurrently where they are independent of each
// other, and aggregates their failures.
func (c *checker) All(ctx context.Context, requests int, principalID string) error {
	type check struct {
		name string
		run  func(context.Context) error
	}

	checks := []check{
		{"loadbalance", func(ctx context.Context) error { return c.LoadBalance(ctx, requests) }},
		{"responses", c.Responses},
		{"access", c.Access},
	}

	if principalID == "" {
		c.log.Info("skipping the roles check (no principal given)")
	} else {
		checks = append(checks, check{"roles", func(ctx context.Context) error { return c.Roles(ctx, principalID, false) }})
	}

	var g errgroup.Group
	errs := make([]error, len(checks))

	for i, check := range checks {
		g.Go(func() error {
			if err := check.run(ctx); err != nil {
				errs[i] = fmt.Errorf("%s: %w", check.name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return multierror.Append(nil, errs...).ErrorOrNil()
}
