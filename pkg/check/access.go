package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/hashicorp/go-multierror"

	"github.com/Azure/ai-gateway-lab/pkg/env"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureerrors"
)

const searchDataPlaneAPIVersion = "2024-07-01"

// missingRoleError wraps a data-plane authorization failure with the
// minimum built-in role whose absence explains it.  The lab grants these
// exact roles to the tester principal; naming the role turns a bare 403
// into its remediation.
type missingRoleError struct {
	role string
	err  error
}

func (e *missingRoleError) Error() string {
	return fmt.Sprintf("missing role %q: %v", e.role, e.err)
}

func (e *missingRoleError) Unwrap() error {
	return e.err
}

// Access probes every data plane the lab wires up, as the current
// credential, and maps authorization failures to the minimum role that
// would fix them.  Probes whose endpoint is not in the environment are
// skipped, not failed.
func (c *checker) Access(ctx context.Context) error {
	type probe struct {
		name string
		skip string
		run  func(context.Context) error
	}

	probes := []probe{
		{
			name: "openai (primary)",
			skip: skipUnless(c.settings.openAIEndpoint1 != "", env.OpenAIEndpoint1EnvVar),
			run: func(ctx context.Context) error {
				return c.probeOpenAIAccess(ctx, c.settings.openAIEndpoint1)
			},
		},
		{
			name: "openai (secondary)",
			skip: skipUnless(c.settings.openAIEndpoint2 != "", env.OpenAIEndpoint2EnvVar),
			run: func(ctx context.Context) error {
				return c.probeOpenAIAccess(ctx, c.settings.openAIEndpoint2)
			},
		},
		{
			name: "storage",
			skip: skipUnless(c.settings.blobEndpoint != "", env.StorageBlobEndpointEnvVar),
			run:  c.probeStorageAccess,
		},
		{
			name: "search",
			skip: skipUnless(c.settings.searchEndpoint != "", env.SearchEndpointEnvVar),
			run:  c.probeSearchAccess,
		},
		{
			name: "project",
			skip: skipUnless(c.settings.project != nil, env.ProjectConnectionStringEnvVar),
			run:  c.probeProjectAccess,
		},
	}

	var result *multierror.Error

	for _, probe := range probes {
		if probe.skip != "" {
			c.log.Infof("%s: skipped (%s not set)", probe.name, probe.skip)
			continue
		}

		err := probe.run(ctx)
		if err != nil {
			c.log.Errorf("%s: %v", probe.name, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", probe.name, err))
			continue
		}

		c.log.Infof("%s: ok", probe.name)
	}

	return result.ErrorOrNil()
}

func skipUnless(configured bool, envVar string) string {
	if configured {
		return ""
	}
	return envVar
}

func (c *checker) probeOpenAIAccess(ctx context.Context, endpoint string) error {
	_, err := c.callResponses(ctx, endpoint, "Say hello.", nil, c.bearerAuth(c.env.Environment().CognitiveServicesScope))

	var requestErr *requestError
	if errors.As(err, &requestErr) && isAuthStatus(requestErr.status) {
		return &missingRoleError{role: "Cognitive Services OpenAI User", err: err}
	}

	return err
}

// probeStorageAccess lists one page of containers, the cheapest call which
// still requires a blob data role rather than mere ARM read access.
func (c *checker) probeStorageAccess(ctx context.Context) error {
	pager := c.blobs.NewListContainersPager(&azblob.ListContainersOptions{
		MaxResults: to.Ptr(int32(1)),
	})

	_, err := pager.NextPage(ctx)

	if azureerrors.IsUnauthorizedOrForbidden(err) {
		return &missingRoleError{role: "Storage Blob Data Contributor", err: err}
	}

	return err
}

func (c *checker) probeSearchAccess(ctx context.Context) error {
	url := strings.TrimSuffix(c.settings.searchEndpoint, "/") + "/indexes?api-version=" + searchDataPlaneAPIVersion

	res, err := c.do(ctx, http.MethodGet, url, nil, c.bearerAuth(c.env.Environment().SearchScope))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxProbeBody))
	if err != nil {
		return err
	}

	requestErr := &requestError{url: url, status: res.StatusCode, body: snippet(b)}
	if isAuthStatus(res.StatusCode) {
		return &missingRoleError{role: "Search Index Data Contributor", err: requestErr}
	}

	return requestErr
}

func (c *checker) probeProjectAccess(ctx context.Context) error {
	_, err := c.workspaces.Get(ctx, c.settings.project.ResourceGroup, c.settings.project.Name, nil)

	if azureerrors.IsUnauthorizedOrForbidden(err) {
		return &missingRoleError{role: "Azure AI Developer", err: err}
	}

	return err
}

func isAuthStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
