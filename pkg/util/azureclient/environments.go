package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest/azure"

	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/common"
)

// Environment contains additional, cloud-specific information needed by the
// lab tooling.
type Environment struct {
	azure.Environment
	ActualCloudName string
	AzureRbacPDPEnvironment
	Cloud cloud.Configuration
	// Microsoft identity platform scopes used when minting tokens for
	// management calls and data-plane probes.
	// See https://learn.microsoft.com/EN-US/azure/active-directory/develop/scopes-oidc#the-default-scope
	ResourceManagerScope   string
	CognitiveServicesScope string
	SearchScope            string
}

// AzureRbacPDPEnvironment contains cloud specific instance of Authz RBAC PDP Remote Server
type AzureRbacPDPEnvironment struct {
	Endpoint   string
	OAuthScope string
}

var (
	// PublicCloud contains additional information for the public Azure cloud
	// environment.
	PublicCloud = Environment{
		Environment:     azure.PublicCloud,
		ActualCloudName: "AzureCloud",
		Cloud:           cloud.AzurePublic,
		AzureRbacPDPEnvironment: AzureRbacPDPEnvironment{
			Endpoint:   "https://%s.authorization.azure.net/providers/Microsoft.Authorization/checkAccess?api-version=2021-06-01-preview",
			OAuthScope: "https://authorization.azure.net/.default",
		},
		ResourceManagerScope:   azure.PublicCloud.ResourceManagerEndpoint + "/.default",
		CognitiveServicesScope: "https://cognitiveservices.azure.com/.default",
		SearchScope:            "https://search.azure.com/.default",
	}

	// USGovernmentCloud contains additional information for the US Gov cloud
	// environment.
	USGovernmentCloud = Environment{
		Environment:     azure.USGovernmentCloud,
		ActualCloudName: "AzureUSGovernment",
		Cloud:           cloud.AzureGovernment,
		AzureRbacPDPEnvironment: AzureRbacPDPEnvironment{
			Endpoint:   "https://%s.authorization.azure.us/providers/Microsoft.Authorization/checkAccess?api-version=2021-06-01-preview",
			OAuthScope: "https://authorization.azure.us/.default",
		},
		ResourceManagerScope:   azure.USGovernmentCloud.ResourceManagerEndpoint + "/.default",
		CognitiveServicesScope: "https://cognitiveservices.azure.us/.default",
		SearchScope:            "https://search.azure.us/.default",
	}
)

// EnvironmentFromName returns the Environment corresponding to the common name specified.
func EnvironmentFromName(name string) (Environment, error) {
	switch strings.ToUpper(name) {
	case "AZUREPUBLICCLOUD":
		return PublicCloud, nil
	case "AZUREUSGOVERNMENTCLOUD":
		return USGovernmentCloud, nil
	}
	return Environment{}, fmt.Errorf("cloud environment %q is unsupported", name)
}

// RoundTripperFunc allows a function to implement http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (rt RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt(req)
}

// Middleware closes over any client-side middleware
type Middleware func(http.RoundTripper) http.RoundTripper

// Chain is a handy function to wrap a base RoundTripper (optional) with the middlewares.
func Chain(rt http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}

	for _, m := range middlewares {
		rt = m(rt)
	}

	return rt
}

// ArmClientOptions returns an arm.ClientOptions to be passed in when instantiating
// Azure SDK for Go clients.
func (e *Environment) ArmClientOptions(middlewares ...Middleware) *arm.ClientOptions {
	customRoundTripper := Chain(http.DefaultTransport, append([]Middleware{NewCustomRoundTripper}, middlewares...)...)
	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
			Retry: common.RetryOptions,
			Transport: &http.Client{
				Transport: customRoundTripper,
			},
		},
	}
}

func (e *Environment) DefaultAzureCredentialOptions() *azidentity.DefaultAzureCredentialOptions {
	return &azidentity.DefaultAzureCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}
