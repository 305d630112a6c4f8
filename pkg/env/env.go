package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Environment variable names understood by the lab tooling.
const (
	SubscriptionIDEnvVar = "AZURE_SUBSCRIPTION_ID"
	CloudNameEnvVar      = "AZURE_ENVIRONMENT"
)

// Keys the deployer writes to the env file and the check suite reads back.
const (
	APIMGatewayURLEnvVar          = "APIM_GATEWAY_URL"
	APIMSubscriptionKeyEnvVar     = "APIM_SUBSCRIPTION_KEY"
	OpenAIEndpoint1EnvVar         = "OPENAI_ENDPOINT_1"
	OpenAIEndpoint2EnvVar         = "OPENAI_ENDPOINT_2"
	OpenAIModelDeploymentEnvVar   = "OPENAI_MODEL_DEPLOYMENT"
	OpenAIAPIVersionEnvVar        = "OPENAI_API_VERSION"
	StorageBlobEndpointEnvVar     = "STORAGE_BLOB_ENDPOINT"
	SearchEndpointEnvVar          = "AI_SEARCH_ENDPOINT"
	SearchIndexNameEnvVar         = "AI_SEARCH_INDEX_NAME"
	ProjectConnectionStringEnvVar = "AI_FOUNDRY_PROJECT_CONNECTION_STRING"
)

// ValidateVars returns an error enumerating every variable in vars which is
// unset or empty in cfg.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	var errs []error

	for _, v := range vars {
		if cfg.GetString(v) == "" {
			errs = append(errs, fmt.Errorf("environment variable %q unset", v))
		}
	}

	return errors.Join(errs...)
}
