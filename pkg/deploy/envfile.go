package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/Azure/ai-gateway-lab/pkg/env"
)

// resolveBlobEndpoint re-reads the blob endpoint from the storage resource
// itself rather than trusting the threaded template output.
func (d *deployer) resolveBlobEndpoint(ctx context.Context) error {
	account, err := d.accounts.GetProperties(ctx, d.config.ResourceGroupName, *d.config.Configuration.StorageAccountName, nil)
	if err != nil {
		return err
	}

	if account.Properties == nil ||
		account.Properties.PrimaryEndpoints == nil ||
		account.Properties.PrimaryEndpoints.Blob == nil {
		return fmt.Errorf("storage account %s has no blob endpoint", *d.config.Configuration.StorageAccountName)
	}

	d.outputs.storageBlobEndpoint = *account.Properties.PrimaryEndpoints.Blob
	return nil
}

func (d *deployer) writeEnvFile() error {
	d.log.Infof("writing %s", d.envFile)
	return godotenv.Write(map[string]string{
		env.APIMGatewayURLEnvVar:          d.outputs.apimGatewayURL,
		env.APIMSubscriptionKeyEnvVar:     d.outputs.subscriptionKey,
		env.OpenAIEndpoint1EnvVar:         d.outputs.openAIEndpoint1,
		env.OpenAIEndpoint2EnvVar:         d.outputs.openAIEndpoint2,
		env.OpenAIModelDeploymentEnvVar:   *d.config.Configuration.ModelName,
		env.OpenAIAPIVersionEnvVar:        *d.config.Configuration.OpenAIAPIVersion,
		env.StorageBlobEndpointEnvVar:     d.outputs.storageBlobEndpoint,
		env.SearchEndpointEnvVar:          d.outputs.searchEndpoint,
		env.SearchIndexNameEnvVar:         *d.config.Configuration.SearchIndexName,
		env.ProjectConnectionStringEnvVar: d.outputs.projectConnectionString,
	}, d.envFile)
}
