package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/apimanagement/armapimanagement/v3"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"

	"github.com/Azure/ai-gateway-lab/pkg/deploy/generator"
)

// GatewaySecretName is the vault secret under which the gateway subscription
// key is kept for operators who lose the env file.
const GatewaySecretName = "gateway-subscription-key"

// applyGatewayPolicy writes the load-balancing policy document at the scope
// of the OpenAI API.  The template cannot carry it: policy is its own
// resource whose rawxml payload is maintained next to the generator.
func (d *deployer) applyGatewayPolicy(ctx context.Context) error {
	d.log.Infof("applying policy to API %s", generator.APIName)
	_, err := d.apimpolicies.CreateOrUpdate(ctx, d.config.ResourceGroupName, *d.config.Configuration.APIMServiceName, generator.APIName, armapimanagement.PolicyIDNamePolicy, armapimanagement.PolicyContract{
		Properties: &armapimanagement.PolicyContractProperties{
			Format: to.Ptr(armapimanagement.PolicyContentFormatRawxml),
			Value:  to.Ptr(generator.GatewayPolicy),
		},
	}, nil)
	return err
}

func (d *deployer) fetchSubscriptionKey(ctx context.Context) error {
	secrets, err := d.apimsubscriptions.ListSecrets(ctx, d.config.ResourceGroupName, *d.config.Configuration.APIMServiceName, generator.SubscriptionName, nil)
	if err != nil {
		return err
	}

	if secrets.PrimaryKey == nil || *secrets.PrimaryKey == "" {
		return fmt.Errorf("subscription %s has no primary key", generator.SubscriptionName)
	}

	d.outputs.subscriptionKey = *secrets.PrimaryKey
	return nil
}

// saveSubscriptionKey stores the gateway key in the lab vault.  Best effort:
// the operator may not hold a vault data-plane role, and the key is in the
// env file either way.
func (d *deployer) saveSubscriptionKey(ctx context.Context) error {
	d.log.Infof("setting %s", GatewaySecretName)
	_, err := d.secrets.SetSecret(ctx, GatewaySecretName, azsecrets.SetSecretParameters{
		Value: to.Ptr(d.outputs.subscriptionKey),
	}, nil)
	if err != nil {
		d.log.Warnf("could not store secret %s: %v", GatewaySecretName, err)
	}

	return nil
}
