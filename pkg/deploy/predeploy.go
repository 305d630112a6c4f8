package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"time"

	mgmtfeatures "github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-07-01/features"
	"k8s.io/apimachinery/pkg/util/wait"
)

// labProviders are the resource providers the six templates deploy into.
// The original lab relied on the Azure CLI registering these implicitly.
var labProviders = []string{
	"Microsoft.ApiManagement",
	"Microsoft.Authorization",
	"Microsoft.CognitiveServices",
	"Microsoft.KeyVault",
	"Microsoft.MachineLearningServices",
	"Microsoft.Search",
	"Microsoft.Storage",
}

// PreDeploy creates the target resource group and makes sure every provider
// the lab needs is registered on the subscription.
func (d *deployer) PreDeploy(ctx context.Context) error {
	d.log.Infof("deploying rg %s in %s", d.config.ResourceGroupName, d.config.Location)
	_, err := d.groups.CreateOrUpdate(ctx, d.config.ResourceGroupName, mgmtfeatures.ResourceGroup{
		Location: &d.config.Location,
	})
	if err != nil {
		return err
	}

	return d.registerProviders(ctx)
}

func (d *deployer) registerProviders(ctx context.Context) error {
	providers, err := d.providers.List(ctx, nil, "")
	if err != nil {
		return err
	}

	providerMap := make(map[string]mgmtfeatures.Provider, len(providers))
	for _, provider := range providers {
		providerMap[*provider.Namespace] = provider
	}

	var pending []string
	for _, provider := range labProviders {
		if isRegistered(providerMap[provider]) {
			continue
		}

		d.log.Infof("registering provider %s", provider)
		_, err = d.providers.Register(ctx, provider)
		if err != nil {
			return err
		}

		pending = append(pending, provider)
	}

	if len(pending) == 0 {
		return nil
	}

	d.log.Infof("waiting for %d provider registrations", len(pending))
	return wait.PollUntilContextTimeout(ctx, 10*time.Second, 30*time.Minute, true, func(pollCtx context.Context) (bool, error) {
		for _, provider := range pending {
			p, err := d.providers.Get(pollCtx, provider, "")
			if err != nil {
				return false, err
			}

			if !isRegistered(p) {
				return false, nil
			}
		}

		return true, nil
	})
}

func isRegistered(provider mgmtfeatures.Provider) bool {
	return provider.RegistrationState != nil && *provider.RegistrationState == "Registered"
}
