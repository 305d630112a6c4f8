package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cognitiveservices/armcognitiveservices"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
)

// openAIAccount provisions one regional Azure OpenAI account.  Local auth is
// off: the gateway reaches the account with its managed identity and testers
// come in with Entra tokens, so account keys never need to exist.
func (g *generator) openAIAccount() *arm.Resource {
	return &arm.Resource{
		Resource: &armcognitiveservices.Account{
			Kind: to.Ptr("OpenAI"),
			SKU: &armcognitiveservices.SKU{
				Name: to.Ptr("S0"),
			},
			Properties: &armcognitiveservices.AccountProperties{
				CustomSubDomainName: to.Ptr("[parameters('openAIName')]"),
				DisableLocalAuth:    to.Ptr(true),
				PublicNetworkAccess: to.Ptr(armcognitiveservices.PublicNetworkAccessEnabled),
			},
			Name:     to.Ptr("[parameters('openAIName')]"),
			Type:     to.Ptr("Microsoft.CognitiveServices/accounts"),
			Location: to.Ptr("[parameters('location')]"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.CognitiveServices"),
	}
}

func (g *generator) openAIModelDeployment() *arm.Resource {
	return &arm.Resource{
		Resource: &armcognitiveservices.Deployment{
			SKU: &armcognitiveservices.SKU{
				Name:     to.Ptr("[parameters('modelSKU')]"),
				Capacity: to.Ptr(int32(1337)), // replaced in templateFixup
			},
			Properties: &armcognitiveservices.DeploymentProperties{
				Model: &armcognitiveservices.DeploymentModel{
					Format:  to.Ptr("OpenAI"),
					Name:    to.Ptr("[parameters('modelName')]"),
					Version: to.Ptr("[parameters('modelVersion')]"),
				},
			},
			Name: to.Ptr("[concat(parameters('openAIName'), '/', parameters('modelName'))]"),
			Type: to.Ptr("Microsoft.CognitiveServices/accounts/deployments"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.CognitiveServices"),
		DependsOn: []string{
			"[resourceId('Microsoft.CognitiveServices/accounts', parameters('openAIName'))]",
		},
	}
}
