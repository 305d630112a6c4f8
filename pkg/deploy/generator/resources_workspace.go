package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armmachinelearning "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/machinelearning/armmachinelearning/v4"
	mgmtkeyvault "github.com/Azure/azure-sdk-for-go/services/keyvault/mgmt/2019-09-01/keyvault"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
)

// Hub connection names.  The check suite verifies these exist on the
// deployed hub.
const (
	ConnectionPrimary   = "aoai-primary"
	ConnectionSecondary = "aoai-secondary"
	ConnectionSearch    = "search"
)

func (g *generator) labKeyvault() *arm.Resource {
	return &arm.Resource{
		Resource: &mgmtkeyvault.Vault{
			Properties: &mgmtkeyvault.VaultProperties{
				TenantID: &tenantUUIDHack,
				Sku: &mgmtkeyvault.Sku{
					Name:   mgmtkeyvault.Standard,
					Family: to.Ptr("A"),
				},
				EnableRbacAuthorization: to.Ptr(true),
				EnableSoftDelete:        to.Ptr(true),
				AccessPolicies:          &[]mgmtkeyvault.AccessPolicyEntry{},
			},
			Name:     to.Ptr("[parameters('keyVaultName')]"),
			Type:     to.Ptr("Microsoft.KeyVault/vaults"),
			Location: to.Ptr("[parameters('location')]"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.KeyVault"),
	}
}

// aiHub is the hub workspace both OpenAI accounts and the search service
// hang off.  The project inherits storage, vault and connections from it.
func (g *generator) aiHub() *arm.Resource {
	return &arm.Resource{
		Resource: &armmachinelearning.Workspace{
			Kind: to.Ptr("Hub"),
			Identity: &armmachinelearning.ManagedServiceIdentity{
				Type: to.Ptr(armmachinelearning.ManagedServiceIdentityTypeSystemAssigned),
			},
			Properties: &armmachinelearning.WorkspaceProperties{
				FriendlyName:        to.Ptr("[parameters('hubName')]"),
				StorageAccount:      to.Ptr("[parameters('storageAccountId')]"),
				KeyVault:            to.Ptr("[resourceId('Microsoft.KeyVault/vaults', parameters('keyVaultName'))]"),
				PublicNetworkAccess: to.Ptr(armmachinelearning.PublicNetworkAccessEnabled),
			},
			Name:     to.Ptr("[parameters('hubName')]"),
			Type:     to.Ptr("Microsoft.MachineLearningServices/workspaces"),
			Location: to.Ptr("[parameters('location')]"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.MachineLearningServices"),
		DependsOn: []string{
			"[resourceId('Microsoft.KeyVault/vaults', parameters('keyVaultName'))]",
		},
	}
}

func (g *generator) aiProject() *arm.Resource {
	return &arm.Resource{
		Resource: &armmachinelearning.Workspace{
			Kind: to.Ptr("Project"),
			Identity: &armmachinelearning.ManagedServiceIdentity{
				Type: to.Ptr(armmachinelearning.ManagedServiceIdentityTypeSystemAssigned),
			},
			Properties: &armmachinelearning.WorkspaceProperties{
				FriendlyName:        to.Ptr("[parameters('projectName')]"),
				HubResourceID:       to.Ptr("[resourceId('Microsoft.MachineLearningServices/workspaces', parameters('hubName'))]"),
				PublicNetworkAccess: to.Ptr(armmachinelearning.PublicNetworkAccessEnabled),
			},
			Name:     to.Ptr("[parameters('projectName')]"),
			Type:     to.Ptr("Microsoft.MachineLearningServices/workspaces"),
			Location: to.Ptr("[parameters('location')]"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.MachineLearningServices"),
		DependsOn: []string{
			"[resourceId('Microsoft.MachineLearningServices/workspaces', parameters('hubName'))]",
		},
	}
}

// hubConnections shares both OpenAI accounts and the search service with
// every project under the hub.  AAD auth only: no keys are exchanged, the
// caller's (or workspace's) identity must hold the data-plane roles from the
// RBAC template.
func (g *generator) hubConnections() []*arm.Resource {
	connections := []struct {
		name     string
		category armmachinelearning.ConnectionCategory
		target   string
		metadata map[string]*string
	}{
		{
			name:     ConnectionPrimary,
			category: armmachinelearning.ConnectionCategoryAzureOpenAI,
			target:   "[parameters('openAIEndpoint1')]",
			metadata: map[string]*string{
				"ApiType":    to.Ptr("Azure"),
				"ResourceId": to.Ptr("[parameters('openAIResourceId1')]"),
			},
		},
		{
			name:     ConnectionSecondary,
			category: armmachinelearning.ConnectionCategoryAzureOpenAI,
			target:   "[parameters('openAIEndpoint2')]",
			metadata: map[string]*string{
				"ApiType":    to.Ptr("Azure"),
				"ResourceId": to.Ptr("[parameters('openAIResourceId2')]"),
			},
		},
		{
			name:     ConnectionSearch,
			category: armmachinelearning.ConnectionCategoryCognitiveSearch,
			target:   "[parameters('searchEndpoint')]",
			metadata: map[string]*string{
				"ResourceId": to.Ptr("[parameters('searchServiceId')]"),
			},
		},
	}

	rs := make([]*arm.Resource, 0, len(connections))
	for _, connection := range connections {
		rs = append(rs, &arm.Resource{
			Resource: &armmachinelearning.WorkspaceConnectionPropertiesV2BasicResource{
				Properties: &armmachinelearning.AADAuthTypeWorkspaceConnectionProperties{
					AuthType:      to.Ptr(armmachinelearning.ConnectionAuthTypeAAD),
					Category:      to.Ptr(connection.category),
					Target:        to.Ptr(connection.target),
					IsSharedToAll: to.Ptr(true),
					Metadata:      connection.metadata,
				},
				Name: to.Ptr("[concat(parameters('hubName'), '/" + connection.name + "')]"),
				Type: to.Ptr("Microsoft.MachineLearningServices/workspaces/connections"),
			},
			APIVersion: azureclient.APIVersion("Microsoft.MachineLearningServices"),
			DependsOn: []string{
				"[resourceId('Microsoft.MachineLearningServices/workspaces', parameters('hubName'))]",
			},
		})
	}

	return rs
}
