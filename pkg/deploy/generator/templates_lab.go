package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
)

func (g *generator) openAITemplate() *arm.Template {
	t := templateStanza()

	params := []string{
		"location",
		"modelCapacity",
		"modelName",
		"modelSKU",
		"modelVersion",
		"openAIName",
	}

	for _, param := range params {
		p := &arm.TemplateParameter{Type: "string"}
		switch param {
		case "modelCapacity":
			p.Type = "int"
			p.DefaultValue = 50
		case "modelName":
			p.DefaultValue = "gpt-4o"
		case "modelSKU":
			p.DefaultValue = "GlobalStandard"
		case "modelVersion":
			p.DefaultValue = "2024-11-20"
		}
		t.Parameters[param] = p
	}

	t.Resources = append(t.Resources,
		g.openAIAccount(),
		g.openAIModelDeployment(),
	)

	t.Outputs = map[string]*arm.Output{
		"openAIName": {
			Type:  "string",
			Value: "[parameters('openAIName')]",
		},
		"openAIEndpoint": {
			Type:  "string",
			Value: fmt.Sprintf("[reference(resourceId('Microsoft.CognitiveServices/accounts', parameters('openAIName')), '%s').endpoint]", azureclient.APIVersion("Microsoft.CognitiveServices")),
		},
		"openAIResourceId": {
			Type:  "string",
			Value: "[resourceId('Microsoft.CognitiveServices/accounts', parameters('openAIName'))]",
		},
	}

	return t
}

func (g *generator) storageTemplate() *arm.Template {
	t := templateStanza()

	params := []string{
		"containerName",
		"location",
		"storageAccountName",
	}

	for _, param := range params {
		p := &arm.TemplateParameter{Type: "string"}
		switch param {
		case "containerName":
			p.DefaultValue = "files"
		}
		t.Parameters[param] = p
	}

	t.Resources = append(t.Resources,
		g.labStorageAccount(),
		g.labStorageContainer(),
	)

	t.Outputs = map[string]*arm.Output{
		"storageAccountName": {
			Type:  "string",
			Value: "[parameters('storageAccountName')]",
		},
		"storageAccountId": {
			Type:  "string",
			Value: "[resourceId('Microsoft.Storage/storageAccounts', parameters('storageAccountName'))]",
		},
		"storageBlobEndpoint": {
			Type:  "string",
			Value: fmt.Sprintf("[reference(resourceId('Microsoft.Storage/storageAccounts', parameters('storageAccountName')), '%s').primaryEndpoints.blob]", azureclient.APIVersion("Microsoft.Storage")),
		},
		"storageContainerName": {
			Type:  "string",
			Value: "[parameters('containerName')]",
		},
	}

	return t
}

func (g *generator) searchTemplate() *arm.Template {
	t := templateStanza()

	params := []string{
		"location",
		"searchSKU",
		"searchServiceName",
	}

	for _, param := range params {
		p := &arm.TemplateParameter{Type: "string"}
		switch param {
		case "searchSKU":
			p.DefaultValue = "basic"
		}
		t.Parameters[param] = p
	}

	t.Resources = append(t.Resources,
		g.searchService(),
	)

	t.Outputs = map[string]*arm.Output{
		"searchServiceName": {
			Type:  "string",
			Value: "[parameters('searchServiceName')]",
		},
		"searchServiceId": {
			Type:  "string",
			Value: "[resourceId('Microsoft.Search/searchServices', parameters('searchServiceName'))]",
		},
		"searchEndpoint": {
			Type:  "string",
			Value: "[concat('https://', parameters('searchServiceName'), '.search.windows.net')]",
		},
		"searchPrincipalId": {
			Type:  "string",
			Value: fmt.Sprintf("[reference(resourceId('Microsoft.Search/searchServices', parameters('searchServiceName')), '%s', 'Full').identity.principalId]", azureclient.APIVersion("Microsoft.Search")),
		},
	}

	return t
}

func (g *generator) gatewayTemplate() *arm.Template {
	t := templateStanza()

	params := []string{
		"apimSKU",
		"apimServiceName",
		"location",
		"openAIEndpoint1",
		"openAIEndpoint2",
		"openAIName1",
		"openAIName2",
		"publisherEmail",
		"publisherName",
	}

	for _, param := range params {
		p := &arm.TemplateParameter{Type: "string"}
		switch param {
		case "apimSKU":
			p.DefaultValue = "StandardV2"
		}
		t.Parameters[param] = p
	}

	t.Resources = append(t.Resources, g.gatewayService())
	t.Resources = append(t.Resources, g.gatewayBackends()...)
	t.Resources = append(t.Resources, g.gatewayAPI())
	t.Resources = append(t.Resources, g.gatewayOperations()...)
	t.Resources = append(t.Resources, g.gatewaySubscription())

	t.Outputs = map[string]*arm.Output{
		"apimServiceName": {
			Type:  "string",
			Value: "[parameters('apimServiceName')]",
		},
		"apimGatewayURL": {
			Type:  "string",
			Value: fmt.Sprintf("[reference(resourceId('Microsoft.ApiManagement/service', parameters('apimServiceName')), '%s').gatewayUrl]", azureclient.APIVersion("Microsoft.ApiManagement")),
		},
		"apimPrincipalId": {
			Type:  "string",
			Value: fmt.Sprintf("[reference(resourceId('Microsoft.ApiManagement/service', parameters('apimServiceName')), '%s', 'Full').identity.principalId]", azureclient.APIVersion("Microsoft.ApiManagement")),
		},
		"apimSubscriptionName": {
			Type:  "string",
			Value: SubscriptionName,
		},
	}

	return t
}

func (g *generator) workspaceTemplate() *arm.Template {
	t := templateStanza()

	params := []string{
		"hubName",
		"keyVaultName",
		"location",
		"openAIEndpoint1",
		"openAIEndpoint2",
		"openAIName1",
		"openAIName2",
		"openAIResourceId1",
		"openAIResourceId2",
		"projectName",
		"searchEndpoint",
		"searchServiceId",
		"searchServiceName",
		"storageAccountId",
	}

	for _, param := range params {
		t.Parameters[param] = &arm.TemplateParameter{Type: "string"}
	}

	t.Resources = append(t.Resources,
		g.labKeyvault(),
		g.aiHub(),
		g.aiProject(),
	)
	t.Resources = append(t.Resources, g.hubConnections()...)

	t.Outputs = map[string]*arm.Output{
		"keyVaultName": {
			Type:  "string",
			Value: "[parameters('keyVaultName')]",
		},
		"keyVaultURI": {
			Type:  "string",
			Value: fmt.Sprintf("[reference(resourceId('Microsoft.KeyVault/vaults', parameters('keyVaultName')), '%s').vaultUri]", azureclient.APIVersion("Microsoft.KeyVault")),
		},
		"hubName": {
			Type:  "string",
			Value: "[parameters('hubName')]",
		},
		"hubPrincipalId": {
			Type:  "string",
			Value: fmt.Sprintf("[reference(resourceId('Microsoft.MachineLearningServices/workspaces', parameters('hubName')), '%s', 'Full').identity.principalId]", azureclient.APIVersion("Microsoft.MachineLearningServices")),
		},
		"projectName": {
			Type:  "string",
			Value: "[parameters('projectName')]",
		},
		"projectPrincipalId": {
			Type:  "string",
			Value: fmt.Sprintf("[reference(resourceId('Microsoft.MachineLearningServices/workspaces', parameters('projectName')), '%s', 'Full').identity.principalId]", azureclient.APIVersion("Microsoft.MachineLearningServices")),
		},
		"projectConnectionString": {
			Type:  "string",
			Value: "[concat(parameters('location'), '.api.azureml.ms;', subscription().subscriptionId, ';', resourceGroup().name, ';', parameters('projectName'))]",
		},
	}

	return t
}

func (g *generator) rbacTemplate() *arm.Template {
	t := templateStanza()

	params := []string{
		"apimPrincipalId",
		"hubPrincipalId",
		"openAIName1",
		"openAIName2",
		"projectName",
		"projectPrincipalId",
		"searchPrincipalId",
		"searchServiceName",
		"storageAccountName",
		"testerPrincipalId",
		"testerPrincipalType",
	}

	for _, param := range params {
		p := &arm.TemplateParameter{Type: "string"}
		switch param {
		case "testerPrincipalId":
			p.DefaultValue = ""
		case "testerPrincipalType":
			p.DefaultValue = "User"
			p.AllowedValues = []interface{}{"User", "ServicePrincipal", "Group"}
		}
		t.Parameters[param] = p
	}

	t.Resources = append(t.Resources, g.testerRoleAssignments()...)
	t.Resources = append(t.Resources, g.gatewayRoleAssignments()...)
	t.Resources = append(t.Resources, g.hubRoleAssignments()...)
	t.Resources = append(t.Resources, g.projectRoleAssignments()...)
	t.Resources = append(t.Resources, g.searchRoleAssignments()...)

	return t
}
