package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	mgmtauthorization "github.com/Azure/azure-sdk-for-go/services/preview/authorization/mgmt/2018-09-01-preview/authorization"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/rbac"
)

const testerCondition = "[greater(length(parameters('testerPrincipalId')), 0)]"

// testerRoleAssignments grants the four minimum roles a lab user needs to
// exercise the responses API with BYO storage and search.  All four rows are
// conditional: a deployment without a tester principal still succeeds and
// grants nothing.
func (g *generator) testerRoleAssignments() []*arm.Resource {
	testerPrincipalType := mgmtauthorization.PrincipalType("[parameters('testerPrincipalType')]")

	return []*arm.Resource{
		rbac.ResourceRoleAssignmentToPrincipal(
			rbac.RoleCognitiveServicesOpenAIUser,
			"parameters('testerPrincipalId')",
			"Microsoft.CognitiveServices/accounts",
			"parameters('openAIName1')",
			testerPrincipalType,
			testerCondition,
		),
		rbac.ResourceRoleAssignmentToPrincipal(
			rbac.RoleCognitiveServicesOpenAIUser,
			"parameters('testerPrincipalId')",
			"Microsoft.CognitiveServices/accounts",
			"parameters('openAIName2')",
			testerPrincipalType,
			testerCondition,
		),
		rbac.ResourceRoleAssignmentToPrincipal(
			rbac.RoleStorageBlobDataContributor,
			"parameters('testerPrincipalId')",
			"Microsoft.Storage/storageAccounts",
			"parameters('storageAccountName')",
			testerPrincipalType,
			testerCondition,
		),
		rbac.ResourceRoleAssignmentToPrincipal(
			rbac.RoleAzureAIDeveloper,
			"parameters('testerPrincipalId')",
			"Microsoft.MachineLearningServices/workspaces",
			"parameters('projectName')",
			testerPrincipalType,
			testerCondition,
		),
	}
}

func (g *generator) gatewayRoleAssignments() []*arm.Resource {
	return []*arm.Resource{
		rbac.ResourceRoleAssignment(
			rbac.RoleCognitiveServicesOpenAIUser,
			"parameters('apimPrincipalId')",
			"Microsoft.CognitiveServices/accounts",
			"parameters('openAIName1')",
		),
		rbac.ResourceRoleAssignment(
			rbac.RoleCognitiveServicesOpenAIUser,
			"parameters('apimPrincipalId')",
			"Microsoft.CognitiveServices/accounts",
			"parameters('openAIName2')",
		),
	}
}

func (g *generator) hubRoleAssignments() []*arm.Resource {
	return []*arm.Resource{
		rbac.ResourceRoleAssignment(
			rbac.RoleStorageBlobDataContributor,
			"parameters('hubPrincipalId')",
			"Microsoft.Storage/storageAccounts",
			"parameters('storageAccountName')",
		),
	}
}

// projectRoleAssignments covers the project identity's own data-plane needs:
// both model backends, prompt/file storage, and index management on search.
func (g *generator) projectRoleAssignments() []*arm.Resource {
	return []*arm.Resource{
		rbac.ResourceRoleAssignment(
			rbac.RoleCognitiveServicesOpenAIUser,
			"parameters('projectPrincipalId')",
			"Microsoft.CognitiveServices/accounts",
			"parameters('openAIName1')",
		),
		rbac.ResourceRoleAssignment(
			rbac.RoleCognitiveServicesOpenAIUser,
			"parameters('projectPrincipalId')",
			"Microsoft.CognitiveServices/accounts",
			"parameters('openAIName2')",
		),
		rbac.ResourceRoleAssignment(
			rbac.RoleStorageBlobDataContributor,
			"parameters('projectPrincipalId')",
			"Microsoft.Storage/storageAccounts",
			"parameters('storageAccountName')",
		),
		rbac.ResourceRoleAssignment(
			rbac.RoleSearchIndexDataContributor,
			"parameters('projectPrincipalId')",
			"Microsoft.Search/searchServices",
			"parameters('searchServiceName')",
		),
		rbac.ResourceRoleAssignment(
			rbac.RoleSearchServiceContributor,
			"parameters('projectPrincipalId')",
			"Microsoft.Search/searchServices",
			"parameters('searchServiceName')",
		),
	}
}

func (g *generator) searchRoleAssignments() []*arm.Resource {
	return []*arm.Resource{
		rbac.ResourceRoleAssignment(
			rbac.RoleStorageBlobDataReader,
			"parameters('searchPrincipalId')",
			"Microsoft.Storage/storageAccounts",
			"parameters('storageAccountName')",
		),
	}
}
