package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v3"
	"github.com/Azure/checkaccess-v2-go-sdk/client"
	"github.com/hashicorp/go-multierror"

	"github.com/Azure/ai-gateway-lab/pkg/env"
	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/rbac"
)

// binding is a role assignment reduced to what the tester table is keyed
// on: which role, on which kind of resource.
type binding struct {
	roleID       string
	resourceType string
}

func (b binding) String() string {
	return fmt.Sprintf("%s @ %s", roleName(b.roleID), b.resourceType)
}

// testerBindings is the role table the deployer grants a tester principal:
// exactly four bindings, with the OpenAI role appearing once per regional
// backend.
var testerBindings = map[binding]int{
	{rbac.RoleCognitiveServicesOpenAIUser, "Microsoft.CognitiveServices/accounts"}: 2,
	{rbac.RoleStorageBlobDataContributor, "Microsoft.Storage/storageAccounts"}:     1,
	{rbac.RoleAzureAIDeveloper, "Microsoft.MachineLearningServices/workspaces"}:    1,
}

var roleNames = map[string]string{
	rbac.RoleAzureAIDeveloper:            "Azure AI Developer",
	rbac.RoleCognitiveServicesOpenAIUser: "Cognitive Services OpenAI User",
	rbac.RoleSearchIndexDataContributor:  "Search Index Data Contributor",
	rbac.RoleSearchServiceContributor:    "Search Service Contributor",
	rbac.RoleStorageBlobDataContributor:  "Storage Blob Data Contributor",
	rbac.RoleStorageBlobDataReader:       "Storage Blob Data Reader",
}

func roleName(roleID string) string {
	if name, ok := roleNames[roleID]; ok {
		return name
	}
	return roleID
}

// Roles enumerates the role assignments principalID holds within the lab
// resource group and diffs them against the tester table.  With effective
// set, each held binding is additionally evaluated through the CheckAccess
// PDP, which sees group membership and deny assignments that a plain
// enumeration misses.
func (c *checker) Roles(ctx context.Context, principalID string, effective bool) error {
	if principalID == "" {
		return fmt.Errorf("no principal ID given")
	}

	if err := c.env.ValidateVars(env.ProjectConnectionStringEnvVar); err != nil {
		return err
	}

	scope := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", c.settings.project.SubscriptionID, c.settings.project.ResourceGroup)

	held := map[binding]int{}
	scopes := map[binding][]string{}

	pager := c.roleAssignments.NewListForScopePager(scope, &armauthorization.RoleAssignmentsClientListForScopeOptions{
		Filter: to.Ptr(fmt.Sprintf("principalId eq '%s'", principalID)),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return err
		}

		for _, assignment := range page.Value {
			if assignment.Properties == nil ||
				assignment.Properties.RoleDefinitionID == nil ||
				assignment.Properties.Scope == nil {
				continue
			}

			resource, err := arm.ParseArmResourceId(*assignment.Properties.Scope)
			if err != nil {
				// subscription- or group-scoped assignments are
				// outside the tester table
				continue
			}

			b := binding{
				roleID:       roleDefinitionGUID(*assignment.Properties.RoleDefinitionID),
				resourceType: resource.Provider + "/" + resource.ResourceType,
			}
			held[b]++
			scopes[b] = append(scopes[b], *assignment.Properties.Scope)
		}
	}

	var result *multierror.Error

	for _, b := range sortedBindings(testerBindings) {
		want := testerBindings[b]
		if held[b] < want {
			result = multierror.Append(result, fmt.Errorf("missing binding: %s (want %d, have %d)", b, want, held[b]))
			continue
		}
		c.log.Infof("held: %s x%d", b, held[b])
	}

	for _, b := range sortedBindings(held) {
		if _, expected := testerBindings[b]; !expected {
			c.log.Warnf("extra binding beyond the tester table: %s x%d", b, held[b])
		}
	}

	if effective {
		for _, b := range sortedBindings(held) {
			for _, s := range scopes[b] {
				err := c.checkEffectiveAccess(ctx, principalID, b, s)
				if err != nil {
					result = multierror.Append(result, err)
				}
			}
		}
	}

	return result.ErrorOrNil()
}

// representativeActions maps a resource type to an action its lab role
// must allow, used to confirm an assignment actually takes effect.
var representativeActions = map[string]client.ActionInfo{
	"Microsoft.CognitiveServices/accounts":         {Id: "Microsoft.CognitiveServices/accounts/read"},
	"Microsoft.Storage/storageAccounts":            {Id: "Microsoft.Storage/storageAccounts/blobServices/containers/blobs/read", IsDataAction: true},
	"Microsoft.MachineLearningServices/workspaces": {Id: "Microsoft.MachineLearningServices/workspaces/connections/read"},
}

func (c *checker) checkEffectiveAccess(ctx context.Context, principalID string, b binding, scope string) error {
	action, ok := representativeActions[b.resourceType]
	if !ok {
		return nil
	}

	decision, err := c.pdp.CheckAccess(ctx, client.AuthorizationRequest{
		Subject: client.SubjectInfo{
			Attributes: client.SubjectAttributes{
				ObjectId: principalID,
			},
		},
		Actions: []client.ActionInfo{action},
		Resource: client.ResourceInfo{
			Id: scope,
		},
	})
	if err != nil {
		return fmt.Errorf("CheckAccess %s: %w", scope, err)
	}

	for _, value := range decision.Value {
		if value.AccessDecision != client.Allowed {
			return fmt.Errorf("%s holds %s but %s is %s on %s", principalID, roleName(b.roleID), value.ActionId, value.AccessDecision, scope)
		}
	}

	c.log.Infof("effective: %s allowed on %s", action.Id, scope)
	return nil
}

// roleDefinitionGUID trims a fully qualified role definition ID down to its
// trailing GUID, which is what the rbac package's constants carry.
func roleDefinitionGUID(roleDefinitionID string) string {
	return strings.ToLower(roleDefinitionID[strings.LastIndexByte(roleDefinitionID, '/')+1:])
}

func sortedBindings(m map[binding]int) []binding {
	bindings := make([]binding, 0, len(m))
	for b := range m {
		bindings = append(bindings, b)
	}
	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].resourceType != bindings[j].resourceType {
			return bindings[i].resourceType < bindings[j].resourceType
		}
		return bindings[i].roleID < bindings[j].roleID
	})
	return bindings
}
