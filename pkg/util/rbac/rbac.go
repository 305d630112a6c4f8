package rbac

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	mgmtauthorization "github.com/Azure/azure-sdk-for-go/services/preview/authorization/mgmt/2018-09-01-preview/authorization"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
	"github.com/Azure/ai-gateway-lab/pkg/util/pointerutils"
)

const (
	RoleAzureAIDeveloper            = "64702f94-c441-49e6-a78b-ef80e0188fee"
	RoleCognitiveServicesOpenAIUser = "5e0bd9bd-7b93-4f28-af87-19fc36ad61bd"
	RoleSearchIndexDataContributor  = "8ebe5a00-799e-43f5-93ac-243d3dce84a7"
	RoleSearchServiceContributor    = "7ca78c08-252a-4471-8644-bb5ff32d4ba0"
	RoleStorageBlobDataContributor  = "ba92f5b4-2d11-453d-a403-e96b0029c9fe"
	RoleStorageBlobDataReader       = "2a2b9908-6ea1-4ae2-8e65-a410df84e7d1"
)

// ResourceRoleAssignment returns a Resource granting roleID on the resource of
// type resourceType with name resourceName to the service principal spID.
// Arguments resourceName and spID must be valid ARM expressions, e.g. "'foo'"
// or "concat('foo')".  The assignment name is derived with guid() from the
// (scope, principal, role) triple so that redeployments converge instead of
// erroring with RoleAssignmentExists.
func ResourceRoleAssignment(roleID, spID, resourceType, resourceName string, condition ...interface{}) *arm.Resource {
	resourceID := "resourceId('" + resourceType + "', " + resourceName + ")"

	return ResourceRoleAssignmentWithName(roleID, spID, resourceType, resourceName, "concat("+resourceName+", '/Microsoft.Authorization/', guid("+resourceID+", "+spID+", '"+roleID+"'))", condition...)
}

// ResourceRoleAssignmentWithName is ResourceRoleAssignment with an explicit
// assignment name, which must also be a valid ARM expression.
func ResourceRoleAssignmentWithName(roleID, spID, resourceType, resourceName, name string, condition ...interface{}) *arm.Resource {
	return resourceRoleAssignmentWithDetails(roleID, spID, resourceType, resourceName, name, mgmtauthorization.ServicePrincipal, condition...)
}

// ResourceRoleAssignmentToPrincipal is ResourceRoleAssignment with a caller
// supplied principal type.  Managed identities are always service principals;
// a lab tester may be a user, a group or a service principal, so the type
// arrives as an ARM expression too.
func ResourceRoleAssignmentToPrincipal(roleID, spID, resourceType, resourceName string, principalType mgmtauthorization.PrincipalType, condition ...interface{}) *arm.Resource {
	resourceID := "resourceId('" + resourceType + "', " + resourceName + ")"

	return resourceRoleAssignmentWithDetails(roleID, spID, resourceType, resourceName, "concat("+resourceName+", '/Microsoft.Authorization/', guid("+resourceID+", "+spID+", '"+roleID+"'))", principalType, condition...)
}

// The assignments produced here carry no dependsOn: every target resource is
// provisioned by an earlier deployment, never by the template holding the
// assignment.
func resourceRoleAssignmentWithDetails(roleID, spID, resourceType, resourceName, name string, principalType mgmtauthorization.PrincipalType, condition ...interface{}) *arm.Resource {
	resourceID := "resourceId('" + resourceType + "', " + resourceName + ")"

	var roleDefinitionID string
	if strings.HasPrefix(roleID, "parameters") {
		roleDefinitionID = "[subscriptionResourceId('Microsoft.Authorization/roleDefinitions', " + roleID + ")]"
	} else {
		roleDefinitionID = "[subscriptionResourceId('Microsoft.Authorization/roleDefinitions', '" + roleID + "')]"
	}

	r := &arm.Resource{
		Resource: mgmtauthorization.RoleAssignment{
			Name: pointerutils.ToPtr("[" + name + "]"),
			Type: pointerutils.ToPtr(resourceType + "/providers/roleAssignments"),
			RoleAssignmentPropertiesWithScope: &mgmtauthorization.RoleAssignmentPropertiesWithScope{
				Scope:            pointerutils.ToPtr("[" + resourceID + "]"),
				RoleDefinitionID: pointerutils.ToPtr(roleDefinitionID),
				PrincipalID:      pointerutils.ToPtr("[" + spID + "]"),
				PrincipalType:    principalType,
			},
		},
		APIVersion: azureclient.APIVersion("Microsoft.Authorization"),
	}

	if len(condition) > 0 {
		r.Condition = condition[0]
	}

	return r
}
