package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v3"
	"github.com/Azure/checkaccess-v2-go-sdk/client"
	"go.uber.org/mock/gomock"

	"github.com/Azure/ai-gateway-lab/pkg/env"
	mock_armauthorization "github.com/Azure/ai-gateway-lab/pkg/util/mocks/azureclient/azuresdk/armauthorization"
	mock_client "github.com/Azure/ai-gateway-lab/pkg/util/mocks/checkaccess"
	"github.com/Azure/ai-gateway-lab/pkg/util/rbac"
)

const (
	testPrincipalID = "22222222-2222-2222-2222-222222222222"
	testRGScope     = "/subscriptions/11111111-1111-1111-1111-111111111111/resourceGroups/ailab-rg"
)

func assignment(roleID, scope string) *armauthorization.RoleAssignment {
	return &armauthorization.RoleAssignment{
		Properties: &armauthorization.RoleAssignmentProperties{
			PrincipalID:      to.Ptr(testPrincipalID),
			RoleDefinitionID: to.Ptr("/subscriptions/11111111-1111-1111-1111-111111111111/providers/Microsoft.Authorization/roleDefinitions/" + roleID),
			Scope:            to.Ptr(scope),
		},
	}
}

// testerAssignments is the exact set of bindings the deployer grants a
// tester principal.
func testerAssignments() []*armauthorization.RoleAssignment {
	return []*armauthorization.RoleAssignment{
		assignment(rbac.RoleCognitiveServicesOpenAIUser, testRGScope+"/providers/Microsoft.CognitiveServices/accounts/ailab-aoai-eastus"),
		assignment(rbac.RoleCognitiveServicesOpenAIUser, testRGScope+"/providers/Microsoft.CognitiveServices/accounts/ailab-aoai-eastus2"),
		assignment(rbac.RoleStorageBlobDataContributor, testRGScope+"/providers/Microsoft.Storage/storageAccounts/ailabstorage"),
		assignment(rbac.RoleAzureAIDeveloper, testRGScope+"/providers/Microsoft.MachineLearningServices/workspaces/ailab-project"),
	}
}

func assignmentsPage(assignments []*armauthorization.RoleAssignment) *runtime.Pager[armauthorization.RoleAssignmentsClientListForScopeResponse] {
	return runtime.NewPager(runtime.PagingHandler[armauthorization.RoleAssignmentsClientListForScopeResponse]{
		More: func(armauthorization.RoleAssignmentsClientListForScopeResponse) bool { return false },
		Fetcher: func(ctx context.Context, _ *armauthorization.RoleAssignmentsClientListForScopeResponse) (armauthorization.RoleAssignmentsClientListForScopeResponse, error) {
			return armauthorization.RoleAssignmentsClientListForScopeResponse{
				RoleAssignmentListResult: armauthorization.RoleAssignmentListResult{
					Value: assignments,
				},
			}, nil
		},
	})
}

func TestRoles(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name        string
		assignments []*armauthorization.RoleAssignment
		wantErr     string
	}{
		{
			name:        "full tester table",
			assignments: testerAssignments(),
		},
		{
			name:        "missing storage binding",
			assignments: testerAssignments()[:2],
			wantErr:     "missing binding: Storage Blob Data Contributor @ Microsoft.Storage/storageAccounts (want 1, have 0)",
		},
		{
			name:        "only one openai binding",
			assignments: testerAssignments()[1:],
			wantErr:     "missing binding: Cognitive Services OpenAI User @ Microsoft.CognitiveServices/accounts (want 2, have 1)",
		},
		{
			name: "extra binding is tolerated",
			assignments: append(testerAssignments(),
				assignment(rbac.RoleSearchIndexDataContributor, testRGScope+"/providers/Microsoft.Search/searchServices/ailab-search"),
			),
		},
		{
			name: "subscription scoped assignment is ignored",
			assignments: append(testerAssignments()[:3],
				assignment(rbac.RoleAzureAIDeveloper, "/subscriptions/11111111-1111-1111-1111-111111111111"),
			),
			wantErr: "missing binding: Azure AI Developer @ Microsoft.MachineLearningServices/workspaces (want 1, have 0)",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			roleAssignments := mock_armauthorization.NewMockRoleAssignmentsClient(controller)
			roleAssignments.EXPECT().NewListForScopePager(testRGScope, gomock.Any()).Return(assignmentsPage(tt.assignments))

			c := testChecker(t, map[string]string{
				env.ProjectConnectionStringEnvVar: testConnectionString,
			})
			c.roleAssignments = roleAssignments

			err := c.Roles(ctx, testPrincipalID, false)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestRolesEffective(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name     string
		decision client.AccessDecision
		wantErr  string
	}{
		{
			name:     "allowed everywhere",
			decision: client.Allowed,
		},
		{
			name:     "denied by policy",
			decision: client.NotAllowed,
			wantErr:  "holds Cognitive Services OpenAI User but Microsoft.CognitiveServices/accounts/read is",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			roleAssignments := mock_armauthorization.NewMockRoleAssignmentsClient(controller)
			roleAssignments.EXPECT().NewListForScopePager(testRGScope, gomock.Any()).Return(assignmentsPage(testerAssignments()))

			pdp := mock_client.NewMockRemotePDPClient(controller)
			pdp.EXPECT().CheckAccess(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req client.AuthorizationRequest) (*client.AuthorizationDecisionResponse, error) {
					if req.Subject.Attributes.ObjectId != testPrincipalID {
						t.Errorf("got subject %q", req.Subject.Attributes.ObjectId)
					}
					return &client.AuthorizationDecisionResponse{
						Value: []client.AuthorizationDecision{
							{ActionId: req.Actions[0].Id, AccessDecision: tt.decision},
						},
					}, nil
				},
			).Times(4)

			c := testChecker(t, map[string]string{
				env.ProjectConnectionStringEnvVar: testConnectionString,
			})
			c.roleAssignments = roleAssignments
			c.pdp = pdp

			err := c.Roles(ctx, testPrincipalID, true)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error %v, want %q", err, tt.wantErr)
			}
		})
	}
}
