package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/machinelearning/armmachinelearning/v4"
	"go.uber.org/mock/gomock"

	"github.com/Azure/ai-gateway-lab/pkg/env"
	mock_armmachinelearning "github.com/Azure/ai-gateway-lab/pkg/util/mocks/azureclient/azuresdk/armmachinelearning"
)

const (
	testConnectionString = "eastus.api.azureml.ms;11111111-1111-1111-1111-111111111111;ailab-rg;ailab-project"
	testHubID            = "/subscriptions/11111111-1111-1111-1111-111111111111/resourceGroups/ailab-rg/providers/Microsoft.MachineLearningServices/workspaces/ailab-hub"
)

func connectionsPage(names ...string) *runtime.Pager[armmachinelearning.WorkspaceConnectionsClientListResponse] {
	connections := make([]*armmachinelearning.WorkspaceConnectionPropertiesV2BasicResource, 0, len(names))
	for _, name := range names {
		connections = append(connections, &armmachinelearning.WorkspaceConnectionPropertiesV2BasicResource{
			Name: to.Ptr(name),
		})
	}

	return runtime.NewPager(runtime.PagingHandler[armmachinelearning.WorkspaceConnectionsClientListResponse]{
		More: func(armmachinelearning.WorkspaceConnectionsClientListResponse) bool { return false },
		Fetcher: func(ctx context.Context, _ *armmachinelearning.WorkspaceConnectionsClientListResponse) (armmachinelearning.WorkspaceConnectionsClientListResponse, error) {
			return armmachinelearning.WorkspaceConnectionsClientListResponse{
				WorkspaceConnectionPropertiesV2BasicResourceArmPaginatedResult: armmachinelearning.WorkspaceConnectionPropertiesV2BasicResourceArmPaginatedResult{
					Value: connections,
				},
			}, nil
		},
	})
}

func TestProbeProject(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name        string
		hubID       *string
		connections []string
		wantErr     string
	}{
		{
			name:        "all connections shared",
			hubID:       to.Ptr(testHubID),
			connections: []string{"aoai-primary", "aoai-secondary", "search"},
		},
		{
			name:        "missing search connection",
			hubID:       to.Ptr(testHubID),
			connections: []string{"aoai-primary", "aoai-secondary"},
			wantErr:     `hub ailab-hub has no connection "search"`,
		},
		{
			name:    "workspace is not a project",
			wantErr: "workspace ailab-project is not a project (no hub reference)",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			workspaces := mock_armmachinelearning.NewMockWorkspacesClient(controller)
			workspaces.EXPECT().Get(gomock.Any(), "ailab-rg", "ailab-project", nil).Return(armmachinelearning.WorkspacesClientGetResponse{
				Workspace: armmachinelearning.Workspace{
					Properties: &armmachinelearning.WorkspaceProperties{
						HubResourceID: tt.hubID,
					},
				},
			}, nil)

			connections := mock_armmachinelearning.NewMockWorkspaceConnectionsClient(controller)
			if tt.hubID != nil {
				connections.EXPECT().NewListPager("ailab-rg", "ailab-hub", nil).Return(connectionsPage(tt.connections...))
			}

			c := testChecker(t, map[string]string{
				env.ProjectConnectionStringEnvVar: testConnectionString,
			})
			c.workspaces = workspaces
			c.connections = connections

			err := c.probeProject(ctx)
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
