package armmachinelearning

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/machinelearning/armmachinelearning/v4"
)

// WorkspaceConnectionsClient is a minimal interface for azure WorkspaceConnectionsClient
type WorkspaceConnectionsClient interface {
	NewListPager(resourceGroupName string, workspaceName string, options *armmachinelearning.WorkspaceConnectionsClientListOptions) *runtime.Pager[armmachinelearning.WorkspaceConnectionsClientListResponse]
}

type workspaceConnectionsClient struct {
	*armmachinelearning.WorkspaceConnectionsClient
}

var _ WorkspaceConnectionsClient = &workspaceConnectionsClient{}

// NewWorkspaceConnectionsClient creates a new WorkspaceConnectionsClient
func NewWorkspaceConnectionsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (WorkspaceConnectionsClient, error) {
	client, err := armmachinelearning.NewWorkspaceConnectionsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &workspaceConnectionsClient{
		WorkspaceConnectionsClient: client,
	}, nil
}
