package armmachinelearning

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/machinelearning/armmachinelearning/v4"
)

// WorkspacesClient is a minimal interface for azure WorkspacesClient
type WorkspacesClient interface {
	Get(ctx context.Context, resourceGroupName string, workspaceName string, options *armmachinelearning.WorkspacesClientGetOptions) (armmachinelearning.WorkspacesClientGetResponse, error)
}

type workspacesClient struct {
	*armmachinelearning.WorkspacesClient
}

var _ WorkspacesClient = &workspacesClient{}

// NewWorkspacesClient creates a new WorkspacesClient
func NewWorkspacesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (WorkspacesClient, error) {
	client, err := armmachinelearning.NewWorkspacesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &workspacesClient{
		WorkspacesClient: client,
	}, nil
}
