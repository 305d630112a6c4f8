package armauthorization

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v3"
)

// RoleAssignmentsClient is a minimal interface for azure RoleAssignmentsClient
type RoleAssignmentsClient interface {
	NewListForScopePager(scope string, options *armauthorization.RoleAssignmentsClientListForScopeOptions) *runtime.Pager[armauthorization.RoleAssignmentsClientListForScopeResponse]
}

type roleAssignmentsClient struct {
	*armauthorization.RoleAssignmentsClient
}

var _ RoleAssignmentsClient = &roleAssignmentsClient{}

// NewRoleAssignmentsClient creates a new RoleAssignmentsClient
func NewRoleAssignmentsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (RoleAssignmentsClient, error) {
	client, err := armauthorization.NewRoleAssignmentsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &roleAssignmentsClient{
		RoleAssignmentsClient: client,
	}, nil
}

// RoleDefinitionsClient is a minimal interface for azure RoleDefinitionsClient
type RoleDefinitionsClient interface {
	GetByID(ctx context.Context, roleDefinitionID string, options *armauthorization.RoleDefinitionsClientGetByIDOptions) (armauthorization.RoleDefinitionsClientGetByIDResponse, error)
}

type roleDefinitionsClient struct {
	*armauthorization.RoleDefinitionsClient
}

var _ RoleDefinitionsClient = &roleDefinitionsClient{}

// NewRoleDefinitionsClient creates a new RoleDefinitionsClient
func NewRoleDefinitionsClient(credential azcore.TokenCredential, options *arm.ClientOptions) (RoleDefinitionsClient, error) {
	client, err := armauthorization.NewRoleDefinitionsClient(credential, options)
	if err != nil {
		return nil, err
	}

	return &roleDefinitionsClient{
		RoleDefinitionsClient: client,
	}, nil
}
