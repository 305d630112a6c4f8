package armapimanagement

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/apimanagement/armapimanagement/v3"
)

// SubscriptionClient is a minimal interface for azure SubscriptionClient
type SubscriptionClient interface {
	ListSecrets(ctx context.Context, resourceGroupName string, serviceName string, sid string, options *armapimanagement.SubscriptionClientListSecretsOptions) (armapimanagement.SubscriptionClientListSecretsResponse, error)
}

type subscriptionClient struct {
	*armapimanagement.SubscriptionClient
}

var _ SubscriptionClient = &subscriptionClient{}

// NewSubscriptionClient creates a new SubscriptionClient
func NewSubscriptionClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (SubscriptionClient, error) {
	client, err := armapimanagement.NewSubscriptionClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &subscriptionClient{
		SubscriptionClient: client,
	}, nil
}

// APIPolicyClient is a minimal interface for azure APIPolicyClient
type APIPolicyClient interface {
	CreateOrUpdate(ctx context.Context, resourceGroupName string, serviceName string, apiID string, policyID armapimanagement.PolicyIDName, parameters armapimanagement.PolicyContract, options *armapimanagement.APIPolicyClientCreateOrUpdateOptions) (armapimanagement.APIPolicyClientCreateOrUpdateResponse, error)
}

type apiPolicyClient struct {
	*armapimanagement.APIPolicyClient
}

var _ APIPolicyClient = &apiPolicyClient{}

// NewAPIPolicyClient creates a new APIPolicyClient
func NewAPIPolicyClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (APIPolicyClient, error) {
	client, err := armapimanagement.NewAPIPolicyClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &apiPolicyClient{
		APIPolicyClient: client,
	}, nil
}
