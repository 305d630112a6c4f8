package armkeyvault

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
)

// VaultsClient is a minimal interface for azure VaultsClient
type VaultsClient interface {
	GetDeleted(ctx context.Context, vaultName string, location string, options *armkeyvault.VaultsClientGetDeletedOptions) (armkeyvault.VaultsClientGetDeletedResponse, error)
	PurgeDeletedAndWait(ctx context.Context, vaultName string, location string, options *armkeyvault.VaultsClientBeginPurgeDeletedOptions) error
}

type vaultsClient struct {
	*armkeyvault.VaultsClient
}

var _ VaultsClient = &vaultsClient{}

// NewVaultsClient creates a new VaultsClient
func NewVaultsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (VaultsClient, error) {
	clientFactory, err := armkeyvault.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &vaultsClient{VaultsClient: clientFactory.NewVaultsClient()}, nil
}

func (c *vaultsClient) PurgeDeletedAndWait(ctx context.Context, vaultName string, location string, options *armkeyvault.VaultsClientBeginPurgeDeletedOptions) error {
	poller, err := c.BeginPurgeDeleted(ctx, vaultName, location, options)
	if err != nil {
		return err
	}

	_, err = poller.PollUntilDone(ctx, nil)
	return err
}
