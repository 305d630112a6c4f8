package azblob

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// BlobsClient is a minimal interface for Azure BlobsClient
type BlobsClient interface {
	NewListContainersPager(o *azblob.ListContainersOptions) *runtime.Pager[azblob.ListContainersResponse]
}

type blobsClient struct {
	*azblob.Client
}

var _ BlobsClient = &blobsClient{}

// NewBlobsClientUsingEntra creates a new BlobsClient using Microsoft Entra credentials
func NewBlobsClientUsingEntra(serviceURL string, credential azcore.TokenCredential, options *arm.ClientOptions) (BlobsClient, error) {
	azBlobOptions := &azblob.ClientOptions{
		ClientOptions: (*options).ClientOptions,
	}
	client, err := azblob.NewClient(serviceURL, credential, azBlobOptions)
	if err != nil {
		return nil, err
	}

	return &blobsClient{
		Client: client,
	}, nil
}
