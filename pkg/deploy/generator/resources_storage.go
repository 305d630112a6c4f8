package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	mgmtstorage "github.com/Azure/azure-sdk-for-go/services/storage/mgmt/2021-09-01/storage"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
)

// labStorageAccount is the BYO storage account the hub, project and search
// identities bind to.  Shared key access is off; everything data plane goes
// through Entra.
func (g *generator) labStorageAccount() *arm.Resource {
	return &arm.Resource{
		Resource: &mgmtstorage.Account{
			Kind: mgmtstorage.KindStorageV2,
			Sku: &mgmtstorage.Sku{
				Name: "Standard_LRS",
			},
			AccountProperties: &mgmtstorage.AccountProperties{
				AllowBlobPublicAccess:  to.Ptr(false),
				AllowSharedKeyAccess:   to.Ptr(false),
				EnableHTTPSTrafficOnly: to.Ptr(true),
				MinimumTLSVersion:      mgmtstorage.MinimumTLSVersionTLS12,
				AccessTier:             mgmtstorage.AccessTierHot,
			},
			Name:     to.Ptr("[parameters('storageAccountName')]"),
			Type:     to.Ptr("Microsoft.Storage/storageAccounts"),
			Location: to.Ptr("[parameters('location')]"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.Storage"),
	}
}

func (g *generator) labStorageContainer() *arm.Resource {
	return &arm.Resource{
		Resource: &mgmtstorage.BlobContainer{
			Name: to.Ptr("[concat(parameters('storageAccountName'), '/default/', parameters('containerName'))]"),
			Type: to.Ptr("Microsoft.Storage/storageAccounts/blobServices/containers"),
			ContainerProperties: &mgmtstorage.ContainerProperties{
				PublicAccess: mgmtstorage.PublicAccessNone,
			},
		},
		APIVersion: azureclient.APIVersion("Microsoft.Storage"),
		DependsOn: []string{
			"[resourceId('Microsoft.Storage/storageAccounts', parameters('storageAccountName'))]",
		},
	}
}
