package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/search/armsearch"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
)

// searchService provisions the AI Search service.  aadOrApiKey keeps admin
// keys working for portal import flows while the lab identities and testers
// authenticate with Entra; failures surface as 401 with a bearer challenge so
// SDK credential chains can react.
func (g *generator) searchService() *arm.Resource {
	return &arm.Resource{
		Resource: &armsearch.Service{
			Identity: &armsearch.Identity{
				Type: to.Ptr(armsearch.IdentityTypeSystemAssigned),
			},
			SKU: &armsearch.SKU{
				Name: to.Ptr(armsearch.SKUName("[parameters('searchSKU')]")),
			},
			Properties: &armsearch.ServiceProperties{
				ReplicaCount:        to.Ptr(int32(1)),
				PartitionCount:      to.Ptr(int32(1)),
				HostingMode:         to.Ptr(armsearch.HostingModeDefault),
				PublicNetworkAccess: to.Ptr(armsearch.PublicNetworkAccessEnabled),
				AuthOptions: &armsearch.DataPlaneAuthOptions{
					AADOrAPIKey: &armsearch.DataPlaneAADOrAPIKeyAuthOption{
						AADAuthFailureMode: to.Ptr(armsearch.AADAuthFailureModeHttp401WithBearerChallenge),
					},
				},
			},
			Name:     to.Ptr("[parameters('searchServiceName')]"),
			Type:     to.Ptr("Microsoft.Search/searchServices"),
			Location: to.Ptr("[parameters('location')]"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.Search"),
	}
}
