package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"net/http"
	"testing"

	mgmtfeatures "github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-07-01/features"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/Azure/ai-gateway-lab/pkg/util/azureerrors"
	mock_armkeyvault "github.com/Azure/ai-gateway-lab/pkg/util/mocks/azureclient/azuresdk/armkeyvault"
	mock_features "github.com/Azure/ai-gateway-lab/pkg/util/mocks/azureclient/mgmt/features"
	utilerror "github.com/Azure/ai-gateway-lab/test/util/error"
)

func TestDestroy(t *testing.T) {
	ctx := context.Background()
	rgName := "ailab-test"
	vaultName := "ailab-kv-test"
	location := "eastus"
	genericError := errors.New("generic error")

	rgNotFoundError := autorest.DetailedError{
		Original: &azure.RequestError{
			ServiceError: &azure.ServiceError{Code: azureerrors.CODE_RGNOTFOUND},
		},
	}
	vaultNotFoundError := &azcore.ResponseError{StatusCode: http.StatusNotFound}

	vaultResource := mgmtfeatures.GenericResourceExpanded{
		Name:     to.StringPtr(vaultName),
		Type:     to.StringPtr("Microsoft.KeyVault/vaults"),
		Location: to.StringPtr(location),
	}
	storageResource := mgmtfeatures.GenericResourceExpanded{
		Name:     to.StringPtr("ailabteststorage"),
		Type:     to.StringPtr("Microsoft.Storage/storageAccounts"),
		Location: to.StringPtr(location),
	}

	type mock func(*mock_features.MockResourcesClient, *mock_features.MockResourceGroupsClient, *mock_armkeyvault.MockVaultsClient)
	listMock := func(resources []mgmtfeatures.GenericResourceExpanded, returnError error) mock {
		return func(r *mock_features.MockResourcesClient, rg *mock_features.MockResourceGroupsClient, v *mock_armkeyvault.MockVaultsClient) {
			r.EXPECT().ListByResourceGroup(ctx, rgName, "", "", nil).Return(resources, returnError)
		}
	}
	deleteMock := func(returnError error) mock {
		return func(r *mock_features.MockResourcesClient, rg *mock_features.MockResourceGroupsClient, v *mock_armkeyvault.MockVaultsClient) {
			rg.EXPECT().DeleteAndWait(ctx, rgName).Return(returnError)
		}
	}
	getDeletedMock := func(returnError error) mock {
		return func(r *mock_features.MockResourcesClient, rg *mock_features.MockResourceGroupsClient, v *mock_armkeyvault.MockVaultsClient) {
			v.EXPECT().GetDeleted(ctx, vaultName, location, nil).Return(armkeyvault.VaultsClientGetDeletedResponse{}, returnError)
		}
	}
	purgeMock := func(returnError error) mock {
		return func(r *mock_features.MockResourcesClient, rg *mock_features.MockResourceGroupsClient, v *mock_armkeyvault.MockVaultsClient) {
			v.EXPECT().PurgeDeletedAndWait(ctx, vaultName, location, nil).Return(returnError)
		}
	}

	for _, tt := range []struct {
		name    string
		mocks   []mock
		wantErr string
	}{
		{
			name: "resource group not found",
			mocks: []mock{
				listMock(nil, rgNotFoundError),
			},
		},
		{
			name: "list fails",
			mocks: []mock{
				listMock(nil, genericError),
			},
			wantErr: "generic error",
		},
		{
			name: "no vault in group",
			mocks: []mock{
				listMock([]mgmtfeatures.GenericResourceExpanded{storageResource}, nil), deleteMock(nil),
			},
		},
		{
			name: "vault found and purged",
			mocks: []mock{
				listMock([]mgmtfeatures.GenericResourceExpanded{storageResource, vaultResource}, nil), deleteMock(nil), getDeletedMock(nil), purgeMock(nil),
			},
		},
		{
			name: "vault already purged",
			mocks: []mock{
				listMock([]mgmtfeatures.GenericResourceExpanded{vaultResource}, nil), deleteMock(nil), getDeletedMock(vaultNotFoundError),
			},
		},
		{
			name: "delete fails",
			mocks: []mock{
				listMock([]mgmtfeatures.GenericResourceExpanded{vaultResource}, nil), deleteMock(genericError),
			},
			wantErr: "generic error",
		},
		{
			name: "purge fails",
			mocks: []mock{
				listMock([]mgmtfeatures.GenericResourceExpanded{vaultResource}, nil), deleteMock(nil), getDeletedMock(nil), purgeMock(genericError),
			},
			wantErr: "generic error",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			mockResources := mock_features.NewMockResourcesClient(controller)
			mockResourceGroups := mock_features.NewMockResourceGroupsClient(controller)
			mockVaults := mock_armkeyvault.NewMockVaultsClient(controller)

			d := deployer{
				log:       logrus.NewEntry(logrus.StandardLogger()),
				resources: mockResources,
				groups:    mockResourceGroups,
				vaults:    mockVaults,
				config: &Config{
					ResourceGroupName: rgName,
				},
			}

			for _, m := range tt.mocks {
				m(mockResources, mockResourceGroups, mockVaults)
			}

			err := d.Destroy(ctx)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}
