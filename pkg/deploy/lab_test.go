package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	mgmtfeatures "github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-07-01/features"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/apimanagement/armapimanagement/v3"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	sdkazsecrets "github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"github.com/Azure/go-autorest/autorest"
	"github.com/go-test/deep"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/Azure/ai-gateway-lab/pkg/deploy/generator"
	mock_armapimanagement "github.com/Azure/ai-gateway-lab/pkg/util/mocks/azureclient/azuresdk/armapimanagement"
	mock_armstorage "github.com/Azure/ai-gateway-lab/pkg/util/mocks/azureclient/azuresdk/armstorage"
	mock_azsecrets "github.com/Azure/ai-gateway-lab/pkg/util/mocks/azureclient/azuresdk/azsecrets"
	mock_features "github.com/Azure/ai-gateway-lab/pkg/util/mocks/azureclient/mgmt/features"
	"github.com/Azure/ai-gateway-lab/pkg/util/pointerutils"
	utilerror "github.com/Azure/ai-gateway-lab/test/util/error"
)

func TestDeploy(t *testing.T) {
	rgName := "ailab-test"
	genericError := errors.New("generic error")
	conflictError := autorest.DetailedError{
		PackageType: "authorization.RoleAssignmentsClient",
		Method:      "Create",
		StatusCode:  http.StatusConflict,
		Message:     "role assignment already exists",
	}

	extended := func(outputs map[string]interface{}) mgmtfeatures.DeploymentExtended {
		return mgmtfeatures.DeploymentExtended{
			Properties: &mgmtfeatures.DeploymentPropertiesExtended{
				Outputs: outputs,
			},
		}
	}
	out := func(value string) map[string]interface{} {
		return map[string]interface{}{"value": value}
	}

	primaryOutputs := map[string]interface{}{
		"openAIEndpoint":   out("https://one.openai.azure.com/"),
		"openAIResourceId": out("/subscriptions/sub/resourceGroups/ailab-test/providers/Microsoft.CognitiveServices/accounts/one"),
	}
	secondaryOutputs := map[string]interface{}{
		"openAIEndpoint":   out("https://two.openai.azure.com/"),
		"openAIResourceId": out("/subscriptions/sub/resourceGroups/ailab-test/providers/Microsoft.CognitiveServices/accounts/two"),
	}
	storageOutputs := map[string]interface{}{
		"storageAccountId":     out("/subscriptions/sub/resourceGroups/ailab-test/providers/Microsoft.Storage/storageAccounts/ailabteststorage"),
		"storageBlobEndpoint":  out("https://stale.blob.core.windows.net/"),
		"storageContainerName": out("files"),
	}
	searchOutputs := map[string]interface{}{
		"searchEndpoint":    out("https://ailab-search-test.search.windows.net"),
		"searchServiceId":   out("/subscriptions/sub/resourceGroups/ailab-test/providers/Microsoft.Search/searchServices/ailab-search-test"),
		"searchPrincipalId": out("search-principal"),
	}
	gatewayOutputs := map[string]interface{}{
		"apimGatewayURL":  out("https://ailab-apim-test.azure-api.net"),
		"apimPrincipalId": out("apim-principal"),
	}
	workspaceOutputs := map[string]interface{}{
		"keyVaultURI":             out("https://ailab-kv-test.vault.azure.net/"),
		"hubPrincipalId":          out("hub-principal"),
		"projectPrincipalId":      out("project-principal"),
		"projectConnectionString": out("eastus.api.azureml.ms;sub;ailab-test;ailab-project-test"),
	}

	subscriptionKey := armapimanagement.SubscriptionClientListSecretsResponse{
		SubscriptionKeysContract: armapimanagement.SubscriptionKeysContract{
			PrimaryKey: to.Ptr("primary-key"),
		},
	}
	storageAccount := armstorage.AccountsClientGetPropertiesResponse{
		Account: armstorage.Account{
			Properties: &armstorage.AccountProperties{
				PrimaryEndpoints: &armstorage.Endpoints{
					Blob: to.Ptr("https://ailabteststorage.blob.core.windows.net/"),
				},
			},
		},
	}

	type mock func(*mock_features.MockDeploymentsClient, *mock_armapimanagement.MockAPIPolicyClient, *mock_armapimanagement.MockSubscriptionClient, *mock_azsecrets.MockClient, *mock_armstorage.MockAccountsClient)
	deployMock := func(deploymentName string, returnError error) mock {
		return func(dc *mock_features.MockDeploymentsClient, pc *mock_armapimanagement.MockAPIPolicyClient, sc *mock_armapimanagement.MockSubscriptionClient, kv *mock_azsecrets.MockClient, ac *mock_armstorage.MockAccountsClient) {
			dc.EXPECT().CreateOrUpdateAndWait(gomock.Any(), rgName, deploymentName, gomock.Any()).Return(returnError)
		}
	}
	outputsMock := func(deploymentName string, outputs map[string]interface{}) mock {
		return func(dc *mock_features.MockDeploymentsClient, pc *mock_armapimanagement.MockAPIPolicyClient, sc *mock_armapimanagement.MockSubscriptionClient, kv *mock_azsecrets.MockClient, ac *mock_armstorage.MockAccountsClient) {
			dc.EXPECT().Get(gomock.Any(), rgName, deploymentName).Return(extended(outputs), nil)
		}
	}
	policyMock := func(returnError error) mock {
		return func(dc *mock_features.MockDeploymentsClient, pc *mock_armapimanagement.MockAPIPolicyClient, sc *mock_armapimanagement.MockSubscriptionClient, kv *mock_azsecrets.MockClient, ac *mock_armstorage.MockAccountsClient) {
			pc.EXPECT().CreateOrUpdate(gomock.Any(), rgName, "ailab-apim-test", generator.APIName, armapimanagement.PolicyIDNamePolicy, armapimanagement.PolicyContract{
				Properties: &armapimanagement.PolicyContractProperties{
					Format: to.Ptr(armapimanagement.PolicyContentFormatRawxml),
					Value:  to.Ptr(generator.GatewayPolicy),
				},
			}, nil).Return(armapimanagement.APIPolicyClientCreateOrUpdateResponse{}, returnError)
		}
	}
	listSecretsMock := func(response armapimanagement.SubscriptionClientListSecretsResponse, returnError error) mock {
		return func(dc *mock_features.MockDeploymentsClient, pc *mock_armapimanagement.MockAPIPolicyClient, sc *mock_armapimanagement.MockSubscriptionClient, kv *mock_azsecrets.MockClient, ac *mock_armstorage.MockAccountsClient) {
			sc.EXPECT().ListSecrets(gomock.Any(), rgName, "ailab-apim-test", generator.SubscriptionName, nil).Return(response, returnError)
		}
	}
	setSecretMock := func(returnError error) mock {
		return func(dc *mock_features.MockDeploymentsClient, pc *mock_armapimanagement.MockAPIPolicyClient, sc *mock_armapimanagement.MockSubscriptionClient, kv *mock_azsecrets.MockClient, ac *mock_armstorage.MockAccountsClient) {
			kv.EXPECT().SetSecret(gomock.Any(), GatewaySecretName, sdkazsecrets.SetSecretParameters{
				Value: to.Ptr("primary-key"),
			}, nil).Return(sdkazsecrets.SetSecretResponse{}, returnError)
		}
	}
	getPropertiesMock := func(response armstorage.AccountsClientGetPropertiesResponse, returnError error) mock {
		return func(dc *mock_features.MockDeploymentsClient, pc *mock_armapimanagement.MockAPIPolicyClient, sc *mock_armapimanagement.MockSubscriptionClient, kv *mock_azsecrets.MockClient, ac *mock_armstorage.MockAccountsClient) {
			ac.EXPECT().GetProperties(gomock.Any(), rgName, "ailabteststorage", nil).Return(response, returnError)
		}
	}

	leafMocks := []mock{
		deployMock(deploymentOpenAIPrimary, nil), outputsMock(deploymentOpenAIPrimary, primaryOutputs),
		deployMock(deploymentOpenAISecondary, nil), outputsMock(deploymentOpenAISecondary, secondaryOutputs),
		deployMock(deploymentStorage, nil), outputsMock(deploymentStorage, storageOutputs),
		deployMock(deploymentSearch, nil), outputsMock(deploymentSearch, searchOutputs),
	}
	chainMocks := append(append([]mock{}, leafMocks...),
		deployMock(deploymentGateway, nil), outputsMock(deploymentGateway, gatewayOutputs),
		deployMock(deploymentWorkspace, nil), outputsMock(deploymentWorkspace, workspaceOutputs),
		deployMock(deploymentRBAC, nil),
		policyMock(nil),
		listSecretsMock(subscriptionKey, nil),
	)

	wantEnvFile := map[string]string{
		"APIM_GATEWAY_URL":                     "https://ailab-apim-test.azure-api.net",
		"APIM_SUBSCRIPTION_KEY":                "primary-key",
		"OPENAI_ENDPOINT_1":                    "https://one.openai.azure.com/",
		"OPENAI_ENDPOINT_2":                    "https://two.openai.azure.com/",
		"OPENAI_MODEL_DEPLOYMENT":              "gpt-4o",
		"OPENAI_API_VERSION":                   "2025-03-01-preview",
		"STORAGE_BLOB_ENDPOINT":                "https://ailabteststorage.blob.core.windows.net/",
		"AI_SEARCH_ENDPOINT":                   "https://ailab-search-test.search.windows.net",
		"AI_SEARCH_INDEX_NAME":                 "ailab-index",
		"AI_FOUNDRY_PROJECT_CONNECTION_STRING": "eastus.api.azureml.ms;sub;ailab-test;ailab-project-test",
	}

	for _, tt := range []struct {
		name        string
		mocks       []mock
		wantErr     string
		wantEnvFile map[string]string
	}{
		{
			name: "success",
			mocks: append(append([]mock{}, chainMocks...),
				setSecretMock(nil),
				getPropertiesMock(storageAccount, nil),
			),
			wantEnvFile: wantEnvFile,
		},
		{
			// the key lands in the env file regardless, so a failed vault
			// write must not fail the deployment
			name: "vault write failure is tolerated",
			mocks: append(append([]mock{}, chainMocks...),
				setSecretMock(genericError),
				getPropertiesMock(storageAccount, nil),
			),
			wantEnvFile: wantEnvFile,
		},
		{
			name: "leaf deployment fails",
			mocks: []mock{
				deployMock(deploymentOpenAIPrimary, nil), outputsMock(deploymentOpenAIPrimary, primaryOutputs),
				deployMock(deploymentOpenAISecondary, nil), outputsMock(deploymentOpenAISecondary, secondaryOutputs),
				deployMock(deploymentStorage, genericError),
				deployMock(deploymentSearch, nil), outputsMock(deploymentSearch, searchOutputs),
			},
			wantErr: "generic error",
		},
		{
			name: "empty output fails the stage",
			mocks: append(append([]mock{}, leafMocks...),
				deployMock(deploymentGateway, nil),
				outputsMock(deploymentGateway, map[string]interface{}{
					"apimGatewayURL":  out(""),
					"apimPrincipalId": out("apim-principal"),
				}),
			),
			wantErr: `deployment ailab-gateway: output "apimGatewayURL" is empty`,
		},
		{
			// stale assignments from a partially deleted lab conflict once,
			// then the redeployment converges
			name: "rbac conflict is retried",
			mocks: append(append([]mock{}, leafMocks...),
				deployMock(deploymentGateway, nil), outputsMock(deploymentGateway, gatewayOutputs),
				deployMock(deploymentWorkspace, nil), outputsMock(deploymentWorkspace, workspaceOutputs),
				deployMock(deploymentRBAC, conflictError),
				deployMock(deploymentRBAC, nil),
				policyMock(nil),
				listSecretsMock(subscriptionKey, nil),
				setSecretMock(nil),
				getPropertiesMock(storageAccount, nil),
			),
			wantEnvFile: wantEnvFile,
		},
		{
			name: "rbac conflict persists",
			mocks: append(append([]mock{}, leafMocks...),
				deployMock(deploymentGateway, nil), outputsMock(deploymentGateway, gatewayOutputs),
				deployMock(deploymentWorkspace, nil), outputsMock(deploymentWorkspace, workspaceOutputs),
				deployMock(deploymentRBAC, conflictError),
				deployMock(deploymentRBAC, conflictError),
			),
			wantErr: "authorization.RoleAssignmentsClient#Create: role assignment already exists: StatusCode=409",
		},
		{
			name: "subscription key missing",
			mocks: append(append([]mock{}, leafMocks...),
				deployMock(deploymentGateway, nil), outputsMock(deploymentGateway, gatewayOutputs),
				deployMock(deploymentWorkspace, nil), outputsMock(deploymentWorkspace, workspaceOutputs),
				deployMock(deploymentRBAC, nil),
				policyMock(nil),
				listSecretsMock(armapimanagement.SubscriptionClientListSecretsResponse{}, nil),
			),
			wantErr: "subscription ailab-subscription has no primary key",
		},
		{
			name: "blob endpoint missing",
			mocks: append(append([]mock{}, chainMocks...),
				setSecretMock(nil),
				getPropertiesMock(armstorage.AccountsClientGetPropertiesResponse{}, nil),
			),
			wantErr: "storage account ailabteststorage has no blob endpoint",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			controller := gomock.NewController(t)
			defer controller.Finish()

			mockDeployments := mock_features.NewMockDeploymentsClient(controller)
			mockPolicies := mock_armapimanagement.NewMockAPIPolicyClient(controller)
			mockSubscriptions := mock_armapimanagement.NewMockSubscriptionClient(controller)
			mockSecrets := mock_azsecrets.NewMockClient(controller)
			mockAccounts := mock_armstorage.NewMockAccountsClient(controller)

			envFile := filepath.Join(t.TempDir(), "lab.env")

			d := deployer{
				log:               logrus.NewEntry(logrus.StandardLogger()),
				deployments:       mockDeployments,
				apimpolicies:      mockPolicies,
				apimsubscriptions: mockSubscriptions,
				secrets:           mockSecrets,
				accounts:          mockAccounts,
				generator:         generator.New(),
				envFile:           envFile,
				config: &Config{
					Location:          "eastus",
					SecondaryLocation: "westus",
					ResourceGroupName: rgName,
					SubscriptionID:    "sub",
					TesterPrincipalID: "tester-principal",
					Configuration: &Configuration{
						OpenAIName1:        pointerutils.ToPtr("ailab-aoai-eastus-test"),
						OpenAIName2:        pointerutils.ToPtr("ailab-aoai-westus-test"),
						StorageAccountName: pointerutils.ToPtr("ailabteststorage"),
						SearchServiceName:  pointerutils.ToPtr("ailab-search-test"),
						APIMServiceName:    pointerutils.ToPtr("ailab-apim-test"),
						KeyVaultName:       pointerutils.ToPtr("ailab-kv-test"),
						HubName:            pointerutils.ToPtr("ailab-hub-test"),
						ProjectName:        pointerutils.ToPtr("ailab-project-test"),
						ModelName:          pointerutils.ToPtr("gpt-4o"),
						ModelVersion:       pointerutils.ToPtr("2024-11-20"),
						ModelCapacity:      pointerutils.ToPtr(50),
						ModelSKU:           pointerutils.ToPtr("GlobalStandard"),
						ContainerName:      pointerutils.ToPtr("files"),
						SearchSKU:          pointerutils.ToPtr("basic"),
						APIMSKU:            pointerutils.ToPtr("StandardV2"),
						PublisherEmail:     pointerutils.ToPtr("admin@example.com"),
						PublisherName:      pointerutils.ToPtr("AI Gateway Lab"),
						OpenAIAPIVersion:   pointerutils.ToPtr("2025-03-01-preview"),
						SearchIndexName:    pointerutils.ToPtr("ailab-index"),
					},
				},
			}

			for _, m := range tt.mocks {
				m(mockDeployments, mockPolicies, mockSubscriptions, mockSecrets, mockAccounts)
			}

			err := d.Deploy(ctx)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			if tt.wantEnvFile != nil {
				got, err := godotenv.Read(envFile)
				if err != nil {
					t.Fatal(err)
				}

				for _, diff := range deep.Equal(got, tt.wantEnvFile) {
					t.Error(diff)
				}
			}
		})
	}
}

func TestOutput(t *testing.T) {
	outputs := map[string]interface{}{
		"present": map[string]interface{}{"value": "value"},
		"empty":   map[string]interface{}{"value": ""},
		"badType": map[string]interface{}{"value": 42},
	}

	for _, tt := range []struct {
		name    string
		key     string
		want    string
		wantErr string
	}{
		{
			name: "present",
			key:  "present",
			want: "value",
		},
		{
			name:    "empty",
			key:     "empty",
			wantErr: `deployment test: output "empty" is empty`,
		},
		{
			name:    "wrong type",
			key:     "badType",
			wantErr: `deployment test: output "badType" is empty`,
		},
		{
			name:    "absent",
			key:     "absent",
			wantErr: `deployment test: output "absent" not found`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := output(outputs, "test", tt.key)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			if got != tt.want {
				t.Error(got)
			}
		})
	}
}

func TestDeploymentOutputs(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name       string
		deployment mgmtfeatures.DeploymentExtended
		getErr     error
		wantErr    string
	}{
		{
			name: "outputs present",
			deployment: mgmtfeatures.DeploymentExtended{
				Properties: &mgmtfeatures.DeploymentPropertiesExtended{
					Outputs: map[string]interface{}{},
				},
			},
		},
		{
			name: "no outputs",
			deployment: mgmtfeatures.DeploymentExtended{
				Properties: &mgmtfeatures.DeploymentPropertiesExtended{},
			},
			wantErr: "deployment ailab-storage has no outputs",
		},
		{
			name:    "get fails",
			getErr:  errors.New("generic error"),
			wantErr: "get deployment ailab-storage: generic error",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			mockDeployments := mock_features.NewMockDeploymentsClient(controller)
			mockDeployments.EXPECT().Get(ctx, "ailab-test", deploymentStorage).Return(tt.deployment, tt.getErr)

			d := deployer{
				deployments: mockDeployments,
				config:      &Config{ResourceGroupName: "ailab-test"},
			}

			_, err := d.deploymentOutputs(ctx, deploymentStorage)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}
