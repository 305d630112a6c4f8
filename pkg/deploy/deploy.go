package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"reflect"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/jongio/azidext/go/azidext"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Azure/ai-gateway-lab/pkg/deploy/generator"
	"github.com/Azure/ai-gateway-lab/pkg/env"
	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/armapimanagement"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/armkeyvault"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/armstorage"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/azsecrets"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/mgmt/features"
)

var _ Deployer = (*deployer)(nil)

// Deployer manages the full lab lifecycle within one resource group.
type Deployer interface {
	PreDeploy(context.Context) error
	Deploy(context.Context) error
	Destroy(context.Context) error
}

type deployer struct {
	log *logrus.Entry

	deployments       features.DeploymentsClient
	groups            features.ResourceGroupsClient
	providers         features.ProvidersClient
	resources         features.ResourcesClient
	accounts          armstorage.AccountsClient
	vaults            armkeyvault.VaultsClient
	apimsubscriptions armapimanagement.SubscriptionClient
	apimpolicies      armapimanagement.APIPolicyClient
	secrets           azsecrets.Client

	generator generator.Generator
	config    *Config
	envFile   string

	outputs labOutputs
}

// labOutputs accumulates template outputs and derived values as the
// deployment stages complete.  Later stages and the env file read from here.
type labOutputs struct {
	openAIEndpoint1   string
	openAIEndpoint2   string
	openAIResourceID1 string
	openAIResourceID2 string

	storageAccountID     string
	storageBlobEndpoint  string
	storageContainerName string

	searchEndpoint    string
	searchServiceID   string
	searchPrincipalID string

	apimGatewayURL  string
	apimPrincipalID string

	keyVaultURI             string
	hubPrincipalID          string
	projectPrincipalID      string
	projectConnectionString string

	subscriptionKey string
}

// New initiates new deploy utility object
func New(ctx context.Context, log *logrus.Entry, _env env.Core, config *Config, envFile string) (Deployer, error) {
	config.complete()

	err := config.validate()
	if err != nil {
		return nil, err
	}

	tokenCredential, err := azidentity.NewDefaultAzureCredential(_env.Environment().DefaultAzureCredentialOptions())
	if err != nil {
		return nil, errors.Wrap(err, "default azure credential")
	}

	scopes := []string{_env.Environment().ResourceManagerScope}
	authorizer := azidext.NewTokenCredentialAdapter(tokenCredential, scopes)

	clientOptions := _env.Environment().ArmClientOptions()

	accounts, err := armstorage.NewAccountsClient(config.SubscriptionID, tokenCredential, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "accounts client")
	}

	vaults, err := armkeyvault.NewVaultsClient(config.SubscriptionID, tokenCredential, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "vaults client")
	}

	apimsubscriptions, err := armapimanagement.NewSubscriptionClient(config.SubscriptionID, tokenCredential, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "apim subscriptions client")
	}

	apimpolicies, err := armapimanagement.NewAPIPolicyClient(config.SubscriptionID, tokenCredential, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "apim policies client")
	}

	secrets, err := azsecrets.NewClient(azsecrets.URI(_env.Environment(), *config.Configuration.KeyVaultName), tokenCredential, clientOptions.ClientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "secrets client")
	}

	return &deployer{
		log: log,

		deployments:       features.NewDeploymentsClient(_env.Environment(), config.SubscriptionID, authorizer),
		groups:            features.NewResourceGroupsClient(_env.Environment(), config.SubscriptionID, authorizer),
		providers:         features.NewProvidersClient(_env.Environment(), config.SubscriptionID, authorizer),
		resources:         features.NewResourcesClient(_env.Environment(), config.SubscriptionID, authorizer),
		accounts:          accounts,
		vaults:            vaults,
		apimsubscriptions: apimsubscriptions,
		apimpolicies:      apimpolicies,
		secrets:           secrets,

		generator: generator.New(),
		config:    config,
		envFile:   envFile,
	}, nil
}

// getParameters returns an *arm.Parameters populated with parameter names and
// values.  The names are taken from the ps argument and the values are taken
// from d.config.Configuration.
func (d *deployer) getParameters(ps map[string]interface{}) *arm.Parameters {
	m := map[string]interface{}{}
	v := reflect.ValueOf(*d.config.Configuration)
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).IsNil() {
			continue
		}

		m[strings.SplitN(v.Type().Field(i).Tag.Get("json"), ",", 2)[0]] = v.Field(i).Interface()
	}

	parameters := &arm.Parameters{
		Parameters: map[string]*arm.ParametersParameter{},
	}

	for p := range ps {
		// do not convert empty fields
		// makes default values templates work
		v, ok := m[p]
		if !ok {
			continue
		}

		parameters.Parameters[p] = &arm.ParametersParameter{
			Value: v,
		}
	}

	return parameters
}
