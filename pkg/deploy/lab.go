package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/ai-gateway-lab/pkg/deploy/generator"
	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureerrors"
)

const (
	deploymentOpenAIPrimary   = "ailab-openai-primary"
	deploymentOpenAISecondary = "ailab-openai-secondary"
	deploymentStorage         = "ailab-storage"
	deploymentSearch          = "ailab-search"
	deploymentGateway         = "ailab-gateway"
	deploymentWorkspace       = "ailab-workspace"
	deploymentRBAC            = "ailab-rbac"
)

// Deploy stands up the whole lab: the four leaf deployments first (the two
// regional OpenAI accounts, storage and search are independent of each
// other), then gateway, workspace and RBAC, each consuming outputs of the
// earlier stages, then the post-deployment fixups and the env file.
func (d *deployer) Deploy(ctx context.Context) error {
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.deployOpenAI(groupCtx, deploymentOpenAIPrimary, *d.config.Configuration.OpenAIName1, d.config.Location, &d.outputs.openAIEndpoint1, &d.outputs.openAIResourceID1)
	})
	g.Go(func() error {
		return d.deployOpenAI(groupCtx, deploymentOpenAISecondary, *d.config.Configuration.OpenAIName2, d.config.SecondaryLocation, &d.outputs.openAIEndpoint2, &d.outputs.openAIResourceID2)
	})
	g.Go(func() error { return d.deployStorage(groupCtx) })
	g.Go(func() error { return d.deploySearch(groupCtx) })

	err := g.Wait()
	if err != nil {
		return err
	}

	err = d.deployGateway(ctx)
	if err != nil {
		return err
	}

	err = d.deployWorkspace(ctx)
	if err != nil {
		return err
	}

	err = d.deployRBAC(ctx)
	if err != nil {
		return err
	}

	err = d.applyGatewayPolicy(ctx)
	if err != nil {
		return err
	}

	err = d.fetchSubscriptionKey(ctx)
	if err != nil {
		return err
	}

	err = d.saveSubscriptionKey(ctx)
	if err != nil {
		return err
	}

	err = d.resolveBlobEndpoint(ctx)
	if err != nil {
		return err
	}

	return d.writeEnvFile()
}

func (d *deployer) deployOpenAI(ctx context.Context, deploymentName, accountName, location string, endpoint, resourceID *string) error {
	template, err := d.generator.Template(generator.FileOpenAI)
	if err != nil {
		return err
	}

	parameters := d.getParameters(template["parameters"].(map[string]interface{}))
	parameters.Parameters["openAIName"] = &arm.ParametersParameter{
		Value: accountName,
	}
	parameters.Parameters["location"] = &arm.ParametersParameter{
		Value: location,
	}

	err = arm.DeployTemplate(ctx, d.log, d.deployments, d.config.ResourceGroupName, deploymentName, template, parameters.Parameters)
	if err != nil {
		return err
	}

	outputs, err := d.deploymentOutputs(ctx, deploymentName)
	if err != nil {
		return err
	}

	*endpoint, err = output(outputs, deploymentName, "openAIEndpoint")
	if err != nil {
		return err
	}

	*resourceID, err = output(outputs, deploymentName, "openAIResourceId")
	return err
}

func (d *deployer) deployStorage(ctx context.Context) error {
	template, err := d.generator.Template(generator.FileStorage)
	if err != nil {
		return err
	}

	parameters := d.getParameters(template["parameters"].(map[string]interface{}))
	parameters.Parameters["location"] = &arm.ParametersParameter{
		Value: d.config.Location,
	}

	err = arm.DeployTemplate(ctx, d.log, d.deployments, d.config.ResourceGroupName, deploymentStorage, template, parameters.Parameters)
	if err != nil {
		return err
	}

	outputs, err := d.deploymentOutputs(ctx, deploymentStorage)
	if err != nil {
		return err
	}

	d.outputs.storageAccountID, err = output(outputs, deploymentStorage, "storageAccountId")
	if err != nil {
		return err
	}

	d.outputs.storageBlobEndpoint, err = output(outputs, deploymentStorage, "storageBlobEndpoint")
	if err != nil {
		return err
	}

	d.outputs.storageContainerName, err = output(outputs, deploymentStorage, "storageContainerName")
	return err
}

func (d *deployer) deploySearch(ctx context.Context) error {
	template, err := d.generator.Template(generator.FileSearch)
	if err != nil {
		return err
	}

	parameters := d.getParameters(template["parameters"].(map[string]interface{}))
	parameters.Parameters["location"] = &arm.ParametersParameter{
		Value: d.config.Location,
	}

	err = arm.DeployTemplate(ctx, d.log, d.deployments, d.config.ResourceGroupName, deploymentSearch, template, parameters.Parameters)
	if err != nil {
		return err
	}

	outputs, err := d.deploymentOutputs(ctx, deploymentSearch)
	if err != nil {
		return err
	}

	d.outputs.searchEndpoint, err = output(outputs, deploymentSearch, "searchEndpoint")
	if err != nil {
		return err
	}

	d.outputs.searchServiceID, err = output(outputs, deploymentSearch, "searchServiceId")
	if err != nil {
		return err
	}

	d.outputs.searchPrincipalID, err = output(outputs, deploymentSearch, "searchPrincipalId")
	return err
}

func (d *deployer) deployGateway(ctx context.Context) error {
	template, err := d.generator.Template(generator.FileGateway)
	if err != nil {
		return err
	}

	parameters := d.getParameters(template["parameters"].(map[string]interface{}))
	parameters.Parameters["location"] = &arm.ParametersParameter{
		Value: d.config.Location,
	}
	parameters.Parameters["openAIEndpoint1"] = &arm.ParametersParameter{
		Value: d.outputs.openAIEndpoint1,
	}
	parameters.Parameters["openAIEndpoint2"] = &arm.ParametersParameter{
		Value: d.outputs.openAIEndpoint2,
	}

	err = arm.DeployTemplate(ctx, d.log, d.deployments, d.config.ResourceGroupName, deploymentGateway, template, parameters.Parameters)
	if err != nil {
		return err
	}

	outputs, err := d.deploymentOutputs(ctx, deploymentGateway)
	if err != nil {
		return err
	}

	d.outputs.apimGatewayURL, err = output(outputs, deploymentGateway, "apimGatewayURL")
	if err != nil {
		return err
	}

	d.outputs.apimPrincipalID, err = output(outputs, deploymentGateway, "apimPrincipalId")
	return err
}

func (d *deployer) deployWorkspace(ctx context.Context) error {
	template, err := d.generator.Template(generator.FileWorkspace)
	if err != nil {
		return err
	}

	parameters := d.getParameters(template["parameters"].(map[string]interface{}))
	parameters.Parameters["location"] = &arm.ParametersParameter{
		Value: d.config.Location,
	}
	parameters.Parameters["storageAccountId"] = &arm.ParametersParameter{
		Value: d.outputs.storageAccountID,
	}
	parameters.Parameters["openAIEndpoint1"] = &arm.ParametersParameter{
		Value: d.outputs.openAIEndpoint1,
	}
	parameters.Parameters["openAIEndpoint2"] = &arm.ParametersParameter{
		Value: d.outputs.openAIEndpoint2,
	}
	parameters.Parameters["openAIResourceId1"] = &arm.ParametersParameter{
		Value: d.outputs.openAIResourceID1,
	}
	parameters.Parameters["openAIResourceId2"] = &arm.ParametersParameter{
		Value: d.outputs.openAIResourceID2,
	}
	parameters.Parameters["searchEndpoint"] = &arm.ParametersParameter{
		Value: d.outputs.searchEndpoint,
	}
	parameters.Parameters["searchServiceId"] = &arm.ParametersParameter{
		Value: d.outputs.searchServiceID,
	}

	err = arm.DeployTemplate(ctx, d.log, d.deployments, d.config.ResourceGroupName, deploymentWorkspace, template, parameters.Parameters)
	if err != nil {
		return err
	}

	outputs, err := d.deploymentOutputs(ctx, deploymentWorkspace)
	if err != nil {
		return err
	}

	d.outputs.keyVaultURI, err = output(outputs, deploymentWorkspace, "keyVaultURI")
	if err != nil {
		return err
	}

	d.outputs.hubPrincipalID, err = output(outputs, deploymentWorkspace, "hubPrincipalId")
	if err != nil {
		return err
	}

	d.outputs.projectPrincipalID, err = output(outputs, deploymentWorkspace, "projectPrincipalId")
	if err != nil {
		return err
	}

	d.outputs.projectConnectionString, err = output(outputs, deploymentWorkspace, "projectConnectionString")
	return err
}

func (d *deployer) deployRBAC(ctx context.Context) error {
	template, err := d.generator.Template(generator.FileRBAC)
	if err != nil {
		return err
	}

	parameters := d.getParameters(template["parameters"].(map[string]interface{}))
	parameters.Parameters["apimPrincipalId"] = &arm.ParametersParameter{
		Value: d.outputs.apimPrincipalID,
	}
	parameters.Parameters["searchPrincipalId"] = &arm.ParametersParameter{
		Value: d.outputs.searchPrincipalID,
	}
	parameters.Parameters["hubPrincipalId"] = &arm.ParametersParameter{
		Value: d.outputs.hubPrincipalID,
	}
	parameters.Parameters["projectPrincipalId"] = &arm.ParametersParameter{
		Value: d.outputs.projectPrincipalID,
	}
	parameters.Parameters["testerPrincipalId"] = &arm.ParametersParameter{
		Value: d.config.TesterPrincipalID,
	}

	// a re-run over a partially deleted lab can conflict with role
	// assignments Azure is still cleaning up; the assignment names are
	// deterministic, so the second attempt converges
	for i := 0; i < 2; i++ {
		err = arm.DeployTemplate(ctx, d.log, d.deployments, d.config.ResourceGroupName, deploymentRBAC, template, parameters.Parameters)
		if azureerrors.IsConflictError(err) && i == 0 {
			d.log.Print(err)
			continue
		}

		break
	}
	return err
}

// deploymentOutputs returns the outputs object of a completed deployment.
func (d *deployer) deploymentOutputs(ctx context.Context, deploymentName string) (map[string]interface{}, error) {
	deployment, err := d.deployments.Get(ctx, d.config.ResourceGroupName, deploymentName)
	if err != nil {
		return nil, errors.Wrap(err, "get deployment "+deploymentName)
	}

	outputs, ok := deployment.Properties.Outputs.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("deployment %s has no outputs", deploymentName)
	}

	return outputs, nil
}

// output extracts a single output value.  Every output the deployer threads
// is load-bearing, so empty is as fatal as absent.
func output(outputs map[string]interface{}, deploymentName, key string) (string, error) {
	o, ok := outputs[key].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("deployment %s: output %q not found", deploymentName, key)
	}

	value, ok := o["value"].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("deployment %s: output %q is empty", deploymentName, key)
	}

	return value, nil
}
