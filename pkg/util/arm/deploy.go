package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"fmt"

	mgmtfeatures "github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-07-01/features"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/sirupsen/logrus"

	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient/mgmt/features"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureerrors"
)

// DeployTemplate deploys an ARM template into a resource group and blocks
// until the deployment reaches a terminal state.  If a deployment with the
// same name is already running, it waits on that deployment instead of
// failing outright.  template is either a *Template or the unmarshaled
// (fixed-up) form the generator emits.
func DeployTemplate(ctx context.Context, log *logrus.Entry, deployments features.DeploymentsClient, resourceGroup, deploymentName string, template interface{}, parameters map[string]*ParametersParameter) error {
	log.Printf("deploying %s template", deploymentName)
	err := deployments.CreateOrUpdateAndWait(ctx, resourceGroup, deploymentName, mgmtfeatures.Deployment{
		Properties: &mgmtfeatures.DeploymentProperties{
			Template:   template,
			Parameters: parameters,
			Mode:       mgmtfeatures.Incremental,
		},
	})

	if azureerrors.IsDeploymentActiveError(err) {
		log.Printf("waiting for %s template to be deployed", deploymentName)
		err = deployments.Wait(ctx, resourceGroup, deploymentName)
	}

	if azureerrors.HasAuthorizationFailedError(err) {
		return err
	}

	serviceErr, _ := err.(*azure.ServiceError) // futures return *azure.ServiceError directly

	// CreateOrUpdate() returns a wrapped *azure.ServiceError
	if detailedErr, ok := err.(autorest.DetailedError); ok {
		serviceErr, _ = detailedErr.Original.(*azure.ServiceError)
	}

	if serviceErr != nil {
		b, _ := json.Marshal(serviceErr)

		return fmt.Errorf("deployment %s failed: %s", deploymentName, string(b))
	}

	return err
}
