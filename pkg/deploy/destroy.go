package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"strings"

	"github.com/Azure/ai-gateway-lab/pkg/util/azureerrors"
)

// Destroy deletes the lab resource group and then purges the soft-deleted
// key vault, which would otherwise block the next deployment from reusing
// the vault name.
func (d *deployer) Destroy(ctx context.Context) error {
	var vaultName, vaultLocation string

	resources, err := d.resources.ListByResourceGroup(ctx, d.config.ResourceGroupName, "", "", nil)
	if azureerrors.ResourceGroupNotFound(err) {
		d.log.Infof("resource group %s not found", d.config.ResourceGroupName)
		return nil
	}
	if err != nil {
		return err
	}

	for _, resource := range resources {
		if resource.Type != nil && strings.EqualFold(*resource.Type, "Microsoft.KeyVault/vaults") {
			vaultName = *resource.Name
			vaultLocation = *resource.Location
		}
	}

	d.log.Infof("deleting rg %s", d.config.ResourceGroupName)
	err = d.groups.DeleteAndWait(ctx, d.config.ResourceGroupName)
	if err != nil {
		return err
	}

	if vaultName == "" {
		return nil
	}

	return d.purgeVault(ctx, vaultName, vaultLocation)
}

func (d *deployer) purgeVault(ctx context.Context, vaultName, location string) error {
	_, err := d.vaults.GetDeleted(ctx, vaultName, location, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil
	}
	if err != nil {
		return err
	}

	d.log.Infof("purging vault %s", vaultName)
	return d.vaults.PurgeDeletedAndWait(ctx, vaultName, location, nil)
}
