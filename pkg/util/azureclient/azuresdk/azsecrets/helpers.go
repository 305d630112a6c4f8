package azsecrets

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
)

// URI returns the data-plane URL of a key vault from its resource name.
func URI(environment *azureclient.Environment, vaultName string) string {
	return fmt.Sprintf("https://%s.%s/", vaultName, environment.KeyVaultDNSSuffix)
}
