package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	_ "embed"
)

// GatewayPolicy is applied by the deployer at API scope once the gateway
// template is up.  It is not part of the template: the policy references the
// pool backend by name and APIM validates that reference at policy set time.
//
//go:embed policies/azure-openai.xml
var GatewayPolicy string
