package armauthorization

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE
//go:generate mockgen -destination=../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/ai-gateway-lab/pkg/util/azureclient/azuresdk/$GOPACKAGE RoleAssignmentsClient,RoleDefinitionsClient
