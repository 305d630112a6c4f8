package common

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// RetryOptions is the default retry behaviour for azure-sdk-for-go track 2
// clients instantiated through ArmClientOptions.
var RetryOptions = policy.RetryOptions{
	MaxRetries: 6,
}
