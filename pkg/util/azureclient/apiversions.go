package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
)

// keys must be lower case
var apiVersions = map[string]string{
	"microsoft.apimanagement":           "2024-05-01",
	"microsoft.authorization":           "2018-09-01-preview",
	"microsoft.cognitiveservices":       "2023-05-01",
	"microsoft.keyvault":                "2019-09-01",
	"microsoft.machinelearningservices": "2024-04-01",
	"microsoft.resources":               "2021-04-01",
	"microsoft.search":                  "2023-11-01",
	"microsoft.storage":                 "2021-09-01",
}

// APIVersion gets the APIVersion from a full resource type
func APIVersion(typ string) string {
	t := strings.ToLower(typ)

	for {
		if apiVersion, ok := apiVersions[t]; ok {
			return apiVersion
		}

		i := strings.LastIndexByte(t, '/')
		if i == -1 {
			break
		}

		t = t[:i]
	}

	return ""
}
