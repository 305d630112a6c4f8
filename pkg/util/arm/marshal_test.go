package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armapimanagement "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/apimanagement/armapimanagement/v3"
	armcognitiveservices "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cognitiveservices/armcognitiveservices"

	utiljson "github.com/Azure/ai-gateway-lab/test/util/json"
)

func TestResourceMarshal(t *testing.T) {
	tests := []struct {
		name string
		r    *Resource
		want []byte
	}{
		{
			name: "non-zero values",
			r: &Resource{
				Name: "test",
				Resource: &testResource{
					Bool:      true,
					Int:       1,
					Uint:      1,
					Float:     1.1,
					Array:     [1]*testResource{{Bool: true, Unmarshaled: 1}},
					Interface: &testResource{Int: 1, Unmarshaled: 1},
					Map: map[string]*testResource{
						"zero": {Uint: 0, Unmarshaled: 1},
						"one":  {Uint: 1, Unmarshaled: 1},
					},
					Ptr:         to.Ptr("test"),
					Slice:       []*testResource{{Float: 1.1, Unmarshaled: 1}},
					ByteSlice:   []byte("test"),
					String:      "test",
					Struct:      &testResource{String: "test", Unmarshaled: 1},
					Name:        "should be overwritten by parent name",
					Unmarshaled: 1,
					unexported:  1,
				},
			},
			want: []byte(`{
    "bool": true,
    "int": 1,
    "uint": 1,
    "float": 1.1,
    "array": [
        {
            "bool": true,
            "tags": null
        }
    ],
    "interface": {
        "int": 1,
        "tags": null
    },
    "map": {
        "one": {
            "uint": 1,
            "tags": null
        },
        "zero": {
            "tags": null
        }
    },
    "ptr": "test",
    "slice": [
        {
            "float": 1.1,
            "tags": null
        }
    ],
    "byte_slice": "dGVzdA==",
    "string": "test",
    "struct": {
        "string": "test",
        "tags": null
    },
    "name": "test"
}`),
		},
		{
			name: "zero values",
			r: &Resource{
				Name:     "test",
				Resource: &testResource{},
			},
			want: []byte(`{
    "name": "test"
}`),
		},
		{
			name: "openai account",
			r: &Resource{
				APIVersion: "2023-05-01",
				Resource: armcognitiveservices.Account{
					Name:     to.Ptr("ailab-aoai-eastus2"),
					Type:     to.Ptr("Microsoft.CognitiveServices/accounts"),
					Location: to.Ptr("eastus2"),
					Kind:     to.Ptr("OpenAI"),
					SKU: &armcognitiveservices.SKU{
						Name: to.Ptr("S0"),
					},
					Properties: &armcognitiveservices.AccountProperties{
						CustomSubDomainName: to.Ptr("ailab-aoai-eastus2"),
						DisableLocalAuth:    to.Ptr(true),
						PublicNetworkAccess: to.Ptr(armcognitiveservices.PublicNetworkAccessEnabled),
					},
				},
			},
			want: []byte(`{
    "apiVersion": "2023-05-01",
    "kind": "OpenAI",
    "location": "eastus2",
    "name": "ailab-aoai-eastus2",
    "properties": {
        "customSubDomainName": "ailab-aoai-eastus2",
        "disableLocalAuth": true,
        "publicNetworkAccess": "Enabled"
    },
    "sku": {
        "name": "S0"
    },
    "type": "Microsoft.CognitiveServices/accounts"
}`),
		},
		{
			name: "backend pool",
			r: &Resource{
				APIVersion: "2024-05-01",
				Condition:  "[parameters('poolEnabled')]",
				DependsOn: []string{
					"[resourceId('Microsoft.ApiManagement/service/backends', 'ailab-apim', 'openai-primary')]",
					"[resourceId('Microsoft.ApiManagement/service/backends', 'ailab-apim', 'openai-secondary')]",
				},
				Resource: &armapimanagement.BackendContract{
					Name: to.Ptr("ailab-apim/openai-pool"),
					Type: to.Ptr("Microsoft.ApiManagement/service/backends"),
					Properties: &armapimanagement.BackendContractProperties{
						Type: to.Ptr(armapimanagement.BackendTypePool),
						Pool: &armapimanagement.BackendBaseParametersPool{
							Services: []*armapimanagement.BackendPoolItem{
								{
									ID:       to.Ptr("[resourceId('Microsoft.ApiManagement/service/backends', 'ailab-apim', 'openai-primary')]"),
									Priority: to.Ptr(int32(1)),
									Weight:   to.Ptr(int32(50)),
								},
								{
									ID:       to.Ptr("[resourceId('Microsoft.ApiManagement/service/backends', 'ailab-apim', 'openai-secondary')]"),
									Priority: to.Ptr(int32(1)),
									Weight:   to.Ptr(int32(50)),
								},
							},
						},
					},
				},
			},
			want: []byte(`{
    "apiVersion": "2024-05-01",
    "condition": "[parameters('poolEnabled')]",
    "dependsOn": [
        "[resourceId('Microsoft.ApiManagement/service/backends', 'ailab-apim', 'openai-primary')]",
        "[resourceId('Microsoft.ApiManagement/service/backends', 'ailab-apim', 'openai-secondary')]"
    ],
    "name": "ailab-apim/openai-pool",
    "properties": {
        "pool": {
            "services": [
                {
                    "id": "[resourceId('Microsoft.ApiManagement/service/backends', 'ailab-apim', 'openai-primary')]",
                    "priority": 1,
                    "weight": 50
                },
                {
                    "id": "[resourceId('Microsoft.ApiManagement/service/backends', 'ailab-apim', 'openai-secondary')]",
                    "priority": 1,
                    "weight": 50
                }
            ]
        },
        "type": "Pool"
    },
    "type": "Microsoft.ApiManagement/service/backends"
}`),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := json.MarshalIndent(test.r, "", "    ")
			if err != nil {
				t.Fatal(err)
			}

			utiljson.AssertJsonMatches(t, test.want, b)
		})
	}
}

type testResource struct {
	Bool        bool                     `json:"bool,omitempty"`
	Int         int                      `json:"int,omitempty"`
	Uint        uint                     `json:"uint,omitempty"`
	Float       float64                  `json:"float,omitempty"`
	Array       [1]*testResource         `json:"array,omitempty"`
	Interface   interface{}              `json:"interface,omitempty"`
	Map         map[string]*testResource `json:"map,omitempty"`
	Ptr         *string                  `json:"ptr,omitempty"`
	Slice       []*testResource          `json:"slice,omitempty"`
	ByteSlice   []byte                   `json:"byte_slice,omitempty"`
	String      string                   `json:"string,omitempty"`
	Struct      *testResource            `json:"struct,omitempty"`
	Name        string                   `json:"name,omitempty"`
	Unmarshaled int                      `json:"-"`
	unexported  int
	// Both `arm.Resource` and nested `testResource` have fields with name `Tags`.
	// The `Tags` field from `arm.Resource` must override the one from `testResource`
	// on the top-level of JSON.
	Tags map[string]*string `json:"tags"`
}

// MarshalJSON contains custom marshaling logic which we expect to be dropped
// during marshalling as part of arm.Resource type
func (r *testResource) MarshalJSON() ([]byte, error) {
	return nil, fmt.Errorf("should not be called")
}
