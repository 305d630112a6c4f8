package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armapimanagement "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/apimanagement/armapimanagement/v3"

	"github.com/Azure/ai-gateway-lab/pkg/util/arm"
	"github.com/Azure/ai-gateway-lab/pkg/util/azureclient"
)

const (
	// APIName is the gateway API the deployer applies the policy to and the
	// checks call through.
	APIName = "azure-openai"

	// PoolBackendName is referenced by name from the gateway policy.
	PoolBackendName = "openai-backend-pool"

	// SubscriptionName is the gateway subscription whose primary key ends up
	// in the env file.
	SubscriptionName = "ailab-subscription"
)

func (g *generator) gatewayService() *arm.Resource {
	return &arm.Resource{
		Resource: &armapimanagement.ServiceResource{
			Identity: &armapimanagement.ServiceIdentity{
				Type: to.Ptr(armapimanagement.ApimIdentityTypeSystemAssigned),
			},
			SKU: &armapimanagement.ServiceSKUProperties{
				Name:     to.Ptr(armapimanagement.SKUType("[parameters('apimSKU')]")),
				Capacity: to.Ptr(int32(1)),
			},
			Properties: &armapimanagement.ServiceProperties{
				PublisherEmail: to.Ptr("[parameters('publisherEmail')]"),
				PublisherName:  to.Ptr("[parameters('publisherName')]"),
			},
			Name:     to.Ptr("[parameters('apimServiceName')]"),
			Type:     to.Ptr("Microsoft.ApiManagement/service"),
			Location: to.Ptr("[parameters('location')]"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.ApiManagement"),
	}
}

// gatewayBackends emits one Single backend per OpenAI account plus the pool
// that load balances across them.  Backend URLs end in /openai: the gateway
// strips its own /openai path prefix before forwarding, so the backend base
// has to restore it.
func (g *generator) gatewayBackends() []*arm.Resource {
	backends := make([]*arm.Resource, 0, 3)

	for _, i := range []string{"1", "2"} {
		backends = append(backends, &arm.Resource{
			Resource: &armapimanagement.BackendContract{
				Properties: &armapimanagement.BackendContractProperties{
					Type:     to.Ptr(armapimanagement.BackendTypeSingle),
					URL:      to.Ptr("[concat(parameters('openAIEndpoint" + i + "'), 'openai')]"),
					Protocol: to.Ptr(armapimanagement.BackendProtocolHTTP),
					TLS: &armapimanagement.BackendTLSProperties{
						ValidateCertificateChain: to.Ptr(true),
						ValidateCertificateName:  to.Ptr(true),
					},
				},
				Name: to.Ptr("[concat(parameters('apimServiceName'), '/', parameters('openAIName" + i + "'))]"),
				Type: to.Ptr("Microsoft.ApiManagement/service/backends"),
			},
			APIVersion: azureclient.APIVersion("Microsoft.ApiManagement"),
			DependsOn: []string{
				"[resourceId('Microsoft.ApiManagement/service', parameters('apimServiceName'))]",
			},
		})
	}

	backends = append(backends, &arm.Resource{
		Resource: &armapimanagement.BackendContract{
			Properties: &armapimanagement.BackendContractProperties{
				Type: to.Ptr(armapimanagement.BackendTypePool),
				Pool: &armapimanagement.BackendBaseParametersPool{
					Services: []*armapimanagement.BackendPoolItem{
						{
							ID:       to.Ptr("[resourceId('Microsoft.ApiManagement/service/backends', parameters('apimServiceName'), parameters('openAIName1'))]"),
							Priority: to.Ptr(int32(1)),
							Weight:   to.Ptr(int32(50)),
						},
						{
							ID:       to.Ptr("[resourceId('Microsoft.ApiManagement/service/backends', parameters('apimServiceName'), parameters('openAIName2'))]"),
							Priority: to.Ptr(int32(1)),
							Weight:   to.Ptr(int32(50)),
						},
					},
				},
			},
			Name: to.Ptr("[concat(parameters('apimServiceName'), '/" + PoolBackendName + "')]"),
			Type: to.Ptr("Microsoft.ApiManagement/service/backends"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.ApiManagement"),
		DependsOn: []string{
			"[resourceId('Microsoft.ApiManagement/service/backends', parameters('apimServiceName'), parameters('openAIName1'))]",
			"[resourceId('Microsoft.ApiManagement/service/backends', parameters('apimServiceName'), parameters('openAIName2'))]",
		},
	})

	return backends
}

func (g *generator) gatewayAPI() *arm.Resource {
	return &arm.Resource{
		Resource: &armapimanagement.APIContract{
			Properties: &armapimanagement.APIContractProperties{
				DisplayName:          to.Ptr("Azure OpenAI"),
				APIType:              to.Ptr(armapimanagement.APITypeHTTP),
				Path:                 to.Ptr("openai"),
				Protocols:            []*armapimanagement.Protocol{to.Ptr(armapimanagement.ProtocolHTTPS)},
				SubscriptionRequired: to.Ptr(true),
				SubscriptionKeyParameterNames: &armapimanagement.SubscriptionKeyParameterNamesContract{
					Header: to.Ptr("api-key"),
					Query:  to.Ptr("subscription-key"),
				},
			},
			Name: to.Ptr("[concat(parameters('apimServiceName'), '/" + APIName + "')]"),
			Type: to.Ptr("Microsoft.ApiManagement/service/apis"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.ApiManagement"),
		DependsOn: []string{
			"[resourceId('Microsoft.ApiManagement/service', parameters('apimServiceName'))]",
		},
	}
}

// gatewayOperations declares the catch-all plus the two responses-API
// operations.  The catch-all keeps every other OpenAI route working; the
// named operations exist so per-operation policies and diagnostics have
// something to attach to.
func (g *generator) gatewayOperations() []*arm.Resource {
	operations := []struct {
		name               string
		displayName        string
		method             string
		urlTemplate        string
		templateParameters []*armapimanagement.ParameterContract
	}{
		{
			name:        "catchall",
			displayName: "All OpenAI operations",
			method:      "POST",
			urlTemplate: "/{*path}",
			templateParameters: []*armapimanagement.ParameterContract{
				{
					Name:     to.Ptr("path"),
					Type:     to.Ptr("string"),
					Required: to.Ptr(true),
				},
			},
		},
		{
			name:        "create-response",
			displayName: "Create response",
			method:      "POST",
			urlTemplate: "/responses",
		},
		{
			name:        "get-response",
			displayName: "Get response",
			method:      "GET",
			urlTemplate: "/responses/{responseId}",
			templateParameters: []*armapimanagement.ParameterContract{
				{
					Name:     to.Ptr("responseId"),
					Type:     to.Ptr("string"),
					Required: to.Ptr(true),
				},
			},
		},
	}

	rs := make([]*arm.Resource, 0, len(operations))
	for _, operation := range operations {
		rs = append(rs, &arm.Resource{
			Resource: &armapimanagement.OperationContract{
				Properties: &armapimanagement.OperationContractProperties{
					DisplayName:        to.Ptr(operation.displayName),
					Method:             to.Ptr(operation.method),
					URLTemplate:        to.Ptr(operation.urlTemplate),
					TemplateParameters: operation.templateParameters,
				},
				Name: to.Ptr("[concat(parameters('apimServiceName'), '/" + APIName + "/" + operation.name + "')]"),
				Type: to.Ptr("Microsoft.ApiManagement/service/apis/operations"),
			},
			APIVersion: azureclient.APIVersion("Microsoft.ApiManagement"),
			DependsOn: []string{
				"[resourceId('Microsoft.ApiManagement/service/apis', parameters('apimServiceName'), '" + APIName + "')]",
			},
		})
	}

	return rs
}

func (g *generator) gatewaySubscription() *arm.Resource {
	return &arm.Resource{
		Resource: &armapimanagement.SubscriptionContract{
			Properties: &armapimanagement.SubscriptionContractProperties{
				Scope:        to.Ptr("/apis"),
				DisplayName:  to.Ptr(SubscriptionName),
				State:        to.Ptr(armapimanagement.SubscriptionStateActive),
				AllowTracing: to.Ptr(false),
			},
			Name: to.Ptr("[concat(parameters('apimServiceName'), '/" + SubscriptionName + "')]"),
			Type: to.Ptr("Microsoft.ApiManagement/service/subscriptions"),
		},
		APIVersion: azureclient.APIVersion("Microsoft.ApiManagement"),
		DependsOn: []string{
			"[resourceId('Microsoft.ApiManagement/service/apis', parameters('apimServiceName'), '" + APIName + "')]",
		},
	}
}
