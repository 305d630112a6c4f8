package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"reflect"

	"sigs.k8s.io/yaml"

	"github.com/Azure/ai-gateway-lab/pkg/util/pointerutils"
	"github.com/Azure/ai-gateway-lab/pkg/util/uuid"
)

// Config represents one lab deployment: where it goes and the template
// parameters it is deployed with.
type Config struct {
	Location          string `json:"location,omitempty"`
	SecondaryLocation string `json:"secondaryLocation,omitempty"`
	ResourceGroupName string `json:"resourceGroupName,omitempty"`
	SubscriptionID    string `json:"subscriptionId,omitempty"`
	TesterPrincipalID string `json:"testerPrincipalId,omitempty"`

	Configuration *Configuration `json:"configuration,omitempty"`
}

// Configuration represents the configurable template parameters.  Field tags
// double as template parameter names; getParameters relies on that.
type Configuration struct {
	OpenAIName1        *string `json:"openAIName1,omitempty"`
	OpenAIName2        *string `json:"openAIName2,omitempty"`
	StorageAccountName *string `json:"storageAccountName,omitempty"`
	SearchServiceName  *string `json:"searchServiceName,omitempty"`
	APIMServiceName    *string `json:"apimServiceName,omitempty"`
	KeyVaultName       *string `json:"keyVaultName,omitempty"`
	HubName            *string `json:"hubName,omitempty"`
	ProjectName        *string `json:"projectName,omitempty"`

	ModelName     *string `json:"modelName,omitempty"`
	ModelVersion  *string `json:"modelVersion,omitempty"`
	ModelCapacity *int    `json:"modelCapacity,omitempty"`
	ModelSKU      *string `json:"modelSKU,omitempty"`

	ContainerName       *string `json:"containerName,omitempty"`
	SearchSKU           *string `json:"searchSKU,omitempty"`
	APIMSKU             *string `json:"apimSKU,omitempty"`
	PublisherEmail      *string `json:"publisherEmail,omitempty"`
	PublisherName       *string `json:"publisherName,omitempty"`
	TesterPrincipalType *string `json:"testerPrincipalType,omitempty"`

	// consumed by the env file and the check suite, not by any template
	OpenAIAPIVersion *string `json:"openAIAPIVersion,omitempty"`
	SearchIndexName  *string `json:"searchIndexName,omitempty"`
}

// pairedRegion maps a primary region to its default secondary.  Regions
// without an entry fall back to eastus2.
var pairedRegion = map[string]string{
	"australiaeast":  "australiasoutheast",
	"canadacentral":  "canadaeast",
	"centralus":      "eastus2",
	"eastasia":       "southeastasia",
	"eastus":         "westus",
	"eastus2":        "centralus",
	"francecentral":  "francesouth",
	"japaneast":      "japanwest",
	"northcentralus": "southcentralus",
	"northeurope":    "westeurope",
	"southcentralus": "northcentralus",
	"southeastasia":  "eastasia",
	"swedencentral":  "germanywestcentral",
	"uksouth":        "ukwest",
	"westeurope":     "northeurope",
	"westus":         "eastus",
	"westus2":        "westcentralus",
	"westus3":        "eastus",
}

var validTesterPrincipalTypes = []string{"User", "ServicePrincipal", "Group"}

// GetConfig returns the lab configuration from an optional YAML file merged
// over built-in defaults.
func GetConfig(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(data, config)
		if err != nil {
			return nil, err
		}
	}

	if config.Configuration == nil {
		config.Configuration = &Configuration{}
	}

	configuration, err := mergeConfig(config.Configuration, defaultConfiguration())
	if err != nil {
		return nil, err
	}

	config.Configuration = configuration
	return config, nil
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		ModelName:     pointerutils.ToPtr("gpt-4o"),
		ModelVersion:  pointerutils.ToPtr("2024-11-20"),
		ModelCapacity: pointerutils.ToPtr(50),
		ModelSKU:      pointerutils.ToPtr("GlobalStandard"),

		ContainerName:       pointerutils.ToPtr("files"),
		SearchSKU:           pointerutils.ToPtr("basic"),
		APIMSKU:             pointerutils.ToPtr("StandardV2"),
		PublisherEmail:      pointerutils.ToPtr("admin@example.com"),
		PublisherName:       pointerutils.ToPtr("AI Gateway Lab"),
		TesterPrincipalType: pointerutils.ToPtr("User"),

		OpenAIAPIVersion: pointerutils.ToPtr("2025-03-01-preview"),
		SearchIndexName:  pointerutils.ToPtr("ailab-index"),
	}
}

// mergeConfig merges two Configuration structs, where primary input takes
// priority over secondary
func mergeConfig(primary, secondary *Configuration) (*Configuration, error) {
	if primary == nil || secondary == nil {
		return nil, fmt.Errorf("inputs can't be nil")
	}

	sValues := reflect.Indirect(reflect.ValueOf(secondary))
	pValues := reflect.Indirect(reflect.ValueOf(primary))

	for i := 0; i < pValues.NumField(); i++ {
		if pValues.Field(i).IsZero() {
			pValues.Field(i).Set(sValues.Field(i))
		}
	}

	return primary, nil
}

// complete fills in whatever the configuration file and command line left
// unset: the secondary region defaults to the primary's pair and resource
// names default to values derived deterministically from the deployment
// target, so a re-run addresses the same resources.
func (c *Config) complete() {
	if c.SecondaryLocation == "" {
		c.SecondaryLocation = pairedRegion[c.Location]
	}
	if c.SecondaryLocation == "" {
		c.SecondaryLocation = "eastus2"
	}

	suffix := c.uniqueSuffix()

	for field, value := range map[**string]string{
		&c.Configuration.OpenAIName1:        "ailab-aoai-" + c.Location + "-" + suffix,
		&c.Configuration.OpenAIName2:        "ailab-aoai-" + c.SecondaryLocation + "-" + suffix,
		&c.Configuration.StorageAccountName: "ailab" + suffix + "st",
		&c.Configuration.SearchServiceName:  "ailab-search-" + suffix,
		&c.Configuration.APIMServiceName:    "ailab-apim-" + suffix,
		&c.Configuration.KeyVaultName:       "ailab-kv-" + suffix,
		&c.Configuration.HubName:            "ailab-hub-" + suffix,
		&c.Configuration.ProjectName:        "ailab-project-" + suffix,
	} {
		if *field == nil {
			*field = pointerutils.ToPtr(value)
		}
	}
}

// uniqueSuffix derives a short stable token from the deployment target,
// playing the role ARM's uniqueString() plays in handwritten templates.  The
// deployer needs the final names client-side (output threading, env file), so
// the derivation happens here rather than inside the templates.
func (c *Config) uniqueSuffix() string {
	h := sha256.Sum256([]byte(c.SubscriptionID + "/" + c.ResourceGroupName))
	return hex.EncodeToString(h[:])[:8]
}

func (c *Config) validate() error {
	if c.SubscriptionID == "" {
		return fmt.Errorf("subscription ID not set")
	}
	if c.ResourceGroupName == "" {
		return fmt.Errorf("resource group name not set")
	}
	if c.Location == "" {
		return fmt.Errorf("location not set")
	}
	if c.Location == c.SecondaryLocation {
		return fmt.Errorf("secondary location %q must differ from location", c.SecondaryLocation)
	}
	if c.Configuration == nil {
		return fmt.Errorf("configuration not set")
	}
	if c.TesterPrincipalID != "" && !uuid.IsValid(c.TesterPrincipalID) {
		return fmt.Errorf("testerPrincipalId %q must be a valid object ID", c.TesterPrincipalID)
	}

	if c.Configuration.ModelCapacity == nil || *c.Configuration.ModelCapacity <= 0 {
		return fmt.Errorf("modelCapacity must be positive")
	}

	if storageAccountName := c.Configuration.StorageAccountName; storageAccountName != nil &&
		(len(*storageAccountName) < 3 || len(*storageAccountName) > 24) {
		return fmt.Errorf("storageAccountName %q must be between 3 and 24 characters", *storageAccountName)
	}

	if c.Configuration.TesterPrincipalType != nil {
		var ok bool
		for _, t := range validTesterPrincipalTypes {
			ok = ok || *c.Configuration.TesterPrincipalType == t
		}
		if !ok {
			return fmt.Errorf("testerPrincipalType %q must be one of %v", *c.Configuration.TesterPrincipalType, validTesterPrincipalTypes)
		}
	}

	return nil
}
