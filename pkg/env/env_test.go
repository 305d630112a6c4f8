package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func TestValidateVars(t *testing.T) {
	for _, tt := range []struct {
		name    string
		set     map[string]string
		vars    []string
		wantErr string
	}{
		{
			name: "no vars requested",
		},
		{
			name: "all set",
			set:  map[string]string{"AZURE_SUBSCRIPTION_ID": "225e02bc-43d0-43d1-a01a-17e584a4ef69"},
			vars: []string{"AZURE_SUBSCRIPTION_ID"},
		},
		{
			name:    "one missing",
			set:     map[string]string{"AZURE_SUBSCRIPTION_ID": "225e02bc-43d0-43d1-a01a-17e584a4ef69"},
			vars:    []string{"AZURE_SUBSCRIPTION_ID", "APIM_GATEWAY_URL"},
			wantErr: `environment variable "APIM_GATEWAY_URL" unset`,
		},
		{
			name: "all missing",
			vars: []string{"APIM_GATEWAY_URL", "APIM_SUBSCRIPTION_KEY"},
			wantErr: `environment variable "APIM_GATEWAY_URL" unset` + "\n" +
				`environment variable "APIM_SUBSCRIPTION_KEY" unset`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			for k, v := range tt.set {
				cfg.Set(k, v)
			}

			err := ValidateVars(cfg, tt.vars...)
			if err == nil {
				if tt.wantErr != "" {
					t.Errorf("wanted error %q, got nil", tt.wantErr)
				}
				return
			}
			if err.Error() != tt.wantErr {
				t.Errorf("wanted error %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestNewCore(t *testing.T) {
	log := logrus.NewEntry(logrus.StandardLogger())

	for _, tt := range []struct {
		name      string
		cloudName string
		wantCloud string
		wantErr   string
	}{
		{
			name:      "default cloud",
			wantCloud: "AzureCloud",
		},
		{
			name:      "public cloud",
			cloudName: "AzurePublicCloud",
			wantCloud: "AzureCloud",
		},
		{
			name:      "us government cloud",
			cloudName: "AzureUSGovernmentCloud",
			wantCloud: "AzureUSGovernment",
		},
		{
			name:      "unknown cloud",
			cloudName: "AzureGermanCloud",
			wantErr:   `cloud environment "AzureGermanCloud" is unsupported`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			cfg.Set(SubscriptionIDEnvVar, "225e02bc-43d0-43d1-a01a-17e584a4ef69")
			if tt.cloudName != "" {
				cfg.Set(CloudNameEnvVar, tt.cloudName)
			}

			c, err := NewCore(log, COMPONENT_TOOLING, cfg)
			if err != nil {
				if err.Error() != tt.wantErr {
					t.Fatalf("wanted error %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if tt.wantErr != "" {
				t.Fatalf("wanted error %q, got nil", tt.wantErr)
			}

			if c.Environment().ActualCloudName != tt.wantCloud {
				t.Errorf("got cloud %q", c.Environment().ActualCloudName)
			}
			if c.SubscriptionID() != "225e02bc-43d0-43d1-a01a-17e584a4ef69" {
				t.Errorf("got subscription %q", c.SubscriptionID())
			}
			if got := c.Component(); !strings.EqualFold(got, "tooling") {
				t.Errorf("got component %q", got)
			}
		})
	}
}
