package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"reflect"
	"testing"
)

func TestParseArmResourceId(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *ArmResource
		err   string
	}{
		{
			name:  "resource",
			input: "/subscriptions/abc/resourceGroups/ailab/providers/Microsoft.Search/searchServices/ailab-search",
			want: &ArmResource{
				SubscriptionID: "abc",
				ResourceGroup:  "ailab",
				Provider:       "Microsoft.Search",
				ResourceType:   "searchServices",
				ResourceName:   "ailab-search",
			},
		},
		{
			name:  "child resource",
			input: "/subscriptions/abc/resourcegroups/ailab/providers/Microsoft.CognitiveServices/accounts/ailab-aoai-eastus2/deployments/gpt-4o",
			want: &ArmResource{
				SubscriptionID: "abc",
				ResourceGroup:  "ailab",
				Provider:       "Microsoft.CognitiveServices",
				ResourceType:   "accounts",
				ResourceName:   "ailab-aoai-eastus2",
				SubResource: &SubResource{
					ResourceType: "deployments",
					ResourceName: "gpt-4o",
				},
			},
		},
		{
			name:  "truncated",
			input: "/subscriptions/abc/resourceGroups/ailab/providers",
			err:   `"/subscriptions/abc/resourceGroups/ailab/providers" is not a valid resource ID`,
		},
		{
			name:  "not a resource ID",
			input: "/foo/abc/bar/ailab/providers/Microsoft.Search/searchServices/ailab-search",
			err:   `"/foo/abc/bar/ailab/providers/Microsoft.Search/searchServices/ailab-search" is not a valid resource ID`,
		},
		{
			name:  "dangling segment",
			input: "/subscriptions/abc/resourceGroups/ailab/providers/Microsoft.Storage/storageAccounts/ailabst/blobServices",
			err:   `"/subscriptions/abc/resourceGroups/ailab/providers/Microsoft.Storage/storageAccounts/ailabst/blobServices" is not a valid resource ID`,
		},
		{
			name:  "nested too deep",
			input: "/subscriptions/abc/resourceGroups/ailab/providers/Microsoft.Storage/storageAccounts/ailabst/blobServices/default/containers/files",
			err:   `"/subscriptions/abc/resourceGroups/ailab/providers/Microsoft.Storage/storageAccounts/ailabst/blobServices/default/containers/files" nests more than one level below the resource`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resource, err := ParseArmResourceId(test.input)
			if test.err != "" {
				if err == nil || err.Error() != test.err {
					t.Fatalf("want error %q, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(resource, test.want) {
				t.Errorf("want %+v, got %+v", test.want, resource)
			}
		})
	}
}

func TestArmResourceString(t *testing.T) {
	resource := ArmResource{
		SubscriptionID: "abc",
		ResourceGroup:  "ailab",
		Provider:       "Microsoft.Storage",
		ResourceType:   "storageAccounts",
		ResourceName:   "ailabst",
		SubResource: &SubResource{
			ResourceType: "containers",
			ResourceName: "files",
		},
	}

	want := "/subscriptions/abc/resourceGroups/ailab/providers/Microsoft.Storage/storageAccounts/ailabst/containers/files"
	if got := resource.String(); got != want {
		t.Errorf("want %s, got %s", want, got)
	}

	want = "/subscriptions/abc/resourceGroups/ailab/providers/Microsoft.Storage/storageAccounts/ailabst"
	if got := resource.Parent().String(); got != want {
		t.Errorf("want %s, got %s", want, got)
	}
}
