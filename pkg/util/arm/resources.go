package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"
)

// ArmResource identifies a tracked resource by the components of its ARM
// resource ID, optionally with one child resource below it. The lab only
// ever addresses resources at most one level deep (e.g. a blob container
// under a storage account), so deeper nesting is rejected at parse time.
type ArmResource struct {
	SubscriptionID string
	ResourceGroup  string
	Provider       string
	ResourceType   string
	ResourceName   string
	SubResource    *SubResource
}

// SubResource is a proxy resource nested directly under an ArmResource.
type SubResource struct {
	ResourceType string
	ResourceName string
}

// Parent returns the resource without its child component.
func (r ArmResource) Parent() ArmResource {
	r.SubResource = nil
	return r
}

// String renders the ARM resource ID.
func (r ArmResource) String() string {
	id := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s/%s", r.SubscriptionID, r.ResourceGroup, r.Provider, r.ResourceType, r.ResourceName)
	if r.SubResource != nil {
		id = fmt.Sprintf("%s/%s/%s", id, r.SubResource.ResourceType, r.SubResource.ResourceName)
	}
	return id
}

// ParseArmResourceId parses an ARM resource ID into an ArmResource,
// accepting a top-level resource or one nested a single level below it.
func ParseArmResourceId(resourceId string) (*ArmResource, error) {
	parts := strings.Split(strings.TrimPrefix(resourceId, "/"), "/")
	if len(parts) < 8 || len(parts)%2 != 0 ||
		!strings.EqualFold(parts[0], "subscriptions") ||
		!strings.EqualFold(parts[2], "resourceGroups") ||
		!strings.EqualFold(parts[4], "providers") {
		return nil, fmt.Errorf("%q is not a valid resource ID", resourceId)
	}

	resource := &ArmResource{
		SubscriptionID: parts[1],
		ResourceGroup:  parts[3],
		Provider:       parts[5],
		ResourceType:   parts[6],
		ResourceName:   parts[7],
	}

	switch len(parts) {
	case 8:
	case 10:
		resource.SubResource = &SubResource{
			ResourceType: parts[8],
			ResourceName: parts[9],
		}
	default:
		return nil, fmt.Errorf("%q nests more than one level below the resource", resourceId)
	}

	return resource, nil
}
