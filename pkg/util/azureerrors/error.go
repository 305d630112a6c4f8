package azureerrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
)

const (
	CODE_AUTHFAILED   = "AuthorizationFailed"
	CODE_DEPLOYACTIVE = "DeploymentActive"
	CODE_DEPLOYFAILED = "DeploymentFailed"
	CODE_FORBIDDEN    = "Forbidden"
	CODE_RGNOTFOUND   = "ResourceGroupNotFound"
)

// HasAuthorizationFailedError returns true if the error is, or contains, an
// AuthorizationFailed error
func HasAuthorizationFailedError(err error) bool {
	// Check go-autorest SDK errors (old SDK)
	if detailedErr, ok := err.(autorest.DetailedError); ok {
		if serviceErr, ok := detailedErr.Original.(*azure.ServiceError); ok {
			if serviceErr.Code == CODE_AUTHFAILED {
				return true
			}
		}
		if requestErr, ok := detailedErr.Original.(*azure.RequestError); ok &&
			requestErr.ServiceError != nil &&
			requestErr.ServiceError.Code == CODE_AUTHFAILED {
			return true
		}
	}

	if serviceErr, ok := err.(*azure.ServiceError); ok &&
		serviceErr.Code == CODE_DEPLOYFAILED {
		for _, d := range serviceErr.Details {
			if code, ok := d["code"].(string); ok &&
				code == CODE_FORBIDDEN {
				if message, ok := d["message"].(string); ok {
					var ce struct {
						Error struct {
							Code string `json:"code"`
						} `json:"error"`
					}
					if json.Unmarshal([]byte(message), &ce) == nil &&
						ce.Error.Code == CODE_AUTHFAILED {
						return true
					}
				}
			}
		}
	}

	// Check azcore SDK errors (new SDK)
	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		if responseError.ErrorCode == CODE_AUTHFAILED {
			return true
		}
	}

	return false
}

// IsDeploymentActiveError returns true it the error is a DeploymentActive
// error.
func IsDeploymentActiveError(err error) bool {
	// Check go-autorest SDK errors (old SDK)
	if detailedErr, ok := err.(autorest.DetailedError); ok {
		if requestErr, ok := detailedErr.Original.(azure.RequestError); ok &&
			requestErr.ServiceError != nil &&
			requestErr.ServiceError.Code == CODE_DEPLOYACTIVE {
			return true
		}
	}

	// Check azcore SDK errors (new SDK)
	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		if responseError.ErrorCode == CODE_DEPLOYACTIVE {
			return true
		}
	}

	return false
}

// IsConflictError returns true if the error is an HTTP 409.  Role assignment
// and vault secret writes racing a redeployment surface as conflicts.
func IsConflictError(err error) bool {
	var detailedErr autorest.DetailedError
	if errors.As(err, &detailedErr) {
		if statusCode, ok := detailedErr.StatusCode.(int); ok {
			return statusCode == http.StatusConflict
		}
	}

	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode == http.StatusConflict
	}

	return false
}

// IsUnauthorizedOrForbidden returns true if the error is an HTTP 401 or 403.
// Data plane calls made without the required role assignment fail this way.
func IsUnauthorizedOrForbidden(err error) bool {
	var detailedErr autorest.DetailedError
	if errors.As(err, &detailedErr) {
		if statusCode, ok := detailedErr.StatusCode.(int); ok {
			return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
		}
	}

	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode == http.StatusUnauthorized || responseError.StatusCode == http.StatusForbidden
	}

	return false
}

func IsNotFoundError(err error) bool {
	var detailedErr autorest.DetailedError
	if errors.As(err, &detailedErr) {
		if statusCode, ok := detailedErr.StatusCode.(int); ok {
			return statusCode == http.StatusNotFound
		}
	}

	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode == http.StatusNotFound
	}

	return false
}

// ResourceGroupNotFound returns true if the error is an ResourceGroupNotFound error
func ResourceGroupNotFound(err error) bool {
	// Check go-autorest SDK errors (old SDK)
	if detailedErr, ok := err.(autorest.DetailedError); ok {
		if serviceErr, ok := detailedErr.Original.(*azure.ServiceError); ok {
			if serviceErr.Code == CODE_RGNOTFOUND {
				return true
			}
		}
		if requestErr, ok := detailedErr.Original.(*azure.RequestError); ok &&
			requestErr.ServiceError != nil &&
			requestErr.ServiceError.Code == CODE_RGNOTFOUND {
			return true
		}
	}

	// Check azcore SDK errors (new SDK)
	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		if responseError.ErrorCode == CODE_RGNOTFOUND {
			return true
		}
	}

	return false
}
