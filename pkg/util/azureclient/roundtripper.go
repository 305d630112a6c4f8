package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/sirupsen/logrus"

	utillog "github.com/Azure/ai-gateway-lab/pkg/util/log"
)

const (
	responseCode         = "response_status_code"
	contentLength        = "content_length"
	durationMilliseconds = "duration_milliseconds"
)

type PolicyFunc func(req *policy.Request) (*http.Response, error)

func (p PolicyFunc) Do(req *policy.Request) (*http.Response, error) {
	return p(req)
}

var _ policy.Policy = PolicyFunc(nil)

// NewLoggingPolicy logs outgoing requests of track 2 SDK clients the same way
// NewCustomRoundTripper does for everything else.
func NewLoggingPolicy() policy.Policy {
	return PolicyFunc(func(req *policy.Request) (*http.Response, error) {
		return loggingRoundTripper(req.Raw(), req.Next)
	})
}

// NewCustomRoundTripper wraps rt so that every outgoing request and its
// response are logged.
func NewCustomRoundTripper(rt http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return loggingRoundTripper(req, func() (*http.Response, error) {
			return rt.RoundTrip(req)
		})
	})
}

func loggingRoundTripper(req *http.Request, next func() (*http.Response, error)) (*http.Response, error) {
	requestTime := time.Now()

	l := utillog.GetLogger().WithFields(logrus.Fields{
		"request_URL":    req.URL.Host,
		"request_method": req.Method,
	})

	l.Info("HttpRequestStart")

	res, err := next()

	l = enrichLogWithResponse(l, res, requestTime)
	l.Info("HttpRequestEnd")

	return res, err
}

func enrichLogWithResponse(l *logrus.Entry, res *http.Response, requestTime time.Time) *logrus.Entry {
	if res == nil {
		return l.WithFields(logrus.Fields{
			responseCode:         "0",
			durationMilliseconds: time.Since(requestTime).Milliseconds(),
		})
	}

	return l.WithFields(logrus.Fields{
		responseCode:         res.StatusCode,
		contentLength:        res.ContentLength,
		durationMilliseconds: time.Since(requestTime).Milliseconds(),
	})
}
