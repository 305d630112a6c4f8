package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Azure/ai-gateway-lab/pkg/env"
)

// fakeGateway imitates the APIM surface the load balance check talks to:
// subscription-key auth, the responses API shape, and the region header the
// policy copies from the serving backend.
type fakeGateway struct {
	key     string
	regions []string

	requests  int
	throttles int
}

func (g *fakeGateway) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != g.key {
			http.Error(w, `{"statusCode": 401, "message": "Access denied due to missing subscription key."}`, http.StatusUnauthorized)
			return
		}

		if r.Method != http.MethodPost || !strings.HasPrefix(r.URL.Path, "/openai/responses") {
			http.NotFound(w, r)
			return
		}

		if g.throttles > 0 {
			g.throttles--
			w.Header().Set("Retry-After", "0")
			http.Error(w, `{"statusCode": 429, "message": "Rate limit is exceeded."}`, http.StatusTooManyRequests)
			return
		}

		var req responsesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("x-backend-region", g.regions[g.requests%len(g.regions)])
		g.requests++

		json.NewEncoder(w).Encode(map[string]interface{}{
			"model":  req.Model,
			"output": []map[string]interface{}{{"content": []map[string]string{{"type": "output_text", "text": "ok"}}}},
			"usage":  map[string]int{"total_tokens": 7},
		})
	}
}

func TestLoadBalance(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name     string
		gateway  *fakeGateway
		key      string
		requests int
		wantErr  string
	}{
		{
			name:     "spread across two regions",
			gateway:  &fakeGateway{key: "test-key", regions: []string{"East US", "East US 2"}},
			key:      "test-key",
			requests: 10,
		},
		{
			name:     "throttled request is retried",
			gateway:  &fakeGateway{key: "test-key", regions: []string{"East US", "East US 2"}, throttles: 1},
			key:      "test-key",
			requests: 4,
		},
		{
			name:     "single region fails",
			gateway:  &fakeGateway{key: "test-key", regions: []string{"East US"}},
			key:      "test-key",
			requests: 5,
			wantErr:  "all 5 requests went to the same region; check the gateway backend pool configuration",
		},
		{
			name:    "wrong subscription key",
			gateway: &fakeGateway{key: "test-key", regions: []string{"East US"}},
			key:     "stale-key",
			wantErr: `request 1: `, // prefix; the body is the gateway's 401 payload
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.gateway.handler())
			defer server.Close()

			c := testChecker(t, map[string]string{
				env.APIMGatewayURLEnvVar:      server.URL,
				env.APIMSubscriptionKeyEnvVar: tt.key,
			})

			err := c.LoadBalance(ctx, tt.requests)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if err == nil || !strings.HasPrefix(err.Error(), tt.wantErr) {
				t.Errorf("got error %v, want prefix %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBalanceRequiresEnvironment(t *testing.T) {
	c := testChecker(t, map[string]string{
		env.APIMGatewayURLEnvVar: "https://ailab.azure-api.net",
	})

	err := c.LoadBalance(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), env.APIMSubscriptionKeyEnvVar) {
		t.Errorf("got error %v, want it to name %s", err, env.APIMSubscriptionKeyEnvVar)
	}
}
