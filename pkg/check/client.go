package check

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// Response header the gateway policy copies the serving region into.
const regionHeader = "x-backend-region"

const maxProbeBody = 1 << 20

// responsesRequest is the subset of the responses API request body the
// probes send.
type responsesRequest struct {
	Model string          `json:"model"`
	Input string          `json:"input"`
	Tools []responsesTool `json:"tools,omitempty"`
}

type responsesTool struct {
	Type       string          `json:"type"`
	FileSearch *fileSearchTool `json:"file_search,omitempty"`
}

type fileSearchTool struct {
	RankingOptions rankingOptions `json:"ranking_options"`
}

type rankingOptions struct {
	Ranker string `json:"ranker"`
}

type responsesResponse struct {
	Model  string `json:"model"`
	Output []struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

func (r *responsesResponse) outputText() string {
	var texts []string
	for _, output := range r.Output {
		for _, content := range output.Content {
			if content.Type == "output_text" && content.Text != "" {
				texts = append(texts, content.Text)
			}
		}
	}
	return strings.Join(texts, "\n")
}

// responsesResult summarises one successful call to the responses API.
type responsesResult struct {
	Region      string
	Model       string
	OutputText  string
	TotalTokens int
	Latency     time.Duration
}

// requestError is returned for non-2xx replies to data plane probes.
type requestError struct {
	url    string
	status int
	body   string
}

func (e *requestError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.url, e.status, e.body)
}

type authFunc func(*http.Request) error

// gatewayAuth authenticates with the gateway subscription key.
func (c *checker) gatewayAuth(req *http.Request) error {
	req.Header.Set("api-key", c.settings.subscriptionKey)
	return nil
}

// bearerAuth mints an AAD token for scope on every request.
func (c *checker) bearerAuth(scope string) authFunc {
	return func(req *http.Request) error {
		token, err := c.tokenCredential.GetToken(req.Context(), policy.TokenRequestOptions{Scopes: []string{scope}})
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token.Token)
		return nil
	}
}

// do sends one authenticated request, retrying a single time on throttling
// or a server-side failure, matching the retry the gateway policy applies to
// its own backends.
func (c *checker) do(ctx context.Context, method, url string, body []byte, auth authFunc) (*http.Response, error) {
	newRequest := func() (*http.Request, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		return req, auth(req)
	}

	req, err := newRequest()
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= http.StatusInternalServerError {
		delay := retryAfter(res)
		res.Body.Close()

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if req, err = newRequest(); err != nil {
			return nil, err
		}
		if res, err = c.http.Do(req); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func retryAfter(res *http.Response) time.Duration {
	if s := res.Header.Get("Retry-After"); s != "" {
		if seconds, err := strconv.Atoi(s); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Second
}

// callResponses drives one request through the responses API at baseURL and
// summarises the reply.
func (c *checker) callResponses(ctx context.Context, baseURL, prompt string, tools []responsesTool, auth authFunc) (*responsesResult, error) {
	body, err := json.Marshal(responsesRequest{
		Model: c.settings.deployment,
		Input: prompt,
		Tools: tools,
	})
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(baseURL, "/") + "/openai/responses?api-version=" + c.settings.apiVersion

	start := time.Now()

	res, err := c.do(ctx, http.MethodPost, url, body, auth)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	latency := time.Since(start)

	b, err := io.ReadAll(io.LimitReader(res.Body, maxProbeBody))
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, &requestError{url: url, status: res.StatusCode, body: snippet(b)}
	}

	var parsed responsesResponse
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("%s: parsing response: %w", url, err)
	}

	region := res.Header.Get(regionHeader)
	if region == "" {
		region = "unknown"
	}

	return &responsesResult{
		Region:      region,
		Model:       parsed.Model,
		OutputText:  parsed.outputText(),
		TotalTokens: parsed.Usage.TotalTokens,
		Latency:     latency,
	}, nil
}

// snippet trims a response body for inclusion in an error message.
func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
