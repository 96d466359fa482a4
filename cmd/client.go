// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	apiEndpoint string
	apiToken    string
)

// envelope mirrors the JSON body every API response is wrapped in.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Demo    *bool           `json:"demo"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type apiClient struct {
	http *resty.Client
}

// do sends one request and unwraps the response envelope, turning failures
// into errors carrying the server message.
func (c *apiClient) do(ctx context.Context, method, path string, query map[string]string, body any) (*envelope, error) {
	var out envelope

	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		ForceContentType("application/json").
		SetResult(&out).
		SetError(&out)

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		msg := out.Error
		if msg == "" {
			msg = resp.Status()
		}
		return nil, fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode(), msg)
	}

	return &out, nil
}

// getClient builds a client for the configured endpoint, defaulting the
// token to PORTFOLIO_TOKEN.
func getClient() *apiClient {
	endpoint := apiEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	token := apiToken
	if token == "" {
		token = os.Getenv("PORTFOLIO_TOKEN")
	}

	c := resty.New().
		SetBaseURL(strings.TrimSuffix(endpoint, "/")).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if token != "" {
		c.SetAuthToken(token)
	}

	return &apiClient{http: c}
}
