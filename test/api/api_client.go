/*
Copyright 2026 the Foody API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Result is a decoded response.  Data is only guaranteed to be populated
// for 2xx responses, error bodies are decoded on a best effort basis.
type Result[T any] struct {
	StatusCode int
	Data       T
	Body       []byte
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	config    *TestConfig
	endpoints *Endpoints
	contract  *ContractValidator
	log       logr.Logger
}

var _ FoodAPI = &APIClient{}

// Option customizes an APIClient.
type Option func(*APIClient)

// WithLogger sets the logger used for request tracing.
func WithLogger(log logr.Logger) Option {
	return func(c *APIClient) {
		c.log = log
	}
}

// WithAuthToken attaches a bearer token to every request.
func WithAuthToken(token string) Option {
	return func(c *APIClient) {
		c.authToken = token
	}
}

func NewAPIClientWithConfig(config *TestConfig, options ...Option) (*APIClient, error) {
	c := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
		log:       logr.Discard(),
	}

	for _, o := range options {
		o(c)
	}

	if config.ValidateContract {
		contract, err := NewContractValidator()
		if err != nil {
			return nil, err
		}

		c.contract = contract
	}

	return c, nil
}

func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.log.Error(err, context, "method", method, "path", path, "duration", duration, "traceID", extractTraceID(traceParent))
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	c.log.Info("unexpected status", "method", method, "path", path, "expected", expectedStatus, "got", actualStatus, "body", body, "traceID", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace ID per request lets a failure be found in the service logs.
func generateTraceID() string {
	id := uuid.New()

	return hex.EncodeToString(id[:])
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	id := uuid.New()

	return hex.EncodeToString(id[:8])
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(data), nil
}

// doRequest performs a request and reads the whole response body.  When
// expectedStatus is non-zero any other status results in a *StatusError.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int) (*http.Response, []byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		c.log.Info("request", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", extractTraceID(traceParent))
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.log.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	if c.contract != nil {
		if err := c.contract.ValidateResponse(ctx, req, resp, respBody); err != nil {
			c.logError(method, path, duration, traceParent, err, "contract validation failed")
			return resp, respBody, fmt.Errorf("%w (trace ID: %s)", err, extractTraceID(traceParent))
		}
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)

		return resp, respBody, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			TraceID:    extractTraceID(traceParent),
		}
	}

	return resp, respBody, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// decodeResult unmarshals the response body into a Result.  Error bodies
// are not always JSON, in that case only the status and raw body are kept.
func decodeResult[T any](resp *http.Response, body []byte) (*Result[T], error) {
	result := &Result[T]{
		StatusCode: resp.StatusCode,
		Body:       body,
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(body, &result.Data); err != nil {
		if isSuccess(resp.StatusCode) {
			return nil, fmt.Errorf("unmarshaling response: %w", err)
		}

		var zero T

		result.Data = zero
	}

	return result, nil
}

// Authenticate exchanges credentials for an access token.
func (c *APIClient) Authenticate(ctx context.Context, request AuthenticationRequest) (string, error) {
	body, err := jsonBody(request)
	if err != nil {
		return "", err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Authentication(), body, http.StatusOK)
	if err != nil {
		return "", fmt.Errorf("authentication failed: %w", err)
	}

	var response AuthenticationResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("unmarshaling authentication response: %w", err)
	}

	if strings.TrimSpace(response.AccessToken) == "" {
		return "", ErrMissingToken
	}

	return response.AccessToken, nil
}

// CreateFood posts a new food revue.  The payload is usually a FoodDto but
// any JSON value is accepted so invalid bodies can be exercised.
func (c *APIClient) CreateFood(ctx context.Context, payload any) (*Result[ApiResponse], error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateFood(), body, 0)
	if err != nil {
		return nil, fmt.Errorf("creating food: %w", err)
	}

	return decodeResult[ApiResponse](resp, respBody)
}

// EditFood applies a partial update to a food revue.
func (c *APIClient) EditFood(ctx context.Context, foodID string, patch Patch) (*Result[ApiResponse], error) {
	body, err := jsonBody(patch)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodPatch, c.endpoints.EditFood(foodID), body, 0)
	if err != nil {
		return nil, fmt.Errorf("editing food %q: %w", foodID, err)
	}

	return decodeResult[ApiResponse](resp, respBody)
}

func (c *APIClient) ListFoods(ctx context.Context) (*Result[[]ApiResponse], error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListFoods(), nil, 0)
	if err != nil {
		return nil, fmt.Errorf("listing foods: %w", err)
	}

	return decodeResult[[]ApiResponse](resp, respBody)
}

func (c *APIClient) DeleteFood(ctx context.Context, foodID string) (*Result[ApiResponse], error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeleteFood(foodID), nil, 0)
	if err != nil {
		return nil, fmt.Errorf("deleting food %q: %w", foodID, err)
	}

	return decodeResult[ApiResponse](resp, respBody)
}
