// Package kindred is the adapter for the Kindred home-swap platform's
// GraphQL API. It provides the authenticated transport, the paginated home
// search client, and the OTP login flow.
package kindred

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

// Default transport settings matching the platform's web client.
const (
	DefaultAPIURL        = "https://app.livekindred.com/api/graphql"
	DefaultClientName    = "Web"
	DefaultClientVersion = "1.929.3"
	defaultOrigin        = "https://livekindred.com"
	defaultTimeout       = 30 * time.Second
)

// Config holds the GraphQL transport settings.
type Config struct {
	// URL is the GraphQL endpoint.
	URL string

	// ClientName and ClientVersion identify this client to the platform.
	ClientName    string
	ClientVersion string

	// Timeout bounds a single GraphQL request.
	Timeout time.Duration
}

// DefaultConfig returns the transport settings of the platform's web client.
func DefaultConfig() Config {
	return Config{
		URL:           DefaultAPIURL,
		ClientName:    DefaultClientName,
		ClientVersion: DefaultClientVersion,
		Timeout:       defaultTimeout,
	}
}

// Client posts GraphQL operations to the platform.
// It implements domain.GraphQLExecutor.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a transport with the given config, filling zero values
// from the defaults.
func NewClient(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.URL == "" {
		cfg.URL = def.URL
	}
	if cfg.ClientName == "" {
		cfg.ClientName = def.ClientName
	}
	if cfg.ClientVersion == "" {
		cfg.ClientVersion = def.ClientVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// gqlRequest is the GraphQL POST body.
type gqlRequest struct {
	OperationName string                 `json:"operationName"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
}

// gqlEnvelope is the GraphQL response envelope.
type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// Do posts one GraphQL operation and returns the data payload.
// An empty token sends the request unauthenticated (the login mutations).
// A non-2xx status or an errors field in the envelope fails with an
// UpstreamError carrying the platform's message verbatim.
func (c *Client) Do(ctx context.Context, operationName, query string, variables map[string]interface{}, token string) (json.RawMessage, error) {
	if variables == nil {
		variables = map[string]interface{}{}
	}

	body, err := json.Marshal(gqlRequest{
		OperationName: operationName,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		return nil, domain.NewUpstreamError(operationName, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewUpstreamError(operationName, err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError(operationName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(operationName, fmt.Errorf("read response: %w", err))
	}

	var envelope gqlEnvelope
	decodeErr := json.Unmarshal(respBody, &envelope)

	// GraphQL errors take priority over the status code so the platform's
	// own message reaches the caller.
	if decodeErr == nil && len(envelope.Errors) > 0 && string(envelope.Errors) != "null" {
		return nil, domain.NewUpstreamError(operationName, fmt.Errorf("%s", envelope.Errors))
	}
	if resp.StatusCode >= 400 {
		return nil, domain.NewUpstreamError(operationName,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(respBody, 512)))
	}
	if decodeErr != nil {
		return nil, domain.NewUpstreamError(operationName, fmt.Errorf("decode response: %w", decodeErr))
	}

	return envelope.Data, nil
}

// setHeaders applies the platform web client's header set.
func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apollographql-client-name", c.cfg.ClientName)
	req.Header.Set("apollographql-client-version", c.cfg.ClientVersion)
	req.Header.Set("Origin", defaultOrigin)
	req.Header.Set("Referer", defaultOrigin+"/")
	req.Header.Set("x-locale", "en")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// truncate caps a response body for error messages.
func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}

// Ensure Client implements domain.GraphQLExecutor at compile time.
var _ domain.GraphQLExecutor = (*Client)(nil)
