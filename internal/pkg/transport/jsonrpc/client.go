// Package jsonrpc provides a generic JSON-RPC 2.0 client implementation over HTTP.
// It is the single handle through which the wallet provider and the chain node
// are reached, and it surfaces provider errors with their numeric code so
// callers can tell a user rejection apart from a failed call.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// Error is the error object of a JSON-RPC 2.0 response.
//
// It matches ErrProviderReturnedError with errors.Is, and can be extracted
// with errors.As to inspect the code (e.g. 4001 for a request the user
// rejected in the wallet, per EIP-1193).
type Error struct {
	Code    int             `json:"code"`           // Error code defined by the JSON-RPC spec or the provider
	Message string          `json:"message"`        // Human-readable error message
	Data    json.RawMessage `json:"data,omitempty"` // Optional provider-specific payload (e.g. revert data)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

// Is reports whether target is ErrProviderReturnedError.
func (e *Error) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	Error   *Error          `json:"error"`   // Set when the call failed
	Result  json.RawMessage `json:"result"`  // Raw result payload returned by the server
}

// Err returns the response's error object, or nil if the call succeeded.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client defines the interface for a generic JSON-RPC client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
// It sends JSON-RPC requests to the configured provider endpoint using the provided HTTP client.
type client struct {
	providerEndpoint string                // The URL of the remote JSON-RPC server
	httpClient       *retryablehttp.Client // The HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// It returns the raw result as a json.RawMessage or an error if the request or server fails.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// NewClient constructs and returns a Client that will send JSON-RPC requests
// to the specified provider endpoint using the given HTTP client
// (see the transport/http package for a preconfigured one).
func NewClient(httpClient *retryablehttp.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
