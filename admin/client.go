package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Version is the client version reported in the User-Agent header.
const Version = "0.1.0"

// DefaultUploadPrefix is the API endpoint used when neither the
// configuration nor the call options override it.
const DefaultUploadPrefix = "https://api.cloudinary.com"

// apiVersion is the fixed version segment of every API URL.
const apiVersion = "v1_1"

// Defaults applied when an operation takes a resource type or delivery type
// and the options leave it empty.
const (
	DefaultResourceType = "image"
	DefaultDeliveryType = "upload"
)

// Config carries the account credentials and endpoint for an admin API
// client. It is constructed once at startup and never mutated afterwards.
type Config struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPrefix string
}

// Client is an admin API client. The underlying HTTP client pools
// connections and is safe for concurrent use, so a single Client can be
// shared across goroutines.
type Client struct {
	config     Config
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// New creates an admin API client. Credentials are not validated here;
// each call resolves them (per-call override first, then config) and fails
// before any network attempt when one is missing.
func New(cfg Config, logger zerolog.Logger, opts ...Option) *Client {
	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
		userAgent:  options.userAgent,
		logger:     logger,
	}
}

// Ping checks connectivity and credentials against the service.
func (c *Client) Ping(ctx context.Context, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodGet, []string{"ping"}, nil, opts)
}

// Usage reports the account's usage statistics.
func (c *Client) Usage(ctx context.Context, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodGet, []string{"usage"}, nil, opts)
}

// callAPI builds the request URL from the configured prefix, the API
// version segment, the cloud name and the given path segments, attaches
// Basic auth and the user agent, sends the request and dispatches the
// response into a Response or a typed error.
func (c *Client) callAPI(ctx context.Context, method string, uri []string, params url.Values, opts *CallOptions) (*Response, error) {
	if opts == nil {
		opts = &CallOptions{}
	}

	prefix := firstNonEmpty(opts.UploadPrefix, c.config.UploadPrefix, DefaultUploadPrefix)

	cloudName := firstNonEmpty(opts.CloudName, c.config.CloudName)
	if cloudName == "" {
		return nil, ErrMissingCloudName
	}
	apiKey := firstNonEmpty(opts.APIKey, c.config.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	apiSecret := firstNonEmpty(opts.APISecret, c.config.APISecret)
	if apiSecret == "" {
		return nil, ErrMissingAPISecret
	}

	apiURL := strings.Join(append([]string{prefix, apiVersion, cloudName}, uri...), "/")

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var reqBody io.Reader
	encoded := params.Encode()
	switch method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		if encoded != "" {
			apiURL += "?" + encoded
		}
	default:
		reqBody = strings.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(apiKey, apiSecret)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", apiURL).
		Msg("Calling admin API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ParseError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}

	if errValue, ok := result["error"]; ok {
		return nil, newAPIError(resp.StatusCode, serviceErrorMessage(errValue))
	}

	return newResponse(result, resp.Header)
}

// serviceErrorMessage extracts the message from the "error" entry of an
// error response body.
func serviceErrorMessage(value any) string {
	if m, ok := value.(map[string]any); ok {
		if message, ok := m["message"].(string); ok {
			return message
		}
	}
	return fmt.Sprintf("%v", value)
}
