package admin

import (
	"fmt"
	"net/http"
	"runtime"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		timeout:   60 * time.Second,
		userAgent: defaultUserAgent(),
	}
}

func defaultUserAgent() string {
	return fmt.Sprintf("cloudctl/%s (%s)", Version, runtime.Version())
}

// WithTimeout sets the default HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient sets a custom HTTP client. The client is shared across all
// calls, so it should reuse connections.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// CallOptions overrides the client configuration for a single call. The
// zero value leaves the client configuration in effect. A per-call value
// always wins over the client configuration, which in turn wins over the
// built-in default (upload prefix only; credentials have no default).
type CallOptions struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPrefix string
	Timeout      time.Duration
}
