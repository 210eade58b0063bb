package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Rate-limit headers returned by the service on every successful response.
const (
	headerRateLimitAllowed   = "x-featureratelimit-limit"
	headerRateLimitReset     = "x-featureratelimit-reset"
	headerRateLimitRemaining = "x-featureratelimit-remaining"
)

// RateLimit holds the quota accounting the service reports with each
// successful response.
type RateLimit struct {
	Allowed   int
	ResetAt   time.Time
	Remaining int
}

// Response wraps a decoded API response body together with the rate-limit
// accounting parsed from the response headers. It is constructed once per
// successful call and never mutated afterwards.
type Response struct {
	Body      map[string]any
	RateLimit RateLimit
}

// newResponse builds a Response from a decoded body and the response
// headers. All three rate-limit headers must be present.
func newResponse(body map[string]any, header http.Header) (*Response, error) {
	allowed, err := intHeader(header, headerRateLimitAllowed)
	if err != nil {
		return nil, err
	}

	remaining, err := intHeader(header, headerRateLimitRemaining)
	if err != nil {
		return nil, err
	}

	reset := header.Get(headerRateLimitReset)
	if reset == "" {
		return nil, fmt.Errorf("missing %s header in response", headerRateLimitReset)
	}
	resetAt, err := http.ParseTime(reset)
	if err != nil {
		return nil, fmt.Errorf("invalid %s header %q: %w", headerRateLimitReset, reset, err)
	}

	return &Response{
		Body: body,
		RateLimit: RateLimit{
			Allowed:   allowed,
			ResetAt:   resetAt,
			Remaining: remaining,
		},
	}, nil
}

func intHeader(header http.Header, name string) (int, error) {
	raw := header.Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s header in response", name)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s header %q: %w", name, raw, err)
	}

	return value, nil
}

// NextCursor returns the pagination cursor from the response body, or an
// empty string when the listing is exhausted.
func (r *Response) NextCursor() string {
	cursor, _ := r.Body["next_cursor"].(string)
	return cursor
}

// Resource is a typed view of one entry in a resource listing.
type Resource struct {
	PublicID     string    `json:"public_id"`
	Format       string    `json:"format"`
	Version      int64     `json:"version"`
	ResourceType string    `json:"resource_type"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
	Bytes        int64     `json:"bytes"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	URL          string    `json:"url"`
	SecureURL    string    `json:"secure_url"`
	Tags         []string  `json:"tags"`
}

// Resources decodes the "resources" entry of a listing response into typed
// values. It returns nil when the response carries no resource list.
func (r *Response) Resources() ([]Resource, error) {
	raw, ok := r.Body["resources"]
	if !ok {
		return nil, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode resources: %w", err)
	}

	var resources []Resource
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode resources: %w", err)
	}

	return resources, nil
}
