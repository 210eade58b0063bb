package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// StreamingProfileOptions describes a streaming profile: a display name and
// the representations (one transformation each) the profile generates.
type StreamingProfileOptions struct {
	CallOptions
	DisplayName     string
	Representations []Transformation
}

// ListStreamingProfiles lists the streaming profiles defined in the account.
func (c *Client) ListStreamingProfiles(ctx context.Context, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodGet, []string{"streaming_profiles"}, nil, opts)
}

// GetStreamingProfile looks up a single streaming profile.
func (c *Client) GetStreamingProfile(ctx context.Context, name string, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodGet, []string{"streaming_profiles", name}, nil, opts)
}

// CreateStreamingProfile creates a streaming profile.
func (c *Client) CreateStreamingProfile(ctx context.Context, name string, opts *StreamingProfileOptions) (*Response, error) {
	if opts == nil {
		opts = &StreamingProfileOptions{}
	}

	params, err := streamingProfileParams(opts)
	if err != nil {
		return nil, err
	}
	params.Set("name", name)

	return c.callAPI(ctx, http.MethodPost, []string{"streaming_profiles"}, params, &opts.CallOptions)
}

// UpdateStreamingProfile updates a streaming profile.
func (c *Client) UpdateStreamingProfile(ctx context.Context, name string, opts *StreamingProfileOptions) (*Response, error) {
	if opts == nil {
		opts = &StreamingProfileOptions{}
	}

	params, err := streamingProfileParams(opts)
	if err != nil {
		return nil, err
	}

	return c.callAPI(ctx, http.MethodPut, []string{"streaming_profiles", name}, params, &opts.CallOptions)
}

// DeleteStreamingProfile deletes a streaming profile.
func (c *Client) DeleteStreamingProfile(ctx context.Context, name string, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodDelete, []string{"streaming_profiles", name}, nil, opts)
}

// streamingProfileParams serializes the profile description. Each
// representation is normalized to its transformation string and the set is
// sent as a JSON array.
func streamingProfileParams(opts *StreamingProfileOptions) (url.Values, error) {
	params := url.Values{}
	addIfSet(params, "display_name", opts.DisplayName)

	if len(opts.Representations) > 0 {
		representations := make([]map[string]string, 0, len(opts.Representations))
		for _, transformation := range opts.Representations {
			representations = append(representations, map[string]string{
				"transformation": transformation.String(),
			})
		}

		data, err := json.Marshal(representations)
		if err != nil {
			return nil, fmt.Errorf("failed to encode representations: %w", err)
		}
		params.Set("representations", string(data))
	}

	return params, nil
}
