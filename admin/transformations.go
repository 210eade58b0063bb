package admin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListOptions controls paginated listings of named configuration objects
// (transformations, upload presets, upload mappings).
type ListOptions struct {
	CallOptions
	NextCursor string
	MaxResults int
}

// UpdateTransformationOptions enumerates the transformation fields the
// update call can change. At least one must be set.
type UpdateTransformationOptions struct {
	CallOptions
	AllowedForStrict *bool
	UnsafeUpdate     *Transformation
}

// ListTransformations lists the transformations defined in the account.
func (c *Client) ListTransformations(ctx context.Context, opts *ListOptions) (*Response, error) {
	if opts == nil {
		opts = &ListOptions{}
	}
	return c.callAPI(ctx, http.MethodGet, []string{"transformations"}, listParams(opts), &opts.CallOptions)
}

// GetTransformation looks up a single transformation, including its derived
// resources (paginated through the list options).
func (c *Client) GetTransformation(ctx context.Context, transformation Transformation, opts *ListOptions) (*Response, error) {
	if opts == nil {
		opts = &ListOptions{}
	}

	uri := []string{"transformations", transformation.String()}
	return c.callAPI(ctx, http.MethodGet, uri, listParams(opts), &opts.CallOptions)
}

// CreateTransformation creates a named transformation from a definition.
func (c *Client) CreateTransformation(ctx context.Context, name string, definition Transformation, opts *CallOptions) (*Response, error) {
	params := url.Values{}
	params.Set("transformation", definition.String())

	return c.callAPI(ctx, http.MethodPost, []string{"transformations", name}, params, opts)
}

// UpdateTransformation updates a transformation. It fails with ErrNoUpdates
// before any network call when the options carry nothing to change.
func (c *Client) UpdateTransformation(ctx context.Context, transformation Transformation, opts *UpdateTransformationOptions) (*Response, error) {
	if opts == nil || (opts.AllowedForStrict == nil && opts.UnsafeUpdate == nil) {
		return nil, ErrNoUpdates
	}

	params := url.Values{}
	if opts.AllowedForStrict != nil {
		params.Set("allowed_for_strict", strconv.FormatBool(*opts.AllowedForStrict))
	}
	if opts.UnsafeUpdate != nil {
		params.Set("unsafe_update", opts.UnsafeUpdate.String())
	}

	uri := []string{"transformations", transformation.String()}
	return c.callAPI(ctx, http.MethodPut, uri, params, &opts.CallOptions)
}

// DeleteTransformation deletes a transformation.
func (c *Client) DeleteTransformation(ctx context.Context, transformation Transformation, opts *CallOptions) (*Response, error) {
	uri := []string{"transformations", transformation.String()}
	return c.callAPI(ctx, http.MethodDelete, uri, nil, opts)
}

func listParams(opts *ListOptions) url.Values {
	params := url.Values{}
	addIfSet(params, "next_cursor", opts.NextCursor)
	addInt(params, "max_results", opts.MaxResults)
	return params
}
