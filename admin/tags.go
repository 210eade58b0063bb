package admin

import (
	"context"
	"net/http"
	"net/url"
)

// ListTagsOptions controls a tag listing.
type ListTagsOptions struct {
	CallOptions
	ResourceType string // defaults to "image"
	NextCursor   string
	MaxResults   int
	Prefix       string
}

// ListTags lists the tags used on resources of one resource type.
func (c *Client) ListTags(ctx context.Context, opts *ListTagsOptions) (*Response, error) {
	if opts == nil {
		opts = &ListTagsOptions{}
	}

	uri := []string{"tags", firstNonEmpty(opts.ResourceType, DefaultResourceType)}

	params := url.Values{}
	addIfSet(params, "next_cursor", opts.NextCursor)
	addInt(params, "max_results", opts.MaxResults)
	addIfSet(params, "prefix", opts.Prefix)

	return c.callAPI(ctx, http.MethodGet, uri, params, &opts.CallOptions)
}
