package admin

import (
	"context"
	"net/http"
	"net/url"
)

// uploadMappingParams identifies a mapping by its folder name; the
// collection URI is shared by all mapping calls.
func uploadMappingParams(folder string) url.Values {
	params := url.Values{}
	params.Set("folder", folder)
	return params
}

// ListUploadMappings lists the upload mappings defined in the account.
func (c *Client) ListUploadMappings(ctx context.Context, opts *ListOptions) (*Response, error) {
	if opts == nil {
		opts = &ListOptions{}
	}
	return c.callAPI(ctx, http.MethodGet, []string{"upload_mappings"}, listParams(opts), &opts.CallOptions)
}

// GetUploadMapping looks up the upload mapping for a folder.
func (c *Client) GetUploadMapping(ctx context.Context, folder string, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodGet, []string{"upload_mappings"}, uploadMappingParams(folder), opts)
}

// CreateUploadMapping maps a folder to a remote URL template.
func (c *Client) CreateUploadMapping(ctx context.Context, folder, template string, opts *CallOptions) (*Response, error) {
	params := uploadMappingParams(folder)
	addIfSet(params, "template", template)

	return c.callAPI(ctx, http.MethodPost, []string{"upload_mappings"}, params, opts)
}

// UpdateUploadMapping changes the remote URL template of a folder mapping.
func (c *Client) UpdateUploadMapping(ctx context.Context, folder, template string, opts *CallOptions) (*Response, error) {
	params := uploadMappingParams(folder)
	addIfSet(params, "template", template)

	return c.callAPI(ctx, http.MethodPut, []string{"upload_mappings"}, params, opts)
}

// DeleteUploadMapping deletes the upload mapping for a folder.
func (c *Client) DeleteUploadMapping(ctx context.Context, folder string, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodDelete, []string{"upload_mappings"}, uploadMappingParams(folder), opts)
}
