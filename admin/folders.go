package admin

import (
	"context"
	"net/http"
)

// RootFolders lists the account's top-level folders.
func (c *Client) RootFolders(ctx context.Context, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodGet, []string{"folders"}, nil, opts)
}

// Subfolders lists the direct subfolders of a folder path.
func (c *Client) Subfolders(ctx context.Context, folderPath string, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodGet, []string{"folders", folderPath}, nil, opts)
}
