package admin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// UploadPresetOptions enumerates the upload parameters a preset can carry,
// plus the preset-only flags (unsigned, disallow_public_id).
type UploadPresetOptions struct {
	CallOptions
	Unsigned         bool
	DisallowPublicID bool

	Folder            string
	Tags              []string
	Context           map[string]string
	Transformation    *Transformation
	Format            string
	AllowedFormats    []string
	Overwrite         *bool
	UseFilename       *bool
	UniqueFilename    *bool
	Invalidate        *bool
	Backup            *bool
	Moderation        string
	NotificationURL   string
	AutoTagging       float64
	FaceCoordinates   Coordinates
	CustomCoordinates Coordinates
}

// GetUploadPresetOptions controls a single preset lookup.
type GetUploadPresetOptions struct {
	CallOptions
	MaxResults int
}

// ListUploadPresets lists the upload presets defined in the account.
func (c *Client) ListUploadPresets(ctx context.Context, opts *ListOptions) (*Response, error) {
	if opts == nil {
		opts = &ListOptions{}
	}
	return c.callAPI(ctx, http.MethodGet, []string{"upload_presets"}, listParams(opts), &opts.CallOptions)
}

// GetUploadPreset looks up a single upload preset.
func (c *Client) GetUploadPreset(ctx context.Context, name string, opts *GetUploadPresetOptions) (*Response, error) {
	if opts == nil {
		opts = &GetUploadPresetOptions{}
	}

	params := url.Values{}
	addInt(params, "max_results", opts.MaxResults)

	return c.callAPI(ctx, http.MethodGet, []string{"upload_presets", name}, params, &opts.CallOptions)
}

// CreateUploadPreset creates an upload preset. An empty name lets the
// service generate one.
func (c *Client) CreateUploadPreset(ctx context.Context, name string, opts *UploadPresetOptions) (*Response, error) {
	if opts == nil {
		opts = &UploadPresetOptions{}
	}

	params := buildUploadParams(opts)
	addIfSet(params, "name", name)

	return c.callAPI(ctx, http.MethodPost, []string{"upload_presets"}, params, &opts.CallOptions)
}

// UpdateUploadPreset updates an upload preset.
func (c *Client) UpdateUploadPreset(ctx context.Context, name string, opts *UploadPresetOptions) (*Response, error) {
	if opts == nil {
		opts = &UploadPresetOptions{}
	}

	params := buildUploadParams(opts)

	return c.callAPI(ctx, http.MethodPut, []string{"upload_presets", name}, params, &opts.CallOptions)
}

// DeleteUploadPreset deletes an upload preset.
func (c *Client) DeleteUploadPreset(ctx context.Context, name string, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodDelete, []string{"upload_presets", name}, nil, opts)
}

// buildUploadParams serializes the upload parameter set shared by preset
// create and update.
func buildUploadParams(opts *UploadPresetOptions) url.Values {
	params := url.Values{}

	addIfSet(params, "folder", opts.Folder)
	if len(opts.Tags) > 0 {
		params.Set("tags", strings.Join(opts.Tags, ","))
	}
	if len(opts.Context) > 0 {
		params.Set("context", encodeContext(opts.Context))
	}
	if opts.Transformation != nil {
		params.Set("transformation", opts.Transformation.String())
	}
	addIfSet(params, "format", opts.Format)
	if len(opts.AllowedFormats) > 0 {
		params.Set("allowed_formats", strings.Join(opts.AllowedFormats, ","))
	}
	addBoolPtr(params, "overwrite", opts.Overwrite)
	addBoolPtr(params, "use_filename", opts.UseFilename)
	addBoolPtr(params, "unique_filename", opts.UniqueFilename)
	addBoolPtr(params, "invalidate", opts.Invalidate)
	addBoolPtr(params, "backup", opts.Backup)
	addIfSet(params, "moderation", opts.Moderation)
	addIfSet(params, "notification_url", opts.NotificationURL)
	addFloat(params, "auto_tagging", opts.AutoTagging)
	if len(opts.FaceCoordinates) > 0 {
		params.Set("face_coordinates", encodeCoordinates(opts.FaceCoordinates))
	}
	if len(opts.CustomCoordinates) > 0 {
		params.Set("custom_coordinates", encodeCoordinates(opts.CustomCoordinates))
	}
	addBool(params, "unsigned", opts.Unsigned)
	addBool(params, "disallow_public_id", opts.DisallowPublicID)

	return params
}
