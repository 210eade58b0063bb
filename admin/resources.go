package admin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// ListResourcesOptions controls a full resource listing.
type ListResourcesOptions struct {
	CallOptions
	ResourceType string // defaults to "image"
	DeliveryType string // narrows the listing to one delivery type when set
	NextCursor   string
	MaxResults   int
	Prefix       string
	Tags         bool // include tag lists in the response
	Context      bool // include contextual metadata in the response
	Moderations  bool // include moderation status in the response
	Direction    string
	StartAt      string
}

// ListByTagOptions controls a listing of resources carrying a tag.
type ListByTagOptions struct {
	CallOptions
	ResourceType string // defaults to "image"
	NextCursor   string
	MaxResults   int
	Tags         bool
	Context      bool
	Moderations  bool
	Direction    string
}

// ListByModerationOptions controls a listing of resources in a moderation
// queue.
type ListByModerationOptions struct {
	CallOptions
	ResourceType string // defaults to "image"
	NextCursor   string
	MaxResults   int
	Tags         bool
	Context      bool
	Moderations  bool
	Direction    string
}

// ListByIDsOptions controls a listing of specific resources by public ID.
type ListByIDsOptions struct {
	CallOptions
	ResourceType string // defaults to "image"
	DeliveryType string // defaults to "upload"
	Tags         bool
	Context      bool
	Moderations  bool
}

// ResourceDetailsOptions controls which detail sections a resource lookup
// includes.
type ResourceDetailsOptions struct {
	CallOptions
	ResourceType  string // defaults to "image"
	DeliveryType  string // defaults to "upload"
	Exif          bool
	Faces         bool
	Colors        bool
	ImageMetadata bool
	Pages         bool
	Phash         bool
	Coordinates   bool
	MaxResults    int // paginates the derived resource list
}

// UpdateResourceOptions enumerates the resource fields the update call can
// change.
type UpdateResourceOptions struct {
	CallOptions
	ResourceType      string // defaults to "image"
	DeliveryType      string // defaults to "upload"
	ModerationStatus  string
	RawConvert        string
	OCR               string
	Categorization    string
	Detection         string
	SimilaritySearch  string
	BackgroundRemoval string
	Tags              []string
	FaceCoordinates   Coordinates
	CustomCoordinates Coordinates
	Context           map[string]string
	AutoTagging       float64
}

// DeleteResourcesOptions controls resource deletion calls.
type DeleteResourcesOptions struct {
	CallOptions
	ResourceType string // defaults to "image"
	DeliveryType string // defaults to "upload"; unused by tag deletion
	KeepOriginal bool
	Invalidate   bool
	NextCursor   string
}

// RestoreOptions controls a restore call for backed-up resources.
type RestoreOptions struct {
	CallOptions
	ResourceType string // defaults to "image"
	DeliveryType string // defaults to "upload"
}

// ResourceTypes lists the resource types present in the account.
func (c *Client) ResourceTypes(ctx context.Context, opts *CallOptions) (*Response, error) {
	return c.callAPI(ctx, http.MethodGet, []string{"resources"}, nil, opts)
}

// ListResources lists resources of one resource type, optionally narrowed
// to a delivery type.
func (c *Client) ListResources(ctx context.Context, opts *ListResourcesOptions) (*Response, error) {
	if opts == nil {
		opts = &ListResourcesOptions{}
	}

	uri := []string{"resources", firstNonEmpty(opts.ResourceType, DefaultResourceType)}
	if opts.DeliveryType != "" {
		uri = append(uri, opts.DeliveryType)
	}

	params := url.Values{}
	addIfSet(params, "next_cursor", opts.NextCursor)
	addInt(params, "max_results", opts.MaxResults)
	addIfSet(params, "prefix", opts.Prefix)
	addBool(params, "tags", opts.Tags)
	addBool(params, "context", opts.Context)
	addBool(params, "moderations", opts.Moderations)
	addIfSet(params, "direction", opts.Direction)
	addIfSet(params, "start_at", opts.StartAt)

	return c.callAPI(ctx, http.MethodGet, uri, params, &opts.CallOptions)
}

// ListResourcesByTag lists resources carrying the given tag.
func (c *Client) ListResourcesByTag(ctx context.Context, tag string, opts *ListByTagOptions) (*Response, error) {
	if opts == nil {
		opts = &ListByTagOptions{}
	}

	uri := []string{"resources", firstNonEmpty(opts.ResourceType, DefaultResourceType), "tags", tag}

	params := url.Values{}
	addIfSet(params, "next_cursor", opts.NextCursor)
	addInt(params, "max_results", opts.MaxResults)
	addBool(params, "tags", opts.Tags)
	addBool(params, "context", opts.Context)
	addBool(params, "moderations", opts.Moderations)
	addIfSet(params, "direction", opts.Direction)

	return c.callAPI(ctx, http.MethodGet, uri, params, &opts.CallOptions)
}

// ListResourcesByModeration lists resources in the given moderation queue
// and status.
func (c *Client) ListResourcesByModeration(ctx context.Context, kind, status string, opts *ListByModerationOptions) (*Response, error) {
	if opts == nil {
		opts = &ListByModerationOptions{}
	}

	uri := []string{"resources", firstNonEmpty(opts.ResourceType, DefaultResourceType), "moderations", kind, status}

	params := url.Values{}
	addIfSet(params, "next_cursor", opts.NextCursor)
	addInt(params, "max_results", opts.MaxResults)
	addBool(params, "tags", opts.Tags)
	addBool(params, "context", opts.Context)
	addBool(params, "moderations", opts.Moderations)
	addIfSet(params, "direction", opts.Direction)

	return c.callAPI(ctx, http.MethodGet, uri, params, &opts.CallOptions)
}

// ListResourcesByIDs lists the given resources. Public IDs are sent as
// repeated "public_ids[]" entries in input order.
func (c *Client) ListResourcesByIDs(ctx context.Context, publicIDs []string, opts *ListByIDsOptions) (*Response, error) {
	if opts == nil {
		opts = &ListByIDsOptions{}
	}

	uri := []string{
		"resources",
		firstNonEmpty(opts.ResourceType, DefaultResourceType),
		firstNonEmpty(opts.DeliveryType, DefaultDeliveryType),
	}

	params := url.Values{}
	addRepeated(params, "public_ids", publicIDs)
	addBool(params, "tags", opts.Tags)
	addBool(params, "context", opts.Context)
	addBool(params, "moderations", opts.Moderations)

	return c.callAPI(ctx, http.MethodGet, uri, params, &opts.CallOptions)
}

// GetResource looks up the details of a single resource.
func (c *Client) GetResource(ctx context.Context, publicID string, opts *ResourceDetailsOptions) (*Response, error) {
	if opts == nil {
		opts = &ResourceDetailsOptions{}
	}

	uri := []string{
		"resources",
		firstNonEmpty(opts.ResourceType, DefaultResourceType),
		firstNonEmpty(opts.DeliveryType, DefaultDeliveryType),
		publicID,
	}

	params := url.Values{}
	addBool(params, "exif", opts.Exif)
	addBool(params, "faces", opts.Faces)
	addBool(params, "colors", opts.Colors)
	addBool(params, "image_metadata", opts.ImageMetadata)
	addBool(params, "pages", opts.Pages)
	addBool(params, "phash", opts.Phash)
	addBool(params, "coordinates", opts.Coordinates)
	addInt(params, "max_results", opts.MaxResults)

	return c.callAPI(ctx, http.MethodGet, uri, params, &opts.CallOptions)
}

// UpdateResource updates the metadata of a single resource.
func (c *Client) UpdateResource(ctx context.Context, publicID string, opts *UpdateResourceOptions) (*Response, error) {
	if opts == nil {
		opts = &UpdateResourceOptions{}
	}

	uri := []string{
		"resources",
		firstNonEmpty(opts.ResourceType, DefaultResourceType),
		firstNonEmpty(opts.DeliveryType, DefaultDeliveryType),
		publicID,
	}

	params := url.Values{}
	addIfSet(params, "moderation_status", opts.ModerationStatus)
	addIfSet(params, "raw_convert", opts.RawConvert)
	addIfSet(params, "ocr", opts.OCR)
	addIfSet(params, "categorization", opts.Categorization)
	addIfSet(params, "detection", opts.Detection)
	addIfSet(params, "similarity_search", opts.SimilaritySearch)
	addIfSet(params, "background_removal", opts.BackgroundRemoval)
	if len(opts.Tags) > 0 {
		params.Set("tags", strings.Join(opts.Tags, ","))
	}
	if len(opts.FaceCoordinates) > 0 {
		params.Set("face_coordinates", encodeCoordinates(opts.FaceCoordinates))
	}
	if len(opts.CustomCoordinates) > 0 {
		params.Set("custom_coordinates", encodeCoordinates(opts.CustomCoordinates))
	}
	if len(opts.Context) > 0 {
		params.Set("context", encodeContext(opts.Context))
	}
	addFloat(params, "auto_tagging", opts.AutoTagging)

	return c.callAPI(ctx, http.MethodPost, uri, params, &opts.CallOptions)
}

// DeleteResources deletes the given resources. Public IDs are sent as
// repeated "public_ids[]" entries in input order.
func (c *Client) DeleteResources(ctx context.Context, publicIDs []string, opts *DeleteResourcesOptions) (*Response, error) {
	if opts == nil {
		opts = &DeleteResourcesOptions{}
	}

	params := url.Values{}
	addRepeated(params, "public_ids", publicIDs)
	addDeleteFlags(params, opts)

	return c.callAPI(ctx, http.MethodDelete, deleteResourcesURI(opts), params, &opts.CallOptions)
}

// DeleteResourcesByPrefix deletes all resources whose public ID starts with
// the given prefix.
func (c *Client) DeleteResourcesByPrefix(ctx context.Context, prefix string, opts *DeleteResourcesOptions) (*Response, error) {
	if opts == nil {
		opts = &DeleteResourcesOptions{}
	}

	params := url.Values{}
	params.Set("prefix", prefix)
	addDeleteFlags(params, opts)

	return c.callAPI(ctx, http.MethodDelete, deleteResourcesURI(opts), params, &opts.CallOptions)
}

// DeleteAllResources deletes every resource of the selected resource and
// delivery type.
func (c *Client) DeleteAllResources(ctx context.Context, opts *DeleteResourcesOptions) (*Response, error) {
	if opts == nil {
		opts = &DeleteResourcesOptions{}
	}

	params := url.Values{}
	params.Set("all", "true")
	addDeleteFlags(params, opts)

	return c.callAPI(ctx, http.MethodDelete, deleteResourcesURI(opts), params, &opts.CallOptions)
}

// DeleteResourcesByTag deletes all resources carrying the given tag.
func (c *Client) DeleteResourcesByTag(ctx context.Context, tag string, opts *DeleteResourcesOptions) (*Response, error) {
	if opts == nil {
		opts = &DeleteResourcesOptions{}
	}

	uri := []string{"resources", firstNonEmpty(opts.ResourceType, DefaultResourceType), "tags", tag}

	params := url.Values{}
	addDeleteFlags(params, opts)

	return c.callAPI(ctx, http.MethodDelete, uri, params, &opts.CallOptions)
}

// DeleteDerivedResources deletes derived resources by ID. IDs are sent as
// repeated "derived_resource_ids[]" entries in input order.
func (c *Client) DeleteDerivedResources(ctx context.Context, derivedResourceIDs []string, opts *CallOptions) (*Response, error) {
	params := url.Values{}
	addRepeated(params, "derived_resource_ids", derivedResourceIDs)

	return c.callAPI(ctx, http.MethodDelete, []string{"derived_resources"}, params, opts)
}

// RestoreResources restores deleted resources from backup. Public IDs are
// sent as repeated "public_ids[]" entries in input order.
func (c *Client) RestoreResources(ctx context.Context, publicIDs []string, opts *RestoreOptions) (*Response, error) {
	if opts == nil {
		opts = &RestoreOptions{}
	}

	uri := []string{
		"resources",
		firstNonEmpty(opts.ResourceType, DefaultResourceType),
		firstNonEmpty(opts.DeliveryType, DefaultDeliveryType),
		"restore",
	}

	params := url.Values{}
	addRepeated(params, "public_ids", publicIDs)

	return c.callAPI(ctx, http.MethodPost, uri, params, &opts.CallOptions)
}

func deleteResourcesURI(opts *DeleteResourcesOptions) []string {
	return []string{
		"resources",
		firstNonEmpty(opts.ResourceType, DefaultResourceType),
		firstNonEmpty(opts.DeliveryType, DefaultDeliveryType),
	}
}

func addDeleteFlags(params url.Values, opts *DeleteResourcesOptions) {
	addBool(params, "keep_original", opts.KeepOriginal)
	addBool(params, "invalidate", opts.Invalidate)
	addIfSet(params, "next_cursor", opts.NextCursor)
}
