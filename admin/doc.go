// Package admin provides a client for the Cloudinary admin API.
//
// The admin API manages stored media assets and the server-side
// configuration objects attached to an account: resources, tags,
// transformations, upload presets, folders, upload mappings and streaming
// profiles.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the request dispatcher with a shared connection-pooling HTTP
//     client, Basic authentication and per-call configuration overrides
//   - Operations: one method per remote call, each with an explicit options
//     struct enumerating the parameters the call recognizes
//   - Response: the decoded JSON body plus the rate-limit accounting parsed
//     from the response headers
//   - Errors: sentinel errors for client-side failures and structured error
//     types classified by HTTP status
//
// # Usage
//
// Create a client with the account credentials:
//
//	logger := zerolog.New(os.Stdout)
//	client := admin.New(admin.Config{
//		CloudName: "demo",
//		APIKey:    "key",
//		APISecret: "secret",
//	}, logger)
//
//	ctx := context.Background()
//	resp, err := client.ListResources(ctx, &admin.ListResourcesOptions{
//		Prefix:     "samples/",
//		MaxResults: 100,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(resp.RateLimit.Remaining)
//
// # Error Handling
//
// Service errors are returned as *APIError with a Kind derived from the
// HTTP status code:
//
//	var apiErr *admin.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// handle missing resource
//	}
//
// Missing credentials and empty transformation updates fail client-side,
// before any network call. Calls are never retried; every failure
// propagates to the caller.
package admin
