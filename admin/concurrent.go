package admin

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultDetailConcurrency bounds the number of in-flight detail lookups
// during a batch fetch.
const DefaultDetailConcurrency = 10

// BatchDetailError records a failed detail lookup within a batch.
type BatchDetailError struct {
	PublicID string
	Err      error
}

// Error implements the error interface.
func (e BatchDetailError) Error() string {
	return fmt.Sprintf("failed to get details for %s: %v", e.PublicID, e.Err)
}

// BatchDetailsResult holds the outcome of a batch detail fetch. Lookups
// that failed are collected instead of aborting the batch.
type BatchDetailsResult struct {
	Details map[string]*Response
	Failed  []BatchDetailError
}

// BatchResourceDetails fetches the details of many resources concurrently.
// Individual failures are recorded in the result; the batch itself only
// fails when the context is cancelled.
func (c *Client) BatchResourceDetails(ctx context.Context, publicIDs []string, opts *ResourceDetailsOptions) (*BatchDetailsResult, error) {
	result := &BatchDetailsResult{
		Details: make(map[string]*Response, len(publicIDs)),
	}
	if len(publicIDs) == 0 {
		return result, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultDetailConcurrency)

	var mu sync.Mutex

	for _, publicID := range publicIDs {
		publicID := publicID
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			resp, err := c.GetResource(ctx, publicID, opts)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("public_id", publicID).
					Msg("Failed to get resource details")
				result.Failed = append(result.Failed, BatchDetailError{PublicID: publicID, Err: err})
				return nil
			}

			result.Details[publicID] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
