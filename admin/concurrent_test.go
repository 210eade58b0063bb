package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchResourceDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		publicID := strings.TrimPrefix(r.URL.Path, "/v1_1/demo/resources/image/upload/")
		if publicID == "missing" {
			respond(w, http.StatusNotFound, `{"error": {"message": "Resource not found"}}`)
			return
		}
		respond(w, http.StatusOK, fmt.Sprintf(`{"public_id": %q}`, publicID))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.BatchResourceDetails(context.Background(), []string{"a", "missing", "b"}, nil)
	require.NoError(t, err)

	assert.Len(t, result.Details, 2)
	assert.Equal(t, "a", result.Details["a"].Body["public_id"])
	assert.Equal(t, "b", result.Details["b"].Body["public_id"])

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "missing", result.Failed[0].PublicID)

	var apiErr *APIError
	require.ErrorAs(t, result.Failed[0].Err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
}

func TestBatchResourceDetailsEmpty(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")

	result, err := client.BatchResourceDetails(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Details)
	assert.Empty(t, result.Failed)
}
