package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFolders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/folders", r.URL.Path)
		respond(w, http.StatusOK, `{"folders": [{"name": "products", "path": "products"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.RootFolders(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, resp.Body["folders"], 1)
}

func TestSubfolders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/folders/products/shoes", r.URL.Path)
		respond(w, http.StatusOK, `{"folders": []}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Subfolders(context.Background(), "products/shoes", nil)
	require.NoError(t, err)
}

func TestListTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/tags/image", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "hol", query.Get("prefix"))
		assert.Equal(t, "50", query.Get("max_results"))

		respond(w, http.StatusOK, `{"tags": ["holiday"]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.ListTags(context.Background(), &ListTagsOptions{Prefix: "hol", MaxResults: 50})
	require.NoError(t, err)
	assert.Len(t, resp.Body["tags"], 1)
}
