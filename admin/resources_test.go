package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResources(t *testing.T) {
	t.Run("defaults to image resource type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1_1/demo/resources/image", r.URL.Path)
			respond(w, http.StatusOK, `{"resources": []}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListResources(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("delivery type extends the path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1_1/demo/resources/video/upload", r.URL.Path)
			respond(w, http.StatusOK, `{"resources": []}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListResources(context.Background(), &ListResourcesOptions{
			ResourceType: "video",
			DeliveryType: "upload",
		})
		require.NoError(t, err)
	})

	t.Run("only set options are transmitted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "animals/", query.Get("prefix"))
			assert.Equal(t, "20", query.Get("max_results"))

			for _, absent := range []string{"direction", "next_cursor", "start_at", "tags", "context", "moderations"} {
				assert.NotContains(t, query, absent)
			}

			respond(w, http.StatusOK, `{"resources": []}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListResources(context.Background(), &ListResourcesOptions{
			Prefix:     "animals/",
			MaxResults: 20,
		})
		require.NoError(t, err)
	})
}

func TestListResourcesByTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/resources/image/tags/holiday", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("tags"))
		respond(w, http.StatusOK, `{"resources": []}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListResourcesByTag(context.Background(), "holiday", &ListByTagOptions{Tags: true})
	require.NoError(t, err)
}

func TestListResourcesByModeration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/resources/image/moderations/manual/pending", r.URL.Path)
		respond(w, http.StatusOK, `{"resources": []}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListResourcesByModeration(context.Background(), "manual", "pending", nil)
	require.NoError(t, err)
}

func TestListResourcesByIDs(t *testing.T) {
	ids := []string{"zebra", "apple", "mango"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/resources/image/upload", r.URL.Path)
		// repeated keys arrive in the order the ids were given
		assert.Equal(t, ids, r.URL.Query()["public_ids[]"])
		respond(w, http.StatusOK, `{"resources": []}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListResourcesByIDs(context.Background(), ids, nil)
	require.NoError(t, err)
}

func TestResourceTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/resources", r.URL.Path)
		respond(w, http.StatusOK, `{"resource_types": ["image", "raw", "video"]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.ResourceTypes(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, resp.Body["resource_types"], 3)
}

func TestGetResource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/resources/image/upload/folder/sample", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "true", query.Get("colors"))
		assert.Equal(t, "true", query.Get("phash"))
		assert.NotContains(t, query, "exif")

		respond(w, http.StatusOK, `{"public_id": "folder/sample"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.GetResource(context.Background(), "folder/sample", &ResourceDetailsOptions{
		Colors: true,
		Phash:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "folder/sample", resp.Body["public_id"])
}

func TestUpdateResource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/resources/image/upload/sample", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "dog,pet", r.PostForm.Get("tags"))
		assert.Equal(t, "10,20,150,30|40,50,20,10", r.PostForm.Get("face_coordinates"))
		assert.Equal(t, "alt=Sample|caption=Cloudy day", r.PostForm.Get("context"))
		assert.Equal(t, "0.5", r.PostForm.Get("auto_tagging"))
		assert.NotContains(t, r.PostForm, "moderation_status")
		assert.NotContains(t, r.PostForm, "ocr")

		respond(w, http.StatusOK, `{"public_id": "sample"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.UpdateResource(context.Background(), "sample", &UpdateResourceOptions{
		Tags:            []string{"dog", "pet"},
		FaceCoordinates: Coordinates{{10, 20, 150, 30}, {40, 50, 20, 10}},
		Context:         map[string]string{"caption": "Cloudy day", "alt": "Sample"},
		AutoTagging:     0.5,
	})
	require.NoError(t, err)
}

func TestDeleteResources(t *testing.T) {
	t.Run("by ids", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/v1_1/demo/resources/image/upload", r.URL.Path)
			assert.Equal(t, []string{"a", "b"}, r.URL.Query()["public_ids[]"])
			respond(w, http.StatusOK, `{"deleted": {"a": "deleted", "b": "deleted"}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.DeleteResources(context.Background(), []string{"a", "b"}, nil)
		require.NoError(t, err)
	})

	t.Run("by prefix with flags", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "old/", query.Get("prefix"))
			assert.Equal(t, "true", query.Get("keep_original"))
			assert.Equal(t, "true", query.Get("invalidate"))
			respond(w, http.StatusOK, `{"deleted": {}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.DeleteResourcesByPrefix(context.Background(), "old/", &DeleteResourcesOptions{
			KeepOriginal: true,
			Invalidate:   true,
		})
		require.NoError(t, err)
	})

	t.Run("all", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.URL.Query().Get("all"))
			respond(w, http.StatusOK, `{"deleted": {}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.DeleteAllResources(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("by tag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1_1/demo/resources/image/tags/obsolete", r.URL.Path)
			assert.Equal(t, http.MethodDelete, r.Method)
			respond(w, http.StatusOK, `{"deleted": {}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.DeleteResourcesByTag(context.Background(), "obsolete", nil)
		require.NoError(t, err)
	})
}

func TestDeleteDerivedResources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/derived_resources", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, []string{"d1", "d2"}, r.URL.Query()["derived_resource_ids[]"])
		respond(w, http.StatusOK, `{"deleted": {}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.DeleteDerivedResources(context.Background(), []string{"d1", "d2"}, nil)
	require.NoError(t, err)
}

func TestRestoreResources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/resources/image/upload/restore", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, []string{"a", "b"}, r.PostForm["public_ids[]"])

		respond(w, http.StatusOK, `{"a": {"public_id": "a"}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.RestoreResources(context.Background(), []string{"a", "b"}, nil)
	require.NoError(t, err)
}
