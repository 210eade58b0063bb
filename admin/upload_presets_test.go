package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUploadPresets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/upload_presets", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("max_results"))
		respond(w, http.StatusOK, `{"presets": []}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListUploadPresets(context.Background(), &ListOptions{MaxResults: 5})
	require.NoError(t, err)
}

func TestCreateUploadPreset(t *testing.T) {
	t.Run("full options", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1_1/demo/upload_presets", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "mobile_uploads", r.PostForm.Get("name"))
			assert.Equal(t, "true", r.PostForm.Get("unsigned"))
			assert.Equal(t, "uploads/mobile", r.PostForm.Get("folder"))
			assert.Equal(t, "remote,mobile", r.PostForm.Get("tags"))
			assert.Equal(t, "jpg,png", r.PostForm.Get("allowed_formats"))
			assert.Equal(t, "c_limit,w_2000", r.PostForm.Get("transformation"))
			assert.Equal(t, "false", r.PostForm.Get("overwrite"))
			assert.NotContains(t, r.PostForm, "backup")
			assert.NotContains(t, r.PostForm, "disallow_public_id")

			respond(w, http.StatusOK, `{"message": "created", "name": "mobile_uploads"}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		overwrite := false

		_, err := client.CreateUploadPreset(context.Background(), "mobile_uploads", &UploadPresetOptions{
			Unsigned:       true,
			Folder:         "uploads/mobile",
			Tags:           []string{"remote", "mobile"},
			AllowedFormats: []string{"jpg", "png"},
			Transformation: &Transformation{Crop: "limit", Width: "2000"},
			Overwrite:      &overwrite,
		})
		require.NoError(t, err)
	})

	t.Run("unnamed preset omits name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.NotContains(t, r.PostForm, "name")
			respond(w, http.StatusOK, `{"name": "generated"}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.CreateUploadPreset(context.Background(), "", nil)
		require.NoError(t, err)
	})
}

func TestGetUploadPreset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/upload_presets/mobile_uploads", r.URL.Path)
		respond(w, http.StatusOK, `{"name": "mobile_uploads"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetUploadPreset(context.Background(), "mobile_uploads", nil)
	require.NoError(t, err)
}

func TestUpdateUploadPreset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/upload_presets/mobile_uploads", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "manual", r.PostForm.Get("moderation"))

		respond(w, http.StatusOK, `{"message": "updated"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.UpdateUploadPreset(context.Background(), "mobile_uploads", &UploadPresetOptions{
		Moderation: "manual",
	})
	require.NoError(t, err)
}

func TestDeleteUploadPreset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/upload_presets/mobile_uploads", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		respond(w, http.StatusOK, `{"message": "deleted"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.DeleteUploadPreset(context.Background(), "mobile_uploads", nil)
	require.NoError(t, err)
}
