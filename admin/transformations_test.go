package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransformations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/transformations", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("max_results"))
		respond(w, http.StatusOK, `{"transformations": []}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListTransformations(context.Background(), &ListOptions{MaxResults: 10})
	require.NoError(t, err)
}

func TestGetTransformation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/transformations/small_fill", r.URL.Path)
		respond(w, http.StatusOK, `{"name": "small_fill"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.GetTransformation(context.Background(), RawTransformation("small_fill"), nil)
	require.NoError(t, err)
	assert.Equal(t, "small_fill", resp.Body["name"])
}

func TestCreateTransformation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/transformations/small_fill", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "c_fill,h_100,w_150", r.PostForm.Get("transformation"))

		respond(w, http.StatusOK, `{"message": "created"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	definition := Transformation{Crop: "fill", Width: "150", Height: "100"}

	_, err := client.CreateTransformation(context.Background(), "small_fill", definition, nil)
	require.NoError(t, err)
}

func TestUpdateTransformation(t *testing.T) {
	t.Run("no updates given", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			respond(w, http.StatusOK, `{}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.UpdateTransformation(context.Background(), RawTransformation("small_fill"), nil)
		assert.ErrorIs(t, err, ErrNoUpdates)

		_, err = client.UpdateTransformation(context.Background(), RawTransformation("small_fill"), &UpdateTransformationOptions{})
		assert.ErrorIs(t, err, ErrNoUpdates)

		assert.Equal(t, 0, calls)
	})

	t.Run("allowed for strict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "false", r.PostForm.Get("allowed_for_strict"))
			assert.NotContains(t, r.PostForm, "unsafe_update")

			respond(w, http.StatusOK, `{"message": "updated"}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		allowed := false

		_, err := client.UpdateTransformation(context.Background(), RawTransformation("small_fill"), &UpdateTransformationOptions{
			AllowedForStrict: &allowed,
		})
		require.NoError(t, err)
	})

	t.Run("unsafe update", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "c_scale,w_50", r.PostForm.Get("unsafe_update"))
			respond(w, http.StatusOK, `{"message": "updated"}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.UpdateTransformation(context.Background(), RawTransformation("small_fill"), &UpdateTransformationOptions{
			UnsafeUpdate: &Transformation{Crop: "scale", Width: "50"},
		})
		require.NoError(t, err)
	})
}

func TestDeleteTransformation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/transformations/small_fill", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		respond(w, http.StatusOK, `{"message": "deleted"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.DeleteTransformation(context.Background(), RawTransformation("small_fill"), nil)
	require.NoError(t, err)
}
