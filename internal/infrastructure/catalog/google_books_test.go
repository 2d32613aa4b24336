package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Run("maps the volumes payload to book summaries", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.String()
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"totalItems": 2,
				"items": [
					{
						"id": "vol-1",
						"volumeInfo": {
							"title": "The Go Programming Language",
							"authors": ["Alan Donovan", "Brian Kernighan"],
							"publishedDate": "2015",
							"pageCount": 380,
							"categories": ["Computers"],
							"imageLinks": {"thumbnail": "http://img/1"}
						}
					},
					{
						"id": "vol-2",
						"volumeInfo": {"title": "Another Book"}
					}
				]
			}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 20, 100, 0)
		page, err := client.Search(context.Background(), "go", 1)

		require.NoError(t, err)
		assert.Equal(t, "/volumes?q=go&startIndex=20&maxResults=20", gotPath)
		assert.Equal(t, 2, page.TotalItems)
		assert.Equal(t, 1, page.Page)
		require.Len(t, page.Books, 2)
		assert.Equal(t, "vol-1", page.Books[0].ID)
		assert.Equal(t, "The Go Programming Language", page.Books[0].Title)
		assert.Equal(t, "http://img/1", page.Books[0].Thumbnail)
		assert.Empty(t, page.Books[1].Authors)
	})

	t.Run("empty query falls back to the default", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			w.Write([]byte(`{"totalItems": 0}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 20, 100, 0)
		_, err := client.Search(context.Background(), "", 0)

		require.NoError(t, err)
		assert.Equal(t, DefaultQuery, gotQuery)
	})

	t.Run("retries server errors", func(t *testing.T) {
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"totalItems": 0}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 20, 100, 2)
		_, err := client.Search(context.Background(), "go", 0)

		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("client errors do not retry", func(t *testing.T) {
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 20, 100, 3)
		_, err := client.Search(context.Background(), "go", 0)

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}
