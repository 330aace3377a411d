package ragclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Run("decodes ranked hits", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/search", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"hits": [
					{"document_id":"doc-1","content":"first","score":0.92},
					{"document_id":"doc-2","content":"second","score":0.71}
				],
				"total": 2
			}`))
		}))

		result, err := client.Search(context.Background(), SearchRequest{Query: "policy", TopK: 5})
		require.NoError(t, err)

		require.Len(t, result.Hits, 2)
		assert.Equal(t, "doc-1", result.Hits[0].DocumentID)
		assert.InDelta(t, 0.92, result.Hits[0].Score, 1e-9)
	})

	t.Run("rejects an empty query", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not reach the server")
		}))

		_, err := client.Search(context.Background(), SearchRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("rejects an excessive top_k", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not reach the server")
		}))

		_, err := client.Search(context.Background(), SearchRequest{Query: "q", TopK: 500})
		assert.Error(t, err)
	})
}

func TestRetrieve(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/retrieve", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"context": "assembled context",
			"sources": [{"document_id":"doc-1","content":"chunk","score":0.8}]
		}`))
	}))

	result, err := client.Retrieve(context.Background(), RetrieveRequest{Query: "policy", MaxTokens: 2048})
	require.NoError(t, err)

	assert.Equal(t, "assembled context", result.Context)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "doc-1", result.Sources[0].DocumentID)
}
