package ragclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestDocument(t *testing.T) {
	t.Run("posts the request and decodes the document", func(t *testing.T) {
		var gotPath string
		var gotBody IngestDocumentRequest
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.Method + " " + r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"id":"doc-1","collection_id":"col-1","status":"processing"}`))
		}))

		doc, err := client.IngestDocument(context.Background(), IngestDocumentRequest{
			CollectionID: "col-1",
			Content:      "hello world",
			ContentType:  "text/plain",
		})
		require.NoError(t, err)

		assert.Equal(t, "POST /v1/documents", gotPath)
		assert.Equal(t, "col-1", gotBody.CollectionID)
		assert.Equal(t, "doc-1", doc.ID)
		assert.Equal(t, "processing", doc.Status)
	})

	t.Run("rejects a request without a collection", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not reach the server")
		}))

		_, err := client.IngestDocument(context.Background(), IngestDocumentRequest{Content: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid request")
		assert.Contains(t, err.Error(), "collection_id")
	})

	t.Run("rejects an unsupported content type", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not reach the server")
		}))

		_, err := client.IngestDocument(context.Background(), IngestDocumentRequest{
			CollectionID: "col-1",
			Content:      "x",
			ContentType:  "image/png",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content_type")
	})
}

func TestGetDocument(t *testing.T) {
	t.Run("escapes the id into the path", func(t *testing.T) {
		var gotPath string
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			_, _ = w.Write([]byte(`{"id":"weird/id","collection_id":"col-1","status":"indexed"}`))
		}))

		doc, err := client.GetDocument(context.Background(), "weird/id")
		require.NoError(t, err)
		assert.Equal(t, "/v1/documents/weird%2Fid", gotPath)
		assert.Equal(t, "indexed", doc.Status)
	})

	t.Run("rejects an empty id locally", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not reach the server")
		}))

		_, err := client.GetDocument(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestListDocuments(t *testing.T) {
	t.Run("encodes filters as query parameters", func(t *testing.T) {
		var gotQuery string
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"documents":[{"id":"doc-1","collection_id":"col-1","status":"indexed"}],"total":1,"offset":0,"limit":50}`))
		}))

		list, err := client.ListDocuments(context.Background(), ListDocumentsRequest{
			CollectionID: "col-1",
			Status:       "indexed",
			Limit:        50,
		})
		require.NoError(t, err)

		assert.Contains(t, gotQuery, "collection_id=col-1")
		assert.Contains(t, gotQuery, "status=indexed")
		assert.Contains(t, gotQuery, "limit=50")
		assert.Len(t, list.Documents, 1)
		assert.Equal(t, 1, list.Total)
	})

	t.Run("rejects an out of range limit", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not reach the server")
		}))

		_, err := client.ListDocuments(context.Background(), ListDocumentsRequest{Limit: 10000})
		assert.Error(t, err)
	})
}
