package retrieval

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/config"
)

func newTestClient(cfg config.RetrievalConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Index == "" {
		cfg.Index = "splunk-knowledge"
	}
	return NewClient(cfg)
}

func TestClient_SearchRelevantDocuments(t *testing.T) {
	t.Run("sends relevance query and filters hits", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &gotBody)

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"hits": map[string]interface{}{
					"hits": []interface{}{
						map[string]interface{}{
							"_score": 2.4,
							"_source": map[string]interface{}{
								"text":           "Web access logs live in index=web_logs",
								"title":          "Web logs",
								"index_name":     "web_logs",
								"field_mappings": map[string]interface{}{"status": "int", "host": "string"},
							},
						},
						map[string]interface{}{
							"_score":  0.3,
							"_source": map[string]interface{}{"text": "too weak to matter"},
						},
						map[string]interface{}{
							"_score":  1.9,
							"_source": map[string]interface{}{"title": "no content field"},
						},
					},
				},
			})
		}))
		defer server.Close()

		client := newTestClient(config.RetrievalConfig{Host: server.URL})
		docs, err := client.SearchRelevantDocuments(context.Background(), "show web errors", 3, 0.7)
		require.NoError(t, err)

		assert.Equal(t, "/splunk-knowledge/_search", gotPath)
		assert.Equal(t, float64(3), gotBody["size"])
		should := gotBody["query"].(map[string]interface{})["bool"].(map[string]interface{})["should"].([]interface{})
		require.Len(t, should, 2)

		require.Len(t, docs, 1)
		assert.Equal(t, "Web access logs live in index=web_logs", docs[0].Content)
		assert.Equal(t, "Web logs", docs[0].Title)
		assert.Equal(t, "web_logs", docs[0].IndexName)
		assert.InDelta(t, 2.4, docs[0].Score, 0.001)
	})

	t.Run("basic auth header sent when username configured", func(t *testing.T) {
		var gotUser, gotPass string
		var gotOK bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser, gotPass, gotOK = r.BasicAuth()
			_, _ = w.Write([]byte(`{"hits":{"hits":[]}}`))
		}))
		defer server.Close()

		client := newTestClient(config.RetrievalConfig{Host: server.URL, Username: "genie", Password: "s3cret"})
		_, err := client.SearchRelevantDocuments(context.Background(), "anything", 3, 0.7)
		require.NoError(t, err)
		require.True(t, gotOK)
		assert.Equal(t, "genie", gotUser)
		assert.Equal(t, "s3cret", gotPass)
	})

	t.Run("HTTP 500 returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(config.RetrievalConfig{Host: server.URL})
		_, err := client.SearchRelevantDocuments(context.Background(), "anything", 3, 0.7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("unconfigured client returns nothing", func(t *testing.T) {
		client := NewClient(config.RetrievalConfig{})
		assert.False(t, client.Available())
		docs, err := client.SearchRelevantDocuments(context.Background(), "anything", 3, 0.7)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("exhausted connect retries surface unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		client := newTestClient(config.RetrievalConfig{Host: server.URL})
		server.Close()

		_, err := client.SearchRelevantDocuments(context.Background(), "anything", 3, 0.7)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_SplunkContext(t *testing.T) {
	t.Run("search failure degrades to empty context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := newTestClient(config.RetrievalConfig{Host: server.URL, TopK: 3, MinScore: 0.7})
		assert.Empty(t, client.SplunkContext(context.Background(), "show errors"))
	})
}

func TestFormatContext(t *testing.T) {
	t.Run("empty input yields empty context", func(t *testing.T) {
		assert.Empty(t, FormatContext(nil))
	})

	t.Run("documents render with index and field hints", func(t *testing.T) {
		docs := []Document{
			{
				Content:       "Web access logs live in index=web_logs",
				Title:         "Web logs",
				IndexName:     "web_logs",
				FieldMappings: map[string]interface{}{"status": "int", "host": "string"},
			},
			{Content: "Auth events are in index=auth"},
		}

		got := FormatContext(docs)
		assert.Contains(t, got, "Relevant context from knowledge base:")
		assert.Contains(t, got, "[1] Web logs:")
		assert.Contains(t, got, "Web access logs live in index=web_logs")
		assert.Contains(t, got, "  Index: web_logs")
		assert.Contains(t, got, "  Available fields: host, status")
		assert.Contains(t, got, "[2] Document 2:")
	})

	t.Run("long content is truncated", func(t *testing.T) {
		long := make([]byte, 600)
		for i := range long {
			long[i] = 'a'
		}
		got := FormatContext([]Document{{Content: string(long), Title: "Big"}})
		assert.Contains(t, got, string(long[:500]))
		assert.NotContains(t, got, string(long[:501]))
	})

	t.Run("field list capped at ten", func(t *testing.T) {
		mappings := map[string]interface{}{}
		for _, f := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
			mappings[f] = "string"
		}
		got := FormatContext([]Document{{Content: "doc", Title: "T", FieldMappings: mappings}})
		assert.Contains(t, got, "Available fields: a, b, c, d, e, f, g, h, i, j")
		assert.NotContains(t, got, ", k")
	})
}
