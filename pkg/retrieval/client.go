// Package retrieval provides the OpenSearch-backed knowledge base
// lookup used to ground SPL query generation with index names, field
// mappings and query patterns.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/splunk-genie/genie/pkg/config"
)

// ErrUnavailable means the knowledge base could not be reached even
// after transport retries. Match with errors.Is.
var ErrUnavailable = errors.New("knowledge base unavailable")

// Transport retry policy, mirroring the analytics client: connect
// failures get capped exponential backoff before giving up.
const (
	maxTransportAttempts = 3
	transportBackoffBase = 200 * time.Millisecond
)

// Document is one knowledge base hit.
type Document struct {
	Content       string
	Score         float64
	Title         string
	IndexName     string
	FieldMappings map[string]interface{}
	Metadata      map[string]interface{}
}

// Client provides HTTP access to an OpenSearch cluster for relevance
// search over the Splunk knowledge base index.
type Client struct {
	httpClient *http.Client
	cfg        config.RetrievalConfig
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an OpenSearch client. Host and index may be empty;
// the client then reports unavailable and every lookup returns no
// context.
func NewClient(cfg config.RetrievalConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		baseURL:    normalizeHost(cfg.Host),
		logger:     slog.Default(),
	}
}

// Available reports whether a host and index are configured.
func (c *Client) Available() bool {
	return c.cfg.Host != "" && c.cfg.Index != ""
}

// SearchRelevantDocuments runs a relevance search over the text and
// content fields and returns hits at or above minScore, best first.
func (c *Client) SearchRelevantDocuments(ctx context.Context, queryText string, topK int, minScore float64) ([]Document, error) {
	if !c.Available() {
		return nil, nil
	}

	searchBody := map[string]interface{}{
		"size": topK,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should": []interface{}{
					map[string]interface{}{"match": map[string]interface{}{"text": map[string]interface{}{"query": queryText, "boost": 1.0}}},
					map[string]interface{}{"match": map[string]interface{}{"content": map[string]interface{}{"query": queryText, "boost": 1.0}}},
				},
			},
		},
		"_source": []string{"text", "content", "metadata", "title", "index_name", "field_mappings"},
	}
	payload, err := json.Marshal(searchBody)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	searchURL := fmt.Sprintf("%s/%s/_search", c.baseURL, c.cfg.Index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, searchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Username != "" {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("search knowledge base: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenSearch returned HTTP %d for index %q", resp.StatusCode, c.cfg.Index)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	docs := make([]Document, 0, len(out.Hits.Hits))
	for _, hit := range out.Hits.Hits {
		if hit.Score < minScore {
			continue
		}
		content := stringField(hit.Source, "text")
		if content == "" {
			content = stringField(hit.Source, "content")
		}
		if content == "" {
			continue
		}
		docs = append(docs, Document{
			Content:       content,
			Score:         hit.Score,
			Title:         stringField(hit.Source, "title"),
			IndexName:     stringField(hit.Source, "index_name"),
			FieldMappings: mapField(hit.Source, "field_mappings"),
			Metadata:      mapField(hit.Source, "metadata"),
		})
	}
	return docs, nil
}

// do sends the request, retrying transport failures with backoff.
// Exhausted attempts surface ErrUnavailable; a dead context aborts
// immediately.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	backoff := transportBackoffBase
	for attempt := 1; ; attempt++ {
		if attempt > 1 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("rewind request body: %w", err)
			}
			req.Body = body
		}

		resp, err := c.httpClient.Do(req)
		if err == nil {
			return resp, nil
		}
		if req.Context().Err() != nil {
			return nil, err
		}
		if attempt == maxTransportAttempts {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		c.logger.Debug("Knowledge base request failed, retrying", "attempt", attempt, "error", err)
		select {
		case <-req.Context().Done():
			return nil, err
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

// SplunkContext retrieves and formats knowledge base context for a
// user request. Lookup failures degrade to empty context so query
// generation can proceed without grounding.
func (c *Client) SplunkContext(ctx context.Context, userQuery string) string {
	if !c.Available() {
		return ""
	}
	docs, err := c.SearchRelevantDocuments(ctx, userQuery, c.cfg.TopK, c.cfg.MinScore)
	if err != nil {
		c.logger.Warn("Knowledge base search failed", "error", err)
		return ""
	}
	return FormatContext(docs)
}

// FormatContext renders retrieved documents as the context section of
// a query generation prompt.
func FormatContext(docs []Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := []string{"Relevant context from knowledge base:"}
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = fmt.Sprintf("Document %d", i+1)
		}
		parts = append(parts, fmt.Sprintf("\n[%d] %s:", i+1, title))

		content := doc.Content
		if len(content) > 500 {
			content = content[:500]
		}
		parts = append(parts, content)

		if doc.IndexName != "" {
			parts = append(parts, "  Index: "+doc.IndexName)
		}
		if len(doc.FieldMappings) > 0 {
			fields := make([]string, 0, len(doc.FieldMappings))
			for f := range doc.FieldMappings {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			if len(fields) > 10 {
				fields = fields[:10]
			}
			parts = append(parts, "  Available fields: "+strings.Join(fields, ", "))
		}
	}
	return strings.Join(parts, "\n")
}

type searchResponse struct {
	Hits struct {
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

type searchHit struct {
	Score  float64                `json:"_score"`
	Source map[string]interface{} `json:"_source"`
}

func normalizeHost(host string) string {
	if host == "" {
		return ""
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/")
}

func stringField(source map[string]interface{}, key string) string {
	s, _ := source[key].(string)
	return s
}

func mapField(source map[string]interface{}, key string) map[string]interface{} {
	m, _ := source[key].(map[string]interface{})
	return m
}
