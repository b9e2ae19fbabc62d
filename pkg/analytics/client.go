// Package analytics provides the Splunk search client and the result
// classifier that turns raw search output into visualization-ready
// data.
package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/metrics"
)

// Sentinel errors for query execution failures. Match with errors.Is.
var (
	// ErrUnavailable means Splunk is not configured or not reachable.
	ErrUnavailable = errors.New("splunk service unavailable")

	// ErrTimeout means the search job did not complete in time.
	ErrTimeout = errors.New("splunk query timed out")
)

var sidPattern = regexp.MustCompile(`<sid>([^<]+)</sid>`)

const resultCountLimit = 1000

// Transport retry policy: connect-level failures are retried with
// capped exponential backoff before the backend is declared down.
const (
	maxTransportAttempts = 3
	transportBackoffBase = 200 * time.Millisecond
)

// QueryResult is the raw output of one completed search job.
type QueryResult struct {
	Results []map[string]interface{}
	Fields  []string
	Preview bool
	JobID   string
}

// Client provides HTTP access to the Splunk search REST API: job
// submission, completion polling and result retrieval.
type Client struct {
	httpClient *http.Client
	cfg        config.AnalyticsConfig
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Splunk client. An unset host yields a client
// that reports unavailable; every execution then fails fast with
// ErrUnavailable.
func NewClient(cfg config.AnalyticsConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	baseURL := ""
	if cfg.Host != "" {
		scheme := "http"
		if cfg.VerifySSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s:%d", scheme, cfg.Host, cfg.Port)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		baseURL:    baseURL,
		logger:     slog.Default(),
	}
}

// Available reports whether host and credentials are configured.
func (c *Client) Available() bool {
	return c.baseURL != "" && c.cfg.Username != "" && c.cfg.Password != ""
}

// ExecuteQuery submits an SPL query, polls the search job to
// completion and returns its results. earliest and latest are Splunk
// time modifiers and may be empty.
func (c *Client) ExecuteQuery(ctx context.Context, query, earliest, latest string) (*QueryResult, error) {
	if !c.Available() {
		return nil, fmt.Errorf("%w: set SPLUNK_HOST, SPLUNK_USERNAME, and SPLUNK_PASSWORD", ErrUnavailable)
	}

	jobID, err := c.submitSearch(ctx, query, earliest, latest)
	if err != nil {
		metrics.RecordAnalyticsQuery(queryStatus(err))
		return nil, err
	}
	result, err := c.waitForCompletion(ctx, jobID)
	metrics.RecordAnalyticsQuery(queryStatus(err))
	return result, err
}

func queryStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	default:
		return "error"
	}
}

// submitSearch creates a search job and returns its id.
func (c *Client) submitSearch(ctx context.Context, query, earliest, latest string) (string, error) {
	form := url.Values{
		"search":      {"search " + query},
		"output_mode": {"json"},
		"count":       {strconv.Itoa(resultCountLimit)},
	}
	if earliest != "" {
		form.Set("earliest_time", earliest)
	}
	if latest != "" {
		form.Set("latest_time", latest)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/services/search/jobs", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.do(req)
	if err != nil {
		return "", c.classify(ctx, fmt.Errorf("submit search job: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("Splunk returned HTTP %d creating search job", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read job response: %w", err)
	}
	match := sidPattern.FindSubmatch(body)
	if match == nil {
		return "", fmt.Errorf("failed to get job ID from Splunk response")
	}
	return string(match[1]), nil
}

// waitForCompletion polls the job status until DONE, then fetches the
// results. A job still running after the configured max wait fails
// with ErrTimeout.
func (c *Client) waitForCompletion(ctx context.Context, jobID string) (*QueryResult, error) {
	maxWait := c.cfg.MaxWait
	if maxWait <= 0 {
		maxWait = 60 * time.Second
	}
	pollInterval := c.cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}

	deadline := time.Now().Add(maxWait)
	for time.Now().Before(deadline) {
		state, err := c.jobState(ctx, jobID)
		if err != nil {
			return nil, err
		}

		switch state {
		case "DONE":
			return c.fetchResults(ctx, jobID)
		case "FAILED", "FINALIZING":
			return nil, fmt.Errorf("splunk job failed with state: %s", state)
		}

		select {
		case <-ctx.Done():
			return nil, c.classify(ctx, ctx.Err())
		case <-time.After(pollInterval):
		}
	}
	return nil, fmt.Errorf("%w: splunk job %s did not complete within %s", ErrTimeout, jobID, maxWait)
}

func (c *Client) jobState(ctx context.Context, jobID string) (string, error) {
	statusURL := fmt.Sprintf("%s/services/search/jobs/%s?output_mode=json", c.baseURL, url.PathEscape(jobID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.do(req)
	if err != nil {
		return "", c.classify(ctx, fmt.Errorf("poll search job %s: %w", jobID, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Splunk returned HTTP %d polling job %s", resp.StatusCode, jobID)
	}

	var status struct {
		Entry []struct {
			Content struct {
				DispatchState string `json:"dispatchState"`
			} `json:"content"`
		} `json:"entry"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("decode job status: %w", err)
	}
	if len(status.Entry) == 0 {
		return "", nil
	}
	return status.Entry[0].Content.DispatchState, nil
}

func (c *Client) fetchResults(ctx context.Context, jobID string) (*QueryResult, error) {
	resultsURL := fmt.Sprintf("%s/services/search/jobs/%s/results?output_mode=json&count=%d", c.baseURL, url.PathEscape(jobID), resultCountLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resultsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.do(req)
	if err != nil {
		return nil, c.classify(ctx, fmt.Errorf("fetch results for job %s: %w", jobID, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Splunk returned HTTP %d fetching results for job %s", resp.StatusCode, jobID)
	}

	var out struct {
		Results []map[string]interface{} `json:"results"`
		Fields  []struct {
			Name string `json:"name"`
		} `json:"fields"`
		Preview bool `json:"preview"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}

	fields := make([]string, 0, len(out.Fields))
	for _, f := range out.Fields {
		fields = append(fields, f.Name)
	}
	c.logger.Debug("Splunk search completed", "job_id", jobID, "rows", len(out.Results))

	return &QueryResult{
		Results: out.Results,
		Fields:  fields,
		Preview: out.Preview,
		JobID:   jobID,
	}, nil
}

// do sends the request, retrying transport failures with backoff.
// Exhausted attempts surface ErrUnavailable; a dead context aborts
// immediately so cancellation and deadline expiry stay distinguishable.
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

		c.logger.Debug("Splunk request failed, retrying", "attempt", attempt, "error", err)
		select {
		case <-req.Context().Done():
			return nil, err
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

// classify maps deadline expiry onto ErrTimeout so callers can
// distinguish a slow search from an unreachable one.
func (c *Client) classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
