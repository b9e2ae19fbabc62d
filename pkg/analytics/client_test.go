package analytics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/config"
)

const testJobID = "1724501234.567"

func TestClient_ExecuteQuery(t *testing.T) {
	t.Run("submits search and returns results when job completes", func(t *testing.T) {
		var submitted url.Values
		var gotUser, gotPass string
		polls := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/services/search/jobs":
				gotUser, gotPass, _ = r.BasicAuth()
				require.NoError(t, r.ParseForm())
				submitted = r.PostForm
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><response><sid>` + testJobID + `</sid></response>`))

			case r.URL.Path == "/services/search/jobs/"+testJobID:
				polls++
				state := "RUNNING"
				if polls > 1 {
					state = "DONE"
				}
				_, _ = w.Write([]byte(`{"entry":[{"content":{"dispatchState":"` + state + `"}}]}`))

			case r.URL.Path == "/services/search/jobs/"+testJobID+"/results":
				_, _ = w.Write([]byte(`{
					"preview": false,
					"fields": [{"name": "host"}, {"name": "count"}],
					"results": [
						{"host": "web-01", "count": "42"},
						{"host": "web-02", "count": "17"}
					]
				}`))

			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := newTestSplunkClient(t, server)

		result, err := client.ExecuteQuery(context.Background(), "index=web | stats count by host", "-24h", "now")
		require.NoError(t, err)

		assert.Equal(t, "search index=web | stats count by host", submitted.Get("search"))
		assert.Equal(t, "json", submitted.Get("output_mode"))
		assert.Equal(t, "1000", submitted.Get("count"))
		assert.Equal(t, "-24h", submitted.Get("earliest_time"))
		assert.Equal(t, "now", submitted.Get("latest_time"))
		assert.Equal(t, "admin", gotUser)
		assert.Equal(t, "changeme", gotPass)

		assert.Equal(t, testJobID, result.JobID)
		assert.Equal(t, []string{"host", "count"}, result.Fields)
		assert.False(t, result.Preview)
		require.Len(t, result.Results, 2)
		assert.Equal(t, "web-01", result.Results[0]["host"])
		assert.GreaterOrEqual(t, polls, 2)
	})

	t.Run("omits time range modifiers when empty", func(t *testing.T) {
		var submitted url.Values
		server := newCompletingSplunkStub(t, &submitted)
		defer server.Close()

		client := newTestSplunkClient(t, server)

		_, err := client.ExecuteQuery(context.Background(), "index=web error", "", "")
		require.NoError(t, err)
		assert.False(t, submitted.Has("earliest_time"))
		assert.False(t, submitted.Has("latest_time"))
	})

	t.Run("failed job state returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				_, _ = w.Write([]byte("<response><sid>" + testJobID + "</sid></response>"))
				return
			}
			_, _ = w.Write([]byte(`{"entry":[{"content":{"dispatchState":"FAILED"}}]}`))
		}))
		defer server.Close()

		client := newTestSplunkClient(t, server)

		_, err := client.ExecuteQuery(context.Background(), "index=web", "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "splunk job failed with state: FAILED")
	})

	t.Run("missing sid returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<response><messages/></response>"))
		}))
		defer server.Close()

		client := newTestSplunkClient(t, server)

		_, err := client.ExecuteQuery(context.Background(), "index=web", "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get job ID")
	})

	t.Run("HTTP error creating job returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := newTestSplunkClient(t, server)

		_, err := client.ExecuteQuery(context.Background(), "index=web", "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("job that never completes times out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				_, _ = w.Write([]byte("<response><sid>" + testJobID + "</sid></response>"))
				return
			}
			_, _ = w.Write([]byte(`{"entry":[{"content":{"dispatchState":"RUNNING"}}]}`))
		}))
		defer server.Close()

		client := newTestSplunkClient(t, server)
		client.cfg.MaxWait = 30 * time.Millisecond

		_, err := client.ExecuteQuery(context.Background(), "index=web", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("unconfigured client fails fast", func(t *testing.T) {
		client := NewClient(config.AnalyticsConfig{})

		_, err := client.ExecuteQuery(context.Background(), "index=web", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("context cancellation stops polling", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				_, _ = w.Write([]byte("<response><sid>" + testJobID + "</sid></response>"))
				return
			}
			_, _ = w.Write([]byte(`{"entry":[{"content":{"dispatchState":"RUNNING"}}]}`))
		}))
		defer server.Close()

		client := newTestSplunkClient(t, server)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		_, err := client.ExecuteQuery(ctx, "index=web", "", "")
		require.Error(t, err)
	})
}

// flakyTransport refuses the first failures round trips, then hands
// off to the real transport.
type flakyTransport struct {
	mu       sync.Mutex
	failures int
	attempts int
	next     http.RoundTripper
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	f.attempts++
	n := f.attempts
	f.mu.Unlock()
	if n <= f.failures {
		return nil, errors.New("dial tcp: connect: connection refused")
	}
	return f.next.RoundTrip(req)
}

func TestClient_TransportRetries(t *testing.T) {
	t.Run("exhausted connect retries surface unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		client := newTestSplunkClient(t, server)
		server.Close()

		_, err := client.ExecuteQuery(context.Background(), "index=web", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("a flaky connection recovers within the retry budget", func(t *testing.T) {
		var submitted url.Values
		server := newCompletingSplunkStub(t, &submitted)
		defer server.Close()

		client := newTestSplunkClient(t, server)
		ft := &flakyTransport{failures: maxTransportAttempts - 1, next: http.DefaultTransport}
		client.httpClient.Transport = ft

		result, err := client.ExecuteQuery(context.Background(), "index=web | stats count", "", "")
		require.NoError(t, err)
		assert.Equal(t, testJobID, result.JobID)
		assert.GreaterOrEqual(t, ft.attempts, maxTransportAttempts)
	})
}

func TestClient_Available(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		client := NewClient(config.AnalyticsConfig{Host: "splunk.example.com", Port: 8089, Username: "admin", Password: "changeme"})
		assert.True(t, client.Available())
	})

	t.Run("missing host", func(t *testing.T) {
		client := NewClient(config.AnalyticsConfig{Username: "admin", Password: "changeme"})
		assert.False(t, client.Available())
	})

	t.Run("missing credentials", func(t *testing.T) {
		client := NewClient(config.AnalyticsConfig{Host: "splunk.example.com", Port: 8089})
		assert.False(t, client.Available())
	})
}

// newTestSplunkClient points a client with fast polling at the stub server.
func newTestSplunkClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return NewClient(config.AnalyticsConfig{
		Host:         u.Hostname(),
		Port:         port,
		Username:     "admin",
		Password:     "changeme",
		PollInterval: 2 * time.Millisecond,
		MaxWait:      2 * time.Second,
	})
}

// newCompletingSplunkStub answers the full submit-poll-fetch cycle with
// an immediately DONE job and records the submitted form.
func newCompletingSplunkStub(t *testing.T, submitted *url.Values) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/services/search/jobs":
			require.NoError(t, r.ParseForm())
			*submitted = r.PostForm
			_, _ = w.Write([]byte("<response><sid>" + testJobID + "</sid></response>"))
		case r.URL.Path == "/services/search/jobs/"+testJobID:
			_, _ = w.Write([]byte(`{"entry":[{"content":{"dispatchState":"DONE"}}]}`))
		case r.URL.Path == "/services/search/jobs/"+testJobID+"/results":
			_, _ = w.Write([]byte(`{"preview":false,"fields":[{"name":"host"}],"results":[{"host":"web-01"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}
