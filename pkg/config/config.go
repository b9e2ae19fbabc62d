// Package config loads and validates the application configuration.
//
// Resolution order (later wins):
//  1. Built-in defaults (defaults.go)
//  2. Optional YAML overlay file (GENIE_CONFIG or --config flag),
//     with {{.VAR}} environment expansion
//  3. Environment variables
//
// The resolved Config is immutable after Load; components receive it
// (or a sub-section) at construction and never re-read the environment.
package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Auth      AuthConfig      `yaml:"auth"`
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Queue     QueueConfig     `yaml:"queue"`
	Events    EventsConfig    `yaml:"events"`
	Stream    StreamConfig    `yaml:"stream"`
	Retention RetentionConfig `yaml:"retention"`
}

// AuthConfig controls the JWT login surface.
// With Enabled=false every request runs as DefaultUser and tokens are
// neither required nor validated.
type AuthConfig struct {
	Enabled     bool          `yaml:"enabled"`
	DefaultUser string        `yaml:"default_user"`
	DevPassword string        `yaml:"dev_password"`
	SecretKey   string        `yaml:"secret_key"`
	TokenExpiry time.Duration `yaml:"token_expiry"`
}

// ServerConfig holds HTTP and WebSocket server settings.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`

	// CORSOrigins are the allowed browser origins.
	CORSOrigins []string `yaml:"cors_origins"`

	// WSWriteTimeout bounds a single WebSocket send.
	WSWriteTimeout time.Duration `yaml:"ws_write_timeout"`

	// WSIdlePing is the read-idle interval after which a ping frame is
	// sent to keep the connection alive.
	WSIdlePing time.Duration `yaml:"ws_idle_ping"`
}

// LLMConfig configures the OpenAI-compatible chat completion adapter.
// An empty APIKey means the adapter is unconfigured and reports
// unavailable.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	BaseURL     string        `yaml:"base_url"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
}

// RetrievalConfig configures the knowledge-base search adapter.
// An empty Host disables retrieval.
type RetrievalConfig struct {
	Host     string        `yaml:"host"`
	Index    string        `yaml:"index"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	TopK     int           `yaml:"top_k"`
	MinScore float64       `yaml:"min_score"`
	Timeout  time.Duration `yaml:"timeout"`
}

// AnalyticsConfig configures the Splunk search adapter.
// An empty Host disables query execution (queries are attached to
// messages for client-side execution instead).
type AnalyticsConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	VerifySSL bool   `yaml:"verify_ssl"`

	// PollInterval is the delay between search job status polls.
	PollInterval time.Duration `yaml:"poll_interval"`

	// MaxWait bounds the whole submit-poll-fetch cycle.
	MaxWait time.Duration `yaml:"max_wait"`

	// RequestTimeout bounds a single HTTP call to the backend.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// PipelineConfig holds response-pipeline behavior flags.
type PipelineConfig struct {
	// MockResponses forces the deterministic mock generator even when
	// the LLM is configured. The pipeline also falls back to the mock
	// generator on its own whenever the LLM is unavailable.
	MockResponses bool `yaml:"mock_responses"`

	// Streaming enables token streaming for assistant responses.
	Streaming bool `yaml:"streaming"`

	// MaxHistory caps how many prior messages are replayed into the
	// LLM prompt.
	MaxHistory int `yaml:"max_history"`
}

// QueueConfig contains worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of claiming goroutines.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of jobs in flight,
	// enforced by a database COUNT check before claiming.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking queued jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes the poll interval to de-synchronize
	// workers. Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the maximum time a single job may run.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is how long Stop waits for in-flight jobs
	// before marking them failed.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// EventsConfig configures the in-process event bus.
type EventsConfig struct {
	// QueueCapacity bounds each topic's pending event queue.
	QueueCapacity int `yaml:"queue_capacity"`
}

// StreamConfig controls token persistence batching during streaming.
type StreamConfig struct {
	// FlushTokens is how many tokens may accumulate before the partial
	// content is written to the database.
	FlushTokens int `yaml:"flush_tokens"`

	// FlushInterval forces a write after this much time even when fewer
	// than FlushTokens tokens arrived.
	FlushInterval time.Duration `yaml:"flush_interval"`
}

// RetentionConfig controls background cleanup of old rows.
type RetentionConfig struct {
	Enabled bool `yaml:"enabled"`

	// JobRetentionDays is how many days terminal jobs are kept.
	JobRetentionDays int `yaml:"job_retention_days"`

	// ResultRetentionDays is how many days cached query results are kept.
	ResultRetentionDays int `yaml:"result_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}
