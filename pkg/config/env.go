package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// applyEnv overrides cfg with values from environment variables.
// Variable names follow the original deployment surface; unset and
// malformed values leave the current setting in place.
func applyEnv(cfg *Config) {
	setString(&cfg.Auth.DefaultUser, "DEFAULT_USER")
	setString(&cfg.Auth.DevPassword, "DEV_PASSWORD")
	setString(&cfg.Auth.SecretKey, "SECRET_KEY")
	setBool(&cfg.Auth.Enabled, "AUTH_ENABLED")
	if v, ok := envInt("ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		cfg.Auth.TokenExpiry = time.Duration(v) * time.Minute
	}

	setString(&cfg.Server.ListenAddr, "LISTEN_ADDR")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.Server.CORSOrigins = origins
	}
	setDuration(&cfg.Server.WSWriteTimeout, "WS_WRITE_TIMEOUT")
	setDuration(&cfg.Server.WSIdlePing, "WS_IDLE_PING")

	setString(&cfg.LLM.APIKey, "OPENAI_API_KEY")
	setString(&cfg.LLM.Model, "OPENAI_MODEL")
	setString(&cfg.LLM.BaseURL, "OPENAI_BASE_URL")
	setDuration(&cfg.LLM.Timeout, "OPENAI_TIMEOUT")

	setString(&cfg.Retrieval.Host, "OPENSEARCH_HOST")
	setString(&cfg.Retrieval.Index, "OPENSEARCH_INDEX")
	setString(&cfg.Retrieval.Username, "OPENSEARCH_USERNAME")
	setString(&cfg.Retrieval.Password, "OPENSEARCH_PASSWORD")
	setInt(&cfg.Retrieval.TopK, "OPENSEARCH_CONTEXT_TOP_K")

	setString(&cfg.Analytics.Host, "SPLUNK_HOST")
	setInt(&cfg.Analytics.Port, "SPLUNK_PORT")
	setString(&cfg.Analytics.Username, "SPLUNK_USERNAME")
	setString(&cfg.Analytics.Password, "SPLUNK_PASSWORD")
	setBool(&cfg.Analytics.VerifySSL, "SPLUNK_VERIFY_SSL")
	setDuration(&cfg.Analytics.PollInterval, "SPLUNK_POLL_INTERVAL")
	setDuration(&cfg.Analytics.MaxWait, "SPLUNK_MAX_WAIT")

	setBool(&cfg.Pipeline.MockResponses, "MOCK_RESPONSES_ENABLED")
	setBool(&cfg.Pipeline.Streaming, "STREAMING_ENABLED")
	setInt(&cfg.Pipeline.MaxHistory, "MAX_CONVERSATION_HISTORY")

	setInt(&cfg.Queue.WorkerCount, "WORKER_COUNT")
	setInt(&cfg.Queue.MaxConcurrentJobs, "MAX_CONCURRENT_JOBS")
	setDuration(&cfg.Queue.PollInterval, "POLL_INTERVAL")
	setDuration(&cfg.Queue.PollIntervalJitter, "POLL_INTERVAL_JITTER")
	setDuration(&cfg.Queue.JobTimeout, "JOB_TIMEOUT")
	setDuration(&cfg.Queue.GracefulShutdownTimeout, "SHUTDOWN_GRACE_PERIOD")

	setInt(&cfg.Events.QueueCapacity, "EVENT_QUEUE_CAPACITY")

	setInt(&cfg.Stream.FlushTokens, "STREAM_FLUSH_TOKENS")
	setDuration(&cfg.Stream.FlushInterval, "STREAM_FLUSH_INTERVAL")

	setBool(&cfg.Retention.Enabled, "RETENTION_ENABLED")
	setInt(&cfg.Retention.JobRetentionDays, "JOB_RETENTION_DAYS")
	setInt(&cfg.Retention.ResultRetentionDays, "RESULT_RETENTION_DAYS")
	setDuration(&cfg.Retention.CleanupInterval, "CLEANUP_INTERVAL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring invalid boolean environment variable", "key", key, "value", v)
		return
	}
	*dst = b
}

func setInt(dst *int, key string) {
	if v, ok := envInt(key); ok {
		*dst = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring invalid integer environment variable", "key", key, "value", v)
		return 0, false
	}
	return n, true
}

func setDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("Ignoring invalid duration environment variable", "key", key, "value", v)
		return
	}
	*dst = d
}
