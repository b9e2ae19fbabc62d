package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// Validate checks the resolved configuration for values that would
// misbehave silently at runtime.
func (c *Config) Validate() error {
	var errs []error

	if c.Auth.Enabled && c.Auth.SecretKey == DefaultSecretKey {
		errs = append(errs, errors.New("auth.secret_key must be changed when auth is enabled"))
	}
	if c.Auth.DefaultUser == "" {
		errs = append(errs, errors.New("auth.default_user must not be empty"))
	}
	if c.Auth.TokenExpiry <= 0 {
		errs = append(errs, errors.New("auth.token_expiry must be positive"))
	}

	if c.Queue.WorkerCount < 1 {
		errs = append(errs, fmt.Errorf("queue.worker_count must be at least 1, got %d", c.Queue.WorkerCount))
	}
	if c.Queue.MaxConcurrentJobs < 1 {
		errs = append(errs, fmt.Errorf("queue.max_concurrent_jobs must be at least 1, got %d", c.Queue.MaxConcurrentJobs))
	}
	if c.Queue.PollInterval <= 0 {
		errs = append(errs, errors.New("queue.poll_interval must be positive"))
	}
	if c.Queue.JobTimeout <= 0 {
		errs = append(errs, errors.New("queue.job_timeout must be positive"))
	}

	if c.Events.QueueCapacity < 1 {
		errs = append(errs, fmt.Errorf("events.queue_capacity must be at least 1, got %d", c.Events.QueueCapacity))
	}

	if c.Stream.FlushTokens < 1 {
		errs = append(errs, fmt.Errorf("stream.flush_tokens must be at least 1, got %d", c.Stream.FlushTokens))
	}
	if c.Stream.FlushInterval <= 0 {
		errs = append(errs, errors.New("stream.flush_interval must be positive"))
	}

	if c.Retrieval.TopK < 1 {
		errs = append(errs, fmt.Errorf("retrieval.top_k must be at least 1, got %d", c.Retrieval.TopK))
	}
	if c.Analytics.Port < 1 || c.Analytics.Port > 65535 {
		errs = append(errs, fmt.Errorf("analytics.port out of range: %d", c.Analytics.Port))
	}

	if c.Retention.Enabled {
		if c.Retention.JobRetentionDays < 1 {
			errs = append(errs, fmt.Errorf("retention.job_retention_days must be at least 1, got %d", c.Retention.JobRetentionDays))
		}
		if c.Retention.ResultRetentionDays < 1 {
			errs = append(errs, fmt.Errorf("retention.result_retention_days must be at least 1, got %d", c.Retention.ResultRetentionDays))
		}
		if c.Retention.CleanupInterval <= 0 {
			errs = append(errs, errors.New("retention.cleanup_interval must be positive"))
		}
	}

	if !c.Auth.Enabled {
		slog.Info("Auth disabled, all requests run as the default user", "user", c.Auth.DefaultUser)
	}

	return errors.Join(errs...)
}
