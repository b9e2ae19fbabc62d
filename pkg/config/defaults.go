package config

import "time"

// DefaultSecretKey is the development signing key. Validation refuses
// to start with auth enabled unless it has been replaced.
const DefaultSecretKey = "dev-secret-key-change-me"

// Default returns the built-in configuration. Every field has a usable
// development value; production deployments override via YAML or env.
func Default() *Config {
	return &Config{
		Auth: AuthConfig{
			Enabled:     false,
			DefaultUser: "dev",
			DevPassword: "devpass",
			SecretKey:   DefaultSecretKey,
			TokenExpiry: 30 * time.Minute,
		},
		Server: ServerConfig{
			ListenAddr: ":8000",
			CORSOrigins: []string{
				"http://localhost:5173",
				"http://localhost:3000",
			},
			WSWriteTimeout: 10 * time.Second,
			WSIdlePing:     30 * time.Second,
		},
		LLM: LLMConfig{
			Model:       "gpt-4",
			Temperature: 0.7,
			MaxTokens:   2000,
			Timeout:     60 * time.Second,
			MaxRetries:  3,
		},
		Retrieval: RetrievalConfig{
			TopK:     3,
			MinScore: 0.7,
			Timeout:  10 * time.Second,
		},
		Analytics: AnalyticsConfig{
			Port:           8089,
			VerifySSL:      true,
			PollInterval:   500 * time.Millisecond,
			MaxWait:        60 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		Pipeline: PipelineConfig{
			MockResponses: false,
			Streaming:     true,
			MaxHistory:    10,
		},
		Queue: QueueConfig{
			WorkerCount:             5,
			MaxConcurrentJobs:       5,
			PollInterval:            1 * time.Second,
			PollIntervalJitter:      500 * time.Millisecond,
			JobTimeout:              5 * time.Minute,
			GracefulShutdownTimeout: 30 * time.Second,
		},
		Events: EventsConfig{
			QueueCapacity: 256,
		},
		Stream: StreamConfig{
			FlushTokens:   8,
			FlushInterval: 250 * time.Millisecond,
		},
		Retention: RetentionConfig{
			Enabled:             true,
			JobRetentionDays:    30,
			ResultRetentionDays: 7,
			CleanupInterval:     1 * time.Hour,
		},
	}
}
