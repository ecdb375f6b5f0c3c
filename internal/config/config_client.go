package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address or base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryCount is the number of retries for failed GET requests.
	RetryCount int
	// RetryWaitUnit is the linear backoff step between retries.
	RetryWaitUnit time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// TokenStoreDSN is the SQLite DSN of the local token store.
	TokenStoreDSN string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address, timeout and retry policy.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// LogFile is where the client writes its logs.
	LogFile string
	// LogLevel is the minimal zerolog level.
	LogLevel string
	// Args holds the command and its arguments left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from
// defaults, environment variables, flags in args and the optional JSON file.
//
// Server-only settings such as token secrets are not required here.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
			RetryWaitUnit:  cfg.Adapter.RetryWaitUnit,
		},
		Storage: ClientStorage{
			TokenStoreDSN: cfg.Client.TokenStoreDSN,
		},
		LogFile:  cfg.Client.LogFile,
		LogLevel: cfg.App.LogLevel,
		Args:     cfg.Args(),
	}

	return clientCfg, clientCfg.validate()
}
