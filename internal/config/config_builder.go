package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults applied before any other source.
const (
	DefaultServerAddress        = ":5000"
	DefaultAccessTokenDuration  = 15 * time.Minute
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
	DefaultTokenIssuer          = "cinetrack"
	DefaultBcryptCost           = 10
	DefaultRequestTimeout       = 30 * time.Second
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultAuthRateLimit        = 5
	DefaultAuthRateBurst        = 10
	DefaultAdapterAddress       = "localhost:5000"
	DefaultAdapterTimeout       = 10 * time.Second
	DefaultRetryCount           = 3
	DefaultRetryWaitUnit        = time.Second
	DefaultTokenStoreDSN        = "cinetrack-client.db"
	DefaultClientLogFile        = "cinetrack-client.log"
	DefaultVersion              = "dev"
	DefaultLogLevel             = "debug"
)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.args = b.args

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, rest, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.args = rest
	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
			TokenIssuer:          DefaultTokenIssuer,
			BcryptCost:           DefaultBcryptCost,
			Version:              DefaultVersion,
			LogLevel:             DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			AuthRateLimit:   DefaultAuthRateLimit,
			AuthRateBurst:   DefaultAuthRateBurst,
			AllowedOrigins:  []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
			RetryCount:     DefaultRetryCount,
			RetryWaitUnit:  DefaultRetryWaitUnit,
		},
		Client: Client{
			TokenStoreDSN: DefaultTokenStoreDSN,
			LogFile:       DefaultClientLogFile,
		},
	}
}
