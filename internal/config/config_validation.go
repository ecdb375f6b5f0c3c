// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// All violations are reported together, each wrapped in the sentinel of its
// group so callers can match them with errors.Is.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.AccessTokenSecret == "" || cfg.App.RefreshTokenSecret == "" {
		errs = append(errs, fmt.Errorf("%w: access and refresh token secrets are required", ErrInvalidAppConfigs))
	} else if cfg.App.AccessTokenSecret == cfg.App.RefreshTokenSecret {
		errs = append(errs, fmt.Errorf("%w: access and refresh token secrets must differ", ErrInvalidAppConfigs))
	}
	if cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs))
	}
	if cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%w: auth rate limit and burst must be positive", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.TokenStoreDSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RetryCount < 0 || (cfg.Adapter.RetryCount > 0 && cfg.Adapter.RetryWaitUnit <= 0) {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
