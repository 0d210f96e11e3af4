// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

var tokenAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. All problems are reported at once, joined with [errors.Join].
func (cfg *StructuredConfig) validate() error {
	var errs []error
	fail := func(group error, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{group}, args...)...))
	}

	switch cfg.Env {
	case "", EnvDev, EnvProd, EnvTest:
	default:
		fail(ErrUnknownEnvState, "%q", cfg.Env)
	}

	if cfg.App.TokenSignKey == "" {
		fail(ErrInvalidAppConfigs, "token sign key is required")
	}
	if _, ok := tokenAlgorithms[cfg.App.TokenAlgorithm]; !ok {
		fail(ErrInvalidAppConfigs, "unsupported token algorithm %q", cfg.App.TokenAlgorithm)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		fail(ErrInvalidAppConfigs, "log level: %v", err)
	}

	if cfg.Storage.DB.DSN == "" {
		fail(ErrInvalidStorageConfigs, "database DSN is required")
	}
	switch driver := cfg.Storage.DB.ResolveDriver(); driver {
	case DriverPostgres, DriverSQLite:
	default:
		fail(ErrInvalidStorageConfigs, "cannot resolve database driver %q", driver)
	}

	if cfg.Server.HTTPAddress == "" {
		fail(ErrInvalidServerConfigs, "http address is required")
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		fail(ErrInvalidServerConfigs, "timeouts must be positive")
	}

	genAI := cfg.Adapter.GenAI
	if u, err := url.Parse(genAI.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		fail(ErrInvalidAdapterConfigs, "base url %q must include scheme and host", genAI.BaseURL)
	}
	if genAI.Model == "" {
		fail(ErrInvalidAdapterConfigs, "model is required")
	}
	if genAI.RequestTimeout <= 0 {
		fail(ErrInvalidAdapterConfigs, "request timeout must be positive")
	}
	if cfg.Env == EnvProd && genAI.APIKey == "" {
		fail(ErrInvalidAdapterConfigs, "api key is required in %s", EnvProd)
	}

	return errors.Join(errs...)
}
