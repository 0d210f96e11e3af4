// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envStateVariable selects the environment and the variable prefix.
const envStateVariable = "ENV_STATE"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// If ENV_STATE is set, its upper-cased value followed by "_" is prepended to
// every lookup, so ENV_STATE=dev reads DEV_APP_TOKEN_SIGN_KEY.
func parseEnv(cfg *StructuredConfig) error {
	state := strings.ToLower(strings.TrimSpace(os.Getenv(envStateVariable)))

	opts := env.Options{}
	if state != "" {
		opts.Prefix = strings.ToUpper(state) + "_"
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Env = state
	return nil
}
