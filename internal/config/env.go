// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
)

// apiResponseEnv lists the API_* variables that set API response defaults.
// Unset variables leave the corresponding default absent.
type apiResponseEnv struct {
	Serializer           *string  `env:"SERIALIZER"`
	SerializeGroups      []string `env:"SERIALIZE_GROUPS"`
	CorsAllowHeaders     []string `env:"CORS_ALLOW_HEADERS"`
	CorsAllowOriginRegex *string  `env:"CORS_ALLOW_ORIGIN_REGEX"`
	CorsMaxAge           *int     `env:"CORS_MAX_AGE"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types; API response defaults
// are read from the API_* variables.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var api apiResponseEnv
	if err := env.ParseWithOptions(&api, env.Options{Prefix: "API_"}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.APIResponse.Defaults = apiconfig.Record{
		Serializer:           api.Serializer,
		Groups:               api.SerializeGroups,
		CorsAllowHeaders:     trimAll(api.CorsAllowHeaders),
		CorsAllowOriginRegex: api.CorsAllowOriginRegex,
		CorsMaxAge:           api.CorsMaxAge,
	}
	return nil
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
