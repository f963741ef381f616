// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
)

// fileConfig mirrors the on-disk layout of a JSON or YAML config file.
// Durations are written as strings ("30s", "1m") in both formats.
type fileConfig struct {
	App struct {
		Name     string `json:"name" yaml:"name"`
		Debug    bool   `json:"debug" yaml:"debug"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress     string   `json:"address" yaml:"address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		MaxBodyBytes    int64    `json:"max_body_bytes" yaml:"max_body_bytes"`
	} `json:"server" yaml:"server"`

	Database struct {
		Driver string `json:"driver" yaml:"driver"`
		DSN    string `json:"dsn" yaml:"dsn"`
	} `json:"database" yaml:"database"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"auth" yaml:"auth"`

	APIResponse struct {
		Defaults apiconfig.Record    `json:"defaults" yaml:"defaults"`
		Paths    apiconfig.PathTable `json:"paths" yaml:"paths"`
	} `json:"api_response" yaml:"api_response"`
}

// Duration wraps time.Duration to support string values such as "30s" in
// JSON and YAML config files.
type Duration struct {
	time.Duration
}

// UnmarshalJSON decodes a JSON string duration into d.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, string(b))
	}
	return d.set(s)
}

// UnmarshalYAML decodes a YAML scalar duration into d.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, node.Value)
	}
	return d.set(s)
}

func (d *Duration) set(s string) error {
	if s == "" {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	d.Duration = v
	return nil
}

// parseFile reads the config file at path, choosing the decoder by
// extension: .json, .yaml or .yml.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     fc.App.Name,
			Debug:    fc.App.Debug,
			LogLevel: fc.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  fc.Server.RequestTimeout.Duration,
			ShutdownTimeout: fc.Server.ShutdownTimeout.Duration,
			MaxBodyBytes:    fc.Server.MaxBodyBytes,
		},
		Storage: Storage{
			DB: DB{
				Driver: fc.Database.Driver,
				DSN:    fc.Database.DSN,
			},
		},
		Auth: Auth{
			TokenSignKey:  fc.Auth.TokenSignKey,
			TokenIssuer:   fc.Auth.TokenIssuer,
			TokenDuration: fc.Auth.TokenDuration.Duration,
		},
		APIResponse: APIResponse{
			Defaults: fc.APIResponse.Defaults,
			Paths:    fc.APIResponse.Paths,
		},
	}
}
