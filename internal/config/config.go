// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
)

// StructuredConfig is the top-level configuration container of the API
// server. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset; env is the lowest
//     priority source, so these are also the overall defaults.
type StructuredConfig struct {
	// App holds application-level settings such as the debug switch and the
	// log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration of the widget database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds bearer token verification settings.
	Auth Auth `envPrefix:"AUTH_"`

	// APIResponse holds the default API response settings and the ordered
	// path table. Environment variables (API_*) can only set the defaults;
	// the path table comes from the config file.
	APIResponse APIResponse `env:"-"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file, chosen by extension. Populated via the CONFIG environment
	// variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the role label attached to every log entry.
	// Env: APP_NAME
	Name string `env:"NAME" envDefault:"api-response-server"`

	// Debug enables debug disclosure: unclassified failures carry their
	// diagnostic detail in the error title. Never enable in production.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":8080"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// MaxBodyBytes limits request bodies of write endpoints.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the widget database.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" envDefault:"sqlite3"`

	// DSN is the data source name, a file path for sqlite3 or a PostgreSQL
	// connection string for pgx.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" envDefault:"widgets.db"`
}

// Auth holds bearer token settings.
type Auth struct {
	// TokenSignKey is the HMAC key used to verify JWT bearer tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"api-response-server"`

	// TokenDuration is the lifetime of tokens issued by the demo login.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"1h"`
}

// APIResponse is the process configuration input of the API response layer.
type APIResponse struct {
	// Defaults is the lowest-priority configuration record.
	Defaults apiconfig.Record `json:"defaults" yaml:"defaults"`

	// Paths is the ordered path table; the first matching pattern wins.
	Paths apiconfig.PathTable `json:"paths" yaml:"paths"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory, if present
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML file (path resolved from sources 1-3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(args).
		withFile().
		build()
}

// LoadAPIResponse re-reads only the API response section from the
// environment and the config file at path. It is used for reloads, where the
// rest of the process configuration stays as it was at startup.
func LoadAPIResponse(path string) (APIResponse, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFileAt(path).
		build()
	if err != nil {
		return APIResponse{}, err
	}
	return cfg.APIResponse, nil
}
