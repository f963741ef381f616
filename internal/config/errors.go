package config

import "errors"

// Errors returned while loading or validating the configuration.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty address or a non-positive body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates invalid token settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidDuration is returned when a config file duration cannot be
	// parsed.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrUnknownConfigFormat is returned for config files whose extension is
	// neither .json, .yaml nor .yml.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
)
