// Package config provides configuration loading, merging, and validation
// facilities for the API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file, loaded into the process environment
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The API response section follows presence semantics instead: a field set
// by a later source overrides, even when it is an empty list. Its path table
// can only be given in the config file.
//
// The main entry points are [GetStructuredConfig] for startup and
// [LoadAPIResponse] for reloading the API response section.
package config
