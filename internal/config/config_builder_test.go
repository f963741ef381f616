package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempFile(t, "config-*.json", string(data))
}

func writeTempFile(t *testing.T, pattern, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{LogLevel: "info"},
		Server:  Server{HTTPAddress: ":8080", MaxBodyBytes: 1 << 20},
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: "widgets.db"}},
	}
}

const yamlConfig = `
app:
  debug: true
  log_level: warn
server:
  address: "127.0.0.1:9000"
  request_timeout: 5s
database:
  driver: pgx
  dsn: postgres://localhost/widgets
auth:
  token_duration: 15m
api_response:
  defaults:
    serializer: groups
    serialize_groups: [public]
    cors_allow_headers: "Content-Type, Authorization"
  paths:
    ^/api/widgets:
      cors_allow_origin_regex: ^https://app\.example\.com$
      cors_max_age: 300
    ^/api:
      serialize_groups: []
`

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation, since no source supplied an address.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.NotNil(t, cfg)
}

// TestBuild_PropagatesBuilderError verifies that an error collected while
// adding sources is returned by build.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = ErrInvalidDuration

	cfg, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Nil(t, cfg)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later sources
// override earlier ones and zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	first := validConfig()
	first.Auth.TokenIssuer = "first"
	second := &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:9999"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "first", cfg.Auth.TokenIssuer)
	assert.Equal(t, "widgets.db", cfg.Storage.DB.DSN)
}

// TestBuild_APIResponsePresenceSemantics verifies that an explicitly empty
// list in a later source overrides, while absent fields are inherited.
func TestBuild_APIResponsePresenceSemantics(t *testing.T) {
	first := validConfig()
	first.APIResponse.Defaults = apiconfig.Record{
		Serializer: apiconfig.String("groups"),
		Groups:     []string{"public"},
	}
	second := validConfig()
	second.APIResponse.Defaults = apiconfig.Record{
		Groups: []string{},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.APIResponse.Defaults.Serializer)
	assert.Equal(t, "groups", *cfg.APIResponse.Defaults.Serializer)
	assert.NotNil(t, cfg.APIResponse.Defaults.Groups)
	assert.Empty(t, cfg.APIResponse.Defaults.Groups)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"empty dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"unknown driver", func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, ErrInvalidStorageConfigs},
		{"unknown log level", func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" }, ErrInvalidAppConfigs},
		{"negative token duration", func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = -time.Second }, ErrInvalidAuthConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost:7070"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:7070", b.configs[0].Server.HTTPAddress)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsIntoEnvironment(t *testing.T) {
	clearEnvVars(t)
	path := writeTempFile(t, "*.env", "SERVER_ADDRESS=localhost:6060\n")

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "localhost:6060", b.configs[0].Server.HTTPAddress)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost:5050"})
	path := writeTempFile(t, "*.env", "SERVER_ADDRESS=localhost:6060\n")

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "localhost:5050", b.configs[0].Server.HTTPAddress)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_SetsError_WhenInvalid(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_JSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"address": "localhost:9090", "request_timeout": "45s"},
		"api_response": map[string]any{
			"defaults": map[string]any{"serializer": "json_encode"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	fileCfg := b.configs[1]
	assert.Equal(t, "localhost:9090", fileCfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, fileCfg.Server.RequestTimeout)
	require.NotNil(t, fileCfg.APIResponse.Defaults.Serializer)
	assert.Equal(t, "json_encode", *fileCfg.APIResponse.Defaults.Serializer)
}

func TestWithFile_YAML(t *testing.T) {
	path := writeTempFile(t, "config-*.yaml", yamlConfig)

	b := newConfigBuilder().withFileAt(path)

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenDuration)

	assert.Equal(t, apiconfig.HeaderList{"Content-Type", "Authorization"}, cfg.APIResponse.Defaults.CorsAllowHeaders)
	require.Len(t, cfg.APIResponse.Paths, 2)
	assert.Equal(t, "^/api/widgets", cfg.APIResponse.Paths[0].Pattern)
	assert.Equal(t, "^/api", cfg.APIResponse.Paths[1].Pattern)
	assert.NotNil(t, cfg.APIResponse.Paths[1].Groups)
	assert.Empty(t, cfg.APIResponse.Paths[1].Groups)
}

func TestWithFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		content string
		wantErr error
	}{
		{"malformed json", "config-*.json", "{not json", nil},
		{"malformed yaml", "config-*.yaml", "app: [unterminated", nil},
		{"bad duration", "config-*.json", `{"server":{"request_timeout":"soon"}}`, ErrInvalidDuration},
		{"unknown extension", "config-*.toml", "a = 1", ErrUnknownConfigFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.pattern, tt.content)
			b := newConfigBuilder().withFileAt(path)
			require.Error(t, b.err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, b.err, tt.wantErr)
			}
			assert.Empty(t, b.configs)
		})
	}
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder().withFileAt(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, b.err, os.ErrNotExist)
}

// TestWithFile_UsesLastPath verifies that the path from the last source that
// set one is used.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"server": map[string]any{"address": "localhost:1111"}})
	second := writeTempJSONConfig(t, map[string]any{"server": map[string]any{"address": "localhost:2222"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "localhost:2222", b.configs[2].Server.HTTPAddress)
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestLoadAPIResponse(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_SERIALIZER":   "json_encode",
		"API_CORS_MAX_AGE": "60",
	})
	path := writeTempFile(t, "config-*.yml", yamlConfig)

	api, err := LoadAPIResponse(path)
	require.NoError(t, err)

	// The file overrides the env serializer; max age is inherited from env.
	require.NotNil(t, api.Defaults.Serializer)
	assert.Equal(t, "groups", *api.Defaults.Serializer)
	require.NotNil(t, api.Defaults.CorsMaxAge)
	assert.Equal(t, 60, *api.Defaults.CorsMaxAge)
	assert.Len(t, api.Paths, 2)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost:1111"})
	t.Chdir(t.TempDir())

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:2222", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "widgets.db", cfg.Storage.DB.DSN)
}
