package config

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "file:trips.db"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_DefaultsAloneFailValidation(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.NotErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	sentinel := errors.New("boom")
	b.err = sentinel

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestBuild_LaterSourcesOverrideNonZeroFields(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig(), &StructuredConfig{
		App:    App{TokenSignKey: "override"},
		Server: Server{RequestTimeout: time.Minute},
	})

	// Act
	cfg, err := b.build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenSignKey)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTokenAlgorithm, cfg.App.TokenAlgorithm)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestBuilder_Precedence(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env_secret",
		"STORAGE_DB_DATABASE_URI": "file:env.db",
		"SERVER_ADDRESS":          ":7000",
		"APP_LOG_LEVEL":           "debug",
	})
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "json_secret"},
	})
	args := []string{"-a", ":7001", "-log-level", "warn", "-c", jsonPath}

	// Act
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "json_secret", cfg.App.TokenSignKey)
	assert.Equal(t, ":7001", cfg.Server.HTTPAddress)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "file:env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, defaultGenAIModel, cfg.Adapter.GenAI.Model)
}

func TestBuilder_FlagErrorIsReported(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := newConfigBuilder().withDefaults().withFlags([]string{"-a", "bad"}).build()

	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestBuilder_MissingJSONFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "unknown env", mutate: func(c *StructuredConfig) { c.Env = "staging" }, wantErr: ErrUnknownEnvState},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "rsa algorithm", mutate: func(c *StructuredConfig) { c.App.TokenAlgorithm = "RS256" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad log level", mutate: func(c *StructuredConfig) { c.App.LogLevel = "loud" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero request timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "relative genai url", mutate: func(c *StructuredConfig) { c.Adapter.GenAI.BaseURL = "/v1" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing model", mutate: func(c *StructuredConfig) { c.Adapter.GenAI.Model = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "prod without api key", mutate: func(c *StructuredConfig) { c.Env = EnvProd }, wantErr: ErrInvalidAdapterConfigs},
		{name: "dev without api key", mutate: func(c *StructuredConfig) { c.Env = EnvDev }},
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

func TestDB_ResolveDriver(t *testing.T) {
	tests := []struct {
		db   DB
		want string
	}{
		{db: DB{DSN: "postgres://u:p@localhost/trips"}, want: DriverPostgres},
		{db: DB{DSN: "postgresql://localhost/trips"}, want: DriverPostgres},
		{db: DB{DSN: "host=localhost user=trips"}, want: DriverPostgres},
		{db: DB{DSN: "file:trips.db?_foreign_keys=on"}, want: DriverSQLite},
		{db: DB{DSN: ":memory:"}, want: DriverSQLite},
		{db: DB{DSN: "/var/lib/trips.sqlite"}, want: DriverSQLite},
		{db: DB{DSN: "file:trips.db", Driver: "POSTGRES"}, want: DriverPostgres},
		{db: DB{DSN: "mysql://localhost"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.db.DSN, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.ResolveDriver())
		})
	}
}
