package config

import (
	"encoding/json"
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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultStoreTimeout, cfg.App.StoreTimeout)
	assert.Equal(t, defaultLookupTimeout, cfg.Adapter.LookupTimeout)
	assert.Equal(t, "memory", cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.SessionIdleTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "from-json"},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestLoadStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("APP_STORE_TIMEOUT", "2s")

	cfg, err := loadStructuredConfig([]string{"-token-sign-key", "flag-key"})

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Second, cfg.App.StoreTimeout)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
}

// ── validate ──────────────────────────────────────────────────────────────────

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenDuration: time.Hour,
			StoreTimeout:  time.Second,
		},
		Storage: Storage{DB: DB{DSN: "memory"}},
		Adapter: Adapter{LookupTimeout: time.Second},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative idle timeout", mutate: func(c *StructuredConfig) { c.App.SessionIdleTimeout = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = " " }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero lookup timeout", mutate: func(c *StructuredConfig) { c.Adapter.LookupTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{
			name: "idle timeout without sweep interval",
			mutate: func(c *StructuredConfig) {
				c.App.SessionIdleTimeout = time.Minute
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
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

func TestGetClientConfig(t *testing.T) {
	cfg, err := getClientConfig([]string{"-server-url", "http://10.0.0.5:8080", "-terminal", "kiosk-7"})

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8080", cfg.Adapter.ServerURL)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "kiosk-7", cfg.App.TerminalName)
}
