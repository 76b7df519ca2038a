package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/orderbook/internal/store"
)

// isolate points the config lookup at an empty temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvSource, "")
	t.Setenv(EnvThemeFile, "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, store.DefaultSectionNames(), cfg.Sections)
	assert.Equal(t, store.DefaultCurrency, cfg.Currency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultTheme(), cfg.Theme)
	assert.Empty(t, cfg.Source)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "orderbook", "config.yaml"), `source: /data/orders.xlsx
sections:
  items: Goods
currency: "$"
placeholders:
  client: "?"
log:
  level: debug
theme:
  accent: "#00FF00"
`)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "/data/orders.xlsx", cfg.Source)
	assert.Equal(t, "Goods", cfg.Sections.Items)
	assert.Equal(t, "Клиенты", cfg.Sections.Organizations, "missing keys get defaults")
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, "?", cfg.Placeholders.Client)
	assert.Empty(t, cfg.Placeholders.Item)
	assert.Equal(t, "#00FF00", cfg.Theme.Accent)
	assert.Equal(t, DefaultTheme().Title, cfg.Theme.Title)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "currency: EUR\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "sections: [oops"},
		{"invalid log level", "log:\n  level: chatty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, path, tt.content)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigSourceFromEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "orderbook", "config.yaml"), "source: from-file.xlsx\n")
	t.Setenv(EnvSource, "from-env.db")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Source)
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)
	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	writeFile(t, themeFile, "theme:\n  preset: monochrome\n  accent: \"#FF0000\"\n")
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "#FF0000", cfg.Theme.Accent)
	assert.Equal(t, MonochromeTheme().Subtle, cfg.Theme.Subtle, "rest comes from the preset")
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	cfg.Source = "orders.db"

	require.NoError(t, cfg.Save(""))

	_, err := os.Stat(filepath.Join(dir, "orderbook", "config.yaml"))
	require.NoError(t, err)

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestStoreOptions(t *testing.T) {
	cfg := Default()
	cfg.Currency = "$"
	logger := slog.New(slog.DiscardHandler)

	opts := cfg.StoreOptions(logger)

	assert.Equal(t, "$", opts.Currency)
	assert.Equal(t, cfg.Sections, opts.Sections)
	assert.Same(t, logger, opts.Logger)
	assert.Nil(t, opts.Open)
}
