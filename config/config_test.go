package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestLoadAppConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadAppConfigFrom(filepath.Join(t.TempDir(), "config.json"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, DefaultAppConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"language": "es",
		"simulation": {"query_latency_ms": 10},
		"forex": {"EUR": 0.95}
	}`), 0600))

	env := map[string]string{
		"PAIBI_TABLE_LATENCY_MS": "5",
		"PAIBI_ADDR":             "127.0.0.1:9000",
		"PGHOST":                 "db.internal",
		"PGPORT":                 "6543",
	}
	cfg, err := LoadAppConfigFrom(path, func(k string) string { return env[k] })
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, 10, cfg.Simulation.QueryLatencyMS)
	assert.Equal(t, 5, cfg.Simulation.TableLatencyMS)
	assert.Equal(t, 0.95, cfg.Forex["EUR"])
	assert.Equal(t, 17.05, cfg.Forex["MXN"], "unspecified rates keep their defaults")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 6543, cfg.Postgres.Port)
}

func TestLoadAppConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0600))
	_, err := LoadAppConfigFrom(path, noEnv)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Language = "fr"
	cfg.Assistant.Backend = "gpt"
	cfg.Simulation.QueryLatencyMS = -1
	cfg.Forex["EUR"] = 0
	cfg.Server.Addr = ""

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultAppConfig()
	cfg.Language = "es"
	require.NoError(t, SaveAppConfigTo(path, cfg))

	back, err := LoadAppConfigFrom(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestDSN(t *testing.T) {
	c := DefaultConfig()
	c.Password = "secret"
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=paibi sslmode=disable", c.DSN())

	c.Password = ""
	assert.Equal(t, "host=localhost port=5432 user=postgres dbname=paibi sslmode=disable", c.DSN())
}

func TestPromptStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")

	store, err := NewPromptStoreAt(path)
	require.NoError(t, err)
	assert.Len(t, store.Prompts, len(DefaultPrompts()), "missing file seeds the stock library")

	p, ok := store.Get("sales-map")
	require.True(t, ok)
	assert.Equal(t, "Mapa de Ventas", p.Title("es"))
	assert.Equal(t, "Sales Map", p.Title("en"))

	store.Add(Prompt{Name: "weekly", Text: "total sales this week"})
	store.Add(Prompt{Name: "weekly", Text: "total revenue this week"})
	assert.True(t, store.Delete("sales-map"))
	assert.False(t, store.Delete("sales-map"))
	require.NoError(t, store.Save())

	reloaded, err := NewPromptStoreAt(path)
	require.NoError(t, err)
	assert.Len(t, reloaded.Prompts, len(DefaultPrompts()))
	w, ok := reloaded.Get("weekly")
	require.True(t, ok)
	assert.Equal(t, "total revenue this week", w.Text)
	assert.Equal(t, "weekly", w.Title("es"), "untitled prompts fall back to their name")
}
