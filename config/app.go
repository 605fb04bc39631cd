// app.go: assistant and server settings.
//
// Settings are stored in ~/.paibi/config.json. Environment variables
// override the file (PAIBI_LANG, PAIBI_QUERY_LATENCY_MS,
// PAIBI_TABLE_LATENCY_MS, PAIBI_ADDR and the libpq PG* variables).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
)

// AppConfig is the top-level config file structure (~/.paibi/config.json).
type AppConfig struct {
	Language   string             `json:"language"` // "en" or "es"
	Assistant  AssistantConfig    `json:"assistant"`
	Simulation SimulationConfig   `json:"simulation"`
	Forex      map[string]float64 `json:"forex"`
	Server     ServerConfig       `json:"server"`
	Postgres   Config             `json:"postgres"`
}

// AssistantConfig selects the answering backend.
type AssistantConfig struct {
	Backend string `json:"backend"` // "simulated"
}

// SimulationConfig sets the artificial latencies of the simulated backend.
type SimulationConfig struct {
	QueryLatencyMS int `json:"query_latency_ms"`
	TableLatencyMS int `json:"table_latency_ms"`
}

// QueryLatency returns the query delay.
func (s SimulationConfig) QueryLatency() time.Duration {
	return time.Duration(s.QueryLatencyMS) * time.Millisecond
}

// TableLatency returns the table lookup delay.
func (s SimulationConfig) TableLatency() time.Duration {
	return time.Duration(s.TableLatencyMS) * time.Millisecond
}

// ServerConfig holds `paibi serve` settings.
type ServerConfig struct {
	Addr string `json:"addr"`
}

// SupportedBackends lists the backend names accepted in config.
var SupportedBackends = []string{"simulated"}

// DefaultAppConfig returns sensible defaults.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Language:  "en",
		Assistant: AssistantConfig{Backend: "simulated"},
		Simulation: SimulationConfig{
			QueryLatencyMS: 1200,
			TableLatencyMS: 300,
		},
		Forex:    map[string]float64{"EUR": 0.92, "MXN": 17.05, "GBP": 0.79},
		Server:   ServerConfig{Addr: ":8080"},
		Postgres: DefaultConfig(),
	}
}

// AppConfigPath returns ~/.paibi/config.json.
func AppConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadAppConfig reads ~/.paibi/config.json; returns defaults if not found.
func LoadAppConfig() (*AppConfig, error) {
	path, err := AppConfigPath()
	if err != nil {
		cfg := DefaultAppConfig()
		applyEnv(cfg, os.Getenv)
		return cfg, nil
	}
	return LoadAppConfigFrom(path, os.Getenv)
}

// LoadAppConfigFrom reads the config at path, then applies overrides
// from getenv.
func LoadAppConfigFrom(path string, getenv func(string) string) (*AppConfig, error) {
	cfg := DefaultAppConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg, getenv)
	return cfg, nil
}

// applyEnv lets environment variables override file config.
func applyEnv(cfg *AppConfig, getenv func(string) string) {
	if v := getenv("PAIBI_LANG"); v != "" {
		cfg.Language = v
	}
	if v, err := strconv.Atoi(getenv("PAIBI_QUERY_LATENCY_MS")); err == nil {
		cfg.Simulation.QueryLatencyMS = v
	}
	if v, err := strconv.Atoi(getenv("PAIBI_TABLE_LATENCY_MS")); err == nil {
		cfg.Simulation.TableLatencyMS = v
	}
	if v := getenv("PAIBI_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv("PGHOST"); v != "" {
		cfg.Postgres.Host = v
	}
	if v, err := strconv.Atoi(getenv("PGPORT")); err == nil {
		cfg.Postgres.Port = v
	}
	if v := getenv("PGUSER"); v != "" {
		cfg.Postgres.User = v
	}
	if v := getenv("PGPASSWORD"); v != "" {
		cfg.Postgres.Password = v
	}
	if v := getenv("PGDATABASE"); v != "" {
		cfg.Postgres.Database = v
	}
}

// Validate reports every problem in the config at once.
func (c *AppConfig) Validate() error {
	var result *multierror.Error

	switch c.Language {
	case "en", "es":
	default:
		result = multierror.Append(result, fmt.Errorf("language %q: must be \"en\" or \"es\"", c.Language))
	}

	backendOK := false
	for _, b := range SupportedBackends {
		if c.Assistant.Backend == b || c.Assistant.Backend == "" {
			backendOK = true
		}
	}
	if !backendOK {
		result = multierror.Append(result, fmt.Errorf("assistant.backend %q: supported: %v", c.Assistant.Backend, SupportedBackends))
	}

	if c.Simulation.QueryLatencyMS < 0 {
		result = multierror.Append(result, fmt.Errorf("simulation.query_latency_ms must not be negative"))
	}
	if c.Simulation.TableLatencyMS < 0 {
		result = multierror.Append(result, fmt.Errorf("simulation.table_latency_ms must not be negative"))
	}
	for code, rate := range c.Forex {
		if rate <= 0 {
			result = multierror.Append(result, fmt.Errorf("forex.%s must be positive", code))
		}
	}
	if c.Server.Addr == "" {
		result = multierror.Append(result, fmt.Errorf("server.addr must not be empty"))
	}
	if c.Postgres.Port <= 0 || c.Postgres.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("postgres.port %d out of range", c.Postgres.Port))
	}

	return result.ErrorOrNil()
}

// SaveAppConfig writes the config to ~/.paibi/config.json.
func SaveAppConfig(cfg *AppConfig) error {
	path, err := AppConfigPath()
	if err != nil {
		return err
	}
	return SaveAppConfigTo(path, cfg)
}

// SaveAppConfigTo writes the config to path.
func SaveAppConfigTo(path string, cfg *AppConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
