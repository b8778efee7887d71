// Package config loads server configuration from YAML with defaults
// for every knob, so an empty or missing file still boots a playable
// world.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the mud server.
type Server struct {
	// World data
	DataDir string `yaml:"data_dir"`

	// Game clock
	Clock ClockConfig `yaml:"clock"`

	// Shop economy
	Shops ShopConfig `yaml:"shops"`

	// Persistence
	Database DatabaseConfig `yaml:"database"`
}

// ClockConfig controls the in-game time flow and the autosave cadence.
type ClockConfig struct {
	StartHour       int32 `yaml:"start_hour"`
	TickSeconds     int   `yaml:"tick_seconds"`     // real seconds per game hour
	AutosaveSeconds int   `yaml:"autosave_seconds"` // real seconds between shop state saves
}

// ShopConfig holds the keeper bank smoothing bounds.
type ShopConfig struct {
	BankMin int32 `yaml:"bank_min"`
	BankMax int32 `yaml:"bank_max"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
// Disabled by default: the world then lives only in memory.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		DataDir: "data",
		Clock: ClockConfig{
			StartHour:       12,
			TickSeconds:     75,
			AutosaveSeconds: 300,
		},
		Shops: ShopConfig{
			BankMin: 5000,
			BankMax: 15000,
		},
		Database: DatabaseConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "mud",
			Password: "mud",
			DBName:  "mud",
			SSLMode: "disable",
		},
	}
}

// LoadServer loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
