package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hanulsoft/sajunet/internal/entity"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	HTTPPort int    `mapstructure:"http_port"`
}

// DatabaseConfig points at the two read-only SQLite data files.
type DatabaseConfig struct {
	CalendarPath string `mapstructure:"calendar_path"`
	SeasonPath   string `mapstructure:"season_path"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig carries the default chart computation options; requests may
// override any of them.
type EngineConfig struct {
	PivotMinutes      int    `mapstructure:"pivot_minutes"`
	TZAdjustMinutes   int    `mapstructure:"tz_adjust_minutes"`
	TermAdjustMinutes int    `mapstructure:"term_adjust_minutes"`
	Rounding          string `mapstructure:"rounding"`
}

// RoundingMode returns the configured rounding as a domain value.
func (c EngineConfig) RoundingMode() entity.RoundingMode {
	return entity.ParseRoundingMode(c.Rounding)
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.http_port", 8080)

	// Database defaults
	viper.SetDefault("database.calendar_path", "data/manseryeok.db")
	viper.SetDefault("database.season_path", "data/season.db")

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	// Engine defaults: half-hour slot pivot, Korean longitude correction,
	// no term adjustment, floor rounding.
	viper.SetDefault("engine.pivot_minutes", 30)
	viper.SetDefault("engine.tz_adjust_minutes", -30)
	viper.SetDefault("engine.term_adjust_minutes", 0)
	viper.SetDefault("engine.rounding", "floor")
}
