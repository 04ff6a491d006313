// Package config holds the process configuration.
package config

import (
	"time"

	"github.com/Styt0/airwave-aggregator/internal/model"
)

// Version defines the version of the binary, set at build time.
var Version string

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel int `mapstructure:"log_level"`
	} `mapstructure:"general"`

	Storage struct {
		Backend string `mapstructure:"backend"`

		SQLite struct {
			Path string `mapstructure:"path"`
		} `mapstructure:"sqlite"`

		Postgres struct {
			DSN string `mapstructure:"dsn"`
		} `mapstructure:"postgres"`
	} `mapstructure:"storage"`

	Catalog struct {
		RefreshInterval time.Duration `mapstructure:"refresh_interval"`

		Location struct {
			Timeout   time.Duration `mapstructure:"timeout"`
			Latitude  float64       `mapstructure:"latitude"`
			Longitude float64       `mapstructure:"longitude"`
			Set       bool          `mapstructure:"set"`
		} `mapstructure:"location"`
	} `mapstructure:"catalog"`

	Server struct {
		Bind string `mapstructure:"bind"`
	} `mapstructure:"server"`
}

// StaticCoordinates returns the configured provider seed, if any.
func (c Config) StaticCoordinates() (model.Coordinates, bool) {
	loc := c.Catalog.Location
	return model.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}, loc.Set
}

// C holds the global configuration.
var C Config
