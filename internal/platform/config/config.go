package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config se arma desde variables de entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DatasetSource: path a CSV, file://, http(s)://, postgres:// o sqlite://.
	DatasetSource string `env:"DATASET_SOURCE" envDefault:"data/animal-shelter-data.csv"`
	// DatasetTable se usa con fuentes postgres/sqlite.
	DatasetTable string `env:"DATASET_TABLE" envDefault:"animal_outcomes"`
	// ViewsFile es opcional: YAML con vistas custom.
	ViewsFile string `env:"VIEWS_FILE"`

	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"shelter-outcomes"`
}

// Load parsea el entorno del proceso.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, c.Validate()
}

// LoadFrom parsea desde un mapa (tests / CLI).
func LoadFrom(vars map[string]string) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatasetSource) == "" {
		return fmt.Errorf("DATASET_SOURCE required")
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}
	return nil
}

// Addr devuelve la dirección de escucha (":PORT").
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
