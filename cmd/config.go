package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT"   envDefault:"8080"`
	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"shipping"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	// WorkflowsFile replaces the embedded workflow definitions when set.
	WorkflowsFile string `env:"WORKFLOWS_FILE"`

	KafkaBrokers      []string `env:"KAFKA_BROKERS"       envDefault:"localhost:9092" envSeparator:","`
	KafkaEventsTopic  string   `env:"KAFKA_EVENTS_TOPIC"  envDefault:"shipping.events"`
	OutboxRelayBatch  int      `env:"OUTBOX_RELAY_BATCH"  envDefault:"100"`
	OutboxRelayEnable bool     `env:"OUTBOX_RELAY_ENABLE" envDefault:"true"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads variables from the given .env files, if they exist, and
// parses the environment. Variables already set in the environment win.
func LoadConfig(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	parts := []string{
		"host=" + c.DBHost,
		"port=" + c.DBPort,
		"user=" + c.DBUser,
		"dbname=" + c.DBName,
		"sslmode=" + c.DBSslMode,
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+c.DBPassword)
	}
	return strings.Join(parts, " ")
}
