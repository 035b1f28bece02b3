package config

import (
	"strconv"
	"time"
)

// Backends selectable through PETSTORE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendStub     = "stub"
)

type HTTPConfig struct {
	Host           string        `env:"HOST" envDefault:"0.0.0.0"`
	Port           int           `env:"PORT" envDefault:"3000" validate:"min=1,max=65535"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
}

type PostgresConfig struct {
	// Either DSN directly (PG_DSN or DATABASE_URL),
	// or components to build it if DSN is empty.
	DSN      string `env:"DSN"`
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	DBName   string `env:"DBNAME"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
	AcquireTimeout  time.Duration `env:"ACQUIRE_TIMEOUT" envDefault:"5s"`
	AutoMigrate     bool          `env:"AUTO_MIGRATE" envDefault:"false"`
}

func (c PostgresConfig) EffectiveDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "postgres://" + c.User + ":" + c.Password +
		"@" + c.Host + ":" + strconv.Itoa(c.Port) +
		"/" + c.DBName + "?sslmode=" + c.SSLMode
}

type RedisConfig struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Addr     string        `env:"ADDR" envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"5m"`
}

type KafkaConfig struct {
	Enabled     bool     `env:"ENABLED" envDefault:"false"`
	Brokers     []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	ClientID    string   `env:"CLIENT_ID" envDefault:"petstore"`
	GroupID     string   `env:"GROUP_ID" envDefault:"petstore"`
	TopicPrefix string   `env:"TOPIC_PREFIX"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"petstore-api"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`
	Backend     string `env:"PETSTORE_BACKEND" envDefault:"postgres" validate:"oneof=postgres memory stub"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// DatabaseURL is honoured when PG_DSN is not set.
	DatabaseURL string `env:"DATABASE_URL"`

	HTTP          HTTPConfig          `envPrefix:"HTTP_"`
	Postgres      PostgresConfig      `envPrefix:"PG_"`
	Redis         RedisConfig         `envPrefix:"REDIS_"`
	Kafka         KafkaConfig         `envPrefix:"KAFKA_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
}
