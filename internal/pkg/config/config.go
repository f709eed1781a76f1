package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// DB credentials are only checked when STORE_DRIVER=postgres.
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

var ErrMissingDBSettings = errors.New("DB_USER, DB_PASSWORD and DB_NAME are required for the postgres store")

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Kafka  KafkaConfig
	Outbox OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type KafkaConfig struct {
	Enabled      bool          `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"car-rental.reservations"`
	RequiredAcks int           `envconfig:"KAFKA_REQUIRED_ACKS" default:"-1"`
	Compression  string        `envconfig:"KAFKA_COMPRESSION" default:"snappy"`
	MaxAttempts  int           `envconfig:"KAFKA_MAX_ATTEMPTS" default:"5"`
	BatchTimeout time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"10s"`
}

type OutboxConfig struct {
	Enabled      bool          `envconfig:"OUTBOX_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts  int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
	RetryBackoff time.Duration `envconfig:"OUTBOX_RETRY_BACKOFF" default:"5s"`
	// ClaimLease is how long a claimed job may stay in processing before another poll takes it back.
	ClaimLease time.Duration `envconfig:"OUTBOX_CLAIM_LEASE" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.Password == "" || c.DB.DBName == "" {
			return ErrMissingDBSettings
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	return nil
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 50,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e",
			Duration: "1h",
		},
		Outbox: OutboxConfig{
			Enabled:      false,
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
			MaxAttempts:  3,
			RetryBackoff: 100 * time.Millisecond,
			ClaimLease:   time.Second,
		},
	}
}
