package config // package config loads application configuration from environment variables

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration values. It is built once at
// startup by Load and handed to the components that need it; nothing below
// cmd/server reads the environment directly.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"dev"`     // application environment (dev/test/prod)
	Port      string `env:"APP_PORT" envDefault:"8080"`   // HTTP port to listen on
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // logrus level name
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text | json

	DB        DBConfig
	Auth      AuthConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	AMQP      AMQPConfig
}

// DBConfig describes the relational store. Driver selects the dialect;
// DSN, when set, is used verbatim (for sqlite it is the database path).
type DBConfig struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"mysql"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT"`
	User            string        `env:"DB_USER"`
	Pass            string        `env:"DB_PASS"`
	Name            string        `env:"DB_NAME" envDefault:"housekeeping"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	DSN             string        `env:"DB_DSN"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"25"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// AuthConfig holds the single staff credential pair that guards worksheet
// creation, plus the JWT settings for tokens exchanged against it.
type AuthConfig struct {
	User         string `env:"BASIC_AUTH_USER" envDefault:"admin"`
	Password     string `env:"BASIC_AUTH_PASSWORD"`
	PasswordHash string `env:"BASIC_AUTH_PASSWORD_HASH"` // bcrypt hash; wins over Password
	JWTSecret    string `env:"JWT_SECRET"`
	AccessTTLMin int    `env:"ACCESS_TOKEN_TTL_MIN" envDefault:"720"`
	BcryptCost   int    `env:"BCRYPT_COST" envDefault:"10"`
}

// AMQPConfig enables publishing of cleaning.saved events. An empty URL
// disables publishing.
type AMQPConfig struct {
	URL   string `env:"AMQP_URL"`
	Queue string `env:"AMQP_QUEUE" envDefault:"cleaning.saved"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.RateLimit.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first configuration problem that would stop the
// server from working.
func (c Config) Validate() error {
	embedded := false
	switch strings.ToLower(strings.TrimSpace(c.DB.Driver)) {
	case "mysql", "postgres", "postgresql", "pq":
	case "sqlite", "sqlite3":
		embedded = true
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if !embedded && c.DB.DSN == "" && c.DB.User == "" {
		return fmt.Errorf("missing required env var: DB_USER")
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return fmt.Errorf("missing required env var: BASIC_AUTH_PASSWORD")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("missing required env var: JWT_SECRET")
	}
	if c.Auth.AccessTTLMin <= 0 {
		return fmt.Errorf("invalid int for ACCESS_TOKEN_TTL_MIN: %d", c.Auth.AccessTTLMin)
	}
	return nil
}
