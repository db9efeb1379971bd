package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"Clothes"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	DatabaseURL string   `env:"DATABASE_URL"`
	Postgres    Postgres `envPrefix:"POSTGRES_"`
	RedisURL    string   `env:"REDIS_URL"`

	// JWTSecret length is checked by auth.NewTokens at startup.
	JWTSecret  string `env:"JWT_SECRET,notEmpty"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
	// PhoneRegion is the default region used to parse phone numbers without a country prefix.
	PhoneRegion string `env:"PHONE_REGION" envDefault:"US"`

	StoreTimeout    time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	ShutdownPeriod  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	IdempotencyTTL  time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"10m"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"1m"`
	RunMigrations   bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// Postgres holds the discrete connection settings used when DATABASE_URL is not set.
type Postgres struct {
	Host     string `env:"HOST"`
	DB       string `env:"DB"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Port     string `env:"PORT" envDefault:"5432"`
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.DatabaseURL == "" && cfg.Postgres.Host != "" {
		cfg.DatabaseURL = cfg.Postgres.URL()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks invariants that cannot be expressed with struct tags.
func (c Config) Validate() error {
	if c.DatabaseURL == "" && !c.IsDev() {
		return fmt.Errorf("DATABASE_URL or POSTGRES_HOST must be set when APP_ENV=%s", c.AppEnv)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	return nil
}

// URL assembles a postgres connection string from the discrete settings.
func (p Postgres) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + p.DB,
	}
	return u.String()
}

// IsDev reports whether the app runs in a local environment where in-memory
// backends are acceptable.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}
