package configs

import (
	"os"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	DBDriver  string `env:"DB_DRIVER"`
	DBSource  string `env:"DB_SOURCE"`
	Port      string `env:"PORT"`
	JWTSecret string `env:"JWT_SECRET"`
	JWTTTLRaw string `env:"JWT_TTL"`
	JWTTTL    time.Duration

	LogLevel       string `env:"LOG_LEVEL"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL"`
	GRPCHealthPort string `env:"GRPC_HEALTH_PORT"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return nil, errors.Wrapf(err, "load env file %s", p)
		}
	}

	cfg := &Config{}
	if _, err := env.UnmarshalFromEnviron(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal environment")
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	c.DBDriver = fallback(c.DBDriver, "sqlite")
	c.DBSource = fallback(c.DBSource, "storefront.db")
	c.Port = fallback(c.Port, "8000")
	c.JWTSecret = fallback(c.JWTSecret, "changeme")
	c.LogLevel = fallback(c.LogLevel, "info")

	ttl, err := time.ParseDuration(fallback(c.JWTTTLRaw, "24h"))
	if err != nil {
		return errors.Wrapf(err, "invalid JWT_TTL %q", c.JWTTTLRaw)
	}
	c.JWTTTL = ttl
	return nil
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
