package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr       string
	StorageDriver  string
	DatabaseURL    string
	RedisAddr      string
	CacheTTL       time.Duration
	CartTTL        time.Duration
	APIBaseURL     string
	CatalogPage    int
	JWTSecret      string
	TokenTTL       time.Duration
	RabbitMQURL    string
	RabbitExchange string
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigins []string
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverAPI      = "api"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cart.ttl", "168h")
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("catalog.page_size", 6)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "15m")
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "webstore.orders")
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads defaults, an optional config file and WEBSTORE_ prefixed
// environment variables, in increasing priority. An empty path looks for
// config.yaml in the working directory.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("WEBSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		HTTPAddr:       v.GetString("http.addr"),
		StorageDriver:  v.GetString("storage.driver"),
		DatabaseURL:    v.GetString("database.url"),
		RedisAddr:      v.GetString("redis.addr"),
		CacheTTL:       v.GetDuration("cache.ttl"),
		CartTTL:        v.GetDuration("cart.ttl"),
		APIBaseURL:     v.GetString("api.base_url"),
		CatalogPage:    v.GetInt("catalog.page_size"),
		JWTSecret:      v.GetString("auth.jwt_secret"),
		TokenTTL:       v.GetDuration("auth.token_ttl"),
		RabbitMQURL:    v.GetString("rabbitmq.url"),
		RabbitExchange: v.GetString("rabbitmq.exchange"),
		RateLimitRPS:   v.GetFloat64("rate_limit.rps"),
		RateLimitBurst: v.GetInt("rate_limit.burst"),
		AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverAPI:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("database.url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.StorageDriver)
	}
	if c.CatalogPage < 0 {
		return errors.New("catalog.page_size cannot be negative")
	}
	return nil
}
