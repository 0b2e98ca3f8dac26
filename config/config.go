package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Stripe configuration.
	StripeSecretKey        string        `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret    string        `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	StripeWebhookTolerance time.Duration `mapstructure:"STRIPE_WEBHOOK_TOLERANCE"`
	DefaultCurrency        string        `mapstructure:"DEFAULT_CURRENCY"`
	ProcessedEventTTL      time.Duration `mapstructure:"PROCESSED_EVENT_TTL"`
}

// Load reads config.yaml (if any) and the environment into a Config. A .env
// file in the working directory is folded into the environment first; it
// never overrides variables that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "hotelier")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	v.SetDefault("STRIPE_WEBHOOK_TOLERANCE", 5*time.Minute)
	v.SetDefault("DEFAULT_CURRENCY", "usd")
	v.SetDefault("PROCESSED_EVENT_TTL", 72*time.Hour)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that cannot run safely.
func (c *Config) Validate() error {
	// An empty HMAC key would accept tokens and signatures from anyone.
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.StripeWebhookSecret == "" {
		return errors.New("STRIPE_WEBHOOK_SECRET is required")
	}
	if c.IsProduction() && c.StripeSecretKey == "" {
		return errors.New("STRIPE_SECRET_KEY is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// StripeConfig is the slice of configuration the payment gateway and the
// webhook listener need.
type StripeConfig struct {
	SecretKey         string
	WebhookSecret     string
	WebhookTolerance  time.Duration
	DefaultCurrency   string
	ProcessedEventTTL time.Duration
}

func (c *Config) Stripe() StripeConfig {
	return StripeConfig{
		SecretKey:         c.StripeSecretKey,
		WebhookSecret:     c.StripeWebhookSecret,
		WebhookTolerance:  c.StripeWebhookTolerance,
		DefaultCurrency:   c.DefaultCurrency,
		ProcessedEventTTL: c.ProcessedEventTTL,
	}
}
