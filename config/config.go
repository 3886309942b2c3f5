package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	DatabaseName      string        `mapstructure:"DATABASE_NAME"`
	Env               string        `mapstructure:"ENV"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTTTL            time.Duration `mapstructure:"JWT_TTL"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Salon booking rules.
	SalonTimezone       string        `mapstructure:"SALON_TIMEZONE"`
	SlotIntervalMinutes int           `mapstructure:"SLOT_INTERVAL_MINUTES"`
	OnlineDiscountRate  float64       `mapstructure:"ONLINE_DISCOUNT_RATE"`
	CartTTL             time.Duration `mapstructure:"CART_TTL"`
	ReminderLead        time.Duration `mapstructure:"REMINDER_LEAD"`
	PaymentWindow       time.Duration `mapstructure:"PAYMENT_WINDOW"`
	CheckoutLockTTL     time.Duration `mapstructure:"CHECKOUT_LOCK_TTL"`

	// Stripe.
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	Currency        string `mapstructure:"CURRENCY"`

	// SendGrid.
	SendGridAPIKey    string `mapstructure:"SENDGRID_API_KEY"`
	SendGridFromEmail string `mapstructure:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string `mapstructure:"SENDGRID_FROM_NAME"`
}

// Load reads configuration from an optional .env file, config.yaml and the environment.
func Load() (*Config, error) {
	// .env only seeds the process environment; real env vars win.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, skipping")
	}

	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "salonbook")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", 7*24*time.Hour)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_AUTH_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("SALON_TIMEZONE", "Europe/Rome")
	v.SetDefault("SLOT_INTERVAL_MINUTES", 15)
	v.SetDefault("ONLINE_DISCOUNT_RATE", 0.05)
	v.SetDefault("CART_TTL", 24*time.Hour)
	v.SetDefault("REMINDER_LEAD", 24*time.Hour)
	v.SetDefault("PAYMENT_WINDOW", 30*time.Minute)
	v.SetDefault("CHECKOUT_LOCK_TTL", 30*time.Second)
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("CURRENCY", "eur")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("SENDGRID_FROM_EMAIL", "")
	v.SetDefault("SENDGRID_FROM_NAME", "Hair Style")
}

// Validate checks values that would otherwise fail later at request time.
func (c *Config) Validate() error {
	if c.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("SLOT_INTERVAL_MINUTES must be positive, got %d", c.SlotIntervalMinutes)
	}
	if c.OnlineDiscountRate < 0 || c.OnlineDiscountRate >= 1 {
		return fmt.Errorf("ONLINE_DISCOUNT_RATE must be in [0, 1), got %v", c.OnlineDiscountRate)
	}
	if _, err := time.LoadLocation(c.SalonTimezone); err != nil {
		return fmt.Errorf("invalid SALON_TIMEZONE %q: %w", c.SalonTimezone, err)
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

// Location returns the salon's time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.SalonTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
