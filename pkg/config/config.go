package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate oracle policy values. Spread is added on top of the oracle rate to
	// approximate bank sell pricing; Fallback is stored when the oracle is
	// unreachable so order creation never fails on a rate lookup.
	RateAPIBaseURL    string
	RateAPIKey        string
	RateOracleTimeout time.Duration
	RateSpread        decimal.Decimal
	RateFallback      decimal.Decimal

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_API_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("RATE_API_KEY", "")
	viper.SetDefault("RATE_ORACLE_TIMEOUT", "5s")
	viper.SetDefault("RATE_SPREAD", "0.18")
	viper.SetDefault("RATE_FALLBACK", "24.60")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.RateAPIBaseURL = viper.GetString("RATE_API_URL")
	cfg.RateAPIKey = viper.GetString("RATE_API_KEY")
	if cfg.RateAPIKey == "" {
		log.Println("Warning: RATE_API_KEY not set; rate quotes will use the fallback rate.")
	}

	timeoutStr := viper.GetString("RATE_ORACLE_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for RATE_ORACLE_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RateOracleTimeout = timeout

	cfg.RateSpread = mustDecimal("RATE_SPREAD", "0.18")
	cfg.RateFallback = mustDecimal("RATE_FALLBACK", "24.60")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")

	return cfg, nil
}

// mustDecimal reads a decimal config value, falling back to the given
// default when the environment value does not parse.
func mustDecimal(key, fallback string) decimal.Decimal {
	raw := viper.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}
