// Package runner parses process configuration from flags and environment.
package runner

import (
	"errors"
	"flag"
	"os"
)

// Config holds everything the process needs to start. Flags win over
// environment variables; secrets come from the environment only.
type Config struct {
	Addr            string
	Dsn             string
	Database        string
	TokenSecret     string
	StripeSecretKey string
	Debug           bool
}

// ParseConfig reads flags and environment variables.
func ParseConfig() *Config {
	cfg := Config{}

	flag.StringVar(&cfg.Addr, "addr", envOr("ADDR", ":5000"), "address to listen on")
	flag.StringVar(&cfg.Dsn, "dsn", os.Getenv("MONGO_URI"), "mongodb connection string")
	flag.StringVar(&cfg.Database, "db", envOr("MONGO_DB", "bistroDB"), "mongodb database name")
	flag.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	flag.Parse()

	cfg.TokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")

	return &cfg
}

// Validate checks the required settings. The Stripe key is optional: without
// it the payment-intent route reports payments as not configured.
func (c *Config) Validate() error {
	if c.Dsn == "" {
		return errors.New("mongodb connection string is required (-dsn or MONGO_URI)")
	}

	if c.TokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
