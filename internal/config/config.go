// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSessionExpiry is the lifetime of a session token when JWT_EXPIRY is not set.
const DefaultSessionExpiry = 30 * 24 * time.Hour

var (
	ErrJWTSecretMissing = errors.New("JWT_SECRET must be set when running in release mode")
	ErrInvalidAPIURL    = errors.New("environment variable API_URL must be a valid URL")
)

// Config holds all settings of the backend.
type Config struct {
	Release   bool
	LogFormat string // "human" or "json", empty means derived from the mode

	APIURL *url.URL
	Port   string
	DBPath string

	CORSAllowOrigins []string
	EnablePprof      bool

	JWTSecret     []byte
	JWTIssuer     string
	SessionExpiry time.Duration

	FrontendURL string
	SMTP        SMTP
}

// SMTP configures outgoing mail. If Host is empty, mails are logged instead of sent.
type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled reports if mails are delivered via SMTP.
func (s SMTP) Enabled() bool {
	return s.Host != ""
}

// Load reads the configuration. ginMode is the mode gin runs in,
// which decides if insecure development defaults are acceptable.
func Load(ginMode string) (Config, error) {
	c := Config{
		Release:       ginMode == "release",
		LogFormat:     os.Getenv("LOG_FORMAT"),
		Port:          getenv("PORT", "8080"),
		DBPath:        getenv("DB_PATH", "data/cashtracker.db"),
		JWTIssuer:     getenv("JWT_ISSUER", "cashtracker"),
		SessionExpiry: DefaultSessionExpiry,
		FrontendURL:   strings.TrimSuffix(getenv("FRONTEND_URL", "http://localhost:3000"), "/"),
	}

	apiURL, err := url.Parse(getenv("API_URL", "http://localhost:8080/api"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidAPIURL, err)
	}
	c.APIURL = apiURL

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		c.CORSAllowOrigins = strings.Fields(origins)
	}

	if pprof, ok := os.LookupEnv("ENABLE_PPROF"); ok && pprof == "true" {
		c.EnablePprof = true
	}

	secret, ok := os.LookupEnv("JWT_SECRET")
	switch {
	case ok && secret != "":
		c.JWTSecret = []byte(secret)
	case c.Release:
		return Config{}, ErrJWTSecretMissing
	default:
		c.JWTSecret = []byte("development-secret-do-not-use-in-production")
	}

	if expiry, ok := os.LookupEnv("JWT_EXPIRY"); ok {
		d, err := time.ParseDuration(expiry)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("JWT_EXPIRY must be a positive duration, got %q", expiry)
		}
		c.SessionExpiry = d
	}

	c.SMTP = SMTP{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     587,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getenv("SMTP_FROM", "CashTracker <admin@cashtracker.com>"),
	}

	if port, ok := os.LookupEnv("SMTP_PORT"); ok {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("SMTP_PORT must be a number, got %q", port)
		}
		c.SMTP.Port = p
	}

	return c, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
