package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrIncompleteR2Config = errors.New("R2 storage is partially configured")

// Config holds every setting the server reads from the environment.
type Config struct {
	DatabaseURL     string
	JWTSecretKey    string
	ServerPort      int
	RefreshInterval time.Duration
	LogLevel        slog.Level
	// R2 is nil when snapshot storage is not configured.
	R2 *R2Config
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

// Load reads the configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	interval := 5 * time.Second
	if raw := os.Getenv("REFRESH_INTERVAL"); raw != "" {
		interval, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL environment variable: %w", err)
		}
		if interval <= 0 {
			return nil, fmt.Errorf("REFRESH_INTERVAL must be positive, got %s", interval)
		}
	}

	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
		}
	}

	r2, err := r2FromEnv()
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseURL:     dbURL,
		JWTSecretKey:    jwtKey,
		ServerPort:      port,
		RefreshInterval: interval,
		LogLevel:        level,
		R2:              r2,
	}, nil
}

func r2FromEnv() (*R2Config, error) {
	cfg := &R2Config{}
	fields := map[string]*string{
		"R2_ACCOUNT_ID":        &cfg.AccountID,
		"R2_ACCESS_KEY_ID":     &cfg.AccessKeyID,
		"R2_SECRET_ACCESS_KEY": &cfg.SecretAccessKey,
		"R2_BUCKET_NAME":       &cfg.BucketName,
		"R2_PUBLIC_BASE_URL":   &cfg.PublicBaseURL,
	}

	var missing []string
	for name, dst := range fields {
		*dst = strings.TrimSpace(os.Getenv(name))
		if *dst == "" {
			missing = append(missing, name)
		}
	}
	switch len(missing) {
	case 0:
		return cfg, nil
	case len(fields):
		return nil, nil
	default:
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: missing %s", ErrIncompleteR2Config, strings.Join(missing, ", "))
	}
}
