package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"site_grader/internal/domain/adaptors"

	"github.com/joho/godotenv"
)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultUserAgent    = "Mozilla/5.0 (compatible; SiteGraderBot/1.0)"
)

type AppConfig struct {
	LogLevel     string
	DebugMode    bool
	MetricsHost  string
	FetchTimeout time.Duration
	UserAgent    string
}

func NewAppConfig() (*AppConfig, error) {
	err := godotenv.Load(`config.env`)
	if err != nil {
		return nil, err
	}

	cfg := AppConfig{}
	cfg.LogLevel = os.Getenv("APP_LOG_LEVEL")
	cfg.DebugMode = os.Getenv("APP_ENABLE_DEBUG") == "true"
	cfg.MetricsHost = os.Getenv("HTTP_APP_METRICS_HOST")

	cfg.FetchTimeout = defaultFetchTimeout
	if raw := os.Getenv("GRADER_FETCH_TIMEOUT_DURATION"); raw != "" {
		duration, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf(`GRADER_FETCH_TIMEOUT_DURATION: invalid duration format: %w`, err)
		}
		cfg.FetchTimeout = duration
	}

	cfg.UserAgent = os.Getenv("GRADER_USER_AGENT")
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	err = validate(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *AppConfig) error {
	var errMsg []string
	if cfg.LogLevel == "" {
		errMsg = append(errMsg, `log level is empty`)
	} else if !adaptors.ValidLogLevel(cfg.LogLevel) {
		errMsg = append(errMsg, fmt.Sprintf(`unknown log level %q`, cfg.LogLevel))
	}

	if cfg.MetricsHost == "" {
		errMsg = append(errMsg, `metrics host is empty`)
	}

	if cfg.FetchTimeout <= 0 {
		errMsg = append(errMsg, `fetch timeout must be positive`)
	}

	if len(errMsg) != 0 {
		return fmt.Errorf(`validation failed: %s`, strings.Join(errMsg, "\n"))
	}
	return nil
}
