package main

import (
	"bufio"
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"compound-interest/service"
)

type Config struct {
	Addr            string
	RedisAddr       string
	RedisPrefix     string
	RateLimit       int
	ThemeRateLimit  int
	RateWindow      time.Duration
	HistoryLimit    int
	CurrencyPrefix  string
	AnthropicAPIKey string
}

func defaultConfig() Config {
	return Config{
		Addr:           ":8080",
		RedisPrefix:    "compound-interest:",
		RateLimit:      5,
		ThemeRateLimit: 60,
		RateWindow:     time.Minute,
		HistoryLimit:   1000,
		CurrencyPrefix: service.DefaultCurrencyPrefix,
	}
}

// loadConfig reads the environment on top of the defaults. Malformed
// numbers are logged and the default is kept.
func loadConfig(getenv func(string) string) Config {
	cfg := defaultConfig()

	if v := getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.RedisAddr = getenv("REDIS_ADDR")
	if v := getenv("REDIS_PREFIX"); v != "" {
		cfg.RedisPrefix = v
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		if n, err := cast.ToIntE(v); err == nil && n > 0 {
			cfg.RateLimit = n
		} else {
			log.Printf("Warning: ignoring RATE_LIMIT=%q", v)
		}
	}
	if v := getenv("THEME_RATE_LIMIT"); v != "" {
		if n, err := cast.ToIntE(v); err == nil && n > 0 {
			cfg.ThemeRateLimit = n
		} else {
			log.Printf("Warning: ignoring THEME_RATE_LIMIT=%q", v)
		}
	}
	if v := getenv("RATE_WINDOW"); v != "" {
		if d, err := cast.ToDurationE(v); err == nil && d > 0 {
			cfg.RateWindow = d
		} else {
			log.Printf("Warning: ignoring RATE_WINDOW=%q", v)
		}
	}
	if v := getenv("HISTORY_LIMIT"); v != "" {
		if n, err := cast.ToIntE(v); err == nil && n >= 0 {
			cfg.HistoryLimit = n
		} else {
			log.Printf("Warning: ignoring HISTORY_LIMIT=%q", v)
		}
	}
	if v := getenv("CURRENCY_PREFIX"); v != "" {
		cfg.CurrencyPrefix = v
	}
	cfg.AnthropicAPIKey = getenv("ANTHROPIC_API_KEY")

	return cfg
}

// loadDotEnv sets variables from path that are not already in the
// environment. A missing file is not an error.
func loadDotEnv(path string) error {
	envFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer envFile.Close()

	scanner := bufio.NewScanner(envFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		os.Setenv(key, strings.Trim(strings.TrimSpace(value), `"`))
	}
	return scanner.Err()
}
