package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Port             string
	LogLevel         string
	DefaultCurrency  string
	CurrencyDecimals map[string]int // overrides keyed by currency code
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	decimals, err := parseCurrencyDecimals(getEnv("CURRENCY_DECIMALS", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DefaultCurrency:  getEnv("DEFAULT_CURRENCY", "USD"),
		CurrencyDecimals: decimals,
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// parseCurrencyDecimals parses "BHD:3,XAF:0" into a code -> places map
func parseCurrencyDecimals(raw string) (map[string]int, error) {
	out := make(map[string]int)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		code, places, ok := strings.Cut(entry, ":")
		code = strings.ToUpper(strings.TrimSpace(code))
		if !ok || code == "" {
			return nil, fmt.Errorf("invalid CURRENCY_DECIMALS entry %q: expected CODE:places", entry)
		}

		n, err := strconv.Atoi(strings.TrimSpace(places))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid CURRENCY_DECIMALS entry %q: places must be a non-negative integer", entry)
		}
		out[code] = n
	}
	return out, nil
}
