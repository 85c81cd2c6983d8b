package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"sport-store/storefront/pricing"
)

// Order processors
const (
	ProcessorLocal    = "local"
	ProcessorTemporal = "temporal"
)

type Config struct {
	HTTPAddr  string
	LogLevel  slog.Level
	SeedData  bool
	Processor string

	TemporalEnabled bool
	TemporalHost    string
	TaskQueue       string

	KafkaBrokers string
	KafkaTopic   string

	Pricing pricing.Config
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8000"),
		TemporalHost: getEnv("TEMPORAL_HOST", "localhost:7233"),
		TaskQueue:    getEnv("ORDER_TASK_QUEUE", "order-task-queue"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order-events"),
		Processor:    strings.ToLower(getEnv("ORDER_PROCESSOR", ProcessorLocal)),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.SeedData, err = getBool("SEED_DATA", true); err != nil {
		return Config{}, err
	}
	if cfg.TemporalEnabled, err = getBool("TEMPORAL_ENABLED", false); err != nil {
		return Config{}, err
	}

	switch cfg.Processor {
	case ProcessorLocal:
	case ProcessorTemporal:
		if !cfg.TemporalEnabled {
			return Config{}, fmt.Errorf("ORDER_PROCESSOR=temporal requires TEMPORAL_ENABLED=true")
		}
	default:
		return Config{}, fmt.Errorf("ORDER_PROCESSOR: unknown processor %q", cfg.Processor)
	}

	if cfg.Pricing.BulkThreshold, err = getInt("BULK_THRESHOLD", 5); err != nil {
		return Config{}, err
	}
	if cfg.Pricing.BulkPercent, err = getFloat("BULK_DISCOUNT_PERCENT", 10); err != nil {
		return Config{}, err
	}
	if cfg.Pricing.SeasonalPercent, err = getFloat("SEASONAL_DISCOUNT_PERCENT", 20); err != nil {
		return Config{}, err
	}
	if cfg.Pricing.PromoCodes, err = parsePromoCodes(os.Getenv("PROMO_CODES")); err != nil {
		return Config{}, fmt.Errorf("PROMO_CODES: %w", err)
	}
	return cfg, nil
}

// parsePromoCodes reads "CODE:percent,CODE:percent"
func parsePromoCodes(raw string) (map[string]float64, error) {
	codes := map[string]float64{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, percent, ok := strings.Cut(entry, ":")
		if !ok || strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("malformed entry %q", entry)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(percent), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry, err)
		}
		codes[strings.TrimSpace(code)] = p
	}
	return codes, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
