package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, ProcessorLocal, cfg.Processor)
	assert.False(t, cfg.TemporalEnabled)
	assert.Equal(t, "localhost:7233", cfg.TemporalHost)
	assert.Equal(t, "order-task-queue", cfg.TaskQueue)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "order-events", cfg.KafkaTopic)
	assert.Equal(t, 5, cfg.Pricing.BulkThreshold)
	assert.Equal(t, 10.0, cfg.Pricing.BulkPercent)
	assert.Equal(t, 20.0, cfg.Pricing.SeasonalPercent)
	assert.Empty(t, cfg.Pricing.PromoCodes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("TEMPORAL_ENABLED", "true")
	t.Setenv("ORDER_PROCESSOR", "Temporal")
	t.Setenv("KAFKA_BROKERS", "kafka:9092")
	t.Setenv("BULK_THRESHOLD", "10")
	t.Setenv("PROMO_CODES", " SUMMER:15, gym10:10 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.SeedData)
	assert.True(t, cfg.TemporalEnabled)
	assert.Equal(t, ProcessorTemporal, cfg.Processor)
	assert.Equal(t, "kafka:9092", cfg.KafkaBrokers)
	assert.Equal(t, 10, cfg.Pricing.BulkThreshold)
	assert.Equal(t, map[string]float64{"SUMMER": 15, "gym10": 10}, cfg.Pricing.PromoCodes)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"seed flag", map[string]string{"SEED_DATA": "maybe"}, "SEED_DATA"},
		{"bulk threshold", map[string]string{"BULK_THRESHOLD": "five"}, "BULK_THRESHOLD"},
		{"seasonal percent", map[string]string{"SEASONAL_DISCOUNT_PERCENT": "x"}, "SEASONAL_DISCOUNT_PERCENT"},
		{"processor", map[string]string{"ORDER_PROCESSOR": "queue"}, "unknown processor"},
		{"temporal processor disabled", map[string]string{"ORDER_PROCESSOR": "temporal"}, "TEMPORAL_ENABLED"},
		{"promo entry", map[string]string{"PROMO_CODES": "SUMMER"}, "PROMO_CODES"},
		{"promo percent", map[string]string{"PROMO_CODES": "SUMMER:lots"}, "PROMO_CODES"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
