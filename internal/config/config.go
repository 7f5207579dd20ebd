// Package config centralises configuration parsing for the points service.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration values for the points service.
type Config struct {
	HTTPAddress    string
	MetricsAddress string   // Metrics listener for the feed consumer.
	KafkaBrokers   []string
	PointsTopic    string   // Topic the points feed is published to.
	ConsumerGroup  string   // Group ID used by the feed consumer.
	PublishEvents  bool     // When false the API runs without Kafka.
	SeedDemoData   bool     // Start the ledger with sample history.
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:    getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress: getEnv("METRICS_ADDRESS", ":9090"),
		PointsTopic:    getEnv("POINTS_TOPIC", "points_events"),
		ConsumerGroup:  getEnv("CONSUMER_GROUP", "healthpoints-feed"),
		PublishEvents:  getBoolEnv("PUBLISH_EVENTS", false),
		SeedDemoData:   getBoolEnv("SEED_DEMO_DATA", true),
	}

	brokers := getEnv("KAFKA_BROKERS", "kafka:9092")
	cfg.KafkaBrokers = splitAndTrim(brokers)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
