package config

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type Config struct {
	Port        string
	CatalogPath string

	KafkaBrokers    []string
	KafkaTopicOrder string

	InsightsURL            string
	InsightsRefreshSeconds int
	SessionTTLMinutes      int
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port:        getEnv("APP_PORT", log),
		CatalogPath: getEnvDefault("CATALOG_PATH", "data/catalog.json"),

		KafkaBrokers:    splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopicOrder: getEnvDefault("KAFKA_TOPIC_ORDERS", "storefront.orders.confirmed"),

		InsightsURL:            os.Getenv("INSIGHTS_URL"),
		InsightsRefreshSeconds: getEnvIntDefault("INSIGHTS_REFRESH_SECONDS", 300, log),
		SessionTTLMinutes:      getEnvIntDefault("SESSION_TTL_MINUTES", 60, log),
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func getEnvIntDefault(key string, def int, log *zap.Logger) int {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return def
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Error("invalid int value for environment variable", zap.String("key", key), zap.Error(err))
		panic("invalid int value for environment variable: " + key)
	}
	return val
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
