package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string

	HTTPPort int
	GRPCPort int

	DatabaseURL  string
	RedisURL     string
	KafkaBrokers []string

	MaxDBConns int32

	KafkaTopicOrderCreated   string
	KafkaTopicOrderSubmitted string
	KafkaTopicOrderDeleted   string

	OrderCacheTTL time.Duration
	DeveloperMode bool
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL              string   `yaml:"postgres_url"`
		RedisURL                 string   `yaml:"redis_url"`
		KafkaBrokers             []string `yaml:"kafka_brokers"`
		KafkaTopicOrderCreated   string   `yaml:"kafka_topic_order_created"`
		KafkaTopicOrderSubmitted string   `yaml:"kafka_topic_order_submitted"`
		KafkaTopicOrderDeleted   string   `yaml:"kafka_topic_order_deleted"`
	} `yaml:"dependencies"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:                "M04-Order-Service",
		HTTPPort:                 8080,
		GRPCPort:                 9090,
		MaxDBConns:               20,
		KafkaTopicOrderCreated:   "order.created",
		KafkaTopicOrderSubmitted: "order.submitted",
		KafkaTopicOrderDeleted:   "order.deleted",
		OrderCacheTTL:            5 * time.Minute,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = trimNonEmpty(f.Dependencies.KafkaBrokers)
		}
		if f.Dependencies.KafkaTopicOrderCreated != "" {
			cfg.KafkaTopicOrderCreated = f.Dependencies.KafkaTopicOrderCreated
		}
		if f.Dependencies.KafkaTopicOrderSubmitted != "" {
			cfg.KafkaTopicOrderSubmitted = f.Dependencies.KafkaTopicOrderSubmitted
		}
		if f.Dependencies.KafkaTopicOrderDeleted != "" {
			cfg.KafkaTopicOrderDeleted = f.Dependencies.KafkaTopicOrderDeleted
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaTopicOrderCreated = envOrDefault("KAFKA_TOPIC_ORDER_CREATED", cfg.KafkaTopicOrderCreated)
	cfg.KafkaTopicOrderSubmitted = envOrDefault("KAFKA_TOPIC_ORDER_SUBMITTED", cfg.KafkaTopicOrderSubmitted)
	cfg.KafkaTopicOrderDeleted = envOrDefault("KAFKA_TOPIC_ORDER_DELETED", cfg.KafkaTopicOrderDeleted)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))
	cfg.OrderCacheTTL = time.Duration(envInt("ORDER_CACHE_SECONDS", int(cfg.OrderCacheTTL.Seconds()))) * time.Second
	cfg.DeveloperMode = envBool("DEVELOPER_MODE", cfg.DeveloperMode)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}

func envCSV(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return trimNonEmpty(strings.Split(raw, ","))
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
