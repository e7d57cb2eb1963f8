package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"

	NotifierConsole = "console"
	NotifierKafka   = "kafka"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Store    StoreConfig
	DB       PostgresConfig
	Kafka    KafkaConfig
	Pricing  PricingConfig
	Notifier string
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type StoreConfig struct {
	Driver string
	Path   string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers           []string
	NotificationTopic string
	ConsumerGroup     string
}

type PricingConfig struct {
	TaxRate       float64
	TierRatesFile string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "order_pricing"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8030),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("CLIENT_STORE_DRIVER", StoreDriverFile)),
			Path:   getEnv("CLIENT_STORE_PATH", "clients.txt"),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:           splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			NotificationTopic: getEnv("KAFKA_NOTIFICATION_TOPIC", "client_notifications"),
			ConsumerGroup:     getEnv("KAFKA_CONSUMER_GROUP", "order-pricing-notifier"),
		},
		Pricing: PricingConfig{
			TaxRate:       getEnvAsFloat("TAX_RATE", 0.10),
			TierRatesFile: getEnv("TIER_RATES_FILE", ""),
		},
		Notifier: strings.ToLower(getEnv("NOTIFIER", NotifierConsole)),
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.Pricing.TaxRate < 0 {
		return fmt.Errorf("TAX_RATE must not be negative")
	}

	switch c.Store.Driver {
	case StoreDriverFile:
		if strings.TrimSpace(c.Store.Path) == "" {
			return fmt.Errorf("CLIENT_STORE_PATH is empty")
		}
	case StoreDriverPostgres:
		if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("database config is incomplete")
		}
	default:
		return fmt.Errorf("unknown CLIENT_STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Notifier {
	case NotifierConsole:
	case NotifierKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka brokers is empty")
		}
		if c.Kafka.NotificationTopic == "" {
			return fmt.Errorf("KAFKA_NOTIFICATION_TOPIC is empty")
		}
	default:
		return fmt.Errorf("unknown NOTIFIER %q", c.Notifier)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
