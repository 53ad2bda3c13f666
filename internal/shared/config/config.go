package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type DBConfig struct {
	Host        string
	User        string
	Password    string
	Name        string
	Port        string
	SSLMode     string
	MaxRetries  int
	AutoMigrate bool
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RateLimitRPS   float64
	RateBurst      int
	IdempotencyTTL time.Duration
}

type KafkaConfig struct {
	Broker    string
	Topic     string
	GroupID   string
	DedupeTTL time.Duration
}

type LeaveConfig struct {
	EventSource           string
	DefaultLeaderMaxLevel int
	PersonCacheTTL        time.Duration
}

type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Grace        time.Duration
}

type Config struct {
	DB        DBConfig
	HTTP      HTTPConfig
	Kafka     KafkaConfig
	Leave     LeaveConfig
	Worker    WorkerConfig
	RedisAddr string
}

// Load reads the configuration from the environment. Call godotenv.Load
// before Load to pick up a local .env file.
func Load() (Config, error) {
	cfg := Config{
		DB: DBConfig{
			Host:        str("DB_HOST", "localhost"),
			User:        str("DB_USER", "postgres"),
			Password:    os.Getenv("DB_PASSWORD"),
			Name:        str("DB_NAME", "leave"),
			Port:        str("DB_PORT", "5432"),
			SSLMode:     str("DB_SSLMODE", "disable"),
			MaxRetries:  integer("DB_MAX_RETRIES", 5),
			AutoMigrate: boolean("DB_AUTO_MIGRATE", false),
		},
		HTTP: HTTPConfig{
			Port:           str("PORT", "3000"),
			ReadTimeout:    duration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:   duration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:    duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			RateLimitRPS:   float("HTTP_RATE_LIMIT_RPS", 20),
			RateBurst:      integer("HTTP_RATE_LIMIT_BURST", 40),
			IdempotencyTTL: duration("HTTP_IDEMPOTENCY_TTL", 24*time.Hour),
		},
		Kafka: KafkaConfig{
			Broker:    os.Getenv("KAFKA_BROKER"),
			Topic:     str("KAFKA_LEAVE_TOPIC", "hr.leave.lifecycle.v1"),
			GroupID:   str("KAFKA_GROUP_ID", "leave-audit"),
			DedupeTTL: duration("KAFKA_DEDUPE_TTL", 7*24*time.Hour),
		},
		Leave: LeaveConfig{
			EventSource:           str("LEAVE_EVENT_SOURCE", "leave-service"),
			DefaultLeaderMaxLevel: integer("LEAVE_DEFAULT_LEADER_MAX_LEVEL", 3),
			PersonCacheTTL:        duration("PERSON_CACHE_TTL", 5*time.Minute),
		},
		Worker: WorkerConfig{
			PollInterval: duration("OUTBOX_POLL_INTERVAL", 3*time.Second),
			BatchSize:    integer("OUTBOX_BATCH_SIZE", 50),
			Grace:        duration("OUTBOX_GRACE", 30*time.Second),
		},
		RedisAddr: str("REDIS_ADDR", "localhost:6379"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Leave.DefaultLeaderMaxLevel < 1 {
		return fmt.Errorf("LEAVE_DEFAULT_LEADER_MAX_LEVEL must be >= 1, got %d", c.Leave.DefaultLeaderMaxLevel)
	}
	if c.Worker.BatchSize < 1 {
		return fmt.Errorf("OUTBOX_BATCH_SIZE must be >= 1, got %d", c.Worker.BatchSize)
	}
	return nil
}

// RequireKafka fails when no broker is configured.
func (c Config) RequireKafka() error {
	if c.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func str(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func integer(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func float(name string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func boolean(name string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func duration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
