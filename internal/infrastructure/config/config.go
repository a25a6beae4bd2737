package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bibbank/gic-ledger/pkg/money"
)

// Config holds all ledger configuration loaded from environment variables.
type Config struct {
	ServiceName string
	HTTPPort    int
	Rounding    money.RoundingMode
	Kafka       KafkaConfig
	LogLevel    string
	LogFormat   string
}

// KafkaConfig holds Kafka connection parameters. Publishing is off when Brokers is empty.
type KafkaConfig struct {
	Brokers       []string
	TopicPrefix   string
	TLS           bool
	TLSCAFile     string
	TLSCertFile   string
	TLSKeyFile    string
	SASLEnabled   bool
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string
}

// LoadDotEnv loads variables from the given files (default ".env") without overriding
// variables already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	rounding, err := money.ParseRoundingMode(getEnv("INTEREST_ROUNDING", "half_even"))
	if err != nil {
		return Config{}, fmt.Errorf("INTEREST_ROUNDING: %w", err)
	}

	return Config{
		ServiceName: getEnv("SERVICE_NAME", "ledgerctl"),
		HTTPPort:    getEnvInt("HTTP_PORT", 0),
		Rounding:    rounding,
		Kafka: KafkaConfig{
			Brokers:       splitList(getEnv("KAFKA_BROKERS", "")),
			TopicPrefix:   getEnv("KAFKA_TOPIC_PREFIX", "gic.ledger"),
			TLS:           getEnvBool("KAFKA_TLS", false),
			TLSCAFile:     getEnv("KAFKA_TLS_CA_FILE", ""),
			TLSCertFile:   getEnv("KAFKA_TLS_CERT_FILE", ""),
			TLSKeyFile:    getEnv("KAFKA_TLS_KEY_FILE", ""),
			SASLEnabled:   getEnvBool("KAFKA_SASL_ENABLED", false),
			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", "PLAIN"),
			SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
		},
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
