package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/gic-ledger/internal/infrastructure/config"
	"github.com/bibbank/gic-ledger/pkg/money"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVICE_NAME", "HTTP_PORT", "INTEREST_ROUNDING", "KAFKA_BROKERS",
		"KAFKA_TOPIC_PREFIX", "KAFKA_TLS", "KAFKA_SASL_ENABLED", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ledgerctl", cfg.ServiceName)
	assert.Zero(t, cfg.HTTPPort)
	assert.Equal(t, money.RoundHalfEven, cfg.Rounding)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "gic.ledger", cfg.Kafka.TopicPrefix)
	assert.False(t, cfg.Kafka.TLS)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("INTEREST_ROUNDING", "half_up")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("KAFKA_TLS", "true")
	t.Setenv("KAFKA_SASL_ENABLED", "yes-please")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTPPort)
	assert.Equal(t, money.RoundHalfUp, cfg.Rounding)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.TLS)
	assert.False(t, cfg.Kafka.SASLEnabled, "unparseable bool falls back to default")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidRounding(t *testing.T) {
	t.Setenv("INTEREST_ROUNDING", "ceiling")

	_, err := config.Load()
	assert.ErrorContains(t, err, "INTEREST_ROUNDING")
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	})

	t.Run("file values fill unset variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.env")
		require.NoError(t, os.WriteFile(path, []byte("GIC_TEST_PREFIX=from-file\nGIC_TEST_KEEP=from-file\n"), 0o600))

		t.Setenv("GIC_TEST_KEEP", "from-env")
		t.Setenv("GIC_TEST_PREFIX", "")
		require.NoError(t, os.Unsetenv("GIC_TEST_PREFIX"))

		require.NoError(t, config.LoadDotEnv(path))
		assert.Equal(t, "from-file", os.Getenv("GIC_TEST_PREFIX"))
		assert.Equal(t, "from-env", os.Getenv("GIC_TEST_KEEP"))
	})
}
