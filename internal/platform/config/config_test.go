package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.True(t, cfg.InMemory())
	assert.Equal(t, EventsBackendNone, cfg.Events.Backend)
	assert.Equal(t, "@every 1m", cfg.Scheduler.OpenRecruitmentsSpec)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APPLY_SERVER_ADDR", ":9090")
	t.Setenv("APPLY_DATABASE_URL", "postgres://apply@localhost/apply")
	t.Setenv("APPLY_DATABASE_DRIVER", "postgres")
	t.Setenv("APPLY_EVENTS_BACKEND", "kafka")
	t.Setenv("APPLY_EVENTS_KAFKA_BROKERS", "broker-1:9092, broker-2:9092,broker-1:9092")
	t.Setenv("APPLY_REDIS_READ_TIMEOUT", "750ms")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.False(t, cfg.InMemory())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Events.KafkaBrokers)
	assert.Equal(t, 750*time.Millisecond, cfg.Redis.ReadTimeout)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apply.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nauth:\n  admin_token: file-token\n"), 0o600))
	t.Setenv("APPLY_CONFIG_FILE", path)

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "file-token", cfg.Auth.AdminToken)
}

func TestValidate(t *testing.T) {
	base, err := load(viper.New())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"redis events without redis", func(c *Config) { c.Events.Backend = EventsBackendRedis }},
		{"kafka events without brokers", func(c *Config) { c.Events.Backend = EventsBackendKafka }},
		{"unknown backend", func(c *Config) { c.Events.Backend = "nats" }},
		{"missing signing key", func(c *Config) { c.Auth.JWTSigningKey = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
