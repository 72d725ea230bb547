package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":50051", cfg.Server.GRPCAddr)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, 30*time.Second, cfg.SnapshotInterval())
	assert.Equal(t, 60*time.Second, cfg.SegmentDuration())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  grpc_addr: ":6000"
kafka:
  brokers: ["localhost:9092"]
  depth_interval_ms: 500
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6000", cfg.Server.GRPCAddr)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 500*time.Millisecond, cfg.DepthInterval())

	// Untouched sections keep defaults.
	assert.Equal(t, "./data/wal_entry", cfg.WAL.Dir)
	assert.Equal(t, "trades", cfg.Kafka.TradeTopic)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ODIN_GRPC_ADDR", ":7000")
	t.Setenv("ODIN_KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("ODIN_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.GRPCAddr)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.WAL.SegmentSize = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.TradeTopic = ""
	assert.Error(t, cfg.Validate())
}
