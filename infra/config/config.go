// Package config loads engine configuration from a YAML file with
// environment-variable overrides for deployment-sensitive values.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		GRPCAddr string `yaml:"grpc_addr"`
	} `yaml:"server"`

	WAL struct {
		Dir                string `yaml:"dir"`
		SegmentSize        int64  `yaml:"segment_size"`
		SegmentDurationSec int    `yaml:"segment_duration_sec"`
	} `yaml:"wal"`

	Outbox struct {
		Dir string `yaml:"dir"`
	} `yaml:"outbox"`

	Snapshot struct {
		Dir         string `yaml:"dir"`
		IntervalSec int    `yaml:"interval_sec"`
	} `yaml:"snapshot"`

	Kafka struct {
		Brokers         []string `yaml:"brokers"`
		TradeTopic      string   `yaml:"trade_topic"`
		DepthTopic      string   `yaml:"depth_topic"`
		DepthLevels     int      `yaml:"depth_levels"`
		DepthIntervalMS int      `yaml:"depth_interval_ms"`
	} `yaml:"kafka"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// Default returns a runnable local configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.GRPCAddr = ":50051"
	cfg.WAL.Dir = "./data/wal_entry"
	cfg.WAL.SegmentSize = 2 * 1024 * 1024
	cfg.WAL.SegmentDurationSec = 60
	cfg.Outbox.Dir = "./data/wal_exit"
	cfg.Snapshot.Dir = "./data/snapshots"
	cfg.Snapshot.IntervalSec = 30
	cfg.Kafka.TradeTopic = "trades"
	cfg.Kafka.DepthTopic = "depth"
	cfg.Kafka.DepthLevels = 10
	cfg.Kafka.DepthIntervalMS = 1000
	cfg.Logging.Level = "info"
	return cfg
}

// Load reads the YAML file at path on top of defaults. A missing file
// is not an error; env overrides still apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("ODIN_GRPC_ADDR"); v != "" {
		cfg.Server.GRPCAddr = v
	}
	if v := os.Getenv("ODIN_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("ODIN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return fmt.Errorf("server.grpc_addr is required")
	}
	if c.WAL.Dir == "" {
		return fmt.Errorf("wal.dir is required")
	}
	if c.WAL.SegmentSize <= 0 {
		return fmt.Errorf("wal.segment_size must be positive")
	}
	if c.Outbox.Dir == "" {
		return fmt.Errorf("outbox.dir is required")
	}
	if c.Snapshot.Dir == "" {
		return fmt.Errorf("snapshot.dir is required")
	}
	if c.Snapshot.IntervalSec <= 0 {
		return fmt.Errorf("snapshot.interval_sec must be positive")
	}
	if len(c.Kafka.Brokers) > 0 {
		if c.Kafka.TradeTopic == "" {
			return fmt.Errorf("kafka.trade_topic is required when brokers are set")
		}
		if c.Kafka.DepthTopic == "" {
			return fmt.Errorf("kafka.depth_topic is required when brokers are set")
		}
		if c.Kafka.DepthLevels <= 0 {
			return fmt.Errorf("kafka.depth_levels must be positive")
		}
		if c.Kafka.DepthIntervalMS <= 0 {
			return fmt.Errorf("kafka.depth_interval_ms must be positive")
		}
	}
	return nil
}

// KafkaEnabled reports whether event publishing jobs should run.
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func (c *Config) SegmentDuration() time.Duration {
	return time.Duration(c.WAL.SegmentDurationSec) * time.Second
}

func (c *Config) SnapshotInterval() time.Duration {
	return time.Duration(c.Snapshot.IntervalSec) * time.Second
}

func (c *Config) DepthInterval() time.Duration {
	return time.Duration(c.Kafka.DepthIntervalMS) * time.Millisecond
}
