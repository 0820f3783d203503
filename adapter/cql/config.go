package cql

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cqlbridge/cqlbridge/types"
)

// ClusterConfig holds driver-agnostic connection parameters for a cluster.
//
// It is consumed by v1.Connect and v2.Connect, which translate it to the
// respective driver's cluster configuration.
type ClusterConfig struct {
	// Hosts lists the initial contact points.
	Hosts []string `yaml:"hosts"`

	// Port is the CQL native protocol port. Defaults to 9042.
	Port int `yaml:"port"`

	// Keyspace is the keyspace to use for the session.
	Keyspace string `yaml:"keyspace"`

	// Username and Password enable password authentication when non-empty.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Consistency is the default consistency level name, e.g. "LOCAL_QUORUM".
	// Defaults to "QUORUM".
	Consistency string `yaml:"consistency"`

	// Timeout is the per-query timeout. Zero keeps the driver default.
	Timeout time.Duration `yaml:"timeout"`

	// ConnectTimeout is the initial connection timeout. Zero keeps the
	// driver default.
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// LoadClusterConfig reads a ClusterConfig from a YAML file.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *ClusterConfig: The parsed configuration
//   - error: An error if the file cannot be read or parsed
func LoadClusterConfig(path string) (*ClusterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cluster config: %w", err)
	}

	var cfg ClusterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse cluster config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *ClusterConfig) Validate() error {
	if len(c.Hosts) == 0 {
		return fmt.Errorf("cluster config: at least one host is required")
	}
	if c.Consistency != "" {
		if _, err := types.ParseConsistency(c.Consistency); err != nil {
			return fmt.Errorf("cluster config: %w", err)
		}
	}

	return nil
}

// ConsistencyLevel returns the configured consistency level, defaulting to
// Quorum when unset. Validate must have accepted the config first.
func (c *ClusterConfig) ConsistencyLevel() Consistency {
	if c.Consistency == "" {
		return Quorum
	}

	level, err := types.ParseConsistency(c.Consistency)
	if err != nil {
		return Quorum
	}

	return level
}
