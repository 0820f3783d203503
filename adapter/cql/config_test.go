package cql

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadClusterConfig(t *testing.T) {
	path := writeConfigFile(t, `
hosts:
  - 10.0.0.1
  - 10.0.0.2
port: 9042
keyspace: app
username: cassandra
password: cassandra
consistency: LOCAL_QUORUM
timeout: 5s
connect_timeout: 10s
`)

	cfg, err := LoadClusterConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.Hosts)
	assert.Equal(t, 9042, cfg.Port)
	assert.Equal(t, "app", cfg.Keyspace)
	assert.Equal(t, "cassandra", cfg.Username)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, LocalQuorum, cfg.ConsistencyLevel())
}

func TestLoadClusterConfigMissingFile(t *testing.T) {
	_, err := LoadClusterConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read cluster config")
}

func TestLoadClusterConfigInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "hosts: [unclosed")

	_, err := LoadClusterConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse cluster config")
}

func TestValidateRequiresHosts(t *testing.T) {
	cfg := &ClusterConfig{}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one host")
}

func TestValidateRejectsUnknownConsistency(t *testing.T) {
	cfg := &ClusterConfig{
		Hosts:       []string{"127.0.0.1"},
		Consistency: "eventual",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eventual")
}

func TestConsistencyLevelDefaultsToQuorum(t *testing.T) {
	cfg := &ClusterConfig{Hosts: []string{"127.0.0.1"}}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, Quorum, cfg.ConsistencyLevel())
}
