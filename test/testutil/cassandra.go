// Package testutil provides testing utilities for the cqlbridge project.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/cassandra"
)

// CassandraContainer wraps a Cassandra test container.
type CassandraContainer struct {
	Container *cassandra.CassandraContainer
	Host      string
	Session   *gocql.Session
}

// CassandraOptions configures the Cassandra container.
type CassandraOptions struct {
	// Image is the Cassandra image to use. Defaults to "cassandra:4.1".
	Image string
	// Keyspace is the keyspace to create. Defaults to "cqlbridge_test".
	Keyspace string
}

// DefaultCassandraOptions returns default options for Cassandra container.
func DefaultCassandraOptions() CassandraOptions {
	return CassandraOptions{
		Image:    "cassandra:4.1",
		Keyspace: "cqlbridge_test",
	}
}

// StartCassandra starts a Cassandra container for testing.
//
// The container is automatically terminated when the test completes.
//
// Parameters:
//   - ctx: Context for container operations
//   - t: Testing context for cleanup registration
//   - opts: Optional configuration (nil uses defaults)
//
// Returns:
//   - *CassandraContainer: Container with connection details and session
//   - error: Error if container fails to start
func StartCassandra(ctx context.Context, t *testing.T, opts *CassandraOptions) (*CassandraContainer, error) {
	t.Helper()

	container, session, err := StartCassandraStandalone(ctx, opts)
	if err != nil {
		return nil, err
	}

	t.Cleanup(func() {
		session.Close()
		if err := container.Container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate Cassandra container: %v", err)
		}
	})

	container.Session = session

	return container, nil
}

// StartCassandraStandalone starts a Cassandra container without a testing.T.
//
// Used by TestMain-style setups where the container outlives any single
// test. The caller owns both returned resources: close the session and
// terminate the container when done.
//
// Parameters:
//   - ctx: Context for container operations
//   - opts: Optional configuration (nil uses defaults)
//
// Returns:
//   - *CassandraContainer: Container with connection details
//   - *gocql.Session: An open session on the test keyspace
//   - error: Error if container fails to start
func StartCassandraStandalone(ctx context.Context, opts *CassandraOptions) (*CassandraContainer, *gocql.Session, error) {
	if opts == nil {
		defaultOpts := DefaultCassandraOptions()
		opts = &defaultOpts
	}

	container, err := cassandra.Run(ctx, opts.Image,
		testcontainers.WithEnv(map[string]string{
			"HEAP_NEWSIZE":     "128M",
			"MAX_HEAP_SIZE":    "512M",
			"CASSANDRA_SNITCH": "SimpleSnitch",
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start Cassandra container: %w", err)
	}

	host, err := container.ConnectionHost(ctx)
	if err != nil {
		terminate(container)
		return nil, nil, fmt.Errorf("failed to get connection host: %w", err)
	}

	cluster := gocql.NewCluster(host)
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 60 * time.Second
	cluster.ConnectTimeout = 60 * time.Second

	// Wait for Cassandra to be ready and connect to system keyspace
	cluster.Keyspace = "system"
	var session *gocql.Session
	for i := 0; i < 10; i++ {
		session, err = cluster.CreateSession()
		if err == nil {
			break
		}
		time.Sleep(3 * time.Second)
	}
	if err != nil {
		terminate(container)
		return nil, nil, fmt.Errorf("failed to create session after retries: %w", err)
	}

	createKeyspaceQuery := fmt.Sprintf(`
		CREATE KEYSPACE IF NOT EXISTS %s
		WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}
	`, opts.Keyspace)

	if err := session.Query(createKeyspaceQuery).Exec(); err != nil {
		session.Close()
		terminate(container)
		return nil, nil, fmt.Errorf("failed to create keyspace: %w", err)
	}

	session.Close()

	// Reconnect to the test keyspace
	cluster.Keyspace = opts.Keyspace
	session, err = cluster.CreateSession()
	if err != nil {
		terminate(container)
		return nil, nil, fmt.Errorf("failed to create session for keyspace %s: %w", opts.Keyspace, err)
	}

	return &CassandraContainer{
		Container: container,
		Host:      host,
	}, session, nil
}

func terminate(container *cassandra.CassandraContainer) {
	_ = container.Terminate(context.Background())
}

// CreateTestTable creates a simple table for exercising prepared statements.
//
// The table has the shape (id uuid PRIMARY KEY, name text, score bigint,
// rating double, created_at timestamp, payload blob).
//
// Parameters:
//   - t: Testing context
//   - session: An open session on the test keyspace
//   - table: The table name to create
func CreateTestTable(t *testing.T, session *gocql.Session, table string) {
	t.Helper()

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			name text,
			score bigint,
			rating double,
			created_at timestamp,
			payload blob
		)
	`, table)

	if err := session.Query(query).Exec(); err != nil {
		t.Fatalf("failed to create table %s: %v", table, err)
	}

	t.Cleanup(func() {
		_ = session.Query(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Exec()
	})
}
