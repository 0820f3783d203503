package v2

import (
	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/cqlbridge/cqlbridge/adapter/cql"
	"github.com/cqlbridge/cqlbridge/types"
)

// ToGocqlConsistency converts a cqlbridge Consistency to gocql.Consistency.
//
// Parameters:
//   - c: cqlbridge consistency level
//
// Returns:
//   - gocql.Consistency: The equivalent gocql consistency level
func ToGocqlConsistency(c cql.Consistency) gocql.Consistency {
	return gocql.Consistency(c)
}

// FromGocqlConsistency converts a gocql.Consistency to a cqlbridge Consistency.
//
// Parameters:
//   - c: gocql consistency level
//
// Returns:
//   - cql.Consistency: The equivalent cqlbridge consistency level
func FromGocqlConsistency(c gocql.Consistency) cql.Consistency {
	return cql.Consistency(c)
}

// Connect builds an Apache driver cluster from the configuration, creates a
// session and wraps it in a v2 adapter.
//
// Parameters:
//   - cfg: Driver-agnostic cluster configuration
//
// Returns:
//   - *Session: A connected adapter
//   - error: A classified error when the session cannot be created
func Connect(cfg *cql.ClusterConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, types.NewError(types.KindProgramming, "connect", "", err)
	}

	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Consistency = ToGocqlConsistency(cfg.ConsistencyLevel())
	if cfg.Port != 0 {
		cluster.Port = cfg.Port
	}
	if cfg.Keyspace != "" {
		cluster.Keyspace = cfg.Keyspace
	}
	if cfg.Timeout != 0 {
		cluster.Timeout = cfg.Timeout
	}
	if cfg.ConnectTimeout != 0 {
		cluster.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, types.NewError(classifyKind(err), "connect", "", err)
	}

	return NewSession(session), nil
}
