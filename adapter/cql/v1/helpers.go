package v1

import (
	"github.com/gocql/gocql"

	"github.com/cqlbridge/cqlbridge/adapter/cql"
	"github.com/cqlbridge/cqlbridge/types"
)

// ToGocqlConsistency converts a cqlbridge Consistency to gocql.Consistency.
//
// This is useful when you need to interact with the underlying gocql driver
// directly while using cqlbridge consistency constants.
//
// Parameters:
//   - c: cqlbridge consistency level
//
// Returns:
//   - gocql.Consistency: The equivalent gocql consistency level
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Consistency = v1.ToGocqlConsistency(cql.Quorum)
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

// Connect builds a gocql cluster from the configuration, creates a session
// and wraps it in a v1 adapter.
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
