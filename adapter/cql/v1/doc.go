// Package v1 provides an adapter for gocql v1 (github.com/gocql/gocql).
//
// The adapter implements the cql.Session, cql.PreparedQuery and cql.Rows
// interfaces on top of a *gocql.Session and classifies every driver failure
// into the types package taxonomy.
//
// # Usage
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Keyspace = "app"
//	session, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := cqlbridge.NewClient(v1.WrapSession(session))
//
// Or from a YAML cluster config:
//
//	cfg, _ := cql.LoadClusterConfig("cluster.yaml")
//	session, err := v1.Connect(cfg)
//
// # Preparation semantics
//
// gocql prepares statements lazily and keeps its own prepared-statement
// cache, so Prepare performs the placeholder count locally (see
// cql.CountPlaceholders) and server-side validation surfaces on the first
// Execute. Engines whose drivers prepare eagerly can report validation
// failures from Prepare itself; the statement core handles both.
package v1
