// Package v2 provides an adapter for gocql v2 (github.com/apache/cassandra-gocql-driver).
//
// The adapter implements the cql.Session, cql.PreparedQuery and cql.Rows
// interfaces on top of the Apache driver and classifies every driver
// failure into the types package taxonomy. Its behavior mirrors the v1
// adapter; see that package for preparation semantics.
//
// # Usage
//
//	import gocql "github.com/apache/cassandra-gocql-driver/v2"
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	cluster.Keyspace = "app"
//	session, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := cqlbridge.NewClient(v2.WrapSession(session))
package v2
