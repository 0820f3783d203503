// Package cql provides adapter interfaces and implementations for CQL (Cassandra Query Language)
// engines, abstracting over different gocql driver versions.
//
// The package defines three interfaces forming the seam between the
// statement core and the wire driver:
//
//   - Session: prepares query templates
//   - PreparedQuery: executes a prepared handle with a bound-value snapshot
//   - Rows: iterates a row-producing result
//
// Two implementations are provided:
//
//   - v1: github.com/gocql/gocql
//   - v2: github.com/apache/cassandra-gocql-driver/v2
//
// Both classify driver failures into the types package taxonomy before
// returning them, so the statement core never sees a raw driver error.
//
// # Choosing an adapter
//
//	// gocql v1
//	cluster := gocql.NewCluster("127.0.0.1")
//	session, _ := cluster.CreateSession()
//	client, _ := cqlbridge.NewClient(v1.WrapSession(session))
//
//	// Apache driver v2
//	cluster := gocql.NewCluster("127.0.0.1")
//	session, _ := cluster.CreateSession()
//	client, _ := cqlbridge.NewClient(v2.WrapSession(session))
//
// Cluster connection parameters can also be loaded from YAML via
// ClusterConfig and handed to v1.Connect or v2.Connect.
package cql
