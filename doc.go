// Package cqlbridge provides a prepared-statement bridge between a
// positional "set value at index N" binding API and the typed positional
// placeholders of a CQL engine.
//
// A Client wraps an engine session behind the adapter/cql seam and hands
// out PreparedStatement instances. Each statement is prepared once, bound
// by 1-based placeholder position, and executed any number of times; each
// execution is a fresh synchronous round trip with no caching and no
// internal retry.
//
// # Key Features
//
//   - Positional Binding: Type-specific setters plus a generic Set, all
//     validated against the engine-reported placeholder count
//   - Value Coercion: Textual values parsed into integers, floats and
//     timestamps when a target type is declared
//   - Mutation Discipline: Statements classified at prepare time; Query
//     and Update enforce the row-set / update-count split
//   - Error Taxonomy: Every failure classified as connectivity, transient,
//     syntax, programming or unsupported so callers can decide retry policy
//   - Driver Agnostic: adapter/cql/v1 (gocql) and adapter/cql/v2
//     (cassandra-gocql-driver) adapters behind one interface
//
// # Basic Usage
//
//	session, err := v1.Connect(&cql.ClusterConfig{Hosts: []string{"127.0.0.1"}, Keyspace: "app"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := cqlbridge.NewClient(session,
//	    cqlbridge.WithConsistency(types.ConsistencyQuorum),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	stmt, err := client.Prepare(ctx, "INSERT INTO users (id, name) VALUES (?, ?)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stmt.Close()
//
//	_ = stmt.SetUUID(1, uuid.New())
//	_ = stmt.SetString(2, "alice")
//	count, err := stmt.Update(ctx)
//
// # Error Handling
//
// Every error surfaced by this package is (or wraps) a *types.Error
// carrying a Kind, the failing operation and the statement text. Kinds
// split into retryable (connectivity, transient) and non-retryable
// (syntax, programming, unsupported); types.IsRetryable answers the
// retry question directly:
//
//	if types.IsRetryable(err) {
//	    // safe to retry the execution
//	}
//
// Sentinel causes are matched with errors.Is:
//
//	if errors.Is(err, types.ErrIndexOutOfRange) {
//	    // bound position exceeds the placeholder count
//	}
//
// # Thread Safety
//
// A Client is safe for concurrent use. A PreparedStatement is not; see its
// documentation for the exact contract.
package cqlbridge
