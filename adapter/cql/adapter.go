// Package cql defines the engine collaborator interfaces for different gocql versions.
package cql

import (
	"context"

	"github.com/cqlbridge/cqlbridge/types"
)

// Consistency is a convenience alias - re-exported from the types package.
type Consistency = types.Consistency

// Re-export consistency level constants for convenience.
const (
	Any         = types.Any
	One         = types.One
	Two         = types.Two
	Three       = types.Three
	Quorum      = types.Quorum
	All         = types.All
	LocalQuorum = types.LocalQuorum
	EachQuorum  = types.EachQuorum
	Serial      = types.Serial
	LocalSerial = types.LocalSerial
	LocalOne    = types.LocalOne
)

// Session represents a raw CQL session from the underlying driver.
//
// This interface is implemented by adapters for gocql v1 and v2. It is the
// black-box collaborator the statement core talks to: it prepares query
// templates and executes prepared handles, nothing more. Connection
// lifecycle, pooling and deadlines belong to the adapter and its driver.
//
// Errors returned by implementations must already be classified
// (*types.Error); the statement core preserves the classification and
// attaches the statement text.
type Session interface {
	// Prepare registers the query template with the engine and returns a
	// handle carrying the authoritative placeholder count.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - stmt: CQL statement with ? placeholders
	//   - cons: Consistency level for the prepare round trip
	//
	// Returns:
	//   - PreparedQuery: The engine-owned handle
	//   - error: A classified error when preparation fails
	Prepare(ctx context.Context, stmt string, cons Consistency) (PreparedQuery, error)

	// Close terminates the session and releases driver resources.
	Close()
}

// PreparedQuery is an engine-assigned handle for one prepared template.
//
// A handle is exclusively owned by the statement that prepared it and must
// be released exactly once.
type PreparedQuery interface {
	// Statement returns the original query text, retained for diagnostics.
	Statement() string

	// Placeholders returns the number of positional placeholders the engine
	// parsed from the template. Fixed after preparation.
	Placeholders() int

	// Execute sends the handle plus a snapshot of bound values to the
	// engine and blocks until it responds or fails.
	//
	// The snapshot is positional: values[i] holds the value for placeholder
	// i+1. Unset entries (zero types.Value) are handed to the engine as
	// unset columns; explicit nulls as null.
	//
	// Parameters:
	//   - ctx: Context for cancellation and deadline
	//   - values: Snapshot of the bound values, length == Placeholders()
	//   - cons: Consistency level for this execution
	//
	// Returns:
	//   - Rows: The row-producing result; empty (but non-nil) for void
	//     results such as mutations and DDL
	//   - error: A classified error when execution fails
	Execute(ctx context.Context, values []types.Value, cons Consistency) (Rows, error)

	// Release returns the handle to the driver. The handle must not be
	// used afterwards.
	Release()
}

// Rows mirrors the iterable part of gocql.Iter for row-producing results.
type Rows interface {
	// Scan reads the next row into dest.
	//
	// Returns:
	//   - bool: true if a row was read, false if no more rows
	Scan(dest ...any) bool

	// MapScan reads the next row into the map.
	MapScan(m map[string]any) bool

	// SliceMap reads all remaining rows into a slice of maps.
	SliceMap() ([]map[string]any, error)

	// Columns returns metadata about the columns in the result set.
	Columns() []ColumnInfo

	// PageState returns the pagination token for resuming iteration.
	PageState() []byte

	// NumRows returns the number of rows in the current page.
	NumRows() int

	// Close closes the result and returns any error that occurred during
	// iteration.
	Close() error
}

// ColumnInfo holds metadata about a column in query results.
type ColumnInfo struct {
	// Keyspace is the keyspace containing the table.
	Keyspace string

	// Table is the table name.
	Table string

	// Name is the column name.
	Name string

	// TypeInfo describes the CQL type (implementation-specific).
	TypeInfo any
}
