package types

import (
	"fmt"
	"strings"
)

// Consistency represents the Cassandra consistency level.
type Consistency uint16

// Common consistency levels matching gocql.
const (
	Any         Consistency = 0x00
	One         Consistency = 0x01
	Two         Consistency = 0x02
	Three       Consistency = 0x03
	Quorum      Consistency = 0x04
	All         Consistency = 0x05
	LocalQuorum Consistency = 0x06
	EachQuorum  Consistency = 0x07
	Serial      Consistency = 0x08
	LocalSerial Consistency = 0x09
	LocalOne    Consistency = 0x0A
)

// consistencyNames maps consistency levels to their canonical names.
var consistencyNames = map[Consistency]string{
	Any:         "ANY",
	One:         "ONE",
	Two:         "TWO",
	Three:       "THREE",
	Quorum:      "QUORUM",
	All:         "ALL",
	LocalQuorum: "LOCAL_QUORUM",
	EachQuorum:  "EACH_QUORUM",
	Serial:      "SERIAL",
	LocalSerial: "LOCAL_SERIAL",
	LocalOne:    "LOCAL_ONE",
}

// String returns the canonical name of the consistency level.
func (c Consistency) String() string {
	if name, ok := consistencyNames[c]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN_0x%04X", uint16(c))
}

// ParseConsistency converts a consistency level name to a Consistency.
//
// Matching is case-insensitive and ignores underscores, so "LOCAL_QUORUM",
// "local_quorum" and "LocalQuorum" all parse to LocalQuorum. This is
// primarily used when loading cluster configuration from YAML.
//
// Parameters:
//   - s: The consistency level name
//
// Returns:
//   - Consistency: The parsed level
//   - error: An error if the name is not a known level
func ParseConsistency(s string) (Consistency, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(s, "_", ""))
	for level, name := range consistencyNames {
		if strings.ReplaceAll(name, "_", "") == normalized {
			return level, nil
		}
	}

	return 0, fmt.Errorf("cqlbridge: unknown consistency level %q", s)
}

// StatementKind labels a prepared statement by the outcome it produces.
//
// The kind is fixed when the statement is prepared and determines whether
// execution yields a row set or an update count. It is also used as a
// metrics label.
type StatementKind string

const (
	// StatementQuery is a row-producing statement (SELECT).
	StatementQuery StatementKind = "query"

	// StatementMutation is a data-modifying statement (INSERT, UPDATE,
	// DELETE, TRUNCATE, BEGIN BATCH).
	StatementMutation StatementKind = "mutation"
)

// Logger defines the structured logging interface used throughout cqlbridge.
//
// Messages are accompanied by alternating key-value pairs, compatible with
// log/slog argument conventions. Implementations must be safe for concurrent
// use.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)

	// Info logs a message at info level.
	Info(msg string, args ...any)

	// Warn logs a message at warn level.
	Warn(msg string, args ...any)

	// Error logs a message at error level.
	Error(msg string, args ...any)
}
