// Package types provides shared types and error definitions for the cqlbridge library.
//
// This is a leaf package with zero cqlbridge imports to prevent import cycles.
// All packages in cqlbridge can safely import this package.
//
// # Types
//
// Value is the closed tagged union carried by the bound-value store. Every
// caller-supplied value is normalized into a Value by Coerce before it is
// stored, so the dispatch path only ever deals with a small, known set of
// shapes:
//
//	const (
//	    ValueUnset ValueKind = iota // position never bound (distinct from null)
//	    ValueNull
//	    ValueBool
//	    ValueInt
//	    ValueFloat
//	    ValueText
//	    ValueBytes
//	    ValueTimestamp
//	    ValueUUID
//	    ValueOpaque
//	)
//
// Consistency levels mirror gocql consistency levels for database operations:
//
//	const (
//	    Any         Consistency = 0x00
//	    One         Consistency = 0x01
//	    Two         Consistency = 0x02
//	    Three       Consistency = 0x03
//	    Quorum      Consistency = 0x04
//	    All         Consistency = 0x05
//	    LocalQuorum Consistency = 0x06
//	    EachQuorum  Consistency = 0x07
//	    LocalOne    Consistency = 0x0A
//	)
//
// # Errors
//
// Every failure surfaced by cqlbridge is an *Error carrying a Kind from the
// caller-facing taxonomy:
//
//   - KindConnectivity: no engine node reachable (retryable)
//   - KindTransient: execution rejected by the engine, e.g. timeout or
//     consistency not met (retryable)
//   - KindSyntax: query or value rejected during validation or local
//     coercion (not retryable without changing the input)
//   - KindProgramming: caller bug such as an out-of-range bind index or
//     use after close (not retryable)
//   - KindUnsupported: feature intentionally not implemented
//
// Sentinel errors (ErrStatementClosed, ErrIndexOutOfRange, ...) identify the
// precise condition and can be matched with errors.Is through the wrapping
// *Error.
package types
