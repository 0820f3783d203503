package types

import "errors"

// Kind classifies a failure into the caller-facing taxonomy.
//
// The kind determines whether the caller may retry the operation without
// changing its input:
//
//	KindConnectivity  no engine node reachable        retryable
//	KindTransient     execution rejected by engine    retryable
//	KindSyntax        query or value rejected         not retryable
//	KindProgramming   caller bug (index, closed use)  not retryable
//	KindUnsupported   feature intentionally absent    not retryable
type Kind uint8

const (
	// KindUnknown is the zero value and never assigned by cqlbridge.
	KindUnknown Kind = iota

	// KindConnectivity indicates no engine node was reachable.
	KindConnectivity

	// KindTransient indicates the engine rejected execution, for example
	// due to a timeout or an unmet consistency requirement.
	KindTransient

	// KindSyntax indicates the query or a bound value was rejected during
	// validation or local coercion.
	KindSyntax

	// KindProgramming indicates a caller bug such as an out-of-range bind
	// index or use of a closed statement.
	KindProgramming

	// KindUnsupported indicates a feature that is intentionally not
	// implemented, such as batching.
	KindUnsupported
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindTransient:
		return "transient"
	case KindSyntax:
		return "syntax"
	case KindProgramming:
		return "programming"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Retryable reports whether failures of this kind may be retried by the
// caller without changing the input. Nothing is ever retried internally.
func (k Kind) Retryable() bool {
	return k == KindConnectivity || k == KindTransient
}

// Sentinel errors for conditions detected locally, before any network
// interaction. They are always wrapped in an *Error and can be matched
// with errors.Is.
var (
	// ErrStatementClosed indicates an operation on a closed statement.
	ErrStatementClosed = errors.New("cqlbridge: statement is closed")

	// ErrClientClosed indicates an operation on a closed client.
	ErrClientClosed = errors.New("cqlbridge: client is closed")

	// ErrNilSession indicates that a nil session was provided.
	ErrNilSession = errors.New("cqlbridge: session cannot be nil")

	// ErrInvalidIndex indicates a bind position below 1.
	ErrInvalidIndex = errors.New("cqlbridge: bind position must be a positive number")

	// ErrIndexOutOfRange indicates a bind position greater than the
	// placeholder count discovered at prepare time.
	ErrIndexOutOfRange = errors.New("cqlbridge: bind position exceeds placeholder count")

	// ErrNoResultSet indicates Query was called on a statement whose
	// execution produced a mutation acknowledgment instead of rows.
	ErrNoResultSet = errors.New("cqlbridge: statement did not produce a result set")

	// ErrNoUpdateCount indicates Update was called on a statement whose
	// execution produced rows instead of a mutation acknowledgment.
	ErrNoUpdateCount = errors.New("cqlbridge: statement did not produce an update count")

	// ErrNotSupported indicates an operation that is intentionally not
	// implemented (batching, parameter and result metadata).
	ErrNotSupported = errors.New("cqlbridge: operation not supported")
)

// Error is the classified failure returned by every cqlbridge operation.
//
// It carries the original statement text for diagnosis and wraps the
// underlying cause so errors.Is and errors.As keep working through it.
type Error struct {
	// Kind is the caller-facing classification.
	Kind Kind

	// Op names the operation that failed: "prepare", "bind", "execute",
	// "query", "update", "close".
	Op string

	// Statement is the original query text, when known.
	Statement string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "cqlbridge: " + e.Op + " failed (" + e.Kind.String() + "): " + e.Cause.Error()
	if e.Statement != "" {
		msg += "\n'" + e.Statement + "'"
	}

	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the caller may retry the failed operation.
func (e *Error) Retryable() bool {
	return e.Kind.Retryable()
}

// NewError builds a classified error.
//
// Parameters:
//   - kind: The caller-facing classification
//   - op: The operation that failed
//   - stmt: The original query text, or "" when not applicable
//   - cause: The underlying error (must not be nil)
//
// Returns:
//   - *Error: The classified error
func NewError(kind Kind, op, stmt string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Statement: stmt, Cause: cause}
}

// KindOf extracts the classification from an error.
//
// Returns KindUnknown when err is nil or was not produced by cqlbridge.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// IsRetryable reports whether err is a classified error whose kind permits
// a caller-side retry.
func IsRetryable(err error) bool {
	return KindOf(err).Retryable()
}
