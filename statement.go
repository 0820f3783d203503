package cqlbridge

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/cqlbridge/cqlbridge/adapter/cql"
	"github.com/cqlbridge/cqlbridge/types"
)

// PreparedStatement is a query template prepared once against the engine
// and executable many times with different bound values.
//
// Values are bound by 1-based placeholder position. Every bind call
// validates the position against the placeholder count the engine reported
// at prepare time, coerces the value into its canonical form (see
// types.Coerce) and stores it. Bound values persist across executions until
// ClearBindings is called; execution never resets them.
//
// Each execute call is a fresh, synchronous round trip: it blocks until the
// engine responds or fails, discards the previous outcome, and produces
// either a row set or a mutation acknowledgment depending on how the
// template was classified at prepare time. No result is cached across calls
// and no retry happens internally; retry policy belongs to the caller,
// guided by the error taxonomy in the types package.
//
// # Thread safety
//
// A PreparedStatement is NOT safe for concurrent use. Callers must
// serialize access to one instance; different statements on the same client
// may be used concurrently. The only internal locking is the bound-value
// snapshot taken at dispatch, which prevents a torn read if this contract
// is violated, nothing more.
//
// # Lifecycle
//
// Created by Client.Prepare, destroyed by Close. Close releases the engine
// handle and detaches the statement from its client; any call after Close
// fails fast with a programming error.
type PreparedStatement struct {
	client       *Client
	prepared     cql.PreparedQuery
	statement    string
	placeholders int
	kind         types.StatementKind
	consistency  types.Consistency
	logger       types.Logger
	metrics      types.MetricsCollector
	binds        *bindings
	closed       atomic.Bool

	// Outcome of the most recent execution. Exactly one of rows /
	// updateCount is meaningful, selected by kind.
	rows        cql.Rows
	updateCount int64
}

// Statement returns the original query text.
func (s *PreparedStatement) Statement() string {
	return s.statement
}

// Placeholders returns the number of positional placeholders the engine
// parsed from the template.
func (s *PreparedStatement) Placeholders() int {
	return s.placeholders
}

// Kind returns the statement classification fixed at prepare time.
func (s *PreparedStatement) Kind() types.StatementKind {
	return s.kind
}

// SetConsistency overrides the consistency level for subsequent executions.
// The default is the client's configured consistency.
func (s *PreparedStatement) SetConsistency(c types.Consistency) {
	s.consistency = c
}

// checkOpen fails fast when the statement has been closed.
func (s *PreparedStatement) checkOpen(op string) error {
	if s.closed.Load() {
		return types.NewError(types.KindProgramming, op, s.statement, types.ErrStatementClosed)
	}

	return nil
}

// checkIndex enforces 1 <= pos <= placeholders before any store mutation.
func (s *PreparedStatement) checkIndex(pos int) error {
	if pos < 1 {
		return types.NewError(types.KindProgramming, "bind", s.statement,
			fmt.Errorf("%w: %d", types.ErrInvalidIndex, pos))
	}
	if pos > s.placeholders {
		return types.NewError(types.KindProgramming, "bind", s.statement,
			fmt.Errorf("%w: position %d, placeholder count %d", types.ErrIndexOutOfRange, pos, s.placeholders))
	}

	return nil
}

// bind is the single path every setter goes through: open check, index
// validation, coercion, store. On failure the store is left untouched.
func (s *PreparedStatement) bind(pos int, v any, target types.TargetType) error {
	if err := s.checkOpen("bind"); err != nil {
		s.metrics.IncBindError()
		return err
	}
	if err := s.checkIndex(pos); err != nil {
		s.metrics.IncBindError()
		return err
	}

	value, err := types.Coerce(v, target)
	if err != nil {
		s.metrics.IncBindError()

		// Coercion errors are built without the statement text; attach it.
		var coerceErr *types.Error
		if errors.As(err, &coerceErr) {
			return types.NewError(coerceErr.Kind, coerceErr.Op, s.statement, coerceErr.Cause)
		}

		return err
	}

	s.binds.put(pos, value)

	return nil
}

// Set binds a value of any supported Go type at the given position.
//
// The value is normalized by types.Coerce with no declared target type.
// Unrecognized types are stored as-is and rejected only if the engine
// rejects them.
//
// Parameters:
//   - pos: 1-based placeholder position
//   - v: The value to bind (nil binds an explicit null)
//
// Returns:
//   - error: A programming error for an invalid position, or a syntax
//     error when coercion fails
func (s *PreparedStatement) Set(pos int, v any) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetTyped binds a value with a declared target type.
//
// A textual value paired with TargetInteger, TargetFloat or TargetTimestamp
// is parsed into the corresponding typed value; parse failure returns a
// syntax error naming the expected format and leaves the store unchanged.
// A nil value stores an explicit null regardless of target - type hints for
// null are intentionally ignored, the engine is untyped at the binding
// layer.
//
// Parameters:
//   - pos: 1-based placeholder position
//   - v: The value to bind
//   - target: The declared target type
//
// Returns:
//   - error: A programming error for an invalid position, or a syntax
//     error when parsing fails
func (s *PreparedStatement) SetTyped(pos int, v any, target types.TargetType) error {
	return s.bind(pos, v, target)
}

// SetNull binds an explicit null at the given position.
func (s *PreparedStatement) SetNull(pos int) error {
	return s.bind(pos, nil, types.TargetNone)
}

// SetBool binds a boolean at the given position.
func (s *PreparedStatement) SetBool(pos int, v bool) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetInt8 binds a tinyint at the given position.
func (s *PreparedStatement) SetInt8(pos int, v int8) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetInt16 binds a smallint at the given position.
func (s *PreparedStatement) SetInt16(pos int, v int16) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetInt32 binds an int at the given position.
func (s *PreparedStatement) SetInt32(pos int, v int32) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetInt64 binds a bigint at the given position.
func (s *PreparedStatement) SetInt64(pos int, v int64) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetFloat32 binds a float at the given position.
func (s *PreparedStatement) SetFloat32(pos int, v float32) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetFloat64 binds a double at the given position.
func (s *PreparedStatement) SetFloat64(pos int, v float64) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetString binds a textual value at the given position.
func (s *PreparedStatement) SetString(pos int, v string) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetBytes binds a binary value at the given position.
func (s *PreparedStatement) SetBytes(pos int, v []byte) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetTime binds a timestamp at the given position.
//
// The value is normalized to millisecond precision; nanoseconds are
// intentionally discarded to match the engine's milliseconds-since-epoch
// timestamp semantics.
func (s *PreparedStatement) SetTime(pos int, v time.Time) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetTimeInLocation binds a timestamp at the given position.
//
// The location argument is deliberately ignored: the engine stores
// timestamps as milliseconds since the epoch, which is location
// independent. The parameter exists so callers porting from APIs with
// calendar/timezone overloads keep a one-to-one mapping; this is a stated
// simplification of the public contract, not an omission. Validation and
// coercion are identical to SetTime.
func (s *PreparedStatement) SetTimeInLocation(pos int, v time.Time, _ *time.Location) error {
	return s.SetTime(pos, v)
}

// SetURL binds a URL at the given position, coerced to its textual form.
func (s *PreparedStatement) SetURL(pos int, v *url.URL) error {
	return s.bind(pos, v, types.TargetNone)
}

// SetUUID binds a UUID at the given position.
func (s *PreparedStatement) SetUUID(pos int, v uuid.UUID) error {
	return s.bind(pos, v, types.TargetNone)
}

// ClearBindings empties the bound-value store. The placeholder count and
// the prepared handle are unaffected; the statement can be re-bound and
// re-executed without re-preparing.
func (s *PreparedStatement) ClearBindings() error {
	if err := s.checkOpen("bind"); err != nil {
		return err
	}

	s.binds.clear()

	return nil
}

// resetResults discards the outcome of the previous execution.
func (s *PreparedStatement) resetResults() {
	if s.rows != nil {
		_ = s.rows.Close()
		s.rows = nil
	}
	s.updateCount = 0
}

// exec dispatches one execution round trip: discard the previous outcome,
// snapshot the bound values, send them with the handle to the engine, and
// classify the response.
func (s *PreparedStatement) exec(ctx context.Context) error {
	if err := s.checkOpen("execute"); err != nil {
		return err
	}

	s.resetResults()
	snapshot := s.binds.snapshot()

	s.logger.Debug("executing statement",
		"statement", s.statement,
		"kind", string(s.kind),
	)

	s.metrics.IncExecuteTotal(s.kind)
	start := time.Now()
	rows, err := s.prepared.Execute(ctx, snapshot, s.consistency)
	s.metrics.ObserveExecuteDuration(s.kind, time.Since(start).Seconds())

	if err != nil {
		s.metrics.IncExecuteError(s.kind)

		// Adapters classify their own failures; anything that escaped
		// unclassified is re-raised as an engine execution rejection.
		var classified *types.Error
		if errors.As(err, &classified) {
			return classified
		}

		return types.NewError(types.KindTransient, "execute", s.statement, err)
	}

	if s.kind == types.StatementMutation {
		// The engine does not report precise affected-row counts for this
		// statement class; the count is fixed at 1. The void row handle is
		// released here.
		if rows != nil {
			_ = rows.Close()
		}
		s.updateCount = 1

		return nil
	}

	s.rows = rows

	return nil
}

// Exec executes the statement and reports whether a row-producing result
// exists.
//
// Parameters:
//   - ctx: Context for cancellation and deadline
//
// Returns:
//   - bool: true when the outcome is a row set, false for a mutation
//   - error: A classified error when execution fails
func (s *PreparedStatement) Exec(ctx context.Context) (bool, error) {
	if err := s.exec(ctx); err != nil {
		return false, err
	}

	return s.rows != nil, nil
}

// Query executes the statement expecting rows.
//
// The returned Rows is owned by the statement and remains valid until the
// next execution or Close.
//
// Parameters:
//   - ctx: Context for cancellation and deadline
//
// Returns:
//   - cql.Rows: The row-producing result
//   - error: types.ErrNoResultSet (wrapped, programming kind) when the
//     statement was a mutation, or a classified execution error
func (s *PreparedStatement) Query(ctx context.Context) (cql.Rows, error) {
	if err := s.exec(ctx); err != nil {
		return nil, err
	}
	if s.rows == nil {
		return nil, types.NewError(types.KindProgramming, "query", s.statement, types.ErrNoResultSet)
	}

	return s.rows, nil
}

// Update executes the statement expecting a mutation acknowledgment.
//
// The affected-row count is fixed at 1: the engine does not report precise
// counts for this statement class. This is a stated design limitation, not
// a measurement.
//
// Parameters:
//   - ctx: Context for cancellation and deadline
//
// Returns:
//   - int64: The affected-row count (always 1 on success)
//   - error: types.ErrNoUpdateCount (wrapped, programming kind) when the
//     statement produced rows, or a classified execution error
func (s *PreparedStatement) Update(ctx context.Context) (int64, error) {
	if err := s.exec(ctx); err != nil {
		return 0, err
	}
	if s.rows != nil {
		return 0, types.NewError(types.KindProgramming, "update", s.statement, types.ErrNoUpdateCount)
	}

	return s.updateCount, nil
}

// AddBatch always fails: batching is intentionally out of scope.
func (s *PreparedStatement) AddBatch() error {
	return types.NewError(types.KindUnsupported, "bind", s.statement, types.ErrNotSupported)
}

// ParameterMetadata always fails: parameter introspection is intentionally
// not implemented.
func (s *PreparedStatement) ParameterMetadata() ([]cql.ColumnInfo, error) {
	return nil, types.NewError(types.KindUnsupported, "query", s.statement, types.ErrNotSupported)
}

// ResultMetadata always fails: result introspection is intentionally not
// implemented.
func (s *PreparedStatement) ResultMetadata() ([]cql.ColumnInfo, error) {
	return nil, types.NewError(types.KindUnsupported, "query", s.statement, types.ErrNotSupported)
}

// Close releases the engine handle and detaches the statement from its
// client. Close is idempotent; any other call after Close fails fast with
// a programming error.
func (s *PreparedStatement) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.resetResults()
	s.prepared.Release()
	s.client.removeStatement(s)

	return nil
}

// mutationKeywords are the leading keywords of data-modifying statements.
// Everything else (SELECT, but also DDL, which returns no rows and is
// simply wrapped as an empty result) is treated as row-producing.
var mutationKeywords = map[string]struct{}{
	"insert":   {},
	"update":   {},
	"delete":   {},
	"truncate": {},
	"begin":    {}, // BEGIN BATCH
}

// statementKindOf classifies a template by its first significant keyword,
// skipping leading whitespace and comments.
func statementKindOf(stmt string) types.StatementKind {
	rest := skipLeadingTrivia(stmt)
	end := 0
	for end < len(rest) && isKeywordChar(rest[end]) {
		end++
	}

	if _, ok := mutationKeywords[strings.ToLower(rest[:end])]; ok {
		return types.StatementMutation
	}

	return types.StatementQuery
}

// skipLeadingTrivia advances past whitespace and comments at the start of
// a statement.
func skipLeadingTrivia(stmt string) string {
	for {
		stmt = strings.TrimLeft(stmt, " \t\r\n")
		switch {
		case strings.HasPrefix(stmt, "--") || strings.HasPrefix(stmt, "//"):
			if idx := strings.IndexByte(stmt, '\n'); idx >= 0 {
				stmt = stmt[idx+1:]
				continue
			}

			return ""
		case strings.HasPrefix(stmt, "/*"):
			if idx := strings.Index(stmt, "*/"); idx >= 0 {
				stmt = stmt[idx+2:]
				continue
			}

			return ""
		default:
			return stmt
		}
	}
}

func isKeywordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
