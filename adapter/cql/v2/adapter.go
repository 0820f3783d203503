package v2

import (
	"context"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/cqlbridge/cqlbridge/adapter/cql"
	"github.com/cqlbridge/cqlbridge/types"
)

// Session wraps a gocql v2 session.
type Session struct {
	session *gocql.Session
}

// Compile-time assertion that Session implements cql.Session.
var _ cql.Session = (*Session)(nil)

// NewSession creates a new v2 adapter from a gocql session.
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// WrapSession is an alias for NewSession that wraps a gocql v2 session.
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - cql.Session: An adapter implementing cql.Session
func WrapSession(session *gocql.Session) cql.Session {
	return NewSession(session)
}

// Prepare registers the query template and returns its handle.
//
// Like gocql v1, the Apache driver defers server-side preparation to the
// first execution, so the placeholder count is derived locally with
// cql.CountPlaceholders.
func (s *Session) Prepare(_ context.Context, stmt string, cons cql.Consistency) (cql.PreparedQuery, error) {
	if s.session == nil {
		return nil, types.NewError(types.KindConnectivity, "prepare", stmt, types.ErrNilSession)
	}
	if s.session.Closed() {
		return nil, types.NewError(types.KindConnectivity, "prepare", stmt, gocql.ErrSessionClosed)
	}

	query := s.session.Query(stmt).Consistency(ToGocqlConsistency(cons))

	return &PreparedQuery{
		query:        query,
		statement:    stmt,
		placeholders: cql.CountPlaceholders(stmt),
	}, nil
}

// Close terminates the underlying session.
func (s *Session) Close() {
	if s.session != nil {
		s.session.Close()
	}
}

// PreparedQuery wraps a reusable gocql query for one template.
type PreparedQuery struct {
	query        *gocql.Query
	statement    string
	placeholders int
}

// Compile-time assertion that PreparedQuery implements cql.PreparedQuery.
var _ cql.PreparedQuery = (*PreparedQuery)(nil)

// Statement returns the original query text.
func (p *PreparedQuery) Statement() string {
	return p.statement
}

// Placeholders returns the number of positional placeholders in the template.
func (p *PreparedQuery) Placeholders() int {
	return p.placeholders
}

// Execute binds the snapshot and runs the query, blocking until the engine
// responds or fails. See the v1 adapter for the void-result handling.
func (p *PreparedQuery) Execute(ctx context.Context, values []types.Value, cons cql.Consistency) (cql.Rows, error) {
	query := p.query.
		Bind(driverValues(values)...).
		Consistency(ToGocqlConsistency(cons)).
		WithContext(ctx)

	iter := query.Iter()
	if len(iter.Columns()) == 0 {
		if err := iter.Close(); err != nil {
			return nil, classifyError(err, p.statement)
		}

		return &Rows{iter: iter}, nil
	}

	return &Rows{iter: iter}, nil
}

// Release returns the query to the driver. The handle must not be used
// afterwards. The v2 driver has no query pool, so there is nothing to
// return; this satisfies the cql.Prepared interface.
func (p *PreparedQuery) Release() {}

// driverValues converts a bound-value snapshot to the forms the driver
// marshals. Unset positions become gocql.UnsetValue, explicit nulls nil,
// UUIDs their textual form.
func driverValues(values []types.Value) []any {
	args := make([]any, len(values))
	for i, v := range values {
		switch v.Kind() {
		case types.ValueUnset:
			args[i] = gocql.UnsetValue
		case types.ValueNull:
			args[i] = nil
		case types.ValueUUID:
			u, _ := v.UUID()
			args[i] = u.String()
		default:
			args[i] = v.Interface()
		}
	}

	return args
}

// Rows wraps a gocql iterator.
type Rows struct {
	iter *gocql.Iter
}

// Compile-time assertion that Rows implements cql.Rows.
var _ cql.Rows = (*Rows)(nil)

// Scan reads the next row into dest.
func (r *Rows) Scan(dest ...any) bool {
	return r.iter.Scan(dest...)
}

// MapScan reads the next row into the map.
func (r *Rows) MapScan(m map[string]any) bool {
	return r.iter.MapScan(m)
}

// SliceMap reads all remaining rows into a slice of maps.
func (r *Rows) SliceMap() ([]map[string]any, error) {
	return r.iter.SliceMap()
}

// Columns returns metadata about the columns in the result set.
func (r *Rows) Columns() []cql.ColumnInfo {
	gocqlCols := r.iter.Columns()
	cols := make([]cql.ColumnInfo, len(gocqlCols))
	for i, col := range gocqlCols {
		cols[i] = cql.ColumnInfo{
			Keyspace: col.Keyspace,
			Table:    col.Table,
			Name:     col.Name,
			TypeInfo: col.TypeInfo,
		}
	}

	return cols
}

// PageState returns the pagination token for resuming iteration.
func (r *Rows) PageState() []byte {
	return r.iter.PageState()
}

// NumRows returns the number of rows in the current page.
func (r *Rows) NumRows() int {
	return r.iter.NumRows()
}

// Close closes the iterator and returns any iteration error.
func (r *Rows) Close() error {
	return r.iter.Close()
}
