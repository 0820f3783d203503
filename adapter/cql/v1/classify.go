package v1

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"github.com/cqlbridge/cqlbridge/types"
)

// classifyError maps a gocql failure to the caller-facing taxonomy.
//
// Every failure path produces a classified *types.Error carrying the
// original statement text and the driver error as its cause; nothing is
// ever swallowed. Already-classified errors pass through unchanged.
func classifyError(err error, stmt string) *types.Error {
	var classified *types.Error
	if errors.As(err, &classified) {
		return classified
	}

	return types.NewError(classifyKind(err), "execute", stmt, err)
}

// classifyKind decides the taxonomy kind for a raw gocql error.
//
//   - pool and session failures (no reachable node) -> connectivity
//   - client-side timeouts and context cancellation -> transient
//   - server validation rejections (bad CQL, schema or auth problems)
//     -> syntax/semantic
//   - server execution rejections (timeout, unavailable, overloaded)
//     -> transient
//   - anything unrecognized -> connectivity, since unclassified gocql
//     errors are transport-level in practice
func classifyKind(err error) types.Kind {
	switch {
	case errors.Is(err, gocql.ErrNoConnections),
		errors.Is(err, gocql.ErrSessionClosed),
		errors.Is(err, gocql.ErrConnectionClosed),
		errors.Is(err, gocql.ErrNoHosts):
		return types.KindConnectivity
	case errors.Is(err, gocql.ErrTimeoutNoResponse),
		errors.Is(err, gocql.ErrTooManyTimeouts),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return types.KindTransient
	}

	var reqErr gocql.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.Code() {
		case gocql.ErrCodeSyntax,
			gocql.ErrCodeInvalid,
			gocql.ErrCodeAlreadyExists,
			gocql.ErrCodeUnauthorized,
			gocql.ErrCodeCredentials,
			gocql.ErrCodeConfig:
			return types.KindSyntax
		default:
			// Unavailable, overloaded, bootstrapping, truncate failures,
			// read/write timeouts and failures, unprepared.
			return types.KindTransient
		}
	}

	return types.KindConnectivity
}
