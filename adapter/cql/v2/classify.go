package v2

import (
	"context"
	"errors"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/cqlbridge/cqlbridge/types"
)

// classifyError maps an Apache driver failure to the caller-facing
// taxonomy. Mirrors the v1 classifier; the drivers share error codes.
func classifyError(err error, stmt string) *types.Error {
	var classified *types.Error
	if errors.As(err, &classified) {
		return classified
	}

	return types.NewError(classifyKind(err), "execute", stmt, err)
}

// classifyKind decides the taxonomy kind for a raw driver error.
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
			return types.KindTransient
		}
	}

	return types.KindConnectivity
}
