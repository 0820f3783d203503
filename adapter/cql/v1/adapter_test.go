package v1

import (
	"context"
	"errors"
	"testing"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlbridge/cqlbridge/adapter/cql"
	"github.com/cqlbridge/cqlbridge/types"
)

// fakeRequestError implements gocql.RequestError.
type fakeRequestError struct {
	code int
	msg  string
}

func (f fakeRequestError) Code() int { return f.code }
func (f fakeRequestError) Message() string { return f.msg }
func (f fakeRequestError) Error() string { return f.msg }

var _ gocql.RequestError = fakeRequestError{}

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want types.Kind
	}{
		{"no connections", gocql.ErrNoConnections, types.KindConnectivity},
		{"session closed", gocql.ErrSessionClosed, types.KindConnectivity},
		{"connection closed", gocql.ErrConnectionClosed, types.KindConnectivity},
		{"no hosts", gocql.ErrNoHosts, types.KindConnectivity},
		{"timeout no response", gocql.ErrTimeoutNoResponse, types.KindTransient},
		{"too many timeouts", gocql.ErrTooManyTimeouts, types.KindTransient},
		{"deadline exceeded", context.DeadlineExceeded, types.KindTransient},
		{"canceled", context.Canceled, types.KindTransient},
		{"syntax", fakeRequestError{code: gocql.ErrCodeSyntax, msg: "line 1"}, types.KindSyntax},
		{"invalid", fakeRequestError{code: gocql.ErrCodeInvalid, msg: "unconfigured table"}, types.KindSyntax},
		{"unauthorized", fakeRequestError{code: gocql.ErrCodeUnauthorized, msg: "denied"}, types.KindSyntax},
		{"unavailable", fakeRequestError{code: gocql.ErrCodeUnavailable, msg: "not enough replicas"}, types.KindTransient},
		{"write timeout", fakeRequestError{code: gocql.ErrCodeWriteTimeout, msg: "timed out"}, types.KindTransient},
		{"overloaded", fakeRequestError{code: gocql.ErrCodeOverloaded, msg: "busy"}, types.KindTransient},
		{"unrecognized", errors.New("mystery"), types.KindConnectivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyKind(tt.err))
		})
	}
}

func TestClassifyErrorAttachesStatement(t *testing.T) {
	err := classifyError(gocql.ErrNoConnections, "SELECT a FROM t")

	require.Equal(t, types.KindConnectivity, err.Kind)
	assert.Equal(t, "execute", err.Op)
	assert.Equal(t, "SELECT a FROM t", err.Statement)
	assert.True(t, errors.Is(err, gocql.ErrNoConnections))
}

func TestClassifyErrorPassesThroughClassified(t *testing.T) {
	original := types.NewError(types.KindSyntax, "prepare", "SELEKT", errors.New("bad"))

	got := classifyError(original, "ignored")
	assert.Same(t, original, got)
}

func TestConsistencyConversionRoundTrip(t *testing.T) {
	levels := []cql.Consistency{
		cql.Any, cql.One, cql.Quorum, cql.All, cql.LocalQuorum, cql.LocalOne,
	}

	for _, level := range levels {
		assert.Equal(t, level, FromGocqlConsistency(ToGocqlConsistency(level)))
	}

	assert.Equal(t, gocql.Quorum, ToGocqlConsistency(cql.Quorum))
	assert.Equal(t, gocql.LocalQuorum, ToGocqlConsistency(cql.LocalQuorum))
}

func TestPrepareNilSession(t *testing.T) {
	adapter := NewSession(nil)

	_, err := adapter.Prepare(context.Background(), "SELECT a FROM t", cql.Quorum)
	require.Error(t, err)
	assert.Equal(t, types.KindConnectivity, types.KindOf(err))
	assert.ErrorIs(t, err, types.ErrNilSession)
}

func TestConnectRejectsInvalidConfig(t *testing.T) {
	_, err := Connect(&cql.ClusterConfig{})
	require.Error(t, err)
	assert.Equal(t, types.KindProgramming, types.KindOf(err))
}

func TestDriverValues(t *testing.T) {
	id := uuid.New()

	null, err := types.Coerce(nil, types.TargetNone)
	require.NoError(t, err)
	text, err := types.Coerce("hello", types.TargetNone)
	require.NoError(t, err)
	narrow, err := types.Coerce(int8(7), types.TargetNone)
	require.NoError(t, err)
	uid, err := types.Coerce(id, types.TargetNone)
	require.NoError(t, err)

	args := driverValues([]types.Value{{}, null, text, narrow, uid})
	require.Len(t, args, 5)

	assert.Equal(t, gocql.UnsetValue, args[0])
	assert.Nil(t, args[1])
	assert.Equal(t, "hello", args[2])
	// Width is preserved for the driver's marshaler.
	assert.Equal(t, int8(7), args[3])
	// UUIDs cross the driver boundary in textual form.
	assert.Equal(t, id.String(), args[4])
}
