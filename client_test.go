package cqlbridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlbridge/cqlbridge/types"
)

// countingMetrics records collector calls for assertions.
type countingMetrics struct {
	prepareTotal  int
	prepareErrors int
	bindErrors    int
	executeTotal  int
	executeErrors int
	observations  int
}

func (c *countingMetrics) IncPrepareTotal() { c.prepareTotal++ }

func (c *countingMetrics) IncPrepareError() { c.prepareErrors++ }

func (c *countingMetrics) IncBindError() { c.bindErrors++ }

func (c *countingMetrics) IncExecuteTotal(types.StatementKind) { c.executeTotal++ }

func (c *countingMetrics) IncExecuteError(types.StatementKind) { c.executeErrors++ }

func (c *countingMetrics) ObserveExecuteDuration(types.StatementKind, float64) { c.observations++ }

var _ types.MetricsCollector = (*countingMetrics)(nil)

func TestNewClientRejectsNilSession(t *testing.T) {
	client, err := NewClient(nil)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, types.ErrNilSession)
	assert.Equal(t, types.KindProgramming, types.KindOf(err))
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(newMockSession())
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, types.Quorum, cfg.Consistency)
	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.Metrics)
}

func TestNewClientOptions(t *testing.T) {
	collector := &countingMetrics{}

	client, err := NewClient(newMockSession(),
		WithConsistency(types.LocalQuorum),
		WithMetrics(collector),
	)
	require.NoError(t, err)

	assert.Equal(t, types.LocalQuorum, client.Config().Consistency)
	assert.Same(t, types.MetricsCollector(collector), client.Config().Metrics)
}

func TestNewClientNilOptionValuesFallBackToNop(t *testing.T) {
	client, err := NewClient(newMockSession(),
		WithLogger(nil),
		WithMetrics(nil),
	)
	require.NoError(t, err)

	assert.NotNil(t, client.Config().Logger)
	assert.NotNil(t, client.Config().Metrics)
}

func TestClientCloseClosesStatementsAndSession(t *testing.T) {
	session := newMockSession()
	client, err := NewClient(session)
	require.NoError(t, err)

	stmt, err := client.Prepare(context.Background(), "SELECT a FROM t")
	require.NoError(t, err)

	client.Close()

	assert.True(t, session.closed)
	assert.Equal(t, 1, session.last.released)

	// The statement fails fast after the client closed it.
	_, err = stmt.Exec(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrStatementClosed)
}

func TestClientCloseIsIdempotent(t *testing.T) {
	session := newMockSession()
	client, err := NewClient(session)
	require.NoError(t, err)

	client.Close()
	client.Close()

	assert.True(t, session.closed)
}

func TestPrepareAfterCloseFails(t *testing.T) {
	client, _ := newTestClient(t)
	client.Close()

	_, err := client.Prepare(context.Background(), "SELECT a FROM t")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrClientClosed)
	assert.Equal(t, types.KindProgramming, types.KindOf(err))
}

func TestStatementCloseDetachesFromClient(t *testing.T) {
	client, _ := newTestClient(t)

	stmt, err := client.Prepare(context.Background(), "SELECT a FROM t")
	require.NoError(t, err)

	require.NoError(t, stmt.Close())

	client.mu.Lock()
	_, tracked := client.stmts[stmt]
	client.mu.Unlock()
	assert.False(t, tracked)
}

func TestMetricsFlow(t *testing.T) {
	collector := &countingMetrics{}
	session := newMockSession()

	client, err := NewClient(session, WithMetrics(collector))
	require.NoError(t, err)

	stmt, err := client.Prepare(context.Background(), "INSERT INTO t (a) VALUES (?)")
	require.NoError(t, err)
	assert.Equal(t, 1, collector.prepareTotal)

	// A rejected bind is counted.
	require.Error(t, stmt.SetString(2, "x"))
	assert.Equal(t, 1, collector.bindErrors)

	require.NoError(t, stmt.SetString(1, "x"))
	_, err = stmt.Exec(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, collector.executeTotal)
	assert.Equal(t, 1, collector.observations)
	assert.Equal(t, 0, collector.executeErrors)
}
