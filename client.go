package cqlbridge

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cqlbridge/cqlbridge/adapter/cql"
	"github.com/cqlbridge/cqlbridge/internal/logging"
	"github.com/cqlbridge/cqlbridge/internal/metrics"
	"github.com/cqlbridge/cqlbridge/types"
)

// Client owns one engine session and the prepared statements created on it.
//
// A Client is safe for concurrent use from multiple goroutines: statements
// may be prepared and executed concurrently, each with its own independent
// bound-value store. Individual PreparedStatement instances are not safe
// for concurrent use; see PreparedStatement.
//
// # Lifecycle
//
// Create a client with NewClient() and clean up resources with Close():
//
//	session, _ := v1.Connect(cfg)
//	client, err := cqlbridge.NewClient(session)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
// Close closes every statement still open on the client and then the
// underlying session. After Close, Prepare fails with a programming error.
type Client struct {
	session cql.Session
	config  *ClientConfig
	closed  atomic.Bool

	mu    sync.Mutex
	stmts map[*PreparedStatement]struct{}
}

// NewClient creates a new cqlbridge client on top of an engine session.
//
// Parameters:
//   - session: The engine adapter (e.g. v1.WrapSession(gocqlSession))
//   - opts: Optional configuration options
//
// Returns:
//   - *Client: A new client
//   - error: A programming error when session is nil
func NewClient(session cql.Session, opts ...Option) (*Client, error) {
	if session == nil {
		return nil, types.NewError(types.KindProgramming, "connect", "", types.ErrNilSession)
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	// Ensure logger and metrics are never nil
	if config.Logger == nil {
		config.Logger = logging.NewNopLogger()
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NewNopMetrics()
	}

	return &Client{
		session: session,
		config:  config,
		stmts:   make(map[*PreparedStatement]struct{}),
	}, nil
}

// Prepare registers a query template with the engine and returns a
// statement bound to its handle.
//
// Preparation failures (syntax error, unreachable engine) fail construction
// outright with a classified error; no half-constructed statement is ever
// returned.
//
// Parameters:
//   - ctx: Context for cancellation
//   - stmt: CQL statement with ? placeholders
//
// Returns:
//   - *PreparedStatement: The prepared statement
//   - error: A classified error when preparation fails
func (c *Client) Prepare(ctx context.Context, stmt string) (*PreparedStatement, error) {
	if c.closed.Load() {
		return nil, types.NewError(types.KindProgramming, "prepare", stmt, types.ErrClientClosed)
	}

	c.config.Metrics.IncPrepareTotal()
	c.config.Logger.Debug("preparing statement", "statement", stmt)

	prepared, err := c.session.Prepare(ctx, stmt, c.config.Consistency)
	if err != nil {
		c.config.Metrics.IncPrepareError()

		return nil, err
	}

	ps := &PreparedStatement{
		client:       c,
		prepared:     prepared,
		statement:    stmt,
		placeholders: prepared.Placeholders(),
		kind:         statementKindOf(stmt),
		consistency:  c.config.Consistency,
		logger:       c.config.Logger,
		metrics:      c.config.Metrics,
		binds:        newBindings(prepared.Placeholders()),
	}

	c.mu.Lock()
	c.stmts[ps] = struct{}{}
	c.mu.Unlock()

	c.config.Logger.Debug("prepared statement",
		"statement", stmt,
		"placeholders", ps.placeholders,
		"kind", string(ps.kind),
	)

	return ps, nil
}

// Close closes every open statement and terminates the session.
//
// Close is idempotent. After Close, the client cannot be reused.
func (c *Client) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}

	c.mu.Lock()
	stmts := make([]*PreparedStatement, 0, len(c.stmts))
	for ps := range c.stmts {
		stmts = append(stmts, ps)
	}
	c.mu.Unlock()

	for _, ps := range stmts {
		// Close detaches the statement via removeStatement.
		_ = ps.Close()
	}

	c.session.Close()
}

// Config returns the current client configuration.
//
// Returns:
//   - *ClientConfig: The client's configuration
func (c *Client) Config() *ClientConfig {
	return c.config
}

// Session returns the underlying engine session.
//
// Use with caution - direct access bypasses statement tracking.
//
// Returns:
//   - cql.Session: The raw engine session
func (c *Client) Session() cql.Session {
	return c.session
}

// removeStatement detaches a closed statement from the client.
func (c *Client) removeStatement(ps *PreparedStatement) {
	c.mu.Lock()
	delete(c.stmts, ps)
	c.mu.Unlock()
}
