package database

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
)

// ErrNoSource is returned by Recorder.Query when the recorder has no
// connection to answer metadata queries.
var ErrNoSource = errors.New("recorder has no source connection for queries")

const (
	// StmtBegin marks the start of a recorded transaction.
	StmtBegin = "BEGIN"

	// StmtCommit marks a recorded commit.
	StmtCommit = "COMMIT"

	// StmtRollback marks a recorded rollback.
	StmtRollback = "ROLLBACK"
)

type (
	// Recorder is a Conn that captures statements instead of executing
	// them. Queries are forwarded to the optional source connection so a
	// dry run can still discover tables from a live database.
	//
	// Transactions are recorded inline as BEGIN, COMMIT and ROLLBACK
	// markers. Statements are kept in the order they were received, which
	// for concurrently dispatched statements is not deterministic.
	Recorder struct {
		mu         sync.Mutex
		dialect    dialect.Kind
		source     Conn
		statements []string
	}

	recorderTx struct {
		r *Recorder
	}
)

// NewRecorder creates a Recorder for the given dialect with no source.
func NewRecorder(kind dialect.Kind) *Recorder {
	return &Recorder{dialect: kind}
}

// NewRecorderFor creates a Recorder that reports source's dialect and
// forwards queries to it.
func NewRecorderFor(source Conn) *Recorder {
	return &Recorder{dialect: source.Dialect(), source: source}
}

// Dialect returns the recorded dialect.
func (r *Recorder) Dialect() dialect.Kind {
	return r.dialect
}

// Exec records the statement.
func (r *Recorder) Exec(_ context.Context, query string, _ ...any) error {
	r.record(query)
	return nil
}

// Query forwards to the source connection.
func (r *Recorder) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	if r.source == nil {
		return nil, ErrNoSource
	}

	return r.source.Query(ctx, query, args...)
}

// Begin records a transaction start.
func (r *Recorder) Begin(context.Context) (Tx, error) {
	r.record(StmtBegin)
	return &recorderTx{r: r}, nil
}

// Statements returns a copy of everything recorded so far.
func (r *Recorder) Statements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.statements))
	copy(out, r.statements)
	return out
}

func (r *Recorder) record(stmt string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statements = append(r.statements, stmt)
}

func (t *recorderTx) Exec(_ context.Context, query string, _ ...any) error {
	t.r.record(query)
	return nil
}

func (t *recorderTx) Commit() error {
	t.r.record(StmtCommit)
	return nil
}

func (t *recorderTx) Rollback() error {
	t.r.record(StmtRollback)
	return nil
}
