package cleaner_test

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbcleaner/pkg/catalog"
	"github.com/pseudomuto/dbcleaner/pkg/database"
	"github.com/pseudomuto/dbcleaner/pkg/dialect"
)

type mockConn struct {
	mu        sync.Mutex
	dialect   dialect.Kind
	execFunc  func(string) error
	beginErr  error
	commitErr error
	log       []string
	direct    []string
	inTx      []string
	begins    int
}

func (m *mockConn) Dialect() dialect.Kind { return m.dialect }

func (m *mockConn) Exec(_ context.Context, query string, _ ...any) error {
	m.mu.Lock()
	m.log = append(m.log, query)
	m.direct = append(m.direct, query)
	m.mu.Unlock()

	if m.execFunc != nil {
		return m.execFunc(query)
	}
	return nil
}

func (m *mockConn) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (m *mockConn) Begin(context.Context) (database.Tx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.begins++
	if m.beginErr != nil {
		return nil, m.beginErr
	}

	m.log = append(m.log, database.StmtBegin)
	return &mockTx{conn: m}, nil
}

func (m *mockConn) statements() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.log))
	copy(out, m.log)
	return out
}

type mockTx struct {
	conn *mockConn
}

func (t *mockTx) Exec(_ context.Context, query string, _ ...any) error {
	t.conn.mu.Lock()
	t.conn.log = append(t.conn.log, query)
	t.conn.inTx = append(t.conn.inTx, query)
	t.conn.mu.Unlock()

	if t.conn.execFunc != nil {
		return t.conn.execFunc(query)
	}
	return nil
}

func (t *mockTx) Commit() error {
	t.conn.mu.Lock()
	defer t.conn.mu.Unlock()

	if t.conn.commitErr != nil {
		return t.conn.commitErr
	}

	t.conn.log = append(t.conn.log, database.StmtCommit)
	return nil
}

func (t *mockTx) Rollback() error {
	t.conn.mu.Lock()
	defer t.conn.mu.Unlock()

	t.conn.log = append(t.conn.log, database.StmtRollback)
	return nil
}

type stubCatalog struct {
	tables []string
	err    error
	calls  int
	opts   catalog.Options
}

func (s *stubCatalog) TableNames(_ context.Context, _ database.Conn, opts catalog.Options) ([]string, error) {
	s.calls++
	s.opts = opts
	if s.err != nil {
		return nil, s.err
	}

	out := make([]string, len(s.tables))
	copy(out, s.tables)
	return out, nil
}
