package api

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

type execLine struct {
	conn  int
	query string
}

// execRecorder is a database/sql connector that logs which connection ran
// each statement.
type execRecorder struct {
	mu    sync.Mutex
	next  int
	execs []execLine
}

func (r *execRecorder) Connect(context.Context) (driver.Conn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return &recordingConn{rec: r, id: r.next}, nil
}

func (r *execRecorder) Driver() driver.Driver { return nil }

func (r *execRecorder) lines() []execLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]execLine(nil), r.execs...)
}

type recordingConn struct {
	rec *execRecorder
	id  int
}

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (c *recordingConn) Close() error              { return nil }
func (c *recordingConn) Begin() (driver.Tx, error) { return nil, errors.New("tx not supported") }

func (c *recordingConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.rec.mu.Lock()
	c.rec.execs = append(c.rec.execs, execLine{conn: c.id, query: query})
	c.rec.mu.Unlock()
	return driver.RowsAffected(0), nil
}

func openRecorded(t *testing.T) (*gorm.DB, *sql.DB, *execRecorder) {
	t.Helper()
	rec := &execRecorder{}
	sqlDB := sql.OpenDB(rec)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{ConnPool: sqlDB, Logger: logger.Discard})
	require.NoError(t, err)
	return db, sqlDB, rec
}

func TestAdvisoryLockStaysOnOneConnection(t *testing.T) {
	db, sqlDB, rec := openRecorded(t)

	var held *sql.Conn
	err := withAdvisoryLock(db, 42, func(conn *gorm.DB) error {
		// another caller checks out a pooled connection meanwhile
		var err error
		held, err = sqlDB.Conn(context.Background())
		if err != nil {
			return err
		}
		return conn.Exec("SELECT 1").Error
	})
	require.NoError(t, err)
	require.NoError(t, held.Close())

	lines := rec.lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0].query, "pg_advisory_lock")
	assert.Contains(t, lines[2].query, "pg_advisory_unlock")
	assert.Equal(t, lines[0].conn, lines[1].conn)
	assert.Equal(t, lines[0].conn, lines[2].conn)
}

func TestAdvisoryLockReleasedOnError(t *testing.T) {
	db, _, rec := openRecorded(t)
	boom := errors.New("migrate failed")

	err := withAdvisoryLock(db, 42, func(*gorm.DB) error { return boom })
	assert.ErrorIs(t, err, boom)

	lines := rec.lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1].query, "pg_advisory_unlock")
	assert.Equal(t, lines[0].conn, lines[1].conn)
}
