package go4sqlite

import (
	"github.com/go4sqlite/go4sqlite/internal/sqlitec"
)

// PreparedStatement owns exactly one compiled statement handle. It is
// reusable: every Execute call rebinds its arguments and restarts the
// compiled plan. Closing the statement finalizes the native handle; any
// Resultset derived from it becomes unusable (accesses fail with
// ErrStatementClosed rather than touching the freed handle).
type PreparedStatement struct {
	conn   *Connection
	stmt   *sqlitec.Stmt
	closed bool
}

// Execute binds args in positional order and returns a Resultset positioned
// at the first row, or an empty one when the statement produces no rows.
//
// The argument count must exactly match the statement's declared parameter
// count. Integers, floats, and bools bind as their storage class; strings
// bind as TEXT unless they contain an embedded NUL byte (then BLOB); []byte
// binds as BLOB; a FilePath binds the referenced file's contents as BLOB;
// nil binds NULL. Anything else is an UnsupportedBindTypeError.
func (ps *PreparedStatement) Execute(args ...any) (*Resultset, error) {
	if err := ps.live(); err != nil {
		return nil, err
	}
	if err := newBinder(ps.stmt).bind(args...); err != nil {
		return nil, err
	}
	return newResultset(ps)
}

// ExecuteFile executes the statement with the named file's full contents
// bound as its single BLOB parameter.
func (ps *PreparedStatement) ExecuteFile(path string) (*Resultset, error) {
	return ps.Execute(FilePath(path))
}

// Close finalizes the native statement handle. It is idempotent.
func (ps *PreparedStatement) Close() error {
	if ps.closed {
		return nil
	}
	ps.closed = true
	return ps.stmt.Finalize()
}

// live reports whether the statement and its parent connection are still
// open.
func (ps *PreparedStatement) live() error {
	if ps.conn.closed {
		return ErrConnectionClosed
	}
	if ps.closed {
		return ErrStatementClosed
	}
	return nil
}
