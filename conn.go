package go4sqlite

import (
	"github.com/go4sqlite/go4sqlite/internal/sqlitec"
)

// OpenFlag is a combination of engine open flags controlling access mode,
// URI handling, in-memory databases, threading mode, and cache sharing.
type OpenFlag int

const (
	OpenReadOnly     = OpenFlag(sqlitec.OpenReadOnly)
	OpenReadWrite    = OpenFlag(sqlitec.OpenReadWrite)
	OpenCreate       = OpenFlag(sqlitec.OpenCreate)
	OpenURI          = OpenFlag(sqlitec.OpenURI)
	OpenMemory       = OpenFlag(sqlitec.OpenMemory)
	OpenNoMutex      = OpenFlag(sqlitec.OpenNoMutex)
	OpenFullMutex    = OpenFlag(sqlitec.OpenFullMutex)
	OpenSharedCache  = OpenFlag(sqlitec.OpenSharedCache)
	OpenPrivateCache = OpenFlag(sqlitec.OpenPrivateCache)
	OpenNoFollow     = OpenFlag(sqlitec.OpenNoFollow)
	OpenExResCode    = OpenFlag(sqlitec.OpenExResCode)

	// OpenCreateReadWrite opens read-write and creates the database if it
	// does not exist yet.
	OpenCreateReadWrite = OpenReadWrite | OpenCreate
)

// PrepareFlag is a combination of engine prepare flags.
type PrepareFlag uint

const (
	PreparePersistent = PrepareFlag(sqlitec.PreparePersistent)
	PrepareNoVtab     = PrepareFlag(sqlitec.PrepareNoVtab)
)

// Connection owns exactly one native database handle. It is not safe for
// concurrent use; see the package documentation for the threading model.
type Connection struct {
	conn   *sqlitec.Conn
	closed bool
}

// Open opens or creates the database at location according to flags, using
// the default VFS.
func Open(location string, flags OpenFlag) (*Connection, error) {
	return OpenVFS(location, flags, "")
}

// OpenVFS is Open with an explicit VFS name. An empty vfs selects the
// default VFS.
//
// On failure the native handle is closed before the error is returned.
func OpenVFS(location string, flags OpenFlag, vfs string) (*Connection, error) {
	conn, err := sqlitec.Open(location, sqlitec.OpenFlag(flags), vfs)
	if err != nil {
		code, msg := engineError(err)
		return nil, &OpenError{Code: code, Msg: msg}
	}
	return &Connection{conn: conn}, nil
}

// Close releases the native database handle. It is idempotent; operations
// on the connection after Close fail with ErrConnectionClosed.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

// QuickQuery executes one or more semicolon-separated statements in a
// single call, with no parameter binding. Every row produced by every
// SELECT-like statement is accumulated into the returned table, each row
// keeping the column names of its originating statement.
//
// If any statement fails, a QueryError is returned and every row
// accumulated up to that point is discarded: the call either returns a
// complete table or nothing.
func (c *Connection) QuickQuery(query string) (SqlTable, error) {
	if c.closed {
		return nil, ErrConnectionClosed
	}

	table := SqlTable{}
	err := c.conn.ExecScript(query, func(names, values []string) error {
		row := make(SqlRow, len(values))
		for i := range values {
			row[i] = SqlField{Name: names[i], Value: values[i]}
		}
		table = append(table, row)
		return nil
	})
	if err != nil {
		code, msg := engineError(err)
		return nil, &QueryError{Code: code, Msg: msg}
	}

	return table, nil
}

// Prepare compiles the first statement of query into a reusable
// PreparedStatement. The caller owns the statement and must Close it.
func (c *Connection) Prepare(query string, flags ...PrepareFlag) (*PreparedStatement, error) {
	if c.closed {
		return nil, ErrConnectionClosed
	}

	var combined sqlitec.PrepareFlag
	for _, f := range flags {
		combined |= sqlitec.PrepareFlag(f)
	}

	stmt, _, err := c.conn.Prepare(query, combined)
	if err != nil {
		code, msg := engineError(err)
		return nil, &PrepareError{Code: code, Msg: msg}
	}
	if stmt == nil {
		return nil, &PrepareError{Msg: "query holds no SQL statement"}
	}

	return &PreparedStatement{conn: c, stmt: stmt}, nil
}

// AffectedRows returns the number of rows changed by the most recently
// completed INSERT, UPDATE, or DELETE on this connection.
func (c *Connection) AffectedRows() int64 {
	if c.closed {
		return 0
	}
	return c.conn.Changes()
}

// LastInsertID returns the rowid of the most recent successful insert on
// this connection.
func (c *Connection) LastInsertID() int64 {
	if c.closed {
		return 0
	}
	return c.conn.LastInsertRowID()
}

// ErrorText returns the human-readable text of the most recent engine error
// on this connection.
func (c *Connection) ErrorText() string {
	if c.closed {
		return ""
	}
	return c.conn.ErrMsg()
}

// IsAutocommitting reports whether no transaction is currently open.
//
// If certain errors occur on a statement within a multi-statement
// transaction (including SQLITE_FULL, SQLITE_IOERR, SQLITE_NOMEM,
// SQLITE_BUSY, and SQLITE_INTERRUPT) the engine may roll the transaction
// back automatically. Re-checking this after a failing write is the only
// way to find out whether that happened; the wrapper performs no retry or
// rollback detection of its own.
func (c *Connection) IsAutocommitting() bool {
	if c.closed {
		return true
	}
	return c.conn.Autocommit()
}
