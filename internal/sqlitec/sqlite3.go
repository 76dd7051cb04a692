package sqlitec

/*
#cgo LDFLAGS: -lsqlite3
#include <sqlite3.h>
#include <stdlib.h>

static int bind_text_transient(sqlite3_stmt *stmt, int idx, const char *v, int n) {
	return sqlite3_bind_text(stmt, idx, v, n, SQLITE_TRANSIENT);
}

static int bind_blob_transient(sqlite3_stmt *stmt, int idx, const void *v, int n) {
	return sqlite3_bind_blob(stmt, idx, v, n, SQLITE_TRANSIENT);
}
*/
import "C"
import (
	"fmt"
	"strings"
	"unsafe"
)

// OpenFlag is a combination of SQLITE_OPEN_* flags passed to Open.
//
// https://www.sqlite.org/c3ref/c_open_autoproxy.html
type OpenFlag int

const (
	OpenReadOnly     OpenFlag = C.SQLITE_OPEN_READONLY
	OpenReadWrite    OpenFlag = C.SQLITE_OPEN_READWRITE
	OpenCreate       OpenFlag = C.SQLITE_OPEN_CREATE
	OpenURI          OpenFlag = C.SQLITE_OPEN_URI
	OpenMemory       OpenFlag = C.SQLITE_OPEN_MEMORY
	OpenNoMutex      OpenFlag = C.SQLITE_OPEN_NOMUTEX
	OpenFullMutex    OpenFlag = C.SQLITE_OPEN_FULLMUTEX
	OpenSharedCache  OpenFlag = C.SQLITE_OPEN_SHAREDCACHE
	OpenPrivateCache OpenFlag = C.SQLITE_OPEN_PRIVATECACHE
	OpenNoFollow     OpenFlag = C.SQLITE_OPEN_NOFOLLOW
	OpenExResCode    OpenFlag = C.SQLITE_OPEN_EXRESCODE
)

// PrepareFlag is a combination of SQLITE_PREPARE_* flags passed to Prepare.
//
// https://www.sqlite.org/c3ref/c_prepare_normalize.html
type PrepareFlag uint

const (
	PreparePersistent PrepareFlag = C.SQLITE_PREPARE_PERSISTENT
	PrepareNoVtab     PrepareFlag = C.SQLITE_PREPARE_NO_VTAB
)

// Storage classes reported by Stmt.ColumnType.
//
// https://www.sqlite.org/c3ref/c_blob.html
const (
	TypeInteger = C.SQLITE_INTEGER
	TypeFloat   = C.SQLITE_FLOAT
	TypeText    = C.SQLITE_TEXT
	TypeBlob    = C.SQLITE_BLOB
	TypeNull    = C.SQLITE_NULL
)

// Error is a SQLite result code together with the engine's message text
// at the time the failing call returned.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("sqlite: %s", ErrStr(e.Code))
	}
	return fmt.Sprintf("sqlite: %s: %s", ErrStr(e.Code), e.Msg)
}

// ErrStr returns the English-language text that describes a result code.
//
// https://www.sqlite.org/c3ref/errcode.html
func ErrStr(code int) string {
	return C.GoString(C.sqlite3_errstr(C.int(code)))
}

// Conn represents a high-level connection to a SQLite database.
//
// https://www.sqlite.org/c3ref/sqlite3.html
type Conn struct {
	cDB *C.sqlite3
}

// Stmt represents a prepared statement in SQLite.
//
// https://www.sqlite.org/c3ref/stmt.html
type Stmt struct {
	conn  *Conn
	cStmt *C.sqlite3_stmt
}

// Open opens a new SQLite database connection for the given path with the
// given flags. An empty vfs selects the default VFS.
//
// https://www.sqlite.org/c3ref/open.html
func Open(path string, flags OpenFlag, vfs string) (*Conn, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var cVFS *C.char
	if vfs != "" {
		cVFS = C.CString(vfs)
		defer C.free(unsafe.Pointer(cVFS))
	}

	var db *C.sqlite3
	resCode := C.sqlite3_open_v2(cPath, &db, C.int(flags), cVFS)
	if resCode != C.SQLITE_OK {
		msg := ""
		if db != nil {
			msg = C.GoString(C.sqlite3_errmsg(db))
		}
		// The handle is allocated even when open fails and must be closed
		// before the error propagates.
		_ = C.sqlite3_close_v2(db)
		return nil, &Error{Code: int(resCode), Msg: msg}
	}

	return &Conn{cDB: db}, nil
}

// Close finalizes the connection to the SQLite database. It is safe to call
// more than once.
//
// https://www.sqlite.org/c3ref/close.html
func (conn *Conn) Close() error {
	if conn.cDB == nil {
		return nil
	}

	// The sqlite3_close_v2() interface is intended for use with host
	// languages that are garbage collected, and where the order in which
	// destructors are called is arbitrary.
	resCode := C.sqlite3_close_v2(conn.cDB)
	if resCode != C.SQLITE_OK {
		return &Error{Code: int(resCode), Msg: conn.ErrMsg()}
	}
	conn.cDB = nil

	return nil
}

// ErrMsg returns the message text of the most recent failed call on this
// connection.
//
// https://www.sqlite.org/c3ref/errcode.html
func (conn *Conn) ErrMsg() string {
	if conn.cDB == nil {
		return ""
	}
	return C.GoString(C.sqlite3_errmsg(conn.cDB))
}

// ErrCode returns the numeric result code of the most recent failed call on
// this connection.
func (conn *Conn) ErrCode() int {
	if conn.cDB == nil {
		return 0
	}
	return int(C.sqlite3_errcode(conn.cDB))
}

// LastInsertRowID returns the row ID of the most recent successful INSERT
// into the database from the current connection.
//
// https://www.sqlite.org/c3ref/last_insert_rowid.html
func (conn *Conn) LastInsertRowID() int64 {
	return int64(C.sqlite3_last_insert_rowid(conn.cDB))
}

// Changes returns the number of rows modified, inserted, or deleted by the
// most recently completed INSERT, UPDATE, or DELETE statement on the current
// connection.
//
// https://www.sqlite.org/c3ref/changes.html
func (conn *Conn) Changes() int64 {
	return int64(C.sqlite3_changes(conn.cDB))
}

// Autocommit reports whether the connection is in autocommit mode, that is,
// no explicit transaction is currently open.
//
// https://www.sqlite.org/c3ref/get_autocommit.html
func (conn *Conn) Autocommit() bool {
	return C.sqlite3_get_autocommit(conn.cDB) != 0
}

// Prepare compiles the first statement of query and returns it together with
// the unconsumed remainder of the text. The returned Stmt is nil when the
// consumed portion holds no statement (whitespace or comments only).
//
// https://www.sqlite.org/c3ref/prepare.html
func (conn *Conn) Prepare(query string, flags PrepareFlag) (*Stmt, string, error) {
	cQuery := C.CString(query)
	defer C.free(unsafe.Pointer(cQuery))

	var cStmt *C.sqlite3_stmt
	var cTail *C.char
	resCode := C.sqlite3_prepare_v3(conn.cDB, cQuery, C.int(-1), C.uint(flags), &cStmt, &cTail)
	if resCode != C.SQLITE_OK {
		return nil, "", &Error{Code: int(resCode), Msg: conn.ErrMsg()}
	}

	tail := C.GoString(cTail)
	if cStmt == nil {
		return nil, tail, nil
	}
	return &Stmt{conn: conn, cStmt: cStmt}, tail, nil
}

// ExecScript executes every statement of a semicolon-separated script in
// order. For each result row produced by any statement, rowFn receives the
// column names and the values rendered as text (NULL as the empty string).
// A non-nil error from rowFn aborts the script.
//
// This is the per-row callback execution interface of sqlite3_exec expressed
// as a plain closure instead of a C callback trampoline.
//
// https://www.sqlite.org/c3ref/exec.html
func (conn *Conn) ExecScript(query string, rowFn func(names, values []string) error) error {
	remaining := query
	for strings.TrimSpace(remaining) != "" {
		stmt, tail, err := conn.Prepare(remaining, 0)
		if err != nil {
			return err
		}
		remaining = tail
		if stmt == nil {
			continue
		}

		names := make([]string, stmt.ColumnCount())
		for i := range names {
			names[i] = stmt.ColumnName(i)
		}

		for {
			hasRow, err := stmt.Step()
			if err != nil {
				_ = stmt.Finalize()
				return err
			}
			if !hasRow {
				break
			}
			if rowFn == nil {
				continue
			}

			values := make([]string, stmt.DataCount())
			for i := range values {
				values[i] = stmt.ColumnText(i)
			}
			if err := rowFn(names, values); err != nil {
				_ = stmt.Finalize()
				return err
			}
		}

		if err := stmt.Finalize(); err != nil {
			return err
		}
	}

	return nil
}

// BindParameterCount returns the number of SQL parameters in the prepared
// statement.
//
// https://www.sqlite.org/c3ref/bind_parameter_count.html
func (stmt *Stmt) BindParameterCount() int {
	return int(C.sqlite3_bind_parameter_count(stmt.cStmt))
}

// Reset resets the statement so it can be stepped again. Existing bindings
// are kept until overwritten.
//
// https://www.sqlite.org/c3ref/reset.html
func (stmt *Stmt) Reset() error {
	resCode := C.sqlite3_reset(stmt.cStmt)
	if resCode != C.SQLITE_OK {
		return &Error{Code: int(resCode), Msg: stmt.conn.ErrMsg()}
	}
	return nil
}

// BindInt64 binds an int64 parameter at the given 1-based index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindInt64(index int, value int64) error {
	resCode := C.sqlite3_bind_int64(stmt.cStmt, C.int(index), C.sqlite3_int64(value))
	if resCode != C.SQLITE_OK {
		return &Error{Code: int(resCode), Msg: stmt.conn.ErrMsg()}
	}
	return nil
}

// BindFloat64 binds a float64 parameter at the given 1-based index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindFloat64(index int, value float64) error {
	resCode := C.sqlite3_bind_double(stmt.cStmt, C.int(index), C.double(value))
	if resCode != C.SQLITE_OK {
		return &Error{Code: int(resCode), Msg: stmt.conn.ErrMsg()}
	}
	return nil
}

// BindText binds a string parameter as TEXT at the given 1-based index.
// The value must not contain NUL bytes; use BindBlob for those.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindText(index int, value string) error {
	cStr := C.CString(value)
	defer C.free(unsafe.Pointer(cStr))

	resCode := C.bind_text_transient(stmt.cStmt, C.int(index), cStr, C.int(len(value)))
	if resCode != C.SQLITE_OK {
		return &Error{Code: int(resCode), Msg: stmt.conn.ErrMsg()}
	}
	return nil
}

// BindBlob binds a byte slice parameter as a BLOB of exactly len(data) bytes
// at the given 1-based index. An empty slice binds a zero-length blob, not
// NULL.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindBlob(index int, data []byte) error {
	var resCode C.int
	if len(data) == 0 {
		resCode = C.sqlite3_bind_zeroblob(stmt.cStmt, C.int(index), 0)
	} else {
		resCode = C.bind_blob_transient(stmt.cStmt, C.int(index), unsafe.Pointer(&data[0]), C.int(len(data)))
	}
	if resCode != C.SQLITE_OK {
		return &Error{Code: int(resCode), Msg: stmt.conn.ErrMsg()}
	}
	return nil
}

// BindNull binds a NULL value at the given 1-based index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindNull(index int) error {
	resCode := C.sqlite3_bind_null(stmt.cStmt, C.int(index))
	if resCode != C.SQLITE_OK {
		return &Error{Code: int(resCode), Msg: stmt.conn.ErrMsg()}
	}
	return nil
}

// Step advances the statement to the next row of data, returning true if a
// new row is available, or false if the statement has finished executing.
//
// https://www.sqlite.org/c3ref/step.html
func (stmt *Stmt) Step() (bool, error) {
	resCode := C.sqlite3_step(stmt.cStmt)

	switch resCode {
	case C.SQLITE_ROW:
		return true, nil
	case C.SQLITE_DONE:
		return false, nil
	}

	return false, &Error{Code: int(resCode), Msg: stmt.conn.ErrMsg()}
}

// ColumnCount returns the number of columns the statement returns.
//
// https://www.sqlite.org/c3ref/column_count.html
func (stmt *Stmt) ColumnCount() int {
	return int(C.sqlite3_column_count(stmt.cStmt))
}

// DataCount returns the number of columns in the current result row, which
// is zero when no row is available.
//
// https://www.sqlite.org/c3ref/data_count.html
func (stmt *Stmt) DataCount() int {
	return int(C.sqlite3_data_count(stmt.cStmt))
}

// ColumnName returns the name of the column at the given 0-based index.
//
// https://www.sqlite.org/c3ref/column_name.html
func (stmt *Stmt) ColumnName(colIndex int) string {
	return C.GoString(C.sqlite3_column_name(stmt.cStmt, C.int(colIndex)))
}

// ColumnType returns the storage class of the column value at the given
// 0-based index for the current row: one of TypeInteger, TypeFloat,
// TypeText, TypeBlob, or TypeNull.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnType(colIndex int) int {
	return int(C.sqlite3_column_type(stmt.cStmt, C.int(colIndex)))
}

// ColumnInt64 returns the column value at the given index as int64.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnInt64(colIndex int) int64 {
	return int64(C.sqlite3_column_int64(stmt.cStmt, C.int(colIndex)))
}

// ColumnFloat64 returns the column value at the given index as float64.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnFloat64(colIndex int) float64 {
	return float64(C.sqlite3_column_double(stmt.cStmt, C.int(colIndex)))
}

// ColumnText returns the column value at the given index as a string. NULL
// values are returned as the empty string.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnText(colIndex int) string {
	text := (*C.char)(unsafe.Pointer(C.sqlite3_column_text(stmt.cStmt, C.int(colIndex))))
	if text == nil {
		return ""
	}
	length := C.sqlite3_column_bytes(stmt.cStmt, C.int(colIndex))
	return C.GoStringN(text, length)
}

// ColumnBlob returns the column value at the given index as a byte slice.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnBlob(colIndex int) []byte {
	size := C.sqlite3_column_bytes(stmt.cStmt, C.int(colIndex))
	if size <= 0 {
		return nil
	}
	dataPtr := C.sqlite3_column_blob(stmt.cStmt, C.int(colIndex))
	if dataPtr == nil {
		return nil
	}
	return C.GoBytes(dataPtr, size)
}

// Finalize frees the resources associated with this statement. It is safe
// to call more than once.
//
// https://www.sqlite.org/c3ref/finalize.html
func (stmt *Stmt) Finalize() error {
	if stmt.cStmt == nil {
		return nil
	}

	resCode := C.sqlite3_finalize(stmt.cStmt)
	stmt.cStmt = nil
	if resCode != C.SQLITE_OK {
		return &Error{Code: int(resCode), Msg: stmt.conn.ErrMsg()}
	}

	return nil
}
