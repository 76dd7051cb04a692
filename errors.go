package go4sqlite

import (
	"errors"
	"fmt"

	"github.com/go4sqlite/go4sqlite/internal/sqlitec"
)

// Sentinel errors for access through handles whose owner has been closed.
// A Resultset borrows its statement, so any use after PreparedStatement.Close
// (or Connection.Close) fails with one of these instead of touching a freed
// native handle.
var (
	ErrConnectionClosed = errors.New("connection is closed")
	ErrStatementClosed  = errors.New("statement is closed")
)

// OpenError reports that a database could not be opened or created.
type OpenError struct {
	Code int
	Msg  string
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open database: %s", e.Msg)
}

// QueryError reports that a QuickQuery script failed. Rows accumulated
// before the failing statement are discarded.
type QueryError struct {
	Code int
	Msg  string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to execute query: %s", e.Msg)
}

// PrepareError reports that SQL text failed to compile. It carries the
// engine's numeric result code and message.
type PrepareError struct {
	Code int
	Msg  string
}

func (e *PrepareError) Error() string {
	return fmt.Sprintf("failed to prepare statement: %d: %s", e.Code, e.Msg)
}

// BindCountError reports an Execute call whose argument count does not match
// the statement's declared parameter count.
type BindCountError struct {
	Declared int
	Given    int
}

func (e *BindCountError) Error() string {
	if e.Given > e.Declared {
		return fmt.Sprintf("too many bind params: got %d, statement declares %d", e.Given, e.Declared)
	}
	return fmt.Sprintf("too few bind params: got %d, statement declares %d", e.Given, e.Declared)
}

// InvalidPathError reports a FilePath argument whose file could not be read.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid file path %q: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// UnsupportedBindTypeError reports an Execute argument outside the closed
// set of bindable kinds.
type UnsupportedBindTypeError struct {
	Type string
}

func (e *UnsupportedBindTypeError) Error() string {
	return fmt.Sprintf("unsupported bind type %s", e.Type)
}

// StepError reports an engine-level failure while advancing a resultset
// cursor.
type StepError struct {
	Code int
	Msg  string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("failed to step statement: %d: %s", e.Code, e.Msg)
}

// ColumnNotFoundError reports a column name that does not exist in the
// resultset.
type ColumnNotFoundError struct {
	Name string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column name %q not found", e.Name)
}

// ColumnRangeError reports a 0-based column position outside the resultset's
// column range.
type ColumnRangeError struct {
	Posn  int
	Count int
}

func (e *ColumnRangeError) Error() string {
	return fmt.Sprintf("column position %d out of range, resultset has %d columns", e.Posn, e.Count)
}

// TypeCountError reports a RowT call whose destination count does not match
// the data count of the current row.
type TypeCountError struct {
	Columns int
	Types   int
}

func (e *TypeCountError) Error() string {
	if e.Types > e.Columns {
		return fmt.Sprintf("too many types: got %d, row has %d columns", e.Types, e.Columns)
	}
	return fmt.Sprintf("too few types: got %d, row has %d columns", e.Types, e.Columns)
}

// UnsupportedTypeError reports a typed read destination outside the closed
// set of readable kinds.
type UnsupportedTypeError struct {
	Type   string
	Column string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported read type %s for column %q", e.Type, e.Column)
}

// FileExistsError reports a SaveBlobToFile destination that already exists
// when replacement was not requested.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// engineError extracts the result code and message from a sqlitec error,
// falling back to the error text for anything else.
func engineError(err error) (int, string) {
	var sqlErr *sqlitec.Error
	if errors.As(err, &sqlErr) {
		msg := sqlErr.Msg
		if msg == "" {
			msg = sqlitec.ErrStr(sqlErr.Code)
		}
		return sqlErr.Code, msg
	}
	return 0, err.Error()
}
