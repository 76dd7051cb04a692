package go4sqlite

import (
	"github.com/go4sqlite/go4sqlite/internal/sqlitec"
	"github.com/orsinium-labs/enum"
)

// ColumnType identifies the storage class of a column value in the current
// row.
type ColumnType enum.Member[string]

var (
	TypeInteger = ColumnType{Value: "integer"}
	TypeFloat   = ColumnType{Value: "float"}
	TypeText    = ColumnType{Value: "text"}
	TypeBlob    = ColumnType{Value: "blob"}
	TypeNull    = ColumnType{Value: "null"}
)

// columnTypeOf maps an engine storage class code to its ColumnType.
func columnTypeOf(code int) ColumnType {
	switch code {
	case sqlitec.TypeInteger:
		return TypeInteger
	case sqlitec.TypeFloat:
		return TypeFloat
	case sqlitec.TypeText:
		return TypeText
	case sqlitec.TypeBlob:
		return TypeBlob
	}
	return TypeNull
}

// ResultColumn wraps one column of the current result row. It borrows the
// statement handle from the Resultset that produced it.
type ResultColumn struct {
	stmt *sqlitec.Stmt
	posn int
	typ  ColumnType
}

// Name returns the column's name.
func (c ResultColumn) Name() string {
	return c.stmt.ColumnName(c.posn)
}

// Type returns the storage class of the column's value in the current row.
func (c ResultColumn) Type() ColumnType {
	return c.typ
}

// Field returns the column as a name/value pair with the value rendered as
// text.
func (c ResultColumn) Field() SqlField {
	return SqlField{Name: c.Name(), Value: c.FieldS()}
}

// FieldS returns the column's value rendered as text. NULL renders as the
// empty string.
func (c ResultColumn) FieldS() string {
	return c.stmt.ColumnText(c.posn)
}

// ColumnValue is the closed set of Go types supported by typed column
// extraction.
type ColumnValue interface {
	int | int32 | int64 | float64 | string
}

// Read extracts the column's value as T. A NULL column yields an invalid
// Null regardless of T. Reading a BLOB column as string returns the raw
// bytes verbatim.
func Read[T ColumnValue](c ResultColumn) Null[T] {
	if c.typ == TypeNull {
		return Null[T]{}
	}

	var out T
	switch p := any(&out).(type) {
	case *int:
		*p = int(c.stmt.ColumnInt64(c.posn))
	case *int32:
		*p = int32(c.stmt.ColumnInt64(c.posn))
	case *int64:
		*p = c.stmt.ColumnInt64(c.posn)
	case *float64:
		*p = c.stmt.ColumnFloat64(c.posn)
	case *string:
		if c.typ == TypeBlob {
			*p = string(c.stmt.ColumnBlob(c.posn))
		} else {
			*p = c.stmt.ColumnText(c.posn)
		}
	}

	return Null[T]{V: out, Valid: true}
}
