package go4sqlite

import (
	"os"

	"github.com/go4sqlite/go4sqlite/internal/sqlitec"
)

// Resultset is the live cursor over the rows produced by executing a
// prepared statement. It borrows the statement handle from its parent
// PreparedStatement and is valid only while the parent stays open.
//
// A Resultset tracks a 0-based current-column cursor for the sequential
// Next* accessors. The cursor rests on column 0 after each fetched row;
// the Next* accessors advance it before reading, so the first Next* call
// on a row reads column 1.
type Resultset struct {
	ps         *PreparedStatement
	stmt       *sqlitec.Stmt
	hasRow     bool
	columnPosn int
	columns    []ResultColumn
}

// newResultset performs the first step and captures column metadata.
func newResultset(ps *PreparedStatement) (*Resultset, error) {
	rs := &Resultset{ps: ps, stmt: ps.stmt}

	count := rs.stmt.ColumnCount()
	rs.columns = make([]ResultColumn, count)
	for i := range rs.columns {
		rs.columns[i] = ResultColumn{stmt: rs.stmt, posn: i, typ: TypeNull}
	}

	if err := rs.step(); err != nil {
		return nil, err
	}
	return rs, nil
}

// step advances the native statement. A row resets the column cursor and
// refreshes the per-row storage-type tags; exhaustion tags every column
// NULL so typed reads on an exhausted resultset stay absent.
func (rs *Resultset) step() error {
	hasRow, err := rs.stmt.Step()
	if err != nil {
		rs.hasRow = false
		code, msg := engineError(err)
		return &StepError{Code: code, Msg: msg}
	}

	rs.hasRow = hasRow
	if hasRow {
		rs.columnPosn = 0
	}
	for i := range rs.columns {
		if hasRow {
			rs.columns[i].typ = columnTypeOf(rs.stmt.ColumnType(i))
		} else {
			rs.columns[i].typ = TypeNull
		}
	}

	return nil
}

func (rs *Resultset) live() error {
	return rs.ps.live()
}

// CountColumns returns the number of columns the statement produces. It is
// fixed for the lifetime of the Resultset.
func (rs *Resultset) CountColumns() int {
	return len(rs.columns)
}

// CountData returns the number of columns in the current row, which is zero
// when no row is available.
func (rs *Resultset) CountData() int {
	if rs.live() != nil {
		return 0
	}
	return rs.stmt.DataCount()
}

// Empty reports whether no row is currently available.
func (rs *Resultset) Empty() bool {
	return !rs.hasRow
}

// posnOf returns the 0-based position of the first column with the given
// name.
func (rs *Resultset) posnOf(name string) (int, error) {
	for i := range rs.columns {
		if rs.columns[i].Name() == name {
			return i, nil
		}
	}
	return 0, &ColumnNotFoundError{Name: name}
}

// fieldAt reads the field at posn without advancing the cursor. An
// exhausted resultset yields an empty field, not an error.
func (rs *Resultset) fieldAt(posn int) (SqlField, error) {
	if !rs.hasRow {
		return SqlField{}, nil
	}
	if posn < 0 || posn >= len(rs.columns) {
		return SqlField{}, &ColumnRangeError{Posn: posn, Count: len(rs.columns)}
	}
	return rs.columns[posn].Field(), nil
}

// Field returns the name/value pair of the column at the given 0-based
// position without advancing the cursor.
func (rs *Resultset) Field(posn int) (SqlField, error) {
	if err := rs.live(); err != nil {
		return SqlField{}, err
	}
	return rs.fieldAt(posn)
}

// FieldByName returns the name/value pair of the first column with the
// given name.
func (rs *Resultset) FieldByName(name string) (SqlField, error) {
	if err := rs.live(); err != nil {
		return SqlField{}, err
	}
	posn, err := rs.posnOf(name)
	if err != nil {
		return SqlField{}, err
	}
	return rs.fieldAt(posn)
}

// NextField advances the column cursor and returns the field it lands on.
// Advancing past the last column is a ColumnRangeError: on a single-column
// row the first NextField call is already a caller programming error.
func (rs *Resultset) NextField() (SqlField, error) {
	if err := rs.live(); err != nil {
		return SqlField{}, err
	}
	rs.columnPosn++
	return rs.fieldAt(rs.columnPosn)
}

// FieldS returns the text value of the column at the given 0-based position
// without advancing the cursor.
func (rs *Resultset) FieldS(posn int) (string, error) {
	field, err := rs.Field(posn)
	return field.Value, err
}

// FieldSByName returns the text value of the first column with the given
// name.
func (rs *Resultset) FieldSByName(name string) (string, error) {
	field, err := rs.FieldByName(name)
	return field.Value, err
}

// NextFieldS advances the column cursor and returns the text value of the
// field it lands on.
func (rs *Resultset) NextFieldS() (string, error) {
	field, err := rs.NextField()
	return field.Value, err
}

// Row materializes every column of the current row as name/value pairs and
// advances to the next row. It returns false when no row was available.
func (rs *Resultset) Row() (SqlRow, bool, error) {
	if err := rs.live(); err != nil {
		return nil, false, err
	}
	if !rs.hasRow {
		return nil, false, nil
	}

	count := rs.stmt.DataCount()
	row := make(SqlRow, count)
	for i := range row {
		row[i] = rs.columns[i].Field()
	}

	if err := rs.step(); err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// RowS materializes every column of the current row as plain string values
// and advances to the next row. It returns false when no row was available.
func (rs *Resultset) RowS() (SqlRowS, bool, error) {
	if err := rs.live(); err != nil {
		return nil, false, err
	}
	if !rs.hasRow {
		return nil, false, nil
	}

	count := rs.stmt.DataCount()
	row := make(SqlRowS, count)
	for i := range row {
		row[i] = rs.columns[i].FieldS()
	}

	if err := rs.step(); err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// SaveBlobToFile writes the raw bytes of the current row's first column to
// the named file and returns the byte count written. If the destination
// exists and replace is false, it fails with a FileExistsError.
func (rs *Resultset) SaveBlobToFile(path string, replace bool) (int, error) {
	if err := rs.live(); err != nil {
		return 0, err
	}

	if _, err := os.Stat(path); err == nil && !replace {
		return 0, &FileExistsError{Path: path}
	}

	data := rs.stmt.ColumnBlob(0)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, err
	}
	return len(data), nil
}
