package go4sqlite

import (
	"fmt"
)

// FieldT extracts the column under the cursor as T. A NULL column, or an
// exhausted resultset, yields an invalid Null.
func FieldT[T ColumnValue](rs *Resultset) (Null[T], error) {
	return FieldTAt[T](rs, rs.columnPosn)
}

// FieldTAt extracts the column at the given 0-based position as T without
// advancing the cursor.
func FieldTAt[T ColumnValue](rs *Resultset, posn int) (Null[T], error) {
	if err := rs.live(); err != nil {
		return Null[T]{}, err
	}
	if !rs.hasRow {
		return Null[T]{}, nil
	}
	if posn < 0 || posn >= len(rs.columns) {
		return Null[T]{}, &ColumnRangeError{Posn: posn, Count: len(rs.columns)}
	}
	return Read[T](rs.columns[posn]), nil
}

// FieldTNamed extracts the first column with the given name as T.
func FieldTNamed[T ColumnValue](rs *Resultset, name string) (Null[T], error) {
	if err := rs.live(); err != nil {
		return Null[T]{}, err
	}
	posn, err := rs.posnOf(name)
	if err != nil {
		return Null[T]{}, err
	}
	return FieldTAt[T](rs, posn)
}

// NextFieldT advances the column cursor and extracts the column it lands on
// as T.
func NextFieldT[T ColumnValue](rs *Resultset) (Null[T], error) {
	if err := rs.live(); err != nil {
		return Null[T]{}, err
	}
	rs.columnPosn++
	return FieldTAt[T](rs, rs.columnPosn)
}

// RowT extracts every column of the current row positionally into the given
// destinations and advances to the next row. Each destination must be a
// *Null[T] for a supported T; a NULL column leaves its destination invalid.
//
// The destination count must equal the row's data count in both directions.
// RowT returns false when no row was available; destinations are then left
// untouched.
func (rs *Resultset) RowT(dests ...any) (bool, error) {
	if err := rs.live(); err != nil {
		return false, err
	}
	if !rs.hasRow {
		return false, nil
	}

	count := rs.stmt.DataCount()
	if len(dests) != count {
		return false, &TypeCountError{Columns: count, Types: len(dests)}
	}

	for i, dest := range dests {
		col := rs.columns[i]
		switch p := dest.(type) {
		case *Null[int]:
			*p = Read[int](col)
		case *Null[int32]:
			*p = Read[int32](col)
		case *Null[int64]:
			*p = Read[int64](col)
		case *Null[float64]:
			*p = Read[float64](col)
		case *Null[string]:
			*p = Read[string](col)
		default:
			return false, &UnsupportedTypeError{
				Type:   fmt.Sprintf("%T", dest),
				Column: col.Name(),
			}
		}
	}

	if err := rs.step(); err != nil {
		return false, err
	}
	return true, nil
}
