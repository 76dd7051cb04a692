package go4sqlite

// SqlField is one cell of a result row: the column name paired with the
// value rendered as text. NULL values render as the empty string.
type SqlField struct {
	Name  string
	Value string
}

// SqlRow is one result row, one SqlField per column in statement order.
type SqlRow []SqlField

// SqlRowS is one result row as plain string values without column names.
type SqlRowS []string

// SqlTable is an ordered sequence of result rows, as produced by
// Connection.QuickQuery across every SELECT-like statement of a script.
type SqlTable []SqlRow

// Null is a value of type T that may be absent. Typed column reads return
// an invalid Null when the underlying storage is NULL.
type Null[T any] struct {
	V     T
	Valid bool
}

// ValueOr returns the value, or fallback when the Null is invalid.
func (n Null[T]) ValueOr(fallback T) T {
	if !n.Valid {
		return fallback
	}
	return n.V
}
