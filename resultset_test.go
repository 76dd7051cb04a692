package go4sqlite_test

import (
	"testing"

	"github.com/go4sqlite/go4sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultset(t *testing.T) {
	t.Run("FieldDefaultsToFirstColumn", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn, "SELECT text_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row11")
		field, err := rs.Field(0)
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "text_col", Value: "one"}, field)
	})

	t.Run("FieldByPosition", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn,
			"SELECT text_col, int_col, float_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row21")

		field, err := rs.Field(1)
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "int_col", Value: "2"}, field)

		field, err = rs.Field(2)
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "float_col", Value: "2.2"}, field)

		field, err = rs.Field(0)
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "text_col", Value: "two"}, field, "position access does not move the cursor")
	})

	t.Run("FieldByName", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn,
			"SELECT text_col, int_col, float_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row21")

		field, err := rs.FieldByName("float_col")
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "float_col", Value: "2.2"}, field)

		_, err = rs.FieldByName("no_such_col")
		var notFound *go4sqlite.ColumnNotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, "no_such_col", notFound.Name)
	})

	t.Run("FieldOutOfRange", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn, "SELECT text_col, int_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row11")

		_, err := rs.Field(8)
		var rangeErr *go4sqlite.ColumnRangeError
		assert.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 8, rangeErr.Posn)
		assert.Equal(t, 2, rangeErr.Count)
	})

	t.Run("FieldOnExhaustedResultsetIsEmpty", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn, "SELECT text_col FROM Test WHERE text_col_key = 'no-such-row'")

		rs := execute(t, stmt)
		assert.True(t, rs.Empty())
		assert.Zero(t, rs.CountData())
		assert.Equal(t, 1, rs.CountColumns())

		field, err := rs.Field(0)
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{}, field)
	})

	t.Run("NextFieldSequential", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn,
			"SELECT text_col, int_col, float_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row31")

		field, err := rs.Field(0)
		require.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "text_col", Value: "€tre"}, field)

		field, err = rs.NextField()
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "int_col", Value: "3"}, field)

		field, err = rs.NextField()
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "float_col", Value: "3.3"}, field)

		_, err = rs.NextField()
		var rangeErr *go4sqlite.ColumnRangeError
		assert.ErrorAs(t, err, &rangeErr, "past the last column")
	})

	t.Run("NextFieldOnSingleColumnRow", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn, "SELECT text_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row11")

		_, err := rs.NextField()
		var rangeErr *go4sqlite.ColumnRangeError
		assert.ErrorAs(t, err, &rangeErr, "cursor advances before reading, so column 1 is out of range")
	})

	t.Run("NumberedFieldThenNext", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn,
			"SELECT text_col, int_col, float_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row21")

		// Positioned reads do not move the cursor, so the following
		// NextField still lands on column 1.
		_, err := rs.Field(2)
		require.NoError(t, err)

		field, err := rs.NextField()
		assert.NoError(t, err)
		assert.Equal(t, go4sqlite.SqlField{Name: "int_col", Value: "2"}, field)
	})

	t.Run("FieldS", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn,
			"SELECT text_col, int_col, float_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row31")

		value, err := rs.FieldS(0)
		assert.NoError(t, err)
		assert.Equal(t, "€tre", value)

		value, err = rs.FieldSByName("int_col")
		assert.NoError(t, err)
		assert.Equal(t, "3", value)

		value, err = rs.NextFieldS()
		assert.NoError(t, err)
		assert.Equal(t, "3", value)

		value, err = rs.NextFieldS()
		assert.NoError(t, err)
		assert.Equal(t, "3.3", value)
	})

	t.Run("RowMaterializesAndAdvances", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn,
			"SELECT text_col_key, text_col, int_col, float_col FROM Test WHERE text_col = ? ORDER BY text_col_key")

		rs := execute(t, stmt, "for")

		row, ok, err := rs.Row()
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, go4sqlite.SqlRow{
			{Name: "text_col_key", Value: "row41"},
			{Name: "text_col", Value: "for"},
			{Name: "int_col", Value: "4"},
			{Name: "float_col", Value: "4.4"},
		}, row)

		row, ok, err = rs.Row()
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, go4sqlite.SqlRow{
			{Name: "text_col_key", Value: "row42"},
			{Name: "text_col", Value: "for"},
			{Name: "int_col", Value: "4"},
			{Name: "float_col", Value: "4.4"},
		}, row)

		row, ok, err = rs.Row()
		assert.NoError(t, err)
		assert.False(t, ok, "exhausted")
		assert.Nil(t, row)
	})

	t.Run("RowWithNulls", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn,
			"SELECT text_col, int_col, float_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row91")

		row, ok, err := rs.Row()
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, go4sqlite.SqlRow{
			{Name: "text_col", Value: "nin"},
			{Name: "int_col", Value: ""},
			{Name: "float_col", Value: ""},
		}, row, "NULLs render as empty strings")
	})

	t.Run("RowS", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn,
			"SELECT text_col, int_col, float_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row21")

		row, ok, err := rs.RowS()
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, go4sqlite.SqlRowS{"two", "2", "2.2"}, row)

		row, ok, err = rs.RowS()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, row)
	})

	t.Run("StatementReuseRebindsCleanly", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn, "SELECT text_col FROM Test WHERE text_col_key = ?")

		value, err := execute(t, stmt, "row11").FieldS(0)
		require.NoError(t, err)
		assert.Equal(t, "one", value)

		value, err = execute(t, stmt, "row21").FieldS(0)
		require.NoError(t, err)
		assert.Equal(t, "two", value)

		value, err = execute(t, stmt, "row31").FieldS(0)
		require.NoError(t, err)
		assert.Equal(t, "€tre", value)
	})

	t.Run("CountColumnsSurvivesExhaustion", func(t *testing.T) {
		conn := newTestConn(t)
		stmt := prepare(t, conn, "SELECT text_col, int_col FROM Test WHERE text_col_key = ?")

		rs := execute(t, stmt, "row11")
		assert.Equal(t, 2, rs.CountColumns())
		assert.Equal(t, 2, rs.CountData())

		_, ok, err := rs.Row()
		require.NoError(t, err)
		require.True(t, ok)

		assert.True(t, rs.Empty())
		assert.Equal(t, 2, rs.CountColumns())
		assert.Zero(t, rs.CountData())
	})
}
