package go4sqlite_test

import (
	"testing"

	"github.com/go4sqlite/go4sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLifetimes(t *testing.T) {
	t.Run("ResultsetAfterStatementClose", func(t *testing.T) {
		conn := newTestConn(t)

		stmt, err := conn.Prepare("SELECT text_col, int_col FROM Test WHERE text_col_key = ?")
		require.NoError(t, err)

		rs := execute(t, stmt, "row11")
		require.NoError(t, stmt.Close())

		_, err = rs.Field(0)
		assert.ErrorIs(t, err, go4sqlite.ErrStatementClosed)

		_, err = rs.NextField()
		assert.ErrorIs(t, err, go4sqlite.ErrStatementClosed)

		_, _, err = rs.Row()
		assert.ErrorIs(t, err, go4sqlite.ErrStatementClosed)

		_, err = go4sqlite.FieldT[string](rs)
		assert.ErrorIs(t, err, go4sqlite.ErrStatementClosed)

		var text go4sqlite.Null[string]
		var number go4sqlite.Null[int]
		_, err = rs.RowT(&text, &number)
		assert.ErrorIs(t, err, go4sqlite.ErrStatementClosed)

		assert.Zero(t, rs.CountData())
	})

	t.Run("ExecuteAfterStatementClose", func(t *testing.T) {
		conn := newTestConn(t)

		stmt, err := conn.Prepare("SELECT text_col FROM Test WHERE text_col_key = ?")
		require.NoError(t, err)
		require.NoError(t, stmt.Close())
		require.NoError(t, stmt.Close(), "close is idempotent")

		_, err = stmt.Execute("row11")
		assert.ErrorIs(t, err, go4sqlite.ErrStatementClosed)
	})

	t.Run("StatementAfterConnectionClose", func(t *testing.T) {
		conn, err := go4sqlite.Open(":memory:", go4sqlite.OpenReadWrite)
		require.NoError(t, err)
		_, err = conn.QuickQuery(createScript)
		require.NoError(t, err)

		stmt, err := conn.Prepare("SELECT text_col FROM Test WHERE text_col_key = ?")
		require.NoError(t, err)

		rs := execute(t, stmt, "row11")
		require.NoError(t, conn.Close())

		_, err = stmt.Execute("row21")
		assert.ErrorIs(t, err, go4sqlite.ErrConnectionClosed)

		_, err = rs.Field(0)
		assert.ErrorIs(t, err, go4sqlite.ErrConnectionClosed)
	})

	t.Run("StatementCloseDoesNotDisturbSiblings", func(t *testing.T) {
		conn := newTestConn(t)

		doomed := prepare(t, conn, "SELECT text_col FROM Test WHERE text_col_key = ?")
		keeper := prepare(t, conn, "SELECT int_col FROM Test WHERE text_col_key = ?")

		require.NoError(t, doomed.Close())

		value, err := execute(t, keeper, "row21").FieldS(0)
		assert.NoError(t, err)
		assert.Equal(t, "2", value)
	})
}
