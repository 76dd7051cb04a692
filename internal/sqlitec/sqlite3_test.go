package sqlitec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Conn {
	t.Helper()
	conn, err := Open(":memory:", OpenReadWrite|OpenCreate, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestSQLiteC(t *testing.T) {
	t.Run("OpenClose", func(t *testing.T) {
		conn, err := Open(":memory:", OpenReadWrite|OpenCreate, "")
		assert.NoError(t, err)
		assert.NotNil(t, conn)
		assert.NoError(t, conn.Close())
		assert.NoError(t, conn.Close(), "close is idempotent")
	})

	t.Run("OpenMissingReadOnly", func(t *testing.T) {
		conn, err := Open("/nonexistent/dir/db.sqlite", OpenReadOnly, "")
		assert.Nil(t, conn)

		var sqlErr *Error
		assert.ErrorAs(t, err, &sqlErr)
		assert.NotZero(t, sqlErr.Code)
	})

	t.Run("PrepareTail", func(t *testing.T) {
		conn := openMemory(t)

		stmt, tail, err := conn.Prepare("CREATE TABLE t (id INTEGER); INSERT INTO t VALUES (1)", 0)
		assert.NoError(t, err)
		assert.NotNil(t, stmt)
		assert.Equal(t, " INSERT INTO t VALUES (1)", tail)
		assert.NoError(t, stmt.Finalize())
	})

	t.Run("PrepareEmpty", func(t *testing.T) {
		conn := openMemory(t)

		stmt, tail, err := conn.Prepare("   -- just a comment", 0)
		assert.NoError(t, err)
		assert.Nil(t, stmt)
		assert.Empty(t, tail)
	})

	t.Run("PrepareSyntaxError", func(t *testing.T) {
		conn := openMemory(t)

		stmt, _, err := conn.Prepare("SEL * FROM nope", 0)
		assert.Nil(t, stmt)

		var sqlErr *Error
		assert.ErrorAs(t, err, &sqlErr)
		assert.NotEmpty(t, sqlErr.Msg)
	})

	t.Run("BindAndColumnRoundTrip", func(t *testing.T) {
		conn := openMemory(t)
		err := conn.ExecScript("CREATE TABLE vals (i INTEGER, f REAL, t TEXT, b BLOB, n TEXT)", nil)
		require.NoError(t, err)

		stmt, _, err := conn.Prepare("INSERT INTO vals VALUES (?, ?, ?, ?, ?)", 0)
		require.NoError(t, err)
		assert.Equal(t, 5, stmt.BindParameterCount())

		blob := []byte{0x48, 0x00, 0x6c}
		assert.NoError(t, stmt.BindInt64(1, 42))
		assert.NoError(t, stmt.BindFloat64(2, 4.4))
		assert.NoError(t, stmt.BindText(3, "€tre"))
		assert.NoError(t, stmt.BindBlob(4, blob))
		assert.NoError(t, stmt.BindNull(5))

		hasRow, err := stmt.Step()
		assert.NoError(t, err)
		assert.False(t, hasRow)
		assert.NoError(t, stmt.Finalize())

		sel, _, err := conn.Prepare("SELECT i, f, t, b, n FROM vals", 0)
		require.NoError(t, err)
		defer sel.Finalize()

		hasRow, err = sel.Step()
		require.NoError(t, err)
		require.True(t, hasRow)

		assert.Equal(t, 5, sel.ColumnCount())
		assert.Equal(t, 5, sel.DataCount())
		assert.Equal(t, "i", sel.ColumnName(0))

		assert.Equal(t, TypeInteger, sel.ColumnType(0))
		assert.Equal(t, TypeFloat, sel.ColumnType(1))
		assert.Equal(t, TypeText, sel.ColumnType(2))
		assert.Equal(t, TypeBlob, sel.ColumnType(3))
		assert.Equal(t, TypeNull, sel.ColumnType(4))

		assert.Equal(t, int64(42), sel.ColumnInt64(0))
		assert.Equal(t, 4.4, sel.ColumnFloat64(1))
		assert.Equal(t, "€tre", sel.ColumnText(2))
		assert.Equal(t, blob, sel.ColumnBlob(3))
		assert.Equal(t, "", sel.ColumnText(4))

		hasRow, err = sel.Step()
		assert.NoError(t, err)
		assert.False(t, hasRow)
		assert.Equal(t, 0, sel.DataCount())
	})

	t.Run("ReuseAfterReset", func(t *testing.T) {
		conn := openMemory(t)
		require.NoError(t, conn.ExecScript("CREATE TABLE r (v INTEGER)", nil))

		stmt, _, err := conn.Prepare("INSERT INTO r VALUES (?)", 0)
		require.NoError(t, err)
		defer stmt.Finalize()

		for i := 0; i < 3; i++ {
			require.NoError(t, stmt.Reset())
			require.NoError(t, stmt.BindInt64(1, int64(i)))
			_, err = stmt.Step()
			require.NoError(t, err)
		}

		assert.Equal(t, int64(1), conn.Changes())
		assert.Equal(t, int64(3), conn.LastInsertRowID())
	})

	t.Run("ExecScriptRows", func(t *testing.T) {
		conn := openMemory(t)

		var rows [][]string
		err := conn.ExecScript(`
			CREATE TABLE s (id INTEGER, name TEXT);
			INSERT INTO s VALUES (1, 'one'), (2, 'two');
			SELECT id, name FROM s ORDER BY id
		`, func(names, values []string) error {
			rows = append(rows, append(names, values...))
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, [][]string{
			{"id", "name", "1", "one"},
			{"id", "name", "2", "two"},
		}, rows)
	})

	t.Run("ExecScriptFailure", func(t *testing.T) {
		conn := openMemory(t)

		err := conn.ExecScript(`
			CREATE TABLE u (id INTEGER PRIMARY KEY);
			INSERT INTO u VALUES (1);
			INSERT INTO u VALUES (1);
			INSERT INTO u VALUES (2)
		`, nil)

		var sqlErr *Error
		assert.ErrorAs(t, err, &sqlErr)

		// The failing statement aborts the script; the trailing insert
		// never runs.
		var count string
		require.NoError(t, conn.ExecScript("SELECT COUNT(*) FROM u", func(_, values []string) error {
			count = values[0]
			return nil
		}))
		assert.Equal(t, "1", count)
	})

	t.Run("Autocommit", func(t *testing.T) {
		conn := openMemory(t)

		assert.True(t, conn.Autocommit())
		require.NoError(t, conn.ExecScript("BEGIN", nil))
		assert.False(t, conn.Autocommit())
		require.NoError(t, conn.ExecScript("ROLLBACK", nil))
		assert.True(t, conn.Autocommit())
	})

	t.Run("FinalizeNilStatement", func(t *testing.T) {
		stmt := &Stmt{}
		assert.NoError(t, stmt.Finalize())
	})
}
