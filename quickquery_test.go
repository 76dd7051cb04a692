package go4sqlite_test

import (
	"testing"

	"github.com/go4sqlite/go4sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickQuery(t *testing.T) {
	t.Run("SelectRows", func(t *testing.T) {
		conn := newTestConn(t)

		actual, err := conn.QuickQuery(
			"SELECT text_col_key, text_col, int_col, float_col FROM Test WHERE int_col = '1' OR int_col == '2'")
		assert.NoError(t, err)

		expect := go4sqlite.SqlTable{
			{{Name: "text_col_key", Value: "row11"}, {Name: "text_col", Value: "one"}, {Name: "int_col", Value: "1"}, {Name: "float_col", Value: "1.1"}},
			{{Name: "text_col_key", Value: "row21"}, {Name: "text_col", Value: "two"}, {Name: "int_col", Value: "2"}, {Name: "float_col", Value: "2.2"}},
		}
		assert.Equal(t, expect, actual)
	})

	t.Run("CompoundWithChangesAlias", func(t *testing.T) {
		conn := newTestConn(t)

		actual, err := conn.QuickQuery(`
			INSERT INTO Test VALUES ('row61', 'son', 6, 6.6, NULL),
			                        ('row611', 'son', 6, 6.6, NULL);
			SELECT Changes() as changes;
			DELETE FROM Test WHERE text_col_key = 'row61' OR text_col_key = 'row611'
		`)
		assert.NoError(t, err)

		expect := go4sqlite.SqlTable{{{Name: "changes", Value: "2"}}}
		assert.Equal(t, expect, actual)
	})

	t.Run("CompoundWithChangesBareName", func(t *testing.T) {
		conn := newTestConn(t)

		actual, err := conn.QuickQuery(`
			INSERT INTO Test VALUES ('row661', 'son', 6, 6.6, NULL),
			                        ('row661x', 'son', 6, 6.6, NULL);
			SELECT Changes()
		`)
		assert.NoError(t, err)

		expect := go4sqlite.SqlTable{{{Name: "Changes()", Value: "2"}}}
		assert.Equal(t, expect, actual)
	})

	t.Run("UniqueViolationFailsWholeCall", func(t *testing.T) {
		conn := newTestConn(t)

		table, err := conn.QuickQuery(`
			INSERT INTO Test
			    (text_col_key, text_col, int_col, float_col)
			    VALUES ('row61', 'son', 6, 6.6),
			           ('row61', 'son', 6, 6.6);
			SELECT COUNT(text_col_key) WHERE text_col_key = 'row61'
		`)

		var queryErr *go4sqlite.QueryError
		assert.ErrorAs(t, err, &queryErr)
		assert.Contains(t, queryErr.Msg, "UNIQUE constraint failed")
		assert.Nil(t, table, "no partial table surfaces")
	})

	t.Run("DiscardsRowsEmittedBeforeFailure", func(t *testing.T) {
		conn := newTestConn(t)

		table, err := conn.QuickQuery(`
			SELECT text_col_key FROM Test;
			INSERT INTO Test VALUES ('row11', 'one', 1, 1.1, NULL)
		`)
		assert.Error(t, err)
		assert.Nil(t, table)
	})

	t.Run("InsertConflictFails", func(t *testing.T) {
		conn := newTestConn(t)

		_, err := conn.QuickQuery("INSERT INTO Test VALUES ('row11', 'one', 1, 1.1, NULL)")
		assert.Error(t, err)
	})

	t.Run("NullInsertDelete", func(t *testing.T) {
		conn := newTestConn(t)

		_, err := conn.QuickQuery("INSERT INTO Test VALUES ('row81', 'son', NULL, 8.8, NULL)")
		assert.NoError(t, err)
		_, err = conn.QuickQuery("DELETE FROM Test WHERE text_col_key = 'row81'")
		assert.NoError(t, err)
	})

	t.Run("SelectedNullIsEmptyString", func(t *testing.T) {
		conn := newTestConn(t)

		actual, err := conn.QuickQuery(
			"SELECT text_col_key, text_col, int_col, float_col FROM Test WHERE int_col IS NULL")
		assert.NoError(t, err)

		expect := go4sqlite.SqlTable{
			{{Name: "text_col_key", Value: "row91"}, {Name: "text_col", Value: "nin"}, {Name: "int_col", Value: ""}, {Name: "float_col", Value: ""}},
		}
		assert.Equal(t, expect, actual)
	})

	t.Run("EmptyValueIsNotNull", func(t *testing.T) {
		conn := newTestConn(t)

		actual, err := conn.QuickQuery(
			"SELECT text_col_key, text_col, int_col, float_col FROM Test WHERE int_col = ''")
		assert.NoError(t, err)
		assert.Empty(t, actual)
	})

	t.Run("NoRowsIsEmptyTable", func(t *testing.T) {
		conn := newTestConn(t)

		actual, err := conn.QuickQuery("DELETE FROM Test WHERE text_col_key = 'no-such-row'")
		require.NoError(t, err)
		assert.NotNil(t, actual)
		assert.Empty(t, actual)
	})
}
