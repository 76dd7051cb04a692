package repl

import (
	"fmt"

	"github.com/go4sqlite/go4sqlite"
	"github.com/go4sqlite/go4sqlite/internal/shell/styled"
	"github.com/jedib0t/go-pretty/v6/table"
)

// tableExists checks sqlite_master for the given table name with a bound
// parameter, so untrusted names never reach SQL text.
func tableExists(r *Repl, name string) (bool, error) {
	stmt, err := r.conn.Prepare(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`)
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	rs, err := stmt.Execute(name)
	if err != nil {
		return false, err
	}

	count, err := go4sqlite.FieldT[int64](rs)
	if err != nil {
		return false, err
	}
	return count.ValueOr(0) > 0, nil
}

func cmdCount(r *Repl, name string) {
	if name == "" {
		fmt.Println("Usage: .count [table_name]")
		return
	}

	exists, err := tableExists(r, name)
	if err != nil {
		fmt.Println("Failed to count rows:", cleanError(err))
		return
	}
	if !exists {
		fmt.Printf("No such table: %s\n", name)
		return
	}

	cmdQuery(r, fmt.Sprintf(`SELECT COUNT(*) AS count FROM "%s"`, name))
}

func cmdColumns(r *Repl, name string) {
	if name == "" {
		fmt.Println("Usage: .columns [table_name]")
		return
	}

	exists, err := tableExists(r, name)
	if err != nil {
		fmt.Println("Failed to list columns:", cleanError(err))
		return
	}
	if !exists {
		fmt.Printf("No such table: %s\n", name)
		return
	}

	stmt, err := r.conn.Prepare(
		`SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`)
	if err != nil {
		fmt.Println("Failed to list columns:", cleanError(err))
		return
	}
	defer stmt.Close()

	rs, err := stmt.Execute(name)
	if err != nil {
		fmt.Println("Failed to list columns:", cleanError(err))
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Column", "Type", "Not Null", "Primary Key"})

	for {
		row, ok, err := rs.RowS()
		if err != nil {
			fmt.Println("Failed to list columns:", cleanError(err))
			return
		}
		if !ok {
			break
		}
		tw.AppendRow(table.Row{row[0], row[1], row[2] == "1", row[3] != "0"})
	}

	fmt.Println(tw.Render())
}
