package repl

import (
	"fmt"

	"github.com/go4sqlite/go4sqlite"
	"github.com/go4sqlite/go4sqlite/internal/shell/styled"
	"github.com/go4sqlite/go4sqlite/internal/util/numutil"
	"github.com/jedib0t/go-pretty/v6/table"
)

// pragmaInt reads a single-value integer PRAGMA through a prepared
// statement.
func pragmaInt(r *Repl, pragma string) (int64, error) {
	stmt, err := r.conn.Prepare("PRAGMA " + pragma)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	rs, err := stmt.Execute()
	if err != nil {
		return 0, err
	}

	value, err := go4sqlite.FieldT[int64](rs)
	if err != nil {
		return 0, err
	}
	return value.ValueOr(0), nil
}

func pragmaText(r *Repl, pragma string) (string, error) {
	stmt, err := r.conn.Prepare("PRAGMA " + pragma)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	rs, err := stmt.Execute()
	if err != nil {
		return "", err
	}
	return rs.FieldS(0)
}

func cmdStats(r *Repl) {
	pageCount, err := pragmaInt(r, "page_count")
	if err != nil {
		fmt.Println("Failed to get stats:", cleanError(err))
		return
	}
	pageSize, err := pragmaInt(r, "page_size")
	if err != nil {
		fmt.Println("Failed to get stats:", cleanError(err))
		return
	}
	freePages, err := pragmaInt(r, "freelist_count")
	if err != nil {
		fmt.Println("Failed to get stats:", cleanError(err))
		return
	}
	journalMode, err := pragmaText(r, "journal_mode")
	if err != nil {
		fmt.Println("Failed to get stats:", cleanError(err))
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Stat", "Value"})
	tw.AppendRows([]table.Row{
		{"Page count", numutil.IntWithCommas(int(pageCount))},
		{"Page size", numutil.IntWithCommas(int(pageSize)) + " bytes"},
		{"Free pages", numutil.IntWithCommas(int(freePages))},
		{"Database size", numutil.IntWithCommas(int(pageCount*pageSize)) + " bytes"},
		{"Journal mode", journalMode},
	})

	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("Database: %s\n", r.conf.DatabasePath)
	fmt.Println()
}
