package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/go4sqlite/go4sqlite/internal/log"
	"github.com/go4sqlite/go4sqlite/internal/shell/styled"
	"github.com/jedib0t/go-pretty/v6/table"
)

func cmdQuery(r *Repl, input string) {
	tw := styled.NewTableWriter()

	start := time.Now()
	result, err := r.conn.QuickQuery(input)
	elapsed := time.Since(start)

	if err != nil {
		r.logger.ErrorNs("repl", "query failed", log.KV{
			"query":   input,
			"error":   err.Error(),
			"elapsed": elapsed.String(),
		})

		tw.AppendHeader(table.Row{"Error"})
		tw.AppendRow(table.Row{cleanError(err)})
		fmt.Println(tw.Render())
		return
	}

	r.logger.InfoNs("repl", "query executed", log.KV{
		"query":   input,
		"rows":    len(result),
		"elapsed": elapsed.String(),
	})

	if len(result) == 0 {
		tw.AppendHeader(table.Row{"-", "Rows Affected", "Last Insert ID"})
		tw.AppendRow(table.Row{"OK", r.conn.AffectedRows(), r.conn.LastInsertID()})
		fmt.Println(tw.Render())
		return
	}

	header := table.Row{}
	for _, field := range result[0] {
		header = append(header, field.Name)
	}
	tw.AppendHeader(header)

	for _, row := range result {
		out := table.Row{}
		for _, field := range row {
			out = append(out, field.Value)
		}
		tw.AppendRow(out)
	}

	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("%d row(s) in %s\n", len(result), elapsed)
	fmt.Println()
}

// cleanError removes wrapper prefixes from the error message so the shell
// shows the engine's own text.
func cleanError(err error) string {
	errStr := err.Error()
	errStr = strings.ReplaceAll(errStr, "failed to execute query:", "")
	errStr = strings.ReplaceAll(errStr, "failed to prepare statement:", "")
	return strings.TrimSpace(errStr)
}
