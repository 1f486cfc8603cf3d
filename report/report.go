// Package report renders scheduler results as plain-text tables.
//
// Every function here is a pure string producer over data returned by
// scheduler.Schedule; nothing is printed unless Write is given a writer.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/jobsched/scheduler"
)

// ErrNilResult is returned by Write when no result is supplied.
var ErrNilResult = errors.New("report: nil result")

// newTable returns a writer with the borderless light style used by all tables.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateRows = false

	return tbl
}

// interval formats a job as "[start,end)$profit".
func interval(j scheduler.Job) string {
	return fmt.Sprintf("[%d,%d)$%d", j.Start, j.End, j.Profit)
}

// Trace renders one row per DP step: row, job, skip, take, predecessor,
// best and whether the job was taken. A missing predecessor prints as "-".
func Trace(steps []scheduler.Step) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "job", "skip", "take", "pred", "best", "taken"})
	for _, s := range steps {
		pred := "-"
		if s.Predecessor >= 0 {
			pred = fmt.Sprint(s.Predecessor + 1)
		}
		taken := ""
		if s.Taken {
			taken = "yes"
		}
		tbl.AppendRow(table.Row{s.Row, interval(s.Job), s.Skip, s.Take, pred, s.Best, taken})
	}

	return tbl.Render()
}

// Selection renders the witness jobs of res with their input positions and
// a total footer. A nil result renders as an empty string.
func Selection(res *scheduler.Result) string {
	if res == nil {
		return ""
	}
	tbl := newTable()
	tbl.AppendHeader(table.Row{"input", "start", "end", "profit"})
	for k, j := range res.Selected {
		tbl.AppendRow(table.Row{res.Indices[k], j.Start, j.End, j.Profit})
	}
	tbl.AppendFooter(table.Row{"", "", "total", res.MaxProfit})

	return tbl.Render()
}

// Write prints the trace (when recorded) followed by the selection.
// Returns ErrNilResult for a nil res and wraps any writer error.
func Write(w io.Writer, res *scheduler.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if len(res.Trace) > 0 {
		if _, err := fmt.Fprintf(w, "DP trace:\n%s\n\n", Trace(res.Trace)); err != nil {
			return fmt.Errorf("report: write trace: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "Selected jobs:\n%s\n", Selection(res)); err != nil {
		return fmt.Errorf("report: write selection: %w", err)
	}

	return nil
}
