package controller

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// Reporter prints the non-interactive command results.
type Reporter interface {
	DisplaySession(path m.Path, session *m.Session, progress m.Progress) error
	DisplayHistory(records []m.Record) error
	DisplayText(text []byte) error
}

// TableReporter renders reports as plain tables.
type TableReporter struct {
	out io.Writer
}

// NewTableReporter creates a TableReporter writing to out.
func NewTableReporter(out io.Writer) *TableReporter {
	return &TableReporter{out: out}
}

// DisplaySession prints the header fields and progress of a save file.
func (r *TableReporter) DisplaySession(path m.Path, session *m.Session, progress m.Progress) error {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Field", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.AppendBulk([][]string{
		{"File", string(path)},
		{"Seed", fmt.Sprintf("%d", session.Seed)},
		{"Text length", fmt.Sprintf("%d", session.TextLength)},
		{"Stage", session.State.String()},
		{"Mistakes", fmt.Sprintf("%d", session.Mistakes)},
		{"Word", cursorField(session.WordStart, session.WordLength)},
		{"Character", indexField(session.CharIndex)},
		{"Letters", fmt.Sprintf("%d", progress.Letters)},
		{"Corrupted", fmt.Sprintf("%d", progress.Damaged)},
		{"Restored", fmt.Sprintf("%d", progress.Restored)},
		{"Remaining", fmt.Sprintf("%d", progress.Remaining)},
	})
	table.Render()

	_, err := fmt.Fprintf(r.out, "\n%s", buf.String())

	return err
}

// DisplayHistory prints finished games, newest first.
func (r *TableReporter) DisplayHistory(records []m.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(r.out, "No finished games yet")
		return err
	}

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Finished", "Source", "Seed", "Length", "Mistakes"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	total := 0

	for _, rec := range records {
		table.Append([]string{
			rec.FinishedAt.Local().Format(time.DateTime),
			string(rec.Source),
			fmt.Sprintf("%d", rec.Seed),
			fmt.Sprintf("%d", rec.TextLength),
			fmt.Sprintf("%d", rec.Mistakes),
		})

		total += rec.Mistakes
	}

	table.SetFooter([]string{fmt.Sprintf("Games %d", len(records)), "", "", "", fmt.Sprintf("%d", total)})
	table.Render()

	_, err := fmt.Fprintf(r.out, "\n%s", buf.String())

	return err
}

// DisplayText writes text unchanged.
func (r *TableReporter) DisplayText(text []byte) error {
	_, err := r.out.Write(text)
	return err
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func cursorField(start, length int32) string {
	if start == m.NoSelection {
		return "-"
	}

	return fmt.Sprintf("%d+%d", start, length)
}

func indexField(index int32) string {
	if index == m.NoSelection {
		return "-"
	}

	return fmt.Sprintf("%d", index)
}
