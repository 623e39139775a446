// Copyright (c) 2025 BVK Chaitanya

package cmdutil

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"text/template"
	"time"

	"github.com/bvk/periods/timerange"
	"github.com/shopspring/decimal"
	"github.com/visvasity/cli"
	"golang.org/x/term"
)

var msPerDay = decimal.NewFromInt(int64(24 * time.Hour / time.Millisecond))

// Row is a named range as printed by the commands.
type Row struct {
	Name  string
	Begin time.Time
	End   time.Time

	// Days is the range duration in days. It is nil for ranges that are
	// unbounded or end at the unreachable time.
	Days *decimal.Decimal
}

type jsonRow struct {
	Name  string           `json:"name"`
	Begin string           `json:"begin,omitempty"`
	End   string           `json:"end,omitempty"`
	Days  *decimal.Decimal `json:"days,omitempty"`
}

// formatTime returns the time in millisecond precision or empty string for
// an unbounded end point. Unlike time.Time's JSON encoding, years beyond 9999
// are allowed.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timerange.Layout)
}

func (r *Row) MarshalJSON() ([]byte, error) {
	v := &jsonRow{
		Name:  r.Name,
		Begin: formatTime(r.Begin),
		End:   formatTime(r.End),
		Days:  r.Days,
	}
	return json.Marshal(v)
}

func NewRow(name string, r *timerange.Range) *Row {
	row := &Row{Name: name, Begin: r.Begin, End: r.End}
	if r.End.Equal(timerange.Unreachable()) {
		return row
	}
	if d, err := r.Duration(); err == nil {
		days := decimal.NewFromInt(d.Milliseconds()).Div(msPerDay).Round(3)
		row.Days = &days
	}
	return row
}

// OutputFlags holds the output format flags.
type OutputFlags struct {
	format       string
	templateForm string
}

func (f *OutputFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.format, "f", "", "Printed output format (table|json|template); defaults to the configured format")
	fset.StringVar(&f.templateForm, "template-form", "", "Golang text/template for printing each row")
}

func isTerminal(w io.Writer) bool {
	fp, ok := w.(*os.File)
	return ok && term.IsTerminal(int(fp.Fd()))
}

// Format returns the selected output format for the writer.
func (f *OutputFlags) Format(ctx context.Context, w io.Writer) string {
	if len(f.format) != 0 {
		return strings.ToLower(f.format)
	}
	if v := Config(ctx).Format; len(v) != 0 {
		return v
	}
	if isTerminal(w) {
		return "table"
	}
	return "json"
}

// Print writes the rows to the command's standard output in the selected
// format.
func (f *OutputFlags) Print(ctx context.Context, rows []*Row) error {
	w := cli.Stdout(ctx)
	switch format := f.Format(ctx, w); format {
	case "json":
		return printJSON(w, rows)
	case "template":
		return f.printTemplate(w, rows)
	case "table":
		return printTable(w, rows)
	default:
		return fmt.Errorf("unknown/invalid print format %q", format)
	}
}

func printJSON(w io.Writer, rows []*Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func (f *OutputFlags) printTemplate(w io.Writer, rows []*Row) error {
	format := "{{.Name}} {{.Begin}} {{.End}}"
	if len(f.templateForm) != 0 {
		format = f.templateForm
	}

	tmpl, err := template.New("print").Parse(format + "\n")
	if err != nil {
		return fmt.Errorf("could not parse print-template: %w", err)
	}

	for _, row := range rows {
		if err := tmpl.Execute(w, row); err != nil {
			return fmt.Errorf("could not execute the format template: %w", err)
		}
	}
	return nil
}

func printTable(w io.Writer, rows []*Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tBegin\tEnd\tDays\t\n")
	for _, row := range rows {
		days := "-"
		if row.Days != nil {
			days = row.Days.StringFixed(3)
		}
		begin, end := formatTime(row.Begin), formatTime(row.End)
		if len(begin) == 0 {
			begin = "-inf"
		}
		if len(end) == 0 {
			end = "+inf"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", row.Name, begin, end, days)
	}
	return tw.Flush()
}
