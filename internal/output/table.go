package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/IsseW/line-counter/internal/engine"
	"github.com/IsseW/line-counter/internal/termcolor"
	"github.com/IsseW/line-counter/internal/textutil"
)

// WriteTable renders the report for terminals. The default selection prints
// the classic `<name>: <count>` rows (ascending by count, Total last); wider
// selections get a header row and one padded column per field.
func WriteTable(w io.Writer, res *engine.Result, sel FieldSelection, style termcolor.Styler) error {
	if sel.IsDefault() {
		return writeSummary(w, res, style)
	}
	return writeColumns(w, res, sel, style)
}

func writeSummary(w io.Writer, res *engine.Result, style termcolor.Styler) error {
	for _, s := range res.Stats {
		if _, err := fmt.Fprintf(w, "%s: %d\n", style.Cyan(s.Name), s.Lines); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, style.Bold(fmt.Sprintf("Total: %d", res.Total)))
	return err
}

func writeColumns(w io.Writer, res *engine.Result, sel FieldSelection, style termcolor.Styler) error {
	headers := Headers(sel.Fields)
	rows := make([][]string, 0, len(res.Stats)+1)
	for _, s := range res.Stats {
		rows = append(rows, RowValues(s, sel.Fields))
	}
	rows = append(rows, totalRow(res, sel.Fields))

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := textutil.VisibleWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	pad := func(i int, cell string) string {
		if numericField(sel.Fields[i]) {
			return textutil.PadLeft(cell, widths[i])
		}
		return textutil.PadRight(cell, widths[i])
	}

	line := make([]string, len(headers))
	for i, h := range headers {
		line[i] = pad(i, h)
	}
	if _, err := fmt.Fprintln(w, style.Dim(joinCells(line))); err != nil {
		return err
	}
	for ri, row := range rows {
		for i, cell := range row {
			line[i] = pad(i, cell)
		}
		text := joinCells(line)
		if ri == len(rows)-1 {
			text = style.Bold(text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

func totalRow(res *engine.Result, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case FieldName:
			out[i] = "Total"
		case FieldExt:
			out[i] = ""
		case FieldFiles:
			out[i] = strconv.Itoa(res.TotalFiles)
		case FieldLines:
			out[i] = strconv.Itoa(res.Total)
		}
	}
	return out
}

func numericField(f Field) bool {
	return f == FieldFiles || f == FieldLines
}

func joinCells(cells []string) string {
	out := ""
	for i, c := range cells {
		if i > 0 {
			out += "  "
		}
		out += c
	}
	return out
}
