package output

import (
	"encoding/csv"
	"io"

	"github.com/IsseW/line-counter/internal/engine"
)

// WriteCSV renders stats as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, stats []engine.Stat, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(sel.Fields)); err != nil {
		return err
	}
	for _, s := range stats {
		if err := writer.Write(RowValues(s, sel.Fields)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
