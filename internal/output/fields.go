package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IsseW/line-counter/internal/engine"
)

// Field identifies one column of the tabular outputs.
type Field string

const (
	FieldName  Field = "name"
	FieldExt   Field = "ext"
	FieldFiles Field = "files"
	FieldLines Field = "lines"
)

// FieldSelection is an ordered set of columns to render.
type FieldSelection struct {
	Fields []Field
}

// DefaultFields matches the classic two-column report (name + line count).
func DefaultFields() FieldSelection {
	return FieldSelection{Fields: []Field{FieldName, FieldLines}}
}

// IsDefault reports whether the selection is exactly the classic report.
func (s FieldSelection) IsDefault() bool {
	d := DefaultFields().Fields
	if len(s.Fields) != len(d) {
		return false
	}
	for i := range d {
		if s.Fields[i] != d[i] {
			return false
		}
	}
	return true
}

// ParseFields parses a comma-separated field list. An empty value yields the
// default selection; duplicates and unknown names are errors.
func ParseFields(raw string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultFields(), nil
	}
	seen := make(map[Field]struct{})
	var fields []Field
	for _, piece := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(piece))
		if name == "" {
			continue
		}
		f := Field(name)
		switch f {
		case FieldName, FieldExt, FieldFiles, FieldLines:
		default:
			return FieldSelection{}, fmt.Errorf("unknown field: %s", piece)
		}
		if _, dup := seen[f]; dup {
			return FieldSelection{}, fmt.Errorf("duplicate field: %s", piece)
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return DefaultFields(), nil
	}
	return FieldSelection{Fields: fields}, nil
}

// Headers returns the upper-case column headers for the selection.
func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.ToUpper(string(f))
	}
	return out
}

// RowValues renders one stat as column strings following the selection order.
func RowValues(s engine.Stat, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case FieldName:
			out[i] = s.Name
		case FieldExt:
			out[i] = s.Ext
		case FieldFiles:
			out[i] = strconv.Itoa(s.Files)
		case FieldLines:
			out[i] = strconv.Itoa(s.Lines)
		}
	}
	return out
}
