package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/IsseW/line-counter/internal/engine"
)

// sortSpec describes the requested result ordering. The zero value keeps the
// engine's default (lines ascending, name as tie-break).
type sortSpec struct {
	key  string
	desc bool
}

func parseSortSpec(raw string) (sortSpec, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return sortSpec{}, nil
	}
	var spec sortSpec
	if strings.HasPrefix(v, "-") {
		spec.desc = true
		v = v[1:]
	}
	switch v {
	case "lines", "files", "name", "ext":
		spec.key = v
	default:
		return sortSpec{}, fmt.Errorf("invalid --sort: %s", raw)
	}
	return spec, nil
}

func applySort(stats []engine.Stat, spec sortSpec) {
	if spec.key == "" {
		return
	}
	less := func(a, b engine.Stat) bool {
		switch spec.key {
		case "files":
			if a.Files != b.Files {
				return a.Files < b.Files
			}
		case "name":
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		case "ext":
			if a.Ext != b.Ext {
				return a.Ext < b.Ext
			}
		default: // lines
			if a.Lines != b.Lines {
				return a.Lines < b.Lines
			}
		}
		return a.Name < b.Name
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if spec.desc {
			return less(stats[j], stats[i])
		}
		return less(stats[i], stats[j])
	})
}
