package main

import (
	"reflect"
	"testing"

	"github.com/IsseW/line-counter/internal/engine"
)

func TestParseSortSpec(t *testing.T) {
	cases := []struct {
		raw     string
		want    sortSpec
		wantErr bool
	}{
		{raw: "", want: sortSpec{}},
		{raw: "lines", want: sortSpec{key: "lines"}},
		{raw: "-lines", want: sortSpec{key: "lines", desc: true}},
		{raw: " Files ", want: sortSpec{key: "files"}},
		{raw: "-NAME", want: sortSpec{key: "name", desc: true}},
		{raw: "ext", want: sortSpec{key: "ext"}},
		{raw: "bogus", wantErr: true},
		{raw: "--lines", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseSortSpec(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseSortSpec(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSortSpec(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseSortSpec(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestApplySort(t *testing.T) {
	base := []engine.Stat{
		{Ext: "rs", Name: "Rust", Files: 2, Lines: 30},
		{Ext: "go", Name: "Go", Files: 5, Lines: 10},
		{Ext: "py", Name: "Python", Files: 1, Lines: 30},
	}

	clone := func() []engine.Stat {
		out := make([]engine.Stat, len(base))
		copy(out, base)
		return out
	}
	names := func(stats []engine.Stat) []string {
		out := make([]string, len(stats))
		for i, s := range stats {
			out[i] = s.Name
		}
		return out
	}

	t.Run("zero value keeps order", func(t *testing.T) {
		stats := clone()
		applySort(stats, sortSpec{})
		if got := names(stats); !reflect.DeepEqual(got, []string{"Rust", "Go", "Python"}) {
			t.Errorf("order changed: %v", got)
		}
	})

	t.Run("lines descending", func(t *testing.T) {
		stats := clone()
		applySort(stats, sortSpec{key: "lines", desc: true})
		if got := names(stats); !reflect.DeepEqual(got, []string{"Rust", "Python", "Go"}) {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("files ascending", func(t *testing.T) {
		stats := clone()
		applySort(stats, sortSpec{key: "files"})
		if got := names(stats); !reflect.DeepEqual(got, []string{"Python", "Rust", "Go"}) {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("name ascending", func(t *testing.T) {
		stats := clone()
		applySort(stats, sortSpec{key: "name"})
		if got := names(stats); !reflect.DeepEqual(got, []string{"Go", "Python", "Rust"}) {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("lines tie breaks by name", func(t *testing.T) {
		stats := clone()
		applySort(stats, sortSpec{key: "lines"})
		if got := names(stats); !reflect.DeepEqual(got, []string{"Go", "Python", "Rust"}) {
			t.Errorf("unexpected order: %v", got)
		}
	})
}
