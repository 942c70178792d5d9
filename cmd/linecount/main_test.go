package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/IsseW/line-counter/internal/engine"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCountHandler(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.rs", "fn main() {}\n// comment\n\nlet x = 1;\n")
	writeFile(t, dir, "util.py", "# header\nprint(1)\n")
	writeFile(t, dir, "vendor/dep.rs", "fn dep() {}\n")

	h := countHandler(dir)

	t.Run("defaults skip comments and blanks", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/count", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var res engine.Result
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatal(err)
		}
		// main.rs: 2 code lines, vendor/dep.rs: 1, util.py: 1.
		if res.Total != 4 {
			t.Errorf("Total = %d, want 4", res.Total)
		}
		if res.TotalFiles != 3 {
			t.Errorf("TotalFiles = %d, want 3", res.TotalFiles)
		}
	})

	t.Run("comments and empty toggles", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/count?comments=1&empty=1", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var res engine.Result
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatal(err)
		}
		// Raw line counts: 4 + 1 + 2 = 7.
		if res.Total != 7 {
			t.Errorf("Total = %d, want 7", res.Total)
		}
	})

	t.Run("exclude prunes directories", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/count?exclude=vendor", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var res engine.Result
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatal(err)
		}
		if res.TotalFiles != 2 {
			t.Errorf("TotalFiles = %d, want 2", res.TotalFiles)
		}
		if res.Total != 3 {
			t.Errorf("Total = %d, want 3", res.Total)
		}
	})

	t.Run("bad query is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/count?jobs=0", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		rec = httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/count?comments=maybe", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestResolveSettingsEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".linecount.yaml", "comments: true\njobs: 2\n")

	t.Setenv("LINECOUNT_CONFIG", "")
	t.Setenv("LINECOUNT_JOBS", "4")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	settings, err := resolveSettings(".", "")
	if err != nil {
		t.Fatal(err)
	}
	if !settings.Comments {
		t.Error("Comments = false, want true (from file)")
	}
	if settings.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4 (env overrides file)", settings.Jobs)
	}
}
