package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IsseW/line-counter/internal/engine/opts"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".linecount.yaml", "comments: true\nexclude: [vendor, dist]\njobs: 4\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Comments == nil || !*cfg.Comments {
		t.Fatalf("comments not loaded: %+v", cfg)
	}
	if cfg.Excludes == nil || len(*cfg.Excludes) != 2 {
		t.Fatalf("excludes not loaded: %+v", cfg)
	}
	if cfg.Jobs == nil || *cfg.Jobs != 4 {
		t.Fatalf("jobs not loaded: %+v", cfg)
	}
	if cfg.Empty != nil {
		t.Fatalf("unset key must stay nil: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".linecount.toml", "empty = true\noutput = \"csv\"\nmax_file_bytes = 1024\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Empty == nil || !*cfg.Empty {
		t.Fatalf("empty not loaded: %+v", cfg)
	}
	if cfg.Output == nil || *cfg.Output != "csv" {
		t.Fatalf("output not loaded: %+v", cfg)
	}
	if cfg.MaxFileBytes == nil || *cfg.MaxFileBytes != 1024 {
		t.Fatalf("max_file_bytes not loaded: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".linecount.json", `{"dir": "src", "count_comments": "yes"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dir == nil || *cfg.Dir != "src" {
		t.Fatalf("dir not loaded: %+v", cfg)
	}
	// Alias keys and string booleans are accepted.
	if cfg.Comments == nil || !*cfg.Comments {
		t.Fatalf("count_comments alias not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".linecount.yaml", "commments: true\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.ini", "comments=true\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"LINECOUNT_COMMENTS": "1",
		"LINECOUNT_EXCLUDE":  "vendor,node_modules",
		"LINECOUNT_JOBS":     "8",
		"LINECOUNT_SORT":     "-lines",
	}
	cfg, err := FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Comments == nil || !*cfg.Comments {
		t.Fatalf("comments not read: %+v", cfg)
	}
	if cfg.Excludes == nil || len(*cfg.Excludes) != 2 {
		t.Fatalf("excludes not split: %+v", cfg)
	}
	if cfg.Jobs == nil || *cfg.Jobs != 8 {
		t.Fatalf("jobs not read: %+v", cfg)
	}
	if cfg.Sort == nil || *cfg.Sort != "-lines" {
		t.Fatalf("sort not read: %+v", cfg)
	}
}

func TestFromEnvBadValue(t *testing.T) {
	if _, err := FromEnv(func(k string) string {
		if k == "LINECOUNT_EMPTY" {
			return "maybe"
		}
		return ""
	}); err == nil {
		t.Fatal("expected error for invalid bool")
	}
}

func TestMergePrecedence(t *testing.T) {
	base := SettingsFromOptions(opts.Defaults("."))
	fileComments := true
	fileJobs := 2
	envJobs := 6
	file := Config{Comments: &fileComments, Jobs: &fileJobs}
	env := Config{Jobs: &envJobs}

	out := Merge(base, file, env)
	if !out.Comments {
		t.Fatal("file layer lost")
	}
	if out.Jobs != 6 {
		t.Fatalf("env layer should win jobs, got %d", out.Jobs)
	}
	if out.Output != "table" || out.Color != "auto" {
		t.Fatalf("defaults not filled: %+v", out)
	}
}

func TestMergeEmptyListResets(t *testing.T) {
	base := Settings{Excludes: []string{"vendor"}}
	empty := make([]string, 0)
	out := Merge(base, Config{Excludes: &empty})
	if len(out.Excludes) != 0 {
		t.Fatalf("explicit empty list should reset excludes: %v", out.Excludes)
	}
}

func TestFindPrecedence(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeConfig(t, root, ".linecount.yaml", "comments: true\n")

	path, source, err := Find(sub, "", "", "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if source != "cwd-up" {
		t.Fatalf("expected cwd-up source, got %q", source)
	}
	if filepath.Base(path) != ".linecount.yaml" {
		t.Fatalf("unexpected path: %q", path)
	}
}

func TestFindExplicitWins(t *testing.T) {
	root := t.TempDir()
	explicit := writeConfig(t, root, "custom.toml", "empty = true\n")
	writeConfig(t, root, ".linecount.yaml", "comments: true\n")

	path, source, err := Find(root, explicit, "", "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if source != "explicit" || path != explicit {
		t.Fatalf("explicit config not honored: %q %q", path, source)
	}
}

func TestFindXDG(t *testing.T) {
	xdg := t.TempDir()
	dir := filepath.Join(xdg, "linecount")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeConfig(t, dir, "config.toml", "jobs = 2\n")

	path, source, err := Find(t.TempDir(), "", xdg, "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if source != "xdg" {
		t.Fatalf("expected xdg source, got %q (path %q)", source, path)
	}
}

func TestApplyToOptions(t *testing.T) {
	o := opts.Defaults(".")
	s := Settings{Dir: "src", Comments: true, Empty: true, Excludes: []string{"vendor"}, Jobs: 3, MaxFileBytes: 99}
	s.ApplyToOptions(&o)
	if o.Dir != "src" || !o.IncludeComments || !o.IncludeEmpty || o.Jobs != 3 || o.MaxFileBytes != 99 {
		t.Fatalf("settings not applied: %+v", o)
	}
	if len(o.Excludes) != 1 || o.Excludes[0] != "vendor" {
		t.Fatalf("excludes not applied: %+v", o.Excludes)
	}
}
