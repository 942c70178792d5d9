package engine

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// defaultIgnoreDirs are build-output directory names that are always pruned.
var defaultIgnoreDirs = []string{"target", "build"}

// listFiles enumerates every regular file under root, pruning directories
// that are hidden (dot-prefixed) or whose name is on the ignore list. Hidden
// files themselves are kept; only hidden path segments above a file exclude
// it. Traversal errors on individual entries are skipped and the walk
// continues.
func listFiles(root string, extraIgnores []string) ([]string, []FileError) {
	ignore := make(map[string]struct{}, len(defaultIgnoreDirs)+len(extraIgnores))
	for _, d := range defaultIgnoreDirs {
		ignore[d] = struct{}{}
	}
	for _, d := range extraIgnores {
		d = strings.TrimSpace(d)
		if d != "" {
			ignore[d] = struct{}{}
		}
	}

	var paths []string
	var errs []FileError
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, FileError{Path: path, Stage: "walk", Message: err.Error()})
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			if _, skip := ignore[name]; skip {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, errs
}
