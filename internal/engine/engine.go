package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/IsseW/line-counter/internal/lang"
	"github.com/IsseW/line-counter/internal/util"
)

// Run はディレクトリツリーを走査し、拡張子ごとの有効行数と総計を返します。
//
// ファイルは互いに独立なのでワーカープールで並列に分類し、拡張子ごとの
// 加算は結合的なため jobs の値によらず結果は逐次実行と一致します。
// 読めないファイルやバイナリは集計に影響せずスキップされます。
func Run(opts Options) (*Result, error) {
	start := time.Now()
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}

	paths, walkErrs := listFiles(opts.Dir, opts.Excludes)
	errs := walkErrs

	type fileCount struct {
		ext   string
		lines int
	}

	jobs := make(chan string)
	results := make(chan fileCount)
	var errsMu sync.Mutex

	prog := util.NewProgress(len(paths), opts.Progress)

	var wg sync.WaitGroup
	nw := opts.Jobs
	if nw > 64 {
		nw = 64
	}
	wg.Add(nw)
	for i := 0; i < nw; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				ext, lines, ferr, ok := countFile(path, opts)
				if ferr != nil {
					errsMu.Lock()
					errs = append(errs, *ferr)
					errsMu.Unlock()
				}
				prog.Advance()
				if !ok {
					continue
				}
				results <- fileCount{ext: ext, lines: lines}
			}
		}()
	}

	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	type tally struct {
		files int
		lines int
	}
	byExt := make(map[string]tally)
	total := 0
	totalFiles := 0
	for fc := range results {
		t := byExt[fc.ext]
		t.files++
		t.lines += fc.lines
		byExt[fc.ext] = t
		total += fc.lines
		totalFiles++
	}
	prog.Done()

	stats := make([]Stat, 0, len(byExt))
	for ext, t := range byExt {
		stats = append(stats, Stat{
			Ext:   ext,
			Name:  lang.DisplayName(ext),
			Files: t.files,
			Lines: t.lines,
		})
	}
	// Ascending by count; ties break by name so output is deterministic.
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Lines == stats[j].Lines {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].Lines < stats[j].Lines
	})

	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Path == errs[j].Path {
			return errs[i].Stage < errs[j].Stage
		}
		return errs[i].Path < errs[j].Path
	})

	return &Result{
		Stats:      stats,
		Total:      total,
		TotalFiles: totalFiles,
		ElapsedMS:  time.Since(start).Milliseconds(),
		Errors:     errs,
		ErrorCount: len(errs),
	}, nil
}

// countFile reads and classifies a single file. ok is false when the file
// does not participate in the tallies (unreadable, binary, or over the size
// cap); only read failures surface as a FileError.
func countFile(path string, opts Options) (ext string, lines int, ferr *FileError, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, &FileError{Path: path, Stage: "read", Message: err.Error()}, false
	}
	if opts.MaxFileBytes > 0 && len(data) > opts.MaxFileBytes {
		return "", 0, nil, false
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return "", 0, nil, false
	}
	ext = lang.ExtensionKey(filepath.Base(path))
	var rules []lang.Rule
	if l, known := lang.Lookup(ext); known {
		rules = l.Rules
	}
	lines = CountLines(string(data), rules, opts.IncludeEmpty, opts.IncludeComments)
	return ext, lines, nil, true
}
