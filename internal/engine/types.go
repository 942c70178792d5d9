package engine

// Options は 1 回の集計の実行オプション
type Options struct {
	Dir             string   // root directory to walk
	IncludeEmpty    bool     // count blank lines
	IncludeComments bool     // count comment lines (skip comment analysis)
	Excludes        []string // extra ignore-directory names
	Jobs            int      // parallel workers
	MaxFileBytes    int      // skip files larger than this (0 = unlimited)
	Progress        bool
}

// Stat は 1 拡張子分の集計結果
type Stat struct {
	Ext   string `json:"ext"`
	Name  string `json:"name"`
	Files int    `json:"files"`
	Lines int    `json:"lines"`
}

// FileError は 1 ファイルの処理に失敗した際の情報。集計は中断しない。
type FileError struct {
	Path    string `json:"path"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Result は出力
type Result struct {
	Stats      []Stat      `json:"stats"`
	Total      int         `json:"total"`
	TotalFiles int         `json:"total_files"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Errors     []FileError `json:"errors,omitempty"`
	ErrorCount int         `json:"error_count"`
}
