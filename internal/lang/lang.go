package lang

import "strings"

// RuleKind は 1 つのコメント規則の形（行頭プレフィックス or 範囲）を表す
type RuleKind int

const (
	// LinePrefix: trimmed 済みの行が Open で始まれば行全体がコメント。
	LinePrefix RuleKind = iota
	// BlockRange: Open から Close まで（複数行にまたがり得る）がコメント。
	BlockRange
)

// Rule はコメント構文 1 件。LinePrefix では Close は空。
type Rule struct {
	Kind  RuleKind
	Open  string
	Close string
}

// Language は拡張子 1 つに対応する言語記述子。Rules は照合順に並ぶ。
type Language struct {
	Name  string
	Rules []Rule
}

func prefix(marker string) Rule {
	return Rule{Kind: LinePrefix, Open: marker}
}

func block(open, close string) Rule {
	return Rule{Kind: BlockRange, Open: open, Close: close}
}

// Lookup returns the descriptor registered for ext. Lookup is case-sensitive:
// "RS" and "rs" are different keys. Absence is a normal outcome, not an error.
func Lookup(ext string) (Language, bool) {
	l, ok := languages[ext]
	return l, ok
}

// ExtensionKey derives the registry key from a file's base name: the
// substring after the last '.', or the whole name when there is no dot.
// "main.rs" -> "rs", "makefile" -> "makefile", ".gitignore" -> "gitignore".
func ExtensionKey(base string) string {
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i+1:]
	}
	return base
}

// DisplayName returns the registered human-readable name for ext, or ext
// itself when the extension is unknown.
func DisplayName(ext string) string {
	if l, ok := languages[ext]; ok {
		return l.Name
	}
	return ext
}
