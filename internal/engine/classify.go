package engine

import (
	"bufio"
	"strings"

	"github.com/IsseW/line-counter/internal/lang"
)

type scanState int

const (
	stateCode scanState = iota
	stateInBlock
)

// CountLines は 1 ファイル分のソースを走査し、有効行数を返す。
//
// includeEmpty が false の場合、trim 後に空となる行はコメント判定の前に
// 捨てられ、状態機械からは見えない。includeComments が true、または
// rules が空（未知の言語）の場合はコメント解析を行わず残った行を全て数える。
func CountLines(src string, rules []lang.Rule, includeEmpty, includeComments bool) int {
	count := 0
	state := stateCode
	closing := ""
	raw := includeComments || len(rules) == 0

	sc := bufio.NewScanner(strings.NewReader(src))
	buf := make([]byte, 0, 1024*16)
	sc.Buffer(buf, len(src)+1)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !includeEmpty && line == "" {
			continue
		}
		if raw {
			count++
			continue
		}
		if state == stateInBlock {
			idx := strings.Index(line, closing)
			if idx < 0 {
				continue
			}
			if idx+len(closing) != len(line) {
				// Text follows the close marker: the line counts as code.
				// It is not re-scanned for a new comment start.
				count++
			}
			state = stateCode
			closing = ""
			continue
		}
		if matchLine(line, rules, &state, &closing, &count) {
			continue
		}
		count++
	}
	return count
}

// matchLine applies the language's comment rules to one trimmed line while in
// the code state. It returns true when the line was consumed by a rule (the
// caller must not count it); a fired block rule may still have bumped the
// count itself for code preceding the open marker.
func matchLine(line string, rules []lang.Rule, state *scanState, closing *string, count *int) bool {
	for _, r := range rules {
		switch r.Kind {
		case lang.LinePrefix:
			if strings.HasPrefix(line, r.Open) {
				return true
			}
		case lang.BlockRange:
			i := strings.Index(line, r.Open)
			if i < 0 {
				continue
			}
			// The open only fires when no close marker sits before it on the
			// same line; "/* x */ code" closes its own block and stays code.
			if j := strings.Index(line, r.Close); j >= 0 && j >= i {
				continue
			}
			if i > 0 {
				// Code precedes the comment open.
				*count++
			}
			*state = stateInBlock
			*closing = r.Close
			return true
		}
	}
	return false
}
