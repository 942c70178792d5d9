package opts

import (
	"fmt"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/IsseW/line-counter/internal/engine"
)

const (
	maxJobs = 64
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults(dir string) engine.Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return engine.Options{
		Dir:             dir,
		IncludeEmpty:    false,
		IncludeComments: false,
		Excludes:        nil,
		Jobs:            jobs,
		MaxFileBytes:    0,
		Progress:        false,
	}
}

// ApplyWebQueryToOptions copies recognised values from the query string into
// the provided options. The walk root is fixed at server startup and cannot
// be overridden per request. Validation happens separately via
// NormalizeAndValidate.
func ApplyWebQueryToOptions(def engine.Options, q url.Values) (engine.Options, error) {
	out := def

	if raw, ok := lastLiteralValue(q["comments"]); ok {
		v, err := ParseBool(raw, "comments")
		if err != nil {
			return out, err
		}
		out.IncludeComments = v
	}
	if raw, ok := lastLiteralValue(q["empty"]); ok {
		v, err := ParseBool(raw, "empty")
		if err != nil {
			return out, err
		}
		out.IncludeEmpty = v
	}
	if raw := q["exclude"]; len(raw) > 0 {
		out.Excludes = SplitMulti(raw)
	}
	if raw, ok := lastLiteralValue(q["jobs"]); ok {
		n, err := ParseIntInRange(raw, "jobs", 1, maxJobs)
		if err != nil {
			return out, err
		}
		out.Jobs = n
	}
	if raw, ok := lastLiteralValue(q["max_file_bytes"]); ok {
		n, err := parseInt(raw, "max_file_bytes")
		if err != nil {
			return out, err
		}
		out.MaxFileBytes = n
	}

	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the
// allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	if strings.TrimSpace(o.Dir) == "" {
		o.Dir = "."
	}
	if o.Jobs < 1 || o.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}
	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must be >= 0")
	}
	o.Excludes = trimSlice(o.Excludes)
	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the CLI/Web output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "table":
		return "table", nil
	case "csv", "md", "ndjson", "json":
		return v, nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
