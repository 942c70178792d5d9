package config

import (
	"strings"

	"github.com/IsseW/line-counter/internal/engine"
)

// Config holds one layer of optional settings. Nil fields mean "not set" so
// layers can be merged without clobbering lower-priority values.
type Config struct {
	Dir          *string   `yaml:"dir" toml:"dir" json:"dir"`
	Comments     *bool     `yaml:"comments" toml:"comments" json:"comments"`
	Empty        *bool     `yaml:"empty" toml:"empty" json:"empty"`
	Excludes     *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	Jobs         *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	MaxFileBytes *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Output       *string   `yaml:"output" toml:"output" json:"output"`
	Color        *string   `yaml:"color" toml:"color" json:"color"`
	Sort         *string   `yaml:"sort" toml:"sort" json:"sort"`
	Fields       *string   `yaml:"fields" toml:"fields" json:"fields"`
}

// Settings is the fully resolved configuration after merging all layers.
type Settings struct {
	Dir          string
	Comments     bool
	Empty        bool
	Excludes     []string
	Jobs         int
	MaxFileBytes int
	Output       string
	Color        string
	Sort         string
	Fields       string
}

// SettingsFromOptions seeds the resolved settings from engine defaults.
func SettingsFromOptions(opts engine.Options) Settings {
	return Settings{
		Dir:          opts.Dir,
		Comments:     opts.IncludeComments,
		Empty:        opts.IncludeEmpty,
		Excludes:     cloneStrings(opts.Excludes),
		Jobs:         opts.Jobs,
		MaxFileBytes: opts.MaxFileBytes,
		Output:       "table",
		Color:        "auto",
	}
}

// ApplyToOptions copies the merged settings back onto engine options.
func (s Settings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	if trimmed := strings.TrimSpace(s.Dir); trimmed != "" {
		opts.Dir = trimmed
	}
	opts.IncludeComments = s.Comments
	opts.IncludeEmpty = s.Empty
	opts.Excludes = cloneStrings(s.Excludes)
	opts.Jobs = s.Jobs
	opts.MaxFileBytes = s.MaxFileBytes
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
