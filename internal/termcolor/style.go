package termcolor

// Styler wraps strings in SGR sequences when enabled and passes them through
// untouched otherwise, so callers never branch on the color mode themselves.
type Styler struct {
	enabled bool
}

func NewStyler(enabled bool) Styler {
	return Styler{enabled: enabled}
}

func (s Styler) wrap(code, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

func (s Styler) Bold(text string) string { return s.wrap("1", text) }

func (s Styler) Dim(text string) string { return s.wrap("2", text) }

func (s Styler) Cyan(text string) string { return s.wrap("36", text) }
