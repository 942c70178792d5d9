package config

import "strings"

// Merge folds config layers onto base settings, later layers winning.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Dir = resolveString(out.Dir, layer.Dir)
		out.Comments = resolveBool(out.Comments, layer.Comments)
		out.Empty = resolveBool(out.Empty, layer.Empty)
		out.Excludes = resolveStrings(out.Excludes, layer.Excludes)
		out.Jobs = resolveInt(out.Jobs, layer.Jobs)
		out.MaxFileBytes = resolveInt(out.MaxFileBytes, layer.MaxFileBytes)
		out.Output = resolveAndTrim(out.Output, layer.Output)
		out.Color = resolveAndTrim(out.Color, layer.Color)
		out.Sort = resolveAndTrim(out.Sort, layer.Sort)
		out.Fields = resolveAndTrim(out.Fields, layer.Fields)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

func resolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func resolveInt(def int, values ...*int) int {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func resolveBool(def bool, values ...*bool) bool {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func resolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v != nil {
			if len(*v) == 0 {
				result = []string{}
				continue
			}
			result = cloneStrings(*v)
		}
	}
	return result
}

func resolveAndTrim(def string, values ...*string) string {
	value := resolveString(def, values...)
	return strings.TrimSpace(value)
}
