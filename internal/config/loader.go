package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/IsseW/line-counter/internal/engine/opts"
)

var keyMap = map[string]string{
	"dir":            "dir",
	"directory":      "dir",
	"comments":       "comments",
	"count_comments": "comments",
	"empty":          "empty",
	"count_empty":    "empty",
	"exclude":        "exclude",
	"excludes":       "exclude",
	"jobs":           "jobs",
	"max_file_bytes": "max_file_bytes",
	"max_bytes":      "max_file_bytes",
	"output":         "output",
	"color":          "color",
	"sort":           "sort",
	"fields":         "fields",
}

// Load reads and decodes a single config file. The format follows the file
// extension; unknown keys are errors so typos never silently change behavior.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	for key, value := range raw {
		canonical, ok := keyMap[normalizeKey(key)]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		if err := assign(canonical, value, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func assign(key string, value any, dst *Config) error {
	switch key {
	case "dir":
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(str)
		dst.Dir = &trimmed
	case "comments":
		b, err := expectBool(value, key)
		if err != nil {
			return err
		}
		dst.Comments = &b
	case "empty":
		b, err := expectBool(value, key)
		if err != nil {
			return err
		}
		dst.Empty = &b
	case "exclude":
		list, err := expectStringList(value, key)
		if err != nil {
			return err
		}
		dst.Excludes = &list
	case "jobs":
		n, err := expectInt(value, key)
		if err != nil {
			return err
		}
		dst.Jobs = &n
	case "max_file_bytes":
		n, err := expectInt(value, key)
		if err != nil {
			return err
		}
		dst.MaxFileBytes = &n
	case "output":
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(str)
		dst.Output = &trimmed
	case "color":
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(str)
		dst.Color = &trimmed
	case "sort":
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(str)
		dst.Sort = &trimmed
	case "fields":
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(str)
		dst.Fields = &trimmed
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return engineopts.SplitMulti([]string{v}), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			str = strings.TrimSpace(str)
			if str == "" {
				continue
			}
			out = append(out, str)
		}
		return out, nil
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
