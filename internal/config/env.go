package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/IsseW/line-counter/internal/engine/opts"
)

// FromEnv builds a config layer from LINECOUNT_* environment variables.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setString(&cfg.Dir, "LINECOUNT_DIR")
	setBool(&cfg.Comments, "LINECOUNT_COMMENTS")
	setBool(&cfg.Empty, "LINECOUNT_EMPTY")
	setList(&cfg.Excludes, "LINECOUNT_EXCLUDE")
	// Allow large values here and rely on NormalizeAndValidate to enforce the
	// canonical upper bound so every input path shares the same error message.
	setInt(&cfg.Jobs, "LINECOUNT_JOBS", 0, math.MaxInt)
	setInt(&cfg.MaxFileBytes, "LINECOUNT_MAX_FILE_BYTES", 0, math.MaxInt)
	setString(&cfg.Output, "LINECOUNT_OUTPUT")
	setString(&cfg.Color, "LINECOUNT_COLOR")
	setString(&cfg.Sort, "LINECOUNT_SORT")
	setString(&cfg.Fields, "LINECOUNT_FIELDS")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
