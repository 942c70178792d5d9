package output

import (
	"encoding/json"
	"io"

	"github.com/IsseW/line-counter/internal/engine"
)

// WriteNDJSON streams stats as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, stats []engine.Stat) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, s := range stats {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}
