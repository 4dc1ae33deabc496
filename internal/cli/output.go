package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// field is one labelled line of command output.
type field struct {
	Key   string
	Value string
}

// writeFields prints fields as aligned "key: value" lines, or as a JSON
// object in json format. Values are strings so that NaN and Inf survive
// JSON encoding.
func writeFields(w io.Writer, format string, fields []field) error {
	if format == "json" {
		obj := make(map[string]string, len(fields))
		for _, f := range fields {
			obj[f.Key] = f.Value
		}

		return writeJSON(w, obj)
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.Key))
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width+1, f.Key+":", f.Value); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
