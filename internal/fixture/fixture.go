// Package fixture writes generated documents to disk as JSON. Output is UTF-8
// with HTML escaping disabled so accented fixture values (Camión, Pérez) stay
// readable, matching what the test runner expects to import.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// WriteIndented writes v to path as indented JSON.
func WriteIndented(path string, v any, indent int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// WriteLines writes records to path as newline-delimited JSON, one compact
// object per line.
func WriteLines[T any](path string, records []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
	}
	return f.Close()
}
