// Package dotenv reads flat KEY=VALUE environment files.
//
// The format is deliberately minimal: one pair per line, blank lines and
// lines starting with '#' are skipped, values are taken verbatim after the
// first '='. There is no quoting, no variable interpolation, and no
// "export" prefix handling. Any other line is a syntax error and fails the
// whole parse; no partial result is returned.
package dotenv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// SyntaxError describes a line that does not fit the KEY=VALUE shape.
type SyntaxError struct {
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: not a KEY=VALUE pair: %q", e.Line, e.Text)
}

// Parse reads KEY=VALUE pairs from r. Keys are trimmed of surrounding
// whitespace; values keep everything after the first '=' untouched except
// a trailing newline. Duplicate keys keep the last value.
func Parse(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(text, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, &SyntaxError{Line: line, Text: text}
		}

		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return values, nil
}

// Load reads the file at path and parses it with Parse.
func Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
