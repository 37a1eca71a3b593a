package typenv

import "fmt"

// LoadError is returned by New when an environment source cannot be read.
// Line is the 1-based line number of a malformed .env line, or 0 when the
// failure is not tied to a specific line (e.g. the file does not exist).
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("typenv: load %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("typenv: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingError is returned when a variable name is absent from the
// environment and no default value was supplied.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("typenv: %s not found in environment", e.Name)
}

// ParseError is returned when a raw value is present but cannot be
// converted to the requested kind. It always carries the original raw
// value and the underlying cause so the failure can be reproduced.
type ParseError struct {
	Name string
	Kind Kind
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("typenv: %s=%q is not a valid %s: %v", e.Name, e.Raw, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
