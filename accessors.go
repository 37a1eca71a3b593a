package typenv

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// The typed accessors are thin wrappers over Get with the kind fixed.
// Because a custom parser or a Default value may produce any type, each
// accessor checks the result and reports a mismatch as a *ParseError.

func (e *Env) mismatch(name string, kind Kind, got any) *ParseError {
	raw, _ := e.Lookup(name)
	return &ParseError{
		Name: name,
		Kind: kind,
		Raw:  raw,
		Err:  fmt.Errorf("value of type %T cannot be used as %s", got, kind),
	}
}

// Str returns the raw string value for name.
func (e *Env) Str(name string, opts ...Option) (string, error) {
	v, err := e.Get(name, KindString, opts...)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", e.mismatch(name, KindString, v)
	}
	return s, nil
}

// Int parses the value as a base-10 integer.
func (e *Env) Int(name string, opts ...Option) (int64, error) {
	v, err := e.Get(name, KindInt, opts...)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int64)
	if !ok {
		return 0, e.mismatch(name, KindInt, v)
	}
	return n, nil
}

// Float parses the value as a float64.
func (e *Env) Float(name string, opts ...Option) (float64, error) {
	v, err := e.Get(name, KindFloat, opts...)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, e.mismatch(name, KindFloat, v)
	}
	return f, nil
}

// Bool parses the value against the fixed token set true/1/yes and
// false/0/no, case-insensitively.
func (e *Env) Bool(name string, opts ...Option) (bool, error) {
	v, err := e.Get(name, KindBool, opts...)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, e.mismatch(name, KindBool, v)
	}
	return b, nil
}

// Date parses the value as a calendar date using DefaultDateLayout, or the
// layout given with DateFormat.
func (e *Env) Date(name string, opts ...Option) (time.Time, error) {
	v, err := e.Get(name, KindDate, opts...)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, e.mismatch(name, KindDate, v)
	}
	return t, nil
}

// Duration parses the value using the Go duration grammar ("30s", "1h30m").
func (e *Env) Duration(name string, opts ...Option) (time.Duration, error) {
	v, err := e.Get(name, KindDuration, opts...)
	if err != nil {
		return 0, err
	}
	d, ok := v.(time.Duration)
	if !ok {
		return 0, e.mismatch(name, KindDuration, v)
	}
	return d, nil
}

// UUID parses the value as a canonical hyphenated UUID.
func (e *Env) UUID(name string, opts ...Option) (uuid.UUID, error) {
	v, err := e.Get(name, KindUUID, opts...)
	if err != nil {
		return uuid.Nil, err
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, e.mismatch(name, KindUUID, v)
	}
	return id, nil
}

// JSON decodes the raw value into target, which must be a non-nil pointer.
// Unlike Get with KindJSON, the decode shape is chosen by the caller, so a
// registered custom parser is not consulted. There is no default value; an
// absent name is a *MissingError.
func (e *Env) JSON(name string, target any) error {
	raw, ok := e.values[name]
	if !ok {
		return &MissingError{Name: name}
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return &ParseError{Name: name, Kind: KindJSON, Raw: raw, Err: err}
	}
	return nil
}

// Path returns the value as a cleaned filesystem path. Purely syntactic:
// the path is never checked for existence.
func (e *Env) Path(name string, opts ...Option) (string, error) {
	v, err := e.Get(name, KindPath, opts...)
	if err != nil {
		return "", err
	}
	p, ok := v.(string)
	if !ok {
		return "", e.mismatch(name, KindPath, v)
	}
	return p, nil
}

// URL parses the value as a URL. By default the value must carry a scheme
// and a host; pass AllowRelative to accept relative references.
func (e *Env) URL(name string, opts ...Option) (*url.URL, error) {
	v, err := e.Get(name, KindURL, opts...)
	if err != nil {
		return nil, err
	}
	u, ok := v.(*url.URL)
	if !ok {
		return nil, e.mismatch(name, KindURL, v)
	}
	return u, nil
}

// List splits the value on Separator (default ",") and trims each item.
// An empty value is an empty list, never [""].
func (e *Env) List(name string, opts ...Option) ([]string, error) {
	v, err := e.Get(name, KindList, opts...)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]string)
	if !ok {
		return nil, e.mismatch(name, KindList, v)
	}
	return items, nil
}

// Map splits the value into pairs on PairSeparator (default ",") then each
// pair on KVSeparator (default ":"). A malformed pair fails the whole call.
func (e *Env) Map(name string, opts ...Option) (map[string]string, error) {
	v, err := e.Get(name, KindMap, opts...)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]string)
	if !ok {
		return nil, e.mismatch(name, KindMap, v)
	}
	return m, nil
}

// Bytes decodes the value from standard base64.
func (e *Env) Bytes(name string, opts ...Option) ([]byte, error) {
	v, err := e.Get(name, KindBytes, opts...)
	if err != nil {
		return nil, err
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, e.mismatch(name, KindBytes, v)
	}
	return data, nil
}

// Port parses the value as a TCP/UDP port number in [1, 65535].
func (e *Env) Port(name string) (int, error) {
	n, err := e.Int(name)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 65535 {
		raw, _ := e.Lookup(name)
		return 0, &ParseError{
			Name: name,
			Kind: KindInt,
			Raw:  raw,
			Err:  fmt.Errorf("port %d out of range [1, 65535]", n),
		}
	}
	return int(n), nil
}

// OneOf returns the value only when it equals one of the allowed tokens.
func (e *Env) OneOf(name string, allowed ...string) (string, error) {
	s, err := e.Str(name)
	if err != nil {
		return "", err
	}
	for _, candidate := range allowed {
		if s == candidate {
			return s, nil
		}
	}
	raw, _ := e.Lookup(name)
	return "", &ParseError{
		Name: name,
		Kind: KindString,
		Raw:  raw,
		Err:  fmt.Errorf("expected one of %q", allowed),
	}
}
