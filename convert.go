package typenv

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// converters maps every supported Kind to its built-in conversion. The
// table is the single source of truth for Kind.IsValid, so adding a kind
// here (and to the kinds slice) is all a new conversion needs.
var converters = map[Kind]func(raw string, o getOptions) (any, error){
	KindString:   convertString,
	KindInt:      convertInt,
	KindFloat:    convertFloat,
	KindBool:     convertBool,
	KindDate:     convertDate,
	KindDuration: convertDuration,
	KindUUID:     convertUUID,
	KindJSON:     convertJSON,
	KindPath:     convertPath,
	KindURL:      convertURL,
	KindList:     convertList,
	KindMap:      convertMap,
	KindBytes:    convertBytes,
}

func convertString(raw string, _ getOptions) (any, error) {
	return raw, nil
}

func convertInt(raw string, _ getOptions) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func convertFloat(raw string, _ getOptions) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// convertBool matches a fixed token set, case-insensitively. Anything
// outside the set is an error rather than false.
func convertBool(raw string, _ getOptions) (any, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return nil, errors.New(`expected one of "true", "false", "1", "0", "yes", "no"`)
}

func convertDate(raw string, o getOptions) (any, error) {
	t, err := time.Parse(o.dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("expected layout %s: %w", o.dateLayout, err)
	}
	return t, nil
}

// convertDuration accepts the Go duration grammar ("250ms", "1h30m").
// A bare non-zero number has no unit and is rejected as ambiguous; "0"
// needs no unit, matching time.ParseDuration.
func convertDuration(raw string, _ getOptions) (any, error) {
	if _, err := strconv.ParseFloat(raw, 64); err == nil && raw != "0" {
		return nil, errors.New("missing unit (use e.g. 30s, 5m, 1h30m)")
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// convertUUID accepts only the canonical hyphenated 8-4-4-4-12 form,
// which is stricter than uuid.Parse (no braces, no urn: prefix, no
// hyphen-less hex).
func convertUUID(raw string, _ getOptions) (any, error) {
	if len(raw) != 36 || raw[8] != '-' || raw[13] != '-' || raw[18] != '-' || raw[23] != '-' {
		return nil, errors.New("expected canonical form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return id, nil
}

func convertJSON(raw string, _ getOptions) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}
	return value, nil
}

// convertPath is purely syntactic: the path is cleaned, never checked for
// existence.
func convertPath(raw string, _ getOptions) (any, error) {
	if raw == "" {
		return nil, errors.New("empty path")
	}
	return filepath.Clean(raw), nil
}

func convertURL(raw string, o getOptions) (any, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !o.allowRelative && (u.Scheme == "" || u.Host == "") {
		return nil, errors.New("missing scheme or host")
	}
	return u, nil
}

// convertList splits on the configured separator and trims each item.
// An empty raw value is an empty list, not a single empty item.
func convertList(raw string, o getOptions) (any, error) {
	if raw == "" {
		return []string{}, nil
	}
	parts := strings.Split(raw, o.separator)
	items := make([]string, len(parts))
	for i, part := range parts {
		items[i] = strings.TrimSpace(part)
	}
	return items, nil
}

// convertMap splits pairs on the pair separator, then each pair on the
// key-value separator. A pair without the key-value separator fails the
// whole conversion; no partial map is returned.
func convertMap(raw string, o getOptions) (any, error) {
	m := make(map[string]string)
	if raw == "" {
		return m, nil
	}
	for _, pair := range strings.Split(raw, o.pairSeparator) {
		key, value, found := strings.Cut(pair, o.kvSeparator)
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("pair %q is not key%svalue", pair, o.kvSeparator)
		}
		m[key] = strings.TrimSpace(value)
	}
	return m, nil
}

func convertBytes(raw string, _ getOptions) (any, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	return data, nil
}
