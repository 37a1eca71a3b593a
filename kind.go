package typenv

import "fmt"

// Kind identifies the target type of a conversion. The set of kinds is
// closed: every member is listed in Kinds and has a built-in converter.
type Kind string

const (
	KindString   Kind = "string"
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindBool     Kind = "bool"
	KindDate     Kind = "date"
	KindDuration Kind = "duration"
	KindUUID     Kind = "uuid"
	KindJSON     Kind = "json"
	KindPath     Kind = "path"
	KindURL      Kind = "url"
	KindList     Kind = "list"
	KindMap      Kind = "map"
	KindBytes    Kind = "bytes"
)

// kinds lists every supported Kind in declaration order.
var kinds = []Kind{
	KindString,
	KindInt,
	KindFloat,
	KindBool,
	KindDate,
	KindDuration,
	KindUUID,
	KindJSON,
	KindPath,
	KindURL,
	KindList,
	KindMap,
	KindBytes,
}

// Kinds returns all supported kinds in a stable order. The returned slice
// is a copy and may be modified freely.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func (k Kind) IsValid() bool {
	_, ok := converters[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid kind: %s (valid kinds: %s)", s, kindList())
	}
	return kind, nil
}

func kindList() string {
	s := ""
	for i, k := range kinds {
		if i > 0 {
			s += ", "
		}
		s += string(k)
	}
	return s
}
