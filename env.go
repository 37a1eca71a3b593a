package typenv

import (
	"errors"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sagarc03/typenv/dotenv"
)

// ParserFunc converts the raw string value of a single variable. A parser
// registered for a name overrides the built-in converter for that name
// regardless of the kind requested.
type ParserFunc func(raw string) (any, error)

// Env holds an immutable snapshot of the environment plus a registry of
// per-name custom parsers. The snapshot is populated once by New and never
// mutated afterwards, so concurrent reads need no locking. Registry writes
// go through a mutex; if parsers are registered from multiple goroutines
// the registry stays consistent.
type Env struct {
	values map[string]string

	mu      sync.RWMutex
	parsers map[string]ParserFunc
}

type source func(map[string]string) error

// EnvOption configures the sources merged by New.
type EnvOption func(*[]source)

// FromEnviron seeds the environment from os.Environ. This is the default
// source when no option is given to New.
func FromEnviron() EnvOption {
	return func(srcs *[]source) {
		*srcs = append(*srcs, func(values map[string]string) error {
			for _, kv := range os.Environ() {
				if name, value, found := strings.Cut(kv, "="); found {
					values[name] = value
				}
			}
			return nil
		})
	}
}

// FromFile merges a KEY=VALUE file (see the dotenv package for the format).
// An unreadable or malformed file fails New with a *LoadError.
func FromFile(path string) EnvOption {
	return func(srcs *[]source) {
		*srcs = append(*srcs, func(values map[string]string) error {
			loaded, err := dotenv.Load(path)
			if err != nil {
				loadErr := &LoadError{Path: path, Err: err}
				var syntaxErr *dotenv.SyntaxError
				if errors.As(err, &syntaxErr) {
					loadErr.Line = syntaxErr.Line
				}
				return loadErr
			}
			for name, value := range loaded {
				values[name] = value
			}
			return nil
		})
	}
}

// FromMap merges an explicit name-to-value mapping. The map is copied, so
// later changes by the caller do not leak into the Env.
func FromMap(m map[string]string) EnvOption {
	return func(srcs *[]source) {
		*srcs = append(*srcs, func(values map[string]string) error {
			for name, value := range m {
				values[name] = value
			}
			return nil
		})
	}
}

// New builds an Env by merging the given sources exactly once, in the order
// their options appear. A later source overrides earlier values for the
// same name; New(FromEnviron(), FromFile(".env")) therefore lets file
// values win over process values. With no options the process environment
// alone is used.
func New(opts ...EnvOption) (*Env, error) {
	var srcs []source
	for _, opt := range opts {
		opt(&srcs)
	}
	if len(srcs) == 0 {
		FromEnviron()(&srcs)
	}

	values := make(map[string]string)
	for _, src := range srcs {
		if err := src(values); err != nil {
			return nil, err
		}
	}

	return &Env{
		values:  values,
		parsers: make(map[string]ParserFunc),
	}, nil
}

// RegisterParser binds fn to name, overwriting any previous parser for that
// name. The function is not validated here; a nil or failing parser only
// surfaces when the name is accessed.
func (e *Env) RegisterParser(name string, fn ParserFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.parsers[name] = fn
}

func (e *Env) parser(name string) (ParserFunc, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn, ok := e.parsers[name]
	return fn, ok
}

// Lookup returns the raw string value for name and whether it is present.
func (e *Env) Lookup(name string) (string, bool) {
	value, ok := e.values[name]
	return value, ok
}

// Has reports whether name is present in the environment.
func (e *Env) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Names returns every variable name in the environment, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks up name and converts its raw value to kind.
//
// An absent name returns the Default option value verbatim when one was
// supplied, otherwise a *MissingError. When a custom parser is registered
// for name it replaces the built-in converter no matter which kind is
// requested. Every conversion failure, including one raised by a custom
// parser, is wrapped in a *ParseError; the underlying cause is available
// through errors.Unwrap.
func (e *Env) Get(name string, kind Kind, opts ...Option) (any, error) {
	o := applyOptions(opts)

	raw, ok := e.values[name]
	if !ok {
		if o.hasDefault {
			return o.def, nil
		}
		return nil, &MissingError{Name: name}
	}

	if fn, registered := e.parser(name); registered {
		if fn == nil {
			return nil, &ParseError{Name: name, Kind: kind, Raw: raw, Err: errNilParser}
		}
		value, err := fn(raw)
		if err != nil {
			return nil, &ParseError{Name: name, Kind: kind, Raw: raw, Err: err}
		}
		return value, nil
	}

	convert, known := converters[kind]
	if !known {
		return nil, &ParseError{Name: name, Kind: kind, Raw: raw, Err: errUnknownKind}
	}

	value, err := convert(raw, o)
	if err != nil {
		return nil, &ParseError{Name: name, Kind: kind, Raw: raw, Err: err}
	}
	return value, nil
}

var (
	errNilParser   = errors.New("registered parser is nil")
	errUnknownKind = errors.New("unknown kind")
)
