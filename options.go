package typenv

// DefaultDateLayout is the layout used by Date when none is given,
// equivalent to day-month-year with dashes (e.g. "12-10-2024").
const DefaultDateLayout = "02-01-2006"

const (
	defaultListSeparator = ","
	defaultPairSeparator = ","
	defaultKVSeparator   = ":"
)

type getOptions struct {
	def           any
	hasDefault    bool
	dateLayout    string
	separator     string
	pairSeparator string
	kvSeparator   string
	allowRelative bool
}

// Option adjusts a single Get call (or typed accessor call).
type Option func(*getOptions)

// Default supplies a value returned verbatim when the name is absent.
// No conversion or custom parser is applied to it, so with the typed
// accessors it must already be of the accessor's result type (int64 for
// Int, time.Time for Date, and so on).
func Default(v any) Option {
	return func(o *getOptions) {
		o.def = v
		o.hasDefault = true
	}
}

// DateFormat overrides DefaultDateLayout for Date conversions. The layout
// uses the reference time format of the time package.
func DateFormat(layout string) Option {
	return func(o *getOptions) {
		o.dateLayout = layout
	}
}

// Separator overrides the item separator for List conversions (default ",").
func Separator(sep string) Option {
	return func(o *getOptions) {
		o.separator = sep
	}
}

// PairSeparator overrides the pair separator for Map conversions (default ",").
func PairSeparator(sep string) Option {
	return func(o *getOptions) {
		o.pairSeparator = sep
	}
}

// KVSeparator overrides the key-value separator for Map conversions (default ":").
func KVSeparator(sep string) Option {
	return func(o *getOptions) {
		o.kvSeparator = sep
	}
}

// AllowRelative lets URL conversions accept values without a scheme or
// host. Without it a URL must carry both.
func AllowRelative() Option {
	return func(o *getOptions) {
		o.allowRelative = true
	}
}

func applyOptions(opts []Option) getOptions {
	o := getOptions{
		dateLayout:    DefaultDateLayout,
		separator:     defaultListSeparator,
		pairSeparator: defaultPairSeparator,
		kvSeparator:   defaultKVSeparator,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
