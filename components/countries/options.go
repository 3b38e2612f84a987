package countries

import "github.com/goliatone/go-inputmask/pkg/phone"

const (
	defaultRoutePath = "/api/countries"
	defaultLimit     = 20
	maxLimit         = 100
)

// Options configures a Component.
type Options struct {
	RoutePath   string
	SearchParam string
	TextParam   string
	LimitParam  string
	// DefaultLimit applies when a request names no limit; MaxLimit caps it.
	DefaultLimit int
	MaxLimit     int
	// ListAll returns the head of the table for an empty query instead of
	// nothing.
	ListAll bool

	// Countries replaces the bundled table when set. Enabled and Disabled
	// filter it the way phone.WithEnabled and phone.WithDisabled do.
	Countries phone.Countries
	Enabled   []string
	Disabled  []string
}

type OptionFn func(*Options)

// NewOptions applies fns over the defaults. Empty names and out of range
// limits fall back to their defaults.
func NewOptions(fns ...OptionFn) Options {
	var opts Options
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}

	opts.RoutePath = orDefault(opts.RoutePath, defaultRoutePath)
	opts.SearchParam = orDefault(opts.SearchParam, "q")
	opts.TextParam = orDefault(opts.TextParam, "text")
	opts.LimitParam = orDefault(opts.LimitParam, "limit")
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = maxLimit
	}
	if opts.DefaultLimit <= 0 || opts.DefaultLimit > opts.MaxLimit {
		opts.DefaultLimit = min(defaultLimit, opts.MaxLimit)
	}
	return opts
}

// limit resolves the limit of a request. Negative limits select nothing.
func (o Options) limit(requested int) int {
	switch {
	case requested < 0:
		return 0
	case requested == 0:
		return o.DefaultLimit
	default:
		return min(requested, o.MaxLimit)
	}
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) { o.RoutePath = path }
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) { o.SearchParam = name }
}

// WithTextParam renames the parameter carrying a phone number to resolve.
func WithTextParam(name string) OptionFn {
	return func(o *Options) { o.TextParam = name }
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) { o.LimitParam = name }
}

func WithLimits(defaultLimit, maxLimit int) OptionFn {
	return func(o *Options) {
		o.DefaultLimit = defaultLimit
		o.MaxLimit = maxLimit
	}
}

func WithListAll(enabled bool) OptionFn {
	return func(o *Options) { o.ListAll = enabled }
}

// WithCountries serves countries instead of the bundled table.
func WithCountries(countries phone.Countries) OptionFn {
	return func(o *Options) {
		o.Countries = append(phone.Countries(nil), countries...)
	}
}

// WithEnabled keeps only the countries matched by ids (name, ISO code or
// flag).
func WithEnabled(ids ...string) OptionFn {
	return func(o *Options) { o.Enabled = append(o.Enabled, ids...) }
}

// WithDisabled drops the countries matched by ids.
func WithDisabled(ids ...string) OptionFn {
	return func(o *Options) { o.Disabled = append(o.Disabled, ids...) }
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
