package maskconfig

import (
	"io"
	"log/slog"
	"time"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

const defaultDebounce = 100 * time.Millisecond

type options struct {
	logger   *slog.Logger
	cache    *mask.Cache
	debounce time.Duration
	onChange func(*Set)
	onError  func(error)
}

// Option configures loading and watching.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.cache == nil {
		o.cache = mask.NewCache()
	}
	return o
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCache shares a compile cache with the loaded sets.
func WithCache(cache *mask.Cache) Option {
	return func(o *options) {
		o.cache = cache
	}
}

// WithDebounce sets how long a Watcher waits for writes to settle before
// reloading. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithOnChange registers the callback a Watcher calls with every set it
// loads, including the initial one.
func WithOnChange(fn func(*Set)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithOnError registers the callback a Watcher calls when a reload fails.
// The previous set stays current.
func WithOnError(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}
