package field

import "log/slog"

// Option configures a Field.
type Option func(*Field)

// WithAutocomplete toggles appending the literals that follow the caret while
// typing. It is on by default.
func WithAutocomplete(enabled bool) Option {
	return func(f *Field) {
		f.autocomplete = enabled
	}
}

// WithAutoskip toggles trimming dangling literals on deletion. It is on by
// default.
func WithAutoskip(enabled bool) Option {
	return func(f *Field) {
		f.autoskip = enabled
	}
}

// WithRightToLeft makes the field fill its masks from the end of the text.
// The selector must return masks compiled with mask.CompileReversed.
func WithRightToLeft(enabled bool) Option {
	return func(f *Field) {
		f.rightToLeft = enabled
	}
}

// WithInitialValue formats text as soon as the field is built.
func WithInitialValue(text string) Option {
	return func(f *Field) {
		f.initial = text
	}
}

// WithHost sets where formatted text is written back.
func WithHost(host Host) Option {
	return func(f *Field) {
		f.host = host
	}
}

// WithValueListener adds a value listener. Listeners run in the order they
// were added.
func WithValueListener(listener ValueListener) Option {
	return func(f *Field) {
		if listener != nil {
			f.listeners = append(f.listeners, listener)
		}
	}
}

// WithCompletionListener adds a callback that runs whenever the field turns
// complete or incomplete.
func WithCompletionListener(fn func(complete bool)) Option {
	return func(f *Field) {
		if fn != nil {
			f.completion = append(f.completion, fn)
		}
	}
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}
