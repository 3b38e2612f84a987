package prompt

import "log/slog"

// Option configures a Prompt.
type Option func(*Prompt)

// WithDriver overrides the terminal driver.
func WithDriver(driver Driver) Option {
	return func(p *Prompt) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithMessage sets the question shown to the user.
func WithMessage(message string) Option {
	return func(p *Prompt) {
		p.message = message
	}
}

// WithHelp replaces the default help text, which shows the mask placeholder.
func WithHelp(help string) Option {
	return func(p *Prompt) {
		p.help = help
	}
}

// WithDefault pre-fills the answer. The text is formatted before display.
func WithDefault(text string) Option {
	return func(p *Prompt) {
		p.defaultText = text
	}
}

// WithAllowIncomplete accepts answers that leave mandatory slots empty.
func WithAllowIncomplete(allow bool) Option {
	return func(p *Prompt) {
		p.allowIncomplete = allow
	}
}

func WithRightToLeft(enabled bool) Option {
	return func(p *Prompt) {
		p.rightToLeft = enabled
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompt) {
		if logger != nil {
			p.logger = logger
		}
	}
}
