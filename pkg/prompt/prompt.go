package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-inputmask/pkg/field"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

// Answer is a formatted response.
type Answer struct {
	Formatted string `json:"formatted"`
	Value     string `json:"value"`
	Complete  bool   `json:"complete"`
}

// Prompt asks for one masked value.
type Prompt struct {
	selector        selector.Selector
	driver          Driver
	message         string
	help            string
	defaultText     string
	allowIncomplete bool
	rightToLeft     bool
	logger          *slog.Logger
}

// New builds a Prompt around sel. Without WithDriver it talks to the terminal
// through survey.
func New(sel selector.Selector, opts ...Option) (*Prompt, error) {
	if sel == nil {
		return nil, ErrNoSelector
	}
	p := &Prompt{
		selector: sel,
		message:  "Value",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver()
	}
	return p, nil
}

// Placeholder renders the primary mask of the selector.
func (p *Prompt) Placeholder() (string, error) {
	f, err := p.newField()
	if err != nil {
		return "", err
	}
	return f.Placeholder(), nil
}

// Format runs raw through the selector the way a text field would.
func (p *Prompt) Format(raw string) (Answer, error) {
	f, err := p.newField()
	if err != nil {
		return Answer{}, err
	}
	state, _ := f.SetText(raw)
	return Answer{
		Formatted: state.Text,
		Value:     state.Value,
		Complete:  state.Complete,
	}, nil
}

// Ask reads one answer from the driver. An incomplete answer fails with
// ErrIncomplete unless WithAllowIncomplete is set; the survey driver re-asks
// before it gets that far.
func (p *Prompt) Ask(ctx context.Context) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}

	placeholder, err := p.Placeholder()
	if err != nil {
		return Answer{}, err
	}

	cfg := InputConfig{
		Message:   p.message,
		Help:      p.help,
		Validator: p.validate,
	}
	if cfg.Help == "" {
		cfg.Help = "Format: " + placeholder
	}
	if p.defaultText != "" {
		def, err := p.Format(p.defaultText)
		if err != nil {
			return Answer{}, err
		}
		cfg.Default = def.Formatted
	}

	raw, err := p.driver.Input(ctx, cfg)
	if err != nil {
		return Answer{}, err
	}

	ans, err := p.Format(raw)
	if err != nil {
		return Answer{}, err
	}
	p.logger.Debug("prompt: answer formatted",
		"raw", raw,
		"formatted", ans.Formatted,
		"complete", ans.Complete,
	)
	if !ans.Complete && !p.allowIncomplete {
		return ans, fmt.Errorf("%w: %q does not fill %q", ErrIncomplete, ans.Formatted, placeholder)
	}
	return ans, nil
}

func (p *Prompt) validate(raw string) error {
	if p.allowIncomplete {
		return nil
	}
	ans, err := p.Format(raw)
	if err != nil {
		return err
	}
	if !ans.Complete {
		return fmt.Errorf("%w: %q", ErrIncomplete, ans.Formatted)
	}
	return nil
}

func (p *Prompt) newField() (*field.Field, error) {
	return field.New(p.selector,
		field.WithAutocomplete(false),
		field.WithRightToLeft(p.rightToLeft),
		field.WithLogger(p.logger),
	)
}
