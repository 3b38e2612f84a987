package field

import (
	"errors"
	"io"
	"log/slog"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

// ErrNoSelector is returned by New without a selector.
var ErrNoSelector = errors.New("field: selector is required")

type phase uint8

const (
	phaseIdle phase = iota
	phaseApplying
)

func (p phase) String() string {
	if p == phaseApplying {
		return "applying"
	}
	return "idle"
}

// EditState is the outcome of the last applied edit.
type EditState struct {
	Text            string
	Caret           int
	Value           string
	Complete        bool
	TailPlaceholder string
	Mask            *mask.Mask
}

// Field formats one text field. A Field is not safe for concurrent use; all
// calls are expected from the host's UI thread.
type Field struct {
	selector     selector.Selector
	host         Host
	listeners    []ValueListener
	completion   []func(bool)
	autocomplete bool
	autoskip     bool
	rightToLeft  bool
	initial      string
	logger       *slog.Logger

	state    EditState
	phase    phase
	complete bool
}

// New builds a Field around sel.
func New(sel selector.Selector, opts ...Option) (*Field, error) {
	if sel == nil {
		return nil, ErrNoSelector
	}

	f := &Field{
		selector:     sel,
		autocomplete: true,
		autoskip:     true,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	f.state.Mask = sel.Primary()

	if f.initial != "" {
		f.SetText(f.initial)
	}
	return f, nil
}

// State returns the outcome of the last applied edit.
func (f *Field) State() EditState { return f.state }

// TextChanged applies an edit reported by the host. It returns false, leaving
// the state untouched, when the notification arrives while the field is
// writing back a previous edit.
func (f *Field) TextChanged(c Change) (EditState, bool) {
	autocomplete := f.autocomplete && !c.IsDeletion()
	return f.apply("change", mask.CaretString{
		Text:         c.Text,
		Caret:        c.Caret(),
		Gravity:      c.Gravity(),
		Autocomplete: autocomplete,
		Autoskip:     f.autoskip,
	})
}

// Focus reformats the current text with the caret at its end when focus is
// gained and autocomplete is on, so leading literals appear right away.
func (f *Field) Focus(gained bool) (EditState, bool) {
	if !gained || !f.autocomplete {
		return f.state, false
	}
	return f.apply("focus", f.atEnd(f.state.Text))
}

// SetText replaces the text programmatically.
func (f *Field) SetText(text string) (EditState, bool) {
	return f.apply("set", f.atEnd(text))
}

// SetSelector swaps the selector and re-derives the state from the current
// text.
func (f *Field) SetSelector(sel selector.Selector) (EditState, bool) {
	if sel == nil {
		return f.state, false
	}
	f.selector = sel
	if f.state.Text == "" {
		f.state.Mask = sel.Primary()
		return f.state, true
	}
	return f.apply("selector", f.atEnd(f.state.Text))
}

// Placeholder renders the primary mask of the selector.
func (f *Field) Placeholder() string {
	p := f.selector.Primary().Placeholder()
	if f.rightToLeft {
		return mask.ReverseString(p)
	}
	return p
}

// AcceptableTextLength reports the primary mask's AcceptableTextLength.
func (f *Field) AcceptableTextLength() int { return f.selector.Primary().AcceptableTextLength() }

// TotalTextLength reports the primary mask's TotalTextLength.
func (f *Field) TotalTextLength() int { return f.selector.Primary().TotalTextLength() }

// AcceptableValueLength reports the primary mask's AcceptableValueLength.
func (f *Field) AcceptableValueLength() int { return f.selector.Primary().AcceptableValueLength() }

// TotalValueLength reports the primary mask's TotalValueLength.
func (f *Field) TotalValueLength() int { return f.selector.Primary().TotalValueLength() }

func (f *Field) atEnd(text string) mask.CaretString {
	return mask.CaretString{
		Text:         text,
		Caret:        len([]rune(text)),
		Gravity:      mask.Forward,
		Autocomplete: f.autocomplete,
		Autoskip:     f.autoskip,
	}
}

func (f *Field) apply(source string, in mask.CaretString) (EditState, bool) {
	if f.phase != phaseIdle {
		f.logger.Debug("field: dropped re-entrant notification",
			"source", source, "phase", f.phase.String(), "text", in.Text)
		return f.state, false
	}
	f.phase = phaseApplying
	defer func() { f.phase = phaseIdle }()

	f.state = f.compute(in)
	f.logger.Debug("field: applied edit",
		"source", source,
		"text", f.state.Text,
		"caret", f.state.Caret,
		"complete", f.state.Complete,
		"mask", f.state.Mask.Format(),
	)

	if f.host != nil {
		f.host.Display(f.state.Text, f.state.Caret)
	}
	f.notify()
	return f.state, true
}

func (f *Field) compute(in mask.CaretString) EditState {
	if f.rightToLeft {
		n := len([]rune(in.Text))
		in.Text = mask.ReverseString(in.Text)
		in.Caret = n - in.Caret
	}

	m, res := selector.Apply(f.selector, in)
	state := EditState{
		Text:            res.Formatted.Text,
		Caret:           res.Formatted.Caret,
		Value:           res.Value,
		Complete:        res.Complete,
		TailPlaceholder: res.TailPlaceholder,
		Mask:            m,
	}

	if f.rightToLeft {
		state.Text = mask.ReverseString(state.Text)
		state.Caret = len([]rune(state.Text)) - state.Caret
		state.Value = mask.ReverseString(state.Value)
		state.TailPlaceholder = mask.ReverseString(state.TailPlaceholder)
	}
	return state
}

func (f *Field) notify() {
	v := Value{
		Complete:        f.state.Complete,
		Extracted:       f.state.Value,
		Formatted:       f.state.Text,
		TailPlaceholder: f.state.TailPlaceholder,
	}
	for _, l := range f.listeners {
		l.OnValue(v)
	}

	if f.state.Complete == f.complete {
		return
	}
	f.complete = f.state.Complete
	for _, fn := range f.completion {
		fn(f.complete)
	}
}
