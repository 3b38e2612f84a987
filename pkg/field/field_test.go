package field_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-inputmask/pkg/field"
	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

const dateFormat = "[00].[00].[0000]"

type recordingHost struct {
	text  string
	caret int
	calls int
}

func (h *recordingHost) Display(text string, caret int) {
	h.text, h.caret = text, caret
	h.calls++
}

// typeRune inserts r at the host caret the way a keyboard would.
func typeRune(t *testing.T, f *field.Field, h *recordingHost, r rune) field.EditState {
	t.Helper()
	runes := []rune(h.text)
	text := string(runes[:h.caret]) + string(r) + string(runes[h.caret:])
	state, ok := f.TextChanged(field.Change{Text: text, Start: h.caret, Count: 1})
	require.True(t, ok)
	return state
}

// deleteBefore removes the rune left of the host caret.
func deleteBefore(t *testing.T, f *field.Field, h *recordingHost) field.EditState {
	t.Helper()
	runes := []rune(h.text)
	start := h.caret - 1
	text := string(runes[:start]) + string(runes[h.caret:])
	state, ok := f.TextChanged(field.Change{Text: text, Start: start, Before: 1})
	require.True(t, ok)
	return state
}

func newDateField(t *testing.T, opts ...field.Option) (*field.Field, *recordingHost) {
	t.Helper()
	host := &recordingHost{}
	opts = append([]field.Option{field.WithHost(host)}, opts...)
	f, err := field.New(selector.NewSingle(mask.MustCompile(dateFormat)), opts...)
	require.NoError(t, err)
	return f, host
}

func TestChange(t *testing.T) {
	tests := []struct {
		name     string
		change   field.Change
		deletion bool
		caret    int
	}{
		{name: "insert", change: field.Change{Start: 2, Count: 1}, caret: 3},
		{name: "paste", change: field.Change{Start: 0, Count: 8}, caret: 8},
		{name: "replace", change: field.Change{Start: 1, Before: 2, Count: 1}, caret: 2},
		{name: "delete", change: field.Change{Start: 4, Before: 1}, deletion: true, caret: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.deletion, tt.change.IsDeletion())
			assert.Equal(t, tt.caret, tt.change.Caret())
		})
	}
}

func TestField_TypingDate(t *testing.T) {
	var values []field.Value
	var transitions []bool
	f, host := newDateField(t,
		field.WithValueListener(field.ValueFunc(func(v field.Value) { values = append(values, v) })),
		field.WithCompletionListener(func(complete bool) { transitions = append(transitions, complete) }),
	)

	var state field.EditState
	for _, r := range "01022024" {
		state = typeRune(t, f, host, r)
	}

	assert.Equal(t, "01.02.2024", host.text)
	assert.Equal(t, 10, host.caret)
	assert.Equal(t, "01022024", state.Value)
	assert.True(t, state.Complete)
	assert.Len(t, values, 8)
	assert.Equal(t, []bool{true}, transitions)

	deleteBefore(t, f, host)
	assert.Equal(t, "01.02.202", host.text)
	assert.Equal(t, []bool{true, false}, transitions)
}

func TestField_AutocompleteAfterSecondDigit(t *testing.T) {
	f, host := newDateField(t)

	typeRune(t, f, host, '0')
	state := typeRune(t, f, host, '1')
	assert.Equal(t, "01.", state.Text)
	assert.Equal(t, 3, state.Caret)
	assert.Equal(t, "00.0000", state.TailPlaceholder)
}

func TestField_DeletionSkipsLiteral(t *testing.T) {
	f, host := newDateField(t)
	for _, r := range "010" {
		typeRune(t, f, host, r)
	}
	require.Equal(t, "01.0", host.text)

	state := deleteBefore(t, f, host)
	assert.Equal(t, "01", state.Text)
	assert.Equal(t, 2, state.Caret)
}

type echoHost struct {
	field    *field.Field
	accepted []bool
}

func (h *echoHost) Display(text string, caret int) {
	_, ok := h.field.TextChanged(field.Change{Text: text + "9", Start: caret, Count: 1})
	h.accepted = append(h.accepted, ok)
}

func TestField_DropsReentrantChanges(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	host := &echoHost{}
	f, err := field.New(
		selector.NewSingle(mask.MustCompile(dateFormat)),
		field.WithHost(host),
		field.WithLogger(logger),
	)
	require.NoError(t, err)
	host.field = f

	state, ok := f.TextChanged(field.Change{Text: "01", Start: 0, Count: 2})
	require.True(t, ok)
	assert.Equal(t, "01.", state.Text)
	assert.Equal(t, []bool{false}, host.accepted)
	assert.Equal(t, "01.", f.State().Text)
	assert.Contains(t, logs.String(), "dropped re-entrant notification")

	_, ok = f.SetText("0102")
	assert.True(t, ok, "the field is idle again after write-back")
}

func TestField_Focus(t *testing.T) {
	host := &recordingHost{}
	f, err := field.New(
		selector.NewSingle(mask.MustCompile("+7 ([000]) [000]-[00]-[00]")),
		field.WithHost(host),
	)
	require.NoError(t, err)

	state, ok := f.Focus(true)
	require.True(t, ok)
	assert.Equal(t, "+7 (", state.Text)
	assert.Equal(t, 4, host.caret)

	_, ok = f.Focus(false)
	assert.False(t, ok)

	quiet, err := field.New(
		selector.NewSingle(mask.MustCompile("+7 ([000]) [000]-[00]-[00]")),
		field.WithAutocomplete(false),
	)
	require.NoError(t, err)
	_, ok = quiet.Focus(true)
	assert.False(t, ok)
}

func TestField_InitialValueAndLegacyListeners(t *testing.T) {
	var filled []string
	var formatted []string
	f, host := newDateField(t,
		field.WithInitialValue("01022024"),
		field.WithValueListener(field.FromFilledFunc(func(complete bool, extracted string) {
			if complete {
				filled = append(filled, extracted)
			}
		})),
		field.WithValueListener(field.FromTextChangedFunc(func(_ bool, _ string, text string) {
			formatted = append(formatted, text)
		})),
	)

	assert.Equal(t, "01.02.2024", f.State().Text)
	assert.Equal(t, 1, host.calls)
	assert.Equal(t, []string{"01022024"}, filled)
	assert.Equal(t, []string{"01.02.2024"}, formatted)
}

func TestField_PlaceholderAndLengths(t *testing.T) {
	f, _ := newDateField(t)

	assert.Equal(t, "00.00.0000", f.Placeholder())
	assert.Equal(t, 10, f.AcceptableTextLength())
	assert.Equal(t, 10, f.TotalTextLength())
	assert.Equal(t, 8, f.AcceptableValueLength())
	assert.Equal(t, 8, f.TotalValueLength())
}

func TestField_SetSelectorRederivesState(t *testing.T) {
	f, host := newDateField(t, field.WithInitialValue("01.02.2024"))

	slashed := selector.NewSingle(mask.MustCompile("[00]/[00]/[0000]"))
	state, ok := f.SetSelector(slashed)
	require.True(t, ok)
	assert.Equal(t, "01/02/2024", state.Text)
	assert.Equal(t, "01022024", state.Value)
	assert.Same(t, slashed.Primary(), state.Mask)
	assert.Equal(t, "01/02/2024", host.text)
}

func TestField_RightToLeft(t *testing.T) {
	m, err := mask.CompileReversed("[000] [000]")
	require.NoError(t, err)

	f, err := field.New(selector.NewSingle(m), field.WithRightToLeft(true))
	require.NoError(t, err)

	state, ok := f.SetText("1234")
	require.True(t, ok)
	assert.Equal(t, "1 234", state.Text)
	assert.Equal(t, 5, state.Caret)
	assert.Equal(t, "1234", state.Value)
	assert.False(t, state.Complete)
}

func TestNew_RequiresSelector(t *testing.T) {
	_, err := field.New(nil)
	assert.ErrorIs(t, err, field.ErrNoSelector)
}
