package number_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/number"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

var (
	_ selector.Selector    = (*number.Selector)(nil)
	_ selector.ValueMapper = (*number.Selector)(nil)
)

func forward(text string) mask.CaretString {
	return mask.CaretString{Text: text, Caret: len([]rune(text)), Autocomplete: true}
}

func TestSelector_EnglishGrouping(t *testing.T) {
	s, err := number.NewSelector()
	require.NoError(t, err)

	tests := []struct {
		text  string
		want  string
		value string
	}{
		{text: "1234567", want: "1,234,567", value: "1234567"},
		{text: "1,234,567", want: "1,234,567", value: "1234567"},
		{text: "1234.56", want: "1,234.56", value: "1234.56"},
		{text: "12.", want: "12.", value: "12."},
		{text: "0.5", want: "0.5", value: "0.5"},
		{text: "007", want: "7", value: "7"},
		{text: "123", want: "123", value: "123"},
	}
	for _, tt := range tests {
		res := s.Apply(forward(tt.text))
		assert.Equal(t, tt.want, res.Formatted.Text, tt.text)
		assert.Equal(t, tt.value, res.Value, tt.text)
		assert.True(t, res.Complete, tt.text)
	}
}

func TestSelector_TypingMovesCaretOverSeparator(t *testing.T) {
	s, err := number.NewSelector()
	require.NoError(t, err)

	res := s.Apply(forward("1234"))
	assert.Equal(t, "1,234", res.Formatted.Text)
	assert.Equal(t, 5, res.Formatted.Caret)
}

func TestSelector_GermanSeparators(t *testing.T) {
	s, err := number.NewSelector(number.WithLocale(language.German))
	require.NoError(t, err)
	assert.Equal(t, ",", s.DecimalSeparator())

	_, res := selector.Apply(s, forward("1234567,5"))
	assert.Equal(t, "1.234.567,5", res.Formatted.Text)
	assert.Equal(t, "1234567.5", res.Value)

	res = s.Apply(forward("12.5"))
	assert.Equal(t, "125", res.Formatted.Text, "a dot groups in German")
}

func TestSelector_CurrencyCapsFraction(t *testing.T) {
	s, err := number.NewSelector(
		number.WithLocale(language.AmericanEnglish),
		number.WithCurrency(currency.USD),
	)
	require.NoError(t, err)
	assert.Equal(t, "$", s.Symbol())

	res := s.Apply(forward("1234.567"))
	assert.Equal(t, "$1,234.56", res.Formatted.Text)
	assert.Equal(t, "1234.56", res.Value)

	again := s.Apply(forward(res.Formatted.Text))
	assert.Equal(t, res.Formatted.Text, again.Formatted.Text)
}

func TestSelector_Limits(t *testing.T) {
	s, err := number.NewSelector(number.WithMaxFractionDigits(0), number.WithMaxIntegerDigits(4))
	require.NoError(t, err)

	res := s.Apply(forward("12.5"))
	assert.Equal(t, "125", res.Formatted.Text)

	res = s.Apply(forward("123456"))
	assert.Equal(t, "1,234", res.Formatted.Text)
	assert.Equal(t, "1234", res.Value)
}

func TestSelector_Primary(t *testing.T) {
	s, err := number.NewSelector()
	require.NoError(t, err)
	assert.Equal(t, "0", s.Primary().Placeholder())

	s.Select(forward("1234"))
	assert.Equal(t, "1,000", s.Current().Placeholder())
}
