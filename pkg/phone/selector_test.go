package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/phone"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

var _ selector.Selector = (*phone.Selector)(nil)

func forward(text string) mask.CaretString {
	return mask.CaretString{Text: text, Caret: len([]rune(text)), Autocomplete: true}
}

func TestSelector_ResolvesBelarus(t *testing.T) {
	s, err := phone.NewSelector()
	require.NoError(t, err)

	res := s.Apply(forward("+375291234567"))
	assert.Equal(t, "+375 (29) 123-45-67", res.Formatted.Text)
	assert.Equal(t, "291234567", res.Value)
	assert.True(t, res.Complete)

	country, ok := s.Country()
	require.True(t, ok)
	assert.Equal(t, "BY", country.ISO)
	assert.Equal(t, []string{"BY"}, isoCodes(s.Countries()))
}

func TestSelector_FallbackWhileAmbiguous(t *testing.T) {
	s, err := phone.NewSelector()
	require.NoError(t, err)

	m := s.Select(forward("+37"))
	assert.Equal(t, phone.FallbackFormat, m.Format())
	assert.Same(t, s.Primary(), m)

	_, ok := s.Country()
	assert.False(t, ok)
	assert.Len(t, s.Countries(), 6)
}

func TestSelector_SharedCodeUsesFirstCountry(t *testing.T) {
	s, err := phone.NewSelector()
	require.NoError(t, err)

	s.Select(forward("+1 202"))
	country, ok := s.Country()
	require.True(t, ok)
	assert.Equal(t, "US", country.ISO)
	assert.ElementsMatch(t, []string{"US", "CA"}, isoCodes(s.Countries()))

	res := s.Apply(forward("+79161234567"))
	assert.Equal(t, "+7 (916) 123-45-67", res.Formatted.Text)
	assert.True(t, res.Complete)
	country, _ = s.Country()
	assert.Equal(t, "RU", country.ISO)
}

func TestSelector_DisabledCountryFallsThrough(t *testing.T) {
	s, err := phone.NewSelector(phone.WithDisabled("RU"))
	require.NoError(t, err)

	s.Select(forward("+7 701"))
	country, ok := s.Country()
	require.True(t, ok)
	assert.Equal(t, "KZ", country.ISO)
}

func TestSelector_EnabledRestrictsTable(t *testing.T) {
	s, err := phone.NewSelector(phone.WithEnabled("BY", "UA"))
	require.NoError(t, err)
	assert.Equal(t, []string{"BY", "UA"}, isoCodes(s.Table()))

	s.Select(forward("+3"))
	_, ok := s.Country()
	assert.False(t, ok)

	s.Select(forward("+38"))
	_, ok = s.Country()
	assert.False(t, ok, "calling code not complete yet")
	assert.Equal(t, []string{"UA"}, isoCodes(s.Countries()))

	s.Select(forward("+380"))
	country, ok := s.Country()
	require.True(t, ok)
	assert.Equal(t, "UA", country.ISO)
}

func TestSelector_Errors(t *testing.T) {
	_, err := phone.NewSelector(phone.WithEnabled("Atlantis"))
	require.ErrorIs(t, err, phone.ErrUnknownCountry)

	_, err = phone.NewSelector(phone.WithFallbackFormat("+[000"))
	require.ErrorIs(t, err, mask.ErrMalformedPattern)

	bad := phone.Countries{{Name: "Testland", ISO: "TL", CallingCode: "99", PrimaryFormat: "+99 [0A]"}}
	_, err = phone.NewSelector(phone.WithCountries(bad))
	require.ErrorIs(t, err, mask.ErrMalformedPattern)
}
