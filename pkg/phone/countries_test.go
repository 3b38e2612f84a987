package phone_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-inputmask/pkg/phone"
)

func isoCodes(cs phone.Countries) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ISO)
	}
	return out
}

func TestDefaultCountries_Loads(t *testing.T) {
	countries, err := phone.DefaultCountries()
	require.NoError(t, err)
	require.NotEmpty(t, countries)

	by, err := countries.Find("by")
	require.NoError(t, err)
	assert.Equal(t, "Belarus", by.Name)
	assert.Equal(t, "375", by.CallingCode)
	assert.Equal(t, phone.Flag("BY"), by.Emoji)

	countries[0].Name = "changed"
	again, err := phone.DefaultCountries()
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again[0].Name)
}

func TestCandidates_NarrowMonotonically(t *testing.T) {
	countries, err := phone.DefaultCountries()
	require.NoError(t, err)

	text := "+375291234567"
	previous := map[string]bool{}
	for _, c := range countries {
		previous[c.ISO] = true
	}

	for i := 1; i <= len(text); i++ {
		current := countries.Candidates(text[:i])
		for _, c := range current {
			assert.True(t, previous[c.ISO], "%s reappeared at %q", c.ISO, text[:i])
		}
		previous = map[string]bool{}
		for _, c := range current {
			previous[c.ISO] = true
		}
	}
	assert.Equal(t, map[string]bool{"BY": true}, previous)
}

func TestCandidates_PartialCode(t *testing.T) {
	countries, err := phone.DefaultCountries()
	require.NoError(t, err)

	got := isoCodes(countries.Candidates("+37"))
	assert.ElementsMatch(t, []string{"LT", "LV", "EE", "MD", "AM", "BY"}, got)
}

func TestFilter(t *testing.T) {
	countries, err := phone.DefaultCountries()
	require.NoError(t, err)

	enabled, err := countries.Filter([]string{"BY", "ukraine", phone.Flag("RU")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"RU", "BY", "UA"}, isoCodes(enabled))

	disabled, err := enabled.Filter(nil, []string{"Russia"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BY", "UA"}, isoCodes(disabled))

	_, err = countries.Filter([]string{"Atlantis"}, nil)
	require.ErrorIs(t, err, phone.ErrUnknownCountry)
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "\U0001F1E7\U0001F1FE", phone.Flag("by"))
	assert.Empty(t, phone.Flag("BYR"))
	assert.Empty(t, phone.Flag("B1"))
}

func TestLoadCountries_Errors(t *testing.T) {
	tests := map[string]string{
		"missing code": `- {name: Nowhere, iso: NW, format: "+[000]"}`,
		"duplicate":    "- {name: A, iso: AA, code: \"1\", format: \"+1 [000]\"}\n- {name: B, iso: AA, code: \"2\", format: \"+2 [000]\"}",
		"bad iso":      `- {name: Nowhere, iso: NWX, code: "9", format: "+9 [000]"}`,
		"no format":    `- {name: Nowhere, iso: NW, code: "9"}`,
		"not a list":   `name: Nowhere`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := phone.LoadCountries(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadCountries_NormalisesCodes(t *testing.T) {
	countries, err := phone.LoadCountries(strings.NewReader(`- {name: Testland, iso: tl, code: "+9-9", format: "+99 [000]"}`))
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "TL", countries[0].ISO)
	assert.Equal(t, "99", countries[0].CallingCode)
	assert.Equal(t, phone.Flag("TL"), countries[0].Emoji)
}
