package countries

import (
	"sort"
	"strings"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/phone"
)

// Option is one entry of the JSON response.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Code        string `json:"code"`
	Emoji       string `json:"emoji,omitempty"`
	Format      string `json:"format"`
	Placeholder string `json:"placeholder,omitempty"`
}

const (
	rankISO = iota
	rankPrefix
	rankSubstring
)

// Search filters countries by query and returns at most limit of them.
//
// Calling-code queries keep table order, so countries sharing a code stay in
// resolution order. Text queries rank an exact ISO code first, then names
// starting with the query, then names containing it; each rank is sorted by
// name.
func Search(countries phone.Countries, query string, limit int, listAll bool) phone.Countries {
	if limit <= 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if listAll {
			return truncate(append(phone.Countries{}, countries...), limit)
		}
		return nil
	}

	if isCallingCode(query) {
		return truncate(countries.Candidates(query), limit)
	}

	q := strings.ToLower(query)
	matches := make([]match, 0, 16)
	for _, c := range countries {
		name := strings.ToLower(c.Name)
		switch {
		case strings.EqualFold(c.ISO, q):
			matches = append(matches, match{country: c, rank: rankISO})
		case strings.HasPrefix(name, q):
			matches = append(matches, match{country: c, rank: rankPrefix})
		case strings.Contains(name, q):
			matches = append(matches, match{country: c, rank: rankSubstring})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].country.Name < matches[j].country.Name
	})

	out := make(phone.Countries, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.country)
	}
	return truncate(out, limit)
}

// optionsFor renders countries as options; the result is never nil.
func optionsFor(countries phone.Countries, cache *mask.Cache) []Option {
	out := make([]Option, 0, len(countries))
	for _, c := range countries {
		out = append(out, optionFor(c, cache))
	}
	return out
}

func optionFor(c phone.Country, cache *mask.Cache) Option {
	opt := Option{
		Value:  c.ISO,
		Label:  c.Name + " (+" + c.CallingCode + ")",
		Code:   c.CallingCode,
		Emoji:  c.Emoji,
		Format: c.PrimaryFormat,
	}
	if cache != nil {
		if m, err := cache.Get(c.PrimaryFormat); err == nil {
			opt.Placeholder = m.Placeholder()
		}
	}
	return opt
}

func isCallingCode(query string) bool {
	query = strings.TrimPrefix(query, "+")
	if query == "" {
		return false
	}
	for _, r := range query {
		if (r < '0' || r > '9') && r != ' ' {
			return false
		}
	}
	return true
}

func truncate(countries phone.Countries, limit int) phone.Countries {
	if len(countries) > limit {
		return countries[:limit]
	}
	return countries
}

type match struct {
	country phone.Country
	rank    int
}
