package countries

import (
	"encoding/json"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/phone"
)

type response struct {
	Data       []Option    `json:"data"`
	Resolution *Resolution `json:"resolution,omitempty"`
}

// Resolution reports a phone number run through phone.Selector. Data then
// lists the candidate countries still consistent with the digits.
type Resolution struct {
	Text      string  `json:"text"`
	Formatted string  `json:"formatted"`
	Value     string  `json:"value"`
	Complete  bool    `json:"complete"`
	Resolved  bool    `json:"resolved"`
	Country   *Option `json:"country,omitempty"`
}

// ServeHTTP answers GET and HEAD. A text parameter selects resolution,
// otherwise the search parameter is matched against the table.
func (c *Component) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	limit := c.opts.limit(parseInt(query.Get(c.opts.LimitParam)))

	var payload response
	if query.Has(c.opts.TextParam) {
		candidates, resolution, err := c.resolve(query.Get(c.opts.TextParam))
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		payload.Data = optionsFor(truncate(candidates, limit), c.cache)
		payload.Resolution = resolution
	} else {
		payload.Data = optionsFor(Search(c.table, query.Get(c.opts.SearchParam), limit, c.opts.ListAll), c.cache)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

// resolve applies text with the caret at the end, the way a field does on a
// programmatic update.
func (c *Component) resolve(text string) (phone.Countries, *Resolution, error) {
	sel, err := phone.NewSelector(phone.WithCountries(c.table), phone.WithCache(c.cache))
	if err != nil {
		return nil, nil, err
	}

	res := sel.Apply(mask.CaretString{
		Text:         text,
		Caret:        utf8.RuneCountInString(text),
		Autocomplete: true,
	})
	out := &Resolution{
		Text:      text,
		Formatted: res.Formatted.Text,
		Value:     res.Value,
		Complete:  res.Complete,
	}
	if country, ok := sel.Country(); ok {
		opt := optionFor(country, c.cache)
		out.Resolved = true
		out.Country = &opt
	}
	return sel.Countries(), out, nil
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
