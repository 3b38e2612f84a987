package phone

import "errors"

// ErrUnknownCountry is returned when a country filter names no country of the
// table.
var ErrUnknownCountry = errors.New("phone: unknown country")
