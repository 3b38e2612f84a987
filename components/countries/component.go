package countries

import (
	"net/http"
	"path"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/phone"
)

// Mux is the subset of *http.ServeMux a Component mounts on.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Component serves one filtered country table. It is safe for concurrent
// use; every request that resolves text gets its own phone.Selector over the
// shared table and mask cache.
type Component struct {
	opts  Options
	table phone.Countries
	cache *mask.Cache
}

// New loads the country table and applies the enabled and disabled filters.
// Unknown ids are an error, as they are for phone.NewSelector.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)

	table := opts.Countries
	if table == nil {
		loaded, err := phone.DefaultCountries()
		if err != nil {
			return nil, err
		}
		table = loaded
	}
	table, err := table.Filter(opts.Enabled, opts.Disabled)
	if err != nil {
		return nil, err
	}

	return &Component{opts: opts, table: table, cache: mask.NewCache()}, nil
}

// Table returns a copy of the filtered table.
func (c *Component) Table() phone.Countries {
	return append(phone.Countries(nil), c.table...)
}

// Path returns the route of the component under basePath.
func (c *Component) Path(basePath string) string {
	return JoinPath(basePath, c.opts.RoutePath)
}

// Mount registers the component under basePath and returns the mounted path.
func (c *Component) Mount(mux Mux, basePath string) string {
	p := c.Path(basePath)
	mux.Handle(p, c)
	return p
}

// JoinPath joins route onto basePath as an absolute, clean path.
func JoinPath(basePath, route string) string {
	return path.Join("/", basePath, route)
}
