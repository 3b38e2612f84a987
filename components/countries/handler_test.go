package countries

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-inputmask/pkg/phone"
)

func newComponent(t *testing.T, fns ...OptionFn) *Component {
	t.Helper()
	c, err := New(fns...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response {
	t.Helper()
	var payload response
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func values(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, opt := range opts {
		out = append(out, opt.Value)
	}
	return out
}

func TestServeHTTP_EmptyQueryReturnsEmptyDataArray(t *testing.T) {
	rec := serve(t, newComponent(t), http.MethodGet, "/api/countries")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	payload := decode(t, rec)
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
	if payload.Resolution != nil {
		t.Fatalf("expected no resolution for a search, got %#v", payload.Resolution)
	}
}

func TestServeHTTP_NameSearch(t *testing.T) {
	rec := serve(t, newComponent(t), http.MethodGet, "/api/countries?q=bel")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	want := []Option{
		{
			Value:       "BY",
			Label:       "Belarus (+375)",
			Code:        "375",
			Emoji:       phone.Flag("BY"),
			Format:      "+375 ([00]) [000]-[00]-[00]",
			Placeholder: "+375 (00) 000-00-00",
		},
		{
			Value:       "BE",
			Label:       "Belgium (+32)",
			Code:        "32",
			Emoji:       phone.Flag("BE"),
			Format:      "+32 [000] [00] [00] [00]",
			Placeholder: "+32 000 00 00 00",
		},
	}
	if diff := cmp.Diff(want, decode(t, rec).Data); diff != "" {
		t.Fatalf("unexpected options (-want +got):\n%s", diff)
	}
}

func TestServeHTTP_CallingCodeSearchKeepsTableOrder(t *testing.T) {
	rec := serve(t, newComponent(t), http.MethodGet, "/api/countries?q=%2B37&limit=2")

	if diff := cmp.Diff([]string{"LT", "LV"}, values(decode(t, rec).Data)); diff != "" {
		t.Fatalf("unexpected countries (-want +got):\n%s", diff)
	}
}

func TestServeHTTP_ResolvesPhoneNumber(t *testing.T) {
	rec := serve(t, newComponent(t), http.MethodGet, "/api/countries?text=%2B375291234567")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	payload := decode(t, rec)

	if payload.Resolution == nil {
		t.Fatal("expected a resolution")
	}
	got := *payload.Resolution
	if got.Country == nil || got.Country.Value != "BY" {
		t.Fatalf("expected BY to be resolved, got %#v", got.Country)
	}
	got.Country = nil

	want := Resolution{
		Text:      "+375291234567",
		Formatted: "+375 (29) 123-45-67",
		Complete:  true,
		Resolved:  true,
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Resolution{}, "Value")); diff != "" {
		t.Fatalf("unexpected resolution (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"BY"}, values(payload.Data)); diff != "" {
		t.Fatalf("unexpected candidates (-want +got):\n%s", diff)
	}
}

func TestServeHTTP_PartialCodeListsCandidates(t *testing.T) {
	payload := decode(t, serve(t, newComponent(t), http.MethodGet, "/api/countries?text=%2B37"))

	if payload.Resolution == nil || payload.Resolution.Resolved || payload.Resolution.Country != nil {
		t.Fatalf("expected an unresolved number, got %#v", payload.Resolution)
	}
	want := []string{"LT", "LV", "EE", "MD", "AM", "BY"}
	if diff := cmp.Diff(want, values(payload.Data), cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("unexpected candidates (-want +got):\n%s", diff)
	}
}

func TestServeHTTP_ResolutionHonoursFilters(t *testing.T) {
	c := newComponent(t, WithDisabled("BY"))

	payload := decode(t, serve(t, c, http.MethodGet, "/api/countries?text=%2B375291234567"))
	if payload.Resolution == nil || payload.Resolution.Resolved {
		t.Fatalf("expected a disabled country to stay unresolved, got %#v", payload.Resolution)
	}
	if len(payload.Data) != 0 {
		t.Fatalf("expected no candidates, got %v", values(payload.Data))
	}
}

func TestServeHTTP_CustomTableAndParams(t *testing.T) {
	c := newComponent(t,
		WithCountries(phone.Countries{
			{Name: "Testland", ISO: "TL", CallingCode: "999", PrimaryFormat: "+999 [0000]"},
		}),
		WithSearchParam("search"),
		WithLimitParam("l"),
	)

	payload := decode(t, serve(t, c, http.MethodGet, "/api/countries?search=tl&l=5"))
	if len(payload.Data) != 1 || payload.Data[0].Placeholder != "+999 0000" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestServeHTTP_ListAll(t *testing.T) {
	c := newComponent(t, WithListAll(true), WithLimits(3, 0))

	payload := decode(t, serve(t, c, http.MethodGet, "/api/countries"))
	if len(payload.Data) != 3 || payload.Data[0].Value != "RU" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestServeHTTP_MethodNotAllowed(t *testing.T) {
	rec := serve(t, newComponent(t), http.MethodPost, "/api/countries?q=by")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestServeHTTP_HeadHasNoBody(t *testing.T) {
	rec := serve(t, newComponent(t), http.MethodHead, "/api/countries?q=by")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestServeHTTP_NegativeLimitReturnsEmptyDataArray(t *testing.T) {
	payload := decode(t, serve(t, newComponent(t), http.MethodGet, "/api/countries?q=by&limit=-1"))
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}
