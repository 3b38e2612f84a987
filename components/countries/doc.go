// Package countries serves the phone country table over HTTP.
//
// A Component answers two kinds of GET request on one route:
//
//	/api/countries?q=bel          search by name, ISO code or calling code
//	/api/countries?text=%2B37529  run a phone number through phone.Selector
//
// The second form reports the countries still consistent with the digits,
// whether one of them was resolved, and the number formatted with its mask,
// so a client can render a country picker that narrows while the user types.
package countries
