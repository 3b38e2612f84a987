// Package number builds masks for free-form decimal numbers.
//
// The mask is rebuilt on every edit from the digits typed so far: the integer
// part is grouped the way golang.org/x/text/message prints it for the chosen
// locale, the locale decimal separator is kept once typed, and an optional
// currency symbol leads the text. Extracted values contain digits and a `.`
// decimal point regardless of locale.
package number
