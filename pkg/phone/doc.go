// Package phone selects phone-number masks from calling codes.
//
// The bundled country table lives in data/countries.yaml. A Selector narrows
// the candidate countries as digits are typed and, once every candidate
// shares a calling code already present in the text, formats the number with
// that country's primary and affine formats. Until then a generic
// international mask is used.
package phone
