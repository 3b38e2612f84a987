// Package selector decides which compiled mask an edit is applied to.
//
// Single always returns the same mask. Poly scores a primary mask and its
// affine alternatives on every edit and keeps the current mask on ties. Keyed
// resolves the mask from the leading digits of the text using a longest-key
// match, falling back to a default mask.
//
// Selectors carry the state of one input field and are not safe for
// concurrent use.
package selector
