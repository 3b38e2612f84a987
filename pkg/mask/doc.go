// Package mask compiles input-mask patterns and applies them to text.
//
// A pattern mixes literal characters with slot groups:
//
//	+7 ([000]) [000]-[00]-[00]
//	[90].[90].[0000]
//
// Characters inside square brackets are slots. `0`, `A` and `_` are mandatory
// digit, letter and alphanumeric slots; `9`, `a` and `-` are their optional
// counterparts. Characters inside braces are fixed literals that are also
// copied into the extracted value. A backslash escapes the next character and
// a top-level `#` starts the suffix section of a mask; literals that close the
// suffix are appended to every non-empty result.
//
// Compiled masks are immutable and safe to share. Apply never fails: input
// that does not fit the mask is dropped, not rejected.
package mask
