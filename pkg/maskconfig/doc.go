// Package maskconfig loads named mask definitions from declarative files.
//
// A mask set document lists masks by name:
//
//	notations:
//	  - {symbol: "1", characters: "123456789"}
//	masks:
//	  date:
//	    format: "[00].[00].[0000]"
//	    hint: "Day, month and year"
//	  phone:
//	    format: "+7 ([000]) [000]-[00]-[00]"
//	    affine: ["+7 ([000]) [000]-[00]-[00]#[000]"]
//	    affinity: prefix
//	  calling-code:
//	    keys:
//	      "7": "+7 ([000]) [000]-[00]-[00]"
//	      "375": "+375 ([00]) [000]-[00]-[00]"
//
// Documents may be JSON, YAML or TOML and are validated against the bundled
// JSON Schema (see SchemaJSON) before use. A mask with a format and no
// alternatives becomes a selector.Single, one with affine formats a
// selector.Poly, and one with keys a selector.Keyed.
//
// FromOpenAPI reads the same definitions from `x-inputmask` extensions of an
// OpenAPI document, and Watcher reloads a directory of documents as it
// changes.
package maskconfig
