// Package format names the input formats documents can be loaded from.
//
// # Related Packages
//
//   - github.com/signadot/orafile/load - decode each format into an ir.Dict
package format
