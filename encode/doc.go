// Package encode renders [ir.Dict] documents in the Oracle network
// configuration format used by tnsnames.ora, listener.ora and sqlnet.ora.
//
// # Format
//
// Each top-level definition is written bare, one per line group:
//
//	HOST = db.example.com
//	PORTS = (
//	  1521,
//	  1522
//	)
//	DESC =
//	  (SID = orcl)
//
// Definitions nested in a dictionary are wrapped in parentheses and
// indented two spaces per level. Consecutive top-level definitions are
// separated by a single newline; there is no newline after the last one.
//
// Scalars made only of ASCII letters, digits and the symbols
// <>/.:;-_$+*&!%?@ are written verbatim. Anything else, including the
// empty string, is double quoted with backslashes doubled and double
// quotes backslash escaped.
//
// # Usage
//
//	out := encode.String(doc)
//
//	// sorted by definition name, streaming
//	err := encode.New(encode.SortByKey(true)).Render(doc, w)
//
// A [Renderer] is an immutable value and may be shared between goroutines
// rendering to independent writers.
//
// # Related Packages
//
//   - github.com/signadot/orafile/ir - document representation
//   - github.com/signadot/orafile/load - build documents from YAML, JSON or TOML
package encode
