// Package ir provides the in-memory representation of Oracle network
// configuration documents (tnsnames.ora, listener.ora, sqlnet.ora and
// friends).
//
// # Overview
//
// A document is a [Dict]: an ordered list of named definitions ([Def]).
// Each definition carries one of three value kinds:
//
//   - [String]: a single scalar
//   - [StringList]: an ordered list of scalars
//   - [*Dict]: a nested dictionary
//
// [Val] is a closed union over those three kinds. Code that switches over a
// Val should handle every kind; the unexported marker method keeps other
// packages from adding new ones.
//
// Definition names are not required to be unique. A Dict keeps whatever
// order and duplicates it was built with.
//
// # Usage
//
//	d := ir.NewDict().
//	    Add("HOST", ir.FromString("db.example.com")).
//	    Add("PORTS", ir.FromStrings("1521", "1522")).
//	    Add("DESC", ir.NewDict().Add("SID", ir.FromString("orcl")))
//
// # Related Packages
//
//   - github.com/signadot/orafile/encode - render a Dict as text
//   - github.com/signadot/orafile/load - build a Dict from YAML, JSON or TOML
package ir
