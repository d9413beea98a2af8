// Package gomap converts Go values into ir values.
//
// Maps and structs become dictionaries, slices and arrays of scalars become
// string lists and scalars become strings.  Ordered YAML maps
// (yaml.MapSlice) keep their order; Go maps are sorted by key since they
// have no order of their own.
//
// Struct fields are named by an `ora:"NAME"` tag, then a `json:"name"` tag,
// then the field name.  A tag of "-" skips the field and the omitempty
// option skips zero values.
package gomap
