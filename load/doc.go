// Package load decodes YAML, JSON and TOML documents into [ir.Dict] values
// ready for rendering.
//
// Definition order follows the source document.  YAML and JSON are decoded
// with ordered maps; TOML order is recovered from the decoder's key
// metadata.
//
// # Scalars
//
// Numbers and booleans become text after decoding, so they are written in
// canonical form rather than as spelled in the source: VERSION: 1.50
// renders as VERSION = 1.5 and 0x10 as 16.  Quote a scalar in the source
// document ("1.50") to keep its exact spelling.
//
// # Usage
//
//	d, err := load.Load(data, format.YAMLFormat)
//
//	d, err := load.File("tnsnames.yaml", nil)
package load
