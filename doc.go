// Package wpml provides the typed record engine behind the WPML mission codec:
//
// - Field tables (Field/Schema) that drive encoding, decoding and validation from one declaration
// - Closed vocabularies (Vocabulary) with wire-string lookup that fails on unknown tokens
// - A stable error model via Issues (JSON Pointer over wire names, code, message)
// - OrderedMap, the ordered key/value tree exchanged with the markup layer
//
// Design policy:
//   - Records are plain Go values; validation returns a checked copy instead of mutating shared state.
//   - Action variants live in action/, mission records and the document codec in model/,
//     XML in markup/, zip packaging in kmz/ and the CLI under cmd/wpml.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := wpml.NewSchema("hover", defaults,
//		wpml.Float("hoverTime", func(r *Hover) *float64 { return &r.Time }, wpml.Above(0)),
//	)
//	m := s.Encode(h)
//	h2, err := s.Decode(m)
package wpml
