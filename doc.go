// Package svgdom parses SVG 1.1 documents into a mutable, reference-aware
// DOM and serializes them back to SVG text.
//
// The tree is SVG-aware rather than generic XML: attribute values are typed
// (numbers, lengths, transforms, path data, paints, references), IRI and
// FuncIRI attributes hold live links to their target nodes with a reverse
// index behind Node.Referrers, and parsing runs a set of normalization
// passes (style attribute splitting, stylesheet resolution, whitespace
// handling, paint fallbacks, reference cycle breaking, default pruning) so
// that one fact has one representation.
//
// The package targets SVG tooling such as optimizers and converters.
// Animation, scripting and rendering are out of scope.
package svgdom
