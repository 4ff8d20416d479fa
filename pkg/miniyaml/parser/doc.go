// Package parser implements the miniyaml reader: a single-pass,
// indentation-driven parser for the block-style configuration dialect used
// by airgauge.
//
// The dialect is an intentionally minimal subset of YAML: scalars, nested
// mappings via 2-space indentation, and sequences via "- " item markers.
// Flow-style collections, anchors, multi-document streams, block scalars,
// and tag directives are not supported.
//
// # Structure inference
//
// A bare "key:" line does not declare whether its children form a mapping or
// a sequence; the parser records a Pending placeholder and resolves it from
// the shape of the first child line it sees. This keeps the pass streaming
// and lookahead-free: every decision is made from the current line's
// indentation delta and shape alone.
//
// # Errors
//
// Malformed input fails immediately with a typed ParseError (see the sibling
// errors package) carrying the offending line and its index. The scalar
// lexer never fails; unrecognized tokens are verbatim strings.
package parser
