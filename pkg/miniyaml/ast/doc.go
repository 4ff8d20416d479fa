// Package ast defines the value tree produced by the miniyaml parser.
//
// A parsed document is a tree of Value nodes: scalars (string, boolean,
// null, integer, float), ordered mappings, and sequences. Mappings preserve
// insertion order and keep keys unique, so a document can be displayed in
// the order it was written.
//
// The Pending kind is a parse-time placeholder for a key or sequence item
// whose container shape is not yet known (a bare "key:" line with no inline
// value, or a bare "- " item). Pending values never appear in a finalized
// tree; the parser's finalize pass converts any that remain into empty
// mappings.
package ast
