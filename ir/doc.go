// Package ir provides the tree representation built from XML event
// streams.
//
// A Node is a four-case tagged union: null, string, ordered array, or
// insertion-ordered object. The cases are exactly the values the
// dictionary conversion can produce, so the tree round-trips to JSON
// without loss: null elements become JSON null, text becomes strings,
// repeated tags become arrays and element children become objects whose
// field order follows document order.
//
// Nodes carry no position information and no parent links; they are
// plain values that can be compared (Compare, Equal), cloned and
// serialized (MarshalJSON, FromJSON).
//
// Node structures are not thread-safe.
package ir
