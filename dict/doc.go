// Package dict reduces a stream of XML events to a nested dictionary,
// following the conventions of Python's xmltodict: element names become
// object keys, repeated siblings become lists, trimmed text becomes the
// element's string value, and empty elements become null.
//
// Conversion is tolerant of malformed input. A parse failure stops
// consumption but everything reduced up to that point is kept, with the
// failure recorded alongside the partial tree.
package dict
