// Package edges counts the direct parent/child tag pairings of an XML
// document. The counts summarize a document's shape without holding any
// of its content, so they work on inputs far larger than memory.
package edges
