// Package gomorekit collects small standalone helpers: a debouncer that
// collapses bursts of calls into one deferred call, and a finder for the
// single value missing from a sequence 0..n.
package gomorekit
