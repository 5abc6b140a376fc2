// Package testutil provides deterministic test helpers.
//
// FakeClock replaces the wall clock in debouncer tests so that timing
// properties ("fires exactly once, at the last call plus the delay") can be
// asserted exactly instead of with sleeps and tolerances.
package testutil
