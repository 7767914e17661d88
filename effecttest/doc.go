// Package effecttest drives effect chains deterministically in tests.
//
// Instead of registering performers and calling effect.Perform, a test
// supplies results by hand: Resolve feeds a success, Fail injects a failure,
// ResolveStub uses the result carried by a StubIntent. Each step walks the
// effect's callback chain until it completes, fails, or reaches the next
// undischarged effect, reported as a tagged Outcome.
//
// SyncPerform is the bridge back to the real machinery: it performs an
// effect through a dispatcher and unwraps the single collected result,
// asserting that everything completed inline.
//
// Everything here is synchronous and single-threaded; no goroutines, no
// scheduling, no I/O.
package effecttest
