// Package singleton illustrates the Singleton pattern with the industrial
// chocolate boiler: a machine so expensive that two of them existing at once
// is an accounting incident.
//
// What:
//
//   - Boiler — a small state machine (empty → filled → boiled → empty) whose
//     transitions return sentinel errors when the plumbing is abused. Its
//     methods are mutex-guarded; the boiler itself is safe however you reach
//     it.
//   - Four ways to hand out "the one" boiler, from worst to best:
//     UnsafeInstance (lazy check-then-create, racy on purpose — run the race
//     demo and watch two boilers appear), MutexInstance (lazy behind a
//     lock), Instance (sync.Once, the idiomatic lazy form), and
//     EagerInstance (a plain package variable, created at init).
//
// Why:
//
//	The interesting part is not "one instance", it is "one instance under
//	concurrency". The naive lazy getter compiles, reads well, passes the
//	single-threaded demo, and mints duplicate boilers the first time two
//	goroutines arrive together. Go's package-level var and sync.Once both
//	close that window; the unsafe variant is kept only so the window can be
//	seen.
//
// NewBoiler is exported too. In real Go code, prefer it: construct one
// boiler in main and pass it down. A package-global instance is a last
// resort, not a default.
//
// Errors:
//
//   - ErrBoilerFull — Fill on a boiler that already has milk and chocolate.
//   - ErrBoilerEmpty — Boil or Drain on an empty boiler.
//   - ErrAlreadyBoiled — Boil twice without draining.
//   - ErrNotBoiled — Drain before boiling; nobody ships raw mix.
package singleton
