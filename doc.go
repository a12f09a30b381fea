// Package patterns is a study companion to the classic catalogue of
// object-oriented design patterns, retold in idiomatic Go — from duck ponds
// to pizza stores to a slightly dangerous chocolate boiler.
//
// 🦆 What is patterns?
//
//	A collection of small, self-contained packages, one per pattern:
//		• strategy/       — ducks with swappable fly & quack behaviors
//		• observer/       — a weather station broadcasting measurement snapshots
//		• decorator/      — beverages wrapped in condiments (and a lowercasing io.Reader)
//		• factory/        — regional pizza stores, factory method + abstract factory
//		• singleton/      — one chocolate boiler, four ways to (not) get it wrong
//		• templatemethod/ — tea & coffee brewed by one fixed recipe skeleton
//		• adapter/        — a turkey passing as a duck; legacy enumerations as iterators
//		• command/        — a seven-slot remote control with undo and macros
//		• facade/         — a one-button home theater
//
// ✨ Why read it?
//
//   - Each package is a few screens of code, written to be read top to bottom
//   - The narrated doc.go in every package tells the story the code illustrates
//   - Example tests double as verified, runnable documentation
//   - No inheritance gymnastics — interfaces, composition, and functions do the work
//
// None of these toys is meant for production reuse; the point is the shape of
// each pattern, not the plumbing around it. Runnable scenario walkthroughs live
// under examples/, and cmd/demo plays all chapters in book order.
//
//	go run github.com/patternslab/patterns/cmd/demo
package patterns
