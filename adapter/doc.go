// Package adapter illustrates the Adapter pattern twice: once with the
// barnyard classic, once with iteration, where Go grew a new interface in
// 1.23 and every legacy collection suddenly needed adapting.
//
// What:
//
//   - Quacker and Gobbler — two interfaces that say the same kind of thing
//     in incompatible vocabularies. MallardDuck speaks the first, WildTurkey
//     the second.
//   - TurkeyAdapter — wraps a Gobbler and presents it as a Quacker: Quack
//     delegates to Gobble, Fly answers honestly that turkeys cannot.
//     DuckAdapter is the reverse disguise, a Gobbler view of any duck.
//   - Enumeration — the old-style cursor (HasMore / Next), with
//     SliceEnumeration as the concrete legacy collection. Iterate adapts any
//     Enumeration to iter.Seq so it can be ranged over; Remover is the
//     operation the legacy side never supported, and says so with
//     ErrRemoveUnsupported instead of pretending.
//
// Why:
//
//	Neither side changes. The duck simulator keeps calling Quack, the turkey
//	keeps gobbling, and one small type in the middle absorbs the mismatch.
//	That is the whole pattern; the iteration half shows it earning rent in
//	real Go, bridging a pre-generics cursor into a range loop.
//
// Errors:
//
//   - ErrNoMoreElements — Next called past the end of an enumeration.
//   - ErrRemoveUnsupported — Remove on a collection that cannot delete.
package adapter
