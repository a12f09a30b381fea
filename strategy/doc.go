// Package strategy illustrates the Strategy pattern with the classic duck pond:
// a family of interchangeable behaviors, encapsulated one per type, selected
// and swapped at runtime without touching the ducks that use them.
//
// What:
//
//   - Duck — holds a name plus one FlyBehavior and one QuackBehavior, and
//     delegates PerformFly/PerformQuack to whatever is currently installed.
//   - FlyBehavior / QuackBehavior — one-method interfaces; each concrete
//     behavior (FlyWithWings, FlyNoWay, FlyRocketPowered, Quack, Squeak,
//     MuteQuack) produces the spoken line for a duck of the given name.
//   - FlyFunc / QuackFunc — function adapters in the http.HandlerFunc mold,
//     because in Go a strategy is often just a function.
//   - Species constructors — NewMallardDuck, NewRubberDuck, NewModelDuck,
//     NewDecoyDuck — wire up the canonical behavior combinations.
//
// Why:
//
//	The naive design puts fly() and quack() on a duck base type and lets each
//	species override them. It collapses the moment requirements wiggle: rubber
//	ducks squeak, decoys do neither, and a fly() on the base type sends every
//	wooden decoy soaring. Pulling the varying behavior out behind interfaces
//	means species differ only in which behaviors they are born with, and any
//	duck can be re-equipped mid-flight (rocket boosters included).
//
// Behaviors receive the duck's name and return the narrated line instead of
// printing, so demos decide where output goes and tests can assert on it.
//
// No errors are modeled here: a Duck built via NewDuck with nil behaviors is
// quietly grounded and muted rather than crashing later.
package strategy
