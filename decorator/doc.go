// Package decorator illustrates the Decorator pattern twice: once with the
// classic coffee-shop menu, once with an io.Reader wrapper, because the
// standard library's io package is the pattern's natural habitat in Go.
//
// What:
//
//   - Beverage — Description() and Cost(); Espresso and HotBlend are the two
//     base drinks.
//   - Condiments — Mocha, Whip and Soy each wrap any Beverage, adding their
//     own text to the description and their own price to the cost. Wrapping
//     is unbounded: a double mocha whip is three decorators deep.
//   - LowerCaseReader — wraps any io.Reader and lowercases ASCII letters as
//     they stream through, exactly the way bufio.Reader wraps a file.
//
// Why:
//
//	The alternative is a class per combination (HotBlendWithMochaAndWhip…)
//	or condiment booleans baked into every drink. Both explode as the menu
//	grows. Wrapping composes: each condiment knows only the beverage it
//	decorates, and the bill adds itself up from the outside in.
//
// Contract:
//
//   - A decorator delegates to its wrapped component and then contributes its
//     own share; it never mutates the component.
//   - Decorators satisfy the same interface as what they wrap, so callers
//     cannot tell (and must not care) how deep the stack goes.
//   - Wrapping nil is a programmer error and panics at construction time,
//     not at first use.
//
// Prices are float64 and rounded only at the till: this is menu arithmetic,
// not accounting.
package decorator
