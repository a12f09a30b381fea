// Package factory illustrates Factory Method and Abstract Factory with the
// pizza franchise story, in that order, because the second grows out of the
// first.
//
// What:
//
//   - PizzaType — the menu (Cheese, Hawaiian, Veggie), plus ParsePizzaType
//     for turning user input into a menu entry.
//   - Pizza — Name, Prepare, Bake, Cut, Box. Prepare returns the narrated
//     steps instead of printing them, so orders are inspectable.
//   - Store — owns the one fixed ordering pipeline (create, prepare, bake,
//     cut, box) and journals every order as an OrderTicket with a uuid.
//     WHICH pizza gets created is the store's create hook: that hook is the
//     factory method. NewNYPizzaStore and NewChicagoPizzaStore install
//     regional hooks.
//   - IngredientFactory — the abstract factory: one interface producing a
//     whole family of ingredients (dough, sauce, cheese, veggies, …), with a
//     New York and a Chicago implementation. NewFranchiseStore composes it
//     with the store hook, so a franchise picks its region's ingredients
//     without touching the pipeline.
//
// Why:
//
//	Scattering `switch pizzaType` over every call site means every new menu
//	entry is a shotgun change. Pinning creation behind one hook keeps the
//	pipeline closed and the menu open. The ingredient factory goes one step
//	further: it keeps whole FAMILIES consistent, so a New York pizza can
//	never end up with Chicago's plum tomato sauce by accident.
//
// Errors:
//
//   - ErrUnknownPizzaType — the requested type is not on the menu. Stores
//     wrap it with the store name; test with errors.Is.
package factory
