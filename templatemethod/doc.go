// Package templatemethod illustrates the Template Method pattern with the
// caffeine beverages: one fixed brewing ritual, two drinks that fill in the
// blanks.
//
// What:
//
//   - Recipe — the template. Boil water, brew, pour into cup, then maybe
//     condiments. The skeleton never changes and callers cannot reorder it;
//     it returns the narrated steps.
//   - Steeper — the two blanks a drink must fill in: Brew and Condiments.
//   - CondimentDecider — the optional hook. A Steeper that also implements
//     WantsCondiments gets asked before condiments go in; one that does not
//     gets them unconditionally. This is the interface-upgrade idiom the
//     standard library uses for io.ReaderFrom and http.Flusher: the
//     template checks for the extra interface at run time.
//   - Tea (steep, lemon) and Coffee (brew, milk and creamer). Coffee
//     implements the hook via a Decider func; YesNoDecider builds one that
//     asks over any reader/writer pair, the way the original asked stdin.
//
// Why:
//
//	Don't call us, we'll call you. The drinks never run the ritual; the
//	ritual runs the drinks. Duplicated boil-pour scaffolding collapses into
//	one place, and a new drink is just two methods, three with an opinion
//	about condiments.
package templatemethod
