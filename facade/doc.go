// SPDX-License-Identifier: MIT

// Package facade illustrates the Facade pattern with the home theater: six
// fussy devices behind two verbs, WatchMovie and EndMovie.
//
// What:
//
//   - The subsystem — Amplifier, StreamingPlayer, Projector, Screen,
//     TheaterLights and PopcornPopper. Each narrates everything it does into
//     the io.Writer it was built with, so a bytes.Buffer catches the whole
//     evening in order.
//   - HomeTheater — the facade. NewHomeTheater builds the standard rig onto
//     one shared writer; WatchMovie(title) runs the full startup liturgy
//     (popcorn first, obviously) and EndMovie shuts everything down again.
//
// Why:
//
//	Watching a movie by hand is a twelve-step program across six devices in
//	an order you will get wrong. The facade does not add power, it
//	SUBTRACTS surface: one intent-level call, with the fussy sequence kept
//	in exactly one place. The devices stay public; anyone who wants the
//	twelve steps can still take them.
//
// The facade holds no state beyond its devices and returns nothing: the
// writer transcript IS the observable behavior, which is also what makes
// the sequences testable line by line.
package facade
