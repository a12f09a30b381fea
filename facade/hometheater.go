// SPDX-License-Identifier: MIT

package facade

import (
	"fmt"
	"io"
)

// HomeTheater is the facade: the whole rig behind two verbs. The devices
// remain reachable through their own constructors for anyone who enjoys
// doing things the long way.
type HomeTheater struct {
	w         io.Writer
	amp       *Amplifier
	player    *StreamingPlayer
	projector *Projector
	screen    *Screen
	lights    *TheaterLights
	popper    *PopcornPopper
}

// NewHomeTheater builds the standard rig, every device narrating into the
// same writer so the transcript reads in order. Panics if w is nil.
func NewHomeTheater(w io.Writer) *HomeTheater {
	mustWriter(w, "home theater")
	player := NewStreamingPlayer("Top-O-Line Streaming Player", w)
	return &HomeTheater{
		w:         w,
		amp:       NewAmplifier("Top-O-Line Amplifier", w),
		player:    player,
		projector: NewProjector("Top-O-Line Projector", w),
		screen:    NewScreen("Theater Screen", w),
		lights:    NewTheaterLights("Theater Ceiling Lights", w),
		popper:    NewPopcornPopper("Popcorn Popper", w),
	}
}

// WatchMovie runs the full startup sequence, popcorn first. The order is
// fixed; that is the point of having a facade.
func (h *HomeTheater) WatchMovie(movie string) {
	fmt.Fprintln(h.w, "Get ready to watch a movie...")
	h.popper.On()
	h.popper.Pop()
	h.lights.Dim(10)
	h.screen.Down()
	h.projector.On()
	h.projector.WideScreenMode()
	h.amp.On()
	h.amp.SetStreamingPlayer(h.player)
	h.amp.SetSurroundSound()
	h.amp.SetVolume(5)
	h.player.On()
	h.player.Play(movie)
}

// EndMovie shuts the rig down again.
func (h *HomeTheater) EndMovie() {
	fmt.Fprintln(h.w, "Shutting movie theater down...")
	h.popper.Off()
	h.lights.On()
	h.screen.Up()
	h.projector.Off()
	h.amp.Off()
	h.player.Stop()
	h.player.Off()
}
