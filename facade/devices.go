// SPDX-License-Identifier: MIT

package facade

import (
	"fmt"
	"io"
)

// mustWriter guards every device constructor: a narrator with nowhere to
// narrate is a programmer error.
func mustWriter(w io.Writer, what string) {
	if w == nil {
		panic("facade: nil writer for " + what)
	}
}

// Amplifier routes sound: power, input, surround, volume.
type Amplifier struct {
	name string
	w    io.Writer
}

// NewAmplifier returns the named amplifier narrating into w.
func NewAmplifier(name string, w io.Writer) *Amplifier {
	mustWriter(w, "amplifier")
	return &Amplifier{name: name, w: w}
}

func (a *Amplifier) On()  { fmt.Fprintln(a.w, a.name+" on") }
func (a *Amplifier) Off() { fmt.Fprintln(a.w, a.name+" off") }

// SetStreamingPlayer routes the player into the amp.
func (a *Amplifier) SetStreamingPlayer(p *StreamingPlayer) {
	fmt.Fprintf(a.w, "%s setting Streaming player to %s\n", a.name, p.name)
}

// SetSurroundSound switches to the full speaker set.
func (a *Amplifier) SetSurroundSound() {
	fmt.Fprintln(a.w, a.name+" surround sound on (5 speakers, 1 subwoofer)")
}

// SetVolume turns it to v; the scale goes to 11 but movies get 5.
func (a *Amplifier) SetVolume(v int) {
	fmt.Fprintf(a.w, "%s setting volume to %d\n", a.name, v)
}

// StreamingPlayer plays the actual movie and remembers which one.
type StreamingPlayer struct {
	name  string
	w     io.Writer
	movie string
}

// NewStreamingPlayer returns the named player narrating into w.
func NewStreamingPlayer(name string, w io.Writer) *StreamingPlayer {
	mustWriter(w, "streaming player")
	return &StreamingPlayer{name: name, w: w}
}

func (p *StreamingPlayer) On()  { fmt.Fprintln(p.w, p.name+" on") }
func (p *StreamingPlayer) Off() { fmt.Fprintln(p.w, p.name+" off") }

// Play starts the movie.
func (p *StreamingPlayer) Play(movie string) {
	p.movie = movie
	fmt.Fprintf(p.w, "%s playing %q\n", p.name, movie)
}

// Stop halts playback, naming the movie if one was playing.
func (p *StreamingPlayer) Stop() {
	if p.movie == "" {
		fmt.Fprintln(p.w, p.name+" stopped")
		return
	}
	fmt.Fprintf(p.w, "%s stopped %q\n", p.name, p.movie)
	p.movie = ""
}

// Projector throws the picture.
type Projector struct {
	name string
	w    io.Writer
}

// NewProjector returns the named projector narrating into w.
func NewProjector(name string, w io.Writer) *Projector {
	mustWriter(w, "projector")
	return &Projector{name: name, w: w}
}

func (p *Projector) On()  { fmt.Fprintln(p.w, p.name+" on") }
func (p *Projector) Off() { fmt.Fprintln(p.w, p.name+" off") }

// WideScreenMode selects the aspect ratio movies deserve.
func (p *Projector) WideScreenMode() {
	fmt.Fprintln(p.w, p.name+" in widescreen mode (16x9 aspect ratio)")
}

// Screen drops for the feature and climbs back after.
type Screen struct {
	name string
	w    io.Writer
}

// NewScreen returns the named screen narrating into w.
func NewScreen(name string, w io.Writer) *Screen {
	mustWriter(w, "screen")
	return &Screen{name: name, w: w}
}

func (s *Screen) Down() { fmt.Fprintln(s.w, s.name+" going down") }
func (s *Screen) Up()   { fmt.Fprintln(s.w, s.name+" going up") }

// TheaterLights dim for the show.
type TheaterLights struct {
	name string
	w    io.Writer
}

// NewTheaterLights returns the named lights narrating into w.
func NewTheaterLights(name string, w io.Writer) *TheaterLights {
	mustWriter(w, "theater lights")
	return &TheaterLights{name: name, w: w}
}

func (l *TheaterLights) On() { fmt.Fprintln(l.w, l.name+" on") }

// Dim lowers the lights to the given percentage.
func (l *TheaterLights) Dim(pct int) {
	fmt.Fprintf(l.w, "%s dimming to %d%%\n", l.name, pct)
}

// PopcornPopper is the most important device in the room.
type PopcornPopper struct {
	name string
	w    io.Writer
}

// NewPopcornPopper returns the named popper narrating into w.
func NewPopcornPopper(name string, w io.Writer) *PopcornPopper {
	mustWriter(w, "popcorn popper")
	return &PopcornPopper{name: name, w: w}
}

func (p *PopcornPopper) On()  { fmt.Fprintln(p.w, p.name+" on") }
func (p *PopcornPopper) Off() { fmt.Fprintln(p.w, p.name+" off") }

// Pop pops.
func (p *PopcornPopper) Pop() { fmt.Fprintln(p.w, p.name+" popping popcorn!") }
