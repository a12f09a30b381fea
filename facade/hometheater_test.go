package facade_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/patternslab/patterns/facade"
)

func transcript(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestWatchMovie_Sequence(t *testing.T) {
	var buf bytes.Buffer
	theater := facade.NewHomeTheater(&buf)

	theater.WatchMovie("Raiders of the Lost Ark")

	want := []string{
		"Get ready to watch a movie...",
		"Popcorn Popper on",
		"Popcorn Popper popping popcorn!",
		"Theater Ceiling Lights dimming to 10%",
		"Theater Screen going down",
		"Top-O-Line Projector on",
		"Top-O-Line Projector in widescreen mode (16x9 aspect ratio)",
		"Top-O-Line Amplifier on",
		"Top-O-Line Amplifier setting Streaming player to Top-O-Line Streaming Player",
		"Top-O-Line Amplifier surround sound on (5 speakers, 1 subwoofer)",
		"Top-O-Line Amplifier setting volume to 5",
		"Top-O-Line Streaming Player on",
		`Top-O-Line Streaming Player playing "Raiders of the Lost Ark"`,
	}
	if got := transcript(&buf); !reflect.DeepEqual(got, want) {
		t.Errorf("WatchMovie transcript:\n got %q\nwant %q", got, want)
	}
}

func TestEndMovie_Sequence(t *testing.T) {
	var buf bytes.Buffer
	theater := facade.NewHomeTheater(&buf)

	theater.WatchMovie("Raiders of the Lost Ark")
	buf.Reset() // keep only the shutdown

	theater.EndMovie()

	want := []string{
		"Shutting movie theater down...",
		"Popcorn Popper off",
		"Theater Ceiling Lights on",
		"Theater Screen going up",
		"Top-O-Line Projector off",
		"Top-O-Line Amplifier off",
		`Top-O-Line Streaming Player stopped "Raiders of the Lost Ark"`,
		"Top-O-Line Streaming Player off",
	}
	if got := transcript(&buf); !reflect.DeepEqual(got, want) {
		t.Errorf("EndMovie transcript:\n got %q\nwant %q", got, want)
	}
}

func TestStreamingPlayer_StopWithoutMovie(t *testing.T) {
	var buf bytes.Buffer
	player := facade.NewStreamingPlayer("Player", &buf)

	player.Stop()
	if got := buf.String(); got != "Player stopped\n" {
		t.Errorf("Stop() narrated %q", got)
	}
}

func TestStreamingPlayer_StopClearsMovie(t *testing.T) {
	var buf bytes.Buffer
	player := facade.NewStreamingPlayer("Player", &buf)

	player.Play("Heat")
	player.Stop()
	buf.Reset()

	// A second stop has nothing to name.
	player.Stop()
	if got := buf.String(); got != "Player stopped\n" {
		t.Errorf("second Stop() narrated %q", got)
	}
}

func TestDevices_Standalone(t *testing.T) {
	// The subsystem stays public: the long way around still works.
	var buf bytes.Buffer
	lights := facade.NewTheaterLights("Hall Lights", &buf)
	popper := facade.NewPopcornPopper("Popper", &buf)

	lights.Dim(50)
	popper.On()
	popper.Pop()

	want := []string{
		"Hall Lights dimming to 50%",
		"Popper on",
		"Popper popping popcorn!",
	}
	if got := transcript(&buf); !reflect.DeepEqual(got, want) {
		t.Errorf("standalone transcript = %q; want %q", got, want)
	}
}

func TestNilWriterPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"home theater", func() { facade.NewHomeTheater(nil) }},
		{"amplifier", func() { facade.NewAmplifier("a", nil) }},
		{"player", func() { facade.NewStreamingPlayer("p", nil) }},
		{"projector", func() { facade.NewProjector("p", nil) }},
		{"screen", func() { facade.NewScreen("s", nil) }},
		{"lights", func() { facade.NewTheaterLights("l", nil) }},
		{"popper", func() { facade.NewPopcornPopper("p", nil) }},
	}
	for _, tc := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: nil writer did not panic", tc.name)
				}
			}()
			tc.fn()
		}()
	}
}
