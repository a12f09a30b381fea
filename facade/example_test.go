package facade_test

import (
	"os"

	"github.com/patternslab/patterns/facade"
)

// ---------------------------------------------------------------------------
// Scenario: movie night, two verbs, zero remote-juggling.
// ---------------------------------------------------------------------------

func ExampleHomeTheater() {
	theater := facade.NewHomeTheater(os.Stdout)

	theater.WatchMovie("Raiders of the Lost Ark")
	theater.EndMovie()

	// Output:
	// Get ready to watch a movie...
	// Popcorn Popper on
	// Popcorn Popper popping popcorn!
	// Theater Ceiling Lights dimming to 10%
	// Theater Screen going down
	// Top-O-Line Projector on
	// Top-O-Line Projector in widescreen mode (16x9 aspect ratio)
	// Top-O-Line Amplifier on
	// Top-O-Line Amplifier setting Streaming player to Top-O-Line Streaming Player
	// Top-O-Line Amplifier surround sound on (5 speakers, 1 subwoofer)
	// Top-O-Line Amplifier setting volume to 5
	// Top-O-Line Streaming Player on
	// Top-O-Line Streaming Player playing "Raiders of the Lost Ark"
	// Shutting movie theater down...
	// Popcorn Popper off
	// Theater Ceiling Lights on
	// Theater Screen going up
	// Top-O-Line Projector off
	// Top-O-Line Amplifier off
	// Top-O-Line Streaming Player stopped "Raiders of the Lost Ark"
	// Top-O-Line Streaming Player off
}
