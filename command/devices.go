// SPDX-License-Identifier: MIT

package command

import "fmt"

// The receivers. Each narrates what it did; none of them has ever heard of
// a button.

// Light is the simplest receiver: on or off, by room name.
type Light struct {
	name string
}

// NewLight returns the light for the named room.
func NewLight(name string) *Light {
	return &Light{name: name}
}

func (l *Light) On() string  { return l.name + " light is on" }
func (l *Light) Off() string { return l.name + " light is off" }

// FanSpeed is a CeilingFan setting.
type FanSpeed int

const (
	FanOff FanSpeed = iota
	FanLow
	FanMedium
	FanHigh
)

// String returns the setting as spoken: "off", "low", "medium", "high".
func (s FanSpeed) String() string {
	switch s {
	case FanOff:
		return "off"
	case FanLow:
		return "low"
	case FanMedium:
		return "medium"
	case FanHigh:
		return "high"
	default:
		return fmt.Sprintf("FanSpeed(%d)", int(s))
	}
}

// CeilingFan remembers its current speed, which is what makes its undo
// interesting: undoing "high" must restore WHATEVER was set before, not
// simply switch off.
type CeilingFan struct {
	name  string
	speed FanSpeed
}

// NewCeilingFan returns the named fan, switched off.
func NewCeilingFan(name string) *CeilingFan {
	return &CeilingFan{name: name}
}

// SetSpeed moves the fan to s and narrates it.
func (f *CeilingFan) SetSpeed(s FanSpeed) string {
	f.speed = s
	if s == FanOff {
		return f.name + " ceiling fan is off"
	}
	return fmt.Sprintf("%s ceiling fan is on %s", f.name, s)
}

// Speed reports the current setting.
func (f *CeilingFan) Speed() FanSpeed { return f.speed }

// GarageDoor goes up and down.
type GarageDoor struct {
	name string
}

// NewGarageDoor returns the named door.
func NewGarageDoor(name string) *GarageDoor {
	return &GarageDoor{name: name}
}

func (g *GarageDoor) Up() string   { return g.name + " garage door is open" }
func (g *GarageDoor) Down() string { return g.name + " garage door is closed" }

// Stereo powers up, takes a volume, powers down.
type Stereo struct {
	name   string
	volume int
}

// NewStereo returns the named stereo, silent.
func NewStereo(name string) *Stereo {
	return &Stereo{name: name}
}

func (s *Stereo) On() string  { return s.name + " stereo is on" }
func (s *Stereo) Off() string { return s.name + " stereo is off" }

// SetVolume sets and narrates the volume.
func (s *Stereo) SetVolume(v int) string {
	s.volume = v
	return fmt.Sprintf("%s stereo volume set to %d", s.name, v)
}

// Volume reports the current volume.
func (s *Stereo) Volume() int { return s.volume }
