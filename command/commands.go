// SPDX-License-Identifier: MIT

package command

import "strings"

// mustDevice guards the command constructors: binding a button to a device
// that does not exist is a programmer error, caught at wiring time.
func mustDevice(ok bool, what string) {
	if !ok {
		panic("command: nil " + what)
	}
}

// LightOnCommand turns its light on; undo turns it off.
type LightOnCommand struct {
	light *Light
}

func NewLightOnCommand(l *Light) *LightOnCommand {
	mustDevice(l != nil, "light")
	return &LightOnCommand{light: l}
}

func (c *LightOnCommand) Execute() string { return c.light.On() }
func (c *LightOnCommand) Undo() string    { return c.light.Off() }

// LightOffCommand is the mirror image.
type LightOffCommand struct {
	light *Light
}

func NewLightOffCommand(l *Light) *LightOffCommand {
	mustDevice(l != nil, "light")
	return &LightOffCommand{light: l}
}

func (c *LightOffCommand) Execute() string { return c.light.Off() }
func (c *LightOffCommand) Undo() string    { return c.light.On() }

// ceilingFanSet is the shared machinery of the fan commands: set a target
// speed, remember what was there, restore it on undo.
type ceilingFanSet struct {
	fan  *CeilingFan
	prev FanSpeed
}

func (c *ceilingFanSet) set(target FanSpeed) string {
	c.prev = c.fan.Speed()
	return c.fan.SetSpeed(target)
}

// Undo restores the speed recorded by the last Execute.
func (c *ceilingFanSet) Undo() string { return c.fan.SetSpeed(c.prev) }

// CeilingFanHighCommand cranks the fan to high and can put it back.
type CeilingFanHighCommand struct {
	ceilingFanSet
}

func NewCeilingFanHighCommand(f *CeilingFan) *CeilingFanHighCommand {
	mustDevice(f != nil, "ceiling fan")
	return &CeilingFanHighCommand{ceilingFanSet{fan: f}}
}

func (c *CeilingFanHighCommand) Execute() string { return c.set(FanHigh) }

// CeilingFanMediumCommand sets medium.
type CeilingFanMediumCommand struct {
	ceilingFanSet
}

func NewCeilingFanMediumCommand(f *CeilingFan) *CeilingFanMediumCommand {
	mustDevice(f != nil, "ceiling fan")
	return &CeilingFanMediumCommand{ceilingFanSet{fan: f}}
}

func (c *CeilingFanMediumCommand) Execute() string { return c.set(FanMedium) }

// CeilingFanOffCommand stops the fan.
type CeilingFanOffCommand struct {
	ceilingFanSet
}

func NewCeilingFanOffCommand(f *CeilingFan) *CeilingFanOffCommand {
	mustDevice(f != nil, "ceiling fan")
	return &CeilingFanOffCommand{ceilingFanSet{fan: f}}
}

func (c *CeilingFanOffCommand) Execute() string { return c.set(FanOff) }

// GarageDoorUpCommand opens the door; undo closes it.
type GarageDoorUpCommand struct {
	door *GarageDoor
}

func NewGarageDoorUpCommand(d *GarageDoor) *GarageDoorUpCommand {
	mustDevice(d != nil, "garage door")
	return &GarageDoorUpCommand{door: d}
}

func (c *GarageDoorUpCommand) Execute() string { return c.door.Up() }
func (c *GarageDoorUpCommand) Undo() string    { return c.door.Down() }

// GarageDoorDownCommand is the mirror image.
type GarageDoorDownCommand struct {
	door *GarageDoor
}

func NewGarageDoorDownCommand(d *GarageDoor) *GarageDoorDownCommand {
	mustDevice(d != nil, "garage door")
	return &GarageDoorDownCommand{door: d}
}

func (c *GarageDoorDownCommand) Execute() string { return c.door.Down() }
func (c *GarageDoorDownCommand) Undo() string    { return c.door.Up() }

// StereoOnWithVolumeCommand is one press, two device actions: power on,
// volume to 11.
type StereoOnWithVolumeCommand struct {
	stereo *Stereo
}

func NewStereoOnWithVolumeCommand(s *Stereo) *StereoOnWithVolumeCommand {
	mustDevice(s != nil, "stereo")
	return &StereoOnWithVolumeCommand{stereo: s}
}

func (c *StereoOnWithVolumeCommand) Execute() string {
	return strings.Join([]string{
		c.stereo.On(),
		c.stereo.SetVolume(11),
	}, "\n")
}

func (c *StereoOnWithVolumeCommand) Undo() string { return c.stereo.Off() }

// StereoOffCommand powers the stereo down; undo brings it back at 11.
type StereoOffCommand struct {
	stereo *Stereo
}

func NewStereoOffCommand(s *Stereo) *StereoOffCommand {
	mustDevice(s != nil, "stereo")
	return &StereoOffCommand{stereo: s}
}

func (c *StereoOffCommand) Execute() string { return c.stereo.Off() }

func (c *StereoOffCommand) Undo() string {
	return strings.Join([]string{
		c.stereo.On(),
		c.stereo.SetVolume(11),
	}, "\n")
}
