// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigFastest

// ErrUnknownDevice is returned when a layout names a device kind nobody
// manufactures.
var ErrUnknownDevice = errors.New("command: unknown device kind")

// Device kinds a layout may reference.
const (
	DeviceLight      = "light"
	DeviceCeilingFan = "ceiling_fan"
	DeviceGarageDoor = "garage_door"
	DeviceStereo     = "stereo"
)

// SlotLayout assigns one device to one slot: the kind decides which command
// pair gets wired, the name is the room label on the narration.
type SlotLayout struct {
	Slot   int    `json:"slot" yaml:"slot"`
	Device string `json:"device" yaml:"device"`
	Name   string `json:"name" yaml:"name"`
}

// Layout is a remote's programming, detached from any live devices, so it
// can be saved tonight and wired into a fresh remote tomorrow.
type Layout struct {
	Name  string       `json:"name" yaml:"name"`
	Slots []SlotLayout `json:"slots" yaml:"slots"`
}

// Validate checks the layout before it touches a remote: a non-empty name
// (it becomes the file name), slots in range, no slot claimed twice, and
// only known device kinds.
func (l Layout) Validate() error {
	if l.Name == "" {
		return errors.New("command: layout needs a name")
	}
	claimed := make(map[int]bool, len(l.Slots))
	for _, s := range l.Slots {
		if err := checkSlot(s.Slot); err != nil {
			return err
		}
		if claimed[s.Slot] {
			return fmt.Errorf("command: slot %d assigned twice", s.Slot)
		}
		claimed[s.Slot] = true
		switch s.Device {
		case DeviceLight, DeviceCeilingFan, DeviceGarageDoor, DeviceStereo:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownDevice, s.Device)
		}
	}
	return nil
}

// Program validates the layout, manufactures the devices it names and wires
// their command pairs into the remote. Slots the layout does not mention
// keep whatever they held, usually NoCommand.
func Program(rc *RemoteControl, l Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	for _, s := range l.Slots {
		var on, off Command
		switch s.Device {
		case DeviceLight:
			light := NewLight(s.Name)
			on, off = NewLightOnCommand(light), NewLightOffCommand(light)
		case DeviceCeilingFan:
			fan := NewCeilingFan(s.Name)
			on, off = NewCeilingFanHighCommand(fan), NewCeilingFanOffCommand(fan)
		case DeviceGarageDoor:
			door := NewGarageDoor(s.Name)
			on, off = NewGarageDoorUpCommand(door), NewGarageDoorDownCommand(door)
		case DeviceStereo:
			stereo := NewStereo(s.Name)
			on, off = NewStereoOnWithVolumeCommand(stereo), NewStereoOffCommand(stereo)
		}
		if err := rc.SetCommand(s.Slot, on, off); err != nil {
			return err
		}
	}
	return nil
}

// JSONLayoutStore keeps layouts as <dir>/<name>.json files.
type JSONLayoutStore struct {
	dir string
}

// NewJSONLayoutStore creates the store, ensuring the directory exists.
func NewJSONLayoutStore(dir string) (*JSONLayoutStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONLayoutStore{dir: dir}, nil
}

// Save validates and writes the layout under its own name.
func (p *JSONLayoutStore) Save(l Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	fn := filepath.Join(p.dir, l.Name+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

// Load reads and validates the named layout. A missing file surfaces as
// os.ErrNotExist, wrapped with the layout name.
func (p *JSONLayoutStore) Load(name string) (Layout, error) {
	fn := filepath.Join(p.dir, name+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Layout{}, fmt.Errorf("layout %q: %w", name, os.ErrNotExist)
		}
		return Layout{}, fmt.Errorf("read %s: %w", fn, err)
	}
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout validation after load: %w", err)
	}
	return l, nil
}

// YAMLLayoutStore keeps layouts as <dir>/<name>.yaml files, for people who
// edit their remote by hand.
type YAMLLayoutStore struct {
	dir string
}

// NewYAMLLayoutStore creates the store, ensuring the directory exists.
func NewYAMLLayoutStore(dir string) (*YAMLLayoutStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLLayoutStore{dir: dir}, nil
}

// Save validates and writes the layout under its own name.
func (p *YAMLLayoutStore) Save(l Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	fn := filepath.Join(p.dir, l.Name+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

// Load reads and validates the named layout.
func (p *YAMLLayoutStore) Load(name string) (Layout, error) {
	fn := filepath.Join(p.dir, name+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Layout{}, fmt.Errorf("layout %q: %w", name, os.ErrNotExist)
		}
		return Layout{}, fmt.Errorf("read %s: %w", fn, err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout validation after load: %w", err)
	}
	return l, nil
}
