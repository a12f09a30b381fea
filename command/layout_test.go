package command_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternslab/patterns/command"
)

func evening() command.Layout {
	return command.Layout{
		Name: "evening",
		Slots: []command.SlotLayout{
			{Slot: 0, Device: command.DeviceLight, Name: "Living Room"},
			{Slot: 1, Device: command.DeviceCeilingFan, Name: "Living Room"},
			{Slot: 2, Device: command.DeviceGarageDoor, Name: "Main"},
			{Slot: 3, Device: command.DeviceStereo, Name: "Living Room"},
		},
	}
}

func TestLayout_Validate(t *testing.T) {
	require.NoError(t, evening().Validate())

	unnamed := evening()
	unnamed.Name = ""
	assert.Error(t, unnamed.Validate())

	badSlot := evening()
	badSlot.Slots[0].Slot = command.Slots
	assert.ErrorIs(t, badSlot.Validate(), command.ErrSlotOutOfRange)

	duplicate := evening()
	duplicate.Slots[1].Slot = 0
	err := duplicate.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assigned twice")

	alien := evening()
	alien.Slots[2].Device = "teleporter"
	assert.ErrorIs(t, alien.Validate(), command.ErrUnknownDevice)
}

func TestProgram(t *testing.T) {
	rc := command.NewRemoteControl()
	require.NoError(t, command.Program(rc, evening()))

	out, err := rc.PressOn(0)
	require.NoError(t, err)
	assert.Equal(t, "Living Room light is on", out)

	out, err = rc.PressOn(1)
	require.NoError(t, err)
	assert.Equal(t, "Living Room ceiling fan is on high", out)

	out, err = rc.PressOn(2)
	require.NoError(t, err)
	assert.Equal(t, "Main garage door is open", out)

	out, err = rc.PressOn(3)
	require.NoError(t, err)
	assert.Equal(t, "Living Room stereo is on\nLiving Room stereo volume set to 11", out)

	// Slots the layout never mentioned stay unprogrammed.
	out, err = rc.PressOn(4)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProgram_InvalidLayoutTouchesNothing(t *testing.T) {
	rc := command.NewRemoteControl()
	broken := evening()
	broken.Slots[3].Device = "teleporter"

	err := command.Program(rc, broken)
	require.ErrorIs(t, err, command.ErrUnknownDevice)

	// Validation failed before wiring: slot 0 must still be NoCommand.
	out, pressErr := rc.PressOn(0)
	require.NoError(t, pressErr)
	assert.Empty(t, out)
}

func TestJSONLayoutStore_RoundTrip(t *testing.T) {
	store, err := command.NewJSONLayoutStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(evening()))

	loaded, err := store.Load("evening")
	require.NoError(t, err)
	assert.Equal(t, evening(), loaded)
}

func TestYAMLLayoutStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := command.NewYAMLLayoutStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(evening()))

	// The file really is YAML on disk, editable by hand.
	data, err := os.ReadFile(filepath.Join(dir, "evening.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "device: ceiling_fan")

	loaded, err := store.Load("evening")
	require.NoError(t, err)
	assert.Equal(t, evening(), loaded)
}

func TestLayoutStore_LoadMissing(t *testing.T) {
	store, err := command.NewJSONLayoutStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLayoutStore_SaveInvalid(t *testing.T) {
	store, err := command.NewYAMLLayoutStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Save(command.Layout{}), "a nameless layout must be refused")
}

func TestJSONLayoutStore_LoadRejectsBadPayload(t *testing.T) {
	dir := t.TempDir()
	store, err := command.NewJSONLayoutStore(dir)
	require.NoError(t, err)

	// A file that parses but fails validation: unknown device kind.
	raw := `{"name":"haunted","slots":[{"slot":0,"device":"teleporter","name":"Attic"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "haunted.json"), []byte(raw), 0o644))

	_, err = store.Load("haunted")
	assert.ErrorIs(t, err, command.ErrUnknownDevice)
}

func TestLayoutRoundTrip_ThenProgram(t *testing.T) {
	store, err := command.NewJSONLayoutStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save(evening()))

	loaded, err := store.Load("evening")
	require.NoError(t, err)

	rc := command.NewRemoteControl()
	require.NoError(t, command.Program(rc, loaded))

	out, err := rc.PressOn(0)
	require.NoError(t, err)
	assert.Equal(t, "Living Room light is on", out)
}
