// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strings"
)

// Slots is how many on/off pairs the remote carries.
const Slots = 7

// ErrSlotOutOfRange is returned for slot indexes outside 0..Slots-1.
var ErrSlotOutOfRange = errors.New("command: slot out of range")

// RemoteControl is the invoker: seven on/off pairs and a single-level undo.
// Every slot starts as NoCommand, so pressing an unprogrammed button is a
// harmless nothing. Not safe for concurrent use; it is one remote in one
// hand.
type RemoteControl struct {
	onCommands  [Slots]Command
	offCommands [Slots]Command
	undo        Command
}

// NewRemoteControl returns a remote with every button unprogrammed.
func NewRemoteControl() *RemoteControl {
	rc := &RemoteControl{undo: NoCommand{}}
	for i := 0; i < Slots; i++ {
		rc.onCommands[i] = NoCommand{}
		rc.offCommands[i] = NoCommand{}
	}
	return rc
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= Slots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	return nil
}

// SetCommand programs one slot's on/off pair. A nil command is replaced by
// NoCommand, keeping the no-crash guarantee.
func (rc *RemoteControl) SetCommand(slot int, on, off Command) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if on == nil {
		on = NoCommand{}
	}
	if off == nil {
		off = NoCommand{}
	}
	rc.onCommands[slot] = on
	rc.offCommands[slot] = off
	return nil
}

// PressOn fires the slot's on command and arms undo with it.
func (rc *RemoteControl) PressOn(slot int) (string, error) {
	if err := checkSlot(slot); err != nil {
		return "", err
	}
	cmd := rc.onCommands[slot]
	out := cmd.Execute()
	rc.undo = cmd
	return out, nil
}

// PressOff fires the slot's off command and arms undo with it.
func (rc *RemoteControl) PressOff(slot int) (string, error) {
	if err := checkSlot(slot); err != nil {
		return "", err
	}
	cmd := rc.offCommands[slot]
	out := cmd.Execute()
	rc.undo = cmd
	return out, nil
}

// PressUndo reverses the last pressed command. Before any press (or after
// undoing an unprogrammed button) it is a quiet no-op.
func (rc *RemoteControl) PressUndo() string {
	return rc.undo.Undo()
}

// commandName renders a command for the slot table: the bare type name.
func commandName(c Command) string {
	name := fmt.Sprintf("%T", c)
	name = strings.TrimPrefix(name, "*")
	return strings.TrimPrefix(name, "command.")
}

// String renders the programming table, one slot per line.
func (rc *RemoteControl) String() string {
	var b strings.Builder
	b.WriteString("------ Remote Control -------\n")
	for i := 0; i < Slots; i++ {
		fmt.Fprintf(&b, "[slot %d] %-28s %s\n",
			i, commandName(rc.onCommands[i]), commandName(rc.offCommands[i]))
	}
	return b.String()
}
