// SPDX-License-Identifier: MIT

// Package command illustrates the Command pattern with the programmable
// remote control: requests reified as objects, so they can be queued,
// undone, composed and, here, persisted.
//
// What:
//
//   - Command — Execute and Undo, both returning the narrated outcome. A
//     command may narrate several lines (separated by newlines) when one
//     button press drives several device actions.
//   - Devices — the receivers: Light, CeilingFan (with speeds), GarageDoor
//     and Stereo. They know how to DO things; they know nothing about
//     buttons.
//   - Concrete commands — one small type per button meaning (LightOnCommand,
//     CeilingFanHighCommand, StereoOnWithVolumeCommand, …), each binding a
//     device to one action and its reversal. NoCommand is the null object:
//     an unprogrammed button does nothing instead of crashing. MacroCommand
//     runs a list and undoes it in reverse.
//   - RemoteControl — seven slots, each an on/off pair, every slot born
//     holding NoCommand. PressUndo reverses the last press. Not safe for
//     concurrent use: it is one remote in one hand.
//   - Layout — a serializable description of what is programmed where,
//     readable and writable as JSON or YAML, with Validate catching bad slot
//     numbers and unknown device kinds before Program wires it into a live
//     remote.
//
// Why:
//
//	The remote's vendor cannot know what it will control. Shipping the
//	invocation as a value — instead of a hardwired call — decouples the
//	button from the living room, and everything else (undo, macros, saved
//	layouts) falls out of commands being plain values.
//
// Errors:
//
//   - ErrSlotOutOfRange — slot index outside 0..6.
//   - ErrUnknownDevice — a layout names a device kind nobody manufactures.
package command
