// SPDX-License-Identifier: MIT

package command

import "strings"

// Command is a request turned into a value: something to do, and how to take
// it back. Both directions narrate what happened; a multi-action command
// joins its lines with newlines.
type Command interface {
	Execute() string
	Undo() string
}

// NoCommand is the null object wired into every virgin slot. Pressing it
// does nothing, loudly returning nothing.
type NoCommand struct{}

func (NoCommand) Execute() string { return "" }
func (NoCommand) Undo() string    { return "" }

// MacroCommand fires a whole list with one press and unwinds it in reverse
// order, so the undo of "party mode" puts the room back exactly.
type MacroCommand struct {
	commands []Command
}

// NewMacroCommand copies cmds into a macro. Nil entries are dropped rather
// than detonating later.
func NewMacroCommand(cmds ...Command) *MacroCommand {
	m := &MacroCommand{commands: make([]Command, 0, len(cmds))}
	for _, c := range cmds {
		if c != nil {
			m.commands = append(m.commands, c)
		}
	}
	return m
}

// Execute runs every command in order.
func (m *MacroCommand) Execute() string {
	lines := make([]string, 0, len(m.commands))
	for _, c := range m.commands {
		if out := c.Execute(); out != "" {
			lines = append(lines, out)
		}
	}
	return strings.Join(lines, "\n")
}

// Undo unwinds in reverse order.
func (m *MacroCommand) Undo() string {
	lines := make([]string, 0, len(m.commands))
	for i := len(m.commands) - 1; i >= 0; i-- {
		if out := m.commands[i].Undo(); out != "" {
			lines = append(lines, out)
		}
	}
	return strings.Join(lines, "\n")
}
