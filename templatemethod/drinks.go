package templatemethod

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Tea steeps and takes lemon. It carries no CondimentDecider, so the ritual
// adds the lemon every time.
type Tea struct{}

func (Tea) Brew() string { return "Steeping the tea" }

func (Tea) Condiments() []string { return []string{"Adding lemon"} }

// Coffee brews and takes milk and creamer, but only if its Decider agrees.
type Coffee struct {
	// Decider answers the condiment question; nil means always yes.
	Decider func() bool
}

func (*Coffee) Brew() string { return "Brewing coffee" }

func (*Coffee) Condiments() []string {
	return []string{"Adding milk", "Adding creamer"}
}

// WantsCondiments implements CondimentDecider by delegating to the Decider
// func.
func (c *Coffee) WantsCondiments() bool {
	if c.Decider == nil {
		return true
	}
	return c.Decider()
}

// YesNoDecider builds a Decider that writes the condiment question to w and
// reads one line from r. Any answer starting with y or Y counts as yes;
// everything else, including end of input, is no. Wire it to os.Stdin and
// os.Stdout for the interactive demo, or to canned readers in tests.
func YesNoDecider(r io.Reader, w io.Writer) func() bool {
	scanner := bufio.NewScanner(r)
	return func() bool {
		fmt.Fprint(w, "Would you like milk and creamer with your coffee (y/n)? ")
		if !scanner.Scan() {
			return false
		}
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return strings.HasPrefix(answer, "y")
	}
}
