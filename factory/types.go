package factory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPizzaType is returned when a requested pizza is not on the menu.
var ErrUnknownPizzaType = errors.New("factory: unknown pizza type")

// PizzaType enumerates the menu.
type PizzaType int

const (
	// Cheese is the plain sauce-and-cheese pizza.
	Cheese PizzaType = iota
	// Hawaiian carries ham and pineapple; complaints go to the marketing
	// department, not the kitchen.
	Hawaiian
	// Veggie is whatever the regional ingredient family calls vegetables.
	Veggie
)

// String returns the lowercase menu name.
func (t PizzaType) String() string {
	switch t {
	case Cheese:
		return "cheese"
	case Hawaiian:
		return "hawaiian"
	case Veggie:
		return "veggie"
	default:
		return fmt.Sprintf("PizzaType(%d)", int(t))
	}
}

// ParsePizzaType maps user input (case-insensitive) onto the menu.
// Unknown names return ErrUnknownPizzaType wrapped with the offending text.
func ParsePizzaType(s string) (PizzaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cheese":
		return Cheese, nil
	case "hawaiian":
		return Hawaiian, nil
	case "veggie":
		return Veggie, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPizzaType, s)
	}
}
