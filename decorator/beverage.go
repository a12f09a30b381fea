package decorator

// Beverage is what the till sees: a printable description and a price.
// Base drinks and condiment decorators implement it alike.
type Beverage interface {
	Description() string
	Cost() float64
}

// Espresso is a base drink.
type Espresso struct{}

// NewEspresso returns an undecorated espresso.
func NewEspresso() *Espresso { return &Espresso{} }

func (*Espresso) Description() string { return "Espresso" }
func (*Espresso) Cost() float64       { return 1.99 }

// HotBlend is the cheap base drink of the house.
type HotBlend struct{}

// NewHotBlend returns an undecorated hot blend.
func NewHotBlend() *HotBlend { return &HotBlend{} }

func (*HotBlend) Description() string { return "Hot Blend Coffee" }
func (*HotBlend) Cost() float64       { return 0.89 }
