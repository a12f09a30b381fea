package adapter

// Quacker is the vocabulary the duck simulator expects.
type Quacker interface {
	Quack() string
	Fly() string
}

// Gobbler is what turkeys actually speak.
type Gobbler interface {
	Gobble() string
}

// MallardDuck is a native Quacker.
type MallardDuck struct{}

func (MallardDuck) Quack() string { return "Quack quack!" }
func (MallardDuck) Fly() string   { return "Mallard ducks assemble and fly!" }

// WildTurkey is a native Gobbler.
type WildTurkey struct{}

func (WildTurkey) Gobble() string { return "Gobble gobble" }

// TurkeyAdapter lets a turkey stand in wherever a Quacker is required.
type TurkeyAdapter struct {
	turkey Gobbler
}

var _ Quacker = (*TurkeyAdapter)(nil)

// NewTurkeyAdapter wraps a turkey. Panics if the turkey is nil.
func NewTurkeyAdapter(turkey Gobbler) *TurkeyAdapter {
	if turkey == nil {
		panic("adapter: cannot adapt a nil turkey")
	}
	return &TurkeyAdapter{turkey: turkey}
}

// Quack translates to the turkey's own voice.
func (a *TurkeyAdapter) Quack() string { return a.turkey.Gobble() }

// Fly does not pretend: the disguise covers the voice, not the wings.
func (a *TurkeyAdapter) Fly() string { return "Turkeys cannot fly!" }

// DuckAdapter is the reverse disguise: a duck passing as a Gobbler.
type DuckAdapter struct {
	duck Quacker
}

var _ Gobbler = (*DuckAdapter)(nil)

// NewDuckAdapter wraps a duck. Panics if the duck is nil.
func NewDuckAdapter(duck Quacker) *DuckAdapter {
	if duck == nil {
		panic("adapter: cannot adapt a nil duck")
	}
	return &DuckAdapter{duck: duck}
}

// Gobble translates to the duck's own voice.
func (a *DuckAdapter) Gobble() string { return a.duck.Quack() }
