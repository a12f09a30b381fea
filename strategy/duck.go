package strategy

// Duck composes a name with one fly and one quack behavior.
// Species differ only in the behaviors their constructor installs;
// both behaviors can be swapped at runtime.
type Duck struct {
	name  string
	fly   FlyBehavior
	quack QuackBehavior
}

// NewDuck builds a custom duck. Nil behaviors default to FlyNoWay and
// MuteQuack, so a half-wired duck is grounded and silent, never broken.
func NewDuck(name string, fly FlyBehavior, quack QuackBehavior) *Duck {
	if fly == nil {
		fly = FlyNoWay{}
	}
	if quack == nil {
		quack = MuteQuack{}
	}

	return &Duck{name: name, fly: fly, quack: quack}
}

// NewMallardDuck returns a mallard: wings plus a proper quack.
func NewMallardDuck() *Duck {
	return NewDuck("Mallard", FlyWithWings{}, Quack{})
}

// NewRubberDuck returns a rubber duck: grounded, squeaky.
func NewRubberDuck() *Duck {
	return NewDuck("Rubber", FlyNoWay{}, Squeak{})
}

// NewModelDuck returns a model duck: grounded until someone bolts a rocket on.
func NewModelDuck() *Duck {
	return NewDuck("Model", FlyNoWay{}, Quack{})
}

// NewDecoyDuck returns a wooden decoy: no flight, no sound.
func NewDecoyDuck() *Duck {
	return NewDuck("Decoy", FlyNoWay{}, MuteQuack{})
}

// Name reports the duck's display name.
func (d *Duck) Name() string { return d.name }

// PerformFly delegates to the installed FlyBehavior.
func (d *Duck) PerformFly() string { return d.fly.Fly(d.name) }

// PerformQuack delegates to the installed QuackBehavior.
func (d *Duck) PerformQuack() string { return d.quack.Quack(d.name) }

// Swim is shared by all ducks; even decoys float.
func (d *Duck) Swim() string { return d.name + " floats, as all ducks do" }

// SetFlyBehavior swaps the fly behavior; the next PerformFly uses it.
// A nil behavior is ignored.
func (d *Duck) SetFlyBehavior(fly FlyBehavior) {
	if fly != nil {
		d.fly = fly
	}
}

// SetQuackBehavior swaps the quack behavior; the next PerformQuack uses it.
// A nil behavior is ignored.
func (d *Duck) SetQuackBehavior(quack QuackBehavior) {
	if quack != nil {
		d.quack = quack
	}
}
