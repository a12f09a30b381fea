package strategy

// FlyBehavior produces the flying line for a duck of the given name.
type FlyBehavior interface {
	Fly(name string) string
}

// QuackBehavior produces the quacking line for a duck of the given name.
type QuackBehavior interface {
	Quack(name string) string
}

// FlyFunc adapts a plain function into a FlyBehavior.
type FlyFunc func(name string) string

// Fly calls fn(name).
func (fn FlyFunc) Fly(name string) string { return fn(name) }

// QuackFunc adapts a plain function into a QuackBehavior.
type QuackFunc func(name string) string

// Quack calls fn(name).
func (fn QuackFunc) Quack(name string) string { return fn(name) }

// FlyWithWings is the standard airborne behavior of real ducks.
type FlyWithWings struct{}

func (FlyWithWings) Fly(name string) string {
	return name + " is flapping its wings in the air!"
}

// FlyNoWay keeps flightless ducks (rubber, wooden, model) on the ground.
type FlyNoWay struct{}

func (FlyNoWay) Fly(name string) string {
	return name + " cannot fly! :("
}

// FlyRocketPowered is what you strap onto a model duck at runtime.
type FlyRocketPowered struct{}

func (FlyRocketPowered) Fly(name string) string {
	return name + " is blasting off!"
}

// Quack is the normal quacking behavior.
type Quack struct{}

func (Quack) Quack(name string) string {
	return name + " goes quack quack!"
}

// Squeak is what rubber ducks do instead of quacking.
type Squeak struct{}

func (Squeak) Quack(name string) string {
	return name + " can't quack, but it can sure squeak!"
}

// MuteQuack is the silent treatment, for decoys.
type MuteQuack struct{}

func (MuteQuack) Quack(name string) string {
	return name + " says nothing at all"
}
