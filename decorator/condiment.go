package decorator

// mustWrap rejects nil components at construction time rather than at
// first use.
func mustWrap(b Beverage) {
	if b == nil {
		panic("decorator: cannot wrap a nil beverage")
	}
}

// Mocha adds chocolate and 49 cents to whatever it wraps.
type Mocha struct {
	wrapped Beverage
}

// NewMocha wraps b in a shot of mocha. Panics if b is nil.
func NewMocha(b Beverage) *Mocha {
	mustWrap(b)
	return &Mocha{wrapped: b}
}

func (m *Mocha) Description() string { return m.wrapped.Description() + ", Mocha" }
func (m *Mocha) Cost() float64       { return m.wrapped.Cost() + 0.49 }

// Whip adds whipped cream, the most expensive mistake on the menu.
type Whip struct {
	wrapped Beverage
}

// NewWhip wraps b in whipped cream. Panics if b is nil.
func NewWhip(b Beverage) *Whip {
	mustWrap(b)
	return &Whip{wrapped: b}
}

func (w *Whip) Description() string { return w.wrapped.Description() + ", Whip" }
func (w *Whip) Cost() float64       { return w.wrapped.Cost() + 1.39 }

// Soy swaps in soy milk for a small surcharge.
type Soy struct {
	wrapped Beverage
}

// NewSoy wraps b with soy milk. Panics if b is nil.
func NewSoy(b Beverage) *Soy {
	mustWrap(b)
	return &Soy{wrapped: b}
}

func (s *Soy) Description() string { return s.wrapped.Description() + ", Soy" }
func (s *Soy) Cost() float64       { return s.wrapped.Cost() + 0.32 }
