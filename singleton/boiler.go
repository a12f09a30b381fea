package singleton

import (
	"errors"
	"sync"
)

var (
	// ErrBoilerFull is returned by Fill when the boiler is already full.
	ErrBoilerFull = errors.New("singleton: boiler already full")
	// ErrBoilerEmpty is returned by Boil and Drain when there is nothing in
	// the boiler to work with.
	ErrBoilerEmpty = errors.New("singleton: boiler is empty")
	// ErrAlreadyBoiled is returned by Boil when the batch has already been
	// boiled; boiling twice scorches the chocolate.
	ErrAlreadyBoiled = errors.New("singleton: batch already boiled")
	// ErrNotBoiled is returned by Drain when the batch has not been boiled
	// yet.
	ErrNotBoiled = errors.New("singleton: batch not boiled yet")
)

// Boiler is the machine itself: a three-state cycle, empty → filled →
// boiled → empty. The zero value is an empty boiler. All methods are safe
// for concurrent use; it is the ACCESSORS below that differ in safety.
type Boiler struct {
	mu     sync.Mutex
	filled bool
	boiled bool
	cycles int
}

// NewBoiler returns a fresh, empty boiler. Prefer this over the global
// accessors when you can simply pass the boiler to whoever needs it.
func NewBoiler() *Boiler {
	return &Boiler{}
}

// Fill loads the milk/chocolate mix. Only an empty boiler can be filled.
func (b *Boiler) Fill() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.filled {
		return ErrBoilerFull
	}
	b.filled = true
	b.boiled = false
	return nil
}

// Boil cooks the batch. The boiler must be full and the batch raw.
func (b *Boiler) Boil() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.filled {
		return ErrBoilerEmpty
	}
	if b.boiled {
		return ErrAlreadyBoiled
	}
	b.boiled = true
	return nil
}

// Drain empties the boiled batch into the next stage and counts the
// completed cycle. The batch must be boiled first.
func (b *Boiler) Drain() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.filled {
		return ErrBoilerEmpty
	}
	if !b.boiled {
		return ErrNotBoiled
	}
	b.filled = false
	b.boiled = false
	b.cycles++
	return nil
}

// Status reports the current phase: "empty", "filled" or "boiled".
func (b *Boiler) Status() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case !b.filled:
		return "empty"
	case !b.boiled:
		return "filled"
	default:
		return "boiled"
	}
}

// Cycles reports how many complete fill→boil→drain rounds this boiler has
// finished. With a correct singleton the plant-wide count lives in one
// place; with the unsafe accessor it can quietly split across duplicates.
func (b *Boiler) Cycles() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cycles
}
