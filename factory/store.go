package factory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OrderTicket is the journal entry a store writes for every fulfilled order:
// which store, which menu entry, the pizza's full name and the narrated
// pipeline steps, stamped with a fresh uuid and the order time.
type OrderTicket struct {
	ID       uuid.UUID `json:"id"`
	Store    string    `json:"store"`
	Type     PizzaType `json:"type"`
	Pizza    string    `json:"pizza"`
	Steps    []string  `json:"steps"`
	PlacedAt time.Time `json:"placed_at"`
}

// CreateFunc is the factory method: given a menu entry, produce the pizza.
// Stores differ ONLY in this hook; the ordering pipeline is fixed.
type CreateFunc func(t PizzaType) (Pizza, error)

// Store runs the franchise's one sacred pipeline: create, prepare, bake,
// cut, box. Safe for concurrent orders; the journal is mutex-guarded.
type Store struct {
	name   string
	create CreateFunc

	mu      sync.Mutex
	tickets []OrderTicket
}

// NewStore builds a store around a create hook. Most callers want
// NewNYPizzaStore or NewChicagoPizzaStore instead; this constructor exists
// for franchises that bring their own hook. Panics if create is nil.
func NewStore(name string, create CreateFunc) *Store {
	if create == nil {
		panic("factory: NewStore called with nil create hook")
	}
	return &Store{name: name, create: create}
}

// NewNYPizzaStore returns the New York franchise.
func NewNYPizzaStore() *Store {
	return NewStore("NY Pizza Store", newNYPizza)
}

// NewChicagoPizzaStore returns the Chicago franchise.
func NewChicagoPizzaStore() *Store {
	return NewStore("Chicago Pizza Store", newChicagoPizza)
}

// Name returns the store name as it appears on tickets.
func (s *Store) Name() string { return s.name }

// OrderPizza is the template: delegate creation to the hook, then push the
// pizza through prepare, bake, cut and box, journal the result and hand the
// ticket back. An unknown menu entry returns ErrUnknownPizzaType (wrapped
// with the store name); nothing is journaled on failure.
func (s *Store) OrderPizza(t PizzaType) (OrderTicket, error) {
	pizza, err := s.create(t)
	if err != nil {
		return OrderTicket{}, fmt.Errorf("order at %s: %w", s.name, err)
	}

	steps := pizza.Prepare()
	steps = append(steps, pizza.Bake(), pizza.Cut(), pizza.Box())

	ticket := OrderTicket{
		ID:       uuid.New(),
		Store:    s.name,
		Type:     t,
		Pizza:    pizza.Name(),
		Steps:    steps,
		PlacedAt: time.Now(),
	}

	s.mu.Lock()
	s.tickets = append(s.tickets, ticket)
	s.mu.Unlock()

	return ticket, nil
}

// Journal returns a copy of every ticket issued so far, oldest first.
func (s *Store) Journal() []OrderTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OrderTicket, len(s.tickets))
	copy(out, s.tickets)
	return out
}
