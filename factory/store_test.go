package factory_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternslab/patterns/factory"
)

func TestParsePizzaType(t *testing.T) {
	tests := []struct {
		in   string
		want factory.PizzaType
	}{
		{"cheese", factory.Cheese},
		{"  Cheese ", factory.Cheese},
		{"HAWAIIAN", factory.Hawaiian},
		{"veggie", factory.Veggie},
	}
	for _, tc := range tests {
		got, err := factory.ParsePizzaType(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := factory.ParsePizzaType("calzone")
	assert.ErrorIs(t, err, factory.ErrUnknownPizzaType)
}

func TestPizzaType_String(t *testing.T) {
	assert.Equal(t, "cheese", factory.Cheese.String())
	assert.Equal(t, "hawaiian", factory.Hawaiian.String())
	assert.Equal(t, "veggie", factory.Veggie.String())
	assert.Equal(t, "PizzaType(42)", factory.PizzaType(42).String())
}

func TestNYStore_OrderCheese(t *testing.T) {
	store := factory.NewNYPizzaStore()

	ticket, err := store.OrderPizza(factory.Cheese)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, ticket.ID)
	assert.False(t, ticket.PlacedAt.IsZero())
	assert.Equal(t, "NY Pizza Store", ticket.Store)
	assert.Equal(t, factory.Cheese, ticket.Type)
	assert.Equal(t, "NY Style Sauce and Cheese Pizza", ticket.Pizza)
	assert.Equal(t, []string{
		"Preparing NY Style Sauce and Cheese Pizza",
		"Tossing dough...",
		"Adding sauce...",
		"Adding toppings:",
		"\tGrated Reggiano Cheese",
		"Bake for 30 minutes at 350",
		"Cutting the pizza into diagonal slices",
		"Place pizza in official PizzaStore box",
	}, ticket.Steps)
}

func TestChicagoStore_CutsSquare(t *testing.T) {
	store := factory.NewChicagoPizzaStore()

	ticket, err := store.OrderPizza(factory.Veggie)
	require.NoError(t, err)

	assert.Equal(t, "Chicago Style Veggie Pizza", ticket.Pizza)
	assert.Contains(t, ticket.Steps, "Cutting the pizza into square slices")
	assert.NotContains(t, ticket.Steps, "Cutting the pizza into diagonal slices")
}

func TestStore_UnknownType(t *testing.T) {
	store := factory.NewNYPizzaStore()

	_, err := store.OrderPizza(factory.PizzaType(42))
	require.ErrorIs(t, err, factory.ErrUnknownPizzaType)
	assert.Contains(t, err.Error(), "NY Pizza Store", "the wrap names the store")
	assert.Empty(t, store.Journal(), "failed orders must not be journaled")
}

func TestStore_Journal(t *testing.T) {
	store := factory.NewChicagoPizzaStore()

	first, err := store.OrderPizza(factory.Cheese)
	require.NoError(t, err)
	second, err := store.OrderPizza(factory.Hawaiian)
	require.NoError(t, err)

	journal := store.Journal()
	require.Len(t, journal, 2)
	assert.Equal(t, first.ID, journal[0].ID)
	assert.Equal(t, second.ID, journal[1].ID)
	assert.NotEqual(t, first.ID, second.ID, "every ticket gets its own id")

	// The journal is a copy: scribbling on it must not reach the store.
	journal[0].Pizza = "graffiti"
	assert.Equal(t, "Chicago Style Deep Dish Cheese Pizza", store.Journal()[0].Pizza)
}

func TestStore_ConcurrentOrders(t *testing.T) {
	store := factory.NewNYPizzaStore()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				_, err := store.OrderPizza(factory.Cheese)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, store.Journal(), 200)
}

func TestFranchiseStore_IngredientFamilies(t *testing.T) {
	ny := factory.NewFranchiseStore("Brooklyn", factory.NYIngredientFactory{})
	chi := factory.NewFranchiseStore("South Side", factory.ChicagoIngredientFactory{})

	nyTicket, err := ny.OrderPizza(factory.Cheese)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Preparing Brooklyn Cheese Pizza",
		"Tossing Thin Crust Dough",
		"Adding Marinara Sauce",
		"Adding Grated Reggiano Cheese",
		"Bake for 30 minutes at 350",
		"Cutting the pizza into diagonal slices",
		"Place pizza in official PizzaStore box",
	}, nyTicket.Steps)

	chiTicket, err := chi.OrderPizza(factory.Veggie)
	require.NoError(t, err)
	assert.Contains(t, chiTicket.Steps, "Tossing Extra Thick Crust Dough")
	assert.Contains(t, chiTicket.Steps, "Adding Plum Tomato Sauce")
	assert.Contains(t, chiTicket.Steps, "Adding Black Olives")
	assert.NotContains(t, chiTicket.Steps, "Adding Marinara Sauce",
		"families must never mix")
}

func TestFranchiseStore_Hawaiian(t *testing.T) {
	store := factory.NewFranchiseStore("Brooklyn", factory.NYIngredientFactory{})

	ticket, err := store.OrderPizza(factory.Hawaiian)
	require.NoError(t, err)
	assert.Contains(t, ticket.Steps, "Adding Sliced Ham")
	assert.Contains(t, ticket.Steps, "Adding Pineapple Chunks")
}

func TestNewStore_NilHookPanics(t *testing.T) {
	require.Panics(t, func() { factory.NewStore("broken", nil) })
	require.Panics(t, func() { factory.NewFranchiseStore("broken", nil) })
}
