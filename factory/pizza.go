package factory

import "fmt"

func errUnknown(t PizzaType) error {
	return fmt.Errorf("%w: %v", ErrUnknownPizzaType, t)
}

// Pizza is anything the ordering pipeline can push through its five stages.
// Prepare returns the narrated steps rather than printing them; the caller
// decides whether the kitchen is loud.
type Pizza interface {
	Name() string
	Prepare() []string
	Bake() string
	Cut() string
	Box() string
}

// recipePizza is a pizza described by its recipe card: a name and a fixed
// topping list. The regional stores stamp these out.
type recipePizza struct {
	name     string
	toppings []string
}

func (p *recipePizza) Name() string { return p.name }

func (p *recipePizza) Prepare() []string {
	steps := []string{
		"Preparing " + p.name,
		"Tossing dough...",
		"Adding sauce...",
		"Adding toppings:",
	}
	for _, topping := range p.toppings {
		steps = append(steps, "\t"+topping)
	}
	return steps
}

func (p *recipePizza) Bake() string { return "Bake for 30 minutes at 350" }
func (p *recipePizza) Cut() string  { return "Cutting the pizza into diagonal slices" }
func (p *recipePizza) Box() string  { return "Place pizza in official PizzaStore box" }

// deepDishPizza is a recipePizza with Chicago's one non-negotiable override.
type deepDishPizza struct {
	recipePizza
}

func (p *deepDishPizza) Cut() string { return "Cutting the pizza into square slices" }

// newNYPizza is the New York create hook: thin crust toppings, diagonal cut.
func newNYPizza(t PizzaType) (Pizza, error) {
	switch t {
	case Cheese:
		return &recipePizza{
			name:     "NY Style Sauce and Cheese Pizza",
			toppings: []string{"Grated Reggiano Cheese"},
		}, nil
	case Hawaiian:
		return &recipePizza{
			name:     "NY Style Hawaiian Pizza",
			toppings: []string{"Grated Reggiano Cheese", "Sliced Ham", "Pineapple Chunks"},
		}, nil
	case Veggie:
		return &recipePizza{
			name:     "NY Style Veggie Pizza",
			toppings: []string{"Grated Reggiano Cheese", "Garlic", "Onion", "Mushrooms", "Red Pepper"},
		}, nil
	default:
		return nil, errUnknown(t)
	}
}

// newChicagoPizza is the Chicago create hook: deep dish, square slices.
func newChicagoPizza(t PizzaType) (Pizza, error) {
	switch t {
	case Cheese:
		return &deepDishPizza{recipePizza{
			name:     "Chicago Style Deep Dish Cheese Pizza",
			toppings: []string{"Shredded Mozzarella Cheese"},
		}}, nil
	case Hawaiian:
		return &deepDishPizza{recipePizza{
			name:     "Chicago Style Hawaiian Pizza",
			toppings: []string{"Shredded Mozzarella Cheese", "Smoked Ham", "Caramelized Pineapple"},
		}}, nil
	case Veggie:
		return &deepDishPizza{recipePizza{
			name:     "Chicago Style Veggie Pizza",
			toppings: []string{"Shredded Mozzarella Cheese", "Black Olives", "Spinach", "Eggplant"},
		}}, nil
	default:
		return nil, errUnknown(t)
	}
}
