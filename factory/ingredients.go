package factory

// IngredientFactory is the abstract factory: one interface producing a whole
// consistent family of ingredients. A pizza built against it can be re-homed
// to any region by swapping the factory, never by editing the pizza.
type IngredientFactory interface {
	Dough() string
	Sauce() string
	Cheese() string
	Veggies() []string
	Ham() string
	Pineapple() string
}

// NYIngredientFactory produces the thin-crust family.
type NYIngredientFactory struct{}

func (NYIngredientFactory) Dough() string  { return "Thin Crust Dough" }
func (NYIngredientFactory) Sauce() string  { return "Marinara Sauce" }
func (NYIngredientFactory) Cheese() string { return "Grated Reggiano Cheese" }
func (NYIngredientFactory) Veggies() []string {
	return []string{"Garlic", "Onion", "Mushrooms", "Red Pepper"}
}
func (NYIngredientFactory) Ham() string       { return "Sliced Ham" }
func (NYIngredientFactory) Pineapple() string { return "Pineapple Chunks" }

// ChicagoIngredientFactory produces the deep-dish family.
type ChicagoIngredientFactory struct{}

func (ChicagoIngredientFactory) Dough() string  { return "Extra Thick Crust Dough" }
func (ChicagoIngredientFactory) Sauce() string  { return "Plum Tomato Sauce" }
func (ChicagoIngredientFactory) Cheese() string { return "Shredded Mozzarella Cheese" }
func (ChicagoIngredientFactory) Veggies() []string {
	return []string{"Black Olives", "Spinach", "Eggplant"}
}
func (ChicagoIngredientFactory) Ham() string       { return "Smoked Ham" }
func (ChicagoIngredientFactory) Pineapple() string { return "Caramelized Pineapple" }

// ingredientPizza narrates its preparation from whatever family it was given
// instead of a fixed recipe card. The extra func lists the toppings beyond
// dough, sauce and cheese.
type ingredientPizza struct {
	name    string
	factory IngredientFactory
	extra   func(IngredientFactory) []string
}

func (p *ingredientPizza) Name() string { return p.name }

func (p *ingredientPizza) Prepare() []string {
	steps := []string{
		"Preparing " + p.name,
		"Tossing " + p.factory.Dough(),
		"Adding " + p.factory.Sauce(),
		"Adding " + p.factory.Cheese(),
	}
	if p.extra != nil {
		for _, topping := range p.extra(p.factory) {
			steps = append(steps, "Adding "+topping)
		}
	}
	return steps
}

func (p *ingredientPizza) Bake() string { return "Bake for 30 minutes at 350" }
func (p *ingredientPizza) Cut() string  { return "Cutting the pizza into diagonal slices" }
func (p *ingredientPizza) Box() string  { return "Place pizza in official PizzaStore box" }

// NewFranchiseStore composes both factories: the store's create hook decides
// WHICH pizza exists, the ingredient factory decides WHAT it is made of.
// Panics if ingredients is nil.
func NewFranchiseStore(name string, ingredients IngredientFactory) *Store {
	if ingredients == nil {
		panic("factory: NewFranchiseStore called with nil ingredient factory")
	}
	create := func(t PizzaType) (Pizza, error) {
		switch t {
		case Cheese:
			return &ingredientPizza{
				name:    name + " Cheese Pizza",
				factory: ingredients,
			}, nil
		case Hawaiian:
			return &ingredientPizza{
				name:    name + " Hawaiian Pizza",
				factory: ingredients,
				extra: func(f IngredientFactory) []string {
					return []string{f.Ham(), f.Pineapple()}
				},
			}, nil
		case Veggie:
			return &ingredientPizza{
				name:    name + " Veggie Pizza",
				factory: ingredients,
				extra:   func(f IngredientFactory) []string { return f.Veggies() },
			}, nil
		default:
			return nil, errUnknown(t)
		}
	}
	return NewStore(name, create)
}
