package decorator_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/patternslab/patterns/decorator"
)

// ---------------------------------------------------------------------------
// Scenario: two orders at the till. The first is a plain espresso; the
// second stacks condiments one wrap at a time and the bill adds itself up
// from the outside in.
// ---------------------------------------------------------------------------

func ExampleBeverage() {
	// 1) Plain espresso, nothing on top.
	order := func(b decorator.Beverage) {
		fmt.Printf("%s $%.2f\n", b.Description(), b.Cost())
	}
	order(decorator.NewEspresso())

	// 2) Hot blend, double mocha, whip: three decorators deep.
	var b decorator.Beverage = decorator.NewHotBlend()
	b = decorator.NewMocha(b)
	b = decorator.NewMocha(b)
	b = decorator.NewWhip(b)
	order(b)

	// Output:
	// Espresso $1.99
	// Hot Blend Coffee, Mocha, Mocha, Whip $3.26
}

// ExampleLowerCaseReader shows the same pattern wearing io clothing.
func ExampleLowerCaseReader() {
	shout := strings.NewReader("I know the Decorator Pattern therefore I RULE!")
	calm, _ := io.ReadAll(decorator.NewLowerCaseReader(shout))
	fmt.Println(string(calm))

	// Output:
	// i know the decorator pattern therefore i rule!
}
