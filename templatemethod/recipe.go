package templatemethod

// Steeper supplies the two steps the ritual cannot know: how this drink is
// brewed and which condiments it takes.
type Steeper interface {
	Brew() string
	Condiments() []string
}

// CondimentDecider is the optional hook. Implement it to be asked before
// condiments are added; leave it off and the answer is always yes.
type CondimentDecider interface {
	WantsCondiments() bool
}

// Recipe is the template method: the one true order of operations. Drinks
// plug into it, never the other way around.
func Recipe(s Steeper) []string {
	steps := []string{
		"Boiling water",
		s.Brew(),
		"Pouring into cup",
	}
	if wantsCondiments(s) {
		steps = append(steps, s.Condiments()...)
	}
	return steps
}

// wantsCondiments consults the hook when the drink carries one.
func wantsCondiments(s Steeper) bool {
	if d, ok := s.(CondimentDecider); ok {
		return d.WantsCondiments()
	}
	return true
}
