// Package main runs the pattern chapters back to back: a guided tour for
// people who would rather read terminal output than source first.
//
// Configuration comes from the environment:
//
//	PATTERNS_CHAPTERS   comma-separated chapter names, or "all" (default)
//	PATTERNS_LOG_LEVEL  debug | info | warn | error (default info)
//	NO_COLOR            any true value disables colored logs
//
// Chapter narration goes to stdout; the logger stays on stderr.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"

	"github.com/patternslab/patterns/adapter"
	"github.com/patternslab/patterns/command"
	"github.com/patternslab/patterns/decorator"
	"github.com/patternslab/patterns/facade"
	"github.com/patternslab/patterns/factory"
	"github.com/patternslab/patterns/observer"
	"github.com/patternslab/patterns/singleton"
	"github.com/patternslab/patterns/strategy"
	"github.com/patternslab/patterns/templatemethod"
)

type config struct {
	Chapters []string   `env:"PATTERNS_CHAPTERS" envSeparator:"," envDefault:"all"`
	LogLevel slog.Level `env:"PATTERNS_LOG_LEVEL" envDefault:"info"`
	NoColor  bool       `env:"NO_COLOR" envDefault:"false"`
}

var chapters = []struct {
	name string
	run  func()
}{
	{"strategy", runStrategy},
	{"observer", runObserver},
	{"decorator", runDecorator},
	{"factory", runFactory},
	{"singleton", runSingleton},
	{"templatemethod", runTemplateMethod},
	{"adapter", runAdapter},
	{"command", runCommand},
	{"facade", runFacade},
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "demo: parse env:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
	})))

	all := len(cfg.Chapters) == 1 && strings.EqualFold(cfg.Chapters[0], "all")
	want := make(map[string]bool, len(cfg.Chapters))
	for _, c := range cfg.Chapters {
		want[strings.ToLower(strings.TrimSpace(c))] = true
	}

	ran := 0
	for _, ch := range chapters {
		if !all && !want[ch.name] {
			continue
		}
		delete(want, ch.name)
		slog.Info("chapter", "name", ch.name)
		fmt.Printf("=== %s ===\n", ch.name)
		ch.run()
		fmt.Println()
		ran++
	}
	if !all {
		for name := range want {
			slog.Warn("no such chapter", "name", name)
		}
	}
	slog.Info("tour complete", "chapters", ran)
}

func runStrategy() {
	mallard := strategy.NewMallardDuck()
	fmt.Println(mallard.PerformFly())
	fmt.Println(mallard.PerformQuack())

	model := strategy.NewModelDuck()
	fmt.Println(model.PerformFly())
	model.SetFlyBehavior(strategy.FlyRocketPowered{})
	fmt.Println(model.PerformFly())
}

func runObserver() {
	station := observer.NewWeatherData()
	current := observer.NewCurrentConditionsDisplay()
	trend := observer.NewTemperatureTrendDisplay()
	station.Register(current)
	station.Register(trend)

	station.SetMeasurements(14, 30, 3)
	fmt.Println(current.Render())
	station.SetMeasurements(20, 45, 15)
	fmt.Println(current.Render())
	fmt.Println(trend.Render())
}

func runDecorator() {
	var b decorator.Beverage = decorator.NewHotBlend()
	b = decorator.NewMocha(b)
	b = decorator.NewMocha(b)
	b = decorator.NewWhip(b)
	fmt.Printf("%s $%.2f\n", b.Description(), b.Cost())
}

func runFactory() {
	store := factory.NewNYPizzaStore()
	ticket, err := store.OrderPizza(factory.Cheese)
	if err != nil {
		slog.Error("order failed", "err", err)
		return
	}
	for _, step := range ticket.Steps {
		fmt.Println(step)
	}
	slog.Debug("journaled", "ticket", ticket.ID, "store", ticket.Store)
}

func runSingleton() {
	boiler := singleton.Instance()
	for _, op := range []func() error{boiler.Fill, boiler.Boil, boiler.Drain} {
		if err := op(); err != nil {
			fmt.Println("boiler refused:", err)
		}
	}
	fmt.Println("status:", singleton.Instance().Status())
	fmt.Println("cycles:", singleton.Instance().Cycles())
	fmt.Println("same machine everywhere:", singleton.Instance() == boiler)
}

func runTemplateMethod() {
	for _, step := range templatemethod.Recipe(templatemethod.Tea{}) {
		fmt.Println(step)
	}
}

func runAdapter() {
	turkey := adapter.NewTurkeyAdapter(adapter.WildTurkey{})
	fmt.Println(turkey.Quack())
	fmt.Println(turkey.Fly())
}

func runCommand() {
	rc := command.NewRemoteControl()
	light := command.NewLight("Living Room")
	if err := rc.SetCommand(0, command.NewLightOnCommand(light), command.NewLightOffCommand(light)); err != nil {
		slog.Error("program slot", "err", err)
		return
	}
	out, _ := rc.PressOn(0)
	fmt.Println(out)
	fmt.Println(rc.PressUndo())
}

func runFacade() {
	facade.NewHomeTheater(os.Stdout).WatchMovie("Raiders of the Lost Ark")
}
