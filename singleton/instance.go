package singleton

import "sync"

// Each accessor below guards its OWN slot, so the four disciplines can be
// compared side by side without stepping on each other.

var unsafeInstance *Boiler

// UnsafeInstance is the naive lazy getter: check, then create. The check and
// the create are two separate steps, so two goroutines arriving together can
// BOTH see nil and BOTH build a boiler. It survives every single-threaded
// demo and fails exactly when it matters. Kept so the failure can be
// demonstrated; never copy this shape into real code.
func UnsafeInstance() *Boiler {
	if unsafeInstance == nil {
		unsafeInstance = NewBoiler()
	}
	return unsafeInstance
}

var (
	mutexMu       sync.Mutex
	mutexInstance *Boiler
)

// MutexInstance is the corrected lazy getter: the whole check-then-create
// runs under a lock, so only one boiler can ever be built. Every caller pays
// for the lock forever, long after initialization is done.
func MutexInstance() *Boiler {
	mutexMu.Lock()
	defer mutexMu.Unlock()
	if mutexInstance == nil {
		mutexInstance = NewBoiler()
	}
	return mutexInstance
}

var (
	once         sync.Once
	onceInstance *Boiler
)

// Instance is the idiomatic lazy getter: sync.Once runs the constructor
// exactly once and is nearly free afterwards. This is the double-checked
// locking idea with the checking done correctly, by the runtime.
func Instance() *Boiler {
	once.Do(func() {
		onceInstance = NewBoiler()
	})
	return onceInstance
}

var eagerInstance = NewBoiler()

// EagerInstance skips laziness entirely: the boiler is built during package
// initialization, before main runs, which the runtime already performs
// exactly once. The simplest correct form when construction is cheap.
func EagerInstance() *Boiler {
	return eagerInstance
}
