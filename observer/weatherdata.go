package observer

import "sync"

// WeatherData is the concrete subject: it owns the latest Measurement and the
// observer list. Safe for concurrent use; the observer list is guarded by an
// RWMutex and snapshotted before callbacks run, so observers may call back
// into the subject (Register, Remove, even SetMeasurements) without
// deadlocking.
type WeatherData struct {
	mu        sync.RWMutex
	observers []Observer
	current   Measurement
}

// NewWeatherData returns a station with no observers and a zero snapshot.
func NewWeatherData() *WeatherData {
	return &WeatherData{}
}

// Register adds o to the notification list; duplicates are ignored.
func (w *WeatherData) Register(o Observer) {
	if o == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, existing := range w.observers {
		if existing == o {
			return
		}
	}
	w.observers = append(w.observers, o)
}

// Remove drops o from the notification list, keeping the remaining order.
// Unknown observers are ignored.
func (w *WeatherData) Remove(o Observer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, existing := range w.observers {
		if existing == o {
			w.observers = append(w.observers[:i], w.observers[i+1:]...)
			return
		}
	}
}

// Notify pushes the current snapshot to every registered observer in
// registration order. The list and the snapshot are copied under the read
// lock; callbacks run outside it.
func (w *WeatherData) Notify() {
	w.mu.RLock()
	snapshot := w.current
	targets := make([]Observer, len(w.observers))
	copy(targets, w.observers)
	w.mu.RUnlock()

	for _, o := range targets {
		o.Update(snapshot)
	}
}

// SetMeasurements records a fresh snapshot and starts a notification cycle.
// In the real world this would be wired to hardware; here the tests and
// demos play the role of the sensor.
func (w *WeatherData) SetMeasurements(temperature, humidity, pressure float64) {
	w.mu.Lock()
	w.current = Measurement{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	}
	w.mu.Unlock()

	w.Notify()
}

// Current returns the latest recorded snapshot.
func (w *WeatherData) Current() Measurement {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Len reports how many observers are currently registered.
func (w *WeatherData) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.observers)
}
