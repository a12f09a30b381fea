package observer

// Measurement is one snapshot of the station's sensors. Values travel by
// copy; observers can keep them without worrying about later mutation.
type Measurement struct {
	Temperature float64 `json:"temperature"` // degrees Celsius
	Humidity    float64 `json:"humidity"`    // relative, percent
	Pressure    float64 `json:"pressure"`    // kPa
}

// Observer receives the latest snapshot each time the subject notifies.
type Observer interface {
	Update(m Measurement)
}

// Subject is anything observers can subscribe to. WeatherData is the one
// concrete subject here; the interface exists so displays can be pointed at
// a fake in tests.
type Subject interface {
	// Register adds o to the notification list. Registering the same
	// observer twice is a no-op.
	Register(o Observer)

	// Remove takes o off the list, preserving the order of the rest.
	// Removing an observer that was never registered is a no-op.
	Remove(o Observer)

	// Notify pushes the current snapshot to every registered observer,
	// in registration order.
	Notify()
}
