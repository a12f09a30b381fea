package observer

import "fmt"

// Display is an Observer that can also render its state as one line of text.
// Rendering is split from updating so tests and demos decide when (and
// whether) to print.
type Display interface {
	Observer
	Render() string
}

// CurrentConditionsDisplay shows the most recent snapshot, nothing more.
type CurrentConditionsDisplay struct {
	last Measurement
}

// NewCurrentConditionsDisplay returns a display that has seen no updates yet.
func NewCurrentConditionsDisplay() *CurrentConditionsDisplay {
	return &CurrentConditionsDisplay{}
}

// Update remembers the snapshot.
func (d *CurrentConditionsDisplay) Update(m Measurement) { d.last = m }

// Render reports the latest snapshot on one line.
func (d *CurrentConditionsDisplay) Render() string {
	return fmt.Sprintf("The current statistics: %.1f celsius, %.1f humid and %.1fkPa",
		d.last.Temperature, d.last.Humidity, d.last.Pressure)
}

// TemperatureTrendDisplay tracks the previous and current temperature and
// reports the change between them.
type TemperatureTrendDisplay struct {
	previous float64
	current  float64
}

// NewTemperatureTrendDisplay returns a trend display; both readings start at
// zero, so the very first update reports a change from 0.0.
func NewTemperatureTrendDisplay() *TemperatureTrendDisplay {
	return &TemperatureTrendDisplay{}
}

// Update shifts the current reading into previous and stores the new one.
func (d *TemperatureTrendDisplay) Update(m Measurement) {
	d.previous = d.current
	d.current = m.Temperature
}

// Render reports the previous and current temperature and the delta.
func (d *TemperatureTrendDisplay) Render() string {
	return fmt.Sprintf("The previous temperature was %.1f celsius, it is now %.1f celsius, a change of %.1f",
		d.previous, d.current, d.current-d.previous)
}

// StatisticsDisplay accumulates min, max and mean temperature over every
// update it has seen.
type StatisticsDisplay struct {
	min   float64
	max   float64
	sum   float64
	count int
}

// NewStatisticsDisplay returns an empty statistics display.
func NewStatisticsDisplay() *StatisticsDisplay {
	return &StatisticsDisplay{}
}

// Update folds the snapshot's temperature into the running aggregates.
func (d *StatisticsDisplay) Update(m Measurement) {
	t := m.Temperature
	if d.count == 0 || t < d.min {
		d.min = t
	}
	if d.count == 0 || t > d.max {
		d.max = t
	}
	d.sum += t
	d.count++
}

// Render reports min/avg/max temperature, or a placeholder before the first
// update.
func (d *StatisticsDisplay) Render() string {
	if d.count == 0 {
		return "No measurements yet"
	}
	avg := d.sum / float64(d.count)
	return fmt.Sprintf("Temperature min/avg/max: %.1f/%.1f/%.1f", d.min, avg, d.max)
}
