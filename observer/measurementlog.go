package observer

import (
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigFastest

// MeasurementLog is an Observer that appends every snapshot it receives to an
// io.Writer as one JSON object per line. It is the station's flight recorder:
// point it at a file (or a bytes.Buffer in tests) and replay the feed later.
type MeasurementLog struct {
	mu    sync.Mutex
	w     io.Writer
	err   error
	count int
}

// NewMeasurementLog returns a log writing to w. Panics if w is nil.
func NewMeasurementLog(w io.Writer) *MeasurementLog {
	if w == nil {
		panic("observer: NewMeasurementLog called with nil writer")
	}
	return &MeasurementLog{w: w}
}

// Update encodes the snapshot and appends it to the writer. The first error
// encountered is sticky: once writing fails, later updates are dropped and
// Err reports the failure.
func (l *MeasurementLog) Update(m Measurement) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return
	}
	line, err := json.Marshal(m)
	if err != nil {
		l.err = err
		return
	}
	line = append(line, '\n')
	if _, err := l.w.Write(line); err != nil {
		l.err = err
		return
	}
	l.count++
}

// Err returns the first write or encode error, or nil if all updates landed.
func (l *MeasurementLog) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Count reports how many snapshots were successfully written.
func (l *MeasurementLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
