// Package observer illustrates the Observer pattern with a toy weather
// station: one subject holding the latest measurement snapshot, any number of
// display devices kept up to date by push notification.
//
// What:
//
//   - Measurement — an immutable snapshot of temperature, humidity, pressure.
//   - Subject — Register / Remove / Notify; WeatherData is the concrete
//     subject, keeping observers in registration order under a sync.RWMutex.
//   - Observer — Update(Measurement), called once per notification cycle with
//     the latest snapshot.
//   - Displays — CurrentConditionsDisplay (latest values),
//     TemperatureTrendDisplay (previous vs. current temperature),
//     StatisticsDisplay (min/avg/max over all updates), and MeasurementLog
//     (JSON lines to any io.Writer).
//
// Why:
//
//	The station could poll, or the displays could reach into the station, but
//	both couple every display to the station's innards. Inverting it — the
//	station broadcasts, displays subscribe — means new displays appear without
//	the station changing by a single line.
//
// Contract:
//
//   - Register and Remove are synchronous and take effect before the next
//     notification cycle; a duplicate Register and a Remove of a stranger are
//     both no-ops.
//   - Notify delivers the latest snapshot to every currently registered
//     observer, in registration order, and to nobody else.
//   - Observer callbacks run outside the subject's lock, so an observer may
//     call back into the subject; re-registering from inside Update is legal
//     but only lands on the following cycle.
//
// This is a toy: there is no delivery guarantee across crashing observers, no
// backpressure, and no attempt at exactly-once anything.
package observer
