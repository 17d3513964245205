// Package tick provides pausable, drift-correcting timers.
//
// An Engine is a single timer: a repeating Interval, a one-shot Ticker
// or a Countdown with a hard deadline. Tick boundaries are anchored to
// the time the engine was started and advanced additively, so latency
// of the underlying scheduler never accumulates. Ticks missed while the
// host was stalled are skipped rather than delivered as a backlog, and
// time spent paused is excluded from elapsed time without shifting the
// phase of the ticks.
//
// A Registry multiplexes many named engines onto one Scheduler.
//
// All methods of Engine and Registry are thread-safe. Listener callbacks
// are invoked synchronously while the engine is locked and must neither
// block nor call back into the same engine.
package tick
