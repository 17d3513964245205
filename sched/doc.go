// Package sched provides a delayed callback scheduler
// that's able to fast-forward time.
// Callbacks of a Scheduler are delivered one at a time,
// in the order they became due.
// All methods of both the package and a Scheduler instance
// are thread-safe and can safely be used from within multiple goroutines.
package sched
