// Package frame provides schedulers that invoke a callback once per frame.
package frame

// Scheduler accepts a callback to run before the next frame is presented.
// A scheduler holds at most one pending callback; requesting again before it
// ran replaces it.
type Scheduler interface {
	RequestFrame(cb func())
}
