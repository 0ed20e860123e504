// Package once provides a lock-free, single-assignment cell.
//
// A Cell computes its value at most once and hands out a shared reference
// to the result forever after. Unlike [sync.Once] it carries the value it
// guards, and unlike a mutex-based lazy initializer it never blocks in the
// kernel: a caller that loses the race to initialize spins cooperatively
// until the winner publishes.
//
// The zero value is an empty cell, ready for use, so a Cell can live in a
// package-level var with no constructor call:
//
//	var config once.Cell[Config]
//
//	func loadConfig() *Config {
//		return config.Get(readConfigFile)
//	}
//
// If the producer panics, the cell is restored to its empty state before
// the panic propagates, so a later call gets a fresh chance to initialize.
// A failed attempt never poisons the cell.
package once

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// The cell state machine. stateUninit is the zero value so that the zero
// Cell starts empty. stateBusy is held by exactly one writer at a time and
// is the only state in which the slot may be written. stateReady is
// terminal: once published the cell never reverts.
const (
	stateUninit uint32 = iota
	stateBusy
	stateReady
)

// Cell is a container whose value is produced at most once and is
// thereafter read-only. It is safe for concurrent use and must not be
// copied after first use.
type Cell[T any] struct {
	_ noCopy

	// state gates every access to value: the slot is written only by the
	// goroutine that moved state from stateUninit to stateBusy, and read
	// only after stateReady has been observed. Go's atomic operations are
	// sequentially consistent, so the winning CompareAndSwap and the
	// publishing Store carry the acquire/release edges that make the
	// written slot visible to every goroutine that loads stateReady.
	state atomic.Uint32
	value T
}

// Get returns a pointer to the value held by the cell, running init to
// produce it if the cell is still empty. The pointer stays valid for the
// lifetime of the cell.
//
// Across all goroutines, init runs at most once — unless an earlier
// invocation panicked, in which case a later Get retries. Concurrent
// callers that lose the race to initialize yield and retry until the
// winner publishes; after publication, Get costs one atomic load.
func (c *Cell[T]) Get(init func() T) *T {
	for {
		if c.state.CompareAndSwap(stateUninit, stateBusy) {
			c.runInit(init)
			return &c.value
		}
		switch s := c.state.Load(); s {
		case stateReady:
			return &c.value
		case stateBusy, stateUninit:
			// Another goroutine holds the write claim, or rolled back
			// between our CompareAndSwap and this load. Yield and retry.
			runtime.Gosched()
		default:
			panic(fmt.Sprintf("once: cell state %d is outside the state machine", s))
		}
	}
}

// runInit writes the slot while the caller holds the exclusive stateBusy
// claim. The deferred store publishes stateReady on success; if init
// panics it fires during unwinding with next still stateUninit, restoring
// the empty state so the cell is retried rather than poisoned.
func (c *Cell[T]) runInit(init func() T) {
	next := stateUninit
	defer func() { c.state.Store(next) }()
	c.value = init()
	next = stateReady
}

// noCopy triggers go vet's copylocks check when embedded in a struct that
// must not be copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
