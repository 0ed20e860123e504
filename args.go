package ftkit

import (
	"fmt"
	"iter"
	"os"

	"github.com/nils-mathieu/ftkit/once"
)

// ArgList is an immutable snapshot of the process argument list. The
// snapshot is taken by whichever accessor runs first and shared by all
// later calls, so every method observes the same arguments even if
// os.Args is mutated afterwards.
type ArgList struct {
	cell once.Cell[[]string]
}

// processArgs is the one argument cache for the process, handed out by
// reference to every call site via Args.
var processArgs ArgList

// Args returns the process-wide cached argument list. Index 0 is the
// program's invocation name, so a real process always has at least one
// argument.
func Args() *ArgList {
	return &processArgs
}

// load forces the snapshot and returns it. Every accessor funnels
// through here.
func (a *ArgList) load() []string {
	return *a.cell.Get(func() []string {
		args := make([]string, len(os.Args))
		copy(args, os.Args)
		log.Debugf("cached %d process arguments", len(args))
		return args
	})
}

// Len returns the number of arguments, including the invocation name.
func (a *ArgList) Len() int {
	return len(a.load())
}

// Get returns the argument at index i, or ("", false) if no such
// argument exists.
func (a *ArgList) Get(i int) (string, bool) {
	args := a.load()
	if i < 0 || i >= len(args) {
		return "", false
	}
	return args[i], true
}

// At returns the argument at index i. It panics if i is out of range;
// use Get to test for presence instead.
func (a *ArgList) At(i int) string {
	args := a.load()
	if i < 0 || i >= len(args) {
		panic(fmt.Sprintf("ftkit: argument index %d out of range (%d arguments available)", i, len(args)))
	}
	return args[i]
}

// All returns an iterator over the arguments in their original order.
// The sequence may be ranged over any number of times; the underlying
// snapshot never changes.
func (a *ArgList) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, arg := range a.load() {
			if !yield(arg) {
				return
			}
		}
	}
}

// String implements fmt.Stringer, quoting each argument.
func (a *ArgList) String() string {
	return fmt.Sprintf("%q", a.load())
}
