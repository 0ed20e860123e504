// Package ftkit provides a small set of utilities for newcomers learning Go.
//
// The helpers cover the three chores every first program runs into: looking
// at the command line, reading a line or a number from standard input, and
// drawing a random number.
//
//	// If the program is invoked as:  ./my_program a b c
//	fmt.Println(ftkit.Args().Len()) // 4
//	fmt.Println(ftkit.Args().At(1)) // "a"
//
//	name := ftkit.ReadLine()
//	age := ftkit.ReadNumber()
//	lucky := ftkit.RandomNumber()
//
// In keeping with its audience, the package panics on conditions a beginner
// cannot meaningfully recover from (an unreadable stdin, a line that is not
// a number, an argument index that does not exist) instead of returning
// errors. The non-panicking [ArgList.Get] is available where an absence
// check is wanted.
//
// The argument list is captured exactly once, on first use, by whichever
// goroutine gets there first; every accessor is safe for concurrent use.
// The cell that backs it lives in the [github.com/nils-mathieu/ftkit/once]
// package.
//
// The package logs nothing by default. Install a logger with [UseLogger] to
// see debug traces.
package ftkit
