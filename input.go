package ftkit

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// stdin buffers os.Stdin so that successive ReadLine calls consume
// successive lines. Tests swap it for an in-memory reader.
var stdin = bufio.NewReader(os.Stdin)

// ReadLine reads a single line from standard input and returns it with
// leading and trailing whitespace (including the line feed) removed.
//
// Reaching end of input is not an error: the final, unterminated line is
// returned as-is, and further calls return the empty string. Any other
// read failure panics.
func ReadLine() string {
	line, err := stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		panic("failed to read from stdin: " + err.Error())
	}
	log.Tracef("read %d bytes from stdin", len(line))
	return strings.TrimSpace(line)
}

// ReadNumber reads a single line from standard input and parses it as a
// decimal integer, ignoring surrounding whitespace. It panics if the
// line is not a number.
func ReadNumber() int {
	n, err := strconv.Atoi(ReadLine())
	if err != nil {
		panic("the provided value is not a number")
	}
	return n
}
