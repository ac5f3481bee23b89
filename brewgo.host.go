package brewgo

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/brewgo/brewgo/internal"
)

// HostEnvironment is the I/O and error-sink boundary a running program
// talks to, mirrored from internal.HostEnvironment so callers outside
// this module never need to import internal directly. spec.md §6
// explicitly scopes the concrete host out of CORE; StdioHost and
// BufferedHost below are the two concrete implementations this module
// ships, grounded on the teacher's habit of pairing a real default with a
// test double (prompty.go's Nop logger, Executor's ErrorStrategy
// default).
type HostEnvironment = internal.HostEnvironment

// StdioHost is the default HostEnvironment: output goes to an
// io.Writer (normally os.Stdout), input is read line by line from an
// io.Reader (normally os.Stdin), and a terminal error is formatted to an
// io.Writer (normally os.Stderr) before the run aborts.
type StdioHost struct {
	Out io.Writer
	Err io.Writer
	in  *bufio.Scanner
}

// NewStdioHost builds a StdioHost over the given streams.
func NewStdioHost(in io.Reader, out, err io.Writer) *StdioHost {
	return &StdioHost{Out: out, Err: err, in: bufio.NewScanner(in)}
}

func (h *StdioHost) Output(line string) {
	fmt.Fprintln(h.Out, line)
}

func (h *StdioHost) GetInput() string {
	if h.in.Scan() {
		return h.in.Text()
	}
	return ""
}

func (h *StdioHost) Error(kind internal.ErrorKind, message string, line int) {
	fmt.Fprintln(h.Err, NewRunError(kind, message, line))
}

// BufferedHost is an in-memory HostEnvironment, used by tests (and by
// cmd/brewgo's validate subcommand) to capture output and errors instead
// of writing to real streams. Reads are served from a preloaded queue of
// lines, mirroring how a test double stands in for a real stdin.
type BufferedHost struct {
	mu          sync.Mutex
	inputLines  []string
	inputCursor int
	OutputLines []string
	LastError   *BufferedHostError
}

// BufferedHostError records the single terminal error reported to a
// BufferedHost, if any.
type BufferedHostError struct {
	Kind    internal.ErrorKind
	Message string
	Line    int
}

// NewBufferedHost builds a BufferedHost that serves inputLines in order
// to successive GetInput calls.
func NewBufferedHost(inputLines ...string) *BufferedHost {
	return &BufferedHost{inputLines: inputLines}
}

func (h *BufferedHost) Output(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.OutputLines = append(h.OutputLines, line)
}

func (h *BufferedHost) GetInput() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inputCursor >= len(h.inputLines) {
		return ""
	}
	line := h.inputLines[h.inputCursor]
	h.inputCursor++
	return line
}

func (h *BufferedHost) Error(kind internal.ErrorKind, message string, line int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.LastError == nil {
		h.LastError = &BufferedHostError{Kind: kind, Message: message, Line: line}
	}
}
