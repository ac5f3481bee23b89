package main

import (
	"io"
	"os"
)

// readInput reads content from a file or stdin.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
