package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// readLines returns the non-blank lines of r with surrounding space
// trimmed. Lines starting with '#' are skipped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// openInput opens path for reading. An empty path or "-" selects stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

// inputLines returns args when any were given and the lines of stdin
// otherwise.
func inputLines(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return readLines(stdin)
}
