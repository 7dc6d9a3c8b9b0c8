package output

import (
	"bufio"
	"fmt"
	"io"
)

// Write prints lines in order, one per line, and flushes once at the end.
func Write(w io.Writer, lines []string) error {
	buffered := bufio.NewWriter(w)

	for _, line := range lines {
		if _, err := buffered.WriteString(line); err != nil {
			return fmt.Errorf("write clock line: %w", err)
		}

		if err := buffered.WriteByte('\n'); err != nil {
			return fmt.Errorf("write clock line: %w", err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
