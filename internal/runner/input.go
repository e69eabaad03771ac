package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type lineResult struct {
	line string
	err  error
}

// lineInput reads one selection per line and releases the source once. Reads
// happen on a background goroutine so a blocked read can be abandoned when the
// context is cancelled.
type lineInput struct {
	reader *bufio.Reader
	closer io.Closer
	closed bool
	lines  chan lineResult
	done   chan struct{}
}

func newLineInput(r io.Reader) *lineInput {
	in := &lineInput{
		reader: bufio.NewReader(r),
		done:   make(chan struct{}),
	}
	if closer, ok := r.(io.Closer); ok {
		in.closer = closer
	}
	return in
}

// ReadLine blocks until a full line is available or ctx is done.
func (in *lineInput) ReadLine(ctx context.Context) (string, error) {
	if in.closed {
		return "", ErrInputClosed
	}
	if in.lines == nil {
		in.lines = make(chan lineResult)
		go in.readLoop()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-in.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return res.line, res.err
	}
}

// readLoop delivers lines until the source ends or the input is closed.
func (in *lineInput) readLoop() {
	defer close(in.lines)
	for {
		line, err := in.reader.ReadString('\n')
		if line != "" {
			if !in.send(lineResult{line: strings.TrimRight(line, "\r\n")}) {
				return
			}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			in.send(lineResult{err: fmt.Errorf("read input: %w", err)})
		}
		return
	}
}

func (in *lineInput) send(res lineResult) bool {
	select {
	case in.lines <- res:
		return true
	case <-in.done:
		return false
	}
}

// Close releases the underlying reader. Calls after the first are no-ops.
func (in *lineInput) Close() error {
	if in.closed {
		return nil
	}
	in.closed = true
	close(in.done)
	if in.closer == nil {
		return nil
	}
	return in.closer.Close()
}

// ParseSelection interprets a line as a 1-based choice number.
func ParseSelection(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, formatRejected(trimmed))
	}
	return value, nil
}

// formatRejected shortens long rejected lines for error messages.
func formatRejected(line string) string {
	const limit = 32
	runes := []rune(line)
	if len(runes) <= limit {
		return line
	}
	return string(runes[:limit]) + "..."
}
