package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Reader provides context-aware line reading that can be interrupted.
type Reader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewReader creates a context-aware reader.
func NewReader(reader io.Reader) *Reader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &Reader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine reads a line, respecting context cancellation.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine keeps running until its read returns,
		// but the caller gets control back immediately.
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && res.err != io.EOF {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}

// Confirm prompts for a yes/no answer. Both Portuguese and English
// affirmatives are accepted.
func (r *Reader) Confirm(ctx context.Context, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [s/N] ", prompt)

	line, err := r.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "s", "sim", "y", "yes":
		return true, nil
	}
	return false, nil
}
