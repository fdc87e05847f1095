package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderReadLine(t *testing.T) {
	reader := NewReader(strings.NewReader("  hello world  \n"))

	line, err := reader.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello world", line)
}

func TestReaderReadLineEOF(t *testing.T) {
	reader := NewReader(strings.NewReader("no newline"))

	line, err := reader.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no newline", line)
}

func TestReaderCancellation(t *testing.T) {
	// A reader that never produces input
	blocked, w := newBlockingReader()
	defer w.close()

	reader := NewReader(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := reader.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "portuguese yes", input: "s\n", want: true},
		{name: "portuguese full", input: "sim\n", want: true},
		{name: "english yes", input: "yes\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty defaults to no", input: "\n", want: false},
		{name: "garbage defaults to no", input: "maybe\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewReader(strings.NewReader(tt.input))

			var out strings.Builder
			confirmed, err := reader.Confirm(context.Background(), &out, "Remove?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, confirmed)
			assert.Contains(t, out.String(), "Remove?")
		})
	}
}

type blockingReader struct {
	done chan struct{}
}

func newBlockingReader() (*blockingReader, *blockingReader) {
	r := &blockingReader{done: make(chan struct{})}
	return r, r
}

func (r *blockingReader) Read(_ []byte) (int, error) {
	<-r.done
	return 0, io.EOF
}

func (r *blockingReader) close() {
	close(r.done)
}
