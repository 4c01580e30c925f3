package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cheflow/internal/adapters/prompt"
	"go.trai.ch/cheflow/internal/core/domain"
)

func interactive() bool { return true }

func TestConfirmer_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "yes uppercase", input: "YES\n", want: true},
		{name: "padded", input: "  yes  \n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty line declines", input: "\n", want: false},
		{name: "end of input declines", input: "", want: false},
		{name: "answer without newline", input: "y", want: true},
		{name: "anything else declines", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			out := &bytes.Buffer{}
			c := prompt.NewConfirmer(
				prompt.WithIO(strings.NewReader(tt.input), out),
				prompt.WithInteractive(interactive),
			)

			got, err := c.Confirm(t.Context(), "Apply to production?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "! Apply to production? (y/N) ", out.String())
		})
	}
}

func TestConfirmer_NotInteractive(t *testing.T) {
	out := &bytes.Buffer{}
	c := prompt.NewConfirmer(
		prompt.WithIO(strings.NewReader("y\n"), out),
		prompt.WithInteractive(func() bool { return false }),
	)

	got, err := c.Confirm(t.Context(), "Apply to production?")
	require.ErrorIs(t, err, domain.ErrNotInteractive)
	assert.False(t, got)
	assert.Empty(t, out.String(), "no prompt is shown without a terminal")
	assert.Equal(t, domain.KindPrecondition, domain.KindOf(err))
}

func TestConfirmer_ContextCanceled(t *testing.T) {
	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	c := prompt.NewConfirmer(
		prompt.WithIO(reader, io.Discard),
		prompt.WithInteractive(interactive),
	)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.Confirm(ctx, "Apply to production?")
	assert.ErrorIs(t, err, context.Canceled)

	// The abandoned reader still consumes a late answer and exits without blocking.
	written := make(chan error, 1)
	go func() {
		_, err := writer.Write([]byte("y\n"))
		written <- err
	}()
	select {
	case err := <-written:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("late answer was never read")
	}
}

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, prompt.IsInteractive())
}
