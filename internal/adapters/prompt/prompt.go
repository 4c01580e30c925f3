// Package prompt asks the operator yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/cheflow/internal/ui/output"
	"go.trai.ch/cheflow/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Confirmer implements ports.Confirmer by reading an answer from a terminal.
type Confirmer struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
}

var _ ports.Confirmer = (*Confirmer)(nil)

// Option configures a Confirmer.
type Option func(*Confirmer)

// WithIO replaces stdin and stderr.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Confirmer) {
		c.in = in
		c.out = out
	}
}

// WithInteractive overrides terminal detection.
func WithInteractive(interactive func() bool) Option {
	return func(c *Confirmer) {
		c.interactive = interactive
	}
}

// NewConfirmer creates a Confirmer on stdin and stderr.
func NewConfirmer(opts ...Option) *Confirmer {
	c := &Confirmer{
		in:          os.Stdin,
		out:         os.Stderr,
		interactive: IsInteractive,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsInteractive reports whether stdin is a terminal and no CI environment is detected.
func IsInteractive() bool {
	isTTY := term.IsTerminal(int(os.Stdin.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	return isTTY && !isCI
}

// Confirm prints question and waits for an answer. Only "y" and "yes" confirm;
// anything else, including an empty line or end of input, declines.
func (c *Confirmer) Confirm(ctx context.Context, question string) (bool, error) {
	if !c.interactive() {
		return false, zerr.With(zerr.Wrap(domain.ErrNotInteractive, "pass --yes to confirm"), "question", question)
	}

	out := output.New(c.out)
	if _, err := out.WriteString(output.Paint(out, style.Warning+" "+question+" (y/N) ", style.Yellow)); err != nil {
		return false, zerr.Wrap(err, "failed to write prompt")
	}

	type answer struct {
		line string
		err  error
	}
	answers := make(chan answer, 1)
	// A read from stdin cannot be interrupted. After cancellation the reader stays blocked
	// until the process exits, which happens right after the command returns.
	go func() {
		line, err := bufio.NewReader(c.in).ReadString('\n')
		answers <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-answers:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, zerr.Wrap(a.err, "failed to read answer")
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
