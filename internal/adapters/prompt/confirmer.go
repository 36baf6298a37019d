// Package prompt contains terminal adapters for user interaction.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/laramig/internal/ports/secondary"
)

// Confirmer implements secondary.Confirmer by asking on a terminal.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer creates a Confirmer reading answers from in and printing
// questions to out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints "question [y/N] " and reports whether the answer was y or yes.
// End of input counts as no.
func (c *Confirmer) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(c.out, "%s [y/N] ", question)
	response, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// AlwaysYes confirms every question without asking.
type AlwaysYes struct{}

// Confirm returns true.
func (AlwaysYes) Confirm(ctx context.Context, question string) (bool, error) {
	return true, nil
}

var (
	_ secondary.Confirmer = (*Confirmer)(nil)
	_ secondary.Confirmer = AlwaysYes{}
)
