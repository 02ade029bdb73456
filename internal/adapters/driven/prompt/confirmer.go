// Package prompt asks the user yes/no questions on the console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure Confirmer implements the interface.
var _ driven.Confirmer = (*Confirmer)(nil)

// Confirmer reads a one-line answer for each prompt.
// Only "y" or "Y" is a yes; anything else, including end of input, is a no.
type Confirmer struct {
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// New creates a confirmer reading from in and writing prompts to out.
// When interactive is false the answer read is echoed, so transcripts of
// piped runs show what was answered.
func New(in io.Reader, out io.Writer, interactive bool) *Confirmer {
	return &Confirmer{
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// NewStdio creates a confirmer on stdin and stderr.
func NewStdio() *Confirmer {
	return New(os.Stdin, os.Stderr, term.IsTerminal(int(os.Stdin.Fd())))
}

// Confirm prints prompt and reports whether the user answered yes.
func (c *Confirmer) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprint(c.out, prompt); err != nil {
		return false, err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.TrimSpace(line)

	if !c.interactive {
		fmt.Fprintln(c.out, answer)
	}
	return answer == "y" || answer == "Y", nil
}
