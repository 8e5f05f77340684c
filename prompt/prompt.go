// Package prompt asks yes/no questions on an interactive terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Prompter struct {
	// In is shared by all prompts so that each one consumes its own line.
	In  *bufio.Reader
	Out io.Writer

	// Yes answers every prompt without asking.
	Yes bool
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: bufio.NewReader(in), Out: out}
}

// Confirm asks question and defaults to yes. Only "n" or "no" declines.
func (p *Prompter) Confirm(question string) (bool, error) {
	if p.Yes {
		return true, nil
	}
	if p.Out != nil {
		fmt.Fprintf(p.Out, "%s (Y/n)? ", strings.TrimSpace(question))
	}
	line, err := p.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "n", "no":
		return false, nil
	}
	return true, nil
}
