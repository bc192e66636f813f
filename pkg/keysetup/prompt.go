package keysetup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter collects one line of input from the user. An empty string with
// a nil error means the user declined to answer.
type Prompter interface {
	Prompt(message string) (string, error)
}

// RealPrompter reads a single line from stdin. When stdin is not a
// terminal (CI, piped input from a closed stream) it declines immediately
// instead of blocking forever.
type RealPrompter struct {
	In  *os.File  // default: os.Stdin
	Out io.Writer // default: os.Stdout
}

func (p *RealPrompter) Prompt(message string) (string, error) {
	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	if !term.IsTerminal(int(in.Fd())) {
		return "", nil
	}

	fmt.Fprint(out, message)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
