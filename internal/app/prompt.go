package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmptyInput is returned when the user enters nothing where a value is required.
var ErrEmptyInput = errors.New("input cannot be empty")

// Prompter asks the user for values.
type Prompter interface {
	// ReadLine prints prompt and reads a visible line.
	ReadLine(prompt string) (string, error)
	// ReadPassword prints prompt and reads a line without echo when possible.
	ReadPassword(prompt string) (string, error)
}

// TerminalPrompter reads from a terminal, or from any reader when input is piped.
type TerminalPrompter struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminalPrompter creates a prompter reading from in and writing prompts to out.
func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine prints prompt and reads a visible line.
func (p *TerminalPrompter) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrEmptyInput
	}

	return line, nil
}

// ReadPassword prints prompt and reads a password.
// Echo is disabled on a terminal; piped input is read as a plain line.
func (p *TerminalPrompter) ReadPassword(prompt string) (string, error) {
	fd := int(p.in.Fd()) //nolint:gosec // File descriptors fit in int.
	if !term.IsTerminal(fd) {
		return p.ReadLine(prompt)
	}

	_, _ = fmt.Fprint(p.out, prompt)

	password, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(p.out)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", ErrEmptyInput
	}

	return string(password), nil
}
