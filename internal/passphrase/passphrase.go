// Package passphrase obtains the passphrase from the user.
package passphrase

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when a non-terminal input ends before any passphrase was read.
var ErrNoInput = errors.New("no passphrase on input")

// Prompt asks for a passphrase. On a terminal the prompt is written to out and
// the passphrase is read without echo; otherwise the first line of in is used.
func Prompt(in *os.File, out io.Writer, prompt string) (string, error) {
	fd := int(in.Fd()) //nolint:gosec // file descriptors fit in int

	if !term.IsTerminal(fd) {
		return ReadLine(in)
	}

	fmt.Fprint(out, prompt)

	secret, err := term.ReadPassword(fd)

	fmt.Fprintln(out)

	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	return string(secret), nil
}

// ReadLine returns the first line of r without its line ending.
// An empty line is a valid, empty passphrase; an empty input is ErrNoInput.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')

	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", ErrNoInput
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
