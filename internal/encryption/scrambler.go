package encryption

import (
	"errors"
	"fmt"
	"io"
)

const (
	// EnvelopePrefixLength is the number of random bytes written in front of the outer ciphertext.
	EnvelopePrefixLength = 231
	// ScramblePrefixLength is the number of random bytes sealed in front of the payload.
	ScramblePrefixLength = 147
	// ScrambleSuffixLength is the number of random bytes sealed after the payload.
	ScrambleSuffixLength = 31
)

// writeRandomBytes appends n bytes read from source to the sink.
func writeRandomBytes(source io.Reader, sink io.Writer, n int) error {
	buf := make([]byte, n)
	if _, err := io.ReadFull(source, buf); err != nil {
		return fmt.Errorf("reading random bytes: %w", err)
	}

	if _, err := sink.Write(buf); err != nil {
		return fmt.Errorf("writing random bytes: %w", err)
	}

	return nil
}

// stripRandomBytes reads and discards exactly n bytes from source.
// A source holding fewer than n bytes is a truncated input and reported as ErrDecrypt.
func stripRandomBytes(source io.Reader, n int64) error {
	_, err := io.CopyN(io.Discard, source, n)

	switch {
	case errors.Is(err, io.EOF):
		return ErrDecrypt
	case err != nil:
		return fmt.Errorf("reading random prefix: %w", err)
	}

	return nil
}
