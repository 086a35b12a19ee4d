package encryption

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/crypto/nacl/secretbox"
)

// Overhead is the number of bytes Encrypt adds to a payload.
const Overhead = EnvelopePrefixLength + 2*secretbox.Overhead + ScramblePrefixLength + ScrambleSuffixLength

// Sealer encrypts and decrypts streams in the giopg format.
// It holds no per-call state and may be shared between goroutines.
type Sealer struct {
	// rand supplies the padding bytes
	rand io.Reader

	// log receives debug output
	log hclog.Logger
}

// Option configures a Sealer.
type Option func(*Sealer)

// WithRand sets the source of padding bytes. Defaults to crypto/rand.
func WithRand(r io.Reader) Option {
	return func(s *Sealer) {
		s.rand = r
	}
}

// WithLogger sets the logger. Defaults to a null logger.
func WithLogger(log hclog.Logger) Option {
	return func(s *Sealer) {
		s.log = log
	}
}

// NewSealer creates a Sealer with the given options applied.
func NewSealer(opts ...Option) *Sealer {
	sealer := &Sealer{
		rand: rand.Reader,
		log:  hclog.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(sealer)
	}

	return sealer
}

// Encrypt reads reader to completion and writes the sealed envelope to writer.
func (s *Sealer) Encrypt(passphrase string, reader io.Reader, writer io.Writer) error {
	var scrambled bytes.Buffer

	if err := writeRandomBytes(s.rand, &scrambled, ScramblePrefixLength); err != nil {
		return err
	}

	if _, err := scrambled.ReadFrom(reader); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if err := writeRandomBytes(s.rand, &scrambled, ScrambleSuffixLength); err != nil {
		return err
	}

	outer := SealLayers(passphrase, scrambled.Bytes())

	s.log.Debug("input encrypted", "payload", scrambled.Len()-ScramblePrefixLength-ScrambleSuffixLength)

	if err := writeRandomBytes(s.rand, writer, EnvelopePrefixLength); err != nil {
		return err
	}

	if _, err := writer.Write(outer); err != nil {
		return fmt.Errorf("writing ciphertext: %w", err)
	}

	s.log.Debug("encrypted output written", "size", EnvelopePrefixLength+len(outer))

	return nil
}

// Decrypt strips the envelope from reader, opens both layers and writes the payload to writer.
// Authentication and truncation failures return ErrDecrypt; writer is untouched in that case.
func (s *Sealer) Decrypt(passphrase string, reader io.Reader, writer io.Writer) error {
	if err := stripRandomBytes(reader, EnvelopePrefixLength); err != nil {
		return err
	}

	outer, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	scrambled, err := OpenLayers(passphrase, outer)
	if err != nil {
		return err
	}

	if len(scrambled) < ScramblePrefixLength+ScrambleSuffixLength {
		return ErrDecrypt
	}

	payload := scrambled[ScramblePrefixLength : len(scrambled)-ScrambleSuffixLength]

	s.log.Debug("input decrypted", "payload", len(payload))

	if _, err := writer.Write(payload); err != nil {
		return fmt.Errorf("writing plaintext: %w", err)
	}

	return nil
}

// SealLayers seals scrambled with the inner key and nonce, then seals the result with the outer pair.
func SealLayers(passphrase string, scrambled []byte) []byte {
	inner := secretbox.Seal(nil, scrambled, InnerNonce(), InnerKey(passphrase))

	return secretbox.Seal(nil, inner, OuterNonce(), OuterKey(passphrase))
}

// OpenLayers reverses SealLayers. Either layer failing to verify yields ErrDecrypt.
func OpenLayers(passphrase string, box []byte) ([]byte, error) {
	inner, ok := secretbox.Open(nil, box, OuterNonce(), OuterKey(passphrase))
	if !ok {
		return nil, ErrDecrypt
	}

	scrambled, ok := secretbox.Open(nil, inner, InnerNonce(), InnerKey(passphrase))
	if !ok {
		return nil, ErrDecrypt
	}

	return scrambled, nil
}
