package encryption

import "errors"

var (
	// ErrDecrypt is returned for any authentication or truncation failure while decrypting.
	// It intentionally carries no detail about which layer failed or why.
	ErrDecrypt = errors.New("decrypt error")
	// ErrSameFile is returned when the input and output paths resolve to the same file.
	ErrSameFile = errors.New("input and output are the same file")
)
