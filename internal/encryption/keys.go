package encryption

const (
	// KeySize is the secretbox key length in bytes.
	KeySize = 32
	// NonceSize is the secretbox nonce length in bytes.
	NonceSize = 24
)

const (
	innerKeySuffix = "Y@S6BdQd!&9mBEXfW&#65gJyy"
	innerKeyOffset = 19

	outerKeySuffix = "E2f&@DKXW*wtd43d!&@M^JLqD"
	outerKeyOffset = 23

	innerNonceOffset = 21
	outerNonceOffset = 13
)

// DeriveKey lays passphrase+suffix over a ramp of (i+offset) mod 256 bytes.
// Only the first KeySize bytes of the concatenation are used.
func DeriveKey(passphrase, suffix string, offset int) *[KeySize]byte {
	var key [KeySize]byte

	for i := range key {
		key[i] = byte(i + offset)
	}

	copy(key[:], passphrase+suffix)

	return &key
}

// DeriveNonce returns a ramp of (i+offset) mod 256 bytes, written back to front when reversed.
func DeriveNonce(offset int, reversed bool) *[NonceSize]byte {
	var nonce [NonceSize]byte

	for i := range nonce {
		pos := i
		if reversed {
			pos = NonceSize - 1 - i
		}

		nonce[pos] = byte(i + offset)
	}

	return &nonce
}

// InnerKey derives the key of the layer sealing the scrambled payload.
func InnerKey(passphrase string) *[KeySize]byte {
	return DeriveKey(passphrase, innerKeySuffix, innerKeyOffset)
}

// OuterKey derives the key of the layer sealing the inner ciphertext.
func OuterKey(passphrase string) *[KeySize]byte {
	return DeriveKey(passphrase, outerKeySuffix, outerKeyOffset)
}

// InnerNonce returns the fixed nonce of the inner layer.
func InnerNonce() *[NonceSize]byte {
	return DeriveNonce(innerNonceOffset, false)
}

// OuterNonce returns the fixed nonce of the outer layer.
func OuterNonce() *[NonceSize]byte {
	return DeriveNonce(outerNonceOffset, true)
}
