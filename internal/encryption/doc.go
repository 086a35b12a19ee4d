// Package encryption implements the giopg file transform: random padding around
// the payload followed by two nested NaCl secretbox (XSalsa20-Poly1305) layers.
//
// The on-disk format is
//
//	random(231) || Seal(outerKey, outerNonce, Seal(innerKey, innerNonce, random(147) || payload || random(31)))
//
// and carries no header or magic number.
//
// Keys are the passphrase plus a fixed per-layer suffix laid over a constant
// byte ramp, and both nonces are constants. The derivation is kept byte for
// byte so existing files stay readable, but it is NOT cryptographically sound:
// every message under the same passphrase reuses the same key and nonce, short
// passphrases yield guessable keys, and passphrases of 32 bytes or more give
// both layers the same key. Do not use this format to protect anything that
// matters.
package encryption
