// Package crypto wraps the cryptographic collaborators the script engine
// and validators consume but do not themselves implement: Ed25519
// sign/verify, SHA3-256, and address construction from a public key
// (spec.md §6, "Collaborator contract (consumed)"). Everything here is a
// thin adapter over standard and pack-sourced primitives; none of it is
// consensus logic.
package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/sha3"
)

// ErrInvalidPublicKey/ErrInvalidSignature flag malformed collaborator
// inputs; script opcodes treat both as "verification failed", never as a
// fatal error.
var (
	ErrInvalidPublicKey  = errors.New("crypto: invalid public key length")
	ErrInvalidSignature  = errors.New("crypto: invalid signature length")
	ErrInvalidPrivateKey = errors.New("crypto: invalid private key length")
)

// PubKeyLen and SigLen mirror script.PubKeyLen/script.SignatureLen; kept
// independent so this package has no dependency on script.
const (
	PubKeyLen  = ed25519.PublicKeySize
	SigLen     = ed25519.SignatureSize
	PrivKeyLen = ed25519.PrivateKeySize
)

// GenerateKey returns a fresh Ed25519 keypair, for tests and tooling.
func GenerateKey() (pub []byte, priv []byte, err error) {
	pk, sk, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, nil, err
	}
	return []byte(pk), []byte(sk), nil
}

// Sign signs msg with an Ed25519 private key.
func Sign(priv []byte, msg []byte) ([]byte, error) {
	if len(priv) != PrivKeyLen {
		return nil, ErrInvalidPrivateKey
	}
	return ed25519.Sign(ed25519.PrivateKey(priv), msg), nil
}

// Verify checks an Ed25519 signature over msg under pub. Malformed inputs
// verify false rather than erroring, matching the script engine's
// "verification failure is a script-false, not an exception" discipline
// (spec.md §4.3) — callers that need to distinguish malformed-input from
// a clean mismatch should check lengths themselves first.
func Verify(pub []byte, msg []byte, sig []byte) bool {
	if len(pub) != PubKeyLen || len(sig) != SigLen {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}

// SHA3256 returns the 32-byte SHA3-256 digest of data.
func SHA3256(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// SHA3256Hex returns hex(SHA3-256(data)), the form OP_SHA3 and the
// signable-hash helpers push onto the stack.
func SHA3256Hex(data []byte) string {
	return hex.EncodeToString(SHA3256(data))
}
