package crypto

import "encoding/hex"

// Version selects among the address encodings a public key can hash to.
// Only NETWORK_VERSION_V0 and NETWORK_VERSION_TEMP are named by spec.md
// §6; the current (unversioned) encoding has no named constant there.
type Version int

const (
	// Current is the present-day address encoding (32 hex chars).
	Current Version = iota
	// V0 is the legacy encoding named NETWORK_VERSION_V0 (64 hex chars).
	V0
	// Temp is the legacy encoding named NETWORK_VERSION_TEMP (64 hex
	// chars, distinct from V0 — spec.md §4.2 and §9 both require the
	// three HASH256 variants stay distinct; a collision would let a
	// script written against one legacy encoding be satisfied by a key
	// that only matches under the other, silently rewriting which key
	// could spend a historical output).
	Temp
)

// NetworkVersionV0 and NetworkVersionTemp are the opaque sentinel values
// named in spec.md §6 ("Address-version constants"). The script
// templates do not use them: NewP2PKHScript picks the OP_HASH256 variant
// from a Version (V0, Temp).
const (
	NetworkVersionV0   = 0
	NetworkVersionTemp = 1
)

// AddressFor derives an address from a public key under the given
// version. The current encoding is 32 hex chars; V0 and Temp are legacy
// 64-char encodings that must never collide with one another (spec.md
// §4.2, §9).
//
// There is no address-construction library in the example pack for this
// hex-address shape (out of scope per spec.md §1, "external
// collaborators"); this is a deterministic stand-in that satisfies the
// documented length and distinctness contract. See DESIGN.md.
func AddressFor(pub []byte, version Version) string {
	switch version {
	case V0:
		return AddressV0(pub)
	case Temp:
		return AddressTemp(pub)
	default:
		digest := SHA3256(pub)
		return hex.EncodeToString(digest[:16]) // 32 hex chars
	}
}

// AddressV0 is the legacy NETWORK_VERSION_V0 address encoding: the full
// 64-hex-char SHA3-256 digest of the public key, not truncated.
func AddressV0(pub []byte) string {
	return hex.EncodeToString(SHA3256(pub))
}

// AddressTemp is the legacy NETWORK_VERSION_TEMP address encoding: a
// double SHA3-256 digest, kept byte-for-byte distinct from AddressV0 so
// the two legacy forms can never collide.
func AddressTemp(pub []byte) string {
	once := SHA3256(pub)
	twice := SHA3256(once)
	return hex.EncodeToString(twice)
}

// P2SHAddressOf derives the pay-to-script-hash address of a serialized
// script: the current (32-hex-char) encoding of its SHA3-256 digest.
func P2SHAddressOf(scriptBytes []byte) string {
	digest := SHA3256(scriptBytes)
	return hex.EncodeToString(digest[:16])
}
