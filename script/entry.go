package script

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Kind discriminates the payload carried by a StackEntry.
type Kind int

const (
	// KindOp marks an entry as an opcode rather than data.
	KindOp Kind = iota
	// KindNum marks an entry as an unsigned machine-word integer.
	KindNum
	// KindBytes marks an entry as opaque byte data.
	KindBytes
	// KindPubKeyHash marks an entry as an address.
	KindPubKeyHash
	// KindPubKey marks an entry as a PK_LEN-byte public key.
	KindPubKey
	// KindSignature marks an entry as a SIG_LEN-byte signature.
	KindSignature
)

func (k Kind) String() string {
	switch k {
	case KindOp:
		return "Op"
	case KindNum:
		return "Num"
	case KindBytes:
		return "Bytes"
	case KindPubKeyHash:
		return "PubKeyHash"
	case KindPubKey:
		return "PubKey"
	case KindSignature:
		return "Signature"
	default:
		return "?"
	}
}

// StackEntry is a tagged value: exactly one of Op, Num, Bytes, PubKeyHash,
// PubKey or Signature is meaningful, as selected by Kind.
type StackEntry struct {
	Kind Kind
	op   byte
	num  uint64
	data []byte
}

// Op creates an opcode entry.
func Op(code byte) StackEntry {
	return StackEntry{Kind: KindOp, op: code}
}

// Num creates an unsigned machine-word integer entry.
func Num(n uint64) StackEntry {
	return StackEntry{Kind: KindNum, num: n}
}

// Bytes creates an opaque data entry.
func Bytes(b []byte) StackEntry {
	cp := make([]byte, len(b))
	copy(cp, b)
	return StackEntry{Kind: KindBytes, data: cp}
}

// PubKeyHash creates an address entry from hex-encoded address bytes.
func PubKeyHash(addr []byte) StackEntry {
	cp := make([]byte, len(addr))
	copy(cp, addr)
	return StackEntry{Kind: KindPubKeyHash, data: cp}
}

// PubKey creates a public-key entry. The caller is responsible for the
// PK_LEN length invariant; Push enforces item-size limits, not this one.
func PubKey(pk []byte) StackEntry {
	cp := make([]byte, len(pk))
	copy(cp, pk)
	return StackEntry{Kind: KindPubKey, data: cp}
}

// Signature creates a signature entry.
func Signature(sig []byte) StackEntry {
	cp := make([]byte, len(sig))
	copy(cp, sig)
	return StackEntry{Kind: KindSignature, data: cp}
}

// IsOp reports whether the entry is an opcode.
func (e StackEntry) IsOp() bool { return e.Kind == KindOp }

// OpCode returns the opcode value; only meaningful when IsOp().
func (e StackEntry) OpCode() byte { return e.op }

// NumValue returns the numeric value; only meaningful for KindNum.
func (e StackEntry) NumValue() uint64 { return e.num }

// IsZero reports whether a Num entry carries the value zero. Used by
// opcodes that branch on numeric truthiness (OP_IF, OP_VERIFY, ...).
func (e StackEntry) IsZero() bool { return e.Kind == KindNum && e.num == 0 }

// Payload returns the raw bytes backing Bytes/PubKeyHash/PubKey/Signature
// entries. Returns nil for Op and Num entries.
func (e StackEntry) Payload() []byte { return e.data }

// Len returns the byte length of the entry's data payload (0 for Op/Num).
func (e StackEntry) Len() int { return len(e.data) }

// Equal reports structural equality: same Kind and same payload. Num
// entries compare by value; the rest compare their raw bytes.
func (e StackEntry) Equal(o StackEntry) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case KindOp:
		return e.op == o.op
	case KindNum:
		return e.num == o.num
	default:
		return bytes.Equal(e.data, o.data)
	}
}

// String renders the entry for diagnostics.
func (e StackEntry) String() string {
	switch e.Kind {
	case KindOp:
		if oc := GetOpcode(e.op); oc != nil {
			return oc.Name
		}
		return fmt.Sprintf("OP_UNKNOWN(%d)", e.op)
	case KindNum:
		return fmt.Sprintf("#%d", e.num)
	default:
		return e.Kind.String() + ":" + hex.EncodeToString(e.data)
	}
}

// Encode returns the entry's canonical wire form: a Kind tag byte,
// followed by a fixed field for Op (opcode byte) and Num (big-endian
// uint64), or a 4-byte big-endian length prefix plus payload for the
// variable-length kinds — round-trippable by Parse. Unexported fields
// (op, num, data) are invisible to reflection-based encoders, so
// anything that needs to hash, compare, or re-parse a StackEntry
// byte-for-byte — the script's own Bytes(), the DRUID fingerprint over a
// transaction's inputs — goes through this method instead.
func (e StackEntry) Encode() []byte {
	buf := make([]byte, 0, 5+e.Len())
	buf = append(buf, byte(e.Kind))
	switch e.Kind {
	case KindOp:
		buf = append(buf, e.op)
	case KindNum:
		var w [8]byte
		binary.BigEndian.PutUint64(w[:], e.num)
		buf = append(buf, w[:]...)
	default:
		var ln [4]byte
		binary.BigEndian.PutUint32(ln[:], uint32(len(e.data)))
		buf = append(buf, ln[:]...)
		buf = append(buf, e.data...)
	}
	return buf
}

// byteCost returns the serialized-size contribution of the entry, per
// the cost formula of the script size invariant.
func (e StackEntry) byteCost() int {
	switch e.Kind {
	case KindOp:
		return 1
	case KindSignature:
		return SignatureLen
	case KindPubKey:
		return PubKeyLen
	case KindNum:
		return WordBits / 8
	default:
		return len(e.data)
	}
}
