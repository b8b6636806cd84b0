package script

import (
	"encoding/binary"
	"errors"
)

// ErrParseTruncated means the input ended mid-entry.
var ErrParseTruncated = errors.New("script: truncated encoding")

// ErrParseUnknownKind means a tag byte didn't name a known Kind.
var ErrParseUnknownKind = errors.New("script: unknown entry kind")

// Parse decodes a script from the wire form StackEntry.Encode/Script.Bytes
// produce. Named after the teacher's own Parse()/ParseBin() in
// bitcoin/script/script.go; this is the P2SH path's way of recovering a
// redeem script's entries from the bytes embedded in an unlocking script.
func Parse(b []byte) (*Script, error) {
	s := New()
	i := 0
	for i < len(b) {
		kind := Kind(b[i])
		i++
		switch kind {
		case KindOp:
			if i >= len(b) {
				return nil, ErrParseTruncated
			}
			s.Add(Op(b[i]))
			i++
		case KindNum:
			if i+8 > len(b) {
				return nil, ErrParseTruncated
			}
			s.Add(Num(binary.BigEndian.Uint64(b[i : i+8])))
			i += 8
		case KindBytes, KindPubKeyHash, KindPubKey, KindSignature:
			if i+4 > len(b) {
				return nil, ErrParseTruncated
			}
			ln := int(binary.BigEndian.Uint32(b[i : i+4]))
			i += 4
			if ln < 0 || i+ln > len(b) {
				return nil, ErrParseTruncated
			}
			data := b[i : i+ln]
			i += ln
			switch kind {
			case KindBytes:
				s.Add(Bytes(data))
			case KindPubKeyHash:
				s.Add(PubKeyHash(data))
			case KindPubKey:
				s.Add(PubKey(data))
			case KindSignature:
				s.Add(Signature(data))
			}
		default:
			return nil, ErrParseUnknownKind
		}
	}
	return s, nil
}
