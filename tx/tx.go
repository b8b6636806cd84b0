// Package tx defines the transaction data model: outpoints, inputs,
// outputs, and the DRUID cross-transaction expectation metadata
// (spec.md §3, §4.7), grounded on original_source/druid_utils.rs's
// Transaction/TxIn/TxOut/DruidExpectation shapes.
package tx

import (
	"encoding/binary"

	"github.com/Yoga07/NAOM/asset"
	"github.com/Yoga07/NAOM/script"
)

// OutPoint identifies a previously created output by the hash of its
// owning transaction and its index within that transaction's outputs.
type OutPoint struct {
	TxHash string
	Index  uint32
}

// CanonicalBytes returns the outpoint's canonical encoding for hashing
// and comparison (codec.Serialize recognizes this method).
func (o *OutPoint) CanonicalBytes() []byte {
	if o == nil {
		return []byte{0}
	}
	buf := append([]byte{1}, []byte(o.TxHash)...)
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], o.Index)
	return append(buf, idx[:]...)
}

// TxIn is one spend: a reference to the output it consumes and the
// unlocking script that authorizes the spend. PreviousOut is nil for a
// coinbase input (spec.md §4.4, "Coinbase").
type TxIn struct {
	PreviousOut     *OutPoint
	ScriptSignature *script.Script
}

// CanonicalBytes concatenates the outpoint and unlocking-script
// encodings (codec.Serialize recognizes this method; used for the DRUID
// input fingerprint, spec.md §4.7).
func (in TxIn) CanonicalBytes() []byte {
	buf := in.PreviousOut.CanonicalBytes()
	if in.ScriptSignature != nil {
		buf = append(buf, in.ScriptSignature.Bytes()...)
	}
	return buf
}

// TxOut is one newly created output: the asset it carries and the
// address that must be proven owned to later spend it. ScriptPublicKey
// holds the destination address (the teacher's NAOM original carries
// this as a plain string, not a script — the locking predicate is
// reconstructed at spend time from this address plus the template the
// spending TxIn's unlocking script claims to satisfy). A nil
// ScriptPublicKey marks an output nobody can spend by script.
type TxOut struct {
	Value           asset.Asset
	ScriptPublicKey *string
}

// DruidExpectation states one leg of a multi-party atomic swap: the
// asset expected to move between two named participants once the swap's
// DRUID condition is met (spec.md §4.7).
type DruidExpectation struct {
	From  string
	To    string
	Asset asset.Asset
}

// DruidInfo carries the DRUID coordination metadata a participating
// transaction embeds. Druid is the shared swap identifier; Participants
// is the total number of transactions that must each embed it;
// Expectations lists this transaction's leg(s) of the swap.
type DruidInfo struct {
	Druid        string
	Participants int
	Expectations []DruidExpectation
}

// Transaction is the unit the validator operates on: a set of inputs
// spending prior outputs, a set of outputs creating new ones, and
// optional DRUID metadata for atomic multi-party swaps.
type Transaction struct {
	Inputs    []TxIn
	Outputs   []TxOut
	DruidInfo *DruidInfo
}

// IsCoinbase reports whether every input lacks a previous outpoint —
// the shape a coinbase transaction must have (spec.md §4.4).
func (t *Transaction) IsCoinbase() bool {
	if len(t.Inputs) == 0 {
		return false
	}
	for _, in := range t.Inputs {
		if in.PreviousOut != nil {
			return false
		}
	}
	return true
}
