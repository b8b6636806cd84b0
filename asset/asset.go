// Package asset defines the value carried by a transaction output: a
// fungible Token amount, a DRS-tagged Receipt (optionally carrying
// creation metadata), or an opaque Data blob — and the AssetValues
// accumulator the transaction validator sums inputs and outputs into
// (spec.md §3, §4.6).
package asset

import (
	"encoding/binary"
	"sort"
)

// Kind discriminates the payload of an Asset.
type Kind int

const (
	// Token is a plain fungible amount.
	Token Kind = iota
	// Receipt is a DRS-tagged, semi-fungible amount, optionally carrying
	// creation metadata.
	Receipt
	// Data is an opaque byte blob carrying its own amount.
	Data
)

// Asset is the tagged value a TxOut carries. Exactly one of the fields
// relevant to Kind is meaningful.
type Asset struct {
	Kind Kind
	// Amount is meaningful for all three kinds.
	Amount uint64
	// DrsTxHash identifies the creation transaction of a Receipt asset.
	// Empty on a freshly minted receipt whose creation this transaction
	// itself establishes; required (non-empty) on a re-spend.
	DrsTxHash string
	// Metadata is only ever present at receipt creation (spec.md §4.6).
	Metadata []byte
	// Bytes carries the payload of a Data asset.
	Bytes []byte
}

// NewToken returns a Token asset of the given amount.
func NewToken(amount uint64) Asset { return Asset{Kind: Token, Amount: amount} }

// NewReceipt returns a Receipt asset.
func NewReceipt(amount uint64, drsTxHash string, metadata []byte) Asset {
	return Asset{Kind: Receipt, Amount: amount, DrsTxHash: drsTxHash, Metadata: metadata}
}

// NewData returns a Data asset.
func NewData(amount uint64, data []byte) Asset {
	return Asset{Kind: Data, Amount: amount, Bytes: data}
}

// CanonicalBytes returns a deterministic encoding of the asset, used
// wherever two assets must compare for structural equality (the DRUID
// expectation matcher, spec.md §4.7).
func (a Asset) CanonicalBytes() []byte {
	buf := []byte{byte(a.Kind)}
	var amt [8]byte
	binary.BigEndian.PutUint64(amt[:], a.Amount)
	buf = append(buf, amt[:]...)
	buf = append(buf, []byte(a.DrsTxHash)...)
	buf = append(buf, 0)
	buf = append(buf, a.Metadata...)
	buf = append(buf, 0)
	buf = append(buf, a.Bytes...)
	return buf
}

// Values accumulates the Token total and per-DRS Receipt counts spent or
// produced by a transaction side (spec.md §3, "AssetValues"). The
// per-DRS map is read only through sorted-key iteration so aggregation
// results are deterministic across runs (spec.md §5).
type Values struct {
	Tokens   uint64
	receipts map[string]uint64
}

// NewValues returns an empty accumulator.
func NewValues() *Values {
	return &Values{receipts: make(map[string]uint64)}
}

// Add folds one asset into the accumulator. For Receipt assets, drsTxHash
// is the canonicalized DRS identifier to aggregate under — callers bind
// an absent DrsTxHash to the referenced outpoint before calling Add
// (spec.md §4.6 step 3, the canonicalization step), so this method never
// looks at asset.DrsTxHash directly.
func (v *Values) Add(a Asset, drsTxHash string) {
	switch a.Kind {
	case Token:
		v.Tokens += a.Amount
	case Receipt:
		v.receipts[drsTxHash] += a.Amount
	case Data:
		// Data assets carry their own amount but are not part of the
		// Token/Receipt conservation check (spec.md §4.6 names only
		// Token sums and per-DRS receipt counts).
	}
}

// ReceiptCount returns the aggregated count for one DRS hash.
func (v *Values) ReceiptCount(drsTxHash string) uint64 {
	return v.receipts[drsTxHash]
}

// DrsHashes returns the set of DRS hashes present, sorted for
// deterministic iteration.
func (v *Values) DrsHashes() []string {
	keys := make([]string, 0, len(v.receipts))
	for k := range v.receipts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports component-wise equality: Token sums equal, and every
// per-DRS receipt count equal (spec.md §3, §4.6 step 5).
func (v *Values) Equal(o *Values) bool {
	if v.Tokens != o.Tokens {
		return false
	}
	if len(v.receipts) != len(o.receipts) {
		return false
	}
	for k, n := range v.receipts {
		if o.receipts[k] != n {
			return false
		}
	}
	return true
}
