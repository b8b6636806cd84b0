package validator

import (
	"github.com/Yoga07/NAOM/asset"
	"github.com/Yoga07/NAOM/logger"
	"github.com/Yoga07/NAOM/script"
	"github.com/Yoga07/NAOM/tx"
)

// UTXOLookup resolves a previously created output by its outpoint. The
// validator never touches storage itself (spec.md §1 Non-goals name
// UTXO storage out of scope); callers supply this as their narrow
// collaborator interface.
type UTXOLookup func(tx.OutPoint) (tx.TxOut, bool)

// TxIsValid reports whether t is a structurally and
// authorization-valid transaction (spec.md §4.6):
//
//  1. No output is a Receipt being on-spent with a missing DrsTxHash or
//     a present Metadata (metadata is only ever valid at creation).
//  2. A coinbase transaction (every input lacking a previous outpoint)
//     needs only well-formed coinbase scripts; it mints and is exempt
//     from conservation.
//  3. Every other input must resolve via lookup to a real prior output
//     with a destination address, and its unlocking script must satisfy
//     has_valid_p2pkh_sig (bound to the outpoint's signable hash) or
//     has_valid_p2sh_script; any other shape fails the transaction.
//  4. Inputs accumulate into AssetValues, canonicalizing an absent
//     Receipt DrsTxHash to the outpoint it was spent from.
//  5. Every output carrying an address must have a 32- or 64-hex-char
//     address; outputs accumulate into a parallel AssetValues.
//  6. Input and output AssetValues must be equal (Token sums and
//     per-DRS receipt counts).
func TxIsValid(t *tx.Transaction, lookup UTXOLookup) bool {
	if t == nil || len(t.Outputs) == 0 {
		logger.Println(logger.DBG, "[validator] rejected: no outputs")
		return false
	}
	for _, out := range t.Outputs {
		if out.Value.Kind == asset.Receipt && (out.Value.DrsTxHash == "" || len(out.Value.Metadata) > 0) {
			logger.Println(logger.DBG, "[validator] rejected: on-spent receipt needs empty metadata and non-empty DRS")
			return false
		}
	}
	if t.IsCoinbase() {
		return coinbaseInputsValid(t)
	}
	if len(t.Inputs) == 0 {
		logger.Println(logger.DBG, "[validator] rejected: non-coinbase tx with no inputs")
		return false
	}

	inValues := asset.NewValues()

	for _, in := range t.Inputs {
		if in.PreviousOut == nil {
			logger.Println(logger.DBG, "[validator] rejected: nil previous-out on non-coinbase input")
			return false
		}
		prevOut, ok := lookup(*in.PreviousOut)
		if !ok {
			logger.Printf(logger.DBG, "[validator] rejected: unresolved previous output %+v", *in.PreviousOut)
			return false
		}
		if prevOut.ScriptPublicKey == nil {
			logger.Println(logger.DBG, "[validator] rejected: previous output has no destination address")
			return false
		}

		h := SignableHash(*in.PreviousOut)
		if !HasValidP2PKHSig(in, prevOut, h) && !HasValidP2SHScript(in, prevOut) {
			logger.Println(logger.DBG, "[validator] rejected: invalid spend-authorization script")
			return false
		}

		drsTxHash := prevOut.Value.DrsTxHash
		if prevOut.Value.Kind == asset.Receipt && drsTxHash == "" {
			drsTxHash = SignableHash(*in.PreviousOut)
		}
		inValues.Add(prevOut.Value, drsTxHash)
	}

	outValues := asset.NewValues()
	for _, out := range t.Outputs {
		if out.ScriptPublicKey != nil {
			n := len(*out.ScriptPublicKey)
			if n != 32 && n != 64 {
				logger.Println(logger.DBG, "[validator] rejected: output address has invalid length")
				return false
			}
		}
		outValues.Add(out.Value, out.Value.DrsTxHash)
	}
	if !inValues.Equal(outValues) {
		logger.Println(logger.DBG, "[validator] rejected: input/output value conservation failed")
		return false
	}
	return true
}

// coinbaseInputsValid checks every coinbase input is the fixed
// [Num(blockNumber)] shape (spec.md §4.4) — a single numeric entry, no
// opcodes at all.
func coinbaseInputsValid(t *tx.Transaction) bool {
	for _, in := range t.Inputs {
		if in.ScriptSignature == nil {
			return false
		}
		entries := in.ScriptSignature.Entries
		if len(entries) != 1 || entries[0].Kind != script.KindNum {
			return false
		}
	}
	return true
}
