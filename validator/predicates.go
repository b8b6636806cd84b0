// Package validator implements the spend-authorization predicates, the
// transaction validity check, and the DRUID cross-transaction
// expectation verifier (spec.md §4.5–§4.7), grounded on
// original_source/src/utils/script_utils.rs and druid_utils.rs.
package validator

import (
	"bytes"

	"github.com/Yoga07/NAOM/asset"
	"github.com/Yoga07/NAOM/crypto"
	"github.com/Yoga07/NAOM/script"
	"github.com/Yoga07/NAOM/tx"
)

// dataMarker mirrors script.Script.Template()'s data-slot encoding
// (0xe0 + Kind) so predicates can match a template shape without
// exporting the encoding from the script package itself.
func dataMarker(k script.Kind) byte { return 0xe0 + byte(k) }

// createTemplate is the fixed opcode skeleton NewCreateScript emits:
// [OP_CREATE, Num, OP_DROP, Bytes, Signature, PubKey, OP_CHECKSIG].
func createTemplate() []byte {
	return []byte{
		script.OpCREATE,
		dataMarker(script.KindNum),
		script.OpDROP,
		dataMarker(script.KindBytes),
		dataMarker(script.KindSignature),
		dataMarker(script.KindPubKey),
		script.OpCHECKSIG,
	}
}

// p2pkhTemplate is the fixed opcode skeleton NewP2PKHScript emits, for
// one OP_HASH256 variant.
func p2pkhTemplate(hashOp byte) []byte {
	return []byte{
		dataMarker(script.KindBytes),
		dataMarker(script.KindSignature),
		dataMarker(script.KindPubKey),
		script.OpDUP,
		hashOp,
		dataMarker(script.KindPubKeyHash),
		script.OpEQUALVERIFY,
		script.OpCHECKSIG,
	}
}

var p2pkhHashOps = []byte{script.OpHASH256, script.OpHASH256V0, script.OpHASH256TEMP}

// HasValidCreateScript reports whether in's unlocking script is a
// well-formed asset-creation script (spec.md §4.4/§4.5): the fixed
// OP_CREATE opcode skeleton, a script that evaluates true, and — the
// supplemented metadata-length gate from script_utils.rs — a receipt
// output's Metadata within MAX_METADATA_BYTES.
func HasValidCreateScript(in tx.TxIn, out tx.TxOut) bool {
	if in.ScriptSignature == nil {
		return false
	}
	if !bytes.Equal(in.ScriptSignature.Template(), createTemplate()) {
		return false
	}
	ok, err := script.Interpret(in.ScriptSignature)
	if err != nil || !ok {
		return false
	}
	if out.Value.Kind == asset.Receipt && len(out.Value.Metadata) > script.MaxMetadataBytes {
		return false
	}
	return true
}

// HasValidP2PKHSig reports whether in's unlocking script is a
// well-formed, successfully-evaluating P2PKH script whose embedded
// check-data is bound to outpointHash (the signable hash of the
// outpoint this input spends) and whose embedded address matches the
// destination committed on the output it spends (spec.md §4.5).
func HasValidP2PKHSig(in tx.TxIn, prevOut tx.TxOut, outpointHash string) bool {
	if in.ScriptSignature == nil || prevOut.ScriptPublicKey == nil {
		return false
	}
	tpl := in.ScriptSignature.Template()
	matched := false
	for _, hashOp := range p2pkhHashOps {
		if bytes.Equal(tpl, p2pkhTemplate(hashOp)) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	checkData := in.ScriptSignature.Entries[0]
	if string(checkData.Payload()) != outpointHash {
		return false
	}
	addr := in.ScriptSignature.Entries[5]
	if string(addr.Payload()) != *prevOut.ScriptPublicKey {
		return false
	}
	ok, err := script.Interpret(in.ScriptSignature)
	return err == nil && ok
}

// HasValidP2SHScript reports whether in's unlocking script is a
// well-formed pay-to-script-hash spend: the trailing entry is the
// serialized redeem script, its hash matches the destination committed
// on the output it spends, and executing the supplied signatures
// against the decoded redeem script succeeds (spec.md §4.5).
func HasValidP2SHScript(in tx.TxIn, prevOut tx.TxOut) bool {
	if in.ScriptSignature == nil || prevOut.ScriptPublicKey == nil {
		return false
	}
	entries := in.ScriptSignature.Entries
	if len(entries) == 0 {
		return false
	}
	redeemEntry := entries[len(entries)-1]
	if redeemEntry.Kind != script.KindBytes {
		return false
	}
	if crypto.P2SHAddressOf(redeemEntry.Payload()) != *prevOut.ScriptPublicKey {
		return false
	}
	redeem, err := script.Parse(redeemEntry.Payload())
	if err != nil {
		return false
	}
	combined := script.New()
	for _, e := range entries[:len(entries)-1] {
		combined.Add(e)
	}
	for _, e := range redeem.Entries {
		combined.Add(e)
	}
	ok, err := script.Interpret(combined)
	return err == nil && ok
}

// IdentifyTemplate classifies a TxIn's unlocking script by the shape it
// structurally matches, or "" if it matches none of the known templates.
// TxIsValid does not consult it; it tries HasValidP2PKHSig and then
// HasValidP2SHScript on every input.
func IdentifyTemplate(in tx.TxIn) string {
	if in.ScriptSignature == nil {
		return ""
	}
	tpl := in.ScriptSignature.Template()
	if bytes.Equal(tpl, createTemplate()) {
		return "create"
	}
	for _, hashOp := range p2pkhHashOps {
		if bytes.Equal(tpl, p2pkhTemplate(hashOp)) {
			return "p2pkh"
		}
	}
	if len(in.ScriptSignature.Entries) > 0 {
		last := in.ScriptSignature.Entries[len(in.ScriptSignature.Entries)-1]
		if last.Kind == script.KindBytes {
			return "p2sh"
		}
	}
	return ""
}
