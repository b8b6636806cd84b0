package validator

import (
	"testing"

	"github.com/Yoga07/NAOM/asset"
	"github.com/Yoga07/NAOM/crypto"
	"github.com/Yoga07/NAOM/script"
	"github.com/Yoga07/NAOM/tx"
)

func TestTxIsValidCoinbase(t *testing.T) {
	txn := &tx.Transaction{
		Inputs:  []tx.TxIn{{ScriptSignature: script.NewCoinbaseScript(12)}},
		Outputs: []tx.TxOut{{Value: asset.NewToken(50)}},
	}
	if !TxIsValid(txn, nil) {
		t.Fatalf("well-formed coinbase: want valid")
	}

	malformed := &tx.Transaction{
		Inputs:  []tx.TxIn{{ScriptSignature: script.New()}},
		Outputs: []tx.TxOut{{Value: asset.NewToken(50)}},
	}
	if TxIsValid(malformed, nil) {
		t.Fatalf("empty coinbase script: want invalid")
	}
}

func TestTxIsValidP2PKHBalanced(t *testing.T) {
	pub, priv, _ := crypto.GenerateKey()
	addr := crypto.AddressFor(pub, crypto.Current)

	prevOutPoint := tx.OutPoint{TxHash: "tx0", Index: 0}
	outpointHash := SignableHash(prevOutPoint)
	sig, _ := crypto.Sign(priv, []byte(outpointHash))
	prevOut := tx.TxOut{Value: asset.NewToken(10), ScriptPublicKey: &addr}

	lookup := func(op tx.OutPoint) (tx.TxOut, bool) {
		if op == prevOutPoint {
			return prevOut, true
		}
		return tx.TxOut{}, false
	}

	txn := &tx.Transaction{
		Inputs: []tx.TxIn{{
			PreviousOut:     &prevOutPoint,
			ScriptSignature: script.NewP2PKHScript([]byte(outpointHash), sig, pub, addr, crypto.Current),
		}},
		Outputs: []tx.TxOut{{Value: asset.NewToken(10)}},
	}
	if !TxIsValid(txn, lookup) {
		t.Fatalf("balanced p2pkh spend: want valid")
	}

	txn.Outputs[0].Value = asset.NewToken(11)
	if TxIsValid(txn, lookup) {
		t.Fatalf("unbalanced p2pkh spend: want invalid")
	}
}

func TestTxIsValidRejectsCreateShapedInput(t *testing.T) {
	// tx_is_valid only ever accepts P2PKH or P2SH spend-authorization
	// scripts (spec.md §4.6 step 2); a create-shaped unlocking script
	// has no place spending a UTXO and must be rejected.
	pub, priv, _ := crypto.GenerateKey()
	assetHash := []byte("mint")
	sig, _ := crypto.Sign(priv, assetHash)

	prevOutPoint := tx.OutPoint{TxHash: "tx0", Index: 0}
	addr := crypto.AddressFor(pub, crypto.Current)
	prevOut := tx.TxOut{Value: asset.NewReceipt(1, "seed-drs", nil), ScriptPublicKey: &addr}
	lookup := func(op tx.OutPoint) (tx.TxOut, bool) {
		if op == prevOutPoint {
			return prevOut, true
		}
		return tx.TxOut{}, false
	}

	txn := &tx.Transaction{
		Inputs: []tx.TxIn{{
			PreviousOut:     &prevOutPoint,
			ScriptSignature: script.NewCreateScript(1, assetHash, sig, pub),
		}},
		Outputs: []tx.TxOut{{Value: asset.NewReceipt(1, "seed-drs", nil)}},
	}
	if TxIsValid(txn, lookup) {
		t.Fatalf("create-shaped unlocking script spending a UTXO: want invalid")
	}
}

func TestTxIsValidRejectsOnSpentReceiptMissingDrs(t *testing.T) {
	// spec.md §4.6 step 1: a Receipt output may only carry Metadata at
	// creation; on any re-spend it must carry a non-empty DrsTxHash and
	// no metadata.
	txn := &tx.Transaction{
		Inputs:  []tx.TxIn{{ScriptSignature: script.NewCoinbaseScript(1)}},
		Outputs: []tx.TxOut{{Value: asset.NewReceipt(1, "", nil)}},
	}
	if TxIsValid(txn, nil) {
		t.Fatalf("on-spent receipt with empty DRS hash: want invalid")
	}

	txnWithMetadata := &tx.Transaction{
		Inputs:  []tx.TxIn{{ScriptSignature: script.NewCoinbaseScript(1)}},
		Outputs: []tx.TxOut{{Value: asset.NewReceipt(1, "some-drs", []byte("metadata"))}},
	}
	if TxIsValid(txnWithMetadata, nil) {
		t.Fatalf("on-spent receipt carrying metadata: want invalid")
	}
}

func TestTxIsValidRejectsInvalidOutputAddressLength(t *testing.T) {
	pub, priv, _ := crypto.GenerateKey()
	addr := crypto.AddressFor(pub, crypto.Current)

	prevOutPoint := tx.OutPoint{TxHash: "tx0", Index: 0}
	outpointHash := SignableHash(prevOutPoint)
	sig, _ := crypto.Sign(priv, []byte(outpointHash))
	prevOut := tx.TxOut{Value: asset.NewToken(10), ScriptPublicKey: &addr}
	lookup := func(op tx.OutPoint) (tx.TxOut, bool) {
		if op == prevOutPoint {
			return prevOut, true
		}
		return tx.TxOut{}, false
	}

	badAddr := "too-short"
	txn := &tx.Transaction{
		Inputs: []tx.TxIn{{
			PreviousOut:     &prevOutPoint,
			ScriptSignature: script.NewP2PKHScript([]byte(outpointHash), sig, pub, addr, crypto.Current),
		}},
		Outputs: []tx.TxOut{{Value: asset.NewToken(10), ScriptPublicKey: &badAddr}},
	}
	if TxIsValid(txn, lookup) {
		t.Fatalf("output address of invalid length: want invalid")
	}
}

func TestTxIsValidRejectsMissingPreviousOutput(t *testing.T) {
	pub, priv, _ := crypto.GenerateKey()
	addr := crypto.AddressFor(pub, crypto.Current)
	checkData := []byte("spend")
	sig, _ := crypto.Sign(priv, checkData)

	missing := tx.OutPoint{TxHash: "does-not-exist", Index: 0}
	lookup := func(tx.OutPoint) (tx.TxOut, bool) { return tx.TxOut{}, false }

	txn := &tx.Transaction{
		Inputs: []tx.TxIn{{
			PreviousOut:     &missing,
			ScriptSignature: script.NewP2PKHScript(checkData, sig, pub, addr, crypto.Current),
		}},
		Outputs: []tx.TxOut{{Value: asset.NewToken(1)}},
	}
	if TxIsValid(txn, lookup) {
		t.Fatalf("unresolvable previous output: want invalid")
	}
}

func TestTxIsValidRejectsNoOutputs(t *testing.T) {
	txn := &tx.Transaction{Inputs: []tx.TxIn{{ScriptSignature: script.NewCoinbaseScript(1)}}}
	if TxIsValid(txn, nil) {
		t.Fatalf("no outputs: want invalid")
	}
}
