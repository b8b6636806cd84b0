package validator

import (
	"context"
	"testing"

	"github.com/Yoga07/NAOM/asset"
	"github.com/Yoga07/NAOM/crypto"
	"github.com/Yoga07/NAOM/script"
	"github.com/Yoga07/NAOM/tx"
)

func TestValidateBatchPreservesOrderAndResults(t *testing.T) {
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

	good := &tx.Transaction{
		Inputs: []tx.TxIn{{
			PreviousOut:     &prevOutPoint,
			ScriptSignature: script.NewP2PKHScript([]byte(outpointHash), sig, pub, addr, crypto.Current),
		}},
		Outputs: []tx.TxOut{{Value: asset.NewToken(10)}},
	}
	bad := &tx.Transaction{
		Inputs: []tx.TxIn{{
			PreviousOut:     &prevOutPoint,
			ScriptSignature: script.NewP2PKHScript([]byte(outpointHash), sig, pub, addr, crypto.Current),
		}},
		Outputs: []tx.TxOut{{Value: asset.NewToken(999)}},
	}
	coinbase := &tx.Transaction{
		Inputs:  []tx.TxIn{{ScriptSignature: script.NewCoinbaseScript(1)}},
		Outputs: []tx.TxOut{{Value: asset.NewToken(50)}},
	}

	txs := []*tx.Transaction{good, bad, coinbase}
	results := ValidateBatch(context.Background(), txs, lookup, 2)

	want := []bool{true, false, true}
	if len(results) != len(want) {
		t.Fatalf("result length: got %d, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i] != w {
			t.Errorf("index %d: got %v, want %v", i, results[i], w)
		}
	}
}

func TestValidateBatchEmpty(t *testing.T) {
	if got := ValidateBatch(context.Background(), nil, nil, 4); got != nil {
		t.Fatalf("empty batch: got %v, want nil", got)
	}
}
