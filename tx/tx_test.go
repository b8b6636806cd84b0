package tx

import (
	"testing"

	"github.com/Yoga07/NAOM/asset"
	"github.com/Yoga07/NAOM/script"
)

func TestOutPointCanonicalBytes(t *testing.T) {
	a := &OutPoint{TxHash: "tx1", Index: 0}
	b := &OutPoint{TxHash: "tx1", Index: 1}
	c := &OutPoint{TxHash: "tx2", Index: 0}

	if string(a.CanonicalBytes()) == string(b.CanonicalBytes()) {
		t.Fatalf("differing index collided")
	}
	if string(a.CanonicalBytes()) == string(c.CanonicalBytes()) {
		t.Fatalf("differing hash collided")
	}
	var nilPtr *OutPoint
	if len(nilPtr.CanonicalBytes()) == 0 {
		t.Fatalf("nil outpoint should still encode to a sentinel byte")
	}
}

func TestTxInCanonicalBytesIncludesScript(t *testing.T) {
	out := &OutPoint{TxHash: "tx1", Index: 0}
	plain := TxIn{PreviousOut: out}
	withScript := TxIn{PreviousOut: out, ScriptSignature: script.NewCoinbaseScript(3)}

	if string(plain.CanonicalBytes()) == string(withScript.CanonicalBytes()) {
		t.Fatalf("script presence should change the fingerprint")
	}
}

func TestIsCoinbase(t *testing.T) {
	coinbase := &Transaction{Inputs: []TxIn{{PreviousOut: nil}}}
	if !coinbase.IsCoinbase() {
		t.Fatalf("nil-outpoint input: want IsCoinbase true")
	}

	spend := &Transaction{Inputs: []TxIn{{PreviousOut: &OutPoint{TxHash: "tx1"}}}}
	if spend.IsCoinbase() {
		t.Fatalf("real outpoint input: want IsCoinbase false")
	}

	empty := &Transaction{}
	if empty.IsCoinbase() {
		t.Fatalf("no inputs at all: want IsCoinbase false")
	}
}

func newOutPointFixture(hash string, idx uint32) *OutPoint {
	return &OutPoint{TxHash: hash, Index: idx}
}

func TestTransactionShapeWithDruidInfo(t *testing.T) {
	dest := "addr-bob"
	txn := &Transaction{
		Inputs: []TxIn{{PreviousOut: newOutPointFixture("tx0", 0)}},
		Outputs: []TxOut{
			{Value: asset.NewToken(10), ScriptPublicKey: &dest},
		},
		DruidInfo: &DruidInfo{
			Druid:        "druid-1",
			Participants: 2,
			Expectations: []DruidExpectation{
				{From: "addr-alice", To: "addr-bob", Asset: asset.NewToken(10)},
			},
		},
	}
	if txn.IsCoinbase() {
		t.Fatalf("transaction with a real outpoint should not be a coinbase")
	}
	if txn.DruidInfo.Druid != "druid-1" || len(txn.DruidInfo.Expectations) != 1 {
		t.Fatalf("DruidInfo not carried through as constructed")
	}
}
