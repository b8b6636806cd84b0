package script

import (
	"bytes"
	"testing"
)

func TestStackEntryConstructorsAndAccessors(t *testing.T) {
	op := Op(OpADD)
	if !op.IsOp() || op.OpCode() != OpADD {
		t.Fatalf("Op: got IsOp=%v OpCode=%d", op.IsOp(), op.OpCode())
	}

	num := Num(42)
	if num.IsOp() || num.NumValue() != 42 || num.IsZero() {
		t.Fatalf("Num: unexpected accessors %+v", num)
	}
	if !Num(0).IsZero() {
		t.Fatal("Num(0) should report IsZero")
	}
	if op.IsZero() {
		t.Fatal("an Op entry must never report IsZero")
	}

	b := Bytes([]byte("hello"))
	if b.Len() != 5 || !bytes.Equal(b.Payload(), []byte("hello")) {
		t.Fatalf("Bytes: got payload %q len %d", b.Payload(), b.Len())
	}

	pk := PubKey(bytes.Repeat([]byte{1}, PubKeyLen))
	if pk.Kind != KindPubKey || pk.Len() != PubKeyLen {
		t.Fatalf("PubKey: unexpected shape %+v", pk)
	}

	sig := Signature(bytes.Repeat([]byte{2}, SignatureLen))
	if sig.Kind != KindSignature || sig.Len() != SignatureLen {
		t.Fatalf("Signature: unexpected shape %+v", sig)
	}
}

func TestStackEntryEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b StackEntry
		want bool
	}{
		{"same num", Num(7), Num(7), true},
		{"different num", Num(7), Num(8), false},
		{"same op", Op(OpDUP), Op(OpDUP), true},
		{"different op", Op(OpDUP), Op(OpDROP), false},
		{"same bytes", Bytes([]byte("x")), Bytes([]byte("x")), true},
		{"different kind", Num(1), Bytes([]byte{1}), false},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Errorf("%s: Equal() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestStackEntryEncodeRoundTrip(t *testing.T) {
	entries := []StackEntry{
		Op(OpCHECKSIG),
		Num(18446744073709551615),
		Bytes([]byte("payload")),
		PubKeyHash([]byte("deadbeef")),
		PubKey(bytes.Repeat([]byte{9}, PubKeyLen)),
		Signature(bytes.Repeat([]byte{8}, SignatureLen)),
	}
	s := New()
	for _, e := range entries {
		s.Add(e)
	}

	parsed, err := Parse(s.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed.Entries) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(parsed.Entries), len(entries))
	}
	for i, e := range entries {
		if !parsed.Entries[i].Equal(e) {
			t.Errorf("entry %d: got %v, want %v", i, parsed.Entries[i], e)
		}
	}
}

func TestByteCost(t *testing.T) {
	if Op(OpADD).byteCost() != 1 {
		t.Fatal("op byteCost should be 1")
	}
	if Num(5).byteCost() != WordBits/8 {
		t.Fatal("num byteCost should be WordBits/8")
	}
	if PubKey(make([]byte, PubKeyLen)).byteCost() != PubKeyLen {
		t.Fatal("pubkey byteCost should be PubKeyLen")
	}
	if Signature(make([]byte, SignatureLen)).byteCost() != SignatureLen {
		t.Fatal("signature byteCost should be SignatureLen")
	}
	if Bytes([]byte("abc")).byteCost() != 3 {
		t.Fatal("bytes byteCost should be len(payload)")
	}
}
