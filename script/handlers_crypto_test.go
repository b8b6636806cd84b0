package script

import (
	"testing"

	"github.com/Yoga07/NAOM/crypto"
)

func TestCheckSigOpcode(t *testing.T) {
	pub, priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	msg := []byte("transfer 10 tokens")
	sig, err := crypto.Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	good := New().Add(Bytes(msg)).Add(Signature(sig)).Add(PubKey(pub)).Add(Op(OpCHECKSIG))
	ok, err := Interpret(good)
	if err != nil || !ok {
		t.Fatalf("valid signature: got ok=%v err=%v", ok, err)
	}

	tampered := New().Add(Bytes([]byte("different message"))).Add(Signature(sig)).Add(PubKey(pub)).Add(Op(OpCHECKSIG))
	ok2, err2 := Interpret(tampered)
	if err2 != nil || ok2 {
		t.Fatalf("tampered message: got ok=%v err=%v, want script-false", ok2, err2)
	}
}

func TestCheckMultiSigBipartiteMatching(t *testing.T) {
	pub1, priv1, _ := crypto.GenerateKey()
	pub2, priv2, _ := crypto.GenerateKey()
	pub3, _, _ := crypto.GenerateKey()
	msg := []byte("2-of-3 payout")

	sig1, _ := crypto.Sign(priv1, msg)
	sig2, _ := crypto.Sign(priv2, msg)

	s, err := NewMultisigValidationScript(msg, [][]byte{sig1, sig2}, 2, [][]byte{pub1, pub2, pub3})
	if err != nil {
		t.Fatalf("NewMultisigValidationScript: %v", err)
	}
	ok, err := Interpret(s)
	if err != nil || !ok {
		t.Fatalf("valid 2-of-3: got ok=%v err=%v", ok, err)
	}
}

func TestCheckMultiSigRejectsUnmatchedSignature(t *testing.T) {
	pub1, _, _ := crypto.GenerateKey()
	pub2, _, _ := crypto.GenerateKey()
	_, strangerPriv, _ := crypto.GenerateKey()
	msg := []byte("2-of-2 payout")

	strangerSig, _ := crypto.Sign(strangerPriv, msg)

	s, err := NewMultisigValidationScript(msg, [][]byte{strangerSig}, 1, [][]byte{pub1, pub2})
	if err != nil {
		t.Fatalf("NewMultisigValidationScript: %v", err)
	}
	ok, err := Interpret(s)
	if err != nil || ok {
		t.Fatalf("unmatched signature: got ok=%v err=%v, want script-false", ok, err)
	}
}

func TestHash256VariantsStayDistinct(t *testing.T) {
	pub, _, _ := crypto.GenerateKey()
	cur := crypto.AddressFor(pub, crypto.Current)
	v0 := crypto.AddressFor(pub, crypto.V0)
	temp := crypto.AddressFor(pub, crypto.Temp)
	if cur == v0 || cur == temp || v0 == temp {
		t.Fatalf("address encodings collided: current=%s v0=%s temp=%s", cur, v0, temp)
	}
}
