package crypto

import "testing"

func TestSignVerifyRoundTrip(t *testing.T) {
	pub, priv, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	msg := []byte("hello transaction")
	sig, err := Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !Verify(pub, msg, sig) {
		t.Fatalf("Verify: valid signature reported invalid")
	}
	if Verify(pub, []byte("different message"), sig) {
		t.Fatalf("Verify: tampered message reported valid")
	}
}

func TestVerifyRejectsMalformedLengthsWithoutError(t *testing.T) {
	pub, priv, _ := GenerateKey()
	sig, _ := Sign(priv, []byte("msg"))

	if Verify(pub[:10], []byte("msg"), sig) {
		t.Fatalf("short pubkey: want false")
	}
	if Verify(pub, []byte("msg"), sig[:10]) {
		t.Fatalf("short signature: want false")
	}
}

func TestSignRejectsMalformedPrivateKey(t *testing.T) {
	if _, err := Sign([]byte("too short"), []byte("msg")); err != ErrInvalidPrivateKey {
		t.Fatalf("Sign with short private key: got %v, want ErrInvalidPrivateKey", err)
	}
}

func TestSHA3256Deterministic(t *testing.T) {
	a := SHA3256([]byte("abc"))
	b := SHA3256([]byte("abc"))
	if len(a) != 32 {
		t.Fatalf("digest length: got %d, want 32", len(a))
	}
	if string(a) != string(b) {
		t.Fatalf("SHA3256 not deterministic")
	}
	if SHA3256Hex([]byte("abc")) != SHA3256Hex([]byte("abc")) {
		t.Fatalf("SHA3256Hex not deterministic")
	}
	if len(SHA3256Hex([]byte("abc"))) != 64 {
		t.Fatalf("hex digest length: got %d, want 64", len(SHA3256Hex([]byte("abc"))))
	}
}
