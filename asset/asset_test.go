package asset

import "testing"

func TestValuesAccumulation(t *testing.T) {
	v := NewValues()
	v.Add(NewToken(10), "")
	v.Add(NewToken(5), "")
	v.Add(NewReceipt(3, "drs-a", nil), "drs-a")
	v.Add(NewReceipt(2, "drs-a", nil), "drs-a")
	v.Add(NewReceipt(7, "drs-b", nil), "drs-b")
	v.Add(NewData(99, []byte("ignored")), "")

	if v.Tokens != 15 {
		t.Fatalf("Tokens: got %d, want 15", v.Tokens)
	}
	if v.ReceiptCount("drs-a") != 5 {
		t.Fatalf("ReceiptCount(drs-a): got %d, want 5", v.ReceiptCount("drs-a"))
	}
	if v.ReceiptCount("drs-b") != 7 {
		t.Fatalf("ReceiptCount(drs-b): got %d, want 7", v.ReceiptCount("drs-b"))
	}
	hashes := v.DrsHashes()
	if len(hashes) != 2 || hashes[0] != "drs-a" || hashes[1] != "drs-b" {
		t.Fatalf("DrsHashes: got %v, want sorted [drs-a drs-b]", hashes)
	}
}

func TestValuesEqual(t *testing.T) {
	a := NewValues()
	a.Add(NewToken(10), "")
	a.Add(NewReceipt(3, "drs-a", nil), "drs-a")

	b := NewValues()
	b.Add(NewReceipt(3, "drs-a", nil), "drs-a")
	b.Add(NewToken(10), "")

	if !a.Equal(b) {
		t.Fatalf("equal accumulators reported unequal")
	}

	b.Add(NewToken(1), "")
	if a.Equal(b) {
		t.Fatalf("mismatched token sum reported equal")
	}

	c := NewValues()
	c.Add(NewToken(10), "")
	c.Add(NewReceipt(3, "drs-z", nil), "drs-z")
	if a.Equal(c) {
		t.Fatalf("mismatched DRS hash reported equal")
	}
}

func TestCanonicalBytesDistinguishesFields(t *testing.T) {
	base := NewReceipt(10, "drs-a", []byte("meta"))
	cases := []Asset{
		NewReceipt(11, "drs-a", []byte("meta")),
		NewReceipt(10, "drs-b", []byte("meta")),
		NewReceipt(10, "drs-a", []byte("different")),
		NewToken(10),
	}
	baseBytes := base.CanonicalBytes()
	for i, c := range cases {
		if string(c.CanonicalBytes()) == string(baseBytes) {
			t.Errorf("case %d: CanonicalBytes collided with base", i)
		}
	}
}
