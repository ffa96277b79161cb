package hash

import "testing"

func TestBcryptHasher_Roundtrip(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hashed, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hashed == "secret123" {
		t.Fatalf("hash returned plaintext")
	}
	if !h.Check(hashed, "secret123") {
		t.Fatalf("check rejected the correct password")
	}
	if h.Check(hashed, "secret124") {
		t.Fatalf("check accepted a wrong password")
	}
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	h := NewBcryptHasher(4)

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatalf("two hashes of the same password should differ by salt")
	}
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99)

	hashed, err := h.Hash("x")
	if err != nil {
		t.Fatalf("hash failed with clamped cost: %v", err)
	}
	if !h.Check(hashed, "x") {
		t.Fatalf("check failed with clamped cost")
	}
}
