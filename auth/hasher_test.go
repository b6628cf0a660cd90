package auth

import "testing"

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher(4)

	digest, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "secret1" {
		t.Fatal("digest must not equal the plaintext")
	}

	if !h.Verify("secret1", digest) {
		t.Error("correct password should verify")
	}
	if h.Verify("secret2", digest) {
		t.Error("wrong password should not verify")
	}
}

func TestHasherDistinctDigests(t *testing.T) {
	h := NewHasher(4)

	a, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestHasherClampsInvalidCost(t *testing.T) {
	h := NewHasher(99)

	digest, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash with clamped cost: %v", err)
	}
	if !h.Verify("secret1", digest) {
		t.Error("digest from clamped cost should verify")
	}
}
