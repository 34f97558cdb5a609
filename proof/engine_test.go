package proof

import (
	"testing"
	"time"
)

func testEngine(t *testing.T) *Engine {
	key, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return NewEngine(key)
}

func TestSingleTransition(t *testing.T) {
	e := testEngine(t)

	p, err := e.CreateProof(time.Now(), "IDLE", "INIT", "start", map[string]any{"foo": 1})
	if err != nil {
		t.Fatal(err)
	}

	if p.PrevHash != "" {
		t.Errorf("expected empty prevHash for first transition, got %q", p.PrevHash)
	}
	if !Verify(e.PublicKey(), p.StateHash, p.Signature) {
		t.Error("signature does not verify")
	}
	if p.MerkleRoot != p.StateHash {
		t.Errorf("single-leaf root should equal the leaf hash, got root=%s leaf=%s", p.MerkleRoot, p.StateHash)
	}
	if !verifyMerkleProof(p.StateHash, 0, p.MerkleProof, p.MerkleRoot) {
		t.Error("merkle proof does not verify against root")
	}
}

func TestChainOfThree(t *testing.T) {
	e := testEngine(t)

	p0, err := e.CreateProof(time.Now(), "IDLE", "INIT", "start", map[string]any{})
	if err != nil {
		t.Fatal(err)
	}
	p1, err := e.CreateProof(time.Now(), "INIT", "GOAL_PARSE", "parse", map[string]any{"g": "x"})
	if err != nil {
		t.Fatal(err)
	}
	p2, err := e.CreateProof(time.Now(), "GOAL_PARSE", "PLANNING", "plan", map[string]any{})
	if err != nil {
		t.Fatal(err)
	}

	if p1.PrevHash != p0.StateHash {
		t.Error("proofs[1].prevHash should equal proofs[0].stateHash")
	}
	if p2.PrevHash != p1.StateHash {
		t.Error("proofs[2].prevHash should equal proofs[1].stateHash")
	}

	result := VerifyChain([]Proof{p0, p1, p2}, e.PublicKey())
	if !result.OK {
		t.Fatalf("expected chain to verify, got %+v", result)
	}
}

func TestTamperDetection(t *testing.T) {
	e := testEngine(t)

	proofs := make([]Proof, 0, 3)
	for i, step := range []struct{ from, to, action string }{
		{"IDLE", "INIT", "start"},
		{"INIT", "GOAL_PARSE", "parse"},
		{"GOAL_PARSE", "PLANNING", "plan"},
	} {
		p, err := e.CreateProof(time.Now(), step.from, step.to, step.action, map[string]any{"i": i})
		if err != nil {
			t.Fatal(err)
		}
		proofs = append(proofs, p)
	}

	// flip a hex character in the middle proof's stateHash
	tampered := append([]Proof{}, proofs...)
	runes := []byte(tampered[1].StateHash)
	if runes[0] == '0' {
		runes[0] = '1'
	} else {
		runes[0] = '0'
	}
	tampered[1].StateHash = string(runes)

	result := VerifyChain(tampered, e.PublicKey())
	if result.OK {
		t.Fatal("expected tampered chain to fail verification")
	}
	if result.FailedAt == nil || *result.FailedAt < 1 {
		t.Errorf("expected failure at or after index 1, got %+v", result.FailedAt)
	}
}

func TestVerifyChainEmpty(t *testing.T) {
	e := testEngine(t)
	result := VerifyChain(nil, e.PublicKey())
	if !result.OK {
		t.Errorf("empty chain should trivially verify, got %+v", result)
	}
}

func TestCanonicalizationDeterministic(t *testing.T) {
	d1 := Descriptor{Timestamp: 1, From: "a", To: "b", Action: "x", Params: map[string]any{"z": 1, "a": 2}}
	d2 := Descriptor{Timestamp: 1, From: "a", To: "b", Action: "x", Params: map[string]any{"a": 2, "z": 1}}

	c1, err := canonicalize(d1)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := canonicalize(d2)
	if err != nil {
		t.Fatal(err)
	}
	if string(c1) != string(c2) {
		t.Errorf("canonical forms should agree regardless of map literal order: %s vs %s", c1, c2)
	}
}

func TestKeyHexRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	privHex, err := EncodePrivateKeyHex(key)
	if err != nil {
		t.Fatal(err)
	}
	pubHex, err := EncodePublicKeyHex(&key.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	decodedPriv, err := DecodePrivateKeyHex(privHex)
	if err != nil {
		t.Fatal(err)
	}
	decodedPub, err := DecodePublicKeyHex(pubHex)
	if err != nil {
		t.Fatal(err)
	}

	if decodedPriv.N.Cmp(key.N) != 0 {
		t.Error("decoded private key does not match original")
	}
	if decodedPub.N.Cmp(key.PublicKey.N) != 0 {
		t.Error("decoded public key does not match original")
	}
}
