package proof

import "crypto/rsa"

// VerifyResult is the normative shape of the public verification API in
// spec.md §6: { ok, failed_at?, reason? }.
type VerifyResult struct {
	OK       bool
	FailedAt *int
	Reason   string
}

func fail(index int, reason string) VerifyResult {
	i := index
	return VerifyResult{OK: false, FailedAt: &i, Reason: reason}
}

// VerifyChain is the single function external auditors are expected to
// call. It treats every proof's StateHash as an opaque commitment from
// the prover (spec.md §4.1): it never recomputes a stateHash from a
// descriptor, only checks the four invariants of spec.md §4.1:
// signatures, prevHash chaining, recomputed Merkle roots over the
// cumulative leaf sequence, and independent Merkle inclusion proofs.
func VerifyChain(proofs []Proof, pub *rsa.PublicKey) VerifyResult {
	var leaves [][32]byte
	var prev string

	for i, p := range proofs {
		if !Verify(pub, p.StateHash, p.Signature) {
			return fail(i, "signature does not verify")
		}

		if i == 0 {
			if p.PrevHash != "" {
				return fail(i, "first proof must have empty prevHash")
			}
		} else if p.PrevHash != prev {
			return fail(i, "prevHash does not chain to previous stateHash")
		}
		prev = p.StateHash

		leafBytes, err := decodeHash(p.StateHash)
		if err != nil {
			return fail(i, "stateHash is not a well-formed digest")
		}
		leaves = append(leaves, leafBytes)

		root := rootOf(leaves)
		if root != p.MerkleRoot {
			return fail(i, "merkleRoot does not match recomputed root over leaves[0..i]")
		}

		if !verifyMerkleProof(p.StateHash, i, p.MerkleProof, p.MerkleRoot) {
			return fail(i, "merkleProof does not verify stateHash against merkleRoot")
		}
	}

	return VerifyResult{OK: true}
}
