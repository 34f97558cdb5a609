package proof

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashID names the hash algorithm this engine commits to. spec.md §4.1
// leaves the choice to the implementer and names SHA-256 as the
// reference; this is that choice, documented.
const HashID = "SHA-256"

// digest returns the lowercase hex SHA-256 digest of b.
func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// digestRaw returns the raw SHA-256 digest of the concatenation of ms.
// Used internally by the Merkle accumulator, where internal nodes hash
// the concatenation of their children's raw digest bytes.
func digestRaw(ms ...[]byte) [32]byte {
	h := sha256.New()
	for _, m := range ms {
		h.Write(m)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// stateHash computes state_hash = H(canon({timestamp, from, to, action,
// params})) per spec.md §4.1.
func stateHash(d Descriptor) (string, error) {
	canon, err := canonicalize(d)
	if err != nil {
		return "", err
	}
	return digest(canon), nil
}
