package proof

// Proof is the signed, Merkle-anchored record of one accepted transition.
// All hash and signature fields are lowercase hex.
type Proof struct {
	StateHash   string   `json:"stateHash"`
	PrevHash    string   `json:"prevHash"`
	MerkleRoot  string   `json:"merkleRoot"`
	MerkleProof []string `json:"merkleProof"`
	Signature   string   `json:"signature"`
	Timestamp   int64    `json:"timestamp"`
}

// Descriptor is the transition 4-tuple (from, to, action, params) plus
// its millisecond timestamp, canonically hashed to produce a Proof's
// StateHash. From/To are carried as strings: callers with a
// concrete StateId type render it with fmt.Sprint before reaching this
// package, keeping the crypto layer free of generics.
type Descriptor struct {
	Timestamp int64  `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	Action    string `json:"action"`
	Params    any    `json:"params"`
}
