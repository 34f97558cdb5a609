package proof

import (
	"crypto/rsa"
	"time"
)

// Engine produces Proofs for a single machine's transitions. It owns the
// private key and the Merkle accumulator over the chain's leaves; both
// are private to the engine per spec.md §5's "private key is held by
// the machine and never leaves it."
type Engine struct {
	key  *rsa.PrivateKey
	acc  accumulator
	prev string // state_hash of the previous accepted transition
}

// NewEngine constructs an Engine bound to priv. The Engine holds no
// clock: CreateProof takes the time as an argument on every call, so
// callers (and tests) control it rather than this package reaching for
// time.Now() internally.
func NewEngine(priv *rsa.PrivateKey) *Engine {
	return &Engine{key: priv}
}

// CreateProof builds the Proof for one transition: it hashes the
// canonical descriptor, signs the hash, appends the leaf to the Merkle
// accumulator, and links prevHash to the previous call's stateHash.
// now is a caller-supplied clock for determinism in tests; production
// callers pass time.Now().
func (e *Engine) CreateProof(now time.Time, from, to, action string, params any) (Proof, error) {
	d := Descriptor{
		Timestamp: now.UnixMilli(),
		From:      from,
		To:        to,
		Action:    action,
		Params:    params,
	}
	hash, err := stateHash(d)
	if err != nil {
		return Proof{}, err
	}

	sig, err := sign(e.key, hash)
	if err != nil {
		return Proof{}, err
	}

	if err := e.acc.append(hash); err != nil {
		return Proof{}, err
	}
	index := len(e.acc.leaves) - 1
	root := rootOf(e.acc.leaves)
	mp, err := proofOf(e.acc.leaves, index)
	if err != nil {
		return Proof{}, err
	}

	p := Proof{
		StateHash:   hash,
		PrevHash:    e.prev,
		MerkleRoot:  root,
		MerkleProof: mp,
		Signature:   sig,
		Timestamp:   d.Timestamp,
	}
	e.prev = hash
	return p, nil
}

// PublicKey returns the engine's public key, for handing to verifiers.
func (e *Engine) PublicKey() *rsa.PublicKey {
	return &e.key.PublicKey
}
