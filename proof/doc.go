// Package proof implements the cryptographic core of a verifiable
// transition log: canonical hashing of a transition descriptor, a
// Merkle accumulator over the resulting hashes, RSA signing of each
// hash, and a standalone chain verifier.
//
// A Proof binds one accepted state transition to every transition
// before it: its prevHash chains to the previous proof's stateHash,
// and its merkleRoot/merkleProof anchor its stateHash inside the
// Merkle tree built over all stateHash values seen so far.
package proof
