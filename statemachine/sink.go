package statemachine

import "github.com/agentproof/agentproof/proof"

// Sink consumes a finished proof after it has been appended to a
// machine's in-memory log. A sink MUST NOT reorder deliveries; it MAY
// deduplicate on (agentID, sessionID, proof.StateHash).
type Sink interface {
	OnTransition(agentID, sessionID, from, to, action string, p proof.Proof) error
	Name() string
}
