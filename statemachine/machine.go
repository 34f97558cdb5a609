// Package statemachine implements the current-state tracking,
// transition execution, proof emission, log append and sink fan-out
// component (C3): a generic, policy-driven state machine whose every
// accepted transition is recorded as a proof.Proof.
package statemachine

import (
	"crypto/rsa"
	"fmt"
	"sync"
	"time"

	"github.com/agentproof/agentproof/policy"
	"github.com/agentproof/agentproof/proof"
)

// LogSource is implemented by sinks that can render their buffered
// history as a human-oriented string. Machine.Logs delegates to the
// first configured sink that implements it.
type LogSource interface {
	GetLogs(sessionID string) string
}

// Machine owns a single agent session's current state, proof engine,
// and configured sinks. It is single-owner: concurrent callers on the
// same instance must either share a machine only under the machine's
// own mutex (which Transition, Available, CurrentState and Log hold for
// their duration; Logs holds it only while reading the sink list, and
// PublicKey does not take it) or confine an instance to one goroutine.
type Machine[S comparable] struct {
	mu sync.Mutex

	agentID   string
	sessionID string

	policy  *policy.Policy[S]
	current S

	engine *proof.Engine
	sinks  []Sink

	log []proof.Proof
}

// New constructs a Machine. It fails with ConfigError if initialState
// is not among states, or if any policy edge starts or ends at a state
// outside states.
func New[S comparable](agentID, sessionID string, privateKey *rsa.PrivateKey, states []S, pol *policy.Policy[S], initialState S, sinks ...Sink) (*Machine[S], error) {
	known := make(map[S]struct{}, len(states))
	for _, s := range states {
		known[s] = struct{}{}
	}
	if _, ok := known[initialState]; !ok {
		return nil, &ConfigError{Reason: "initial state is not among the declared states"}
	}
	for _, from := range pol.States() {
		if _, ok := known[from]; !ok {
			return nil, &ConfigError{Reason: "policy references a state outside the declared state set"}
		}
		for _, to := range pol.Allowed(from) {
			if _, ok := known[to]; !ok {
				return nil, &ConfigError{Reason: "policy references a state outside the declared state set"}
			}
		}
	}

	return &Machine[S]{
		agentID:   agentID,
		sessionID: sessionID,
		policy:    pol,
		current:   initialState,
		engine:    proof.NewEngine(privateKey),
		sinks:     sinks,
	}, nil
}

// Transition validates to against the policy, asks the proof engine
// for a Proof, appends it to the in-memory log, fans it out to every
// configured sink in order, and advances the current state. A policy
// violation leaves the machine entirely unchanged and returns
// InvalidTransitionError without consulting the proof engine or any
// sink.
func (m *Machine[S]) Transition(to S, action string, params any) (proof.Proof, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.current
	if !m.policy.CanTransition(from, to) {
		return proof.Proof{}, &InvalidTransitionError{From: toString(from), To: toString(to)}
	}

	p, err := m.engine.CreateProof(time.Now(), toString(from), toString(to), action, params)
	if err != nil {
		return proof.Proof{}, err
	}

	m.log = append(m.log, p)

	var sinkErr error
	for _, sink := range m.sinks {
		if err := sink.OnTransition(m.agentID, m.sessionID, toString(from), toString(to), action, p); err != nil {
			if sinkErr == nil {
				sinkErr = &SinkError{Sink: sink.Name(), Err: err}
			}
		}
	}

	m.current = to
	return p, sinkErr
}

// Available returns the states reachable from the current state in
// one step.
func (m *Machine[S]) Available() []S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.policy.Allowed(m.current)
}

// CurrentState returns the machine's current state.
func (m *Machine[S]) CurrentState() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Log returns a copy of the proofs accepted so far, in order.
func (m *Machine[S]) Log() []proof.Proof {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]proof.Proof, len(m.log))
	copy(out, m.log)
	return out
}

// PublicKey returns the public half of the key the machine signs with,
// for handing to an external verifier.
func (m *Machine[S]) PublicKey() *rsa.PublicKey {
	return m.engine.PublicKey()
}

// Logs delegates to the first configured sink implementing LogSource.
// If none does, it returns the empty string.
func (m *Machine[S]) Logs() string {
	m.mu.Lock()
	sessionID := m.sessionID
	sinks := m.sinks
	m.mu.Unlock()

	for _, sink := range sinks {
		if src, ok := sink.(LogSource); ok {
			return src.GetLogs(sessionID)
		}
	}
	return ""
}

func toString[S comparable](s S) string {
	if str, ok := any(s).(string); ok {
		return str
	}
	if stringer, ok := any(s).(interface{ String() string }); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%v", s)
}
