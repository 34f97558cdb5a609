// Package policy implements the static, generic directed graph of
// allowed state transitions described in spec.md §4.2. A Policy holds
// no references to state; it is pure data, built once and never
// mutated for the lifetime of a machine instance.
package policy

// Policy is an immutable adjacency map from a state to the set of
// states it may transition to. S is any comparable StateId type.
type Policy[S comparable] struct {
	edges map[S]map[S]struct{}
}

// New builds a Policy from an edge list. The input map is copied; later
// mutation of edges by the caller has no effect on the returned Policy.
func New[S comparable](edges map[S][]S) *Policy[S] {
	p := &Policy[S]{edges: make(map[S]map[S]struct{}, len(edges))}
	for from, tos := range edges {
		set := make(map[S]struct{}, len(tos))
		for _, to := range tos {
			set[to] = struct{}{}
		}
		p.edges[from] = set
	}
	return p
}

// CanTransition reports whether from->to is an edge in the policy graph.
// This is the single predicate the state machine consults.
func (p *Policy[S]) CanTransition(from, to S) bool {
	_, ok := p.edges[from][to]
	return ok
}

// Allowed returns the set of states reachable from from in one step.
// A state absent from the policy, or present with no outgoing edges, is
// terminal and returns an empty slice.
func (p *Policy[S]) Allowed(from S) []S {
	set := p.edges[from]
	out := make([]S, 0, len(set))
	for to := range set {
		out = append(out, to)
	}
	return out
}

// IsTerminal reports whether from has no outgoing edges.
func (p *Policy[S]) IsTerminal(from S) bool {
	return len(p.edges[from]) == 0
}

// States returns every state that appears as a "from" key in the edge
// map given to New, including states declared with an empty edge list.
// A state that appears only as a "to" target is not included; callers
// validating a full state set should use their own exhaustive state
// list instead.
func (p *Policy[S]) States() []S {
	out := make([]S, 0, len(p.edges))
	for s := range p.edges {
		out = append(out, s)
	}
	return out
}
