// Package history implements the versioned branching history tree
// (C4): a tree that records an agent's evolving payload as a sequence
// of deliberate "branch" events, with stable per-node version
// identifiers of the form "L@V" and a movable current-node pointer.
// It is independent of the proof log and the transition policy.
package history
