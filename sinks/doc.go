// Package sinks implements the two reference sink types a
// statemachine.Machine fans proofs out to: a structured logger sink
// with an in-memory, per-session line buffer, and a durable store sink
// backed by a kv.DB.
package sinks
