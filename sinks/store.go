package sinks

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/agentproof/agentproof/kv"
	"github.com/agentproof/agentproof/proof"
)

var recordPrefix = []byte("rec:")

// Record is the durable form of one accepted transition, as persisted
// by StoreSink.
type Record struct {
	AgentID   string      `json:"agentId"`
	SessionID string      `json:"sessionId"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Action    string      `json:"action"`
	Proof     proof.Proof `json:"proof"`
}

// StoreSink is the durable store sink of §6.2: it persists one Record
// per accepted transition, keyed by a monotonic identifier assigned by
// the sink itself, append-only, backed by any kv.DB.
type StoreSink struct {
	mu   sync.Mutex
	db   kv.DB
	next uint64
}

// NewStoreSink wraps db as a StoreSink, resuming the monotonic
// identifier counter from whatever records are already present so
// that reopening a store never reuses an identifier.
func NewStoreSink(db kv.DB) (*StoreSink, error) {
	s := &StoreSink{db: db}

	it := db.NewIterator(kv.BytesPrefix(recordPrefix))
	defer it.Release()
	for ok := it.First(); ok; ok = it.Next() {
		id := binary.BigEndian.Uint64(it.Key()[len(recordPrefix):])
		if id+1 > s.next {
			s.next = id + 1
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *StoreSink) Name() string { return "store" }

// OnTransition persists one Record under the next monotonic key.
func (s *StoreSink) OnTransition(agentID, sessionID, from, to, action string, p proof.Proof) error {
	s.mu.Lock()
	id := s.next
	s.next++
	s.mu.Unlock()

	rec := Record{
		AgentID:   agentID,
		SessionID: sessionID,
		From:      from,
		To:        to,
		Action:    action,
		Proof:     p,
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("sinks: marshal record: %w", err)
	}
	return s.db.Put(recordKey(id), raw)
}

// Records returns every persisted record for sessionID, in insertion
// order.
func (s *StoreSink) Records(sessionID string) ([]Record, error) {
	var out []Record

	it := s.db.NewIterator(kv.BytesPrefix(recordPrefix))
	defer it.Release()
	for ok := it.First(); ok; ok = it.Next() {
		var rec Record
		if err := json.Unmarshal(it.Value(), &rec); err != nil {
			return nil, fmt.Errorf("sinks: unmarshal record: %w", err)
		}
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

func recordKey(id uint64) []byte {
	key := make([]byte, len(recordPrefix)+8)
	copy(key, recordPrefix)
	binary.BigEndian.PutUint64(key[len(recordPrefix):], id)
	return key
}
