package sinks

import (
	"testing"

	"github.com/agentproof/agentproof/kv/memkv"
	"github.com/agentproof/agentproof/proof"
)

func TestStoreSinkPersistsRecords(t *testing.T) {
	store, err := NewStoreSink(memkv.New())
	if err != nil {
		t.Fatal(err)
	}

	for i, to := range []string{"INIT", "GOAL_PARSE", "PLANNING"} {
		p := proof.Proof{StateHash: to, Timestamp: int64(i)}
		if err := store.OnTransition("agent-1", "sess-1", "IDLE", to, "go", p); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := store.Records("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i, to := range []string{"INIT", "GOAL_PARSE", "PLANNING"} {
		if recs[i].To != to {
			t.Errorf("record %d: got To=%q, want %q (append order must be preserved)", i, recs[i].To, to)
		}
	}
}

func TestStoreSinkResumesCounterAcrossOpen(t *testing.T) {
	db := memkv.New()

	store1, err := NewStoreSink(db)
	if err != nil {
		t.Fatal(err)
	}
	if err := store1.OnTransition("a", "s", "IDLE", "INIT", "go", proof.Proof{}); err != nil {
		t.Fatal(err)
	}

	store2, err := NewStoreSink(db)
	if err != nil {
		t.Fatal(err)
	}
	if err := store2.OnTransition("a", "s", "INIT", "GOAL_PARSE", "go", proof.Proof{}); err != nil {
		t.Fatal(err)
	}

	recs, err := store2.Records("s")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records to have accumulated across reopen, got %d", len(recs))
	}
}

func TestStoreSinkFiltersBySession(t *testing.T) {
	db := memkv.New()
	store, err := NewStoreSink(db)
	if err != nil {
		t.Fatal(err)
	}
	store.OnTransition("a", "sess-1", "IDLE", "INIT", "go", proof.Proof{})
	store.OnTransition("a", "sess-2", "IDLE", "INIT", "go", proof.Proof{})

	recs, err := store.Records("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record for sess-1, got %d", len(recs))
	}
}
