package sinks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/agentproof/agentproof/proof"
	"github.com/agentproof/agentproof/utils/binutils"
)

// LoggerSink is the structured logger sink of §6.1: it keeps an
// in-memory, per-session line buffer in the normative getLogs format,
// and separately emits one operational zap log line per transition.
// The buffer is the auditable record; the zap line is ambient
// visibility only, and callers must not parse it.
type LoggerSink struct {
	mu    sync.Mutex
	lines map[string][]string

	zlog *binutils.Logger
}

// NewLoggerSink builds a LoggerSink that also writes an operational
// log line through zlog for every accepted transition. zlog may be
// nil, in which case only the in-memory buffer is kept.
func NewLoggerSink(zlog *binutils.Logger) *LoggerSink {
	return &LoggerSink{
		lines: make(map[string][]string),
		zlog:  zlog,
	}
}

func (s *LoggerSink) Name() string { return "logger" }

// OnTransition appends one formatted line to the session's buffer and,
// if configured, writes an operational log line. It never fails.
func (s *LoggerSink) OnTransition(agentID, sessionID, from, to, action string, p proof.Proof) error {
	line := fmt.Sprintf("[%d] %s %s %s->%s: %s; sig(%s)",
		p.Timestamp, agentID, sessionID, from, to, action, sigSummary(p.Signature))

	s.mu.Lock()
	s.lines[sessionID] = append(s.lines[sessionID], line)
	s.mu.Unlock()

	if s.zlog != nil {
		s.zlog.Info("transition recorded",
			"agentId", agentID, "sessionId", sessionID,
			"from", from, "to", to, "action", action,
			"stateHash", p.StateHash,
		)
	}
	return nil
}

// GetLogs returns the buffered lines for a session, preceded by a
// decorative banner. The banner is not part of the normative contract
// and must never be parsed by a caller.
func (s *LoggerSink) GetLogs(sessionID string) string {
	s.mu.Lock()
	lines := append([]string(nil), s.lines[sessionID]...)
	s.mu.Unlock()

	banner := fmt.Sprintf("=== transition log: session %s ===", sessionID)
	return banner + "\n" + strings.Join(lines, "\n")
}

func sigSummary(sig string) string {
	if len(sig) <= 16 {
		return fmt.Sprintf("%s (%d)", sig, len(sig))
	}
	return fmt.Sprintf("%s...%s (%d)", sig[:8], sig[len(sig)-8:], len(sig))
}
