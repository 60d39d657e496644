package conversation

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgLog "preinscription-chatbot/pkg/log"
)

// StoreConfig bounds the Store.
type StoreConfig struct {
	HistoryLimit int // max history entries per session
	MaxSessions  int // max sessions tracked before the least recently used one is evicted
}

// Store maps session ids to conversation records.
//
// Each record has its own mutex so operations on one session are serialized while
// different sessions only share the short LRU bookkeeping lock. Nothing in here
// blocks on I/O.
type Store struct {
	sessions     *lru.Cache[string, *entry]
	historyLimit int
	now          func() time.Time
	l            pkgLog.Logger
}

type entry struct {
	mu         sync.Mutex
	history    []Message
	attributes map[string]any
	lastIntent Intent
	createdAt  time.Time
}

// NewStore creates an empty Store. Zero config values take the package defaults.
func NewStore(cfg StoreConfig, l pkgLog.Logger) (*Store, error) {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if l == nil {
		l = pkgLog.NewNop()
	}

	s := &Store{
		historyLimit: cfg.HistoryLimit,
		now:          time.Now,
		l:            l,
	}

	cache, err := lru.NewWithEvict[string, *entry](cfg.MaxSessions, s.onEvict)
	if err != nil {
		return nil, fmt.Errorf("conversation: failed to create session cache: %w", err)
	}
	s.sessions = cache
	return s, nil
}

func (s *Store) onEvict(sessionID string, _ *entry) {
	s.l.Debugf(context.Background(), "%s: evicted least recently used session %s", LogPrefixStoreEvict, sessionID)
}

// entryFor returns the live entry of sessionID, creating it on first access.
func (s *Store) entryFor(sessionID string) *entry {
	if e, ok := s.sessions.Get(sessionID); ok {
		return e
	}
	fresh := &entry{
		attributes: make(map[string]any),
		createdAt:  s.now(),
	}
	if prev, found, _ := s.sessions.PeekOrAdd(sessionID, fresh); found {
		return prev
	}
	return fresh
}

// GetOrCreate returns a snapshot of the session record, creating an empty one if needed.
func (s *Store) GetOrCreate(sessionID string) Record {
	e := s.entryFor(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(sessionID)
}

// Peek returns a snapshot of an existing session without creating it or
// refreshing its recency.
func (s *Store) Peek(sessionID string) (Record, bool) {
	e, ok := s.sessions.Peek(sessionID)
	if !ok {
		return Record{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(sessionID), true
}

// AppendMessage adds one history entry and trims the history to the newest entries.
func (s *Store) AppendMessage(sessionID string, role Role, content string) {
	e := s.entryFor(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.appendLocked(s.historyLimit, Message{Role: role, Content: content, Timestamp: s.now()})
}

// AppendExchange adds a user message and the assistant reply as one unit.
func (s *Store) AppendExchange(sessionID, userMessage, assistantMessage string) {
	e := s.entryFor(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	now := s.now()
	e.appendLocked(s.historyLimit,
		Message{Role: RoleUser, Content: userMessage, Timestamp: now},
		Message{Role: RoleAssistant, Content: assistantMessage, Timestamp: now},
	)
}

// SetIntent overwrites the last detected intent.
func (s *Store) SetIntent(sessionID string, intent Intent) {
	e := s.entryFor(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastIntent = intent
}

// MergeAttributes shallow-merges attrs into the session attributes.
func (s *Store) MergeAttributes(sessionID string, attrs map[string]any) {
	e := s.entryFor(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range attrs {
		e.attributes[k] = v
	}
}

// Clear drops the session record. Clearing an unknown session is a no-op.
func (s *Store) Clear(sessionID string) {
	s.sessions.Remove(sessionID)
}

// Summarize returns the diagnostics projection of a session.
func (s *Store) Summarize(sessionID string) Summary {
	e := s.entryFor(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return Summary{
		MessageCount: len(e.history),
		LastIntent:   e.lastIntent,
		Attributes:   copyAttributes(e.attributes),
		CreatedAt:    e.createdAt,
	}
}

// Len reports how many sessions are tracked.
func (s *Store) Len() int {
	return s.sessions.Len()
}

func (e *entry) appendLocked(limit int, msgs ...Message) {
	e.history = append(e.history, msgs...)
	if limit > 0 && len(e.history) > limit {
		e.history = append([]Message(nil), e.history[len(e.history)-limit:]...)
	}
}

func (e *entry) snapshotLocked(sessionID string) Record {
	history := make([]Message, len(e.history))
	copy(history, e.history)
	return Record{
		SessionID:  sessionID,
		History:    history,
		Attributes: copyAttributes(e.attributes),
		LastIntent: e.lastIntent,
		CreatedAt:  e.createdAt,
	}
}

func copyAttributes(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
