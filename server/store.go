package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kaura007/Ai-news-later-Agent-2/generator"
)

// historyLimit caps how many past newsletters the UI lists.
const historyLimit = 5

// HistoryEntry is one generated newsletter kept in a browser session.
// Entries never change once appended.
type HistoryEntry struct {
	ID            string                  `json:"id"`
	Topic         string                  `json:"topic"`
	Content       string                  `json:"content"`
	Timestamp     time.Time               `json:"timestamp"`
	Customization generator.Customization `json:"customization"`
}

type session struct {
	id       string
	history  []HistoryEntry
	lastSeen time.Time
}

// sessionStore keeps per-browser newsletter history in memory. Idle
// sessions are dropped wholesale by prune; individual entries are never
// removed.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func newStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// touch marks the session live and returns its id. An unknown or empty
// id gets a fresh session under a new id.
func (s *sessionStore) touch(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.lastSeen = s.now()
		return sess.id
	}
	fresh := &session{id: uuid.NewString(), lastSeen: s.now()}
	s.sessions[fresh.id] = fresh
	return fresh.id
}

func (s *sessionStore) append(id string, e HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	sess.history = append(sess.history, e)
	sess.lastSeen = s.now()
}

// recent returns up to historyLimit entries, newest first.
func (s *sessionStore) recent(id string) []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	n := len(sess.history)
	count := n
	if count > historyLimit {
		count = historyLimit
	}
	out := make([]HistoryEntry, 0, count)
	for i := n - 1; i >= n-count; i-- {
		out = append(out, sess.history[i])
	}
	return out
}

func (s *sessionStore) find(id, entryID string) (HistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return HistoryEntry{}, false
	}
	for i := len(sess.history) - 1; i >= 0; i-- {
		if sess.history[i].ID == entryID {
			return sess.history[i], true
		}
	}
	return HistoryEntry{}, false
}

// prune drops sessions idle longer than the ttl and reports how many.
func (s *sessionStore) prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
