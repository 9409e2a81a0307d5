package service

import (
	"sync"
	"time"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/google/uuid"
)

// SessionMemory is the per-session state kept between chat turns: the last
// uploaded dataset and free-form user notes. It resets with the process.
type SessionMemory struct {
	SessionID    string
	Transactions []domain.Transaction
	Notes        []string
	LastActive   time.Time
}

// snapshot returns a deep copy safe to read outside the service mutex.
func (m *SessionMemory) snapshot() SessionMemory {
	cp := *m
	cp.Transactions = append([]domain.Transaction(nil), m.Transactions...)
	cp.Notes = append([]string(nil), m.Notes...)
	return cp
}

// MemoryService keeps session memory in a process-local map. It is the only
// stateful component; everything under it stays pure. Every operation runs in
// a single critical section and returns copies, so callers never hold a
// reference into the shared map.
type MemoryService struct {
	mu       sync.RWMutex
	sessions map[string]*SessionMemory
}

// NewMemoryService creates a new MemoryService
func NewMemoryService() *MemoryService {
	return &MemoryService{sessions: make(map[string]*SessionMemory)}
}

// getOrCreateLocked returns the live entry for a session, creating it when
// absent. Callers must hold the write lock.
func (s *MemoryService) getOrCreateLocked(sessionID string) *SessionMemory {
	mem, ok := s.sessions[sessionID]
	if !ok {
		mem = &SessionMemory{SessionID: sessionID}
		s.sessions[sessionID] = mem
	}
	mem.LastActive = time.Now()
	return mem
}

// GetOrCreate returns a copy of the memory for a session, creating it when
// absent. An empty id allocates a fresh session.
func (s *MemoryService) GetOrCreate(sessionID string) SessionMemory {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(sessionID).snapshot()
}

// Get returns a copy of the memory for an existing session.
func (s *MemoryService) Get(sessionID string) (SessionMemory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mem, ok := s.sessions[sessionID]
	if !ok {
		return SessionMemory{}, domain.ErrSessionNotFound
	}
	return mem.snapshot(), nil
}

// RememberTransactions stores the latest dataset for a session and returns
// the session id (freshly allocated when the input id was empty).
func (s *MemoryService) RememberTransactions(sessionID string, transactions []domain.Transaction) string {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mem := s.getOrCreateLocked(sessionID)
	mem.Transactions = append([]domain.Transaction(nil), transactions...)
	return mem.SessionID
}

// AddNote appends a free-form note to a session and returns the updated copy.
func (s *MemoryService) AddNote(sessionID, note string) (SessionMemory, error) {
	if note == "" {
		return SessionMemory{}, domain.ErrInvalidInput
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mem := s.getOrCreateLocked(sessionID)
	mem.Notes = append(mem.Notes, note)
	return mem.snapshot(), nil
}

// Clear removes all state for a session.
func (s *MemoryService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
