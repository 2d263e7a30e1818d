package session

import (
	"strings"
	"sync"
	"time"
)

// Session is the shared mutable state of one executor instance: the
// current bearer credential and the symbol→contract-id cache. Reads run
// concurrently; writes are exclusive. SetToken is synchronous — it
// returns only after the write is visible to subsequent readers.
//
// The contract cache is unbounded: entries are added explicitly and
// refreshed in place by contract discovery, never evicted.
type Session struct {
	mu          sync.RWMutex
	token       string
	tokenExpiry time.Time
	contracts   map[string]int64
}

// NewSession creates an empty session store.
func NewSession() *Session {
	return &Session{contracts: make(map[string]int64)}
}

// SetToken replaces the session credential.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the current credential, or false when none is set.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

// SetTokenExpiry records when the current credential expires.
func (s *Session) SetTokenExpiry(expiry time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenExpiry = expiry
}

// TokenExpiry returns the recorded credential expiry, or false when the
// expiry is unknown.
func (s *Session) TokenExpiry() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokenExpiry.IsZero() {
		return time.Time{}, false
	}
	return s.tokenExpiry, true
}

// SetContractID upserts the contract id under the uppercased symbol.
func (s *Session) SetContractID(symbol string, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts[strings.ToUpper(symbol)] = id
}

// ContractID looks up the contract id under the uppercased symbol.
func (s *Session) ContractID(symbol string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.contracts[strings.ToUpper(symbol)]
	return id, ok
}

// ContractCount returns the number of cached contract ids.
func (s *Session) ContractCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contracts)
}
