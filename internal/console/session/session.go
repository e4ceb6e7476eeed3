package session

import (
	"encoding/json"
	"os"
	"sync"
)

// Admin is the sanitized identity returned by the login endpoint.
type Admin struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type state struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin"`
}

// Store holds the console's authentication state and persists it to a
// JSON file so a restarted console resumes the same session.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
	admin *Admin
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Set records a fresh login and persists it. A persistence failure does
// not undo the in-memory session.
func (s *Store) Set(token string, admin Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	a := admin
	s.admin = &a
	return s.save()
}

// Clear drops the session and removes the persisted file.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.admin = nil
	os.Remove(s.path)
}

// Restore loads a previously persisted session. A missing or malformed
// file leaves the store unauthenticated without error.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var st state
	if err := json.Unmarshal(raw, &st); err != nil || st.Token == "" {
		return
	}
	s.token = st.Token
	s.admin = st.Admin
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Admin returns the stored identity, or nil when unauthenticated.
func (s *Store) Admin() *Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.admin == nil {
		return nil
	}
	a := *s.admin
	return &a
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

func (s *Store) save() error {
	raw, err := json.Marshal(state{Token: s.token, Admin: s.admin})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0600)
}
