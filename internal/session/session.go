package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// Data is what a session remembers about the logged-in user.
type Data struct {
	UserID    int64
	Username  string
	FirstName string
	LastName  string
}

// Store keeps sessions in process memory keyed by a random id. The cookie
// value is the id plus an HMAC signature, so a client cannot forge or guess
// a session by picking ids. Expiry is sliding: reading a live session
// extends it by the full TTL.
type Store struct {
	secret []byte
	ttl    time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	data      Data
	expiresAt time.Time
}

func NewStore(secret []byte, ttl time.Duration) *Store {
	return &Store{
		secret:  secret,
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

func (s *Store) TTL() time.Duration { return s.ttl }

// Create registers a new session and returns the signed cookie value.
func (s *Store) Create(data Data) string {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		panic(err)
	}
	id := hex.EncodeToString(raw)

	s.mu.Lock()
	s.entries[id] = &entry{data: data, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	return id + "." + s.sign(id)
}

// Get resolves a cookie value to session data. Expired or tampered values
// resolve to nothing.
func (s *Store) Get(cookieValue string) (Data, bool) {
	id, ok := s.verify(cookieValue)
	if !ok {
		return Data{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return Data{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, id)
		return Data{}, false
	}
	e.expiresAt = time.Now().Add(s.ttl)
	return e.data, true
}

// Destroy drops the session if it exists. Destroying twice is fine.
func (s *Store) Destroy(cookieValue string) {
	id, ok := s.verify(cookieValue)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

func (s *Store) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Store) verify(cookieValue string) (string, bool) {
	id, sig, ok := strings.Cut(cookieValue, ".")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(id))) {
		return "", false
	}
	return id, true
}
