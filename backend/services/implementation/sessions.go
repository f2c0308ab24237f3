package implementation

import (
	"errors"
	"sync"
	"time"

	"github.com/ReneKroon/ttlcache"
	"github.com/fernandosanchezjr/fastrng/backend/services/data"
	"github.com/fernandosanchezjr/fastrng/pcg"
	log "github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is a named pcg stream. Only the generator snapshot is kept, so a
// session costs two words no matter how far it has been drawn.
type Session struct {
	Name  string
	State uint64
	Inc   uint64
	Drawn uint64
}

// Sessions keeps stream sessions in a ttlcache. A session expires after ttl
// without a request.
type Sessions struct {
	mu    sync.Mutex
	cache *ttlcache.Cache
	ttl   time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	cache := ttlcache.NewCache()
	cache.SetExpirationCallback(func(key string, value interface{}) {
		log.WithField("name", key).Debug("Session expired")
	})
	return &Sessions{cache: cache, ttl: ttl}
}

// Create starts or replaces the named session.
func (s *Sessions) Create(name string, seed, seq uint64) Session {
	state, inc := pcg.Seed(seed, seq).State()
	session := Session{Name: name, State: state, Inc: inc}
	s.mu.Lock()
	s.cache.SetWithTTL(name, session, s.ttl)
	s.mu.Unlock()
	log.WithFields(log.Fields{"name": name, "seed": seed, "seq": seq}).Println("Session created")
	return session
}

// Next continues the named session by n words.
func (s *Sessions) Next(name string, n int) ([]uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, found := s.cache.Get(name)
	if !found {
		return nil, ErrSessionNotFound
	}
	session := value.(Session)
	rng := pcg.Restore(session.State, session.Inc)
	words := data.Words(rng, n)
	session.State, session.Inc = rng.State()
	session.Drawn += uint64(n)
	s.cache.SetWithTTL(name, session, s.ttl)
	return words, nil
}

func (s *Sessions) Get(name string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, found := s.cache.Get(name)
	if !found {
		return Session{}, ErrSessionNotFound
	}
	return value.(Session), nil
}

func (s *Sessions) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(name)
}

func (s *Sessions) Count() int {
	return s.cache.Count()
}

func (s *Sessions) Close() {
	s.cache.Close()
}
