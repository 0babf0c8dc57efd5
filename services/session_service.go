package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/catalog"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/config"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/gadgetsapi"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or already-evicted ids.
var ErrSessionNotFound = errors.New("catalog session not found")

// SessionService holds the live catalog sessions, one per storefront
// catalog view. Sessions are keyed by uuid and evicted after sitting
// idle past their TTL.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*sessionRecord

	source       gadgetsapi.Source
	ttl          time.Duration
	itemsPerPage int
}

type sessionRecord struct {
	session   *catalog.Session
	touchedAt time.Time
}

// NewSessionService creates a registry around the given source and
// starts its eviction loop.
func NewSessionService(source gadgetsapi.Source, ttl time.Duration, itemsPerPage int) *SessionService {
	s := &SessionService{
		sessions:     make(map[string]*sessionRecord),
		source:       source,
		ttl:          ttl,
		itemsPerPage: itemsPerPage,
	}
	go s.evictLoop()
	return s
}

// Create opens a new catalog session under the given filters and returns
// its id.
func (s *SessionService) Create(filters models.FilterState) (string, *catalog.Session) {
	id := uuid.Must(uuid.NewV7()).String()
	session := catalog.NewSession(s.source, filters, s.itemsPerPage)

	s.mu.Lock()
	s.sessions[id] = &sessionRecord{session: session, touchedAt: time.Now()}
	s.mu.Unlock()

	log.Printf("[session] created catalog session %s", id)
	return id, session
}

// Get returns the session for id and refreshes its idle timer.
func (s *SessionService) Get(id string) (*catalog.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	record.touchedAt = time.Now()
	return record.session, nil
}

// Delete discards a session.
func (s *SessionService) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count reports live sessions (health endpoint).
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		var evicted int

		s.mu.Lock()
		for id, record := range s.sessions {
			if record.touchedAt.Before(cutoff) {
				delete(s.sessions, id)
				evicted++
			}
		}
		s.mu.Unlock()

		if evicted > 0 {
			log.Printf("[session] evicted %d idle catalog session(s)", evicted)
		}
	}
}

// ── global instance ──────────────────────────────────────────────────────────

var (
	sessionService     *SessionService
	sessionServiceOnce sync.Once
)

// InitSessionService installs the registry used by the HTTP facade.
// main calls it with the real client; tests inject a fake source.
func InitSessionService(source gadgetsapi.Source) *SessionService {
	sessionService = NewSessionService(source, config.SessionTTL(), config.ItemsPerPage())
	return sessionService
}

// GetSessionService returns the global registry, building one from the
// environment config on first use.
func GetSessionService() *SessionService {
	sessionServiceOnce.Do(func() {
		if sessionService == nil {
			client := gadgetsapi.NewClient(config.GadgetsAPIURL(), config.GadgetsAPITimeout())
			sessionService = NewSessionService(client, config.SessionTTL(), config.ItemsPerPage())
		}
	})
	return sessionService
}
