package store

import (
	"errors"
	"log"
	"sync"
	"time"

	"interview-service/internal/metrics"
	"interview-service/internal/models"
)

// ErrNotFound reports a session id present in neither registry.
var ErrNotFound = errors.New("store: session not found")

// Publisher receives lifecycle events from the background sweeps. The amqp
// event publisher satisfies it; nil disables publishing.
type Publisher interface {
	Publish(eventType string, payload interface{}) error
}

// Store owns the active and backup session registries. A session is either
// active (live registry) or archived (backup only); recovery promotes a
// backup copy without clearing it. All registry mutation goes through here.
//
// The registry mutex only guards the maps. Mutating a session obtained from
// Get, or reading one that another goroutine may mutate, requires holding
// that session's lock via LockSession; the background sweeps take the same
// lock before touching a live session.
type Store struct {
	mu     sync.RWMutex
	active map[string]*models.Session
	backup map[string]*models.Session

	locksMu sync.Mutex
	locks   map[string]*sessionLock

	autoSaveInterval time.Duration
	archiveInterval  time.Duration
	idleThreshold    time.Duration

	events Publisher

	stop chan struct{}
	done sync.WaitGroup
}

// sessionLock is a refcounted per-session mutex. The registry entry is
// removed when the last holder releases it, so the map stays bounded by
// in-flight work rather than by session-id churn.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// Option tweaks store construction.
type Option func(*Store)

// WithIntervals injects the sweep cadences and idle threshold, mainly so
// tests can drive archival deterministically.
func WithIntervals(autoSave, archive, idle time.Duration) Option {
	return func(s *Store) {
		s.autoSaveInterval = autoSave
		s.archiveInterval = archive
		s.idleThreshold = idle
	}
}

// WithPublisher attaches a lifecycle event publisher.
func WithPublisher(p Publisher) Option {
	return func(s *Store) {
		s.events = p
	}
}

// New builds a store with default sweep cadences (30s auto-save, 1h archival,
// 1h idle threshold). Call Start to run the background sweeps.
func New(opts ...Option) *Store {
	s := &Store{
		active:           make(map[string]*models.Session),
		backup:           make(map[string]*models.Session),
		locks:            make(map[string]*sessionLock),
		autoSaveInterval: 30 * time.Second,
		archiveInterval:  time.Hour,
		idleThreshold:    time.Hour,
		stop:             make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LockSession acquires the mutex serializing work on one session id, shared
// by request handling and the background sweeps. Callers must invoke the
// returned unlock.
func (s *Store) LockSession(id string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.locksMu.Unlock()
	}
}

// Put inserts or replaces an active session.
func (s *Store) Put(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[session.ID] = session
	metrics.ActiveSessions.Set(float64(len(s.active)))
}

// Get returns the live session for id, or ErrNotFound.
func (s *Store) Get(id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.active[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Has reports whether id is in the live registry.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.active[id]
	return ok
}

// ActiveCount returns the live registry size.
func (s *Store) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}

// Archive deep-copies the session into backup and removes it from active.
func (s *Store) Archive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.active[id]
	if !ok {
		return ErrNotFound
	}
	s.backup[id] = session.Clone()
	delete(s.active, id)
	metrics.ActiveSessions.Set(float64(len(s.active)))
	return nil
}

// RecoveryState describes where a recovered session was found.
type RecoveryState int

const (
	RecoveryNotFound RecoveryState = iota
	RecoveryLive
	RecoveryRestored
)

// Recover reports a live session as-is, promotes a backup into active, or
// reports not-found. Promotion keeps the backup copy.
func (s *Store) Recover(id string) (*models.Session, RecoveryState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.active[id]; ok {
		return session, RecoveryLive
	}
	if snapshot, ok := s.backup[id]; ok {
		restored := snapshot.Clone()
		s.active[id] = restored
		metrics.ActiveSessions.Set(float64(len(s.active)))
		metrics.SessionsRecovered.Inc()
		return restored, RecoveryRestored
	}
	return nil, RecoveryNotFound
}

// Start launches the auto-save and idle-archival sweeps.
func (s *Store) Start() {
	s.done.Add(2)
	go s.runSweep(s.autoSaveInterval, s.autoSave)
	go s.runSweep(s.archiveInterval, s.archiveIdle)
}

// Stop halts the background sweeps and waits for them to exit.
func (s *Store) Stop() {
	close(s.stop)
	s.done.Wait()
}

func (s *Store) runSweep(interval time.Duration, sweep func()) {
	defer s.done.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *Store) activeIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.active))
	for id := range s.active {
		ids = append(ids, id)
	}
	return ids
}

// autoSave snapshots every active session into backup. Never removes active
// entries. Each session is cloned under its own lock so an in-flight action
// cannot tear the snapshot.
func (s *Store) autoSave() {
	saved := 0
	for _, id := range s.activeIDs() {
		unlock := s.LockSession(id)
		s.mu.Lock()
		if session, ok := s.active[id]; ok {
			s.backup[id] = session.Clone()
			saved++
		}
		s.mu.Unlock()
		unlock()
	}

	log.Printf("Auto-saved %d active sessions", saved)
	if s.events != nil {
		s.events.Publish("interview.session.autosaved", map[string]interface{}{
			"count":     saved,
			"timestamp": time.Now(),
		})
	}
}

// archiveIdle moves every session idle past the threshold into backup. The
// idle check and the move happen under the session lock, so an action that
// is touching the session right now keeps it live.
func (s *Store) archiveIdle() {
	now := time.Now()

	var archived []string
	for _, id := range s.activeIDs() {
		unlock := s.LockSession(id)
		s.mu.Lock()
		if session, ok := s.active[id]; ok && now.Sub(session.LastActionTime) > s.idleThreshold {
			s.backup[id] = session.Clone()
			delete(s.active, id)
			archived = append(archived, id)
		}
		s.mu.Unlock()
		unlock()
	}

	s.mu.RLock()
	metrics.ActiveSessions.Set(float64(len(s.active)))
	s.mu.RUnlock()

	for _, id := range archived {
		log.Printf("Archived inactive session: %s", id)
		metrics.SessionsEnded.WithLabelValues("archived_idle").Inc()
		if s.events != nil {
			s.events.Publish("interview.session.archived", map[string]interface{}{
				"session_id": id,
				"timestamp":  now,
			})
		}
	}
}

// SweepNow runs both sweeps synchronously. Exposed for tests and shutdown.
func (s *Store) SweepNow() {
	s.autoSave()
	s.archiveIdle()
}
