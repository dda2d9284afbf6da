package handlers

import (
	"sync"
	"time"

	"github.com/Acr0no/fcg-users-app/services"
)

// sessionEntry pairs a dashboard controller with its last-touch time.
type sessionEntry struct {
	dash     *services.DashboardService
	lastSeen time.Time
}

// SessionRegistry hands out one DashboardService per browser session (the
// listing state is session-lived) and closes the ones nobody touched for the
// idle TTL, so their timers and goroutines are released.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	factory  func() *services.DashboardService
	ttl      time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewSessionRegistry starts a registry with a background sweeper.
func NewSessionRegistry(factory func() *services.DashboardService, ttl time.Duration) *SessionRegistry {
	r := &SessionRegistry{
		sessions: make(map[string]*sessionEntry),
		factory:  factory,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go r.sweep()
	return r
}

// Get returns the dashboard for a session id, creating and starting it on
// first touch.
func (r *SessionRegistry) Get(id string) *services.DashboardService {
	r.mu.Lock()
	en, ok := r.sessions[id]
	if !ok {
		en = &sessionEntry{dash: r.factory()}
		r.sessions[id] = en
		r.mu.Unlock()
		en.dash.Start() // initial load happens here, outside the lock
		r.mu.Lock()
	}
	en.lastSeen = time.Now()
	r.mu.Unlock()
	return en.dash
}

// sweep evicts idle sessions twice per TTL.
func (r *SessionRegistry) sweep() {
	interval := r.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-r.stop:
			return
		case now := <-t.C:
			r.mu.Lock()
			for id, en := range r.sessions {
				if now.Sub(en.lastSeen) > r.ttl {
					delete(r.sessions, id)
					go en.dash.Close()
				}
			}
			r.mu.Unlock()
		}
	}
}

// Shutdown stops the sweeper and closes every live dashboard.
func (r *SessionRegistry) Shutdown() {
	r.once.Do(func() { close(r.stop) })
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, en := range r.sessions {
		delete(r.sessions, id)
		en.dash.Close()
	}
}
