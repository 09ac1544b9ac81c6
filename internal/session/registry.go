package session

import (
	"errors"
	"sync"
	"time"

	"storefront/internal/views"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLimit    = errors.New("session limit reached")
)

// Session is one visitor's set of pages. Each page owns its catalog; nothing
// is shared between sessions.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu         sync.Mutex
	admin      *views.AdminDashboard
	storefront *views.Storefront
	seller     *views.SellerDashboard
}

// Pages gives access to the session's view controllers while the session
// lock is held
type Pages struct {
	Admin      *views.AdminDashboard
	Storefront *views.Storefront
	Seller     *views.SellerDashboard
}

func newSession() *Session {
	return &Session{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		admin:      views.NewAdminDashboard(views.DefaultAdminProducts()...),
		storefront: views.NewStorefront(views.DefaultFeaturedProducts()...),
		seller:     views.NewSellerDashboard(views.DefaultSellerProducts()...),
	}
}

// Do runs fn with exclusive access to the session pages. Calls on the same
// session run one at a time, in arrival order of the lock.
func (s *Session) Do(fn func(p Pages)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(Pages{Admin: s.admin, Storefront: s.storefront, Seller: s.seller})
}

// Registry holds the live sessions of the process
type Registry struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*Session
	maxSessions int
	active      prometheus.Gauge
}

// Option configures a Registry
type Option func(*Registry)

// WithMaxSessions caps the number of live sessions; 0 means unlimited
func WithMaxSessions(n int) Option {
	return func(r *Registry) {
		r.maxSessions = n
	}
}

// WithActiveGauge reports the live session count on g
func WithActiveGauge(g prometheus.Gauge) Option {
	return func(r *Registry) {
		r.active = g
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[uuid.UUID]*Session),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create opens a session with freshly seeded pages
func (r *Registry) Create() (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return nil, ErrSessionLimit
	}

	s := newSession()
	r.sessions[s.ID] = s
	r.report()
	return s, nil
}

// Get looks up a live session
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session and drops its state. Unknown ids are ignored.
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	r.report()
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

func (r *Registry) report() {
	if r.active != nil {
		r.active.Set(float64(len(r.sessions)))
	}
}
