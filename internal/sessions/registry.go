package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tacworldhq/storefront-backend/internal/advisor"
	"github.com/tacworldhq/storefront-backend/internal/cart"
	"github.com/tacworldhq/storefront-backend/internal/catalog"
	"github.com/tacworldhq/storefront-backend/internal/configurator"
	"github.com/tacworldhq/storefront-backend/pkg/config"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
)

// AdvisorConversation is the advisory surface a session carries.
type AdvisorConversation interface {
	Send(ctx context.Context, text string) advisor.ChatMessage
	Transcript() []advisor.ChatMessage
}

// AdvisorStarter opens advisory conversations for new sessions.
type AdvisorStarter interface {
	StartSession() AdvisorConversation
}

// ClientStarter adapts the advisor client to the starter surface.
type ClientStarter struct {
	Client *advisor.Client
}

func (c ClientStarter) StartSession() AdvisorConversation {
	return c.Client.StartSession()
}

// Session bundles the per-visitor server-side state: the cart, the
// configurator and the advisory conversation, all keyed by one opaque token.
type Session struct {
	Token        string    `json:"token"`
	CreatedAt    time.Time `json:"created_at"`
	Cart         *cart.Cart
	Configurator *configurator.State
	Advisor      AdvisorConversation

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// Registry holds all live sessions. Sessions idle past the TTL are reaped by
// the sweep loop; touching a session on lookup keeps it alive.
type Registry struct {
	store   *catalog.Store
	advisor AdvisorStarter
	ttl     time.Duration
	sweep   time.Duration
	logg    *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(store *catalog.Store, starter AdvisorStarter, cfg config.SessionConfig, logg *logger.Logger) *Registry {
	return &Registry{
		store:    store,
		advisor:  starter,
		ttl:      cfg.TTL,
		sweep:    cfg.SweepInterval,
		logg:     logg,
		sessions: make(map[string]*Session),
	}
}

// Create mints a session with empty cart and configurator state and a fresh
// advisory conversation.
func (r *Registry) Create() *Session {
	now := time.Now().UTC()
	session := &Session{
		Token:        uuid.NewString(),
		CreatedAt:    now,
		Cart:         cart.New(),
		Configurator: configurator.New(r.store),
		lastSeen:     now,
	}
	if r.advisor != nil {
		session.Advisor = r.advisor.StartSession()
	}

	r.mu.Lock()
	r.sessions[session.Token] = session
	r.mu.Unlock()
	return session
}

// Get resolves a token and refreshes its idle clock.
func (r *Registry) Get(token string) (*Session, bool) {
	r.mu.Lock()
	session, ok := r.sessions[token]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	session.touch(time.Now().UTC())
	return session, true
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops every session idle past the TTL and reports how many went.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	reaped := 0
	for token, session := range r.sessions {
		if session.expired(now, r.ttl) {
			delete(r.sessions, token)
			reaped++
		}
	}
	return reaped
}

// Run sweeps on the configured interval until the context ends.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.sweep)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if reaped := r.Sweep(now.UTC()); reaped > 0 && r.logg != nil {
				r.logg.Info(r.logg.WithField(ctx, "reaped", reaped), "sessions.sweep")
			}
		}
	}
}
