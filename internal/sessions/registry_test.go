package sessions

import (
	"testing"
	"time"

	"github.com/tacworldhq/storefront-backend/internal/catalog"
	"github.com/tacworldhq/storefront-backend/pkg/config"
)

func newRegistry(t *testing.T, ttl time.Duration) *Registry {
	t.Helper()
	store, err := catalog.NewFromSeed()
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	cfg := config.SessionConfig{TTL: ttl, SweepInterval: time.Minute}
	return NewRegistry(store, nil, cfg, nil)
}

func TestCreateAndGet(t *testing.T) {
	reg := newRegistry(t, time.Hour)

	session := reg.Create()
	if session.Token == "" {
		t.Fatal("session minted without a token")
	}
	if session.Cart == nil || session.Configurator == nil {
		t.Fatal("session missing cart or configurator state")
	}
	if session.Cart.Count() != 0 {
		t.Fatal("fresh cart not empty")
	}

	got, ok := reg.Get(session.Token)
	if !ok || got != session {
		t.Fatal("token did not resolve to the minted session")
	}
	if _, ok := reg.Get("bogus-token"); ok {
		t.Fatal("unknown token resolved")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	reg := newRegistry(t, time.Hour)
	a := reg.Create()
	b := reg.Create()

	if a.Token == b.Token {
		t.Fatal("token collision")
	}
	if err := a.Configurator.SetManufacturer("Glock"); err != nil {
		t.Fatal(err)
	}
	if m, _ := b.Configurator.Firearm(); m != "" {
		t.Fatalf("state leaked across sessions: %q", m)
	}
}

func TestSweepReapsIdleSessions(t *testing.T) {
	reg := newRegistry(t, 30*time.Minute)
	stale := reg.Create()
	fresh := reg.Create()

	// Backdate the stale session past the TTL.
	stale.mu.Lock()
	stale.lastSeen = time.Now().UTC().Add(-time.Hour)
	stale.mu.Unlock()

	if reaped := reg.Sweep(time.Now().UTC()); reaped != 1 {
		t.Fatalf("expected 1 reaped session, got %d", reaped)
	}
	if _, ok := reg.Get(stale.Token); ok {
		t.Fatal("stale session survived the sweep")
	}
	if _, ok := reg.Get(fresh.Token); !ok {
		t.Fatal("fresh session reaped")
	}
}

func TestGetRefreshesIdleClock(t *testing.T) {
	reg := newRegistry(t, 30*time.Minute)
	session := reg.Create()

	session.mu.Lock()
	session.lastSeen = time.Now().UTC().Add(-time.Hour)
	session.mu.Unlock()

	// Lookup counts as activity.
	if _, ok := reg.Get(session.Token); !ok {
		t.Fatal("session missing before sweep")
	}
	if reaped := reg.Sweep(time.Now().UTC()); reaped != 0 {
		t.Fatalf("touched session reaped, %d gone", reaped)
	}
}
