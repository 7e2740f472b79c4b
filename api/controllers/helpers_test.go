package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tacworldhq/storefront-backend/api/middleware"
	"github.com/tacworldhq/storefront-backend/internal/advisor"
	"github.com/tacworldhq/storefront-backend/internal/catalog"
	"github.com/tacworldhq/storefront-backend/internal/sessions"
	"github.com/tacworldhq/storefront-backend/pkg/config"
	"github.com/tacworldhq/storefront-backend/pkg/enums"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewFromSeed()
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return store
}

type stubAdvisorConversation struct {
	replies  []string
	received []string
	messages []advisor.ChatMessage
}

func (s *stubAdvisorConversation) Send(ctx context.Context, text string) advisor.ChatMessage {
	s.received = append(s.received, text)
	reply := "copy that"
	if len(s.replies) > 0 {
		reply = s.replies[0]
		s.replies = s.replies[1:]
	}
	s.append(enums.ChatRoleUser, text)
	return s.append(enums.ChatRoleModel, reply)
}

func (s *stubAdvisorConversation) Transcript() []advisor.ChatMessage {
	out := make([]advisor.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *stubAdvisorConversation) append(role enums.ChatRole, text string) advisor.ChatMessage {
	msg := advisor.ChatMessage{ID: uuid.New(), Role: role, Text: text, CreatedAt: time.Now().UTC()}
	s.messages = append(s.messages, msg)
	return msg
}

type stubStarter struct {
	conversation *stubAdvisorConversation
}

func (s stubStarter) StartSession() sessions.AdvisorConversation {
	if s.conversation == nil {
		return &stubAdvisorConversation{}
	}
	return s.conversation
}

func testSession(t *testing.T, store *catalog.Store, starter sessions.AdvisorStarter) *sessions.Session {
	t.Helper()
	cfg := config.SessionConfig{TTL: time.Hour, SweepInterval: time.Minute}
	registry := sessions.NewRegistry(store, starter, cfg, nil)
	return registry.Create()
}

func sessionRequest(method, target string, body string, session *sessions.Session) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithSession(req.Context(), session))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}
