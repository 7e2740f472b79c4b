package advisor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tacworldhq/storefront-backend/pkg/enums"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
	"github.com/tacworldhq/storefront-backend/pkg/metrics"
)

// ChatMessage is one transcript turn. The transcript is append-only; turns
// are never mutated or reordered once appended.
type ChatMessage struct {
	ID        uuid.UUID      `json:"id"`
	Role      enums.ChatRole `json:"role"`
	Text      string         `json:"text"`
	CreatedAt time.Time      `json:"created_at"`
}

// Session is one advisory conversation. Sends are serialized: a second Send
// blocks until the in-flight round trip resolves, so transcript alternation
// user/model/user/model holds even under concurrent handler calls.
type Session struct {
	ID uuid.UUID

	transport chatTransport
	met       *metrics.AdvisorMetrics
	logg      *logger.Logger
	timeout   time.Duration

	sendMu sync.Mutex

	mu       sync.Mutex
	messages []ChatMessage
}

func newSession(transport chatTransport, met *metrics.AdvisorMetrics, logg *logger.Logger, timeout time.Duration) *Session {
	s := &Session{
		ID:        uuid.New(),
		transport: transport,
		met:       met,
		logg:      logg,
		timeout:   timeout,
	}
	s.append(enums.ChatRoleModel, sessionGreeting)
	return s
}

// Send appends the user's turn, requests a completion and appends the model
// turn. On any transport failure the model turn carries the fixed fallback
// text instead; a failed send leaves the session fully usable.
func (s *Session) Send(ctx context.Context, userText string) ChatMessage {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.append(enums.ChatRoleUser, userText)

	start := time.Now()
	reply, err := s.transport.Send(ctx, userText)
	s.met.ObserveDuration("chat_send", time.Since(start))

	switch {
	case err != nil:
		s.met.IncFallback("chat_send")
		if s.logg != nil {
			s.logg.Warn(s.logg.WithFields(ctx, map[string]any{
				"advisor_session": s.ID.String(),
				"error":           err.Error(),
			}), "advisor.chat_send.failed")
		}
		reply = transportFallback
	case reply == "":
		s.met.IncFallback("chat_send")
		reply = emptyReplyFallback
	default:
		s.met.IncSuccess("chat_send")
	}

	return s.append(enums.ChatRoleModel, reply)
}

// Transcript returns the ordered conversation so far.
func (s *Session) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) append(role enums.ChatRole, text string) ChatMessage {
	msg := ChatMessage{
		ID:        uuid.New(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg
}
