package middleware

import (
	"context"

	"github.com/tacworldhq/storefront-backend/internal/sessions"
)

type contextKey string

const ctxSession contextKey = "storefront_session"

// WithSession injects the resolved storefront session for downstream handlers.
func WithSession(ctx context.Context, session *sessions.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, session)
}

func SessionFromContext(ctx context.Context) *sessions.Session {
	if ctx == nil {
		return nil
	}
	if s, ok := ctx.Value(ctxSession).(*sessions.Session); ok {
		return s
	}
	return nil
}
