package middleware

import (
	"net/http"
	"strings"

	"github.com/tacworldhq/storefront-backend/api/responses"
	"github.com/tacworldhq/storefront-backend/internal/sessions"
	pkgerrors "github.com/tacworldhq/storefront-backend/pkg/errors"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
)

const sessionTokenHeader = "X-Session-Token"

// SessionContext resolves the session token header against the registry and
// injects the session. Requests without a live session are rejected; clients
// recover by minting a new session and retrying.
func SessionContext(registry *sessions.Registry, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(sessionTokenHeader))
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session token missing"))
				return
			}

			session, ok := registry.Get(token)
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired or unknown"))
				return
			}

			ctx := WithSession(r.Context(), session)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, session.Token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
