package controllers

import (
	"net/http"
	"time"

	"github.com/tacworldhq/storefront-backend/api/responses"
	"github.com/tacworldhq/storefront-backend/internal/advisor"
	"github.com/tacworldhq/storefront-backend/internal/sessions"
	pkgerrors "github.com/tacworldhq/storefront-backend/pkg/errors"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
)

type sessionResponse struct {
	Token      string                `json:"token"`
	CreatedAt  time.Time             `json:"created_at"`
	Transcript []advisor.ChatMessage `json:"transcript"`
}

// SessionCreate mints a storefront session. The response carries the advisor
// greeting so the chat pane can render without a second round trip.
func SessionCreate(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session registry unavailable"))
			return
		}

		session := registry.Create()

		payload := sessionResponse{
			Token:     session.Token,
			CreatedAt: session.CreatedAt,
		}
		if session.Advisor != nil {
			payload.Transcript = session.Advisor.Transcript()
		}

		if logg != nil {
			logg.Info(logg.WithSessionID(r.Context(), session.Token), "session.created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, payload)
	}
}
