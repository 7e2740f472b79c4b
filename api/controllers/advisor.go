package controllers

import (
	"net/http"

	"github.com/tacworldhq/storefront-backend/api/responses"
	"github.com/tacworldhq/storefront-backend/api/validators"
	pkgerrors "github.com/tacworldhq/storefront-backend/pkg/errors"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
)

const maxAdvisorMessageLen = 2000

func AdvisorTranscript(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}
		if session.Advisor == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "advisor unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"transcript": session.Advisor.Transcript()})
	}
}

type advisorMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// AdvisorSend relays one user message to the advisor. Backend trouble never
// surfaces as an error here; the reply simply carries the fallback line.
func AdvisorSend(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}
		if session.Advisor == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "advisor unavailable"))
			return
		}

		var payload advisorMessageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		text := validators.SanitizeString(payload.Text, maxAdvisorMessageLen)
		if text == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "message text is required"))
			return
		}

		reply := session.Advisor.Send(r.Context(), text)
		responses.WriteSuccess(w, map[string]any{"message": reply})
	}
}
