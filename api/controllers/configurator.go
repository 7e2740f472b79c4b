package controllers

import (
	"context"
	"net/http"

	"github.com/tacworldhq/storefront-backend/api/middleware"
	"github.com/tacworldhq/storefront-backend/api/responses"
	"github.com/tacworldhq/storefront-backend/api/validators"
	"github.com/tacworldhq/storefront-backend/internal/advisor"
	"github.com/tacworldhq/storefront-backend/internal/sessions"
	pkgerrors "github.com/tacworldhq/storefront-backend/pkg/errors"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
)

// PreviewGenerator is the image-generation surface the preview endpoint needs.
type PreviewGenerator interface {
	GeneratePreview(ctx context.Context, manufacturer, model string) *advisor.Preview
}

func requireSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger) *sessions.Session {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session context missing"))
	}
	return session
}

func ConfiguratorFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}
		responses.WriteSuccess(w, session.Configurator.Snapshot())
	}
}

type firearmRequest struct {
	Manufacturer string `json:"manufacturer" validate:"required"`
	Model        string `json:"model,omitempty"`
}

// ConfiguratorFirearm applies a manufacturer/model transition. Changing the
// manufacturer wipes the model and any cached preview; the model can only be
// set on top of the manufacturer carried in the same request.
func ConfiguratorFirearm(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}

		var payload firearmRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := session.Configurator
		if current, _ := state.Firearm(); current != payload.Manufacturer {
			if err := state.SetManufacturer(payload.Manufacturer); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		if payload.Model != "" {
			if err := state.SetModel(payload.Model); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		responses.WriteSuccess(w, state.Snapshot())
	}
}

type categoryRequest struct {
	Category string `json:"category"`
}

func ConfiguratorCategory(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}

		var payload categoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := session.Configurator.SetCategory(payload.Category); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session.Configurator.Snapshot())
	}
}

type selectionRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func ConfiguratorSelect(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}

		var payload selectionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := session.Configurator.Select(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func ConfiguratorClose(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}
		session.Configurator.Close()
		w.WriteHeader(http.StatusNoContent)
	}
}

// ConfiguratorFit resolves the selected firearm to a holster recommendation
// and opens its detail view.
func ConfiguratorFit(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}
		match, err := session.Configurator.SubmitFit()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, match)
	}
}

type previewResponse struct {
	Preview *advisor.Preview `json:"preview"`
}

// ConfiguratorPreview generates a holster render for the session's firearm
// pair. Generation failures answer 200 with a null preview; a result whose
// pair changed while it was in flight is discarded the same way.
func ConfiguratorPreview(gen PreviewGenerator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gen == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "preview generator unavailable"))
			return
		}
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}

		manufacturer, model := session.Configurator.Firearm()
		if manufacturer == "" || model == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "manufacturer and model are required"))
			return
		}

		preview := gen.GeneratePreview(r.Context(), manufacturer, model)
		if preview != nil && !session.Configurator.StorePreview(manufacturer, model, preview) {
			preview = nil
		}
		responses.WriteSuccess(w, previewResponse{Preview: preview})
	}
}
