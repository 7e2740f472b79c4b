package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tacworldhq/storefront-backend/api/responses"
	"github.com/tacworldhq/storefront-backend/api/validators"
	"github.com/tacworldhq/storefront-backend/internal/cart"
	"github.com/tacworldhq/storefront-backend/internal/catalog"
	pkgerrors "github.com/tacworldhq/storefront-backend/pkg/errors"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
)

type cartResponse struct {
	Items []cart.LineItem `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

func snapshotCart(c *cart.Cart) cartResponse {
	return cartResponse{
		Items: c.Items(),
		Total: c.Total(),
		Count: c.Count(),
	}
}

func CartFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}
		responses.WriteSuccess(w, snapshotCart(session.Cart))
	}
}

type addItemRequest struct {
	ProductID       string            `json:"product_id" validate:"required"`
	SelectedOptions map[string]string `json:"selected_options"`
}

func CartAddItem(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := store.GetProduct(payload.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": payload.ProductID}))
			return
		}

		item, err := session.Cart.AddItem(product, payload.SelectedOptions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithProductID(r.Context(), product.ID)
			logg.Info(ctx, "cart.item_added")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"item": item,
			"cart": snapshotCart(session.Cart),
		})
	}
}

// CartRemoveItem drops a line item by id. Removing an id that is not in the
// cart is a no-op, so retried deletes stay safe.
func CartRemoveItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := requireSession(w, r, logg)
		if session == nil {
			return
		}

		lineItemID, err := uuid.Parse(chi.URLParam(r, "lineItemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid line item id"))
			return
		}

		session.Cart.RemoveItem(lineItemID)
		responses.WriteSuccess(w, snapshotCart(session.Cart))
	}
}
