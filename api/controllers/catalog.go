package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tacworldhq/storefront-backend/api/responses"
	"github.com/tacworldhq/storefront-backend/internal/catalog"
	"github.com/tacworldhq/storefront-backend/pkg/enums"
	pkgerrors "github.com/tacworldhq/storefront-backend/pkg/errors"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
)

// CatalogProducts lists the catalog, optionally narrowed by ?category=.
func CatalogProducts(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := enums.ParseCategoryFilter(r.URL.Query().Get("category"))
		products := store.FilterByCategory(category)
		responses.WriteSuccess(w, map[string]any{
			"category": category,
			"products": products,
		})
	}
}

func CatalogProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		product, ok := store.GetProduct(productID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": productID}))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func CatalogManufacturers(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"manufacturers": store.Manufacturers()})
	}
}

// CatalogModels lists the known models for one manufacturer. Unknown makes
// yield an empty list, not an error, so the picker can stay dumb.
func CatalogModels(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manufacturer := chi.URLParam(r, "manufacturer")
		responses.WriteSuccess(w, map[string]any{
			"manufacturer": manufacturer,
			"models":       store.ModelsFor(manufacturer),
		})
	}
}
