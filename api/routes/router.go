package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tacworldhq/storefront-backend/api/controllers"
	"github.com/tacworldhq/storefront-backend/api/middleware"
	"github.com/tacworldhq/storefront-backend/internal/catalog"
	"github.com/tacworldhq/storefront-backend/internal/sessions"
	"github.com/tacworldhq/storefront-backend/pkg/config"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
	pkgredis "github.com/tacworldhq/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store *catalog.Store,
	registry *sessions.Registry,
	previewGen controllers.PreviewGenerator,
	redisClient *pkgredis.Client,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	var redisPinger pkgredis.Pinger
	if redisClient != nil {
		redisPinger = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", controllers.SessionCreate(registry, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogProducts(store, logg))
			r.Get("/products/{productId}", controllers.CatalogProduct(store, logg))
			r.Get("/manufacturers", controllers.CatalogManufacturers(store, logg))
			r.Get("/manufacturers/{manufacturer}/models", controllers.CatalogModels(store, logg))
		})

		// Everything below works on per-session state.
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionContext(registry, logg))
			if redisClient != nil {
				r.Use(middleware.Idempotency(redisClient, logg))
			}

			r.Route("/configurator", func(r chi.Router) {
				r.Get("/", controllers.ConfiguratorFetch(logg))
				r.Put("/firearm", controllers.ConfiguratorFirearm(logg))
				r.Put("/category", controllers.ConfiguratorCategory(logg))
				r.Put("/selection", controllers.ConfiguratorSelect(logg))
				r.Delete("/selection", controllers.ConfiguratorClose(logg))
				r.Post("/fit", controllers.ConfiguratorFit(logg))
				r.Post("/preview", controllers.ConfiguratorPreview(previewGen, logg))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(logg))
				r.Post("/items", controllers.CartAddItem(store, logg))
				r.Delete("/items/{lineItemId}", controllers.CartRemoveItem(logg))
			})

			r.Route("/advisor", func(r chi.Router) {
				r.Get("/transcript", controllers.AdvisorTranscript(logg))
				r.Post("/messages", controllers.AdvisorSend(logg))
			})
		})
	})

	return r
}
