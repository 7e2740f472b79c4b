package controllers

import (
	"net/http"

	"github.com/tacworldhq/storefront-backend/api/responses"
	"github.com/tacworldhq/storefront-backend/pkg/config"
	pkgerrors "github.com/tacworldhq/storefront-backend/pkg/errors"
	"github.com/tacworldhq/storefront-backend/pkg/logger"
	pkgredis "github.com/tacworldhq/storefront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TacWorld-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, redisP pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TacWorld-Env", cfg.App.Env)
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
